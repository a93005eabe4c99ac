// SPDX-License-Identifier: Apache-2.0

package hardware

import (
	"strconv"
	"strings"
)

// validateOS reports whether the host OS satisfies at least one entry of the
// supported OS list.
func validateOS(supported []string, profile HostProfile) bool {
	for _, entry := range supported {
		if osSatisfies(entry, profile) {
			return true
		}
	}

	return false
}

// osSatisfies matches one "<vendor> <min major>" entry, e.g. "Ubuntu 20" or
// "Debian 11". The host matches when the vendor name is equal under case
// folding and its major version is at least the listed one.
func osSatisfies(entry string, profile HostProfile) bool {
	parts := strings.Fields(entry)
	if len(parts) < 2 {
		return false
	}

	if !strings.EqualFold(parts[0], profile.GetOSVendor()) {
		return false
	}

	required, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	major, _, _ := strings.Cut(profile.GetOSVersion(), ".")
	hostMajor, err := strconv.Atoi(major)
	if err != nil {
		return false
	}

	return hostMajor >= required
}
