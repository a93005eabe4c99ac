// SPDX-License-Identifier: Apache-2.0

// Package semver parses loosely formatted version strings and compares them
// using semantic versioning precedence rules.
//
// System tools report versions in many shapes: bare numbers (systemctl "219"),
// two part versions (coreutils "8.30"), and full semver with a "v" prefix.
// NewSemver accepts all of them.
package semver

import (
	smv "github.com/Masterminds/semver/v3"
	"github.com/joomcode/errorx"
	"strings"
)

// Semver is a parsed version. The zero value represents an absent version and
// compares lower than any real release.
type Semver struct {
	raw        string
	major      uint64
	minor      uint64
	patch      uint64
	preRelease string
	build      string
}

// NewSemver parses the supplied version string. Leading and trailing whitespace
// is ignored and an empty string yields the zero Semver without error.
func NewSemver(version string) (Semver, error) {
	raw := strings.TrimSpace(version)
	if raw == "" {
		return Semver{}, nil
	}

	parsed, err := smv.NewVersion(raw)
	if err != nil {
		return Semver{}, errorx.IllegalFormat.Wrap(err, "failed to parse version %q", raw)
	}

	return Semver{
		raw:        raw,
		major:      parsed.Major(),
		minor:      parsed.Minor(),
		patch:      parsed.Patch(),
		preRelease: parsed.Prerelease(),
		build:      parsed.Metadata(),
	}, nil
}

// Raw returns the trimmed input the version was parsed from.
func (s Semver) Raw() string {
	return s.raw
}

func (s Semver) String() string {
	return s.raw
}

func (s Semver) Major() uint64 {
	return s.major
}

func (s Semver) Minor() uint64 {
	return s.minor
}

func (s Semver) Patch() uint64 {
	return s.patch
}

// EqualTo reports semantic equality. The raw representation and build metadata
// do not participate, so "v1.1.2" and "1.1.2" are equal.
func (s Semver) EqualTo(o Semver) bool {
	return s.major == o.major &&
		s.minor == o.minor &&
		s.patch == o.patch &&
		s.preRelease == o.preRelease
}

func (s Semver) LessThan(o Semver) bool {
	return s.compareTo(o) < 0
}

func (s Semver) GreaterThan(o Semver) bool {
	return s.compareTo(o) > 0
}

func (s Semver) GreaterOrEqual(o Semver) bool {
	return s.compareTo(o) >= 0
}

// compareTo defers precedence rules, including pre-release ordering, to the
// canonical semver comparison. Build metadata is ignored as the standard requires.
func (s Semver) compareTo(o Semver) int {
	return smv.New(s.major, s.minor, s.patch, s.preRelease, s.build).
		Compare(smv.New(o.major, o.minor, o.patch, o.preRelease, o.build))
}

// CheckVersionRequirements parses the detected version and verifies it falls
// within the inclusive [minVersion, maxVersion] range. An empty bound disables
// that side of the check.
func CheckVersionRequirements(version string, minVersion string, maxVersion string) error {
	detected, err := NewSemver(version)
	if err != nil {
		return err
	}

	if minVersion != "" {
		minimum, err := NewSemver(minVersion)
		if err != nil {
			return err
		}

		if detected.LessThan(minimum) {
			return errorx.IllegalState.New(
				"version %q is less than minimum required version %q", detected.Raw(), minimum.Raw())
		}
	}

	if maxVersion != "" {
		maximum, err := NewSemver(maxVersion)
		if err != nil {
			return err
		}

		if detected.GreaterThan(maximum) {
			return errorx.IllegalState.New(
				"version %q is greater than maximum required version %q", detected.Raw(), maximum.Raw())
		}
	}

	return nil
}
