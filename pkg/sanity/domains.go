// SPDX-License-Identifier: Apache-2.0

package sanity

// allowedDomains is an allowlist of trusted domains for file downloads.
// The bot fetches user documents through the Bot API file endpoint and
// nothing else; restricting the downloader to these domains protects
// against SSRF if a crafted file path ever reaches it.
//
// When adding new domains, ensure they are:
//  1. Trusted and reputable sources
//  2. Served over HTTPS with valid certificates
//  3. Actually required by a download path in this codebase
//
// DO NOT add cloud metadata addresses (169.254.169.254 and friends),
// loopback or private ranges, bare IP addresses, or internal domains.
// The allowlist is the primary security control for the downloader.
var allowedDomains = []string{
	// Telegram Bot API file storage
	"api.telegram.org",
	"telegram.org",
}

// AllowedDomains returns the allowlist of trusted domains for file downloads.
func AllowedDomains() []string {
	return append([]string(nil), allowedDomains...)
}
