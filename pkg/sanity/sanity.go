// SPDX-License-Identifier: Apache-2.0

package sanity

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joomcode/errorx"
)

var (
	ErrInvalidFilename = errorx.IllegalArgument.New("invalid filename")
)

// Security validation patterns for paths
var (
	// shellMetachars contains dangerous shell metacharacters that should be rejected
	shellMetachars = regexp.MustCompile(`[;&|$\x60<>(){}[\]*?~]`)

	// validPathChars ensures paths only contain safe characters
	// Allows: alphanumeric, forward slash, dash, underscore, dot
	validPathChars = regexp.MustCompile(`^[a-zA-Z0-9/_.\-]+$`)

	// validUsernameChars ensures usernames only contain safe characters
	validUsernameChars = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
)

// Contains reports whether item is present in list.
func Contains[T comparable](item T, list []T) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// Alphanumeric ensures the input string to be ascii alphanumeric
func Alphanumeric(s string) string {
	sb := []byte(s)
	j := 0
	for _, b := range sb {
		if ('a' <= b && b <= 'z') ||
			('A' <= b && b <= 'Z') ||
			('0' <= b && b <= '9') {
			sb[j] = b
			j++
		}
	}
	return string(sb[:j])
}

// Filename sanitize the input string to be safe filename
// It only allows alphanumeric characters (a-z, 0-9) and underscore
// It returns error if the filename is empty string after the sanitization
func Filename(s string) (string, error) {
	sb := []byte(s)
	j := 0
	for _, b := range sb {
		if ('a' <= b && b <= 'z') ||
			('A' <= b && b <= 'Z') ||
			('0' <= b && b <= '9') ||
			b == '_' ||
			b == '-' {
			sb[j] = b
			j++
		}
	}

	if j == 0 {
		return "", ErrInvalidFilename
	}

	return string(sb[:j]), nil
}

// Username validates an OS account name so it can be passed to privileged
// commands. Unlike Filename it rejects instead of stripping: a mangled
// account name must never reach useradd or chown.
func Username(s string) (string, error) {
	if s == "" {
		return "", errorx.IllegalArgument.New("username cannot be empty")
	}

	if strings.Contains(s, "..") {
		return "", errorx.IllegalArgument.New("username contains path traversal sequences: %s", s)
	}

	if shellMetachars.MatchString(s) {
		return "", errorx.IllegalArgument.New("username contains shell metacharacters: %s", s)
	}

	if !validUsernameChars.MatchString(s) {
		if Alphanumeric(s) == "" {
			return "", errorx.IllegalArgument.New("username contains no valid characters")
		}
		return "", errorx.IllegalArgument.New("username contains invalid characters: %s", s)
	}

	return s, nil
}

// SanitizePath validates and sanitizes the given path according to strict security rules.
//
// Specifically, it:
//  1. Rejects paths containing shell metacharacters (e.g., ; & | $ ` < > ( ) { } [ ] * ? ~).
//  2. Rejects path traversal attempts (e.g., segments like "../", "/..", or paths ending with "..").
//  3. Requires the input path to be absolute.
//  4. Normalizes the path by removing redundant slashes and dot directories (using filepath.Clean).
//  5. May return a cleaned version of the input path that differs from the original.
//
// Returns the sanitized (cleaned) path, or an error if the input is invalid or unsafe.
func SanitizePath(path string) (string, error) {
	if path == "" {
		return "", errorx.IllegalArgument.New("path cannot be empty")
	}

	// Ensure it's an absolute path
	if !filepath.IsAbs(path) {
		return "", errorx.IllegalArgument.New("path must be absolute: %s", path)
	}

	// Check for path traversal patterns BEFORE cleaning
	// This catches patterns like "../", "/..", and paths ending with ".."
	// which could allow escaping the intended directory structure
	// Check for ".." as a path segment
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return "", errorx.IllegalArgument.New("path cannot contain '..' segments: %s", path)
		}
	}

	// Check for shell metacharacters in the original path
	if shellMetachars.MatchString(path) {
		return "", errorx.IllegalArgument.New("path contains shell metacharacters: %s", path)
	}

	// Check for valid characters in the original path
	if !validPathChars.MatchString(path) {
		return "", errorx.IllegalArgument.New("path contains invalid characters: %s", path)
	}

	return filepath.Clean(path), nil
}

// ValidatePathWithinBase ensures targetPath resolves to a location inside
// basePath. Both paths are sanitized first; the cleaned target is returned.
// Use this before deleting or overwriting files derived from external input.
func ValidatePathWithinBase(basePath, targetPath string) (string, error) {
	if basePath == "" {
		return "", errorx.IllegalArgument.New("base path cannot be empty")
	}
	if targetPath == "" {
		return "", errorx.IllegalArgument.New("target path cannot be empty")
	}

	cleanBase, err := SanitizePath(basePath)
	if err != nil {
		return "", err
	}

	cleanTarget, err := SanitizePath(targetPath)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(cleanBase, cleanTarget)
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", errorx.IllegalArgument.New("path %s is outside the allowed base directory %s", targetPath, basePath)
	}

	return cleanTarget, nil
}

// ValidateURLOptions adjusts the strictness of ValidateURL.
type ValidateURLOptions struct {
	// RequireHTTPS rejects plain http URLs.
	RequireHTTPS bool

	// TrustedDomains, when non-empty, requires the URL host to be one of
	// these domains or a subdomain of one.
	TrustedDomains []string
}

// ValidateURL validates that rawURL is a well-formed http or https URL with a
// host. Stricter checks are opt-in via options.
func ValidateURL(rawURL string, opts ...*ValidateURLOptions) error {
	if rawURL == "" {
		return errorx.IllegalArgument.New("URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid URL: %s", rawURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errorx.IllegalArgument.New("URL scheme must be http or https: %s", rawURL)
	}

	if u.Hostname() == "" {
		return errorx.IllegalArgument.New("URL must have a valid host: %s", rawURL)
	}

	if len(opts) == 0 || opts[0] == nil {
		return nil
	}
	o := opts[0]

	if o.RequireHTTPS && u.Scheme != "https" {
		return errorx.IllegalArgument.New("URL scheme must be https: %s", rawURL)
	}

	if len(o.TrustedDomains) > 0 {
		host := strings.ToLower(u.Hostname())
		for _, domain := range o.TrustedDomains {
			domain = strings.ToLower(domain)
			if host == domain || strings.HasSuffix(host, "."+domain) {
				return nil
			}
		}
		return errorx.IllegalArgument.New("URL host is not in the trusted domain allowlist: %s", host)
	}

	return nil
}
