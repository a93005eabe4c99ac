// SPDX-License-Identifier: Apache-2.0

// Package manifest loads and validates the package manifest that drives
// environment provisioning. The manifest is an operator maintained YAML file
// listing the system packages and kernel modules the service host needs.
package manifest

import (
	"os"
	"regexp"
	"strings"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"

	"github.com/printworks/printbot/pkg/semver"
)

// SupportedSchemaVersion is the only manifest schema this build understands.
const SupportedSchemaVersion = 1

// Package name charset follows the Debian policy: letters, digits, and the
// ".", "+", "-" separators, never leading with a separator.
var packageNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._+-]*$`)

// Kernel module names as the kernel itself accepts them.
var kernelModuleNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Manifest is the parsed package manifest.
type Manifest struct {
	SchemaVersion int            `yaml:"schemaVersion"`
	Packages      []Package      `yaml:"packages"`
	KernelModules []KernelModule `yaml:"kernelModules"`
}

// Package declares a system package to install, with optional inclusive
// version bounds checked against the version the package manager reports.
type Package struct {
	Name       string `yaml:"name"`
	MinVersion string `yaml:"minVersion,omitempty"`
	MaxVersion string `yaml:"maxVersion,omitempty"`
}

// KernelModule declares a kernel module to load. When Persist is set the
// module is also registered to load at boot.
type KernelModule struct {
	Name    string `yaml:"name"`
	Persist bool   `yaml:"persist"`
}

// Load reads and validates the manifest at the given path.
//
// A missing manifest is a hard error carrying the NotFound trait so callers can
// abort provisioning before any package installation is attempted.
func Load(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errorx.IllegalArgument.New("manifest path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewManifestNotFoundError(path)
		}

		return nil, ManifestReadError.Wrap(err, "failed to read package manifest %s", path)
	}

	return Parse(data, path)
}

// Parse decodes and validates manifest content. The path argument is used only
// for error messages.
func Parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, ManifestFormatError.Wrap(err, "failed to parse package manifest %s", path)
	}

	if err := m.Validate(); err != nil {
		return nil, errorx.Decorate(err, "invalid package manifest %s", path)
	}

	return &m, nil
}

// Validate checks the manifest for structural problems: unsupported schema,
// malformed or duplicate names, and version bounds that do not parse.
func (m *Manifest) Validate() error {
	if m.SchemaVersion != SupportedSchemaVersion {
		return ManifestFormatError.New(
			"unsupported manifest schema version %d, expected %d", m.SchemaVersion, SupportedSchemaVersion)
	}

	seenPackages := make(map[string]bool, len(m.Packages))
	for _, pkg := range m.Packages {
		if !packageNameRegex.MatchString(pkg.Name) {
			return ManifestFormatError.New("invalid package name %q", pkg.Name)
		}

		if seenPackages[pkg.Name] {
			return ManifestFormatError.New("duplicate package entry %q", pkg.Name)
		}
		seenPackages[pkg.Name] = true

		for _, bound := range []string{pkg.MinVersion, pkg.MaxVersion} {
			if bound == "" {
				continue
			}

			if _, err := semver.NewSemver(bound); err != nil {
				return errorx.Decorate(err, "invalid version bound for package %q", pkg.Name)
			}
		}
	}

	seenModules := make(map[string]bool, len(m.KernelModules))
	for _, mod := range m.KernelModules {
		if !kernelModuleNameRegex.MatchString(mod.Name) {
			return ManifestFormatError.New("invalid kernel module name %q", mod.Name)
		}

		if seenModules[mod.Name] {
			return ManifestFormatError.New("duplicate kernel module entry %q", mod.Name)
		}
		seenModules[mod.Name] = true
	}

	return nil
}

// PackageNames returns the declared package names in manifest order.
func (m *Manifest) PackageNames() []string {
	names := make([]string, 0, len(m.Packages))
	for _, pkg := range m.Packages {
		names = append(names, pkg.Name)
	}

	return names
}

// PackageByName returns the declared package with the given name. Used by the
// environment check to look up the version bounds for a tool's package.
func (m *Manifest) PackageByName(name string) (Package, bool) {
	for _, pkg := range m.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}

	return Package{}, false
}
