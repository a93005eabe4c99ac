// SPDX-License-Identifier: Apache-2.0

// Package software manages the external programs and system packages the
// print service depends on. It resolves the required command line tools
// through the operator's shell, fingerprints and versions the executables it
// finds, and drives the host package manager through syspkg for installs.
package software

import (
	"context"
	"os"

	"github.com/bluet/syspkg"
	"github.com/rs/zerolog"
)

// Names of the command line tools the service shells out to at runtime.
const (
	ToolLp        = "lp"
	ToolLpstat    = "lpstat"
	ToolScanimage = "scanimage"
	ToolGs        = "gs"
	ToolSoffice   = "soffice"
)

// defaultVersionRegex extracts a dotted version number from typical
// "--version" output.
const defaultVersionRegex = `\d+\.\d+(\.\d+)?`

// Tool describes one external program required by the print service and how
// to detect it on the host.
type Tool struct {
	// Name is the command resolved through the operator's shell.
	Name string

	// Package is the system package that provides the command.
	Package string

	// DefaultLocation is the well known install path, tried before falling
	// back to shell resolution.
	DefaultLocation string

	// VersionArgs makes the program print its version. Empty means the tool
	// has no version flag and detection is presence only.
	VersionArgs string

	// VersionRegex extracts the version number from the program output.
	// Empty selects defaultVersionRegex.
	VersionRegex string
}

// Tools returns the fixed set of external programs the service requires, in
// report order. The CUPS clients have no version flag so they are detected by
// presence only.
func Tools() []Tool {
	return []Tool{
		{Name: ToolLp, Package: PackageCupsClient, DefaultLocation: "/usr/bin/lp"},
		{Name: ToolLpstat, Package: PackageCupsClient, DefaultLocation: "/usr/bin/lpstat"},
		{Name: ToolScanimage, Package: PackageSaneUtils, DefaultLocation: "/usr/bin/scanimage", VersionArgs: "--version"},
		{Name: ToolGs, Package: PackageGhostscript, DefaultLocation: "/usr/bin/gs", VersionArgs: "--version"},
		{Name: ToolSoffice, Package: PackageLibreOffice, DefaultLocation: "/usr/bin/soffice", VersionArgs: "--version"},
	}
}

// ToolByName returns the tool definition for the given command name.
func ToolByName(name string) (Tool, bool) {
	for _, tool := range Tools() {
		if tool.Name == name {
			return tool, true
		}
	}

	return Tool{}, false
}

// PackagesForTools returns the deduplicated system packages providing the
// given tools, in tool order.
func PackagesForTools(tools []Tool) []string {
	seen := make(map[string]bool, len(tools))

	var packages []string
	for _, tool := range tools {
		if tool.Package == "" || seen[tool.Package] {
			continue
		}

		seen[tool.Package] = true
		packages = append(packages, tool.Package)
	}

	return packages
}

// ProgramInfo reports the identity of an installed executable.
type ProgramInfo interface {
	GetVersion() string
	GetHash() string
	GetFileMode() os.FileMode
	GetPath() string
	IsExecAll() bool
	IsExecAny() bool
	IsExecOwner() bool
	IsExecGroup() bool
}

// ProgramDetector locates required programs on the host and inspects the
// executables it finds.
type ProgramDetector interface {
	SetLogger(logger *zerolog.Logger)
	DetectExecutablePath(name string) (string, error)
	ComputeProgramHash(path string) ([32]byte, error)
	DetectProgramVersion(path string, tool Tool) (string, error)
	GetProgramInfo(ctx context.Context, tool Tool) (ProgramInfo, error)
}

// Package manages a single system package through the host package manager.
type Package interface {
	Name() string
	Install() (*syspkg.PackageInfo, error)
	Uninstall() (*syspkg.PackageInfo, error)
	Upgrade() (*syspkg.PackageInfo, error)
	Info() (*syspkg.PackageInfo, error)
	IsInstalled() bool
}
