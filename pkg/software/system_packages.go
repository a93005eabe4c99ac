// SPDX-License-Identifier: Apache-2.0

package software

import (
	"os/exec"
	"strings"

	"github.com/bluet/syspkg/manager"
)

// System packages backing the printing stack.
const (
	PackageCups        = "cups"
	PackageCupsClient  = "cups-client"
	PackageSaneUtils   = "sane-utils"
	PackageGhostscript = "ghostscript"
	PackageLibreOffice = "libreoffice"
)

// NewCups creates an installer for the CUPS scheduler that owns the local
// print queue.
func NewCups() (Package, error) {
	return NewPackageInstaller(WithPackageName(PackageCups), WithPackageOptions(manager.Options{AssumeYes: true}))
}

// NewCupsClient creates an installer for the CUPS command line clients
// (lp, lpstat).
func NewCupsClient() (Package, error) {
	return NewPackageInstaller(WithPackageName(PackageCupsClient), WithPackageOptions(manager.Options{AssumeYes: true}))
}

// NewSaneUtils creates an installer for the SANE scanner utilities
// (scanimage).
func NewSaneUtils() (Package, error) {
	return NewPackageInstaller(WithPackageName(PackageSaneUtils), WithPackageOptions(manager.Options{AssumeYes: true}))
}

// NewGhostscript creates an installer for Ghostscript (gs).
func NewGhostscript() (Package, error) {
	return NewPackageInstaller(WithPackageName(PackageGhostscript), WithPackageOptions(manager.Options{AssumeYes: true}))
}

// NewLibreOffice creates an installer for LibreOffice (soffice), used for
// headless document conversion.
func NewLibreOffice() (Package, error) {
	return NewPackageInstaller(WithPackageName(PackageLibreOffice), WithPackageOptions(manager.Options{AssumeYes: true}))
}

type hintManager struct {
	binary string
	verb   string
	sudo   bool
}

// installHintManagers lists the package managers probed for the remediation
// hint, most common first. Homebrew refuses to run as root so it is the one
// entry rendered without sudo.
var installHintManagers = []hintManager{
	{binary: "apt-get", verb: "install -y", sudo: true},
	{binary: "dnf", verb: "install -y", sudo: true},
	{binary: "yum", verb: "install -y", sudo: true},
	{binary: "zypper", verb: "install -y", sudo: true},
	{binary: "apk", verb: "add", sudo: true},
	{binary: "brew", verb: "install", sudo: false},
}

// InstallHint renders a single copy-paste command that installs the given
// packages with the package manager detected on this host. Returns an empty
// string when there are no packages to install or no known package manager is
// present.
func InstallHint(packages []string) string {
	if len(packages) == 0 {
		return ""
	}

	for _, pm := range installHintManagers {
		if _, err := exec.LookPath(pm.binary); err != nil {
			continue
		}

		return formatInstallHint(pm, packages)
	}

	return ""
}

func formatInstallHint(pm hintManager, packages []string) string {
	cmd := pm.binary + " " + pm.verb + " " + strings.Join(packages, " ")
	if pm.sudo {
		return "sudo " + cmd
	}

	return cmd
}
