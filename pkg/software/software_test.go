// SPDX-License-Identifier: Apache-2.0

package software

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTools(t *testing.T) {
	req := require.New(t)

	tools := Tools()
	req.Len(tools, 5)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	req.Equal([]string{ToolLp, ToolLpstat, ToolScanimage, ToolGs, ToolSoffice}, names)

	for _, tool := range tools {
		req.NotEmpty(tool.Package, "tool %s must map to a system package", tool.Name)
		req.NotEmpty(tool.DefaultLocation, "tool %s must have a default location", tool.Name)
	}
}

func TestToolByName(t *testing.T) {
	req := require.New(t)

	tool, ok := ToolByName(ToolGs)
	req.True(ok)
	req.Equal(PackageGhostscript, tool.Package)

	_, ok = ToolByName("this-tool-does-not-exist")
	req.False(ok)
}

func TestPackagesForTools(t *testing.T) {
	req := require.New(t)

	// lp and lpstat share cups-client, so the package list is shorter than
	// the tool list and free of duplicates.
	packages := PackagesForTools(Tools())
	req.Equal([]string{PackageCupsClient, PackageSaneUtils, PackageGhostscript, PackageLibreOffice}, packages)

	req.Empty(PackagesForTools(nil))
	req.Empty(PackagesForTools([]Tool{{Name: "bare"}}))
}

func TestFormatInstallHint(t *testing.T) {
	stack := []string{PackageCupsClient, PackageSaneUtils, PackageGhostscript, PackageLibreOffice}

	testCases := []struct {
		name     string
		pm       hintManager
		packages []string
		want     string
	}{
		{
			name:     "apt",
			pm:       hintManager{binary: "apt-get", verb: "install -y", sudo: true},
			packages: stack,
			want:     "sudo apt-get install -y cups-client sane-utils ghostscript libreoffice",
		},
		{
			name:     "dnf",
			pm:       hintManager{binary: "dnf", verb: "install -y", sudo: true},
			packages: []string{PackageGhostscript},
			want:     "sudo dnf install -y ghostscript",
		},
		{
			name:     "brew runs without sudo",
			pm:       hintManager{binary: "brew", verb: "install", sudo: false},
			packages: []string{PackageGhostscript},
			want:     "brew install ghostscript",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, formatInstallHint(tc.pm, tc.packages))
		})
	}
}

func TestInstallHint_NoPackages(t *testing.T) {
	require.Empty(t, InstallHint(nil))
}
