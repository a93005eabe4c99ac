// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"

	"github.com/printworks/printbot/internal/templates"
)

func TestLoad_ValidManifest(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "packages.yaml")
	content := `
schemaVersion: 1
packages:
  - name: cups-client
  - name: sane-utils
  - name: ghostscript
    minVersion: "9.0"
kernelModules:
  - name: usblp
    persist: true
`
	req.NoError(os.WriteFile(path, []byte(content), 0o644))

	m, err := Load(path)
	req.NoError(err)
	req.Equal(1, m.SchemaVersion)
	req.Equal([]string{"cups-client", "sane-utils", "ghostscript"}, m.PackageNames())
	req.Len(m.KernelModules, 1)
	req.Equal("usblp", m.KernelModules[0].Name)
	req.True(m.KernelModules[0].Persist)
}

func TestLoad_MissingManifest(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "packages.yaml")
	m, err := Load(path)
	req.Error(err)
	req.Nil(m)
	req.True(errorx.IsOfType(err, ManifestNotFound))
	req.Contains(err.Error(), path)
	req.Contains(err.Error(), "does not exist")
}

func TestLoad_EmptyPath(t *testing.T) {
	req := require.New(t)

	m, err := Load("  ")
	req.Error(err)
	req.Nil(m)
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "not yaml",
			content: "{{{{",
			errMsg:  "failed to parse package manifest",
		},
		{
			name:    "unsupported schema version",
			content: "schemaVersion: 2\npackages:\n  - name: cups\n",
			errMsg:  "unsupported manifest schema version",
		},
		{
			name:    "missing schema version",
			content: "packages:\n  - name: cups\n",
			errMsg:  "unsupported manifest schema version",
		},
		{
			name:    "invalid package name",
			content: "schemaVersion: 1\npackages:\n  - name: \"cups; rm -rf /\"\n",
			errMsg:  "invalid package name",
		},
		{
			name:    "empty package name",
			content: "schemaVersion: 1\npackages:\n  - name: \"\"\n",
			errMsg:  "invalid package name",
		},
		{
			name:    "duplicate package",
			content: "schemaVersion: 1\npackages:\n  - name: cups\n  - name: cups\n",
			errMsg:  "duplicate package entry",
		},
		{
			name:    "bad version bound",
			content: "schemaVersion: 1\npackages:\n  - name: cups\n    minVersion: \"not.a.version\"\n",
			errMsg:  "invalid version bound",
		},
		{
			name:    "invalid kernel module name",
			content: "schemaVersion: 1\nkernelModules:\n  - name: \"usblp; true\"\n",
			errMsg:  "invalid kernel module name",
		},
		{
			name:    "duplicate kernel module",
			content: "schemaVersion: 1\nkernelModules:\n  - name: usblp\n  - name: usblp\n",
			errMsg:  "duplicate kernel module entry",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			m, err := Parse([]byte(tc.content), "packages.yaml")
			req.Error(err)
			req.Nil(m)
			req.Contains(err.Error(), tc.errMsg)
		})
	}
}

func TestParse_SampleManifest(t *testing.T) {
	req := require.New(t)

	// The sample shipped with the binary must always be a valid manifest.
	data, err := templates.Read(templates.PackagesManifestSampleFile)
	req.NoError(err)

	m, err := Parse(data, templates.PackagesManifestSampleFile)
	req.NoError(err)
	req.NotEmpty(m.Packages)
	req.Contains(m.PackageNames(), "cups-client")
	req.Contains(m.PackageNames(), "ghostscript")
}
