// SPDX-License-Identifier: Apache-2.0

package software

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFakeTool drops an executable shell script that prints the given banner,
// mimicking a real tool's --version output.
func writeFakeTool(t *testing.T, name, banner string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	script := fmt.Sprintf("#!/bin/sh\necho \"%s\"\n", banner)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

func TestDetectExecutablePath(t *testing.T) {
	req := require.New(t)
	d := NewProgramDetector(nil)

	path, err := d.DetectExecutablePath("sh")
	req.NoError(err)
	req.NotEmpty(path)

	_, err = d.DetectExecutablePath("this-tool-does-not-exist")
	req.Error(err)
	req.Contains(err.Error(), "failed to find path to the program")
	req.True(IsSoftwareNotFound(err))
}

func TestDetectProgramVersion(t *testing.T) {
	testCases := []struct {
		name   string
		banner string
		tool   Tool
		want   string
		errMsg string
	}{
		{
			name:   "scanner banner",
			banner: "scanimage (sane-backends) 1.1.1; backend version 1.1.1",
			tool:   Tool{Name: ToolScanimage, VersionArgs: "--version"},
			want:   "1.1.1",
		},
		{
			name:   "bare version number",
			banner: "10.02.1",
			tool:   Tool{Name: ToolGs, VersionArgs: "--version"},
			want:   "10.02.1",
		},
		{
			name:   "office suite banner",
			banner: "LibreOffice 7.3.7.2 30(Build:2)",
			tool:   Tool{Name: ToolSoffice, VersionArgs: "--version"},
			want:   "7.3.7",
		},
		{
			name:   "two segment version",
			banner: "tool 2.5",
			tool:   Tool{Name: "tool", VersionArgs: "--version"},
			want:   "2.5",
		},
		{
			name: "presence only tool",
			tool: Tool{Name: ToolLp},
			want: "",
		},
		{
			name:   "custom regex",
			banner: "release v3.14.159",
			tool:   Tool{Name: "tool", VersionArgs: "--version", VersionRegex: `v\d+\.\d+\.\d+`},
			want:   "v3.14.159",
		},
		{
			name:   "invalid regex",
			banner: "1.2.3",
			tool:   Tool{Name: "tool", VersionArgs: "--version", VersionRegex: "(["},
			errMsg: "failed to parse version regex",
		},
	}

	d := NewProgramDetector(nil)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			path := writeFakeTool(t, tc.tool.Name, tc.banner)
			version, err := d.DetectProgramVersion(path, tc.tool)
			if tc.errMsg != "" {
				req.Error(err)
				req.Contains(err.Error(), tc.errMsg)
				return
			}

			req.NoError(err)
			req.Equal(tc.want, version)
		})
	}
}

func TestDetectProgramVersion_CommandFails(t *testing.T) {
	req := require.New(t)
	d := NewProgramDetector(nil)

	_, err := d.DetectProgramVersion("/no/such/binary", Tool{Name: ToolGs, VersionArgs: "--version"})
	req.Error(err)
	req.Contains(err.Error(), "failed to determine version of the program")
}

func TestComputeProgramHash(t *testing.T) {
	req := require.New(t)
	d := NewProgramDetector(nil)

	path := writeFakeTool(t, "gs", "9.55.0")
	content, err := os.ReadFile(path)
	req.NoError(err)

	hash, err := d.ComputeProgramHash(path)
	req.NoError(err)
	req.Equal(sha256.Sum256(content), hash)

	_, err = d.ComputeProgramHash("/no/such/binary")
	req.Error(err)
	req.Contains(err.Error(), "failed to compute sha256 of the program")
}

func TestGetProgramInfo(t *testing.T) {
	req := require.New(t)
	d := NewProgramDetector(nil)

	path := writeFakeTool(t, "gs", "10.02.1")
	tool := Tool{Name: ToolGs, DefaultLocation: path, VersionArgs: "--version"}

	info, err := d.GetProgramInfo(context.Background(), tool)
	req.NoError(err)
	req.Equal(path, info.GetPath())
	req.Equal("10.02.1", info.GetVersion())
	req.Len(info.GetHash(), 64)
	req.True(info.IsExecOwner())
}

func TestGetProgramInfo_FallsBackToShellResolution(t *testing.T) {
	req := require.New(t)
	d := NewProgramDetector(nil)

	// The default location does not exist so the detector must resolve the
	// tool through the shell instead.
	tool := Tool{Name: "sh", DefaultLocation: "/no/such/dir/sh"}

	info, err := d.GetProgramInfo(context.Background(), tool)
	req.NoError(err)
	req.NotEqual(tool.DefaultLocation, info.GetPath())
	req.True(info.IsExecAny())
}

func TestGetProgramInfo_MissingTool(t *testing.T) {
	req := require.New(t)
	d := NewProgramDetector(nil)

	_, err := d.GetProgramInfo(context.Background(), Tool{Name: "this-tool-does-not-exist"})
	req.Error(err)
	req.True(IsSoftwareNotFound(err))
}
