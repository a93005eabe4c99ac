// SPDX-License-Identifier: Apache-2.0

// Package unit renders and installs the systemd unit for the print service.
// Rendering is pure; installation stages the unit in a temporary file inside
// the systemd unit directory and renames it into place, so an existing unit
// is always replaced whole, never appended to or left half-written.
package unit

import (
	"os"
	"strings"

	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/templates"
)

const unitFileMode = 0o644

// Render produces the unit file text from the embedded template and the
// service constants. Substitution is strict, and the output is checked for
// leftover placeholder tokens so a template edit that orphans a key fails
// here rather than after the file lands under /etc/systemd/system.
func Render() (string, error) {
	data := templates.ServiceUnitData{
		Description:      "Telegram print and scan bot",
		AfterTarget:      "network-online.target",
		ServiceType:      "simple",
		ServiceUser:      core.ServiceUser,
		ServiceGroup:     core.ServiceGroup,
		WorkingDirectory: core.HomeDir,
		EnvironmentFile:  core.SecretsFile,
		ExecStart:        core.ExecutablePath + " run",
		RestartPolicy:    "always",
		RestartSec:       10,
		InstallTarget:    "multi-user.target",
	}

	content, err := templates.Render(templates.SystemdUnitTemplateFile, data)
	if err != nil {
		return "", err // already wrapped
	}

	if strings.Contains(content, "{{") || strings.Contains(content, "}}") {
		return "", errorx.IllegalState.New("rendered unit file contains unresolved placeholders")
	}

	return content, nil
}

// Install writes the rendered unit text to the unit file path. The temp file
// is created in the same directory as the final destination so the rename
// stays on one filesystem and is atomic.
func Install(content string) error {
	unitDir := core.SystemdUnitFilesDir

	tmpFile, err := os.CreateTemp(unitDir, core.UnitFileName+".tmp.*")
	if err != nil {
		return errorx.InternalError.Wrap(err, "failed to create temp file in %s", unitDir)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return errorx.InternalError.Wrap(err, "failed to write unit file content")
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return errorx.InternalError.Wrap(err, "failed to flush unit file content")
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errorx.InternalError.Wrap(err, "failed to finalize temp unit file")
	}

	if err := os.Chmod(tmpPath, unitFileMode); err != nil {
		_ = os.Remove(tmpPath)
		return errorx.InternalError.Wrap(err, "failed to set unit file permissions")
	}

	if err := os.Rename(tmpPath, core.UnitFilePath); err != nil {
		_ = os.Remove(tmpPath)
		return errorx.InternalError.Wrap(err, "failed to install unit file at %s", core.UnitFilePath)
	}

	return nil
}

// IsInstalled reports whether the unit file is present on disk as a regular file.
func IsInstalled() (bool, error) {
	info, err := os.Stat(core.UnitFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errorx.InternalError.Wrap(err, "failed to stat unit file %s", core.UnitFilePath)
	}

	return info.Mode().IsRegular(), nil
}

// Remove deletes the installed unit file. An already absent unit is not an error.
func Remove() error {
	if err := os.Remove(core.UnitFilePath); err != nil && !os.IsNotExist(err) {
		return errorx.InternalError.Wrap(err, "failed to remove unit file %s", core.UnitFilePath)
	}

	return nil
}
