// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"io"
	"os"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/doctor"
	"github.com/printworks/printbot/internal/version"
	"github.com/printworks/printbot/internal/workflows/notify"
)

const (
	CheckProvisionedExecutableStepId = "check-provisioned-executable"
	InstallExecutableStepId          = "install-executable"
)

// CheckProvisionedExecutable verifies the provisioned service binary exists
// and is a regular executable file. Service installation depends on it, and
// this check runs before any privileged action so the failure mode is a plain
// instruction rather than a half-configured unit.
func CheckProvisionedExecutable() automa.Builder {
	return automa.NewStepBuilder().WithId(CheckProvisionedExecutableStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			exePath := core.ExecutablePath

			info, err := os.Stat(exePath)
			if err != nil {
				if os.IsNotExist(err) {
					return automa.StepFailureReport(stp.Id(), automa.WithError(
						errorx.IllegalState.New("provisioned executable %s does not exist", exePath).
							WithProperty(doctor.ErrPropertyResolution,
								"Provision the environment first: run `sudo printbot provision`")))
				}

				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to stat %s", exePath)))
			}

			if !info.Mode().IsRegular() {
				return automa.StepFailureReport(stp.Id(), automa.WithError(
					errorx.IllegalState.New("provisioned executable %s is not a regular file", exePath).
						WithProperty(doctor.ErrPropertyResolution,
							"Remove the entry at that path and run `sudo printbot provision`")))
			}

			if info.Mode().Perm()&0o111 == 0 {
				return automa.StepFailureReport(stp.Id(), automa.WithError(
					errorx.IllegalState.New("provisioned executable %s is not executable", exePath).
						WithProperty(doctor.ErrPropertyResolution,
							"Re-provision the binary: run `sudo printbot provision`")))
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(map[string]string{
				"executable_path": exePath,
				"mode":            info.Mode().String(),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking the provisioned executable")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Provisioned executable check failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Provisioned executable check completed successfully")
		})
}

// InstallExecutable installs the currently-running binary into the environment
// bin directory by copying it to a temp file and renaming it into place. A
// convenience symlink in /usr/local/bin is attempted but never fatal.
func InstallExecutable() automa.Builder {
	return automa.NewStepBuilder().WithId(InstallExecutableStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			srcPath, err := os.Executable()
			if err != nil {
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to locate current executable")))
			}

			destPath := core.ExecutablePath

			src, err := os.Open(srcPath)
			if err != nil {
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to open source executable %s", srcPath)))
			}
			defer func() {
				_ = src.Close()
			}()

			// write to a temp file in the destination dir then rename
			tmpFile, err := os.CreateTemp(core.BinDir, "printbot.tmp.*")
			if err != nil {
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to create temp file in %s", core.BinDir)))
			}
			tmpPath := tmpFile.Name()

			if _, err := io.Copy(tmpFile, src); err != nil {
				_ = tmpFile.Close()
				_ = os.Remove(tmpPath)
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to copy binary")))
			}

			if err := tmpFile.Close(); err != nil {
				_ = os.Remove(tmpPath)
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to finalize temp file")))
			}

			// ensure executable permission
			if err := os.Chmod(tmpPath, 0o755); err != nil {
				_ = os.Remove(tmpPath)
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to set executable permission")))
			}

			// atomically move into place
			if err := os.Rename(tmpPath, destPath); err != nil {
				_ = os.Remove(tmpPath)
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to install binary to %s", destPath)))
			}

			// create a symlink in /usr/local/bin if possible
			symlinkPath := core.LocalBinSymlink
			_ = os.Remove(symlinkPath) // ignore error
			if err := os.Symlink(destPath, symlinkPath); err != nil {
				logx.As().Warn().
					Str("executable_path", destPath).
					Str("symlink_path", symlinkPath).
					Err(err).
					Msg("Failed to create symlink in /usr/local/bin")
			} else {
				logx.As().Info().
					Str("executable_path", destPath).
					Str("symlink_path", symlinkPath).
					Msg("Created symlink in /usr/local/bin")
			}

			logx.As().Info().
				Str("executable_path", destPath).
				Msg("Service binary installed successfully")

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(map[string]string{
				"executable_path":   destPath,
				"installed_version": version.Number(),
				"installed_commit":  version.Commit(),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing the service binary to %s", core.ExecutablePath)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Service binary installation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Service binary installed successfully")
		})
}
