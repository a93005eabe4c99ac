// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"
	"strconv"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/pkg/fsx"
)

const SetupEnvironmentDirsStepId = "setup-environment-dirs"

// SetupEnvironmentDirs creates the environment directory tree under the
// service home. Existing directories are left untouched and recorded as
// skipped, which is also the idempotence marker for re-provisioning.
func SetupEnvironmentDirs() automa.Builder {
	return automa.NewStepBuilder().WithId(SetupEnvironmentDirsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			fm, err := fsx.NewManager()
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			meta := map[string]string{}
			var createdDirs []string

			for _, dir := range core.EnvDirs() {
				_, exists, err := fm.PathExists(dir)
				if err != nil {
					return automa.StepFailureReport(stp.Id(),
						automa.WithError(errorx.InternalError.Wrap(err, "failed to check directory %s", dir)))
				}

				if exists {
					meta[dir] = "skipped"
					continue
				}

				if err := fm.CreateDirectory(dir, true); err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				meta[dir] = "created"
				createdDirs = append(createdDirs, dir)
			}

			// Ownership matters only on the privileged provisioning path; the
			// directories must be writable by the service account, not root.
			if os.Geteuid() == 0 {
				for _, dir := range createdDirs {
					if err := fm.ApplyServiceOwnership(dir, false); err != nil {
						return automa.StepFailureReport(stp.Id(), automa.WithError(err))
					}
				}
			}

			if len(createdDirs) == 0 {
				meta[AlreadyExists] = "true"
				logx.As().Info().Msg("Environment directories already exist, nothing to create")
			} else {
				meta[CreatedByThisStep] = strconv.Itoa(len(createdDirs))
				logx.As().Info().
					Strs("dirs", createdDirs).
					Msg("Environment directories created")
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Setting up environment directories under %s", core.HomeDir)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to set up environment directories")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Environment directories are ready")
		})
}
