// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/internal/workflows/steps"
	"github.com/printworks/printbot/pkg/os"
)

// NewServiceInstallWorkflow builds the service installation procedure. The
// provisioned executable is validated before the privilege check so a user
// who skipped provisioning finds out without needing sudo first. The service
// is enabled but not started; the operator starts it once the secrets file
// has real credentials.
func NewServiceInstallWorkflow(sd os.Manager) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().WithId("service-install").Steps(
		steps.CheckProvisionedExecutable(),
		CheckPrivilegesStep(),
		steps.InstallSystemdUnit(),
		steps.ReloadSystemdDaemon(sd),
		steps.EnableService(sd),
	).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing the print service")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Service installation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Service installation completed")
		})
}

// NewServiceUninstallWorkflow reverses the service installation: stop and
// disable the unit, remove its file, and reload systemd. Each step tolerates
// a unit that was never installed, so uninstall is safe on a partial setup.
func NewServiceUninstallWorkflow(sd os.Manager) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().WithId("service-uninstall").Steps(
		CheckPrivilegesStep(),
		steps.DisableService(sd),
		steps.RemoveSystemdUnit(),
		steps.ReloadSystemdDaemon(sd),
	).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Uninstalling the print service")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Service uninstall failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Service uninstall completed")
		})
}
