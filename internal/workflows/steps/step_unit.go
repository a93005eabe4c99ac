// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/unit"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/pkg/os"
)

const (
	InstallSystemdUnitStepId  = "install-systemd-unit"
	RemoveSystemdUnitStepId   = "remove-systemd-unit"
	ReloadSystemdDaemonStepId = "reload-systemd-daemon"
	EnableServiceStepId       = "enable-service"
	DisableServiceStepId      = "disable-service"
)

// InstallSystemdUnit renders the service unit and writes it into the systemd
// unit directory. Rendering happens before any file is touched, so a template
// problem never leaves a partial unit behind. An existing unit file is
// overwritten; it belongs to this installer.
func InstallSystemdUnit() automa.Builder {
	var installed bool

	return automa.NewStepBuilder().WithId(InstallSystemdUnitStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			content, err := unit.Render()
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			if err := unit.Install(content); err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}
			installed = true

			logx.As().Info().
				Str("unit_file", core.UnitFilePath).
				Msg("Systemd unit installed")

			return automa.StepSuccessReport(stp.Id(),
				automa.WithMetadata(map[string]string{"unit_file": core.UnitFilePath}))
		}).
		WithRollback(func(ctx context.Context, stp automa.Step) *automa.Report {
			if !installed {
				return automa.StepSkippedReport(stp.Id())
			}

			if err := unit.Remove(); err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			return automa.StepSuccessReport(stp.Id())
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing systemd unit %s", core.UnitFileName)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to install systemd unit")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Systemd unit installed")
		})
}

// RemoveSystemdUnit deletes the service unit file. A unit that is already
// absent is a recorded skip, so uninstall stays idempotent.
func RemoveSystemdUnit() automa.Builder {
	return automa.NewStepBuilder().WithId(RemoveSystemdUnitStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			exists, err := unit.IsInstalled()
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			if !exists {
				logx.As().Info().
					Str("unit_file", core.UnitFilePath).
					Msg("Systemd unit is not installed, nothing to remove")
				return automa.StepSuccessReport(stp.Id(),
					automa.WithMetadata(map[string]string{"unit_file": "absent"}))
			}

			if err := unit.Remove(); err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			return automa.StepSuccessReport(stp.Id(),
				automa.WithMetadata(map[string]string{"unit_file": core.UnitFilePath}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing systemd unit %s", core.UnitFileName)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to remove systemd unit")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Systemd unit removed")
		})
}

// ReloadSystemdDaemon asks the systemd manager to reload its configuration so
// it picks up the installed or removed unit file.
func ReloadSystemdDaemon(sd os.Manager) automa.Builder {
	return automa.NewStepBuilder().WithId(ReloadSystemdDaemonStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := sd.DaemonReload(ctx); err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			return automa.StepSuccessReport(stp.Id())
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Reloading systemd daemon")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to reload systemd daemon")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Systemd daemon reloaded")
		})
}

// EnableService enables the service so it starts on boot. It deliberately does
// not start the service: the operator decides when the bot first goes live,
// typically after filling in the secrets file.
func EnableService(sd os.Manager) automa.Builder {
	var enabledByRun bool

	return automa.NewStepBuilder().WithId(EnableServiceStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := sd.EnableService(ctx, core.ServiceName); err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}
			enabledByRun = true

			logx.As().Info().
				Str("service", core.ServiceName).
				Msg("Service enabled; start it with: sudo systemctl start " + core.ServiceName)

			return automa.StepSuccessReport(stp.Id(),
				automa.WithMetadata(map[string]string{"service": core.ServiceName}))
		}).
		WithRollback(func(ctx context.Context, stp automa.Step) *automa.Report {
			if !enabledByRun {
				return automa.StepSkippedReport(stp.Id())
			}

			if err := sd.DisableService(ctx, core.ServiceName); err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			return automa.StepSuccessReport(stp.Id())
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Enabling service %s", core.ServiceName)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to enable service")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Service enabled")
		})
}

// DisableService stops and disables the service. A unit that was never
// installed is a recorded skip rather than an error, so uninstall can run on
// a host that was only partially set up.
func DisableService(sd os.Manager) automa.Builder {
	return automa.NewStepBuilder().WithId(DisableServiceStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			exists, err := unit.IsInstalled()
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			if !exists {
				logx.As().Info().
					Str("service", core.ServiceName).
					Msg("Systemd unit is not installed, nothing to disable")
				return automa.StepSuccessReport(stp.Id(),
					automa.WithMetadata(map[string]string{"unit_file": "absent"}))
			}

			running, err := sd.IsServiceRunning(ctx, core.ServiceName)
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}
			if running {
				if err := sd.StopService(ctx, core.ServiceName); err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}
			}

			if err := sd.DisableService(ctx, core.ServiceName); err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			return automa.StepSuccessReport(stp.Id(),
				automa.WithMetadata(map[string]string{"service": core.ServiceName}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Disabling service %s", core.ServiceName)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to disable service")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Service disabled")
		})
}
