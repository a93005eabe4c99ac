// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/bluet/syspkg/manager"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/manifest"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/pkg/software"
)

const (
	RefreshSystemPackageIndexStepId = "refresh-system-package-index"
	InstallManifestPackagesStepId   = "install-manifest-packages"
)

// RefreshSystemPackageIndex refreshes the system package index.
// Essentially this is equivalent to running `apt-get update` on Debian-based systems.
func RefreshSystemPackageIndex() automa.Builder {
	return automa.NewStepBuilder().
		WithId(RefreshSystemPackageIndexStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			err := software.RefreshPackageIndex()
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			return automa.StepSuccessReport(stp.Id())
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Refreshing system package index")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Package index refreshed successfully")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to refresh package index")
		})
}

// InstallManifestPackages installs every system package the manifest declares.
// Already-installed packages are skipped. Packages installed by this run are
// recorded, and rollback uninstalls only those, in reverse order, so a rollback
// never removes software the host had before provisioning started.
func InstallManifestPackages(man *manifest.Manifest) automa.Builder {
	var installedByRun []string

	newInstaller := func(name string) (software.Package, error) {
		return software.NewPackageInstaller(
			software.WithPackageName(name),
			software.WithPackageOptions(manager.Options{
				DryRun:      false,
				Interactive: false,
				AssumeYes:   true,
			}),
		)
	}

	return automa.NewStepBuilder().
		WithId(InstallManifestPackagesStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if man == nil {
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.IllegalState.New("manifest is nil; the load step must run first")))
			}

			if len(man.Packages) == 0 {
				logx.As().Info().Msg("Manifest declares no packages, nothing to install")
				return automa.StepSuccessReport(stp.Id())
			}

			meta := map[string]string{}

			for _, pkg := range man.Packages {
				installer, err := newInstaller(pkg.Name)
				if err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				if installer.IsInstalled() {
					meta[pkg.Name] = AlreadyInstalled
					logx.As().Info().Msgf("Package %q is already installed, skipping installation", pkg.Name)
					continue
				}

				logx.As().Debug().Msgf("Installing %s...", pkg.Name)

				info, err := installer.Install()
				if err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				logx.As().Info().
					Str("name", info.Name).
					Str("version", info.Version).
					Str("status", string(info.Status)).
					Msgf("Package %q is installed by this step successfully", pkg.Name)

				meta[pkg.Name] = InstalledByThisStep
				installedByRun = append(installedByRun, pkg.Name)
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithRollback(func(ctx context.Context, stp automa.Step) *automa.Report {
			if len(installedByRun) == 0 {
				return automa.StepSkippedReport(stp.Id())
			}

			meta := map[string]string{}

			for i := len(installedByRun) - 1; i >= 0; i-- {
				name := installedByRun[i]

				installer, err := newInstaller(name)
				if err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				if !installer.IsInstalled() {
					meta[name] = "not-installed"
					continue
				}

				logx.As().Debug().Msgf("Uninstalling %s...", name)

				info, err := installer.Uninstall()
				if err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				logx.As().Info().
					Str("name", info.Name).
					Str("status", string(info.Status)).
					Msgf("Package %q is uninstalled successfully", name)

				meta[name] = "uninstalled"
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing manifest packages")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Manifest package installation completed successfully")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Manifest package installation failed")
		})
}
