// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/manifest"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/internal/workflows/steps"
)

// NewProvisionWorkflow builds the provisioning procedure. The order is load
// bearing: preflights run before anything mutates, the manifest is loaded and
// validated before any package operation, and the configuration files come
// last so a package failure never leaves half-written config behind.
func NewProvisionWorkflow(manifestPath string, nonInteractive bool) *automa.WorkflowBuilder {
	if manifestPath == "" {
		manifestPath = core.PackagesManifestFile
	}

	// Filled in by the manifest step; the package and kernel module steps read
	// it at execution time.
	man := &manifest.Manifest{}

	return automa.NewWorkflowBuilder().WithId("provision-environment").Steps(
		CheckPrivilegesStep(),
		CheckServiceAccountStep(),
		steps.SetupEnvironmentDirs(),
		steps.InstallManifestSample(),
		steps.LoadManifest(manifestPath, man),
		steps.RefreshSystemPackageIndex(),
		steps.InstallManifestPackages(man),
		steps.LoadKernelModules(man),
		steps.InstallExecutable(),
		steps.SetupSecretsFile(nonInteractive),
		steps.SetupPrintingDefaults(),
	).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Provisioning the print service environment")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Provisioning failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Provisioning completed")
		})
}
