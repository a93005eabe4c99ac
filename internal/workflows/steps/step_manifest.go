// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"strconv"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/doctor"
	"github.com/printworks/printbot/internal/manifest"
	"github.com/printworks/printbot/internal/templates"
	"github.com/printworks/printbot/internal/workflows/notify"
)

const (
	LoadManifestStepId          = "load-packages-manifest"
	InstallManifestSampleStepId = "install-manifest-sample"
)

// InstallManifestSample materializes the embedded sample manifest next to the
// expected manifest location so the operator has a starting point to copy
// from. Failing to write the sample is a warning, not a workflow failure.
func InstallManifestSample() automa.Builder {
	return automa.NewStepBuilder().WithId(InstallManifestSampleStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			written, err := templates.CopyTemplateFileIfMissing(
				templates.PackagesManifestSampleFile, core.PackagesManifestSampleFile, 0o644)
			if err != nil {
				logx.As().Warn().Err(err).
					Str("sample", core.PackagesManifestSampleFile).
					Msg("Failed to write the sample manifest")
				return automa.StepSuccessReport(stp.Id(),
					automa.WithMetadata(map[string]string{"sample_error": err.Error()}))
			}

			meta := map[string]string{"sample": core.PackagesManifestSampleFile}
			if written {
				meta[WrittenByThisStep] = "true"
			} else {
				meta[AlreadyExists] = "true"
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing sample package manifest")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to install sample package manifest")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Sample package manifest is in place")
		})
}

// LoadManifest reads, parses, and validates the package manifest and stores
// the result in out for the steps that follow. A missing manifest aborts the
// workflow here, before any package operation has run.
func LoadManifest(manifestPath string, out *manifest.Manifest) automa.Builder {
	return automa.NewStepBuilder().WithId(LoadManifestStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			man, err := manifest.Load(manifestPath)
			if err != nil {
				if errorx.IsOfType(err, manifest.ManifestNotFound) {
					err = errorx.EnsureStackTrace(err).
						WithProperty(doctor.ErrPropertyResolution,
							"Create the manifest (a sample is embedded in the binary and installed at "+
								core.PackagesManifestSampleFile+") or point at one with --manifest")
				}

				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			*out = *man

			logx.As().Info().
				Str("manifest", manifestPath).
				Strs("packages", man.PackageNames()).
				Int("kernel_modules", len(man.KernelModules)).
				Msg("Package manifest loaded")

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(map[string]string{
				"manifest":      manifestPath,
				"packages":      strconv.Itoa(len(man.Packages)),
				"kernelModules": strconv.Itoa(len(man.KernelModules)),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Loading package manifest from %s", manifestPath)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to load package manifest")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Package manifest loaded successfully")
		})
}
