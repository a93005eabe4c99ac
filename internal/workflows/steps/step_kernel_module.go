// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/manifest"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/pkg/kernel"
)

const LoadKernelModulesStepId = "load-kernel-modules"

// LoadKernelModules ensures every kernel module the manifest declares is
// loaded, so USB printer class devices enumerate before the service first
// talks to them. Already-loaded modules are recorded as skipped. Rollback
// unloads only the modules this run loaded.
func LoadKernelModules(man *manifest.Manifest) automa.Builder {
	var loadedByRun []manifest.KernelModule

	return automa.NewStepBuilder().
		WithId(LoadKernelModulesStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if man == nil {
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.IllegalState.New("manifest is nil; the load step must run first")))
			}

			if len(man.KernelModules) == 0 {
				logx.As().Info().Msg("Manifest declares no kernel modules, nothing to load")
				return automa.StepSuccessReport(stp.Id())
			}

			meta := map[string]string{}

			for _, mod := range man.KernelModules {
				module, err := kernel.NewModule(mod.Name)
				if err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				loaded, persisted, err := module.IsLoaded()
				if err != nil {
					return automa.StepFailureReport(stp.Id(),
						automa.WithError(errorx.Decorate(err, "failed to check kernel module %q", mod.Name)))
				}

				if loaded && (!mod.Persist || persisted) {
					meta[mod.Name] = AlreadyLoaded
					logx.As().Info().Msgf("Kernel module %q is already loaded, skipping", mod.Name)
					continue
				}

				if err := module.Load(mod.Persist); err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				meta[mod.Name] = LoadedByThisStep
				if !loaded {
					loadedByRun = append(loadedByRun, mod)
				}

				logx.As().Info().
					Str("module", mod.Name).
					Bool("persist", mod.Persist).
					Msg("Kernel module loaded")
			}

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithRollback(func(ctx context.Context, stp automa.Step) *automa.Report {
			if len(loadedByRun) == 0 {
				return automa.StepSkippedReport(stp.Id())
			}

			for i := len(loadedByRun) - 1; i >= 0; i-- {
				mod := loadedByRun[i]

				module, err := kernel.NewModule(mod.Name)
				if err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				if err := module.Unload(mod.Persist); err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}

				logx.As().Info().Str("module", mod.Name).Msg("Kernel module unloaded on rollback")
			}

			return automa.StepSuccessReport(stp.Id())
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Loading kernel modules")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Kernel modules are loaded")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to load kernel modules")
		})
}
