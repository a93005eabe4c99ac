// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/templates"
	"github.com/printworks/printbot/internal/tomlx"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/pkg/fsx"
)

const SetupPrintingDefaultsStepId = "setup-printing-defaults"

// SetupPrintingDefaults seeds the printing configuration file from the
// embedded defaults. On first provision the file is written verbatim; on
// re-provision only keys missing from the operator's file are filled in, so
// edited values are never reverted. Environment-derived values such as the
// spool directory always reflect the current environment root.
func SetupPrintingDefaults() automa.Builder {
	return automa.NewStepBuilder().WithId(SetupPrintingDefaultsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			meta := map[string]string{"config_file": core.PrintingDefaultsFile}

			defaults, err := printingDefaults()
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			fm, err := fsx.NewManager()
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			_, exists, err := fm.PathExists(core.PrintingDefaultsFile)
			if err != nil {
				return automa.StepFailureReport(stp.Id(), automa.WithError(err))
			}

			if !exists {
				if err := writePrintingDefaults(core.PrintingDefaultsFile, defaults); err != nil {
					return automa.StepFailureReport(stp.Id(), automa.WithError(err))
				}
				meta[WrittenByThisStep] = "true"
				logx.As().Info().
					Str("config_file", core.PrintingDefaultsFile).
					Msg("Printing defaults written")
				return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
			}

			// Existing file: add keys introduced since it was written, keep
			// every value the operator has set.
			tcm := tomlx.NewTomlConfigManager()
			if err := tcm.FillTomlFile(core.PrintingDefaultsFile, defaults); err != nil {
				return automa.StepFailureReport(stp.Id(),
					automa.WithError(errorx.InternalError.Wrap(err, "failed to merge printing defaults into %s", core.PrintingDefaultsFile)))
			}
			meta[AlreadyExists] = "true"
			logx.As().Info().
				Str("config_file", core.PrintingDefaultsFile).
				Msg("Printing configuration exists, filled in missing defaults only")

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Setting up printing defaults at %s", core.PrintingDefaultsFile)
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Failed to set up printing defaults")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Printing defaults are ready")
		})
}

// printingDefaults parses the embedded defaults and overrides the
// environment-derived values for the current environment root.
func printingDefaults() (map[string]interface{}, error) {
	data, err := templates.Read(templates.PrintingDefaultsTemplateFile)
	if err != nil {
		return nil, err // already wrapped
	}

	var defaults map[string]interface{}
	if err := toml.Unmarshal(data, &defaults); err != nil {
		return nil, errorx.IllegalFormat.Wrap(err, "failed to parse embedded printing defaults")
	}

	tcm := tomlx.NewTomlConfigManager()
	tcm.SetNestedValue(defaults, "jobs.spool_dir", core.SpoolDir)

	return defaults, nil
}

func writePrintingDefaults(path string, defaults map[string]interface{}) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errorx.InternalError.Wrap(err, "failed to create printing configuration %s", path)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(defaults); err != nil {
		return errorx.InternalError.Wrap(err, "failed to write printing configuration %s", path)
	}

	return nil
}
