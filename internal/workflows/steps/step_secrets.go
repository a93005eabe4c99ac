// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/charmbracelet/huh"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/templates"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/pkg/security"
	"golang.org/x/term"
)

const SetupSecretsFileStepId = "setup-secrets-file"

// SetupSecretsFile materializes the secrets template when no secrets file
// exists yet. An existing file is never touched, so operator-entered
// credentials survive re-provisioning. Template problems are reported but
// never fail the workflow; the operator can always create the file by hand.
//
// When stdin is a terminal and the run is not marked non-interactive, the
// operator is offered a form to enter BOT_TOKEN and ADMIN_ID immediately
// instead of editing the file afterwards.
func SetupSecretsFile(nonInteractive bool) automa.Builder {
	return automa.NewStepBuilder().WithId(SetupSecretsFileStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			meta := map[string]string{}

			written, err := templates.CopyTemplateFileIfMissing(
				templates.SecretsTemplateFile, core.SecretsFile, security.ACLSecretsFilePerms)
			if err != nil {
				logx.As().Warn().Err(err).
					Str("secrets_file", core.SecretsFile).
					Msg("Failed to write the secrets template; create the file manually before starting the service")
				meta["template_error"] = err.Error()
				return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
			}

			if !written {
				meta[AlreadyExists] = "true"
				logx.As().Info().
					Str("secrets_file", core.SecretsFile).
					Msg("Secrets file already exists, keeping operator values")
				return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
			}

			meta[WrittenByThisStep] = "true"

			if !nonInteractive && term.IsTerminal(int(os.Stdin.Fd())) {
				if err := promptForSecrets(core.SecretsFile); err != nil {
					logx.As().Warn().Err(err).Msg("Secrets form was not completed, keeping placeholder values")
					meta["prompt"] = "skipped"
				} else {
					meta["prompt"] = "completed"
					logx.As().Info().Msg("Telegram credentials saved to the secrets file")
					return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
				}
			}

			logx.As().Info().
				Str("secrets_file", core.SecretsFile).
				Msg("Secrets template written; edit it and set BOT_TOKEN and ADMIN_ID before starting the service")

			return automa.StepSuccessReport(stp.Id(), automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Setting up the secrets file")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Secrets file setup failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Secrets file setup completed")
		})
}

// promptForSecrets collects the Telegram credentials interactively and writes
// them into the freshly created secrets file.
func promptForSecrets(secretsFile string) error {
	var botToken, adminId string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Telegram bot token").
			Description("Issued by @BotFather for this bot").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errorx.IllegalArgument.New("bot token cannot be empty")
				}
				return nil
			}).
			Value(&botToken),
		huh.NewInput().
			Title("Admin user id").
			Description("Numeric Telegram user id that manages the user whitelist").
			Validate(func(s string) error {
				if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
					return errorx.IllegalArgument.New("admin id must be a numeric Telegram user id")
				}
				return nil
			}).
			Value(&adminId),
	))

	if err := form.Run(); err != nil {
		return err
	}

	return writeSecretValues(secretsFile, map[string]string{
		"BOT_TOKEN": strings.TrimSpace(botToken),
		"ADMIN_ID":  strings.TrimSpace(adminId),
	})
}

// writeSecretValues replaces the values of the given keys in a dotenv-format
// file, preserving comments and unrelated lines.
func writeSecretValues(path string, values map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errorx.InternalError.Wrap(err, "failed to read secrets file %s", path)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		for key, value := range values {
			if strings.HasPrefix(line, key+"=") {
				lines[i] = key + "=" + value
			}
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), security.ACLSecretsFilePerms); err != nil {
		return errorx.InternalError.Wrap(err, "failed to update secrets file %s", path)
	}

	return nil
}
