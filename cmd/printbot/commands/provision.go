// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/cmd/printbot/commands/common"
	"github.com/printworks/printbot/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	flagProvisionManifest string
	flagNonInteractive    bool
	flagStopOnError       bool
	flagRollbackOnError   bool
	flagContinueOnError   bool

	provisionCmd = &cobra.Command{
		Use:   "provision",
		Short: "Provision the printbot environment on this host",
		Long: "Create the printbot directory tree, install the packages listed in the manifest, load the " +
			"usblp kernel module, install the service executable and seed the secrets and printing config files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			execMode, err := common.GetExecutionMode(flagContinueOnError, flagStopOnError, flagRollbackOnError)
			if err != nil {
				return errorx.Decorate(err, "failed to determine execution mode")
			}

			opts := workflows.DefaultWorkflowExecutionOptions()
			opts.ExecutionMode = execMode

			logx.As().Debug().
				Str("manifest", flagProvisionManifest).
				Bool("nonInteractive", flagNonInteractive).
				Any("opts", opts).
				Msg("Provisioning the printbot environment")

			// Provisioning mutates shared host state, so hold the install lock for
			// the whole run. A concurrent provision or service install waits here.
			release, err := workflows.AcquireInstallLock(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			wb := workflows.WithWorkflowExecutionMode(
				workflows.NewProvisionWorkflow(flagProvisionManifest, flagNonInteractive), opts)

			common.RunWorkflow(cmd.Context(), wb)

			logx.As().Info().Msg("Successfully provisioned the printbot environment")
			return nil
		},
	}
)

func init() {
	common.FlagManifest.SetVarP(provisionCmd, &flagProvisionManifest, false)
	common.FlagNonInteractive.SetVarP(provisionCmd, &flagNonInteractive, false)
	common.FlagStopOnError.SetVarP(provisionCmd, &flagStopOnError, false)
	common.FlagRollbackOnError.SetVarP(provisionCmd, &flagRollbackOnError, false)
	common.FlagContinueOnError.SetVarP(provisionCmd, &flagContinueOnError, false)
}
