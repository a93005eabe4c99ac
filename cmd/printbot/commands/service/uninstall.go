// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/cmd/printbot/commands/common"
	"github.com/printworks/printbot/internal/workflows"
	osx "github.com/printworks/printbot/pkg/os"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Stop, disable and remove the printbot systemd service",
	Long: "Stop the service if it is running, disable it, remove the unit file and reload the " +
		"systemd daemon. The provisioned environment under /opt/printbot is left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		execMode, err := common.GetExecutionMode(flagContinueOnError, flagStopOnError, flagRollbackOnError)
		if err != nil {
			return errorx.Decorate(err, "failed to determine execution mode")
		}

		opts := workflows.DefaultWorkflowExecutionOptions()
		opts.ExecutionMode = execMode

		release, err := workflows.AcquireInstallLock(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		wb := workflows.WithWorkflowExecutionMode(
			workflows.NewServiceUninstallWorkflow(osx.NewManager()), opts)

		common.RunWorkflow(cmd.Context(), wb)

		logx.As().Info().Msg("Successfully removed the printbot service")
		return nil
	},
}

func init() {
	common.FlagStopOnError.SetVarP(uninstallCmd, &flagStopOnError, false)
	common.FlagRollbackOnError.SetVarP(uninstallCmd, &flagRollbackOnError, false)
	common.FlagContinueOnError.SetVarP(uninstallCmd, &flagContinueOnError, false)
}
