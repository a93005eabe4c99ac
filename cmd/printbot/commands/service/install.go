// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/printworks/printbot/cmd/printbot/commands/common"
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/workflows"
	osx "github.com/printworks/printbot/pkg/os"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install and enable the printbot systemd service",
	Long: "Render the systemd unit file, install it, reload the systemd daemon and enable the service. " +
		"The service is enabled but not started, so the operator can fill in the secrets file first.",
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
			workflows.NewServiceInstallWorkflow(osx.NewManager()), opts)

		common.RunWorkflow(cmd.Context(), wb)

		logx.As().Info().Msgf("Successfully installed the %s service; start it with: sudo systemctl start %s",
			core.ServiceName, core.ServiceName)
		return nil
	},
}

func init() {
	common.FlagStopOnError.SetVarP(installCmd, &flagStopOnError, false)
	common.FlagRollbackOnError.SetVarP(installCmd, &flagRollbackOnError, false)
	common.FlagContinueOnError.SetVarP(installCmd, &flagContinueOnError, false)
}
