// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/printworks/printbot/cmd/printbot/commands/common"
	"github.com/spf13/cobra"
)

var (
	flagStopOnError     bool
	flagRollbackOnError bool
	flagContinueOnError bool

	serviceCmd = &cobra.Command{
		Use:   "service",
		Short: "Manage the printbot systemd service",
		Long:  "Install, remove and inspect the systemd unit that keeps the bot running across reboots",
		RunE:  common.DefaultRunE, // ensure we have a default action to make it runnable
	}
)

func init() {
	serviceCmd.AddCommand(installCmd)
	serviceCmd.AddCommand(uninstallCmd)
	serviceCmd.AddCommand(statusCmd)
}

func GetCmd() *cobra.Command {
	return serviceCmd
}
