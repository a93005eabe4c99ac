// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/printworks/printbot/cmd/printbot/commands/common"
	"github.com/printworks/printbot/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	flagCheckManifest string

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Check the host for the tools the print service needs",
		Long: "Check that the external tools the bot shells out to are installed and recent enough. " +
			"Findings are reported, not fatal: a degraded host still exits zero.",
		RunE: func(cmd *cobra.Command, args []string) error {
			common.RunWorkflow(cmd.Context(), workflows.NewCheckWorkflow(flagCheckManifest))
			return nil
		},
	}
)

func init() {
	common.FlagManifest.SetVarP(checkCmd, &flagCheckManifest, false)
}
