// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/internal/unit"
	osx "github.com/printworks/printbot/pkg/os"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the printbot service status",
	Long:  "Report whether the unit file is installed and whether the service is enabled and running. Requires no privileges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		installed, err := unit.IsInstalled()
		if err != nil {
			return err
		}
		if !installed {
			cmd.Printf("Unit file:   not installed (%s)\n", core.UnitFilePath)
			cmd.Println("Run 'sudo printbot service install' to install the service.")
			return nil
		}

		cmd.Printf("Unit file:   %s\n", core.UnitFilePath)

		enabled, err := osx.IsServiceEnabled(cmd.Context(), core.ServiceName)
		if err != nil {
			return err
		}
		cmd.Printf("Enabled:     %t\n", enabled)

		running, err := osx.IsServiceRunning(cmd.Context(), core.ServiceName)
		if err != nil {
			return err
		}
		cmd.Printf("Running:     %t\n", running)

		if enabled && !running {
			cmd.Println("Start the service with: sudo systemctl start " + core.ServiceName)
		}

		return nil
	},
}
