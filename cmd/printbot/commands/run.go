// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os/signal"
	"syscall"

	"github.com/printworks/printbot/internal/bot"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Telegram bot in the foreground",
	Long: "Load the secrets file, connect to the Telegram Bot API and serve print and scan requests " +
		"until interrupted. This is the entrypoint the systemd unit invokes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// SIGTERM is what systemd sends on stop; SIGINT covers a foreground ^C.
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return bot.Run(ctx)
	},
}
