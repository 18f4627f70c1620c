package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/app"
)

const defaultSupplierURL = "http://127.0.0.1:5000"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("supplier", "", "Question supplier base URL (overrides QUIZDECK_SUPPLIER env var)")
	playCmd.Flags().String("topic", "", "Default quiz topic (overrides QUIZDECK_TOPIC env var)")
}

func runPlay(cmd *cobra.Command) error {
	return app.Run(app.Options{
		SupplierURL: flagOrEnv(cmd, "supplier", "QUIZDECK_SUPPLIER", defaultSupplierURL),
		Topic:       flagOrEnv(cmd, "topic", "QUIZDECK_TOPIC", ""),
	})
}
