package cmd

import (
	"github.com/hpkotak/clx/internal/config"
	"github.com/hpkotak/clx/internal/setup"
	"github.com/spf13/cobra"
)

var runSetup = setup.Run

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Choose a provider, API key and model interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A broken file is about to be replaced, so it only loses the preselection.
		current, _ := config.LoadOrDefault(configFlag)
		return runSetup(configFlag, current, ioOut)
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}
