package cmd

import (
	"fmt"

	"github.com/hpkotak/clx/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("no config found at %s. Run 'clx configure' first", path)
	}

	shown := *cfg
	shown.APIKey = maskKey(cfg.APIKey)
	data, err := yaml.Marshal(&shown)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	_, _ = fmt.Fprintf(ioOut, "Config file: %s\n\n", path)
	_, _ = fmt.Fprint(ioOut, string(data))
	_, _ = fmt.Fprintf(ioOut, "\nEffective model: %s\n", cfg.EffectiveModel())
	return nil
}
