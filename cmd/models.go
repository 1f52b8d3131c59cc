package cmd

import (
	"context"
	"fmt"

	"github.com/hpkotak/clx/internal/logging"
	"github.com/hpkotak/clx/internal/provider"
	"github.com/spf13/cobra"
)

var listModels = func(ctx context.Context, cfg provider.BuildConfig) ([]string, error) {
	c, err := provider.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return c.ListModels(ctx)
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available from the selected provider",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	log := logging.New(debugFlag)
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	models, err := listModels(ctx, provider.BuildConfig{
		Name:   cfg.Provider,
		Model:  cfg.EffectiveModel(),
		APIKey: cfg.APIKey,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("listing models: %w", err)
	}

	if len(models) == 0 {
		_, _ = fmt.Fprintf(ioOut, "No models found for %s.\n", cfg.Provider)
		return nil
	}

	current := cfg.EffectiveModel()
	for _, m := range models {
		if m == current {
			_, _ = fmt.Fprintf(ioOut, "%s (current)\n", m)
			continue
		}
		_, _ = fmt.Fprintln(ioOut, m)
	}
	return nil
}
