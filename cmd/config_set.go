package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hpkotak/clx/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Long: `Update a configuration value. Supported keys:
  provider  LLM provider (openai, groq, claude, ollama, openrouter, deepseek, gemini, xai)
  model     Model name (e.g., gpt-4o-mini); "" resets to the provider default
  api_key   API key for the provider; "" removes it`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], strings.TrimSpace(args[1])

	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Default()
	}

	shown := value
	switch key {
	case "provider":
		value = strings.ToLower(value)
		if value == "" {
			return fmt.Errorf("provider cannot be empty")
		}
		if value != cfg.Provider {
			// Model names are backend specific.
			cfg.Model = ""
		}
		cfg.Provider = value
		shown = value
	case "model":
		cfg.Model = value
	case "api_key":
		cfg.APIKey = value
		shown = maskKey(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.SaveTo(path, cfg); err != nil {
		return err
	}

	if shown == "" {
		_, _ = fmt.Fprintf(ioOut, "Cleared %s\n", key)
		return nil
	}
	_, _ = fmt.Fprintf(ioOut, "Set %s = %s\n", key, shown)
	return nil
}
