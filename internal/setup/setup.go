// Package setup runs the interactive configuration wizard: choose a
// provider, optionally store an API key, and pick a model.
package setup

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hpkotak/clx/internal/config"
	"github.com/hpkotak/clx/internal/provider"
)

const listTimeout = 5 * time.Second

// Package-level function vars for testability.
var (
	askOne     = survey.AskOne
	listModels = func(ctx context.Context, desc provider.Descriptor) ([]string, error) {
		return provider.New(desc, "", "").ListModels(ctx)
	}
)

// Run executes the wizard and writes the result to path (the default
// config path when empty). current seeds the provider selection and may be nil.
func Run(path string, current *config.Config, out io.Writer) error {
	_, _ = fmt.Fprintln(out, "Configure clx")
	_, _ = fmt.Fprintln(out)

	desc, err := selectProvider(current)
	if err != nil {
		return err
	}

	apiKey, err := askAPIKey(desc, out)
	if err != nil {
		return err
	}

	model, err := selectModel(desc)
	if err != nil {
		return err
	}

	cfg := &config.Config{
		Provider: desc.ID,
		APIKey:   apiKey,
	}
	// The default is implied, so only an explicit choice is stored.
	if model != desc.DefaultModel {
		cfg.Model = model
	}

	if path == "" {
		path = config.Path()
	}
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintf(out, "\nConfiguration saved to %s\n", path)
	_, _ = fmt.Fprintln(out, `Ready! Try: clx "compress this folder as tar.gz"`)
	return nil
}

// providerOption is the label shown for a catalog entry in the selector.
func providerOption(d provider.Descriptor) string {
	return fmt.Sprintf("%s (default: %s)", d.DisplayName, d.DefaultModel)
}

func selectProvider(current *config.Config) (provider.Descriptor, error) {
	all := provider.All()
	options := make([]string, len(all))
	byOption := make(map[string]provider.Descriptor, len(all))
	for i, d := range all {
		options[i] = providerOption(d)
		byOption[options[i]] = d
	}

	def := options[0]
	if current != nil {
		if d, ok := provider.LookupID(current.Provider); ok {
			def = providerOption(d)
		}
	}

	var choice string
	prompt := &survey.Select{
		Message: "Select your AI provider:",
		Options: options,
		Default: def,
		Help:    "Use arrow keys to navigate, Enter to select",
	}
	if err := askOne(prompt, &choice); err != nil {
		return provider.Descriptor{}, fmt.Errorf("selecting provider: %w", err)
	}

	d, ok := byOption[choice]
	if !ok {
		return provider.Descriptor{}, fmt.Errorf("%w: %s", provider.ErrUnsupportedBackend, choice)
	}
	return d, nil
}

func askAPIKey(desc provider.Descriptor, out io.Writer) (string, error) {
	if !desc.RequiresCredential() {
		_, _ = fmt.Fprintf(out, "\n  %s runs locally - no API key needed.\n\n", desc.DisplayName)
		return "", nil
	}

	var key string
	prompt := &survey.Password{
		Message: fmt.Sprintf("Enter your API key (or leave empty to use %s):", desc.CredentialEnv),
	}
	if err := askOne(prompt, &key); err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	return strings.TrimSpace(key), nil
}

// selectModel offers the locally installed models when the backend is
// credentialless and reachable, and a free-text input otherwise.
func selectModel(desc provider.Descriptor) (string, error) {
	var model string

	if !desc.RequiresCredential() {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		installed, err := listModels(ctx, desc)
		cancel()
		if err == nil && len(installed) > 0 {
			prompt := &survey.Select{
				Message: "Select a model:",
				Options: installed,
				Default: defaultOption(installed, desc.DefaultModel),
			}
			if err := askOne(prompt, &model); err != nil {
				return "", fmt.Errorf("selecting model: %w", err)
			}
			return model, nil
		}
	}

	prompt := &survey.Input{
		Message: "Model (leave empty for default):",
		Default: desc.DefaultModel,
	}
	if err := askOne(prompt, &model); err != nil {
		return "", fmt.Errorf("reading model: %w", err)
	}
	if model = strings.TrimSpace(model); model == "" {
		model = desc.DefaultModel
	}
	return model, nil
}

// defaultOption returns want if it is among options (also matching the
// ":latest" tag Ollama appends), else the first option.
func defaultOption(options []string, want string) string {
	for _, o := range options {
		if o == want || o == want+":latest" {
			return o
		}
	}
	return options[0]
}
