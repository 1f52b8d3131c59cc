// Package config manages the clx configuration file at
// <user config dir>/clx/config.yaml and the optional .env beside it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hpkotak/clx/internal/provider"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("config file not found")

const (
	DefaultProvider = "openai"
	// fallbackModel is used when the provider id is not in the catalog.
	fallbackModel = "gpt-4o-mini"
)

type Config struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// Dir returns the config directory path. Without a user config dir it
// falls back to ~/.config/clx, and without a home directory to .config/clx
// under the working directory.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "clx")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "clx")
	}
	dir := filepath.Join(".config", "clx")
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// EnvPath returns the path of the optional credentials file.
func EnvPath() string {
	return filepath.Join(Dir(), ".env")
}

// Exists checks if the default config file exists.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads and parses the config file at path, or the default path when
// path is empty. Returns ErrNotFound if it doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	return loadFrom(path)
}

// LoadOrDefault is Load with a missing file mapped to Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	return &cfg, nil
}

// Save writes the config to the default path, creating the directory if
// needed. The file may hold an API key, so it is private to the user.
func Save(cfg *Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func marshalConfig(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{Provider: DefaultProvider}
}

// Validate checks that the provider is one clx knows about.
func (c *Config) Validate() error {
	if _, err := provider.ParseKind(c.Provider); err != nil {
		return err
	}
	return nil
}

// Merge applies command-line overrides. Empty values leave the config as is.
func (c *Config) Merge(providerID, model string) {
	if p := strings.TrimSpace(providerID); p != "" {
		c.Provider = p
	}
	if m := strings.TrimSpace(model); m != "" {
		c.Model = m
	}
}

// EffectiveModel returns the configured model, else the provider's default.
func (c *Config) EffectiveModel() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	if d, ok := provider.LookupID(c.Provider); ok {
		return d.DefaultModel
	}
	return fallbackModel
}

// LoadEnv loads credentials from the .env file in the config directory
// without overriding variables already set in the environment.
func LoadEnv() error {
	return loadEnvFrom(EnvPath())
}

func loadEnvFrom(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
