package provider

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// BuildConfig contains the runtime settings used by the factory.
type BuildConfig struct {
	Name   string
	Model  string
	APIKey string
	Logger *zap.Logger
}

// NewFromConfig builds a Client for the configured provider id.
func NewFromConfig(cfg BuildConfig) (*Client, error) {
	desc, ok := LookupID(strings.ToLower(strings.TrimSpace(cfg.Name)))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, cfg.Name)
	}
	return New(desc, cfg.Model, cfg.APIKey, WithLogger(cfg.Logger)), nil
}
