package provider

import (
	"errors"
	"strings"
	"testing"
)

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfg         BuildConfig
		wantID      string
		wantAdapter Adapter
		wantModel   string
		wantErr     string
	}{
		{
			name:        "openai native",
			cfg:         BuildConfig{Name: "openai", Model: "gpt-4.1", APIKey: "sk-test"},
			wantID:      "openai",
			wantAdapter: AdapterOpenAI,
			wantModel:   "gpt-4.1",
		},
		{
			name:        "claude native with default model",
			cfg:         BuildConfig{Name: "claude", APIKey: "sk-ant"},
			wantID:      "claude",
			wantAdapter: AdapterAnthropic,
			wantModel:   "claude-sonnet-4-20250514",
		},
		{
			name:        "name is normalized",
			cfg:         BuildConfig{Name: "  Groq ", Model: "llama-3.1-8b-instant"},
			wantID:      "groq",
			wantAdapter: AdapterOpenAI,
			wantModel:   "llama-3.1-8b-instant",
		},
		{
			name:    "unsupported",
			cfg:     BuildConfig{Name: "mistral", Model: "model"},
			wantErr: "unsupported backend: mistral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFromConfig(tt.cfg)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("NewFromConfig() expected error containing %q, got nil", tt.wantErr)
				}
				if !errors.Is(err, ErrUnsupportedBackend) {
					t.Errorf("error = %v, want ErrUnsupportedBackend", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFromConfig() unexpected error: %v", err)
			}
			if got.Descriptor().ID != tt.wantID {
				t.Errorf("provider id = %q, want %q", got.Descriptor().ID, tt.wantID)
			}
			if got.Target().Adapter != tt.wantAdapter {
				t.Errorf("adapter = %q, want %q", got.Target().Adapter, tt.wantAdapter)
			}
			if got.Model() != tt.wantModel {
				t.Errorf("model = %q, want %q", got.Model(), tt.wantModel)
			}
		})
	}
}
