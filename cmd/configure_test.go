package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/hpkotak/clx/internal/config"
)

func TestConfigureCommand(t *testing.T) {
	defer saveCmdVars(t)()
	path := useTestConfig(t, &config.Config{Provider: "xai"})
	ioOut = &bytes.Buffer{}

	var gotPath string
	var gotCurrent *config.Config
	runSetup = func(p string, current *config.Config, _ io.Writer) error {
		gotPath, gotCurrent = p, current
		return nil
	}

	if err := configureCmd.RunE(configureCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != path {
		t.Errorf("path = %q, want %q", gotPath, path)
	}
	if gotCurrent == nil || gotCurrent.Provider != "xai" {
		t.Errorf("current = %+v, want provider xai", gotCurrent)
	}
}

func TestConfigureCommandMalformedConfig(t *testing.T) {
	defer saveCmdVars(t)()
	path := useTestConfig(t, nil)
	if err := os.WriteFile(path, []byte("provider: [broken"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var gotCurrent *config.Config
	runSetup = func(_ string, current *config.Config, _ io.Writer) error {
		gotCurrent = current
		return errors.New("interrupt")
	}

	if err := configureCmd.RunE(configureCmd, nil); err == nil {
		t.Fatal("expected wizard error to propagate")
	}
	if gotCurrent != nil {
		t.Errorf("current = %+v, want nil for unreadable config", gotCurrent)
	}
}
