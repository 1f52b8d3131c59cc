package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hpkotak/clx/internal/config"
)

func TestRunConfigShow(t *testing.T) {
	defer saveCmdVars(t)()
	path := useTestConfig(t, &config.Config{Provider: "groq", APIKey: "gsk-secretvalue1234"})
	out := &bytes.Buffer{}
	ioOut = out

	if err := runConfigShow(nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Config file: " + path,
		"provider: groq",
		"****1234",
		"Effective model: llama-3.3-70b-versatile",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want substring %q", got, want)
		}
	}
	if strings.Contains(got, "secretvalue") {
		t.Errorf("output leaks the API key: %q", got)
	}
}

func TestRunConfigShowNoConfig(t *testing.T) {
	defer saveCmdVars(t)()
	useTestConfig(t, nil)
	ioOut = &bytes.Buffer{}

	err := runConfigShow(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "clx configure") {
		t.Errorf("error = %v, want hint to run clx configure", err)
	}
}
