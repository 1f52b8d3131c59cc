package executor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"enter with default yes", "\n", true, true},
		{"enter with default no", "\n", false, false},
		{"explicit y", "y\n", false, true},
		{"explicit YES", "YES\n", false, true},
		{"explicit n", "n\n", true, false},
		{"explicit no", "no\n", true, false},
		{"garbage input", "asdf\n", true, false},
		{"spaces only", "  \n", true, true},
		{"eof", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			got := Confirm("Run it?", tt.defaultYes, strings.NewReader(tt.input), out)
			if got != tt.want {
				t.Errorf("Confirm(%q, defaultYes=%v) = %v, want %v",
					tt.input, tt.defaultYes, got, tt.want)
			}
		})
	}
}

func TestConfirmHint(t *testing.T) {
	out := &bytes.Buffer{}
	Confirm("Run it?", false, strings.NewReader("\n"), out)
	if got := out.String(); got != "Run it? [y/N]: " {
		t.Errorf("prompt = %q", got)
	}

	out.Reset()
	Confirm("Run it?", true, strings.NewReader("\n"), out)
	if got := out.String(); got != "Run it? [Y/n]: " {
		t.Errorf("prompt = %q", got)
	}
}

func TestRun(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")

	var stdout, stderr bytes.Buffer
	s := Streams{In: strings.NewReader(""), Out: &stdout, Err: &stderr}

	if err := Run(context.Background(), "cd /\npwd", s); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "/" {
		t.Errorf("stdout = %q, want /", got)
	}
}

func TestRunExitCode(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")

	s := Streams{In: strings.NewReader(""), Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}
	err := Run(context.Background(), "exit 3", s)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
}
