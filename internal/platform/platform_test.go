package platform

import (
	"runtime"
	"testing"
)

func TestOS(t *testing.T) {
	got := OS()
	if got == "" {
		t.Fatal("OS() returned empty string")
	}
	if got != runtime.GOOS {
		t.Errorf("OS() = %q, want %q", got, runtime.GOOS)
	}
}

func TestArch(t *testing.T) {
	if got := Arch(); got != runtime.GOARCH {
		t.Errorf("Arch() = %q, want %q", got, runtime.GOARCH)
	}
}

func TestShell(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"zsh", "/bin/zsh", "/bin/zsh"},
		{"bash", "/bin/bash", "/bin/bash"},
		{"empty falls back", "", "/bin/sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			got := Shell()
			if got != tt.want {
				t.Errorf("Shell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShellName(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"zsh path", "/bin/zsh", "zsh"},
		{"homebrew fish", "/opt/homebrew/bin/fish", "fish"},
		{"bare name", "nu", "nu"},
		{"trailing slash", "/usr/bin/bash/", "bash"},
		{"empty falls back", "", "bash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			if got := ShellName(); got != tt.want {
				t.Errorf("ShellName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHost(t *testing.T) {
	t.Setenv("SHELL", "/usr/local/bin/zsh")

	h := Host()
	if h.OS != runtime.GOOS || h.Arch != runtime.GOARCH || h.Shell != "zsh" {
		t.Errorf("Host() = %+v", h)
	}
}
