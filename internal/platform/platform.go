// Package platform provides OS and shell detection helpers.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hpkotak/clx/internal/prompt"
)

// OS returns the operating system name (e.g., "darwin", "linux").
func OS() string {
	return runtime.GOOS
}

// Arch returns the CPU architecture (e.g., "arm64", "amd64").
func Arch() string {
	return runtime.GOARCH
}

// Shell returns the user's shell from $SHELL, defaulting to /bin/sh.
func Shell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

// ShellName returns the last path segment of $SHELL, defaulting to "bash".
func ShellName() string {
	s := strings.TrimRight(os.Getenv("SHELL"), "/")
	if s == "" {
		return "bash"
	}
	return filepath.Base(s)
}

// Host returns the facts the system prompt is parameterized by.
func Host() prompt.Host {
	return prompt.Host{
		OS:    OS(),
		Arch:  Arch(),
		Shell: ShellName(),
	}
}
