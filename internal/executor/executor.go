// Package executor asks for confirmation and runs generated commands in the
// user's shell. Streams are injectable for testability.
package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/hpkotak/clx/internal/platform"
)

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

// Confirm prompts the user for yes/no confirmation.
// defaultYes controls what happens when the user presses Enter without input.
func Confirm(prompt string, defaultYes bool, in io.Reader, out io.Writer) bool {
	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}
	_, _ = fmt.Fprintf(out, "%s %s: ", prompt, hint)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}

	switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Streams are the standard streams handed to the child shell.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes command with "$SHELL -c". A multi-line command runs as one
// script so that state such as the working directory carries across lines.
func Run(ctx context.Context, command string, s Streams) error {
	cmd := exec.CommandContext(ctx, platform.Shell(), "-c", command)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("executing command: %w", err)
	}
	return nil
}
