// Package render prints generation results to the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hpkotak/clx/internal/prompt"
)

var (
	descStyle   = color.New(color.FgMagenta, color.Bold)
	promptStyle = color.New(color.FgGreen, color.Bold)
	warnStyle   = color.New(color.FgYellow, color.Bold)
	errorStyle  = color.New(color.FgHiRed, color.Bold)
	infoStyle   = color.New(color.FgCyan)
)

// Result prints a parsed command: the description, one "$ " line per
// command statement, and the warning when present.
func Result(w io.Writer, p prompt.ParsedCommand) {
	_, _ = fmt.Fprintln(w, descStyle.Sprint(p.Description))
	for _, line := range p.Lines() {
		Command(w, line)
	}
	if p.Warning != "" {
		Warning(w, p.Warning)
	}
}

// Fallback prints a reply the parser could not structure. The first
// non-empty line is treated as the description, the rest as commands.
func Fallback(w io.Writer, raw string) {
	first := true
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first {
			_, _ = fmt.Fprintln(w, descStyle.Sprint(line))
			first = false
			continue
		}
		Command(w, line)
	}
}

// Command prints a single shell statement with a "$" prompt.
func Command(w io.Writer, line string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", promptStyle.Sprint("$"), line)
}

// Warning prints a highlighted warning preceded by a blank line.
func Warning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "\n%s %s\n", warnStyle.Sprint("Warning:"), msg)
}

// Info prints a secondary status line.
func Info(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, infoStyle.Sprint(msg))
}

// Error prints the single-line diagnostic shown before a non-zero exit.
func Error(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %v\n", errorStyle.Sprint("error:"), err)
}
