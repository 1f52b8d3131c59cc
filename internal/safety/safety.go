// Package safety flags generated shell commands that destroy data or change
// system state. It is deterministic and runs locally, independent of
// whatever warning the model chose to include.
package safety

import (
	"regexp"
	"sync"
)

// Level represents the safety classification of a command.
type Level int

const (
	Safe Level = iota
	Destructive
)

func (l Level) String() string {
	if l == Destructive {
		return "destructive"
	}
	return "safe"
}

// Finding is the outcome of checking one command.
type Finding struct {
	Level Level
	// Reason is a short description of the first matching rule.
	Reason string
}

type rule struct {
	pattern *regexp.Regexp
	exclude *regexp.Regexp // nil means no exclusion
	reason  string
}

type rawRule struct {
	pattern string
	exclude string
	reason  string
}

// destructiveRules are checked in order; the first match wins. A command
// matching both pattern and exclude is not flagged by that rule.
var destructiveRules = []rawRule{
	{`\brm\s`, "", "deletes files"},
	{`\brm$`, "", "deletes files"},
	{`\bsudo\s`, "", "runs with root privileges"},
	{`\bdd\s+if=`, "", "writes raw data to a device or file"},
	{`\bmkfs\b`, "", "formats a filesystem"},
	{`\bfdisk\b`, "", "edits a partition table"},
	{`>+\s*/dev/`, `>+\s*/dev/(null|stdout|stderr)(\s|;|&|$)`, "writes to a device"},
	{`\bchmod\s+000\b`, "", "removes all permissions"},
	{`\bkill\s+-9\b`, "", "force-kills processes"},
	{`\bkillall\s`, "", "kills processes by name"},
	{`\bshutdown\b`, "", "shuts the machine down"},
	{`\breboot\b`, "", "reboots the machine"},
	{`\bsystemctl\s+(stop|disable|mask)\b`, "", "stops or disables a system service"},
	{`\bmv\s+/`, "", "moves system paths"},
	{`\bchown\s+-R\b`, "", "changes ownership recursively"},
	{`:\s*>\s*\S`, "", "truncates a file"},
	{`\btruncate\b`, "", "truncates a file"},
	{`\bshred\b`, "", "irrecoverably overwrites files"},
	{`\bgit\s+(reset\s+--hard|push\s+.*--force)\b`, "", "discards git history or work"},
	{`\bgit\s+clean\s+(-\S+\s+)*-[a-zA-Z]*f`, "", "deletes untracked files"},
}

var (
	rules     []rule
	rulesOnce sync.Once
)

func compileRules() {
	rulesOnce.Do(func() {
		rules = make([]rule, len(destructiveRules))
		for i, r := range destructiveRules {
			rules[i].pattern = regexp.MustCompile(r.pattern)
			if r.exclude != "" {
				rules[i].exclude = regexp.MustCompile(r.exclude)
			}
			rules[i].reason = r.reason
		}
	})
}

// Check examines a single shell statement.
func Check(command string) Finding {
	compileRules()
	for _, r := range rules {
		if !r.pattern.MatchString(command) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(command) {
			continue
		}
		return Finding{Level: Destructive, Reason: r.reason}
	}
	return Finding{Level: Safe}
}

// Classify returns the safety level of a shell statement.
func Classify(command string) Level {
	return Check(command).Level
}

// CheckAll returns the first destructive finding across lines, or a Safe
// finding when none match.
func CheckAll(lines []string) Finding {
	for _, line := range lines {
		if f := Check(line); f.Level == Destructive {
			return f
		}
	}
	return Finding{Level: Safe}
}
