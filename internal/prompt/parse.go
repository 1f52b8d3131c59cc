package prompt

import "strings"

// Tag names of the response format.
const (
	TagDescription = "description"
	TagCommand     = "command"
	TagWarning     = "warning"
)

// ParsedCommand is the structured result recovered from a model reply.
type ParsedCommand struct {
	Description string
	// Command may hold several shell statements, one per line.
	Command string
	// Warning is empty when the model flagged nothing.
	Warning string
}

// Lines returns the non-empty, trimmed lines of Command.
func (p ParsedCommand) Lines() []string {
	var lines []string
	for _, line := range strings.Split(p.Command, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Parse extracts the tagged fields from raw. It reports false when the
// description or command section cannot be located, in which case callers
// fall back to showing raw as-is. A missing warning is not a failure.
//
// Tags are matched by first occurrence: the first opening tag, then the
// first closing tag after it. Content that itself contains tag text is not
// handled specially.
func Parse(raw string) (ParsedCommand, bool) {
	description, ok := extractTag(raw, TagDescription)
	if !ok {
		return ParsedCommand{}, false
	}
	command, ok := extractTag(raw, TagCommand)
	if !ok {
		return ParsedCommand{}, false
	}
	warning, _ := extractTag(raw, TagWarning)

	return ParsedCommand{
		Description: description,
		Command:     command,
		Warning:     warning,
	}, true
}

func extractTag(text, tag string) (string, bool) {
	open := "<" + tag + ">"
	closing := "</" + tag + ">"

	i := strings.Index(text, open)
	if i < 0 {
		return "", false
	}
	start := i + len(open)

	j := strings.Index(text[start:], closing)
	if j < 0 {
		return "", false
	}
	end := start + j

	// An empty section is as useless as a missing one.
	if start >= end {
		return "", false
	}
	return strings.TrimSpace(text[start:end]), true
}
