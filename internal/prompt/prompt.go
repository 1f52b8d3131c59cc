// Package prompt handles LLM prompt construction and response parsing.
// The system prompt asks the model for a small tagged format; the parser is
// the reliability layer that recovers those tags from whatever the model
// actually sends back.
package prompt

import "fmt"

// Host describes the machine the command will run on.
type Host struct {
	OS    string
	Arch  string
	Shell string
}

// Prompt is the system instruction and user message for one generation.
type Prompt struct {
	System string
	User   string
}

const systemTemplate = `You are a CLI command generator. Generate shell commands for the user's request.

System: %[1]s %[2]s
Shell: %[3]s

Respond ONLY in this exact XML format:
<description>One sentence describing what the command does</description>
<command>The shell command(s)</command>
<warning>Only include for dangerous commands like rm -rf, dd, etc. Otherwise omit this tag entirely.</warning>

Rules:
- Commands must be valid for %[1]s with %[3]s
- For multiple commands, separate with && or newlines inside the command tag
- No markdown, no backticks, no extra text outside the XML tags
- Keep description under 80 characters
- Be precise and avoid unnecessary flags`

// SystemPrompt renders the system instruction for host.
func SystemPrompt(host Host) string {
	return fmt.Sprintf(systemTemplate, host.OS, host.Arch, host.Shell)
}

// Build returns the prompt pair for query. The query is passed through
// unchanged; callers trim it.
func Build(query string, host Host) Prompt {
	return Prompt{
		System: SystemPrompt(host),
		User:   query,
	}
}
