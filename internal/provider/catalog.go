package provider

import "fmt"

// Kind identifies one backend in the catalog.
type Kind int

const (
	OpenAI Kind = iota
	Groq
	Claude
	Ollama
	OpenRouter
	DeepSeek
	Gemini
	XAI
)

// Descriptor is the static connection metadata for one backend.
type Descriptor struct {
	ID           string
	Kind         Kind
	DisplayName  string
	DefaultModel string
	// CredentialEnv names the environment variable holding the API key.
	// Empty means the backend needs no credential.
	CredentialEnv string
	// Endpoint, when set, routes the backend through the OpenAI-compatible
	// chat completions API at this base URL instead of its native protocol.
	Endpoint string
}

// RequiresCredential reports whether the backend authenticates with an API key.
func (d Descriptor) RequiresCredential() bool { return d.CredentialEnv != "" }

// Compatible reports whether the backend is addressed through the
// OpenAI-compatible proxy scheme.
func (d Descriptor) Compatible() bool { return d.Endpoint != "" }

var catalog = [...]Descriptor{
	{
		ID:            "openai",
		Kind:          OpenAI,
		DisplayName:   "OpenAI",
		DefaultModel:  "gpt-4o-mini",
		CredentialEnv: "OPENAI_API_KEY",
	},
	{
		ID:            "groq",
		Kind:          Groq,
		DisplayName:   "Groq",
		DefaultModel:  "llama-3.3-70b-versatile",
		CredentialEnv: "GROQ_API_KEY",
		Endpoint:      "https://api.groq.com/openai/v1",
	},
	{
		ID:            "claude",
		Kind:          Claude,
		DisplayName:   "Claude (Anthropic)",
		DefaultModel:  "claude-sonnet-4-20250514",
		CredentialEnv: "ANTHROPIC_API_KEY",
	},
	{
		ID:           "ollama",
		Kind:         Ollama,
		DisplayName:  "Ollama (local)",
		DefaultModel: "llama3.2",
		Endpoint:     "http://localhost:11434/v1",
	},
	{
		ID:            "openrouter",
		Kind:          OpenRouter,
		DisplayName:   "OpenRouter",
		DefaultModel:  "anthropic/claude-sonnet-4",
		CredentialEnv: "OPENROUTER_API_KEY",
		Endpoint:      "https://openrouter.ai/api/v1",
	},
	{
		ID:            "deepseek",
		Kind:          DeepSeek,
		DisplayName:   "DeepSeek",
		DefaultModel:  "deepseek-chat",
		CredentialEnv: "DEEPSEEK_API_KEY",
		Endpoint:      "https://api.deepseek.com/v1",
	},
	{
		ID:            "gemini",
		Kind:          Gemini,
		DisplayName:   "Gemini (Google)",
		DefaultModel:  "gemini-2.0-flash",
		CredentialEnv: "GEMINI_API_KEY",
	},
	{
		ID:            "xai",
		Kind:          XAI,
		DisplayName:   "xAI (Grok)",
		DefaultModel:  "grok-3-mini-fast",
		CredentialEnv: "XAI_API_KEY",
		Endpoint:      "https://api.x.ai/v1",
	},
}

// All returns every catalog entry in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog[:])
	return out
}

// Lookup returns the descriptor for kind. A kind missing from the catalog is
// a programming error and panics.
func Lookup(kind Kind) Descriptor {
	for _, d := range catalog {
		if d.Kind == kind {
			return d
		}
	}
	panic(fmt.Sprintf("provider: kind %d missing from catalog", int(kind)))
}

// LookupID returns the descriptor whose ID matches id exactly.
func LookupID(id string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ParseKind maps a provider id to its Kind.
func ParseKind(id string) (Kind, error) {
	d, ok := LookupID(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedBackend, id)
	}
	return d.Kind, nil
}

// IDs returns the catalog ids in display order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, d := range catalog {
		ids[i] = d.ID
	}
	return ids
}

func (k Kind) String() string {
	for _, d := range catalog {
		if d.Kind == k {
			return d.ID
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
