// Package provider normalizes the supported LLM backends behind one
// generation call. Each backend is described by a static catalog entry;
// a Client resolves that entry into either the backend's native protocol or
// the OpenAI-compatible chat completions API.
package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedBackend is returned for provider ids missing from the catalog.
	ErrUnsupportedBackend = errors.New("unsupported backend")

	// ErrNoResponse is returned when the backend answered without any text.
	ErrNoResponse = errors.New("no response from AI provider")

	// ErrMissingCredential is wrapped in an APIError when a backend that needs
	// an API key has none configured.
	ErrMissingCredential = errors.New("missing API key")

	// ErrListingUnsupported is returned by ListModels for backends that
	// expose no model listing endpoint.
	ErrListingUnsupported = errors.New("model listing not supported")
)

// APIError wraps a failure reported by the backend or its transport.
// The underlying message is preserved verbatim.
type APIError struct {
	Provider string
	Err      error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %v", e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }
