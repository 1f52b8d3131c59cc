package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Adapter names the wire protocol a Client speaks.
type Adapter string

const (
	AdapterOpenAI    Adapter = "openai"
	AdapterAnthropic Adapter = "anthropic"
	AdapterGoogleAI  Adapter = "googleai"
)

// localCredential is sent to backends that accept any bearer token.
const localCredential = "ollama"

// Target is the resolved connection for one Client.
type Target struct {
	Adapter Adapter
	// Endpoint is empty for the adapter's native default endpoint.
	Endpoint      string
	Model         string
	Credential    string
	CredentialEnv string
}

// Client sends a single system+user exchange to one backend.
type Client struct {
	desc   Descriptor
	target Target
	log    *zap.Logger

	// dial builds the backend model; replaced in tests.
	dial func(ctx context.Context, t Target) (llms.Model, error)
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New resolves desc, model and an optional inline credential into a Client.
// It performs no network I/O. An inline credential takes precedence over the
// descriptor's environment variable and is ignored for backends that need
// no credential.
func New(desc Descriptor, model, credential string, opts ...Option) *Client {
	c := &Client{
		desc:   desc,
		target: resolveTarget(desc, model, credential, os.Getenv),
		log:    zap.NewNop(),
		dial:   dialTarget,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.log.Debug("resolved provider target",
		zap.String("provider", desc.ID),
		zap.String("adapter", string(c.target.Adapter)),
		zap.String("endpoint", c.target.Endpoint),
		zap.String("model", c.target.Model),
		zap.Bool("credential", c.target.Credential != ""),
	)
	return c
}

func resolveTarget(desc Descriptor, model, credential string, getenv func(string) string) Target {
	t := Target{
		Model:         resolveModel(model, desc.DefaultModel),
		Endpoint:      desc.Endpoint,
		CredentialEnv: desc.CredentialEnv,
	}

	switch {
	case !desc.RequiresCredential():
		t.Credential = localCredential
	case strings.TrimSpace(credential) != "":
		t.Credential = strings.TrimSpace(credential)
	default:
		t.Credential = getenv(desc.CredentialEnv)
	}

	if desc.Compatible() {
		t.Adapter = AdapterOpenAI
		return t
	}

	switch desc.Kind {
	case Claude:
		t.Adapter = AdapterAnthropic
	case Gemini:
		t.Adapter = AdapterGoogleAI
	default:
		t.Adapter = AdapterOpenAI
	}
	return t
}

func dialTarget(ctx context.Context, t Target) (llms.Model, error) {
	if t.Credential == "" {
		return nil, fmt.Errorf("%w: set %s or run 'clx configure'", ErrMissingCredential, t.CredentialEnv)
	}

	switch t.Adapter {
	case AdapterAnthropic:
		llm, err := anthropic.New(
			anthropic.WithModel(t.Model),
			anthropic.WithToken(t.Credential),
		)
		if err != nil {
			return nil, err
		}
		return llm, nil
	case AdapterGoogleAI:
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(t.Credential),
			googleai.WithDefaultModel(t.Model),
		)
		if err != nil {
			return nil, err
		}
		return llm, nil
	default:
		opts := []openai.Option{
			openai.WithModel(t.Model),
			openai.WithToken(t.Credential),
		}
		if t.Endpoint != "" {
			opts = append(opts, openai.WithBaseURL(t.Endpoint))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, err
		}
		return llm, nil
	}
}

// Generate performs one request/response round trip and returns the
// assistant text. Backend failures are returned as *APIError; a reply
// without text is ErrNoResponse.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	model, err := c.dial(ctx, c.target)
	if err != nil {
		return "", &APIError{Provider: c.desc.ID, Err: err}
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, messages)
	c.log.Debug("generation finished",
		zap.String("provider", c.desc.ID),
		zap.Duration("latency", time.Since(start)),
		zap.Error(err),
	)
	if err != nil {
		if errors.Is(err, openai.ErrEmptyResponse) {
			return "", ErrNoResponse
		}
		return "", &APIError{Provider: c.desc.ID, Err: err}
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrNoResponse
	}
	text := resp.Choices[0].Content
	if strings.TrimSpace(text) == "" {
		return "", ErrNoResponse
	}
	return text, nil
}

// Descriptor returns the catalog entry the client was built from.
func (c *Client) Descriptor() Descriptor { return c.desc }

// Target returns the resolved connection.
func (c *Client) Target() Target { return c.target }

// Model returns the model name requests are sent with.
func (c *Client) Model() string { return c.target.Model }

// Compatible reports whether requests go through the OpenAI-compatible API.
func (c *Client) Compatible() bool { return c.target.Endpoint != "" }
