package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	goopenai "github.com/sashabaranov/go-openai"
)

const listTimeout = 10 * time.Second

// ListModels returns the model names the client's backend advertises.
// Ollama is queried through its native API; OpenAI and OpenAI-compatible
// backends through the /models endpoint.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	var (
		names []string
		err   error
	)

	switch {
	case c.desc.Kind == Ollama:
		names, err = listOllama(ctx, c.target.Endpoint)
	case c.target.Adapter == AdapterOpenAI:
		if c.target.Credential == "" {
			return nil, &APIError{
				Provider: c.desc.ID,
				Err:      fmt.Errorf("%w: set %s", ErrMissingCredential, c.target.CredentialEnv),
			}
		}
		names, err = listOpenAI(ctx, c.target.Endpoint, c.target.Credential)
	default:
		return nil, fmt.Errorf("%w for %s", ErrListingUnsupported, c.desc.DisplayName)
	}
	if err != nil {
		return nil, &APIError{Provider: c.desc.ID, Err: err}
	}

	sort.Strings(names)
	return names, nil
}

// ollamaHost strips the OpenAI-compatible suffix from an Ollama endpoint.
func ollamaHost(endpoint string) string {
	host := strings.TrimRight(endpoint, "/")
	return strings.TrimSuffix(host, "/v1")
}

func listOllama(ctx context.Context, endpoint string) ([]string, error) {
	base, err := url.Parse(ollamaHost(endpoint))
	if err != nil {
		return nil, fmt.Errorf("parsing ollama host URL: %w", err)
	}
	client := api.NewClient(base, &http.Client{Timeout: listTimeout})

	resp, err := client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot reach Ollama at %s: %w", base, err)
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func listOpenAI(ctx context.Context, endpoint, credential string) ([]string, error) {
	cfg := goopenai.DefaultConfig(credential)
	if endpoint != "" {
		cfg.BaseURL = strings.TrimRight(endpoint, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: listTimeout}

	list, err := goopenai.NewClientWithConfig(cfg).ListModels(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		names = append(names, m.ID)
	}
	return names, nil
}
