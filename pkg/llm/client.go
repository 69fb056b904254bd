// Package llm provides the chat completion client and the retry/fallback
// pipeline used by all analysis agents.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dealdesk/dealdesk/pkg/config"
	"github.com/dealdesk/dealdesk/pkg/version"
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Convenience constructors for the two roles agents use.
func SystemMessage(content string) Message { return Message{Role: "system", Content: content} }
func UserMessage(content string) Message   { return Message{Role: "user", Content: content} }

// Provider is a single chat completion backend.
type Provider interface {
	// Name identifies the provider in logs and attempt errors.
	Name() string

	// Complete performs one chat completion call.
	Complete(ctx context.Context, messages []Message) (string, error)
}

// APIError is a non-2xx response from a provider.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error status=%d body=%s", e.Provider, e.StatusCode, truncate(e.Body, 512))
}

// Retryable reports whether the error is worth retrying: rate limits and
// server-side failures are, client errors are not.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// ErrEmptyCompletion indicates a 2xx response with no choices.
var ErrEmptyCompletion = errors.New("completion response contained no choices")

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// chatRequest is the OpenAI-compatible chat completions request body.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

// chatResponse is the subset of the completion response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// HTTPProvider calls any OpenAI-compatible chat completions endpoint
// (DeepSeek, OpenAI, vLLM, and the like).
type HTTPProvider struct {
	name       string
	model      string
	baseURL    string
	apiKeyEnv  string
	temp       *float64
	maxTokens  int
	httpClient *http.Client
}

// NewHTTPProvider builds a provider from its registry configuration.
// The API key is read from the environment at call time, not construction
// time, so key rotation does not require a restart.
func NewHTTPProvider(name string, cfg *config.LLMProviderConfig) *HTTPProvider {
	return &HTTPProvider{
		name:      name,
		model:     cfg.Model,
		baseURL:   cfg.BaseURL,
		apiKeyEnv: cfg.APIKeyEnv,
		temp:      cfg.Temperature,
		maxTokens: cfg.MaxTokens,
		// Per-attempt deadlines come from the caller's context; this is
		// a hard upper bound against leaked connections.
		httpClient: &http.Client{Timeout: 15 * time.Minute},
	}
}

// Name implements Provider.
func (p *HTTPProvider) Name() string { return p.name }

// Complete implements Provider.
func (p *HTTPProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: p.temp,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: failed to marshal request: %w", p.name, err)
	}

	url := p.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: failed to create request: %w", p.name, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.Full())
	if p.apiKeyEnv != "" {
		if key := os.Getenv(p.apiKeyEnv); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}
	}

	res, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: request failed: %w", p.name, err)
	}
	defer func() { _ = res.Body.Close() }()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%s: failed to read response: %w", p.name, err)
	}

	if res.StatusCode != http.StatusOK {
		return "", &APIError{Provider: p.name, StatusCode: res.StatusCode, Body: string(resBody)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return "", fmt.Errorf("%s: failed to parse response: %w", p.name, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", p.name, ErrEmptyCompletion)
	}

	return parsed.Choices[0].Message.Content, nil
}
