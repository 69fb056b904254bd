package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/pkg/config"
)

// stubProvider scripts a sequence of responses for pipeline tests.
type stubProvider struct {
	name    string
	results []stubResult
	calls   int
}

type stubResult struct {
	out string
	err error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(_ context.Context, _ []Message) (string, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	r := s.results[idx]
	return r.out, r.err
}

func newTestPipeline(primary, fallback Provider) (*Pipeline, *[]time.Duration) {
	p := NewPipeline(primary, fallback, nil, &config.PipelineConfig{
		MaxRetries:      3,
		AttemptTimeout:  90 * time.Second,
		FallbackTimeout: 120 * time.Second,
		ReasonerTimeout: 10 * time.Minute,
	})
	var sleeps []time.Duration
	p.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return p, &sleeps
}

func serverErr(provider string) error {
	return &APIError{Provider: provider, StatusCode: http.StatusBadGateway, Body: "upstream busy"}
}

func TestPipelineCall(t *testing.T) {
	t.Run("first attempt succeeds", func(t *testing.T) {
		primary := &stubProvider{name: "primary", results: []stubResult{{out: "ok"}}}
		p, sleeps := newTestPipeline(primary, nil)

		out, err := p.Call(context.Background(), CallContext{Label: "test", Messages: []Message{UserMessage("hi")}})
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
		assert.Equal(t, 1, primary.calls)
		assert.Empty(t, *sleeps)
	})

	t.Run("retries with exponential backoff then succeeds", func(t *testing.T) {
		primary := &stubProvider{name: "primary", results: []stubResult{
			{err: serverErr("primary")},
			{err: serverErr("primary")},
			{out: "third time lucky"},
		}}
		p, sleeps := newTestPipeline(primary, nil)

		out, err := p.Call(context.Background(), CallContext{Label: "test"})
		require.NoError(t, err)
		assert.Equal(t, "third time lucky", out)
		assert.Equal(t, 3, primary.calls)
		// 1s then 2s; the third attempt succeeded so no 4s wait
		require.Len(t, *sleeps, 2)
		assert.Equal(t, 1*time.Second, (*sleeps)[0])
		assert.Equal(t, 2*time.Second, (*sleeps)[1])
	})

	t.Run("falls back after primary exhausted", func(t *testing.T) {
		primary := &stubProvider{name: "primary", results: []stubResult{{err: serverErr("primary")}}}
		fallback := &stubProvider{name: "fallback", results: []stubResult{{out: "rescued"}}}
		p, sleeps := newTestPipeline(primary, fallback)

		out, err := p.Call(context.Background(), CallContext{Label: "test"})
		require.NoError(t, err)
		assert.Equal(t, "rescued", out)
		assert.Equal(t, 3, primary.calls)
		assert.Equal(t, 1, fallback.calls)
		require.Len(t, *sleeps, 2)
	})

	t.Run("total failure names every attempt", func(t *testing.T) {
		primary := &stubProvider{name: "primary", results: []stubResult{{err: serverErr("primary")}}}
		fallback := &stubProvider{name: "fallback", results: []stubResult{{err: serverErr("fallback")}}}
		p, sleeps := newTestPipeline(primary, fallback)

		_, err := p.Call(context.Background(), CallContext{Label: "legal-counsel"})
		require.Error(t, err)

		var attemptsErr *AttemptsError
		require.ErrorAs(t, err, &attemptsErr)
		assert.Equal(t, "legal-counsel", attemptsErr.Label)
		// Full retry budget on both providers
		require.Len(t, attemptsErr.Attempts, 6)
		assert.Equal(t, "primary", attemptsErr.Attempts[0].Provider)
		assert.Equal(t, "fallback", attemptsErr.Attempts[3].Provider)
		assert.Equal(t, 3, attemptsErr.Attempts[5].Attempt)
		assert.Contains(t, err.Error(), "legal-counsel")
		assert.Contains(t, err.Error(), "fallback#1")
		// Backoff restarts at 1s for the fallback provider
		require.Len(t, *sleeps, 4)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, time.Second, 2 * time.Second}, *sleeps)
	})

	t.Run("non-retryable 4xx skips remaining retries", func(t *testing.T) {
		primary := &stubProvider{name: "primary", results: []stubResult{
			{err: &APIError{Provider: "primary", StatusCode: http.StatusUnauthorized, Body: "bad key"}},
		}}
		fallback := &stubProvider{name: "fallback", results: []stubResult{{out: "rescued"}}}
		p, sleeps := newTestPipeline(primary, fallback)

		out, err := p.Call(context.Background(), CallContext{Label: "test"})
		require.NoError(t, err)
		assert.Equal(t, "rescued", out)
		assert.Equal(t, 1, primary.calls, "no retries after a permanent rejection")
		assert.Empty(t, *sleeps)
	})

	t.Run("DisableFallback stays on primary", func(t *testing.T) {
		primary := &stubProvider{name: "primary", results: []stubResult{{err: serverErr("primary")}}}
		fallback := &stubProvider{name: "fallback", results: []stubResult{{out: "never"}}}
		p, _ := newTestPipeline(primary, fallback)

		_, err := p.Call(context.Background(), CallContext{Label: "test", DisableFallback: true})
		require.Error(t, err)
		assert.Equal(t, 0, fallback.calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		primary := &stubProvider{name: "primary", results: []stubResult{{err: context.Canceled}}}
		fallback := &stubProvider{name: "fallback", results: []stubResult{{out: "never"}}}
		p, _ := newTestPipeline(primary, fallback)

		_, err := p.Call(ctx, CallContext{Label: "test"})
		require.Error(t, err)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 0, fallback.calls)
	})
}

func TestPipelineReason(t *testing.T) {
	t.Run("reasoner outside the fallback chain", func(t *testing.T) {
		reasoner := &stubProvider{name: "reasoner", results: []stubResult{{err: serverErr("reasoner")}}}
		fallback := &stubProvider{name: "fallback", results: []stubResult{{out: "never"}}}
		p := NewPipeline(&stubProvider{name: "primary"}, fallback, reasoner, nil)

		_, err := p.Reason(context.Background(), CallContext{Label: "deep-dive"})
		require.Error(t, err)
		assert.Equal(t, 1, reasoner.calls, "no retries for reasoner")
		assert.Equal(t, 0, fallback.calls, "no fallback for reasoner")
	})

	t.Run("no reasoner configured", func(t *testing.T) {
		p := NewPipeline(&stubProvider{name: "primary"}, nil, nil, nil)
		assert.False(t, p.HasReasoner())
		_, err := p.Reason(context.Background(), CallContext{Label: "deep-dive"})
		require.Error(t, err)
	})
}

func TestHTTPProvider(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
		}))
		defer srv.Close()

		t.Setenv("TEST_LLM_KEY", "sk-test")
		p := NewHTTPProvider("test", &config.LLMProviderConfig{
			Model:     "test-model",
			BaseURL:   srv.URL,
			APIKeyEnv: "TEST_LLM_KEY",
		})

		out, err := p.Complete(context.Background(), []Message{UserMessage("hi")})
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("non-200 surfaces as APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer srv.Close()

		p := NewHTTPProvider("test", &config.LLMProviderConfig{Model: "m", BaseURL: srv.URL})
		_, err := p.Complete(context.Background(), nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.True(t, apiErr.Retryable())
	})

	t.Run("empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		p := NewHTTPProvider("test", &config.LLMProviderConfig{Model: "m", BaseURL: srv.URL})
		_, err := p.Complete(context.Background(), nil)
		require.ErrorIs(t, err, ErrEmptyCompletion)
	})
}

func TestAPIErrorRetryable(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 500}).Retryable())
	assert.True(t, (&APIError{StatusCode: 429}).Retryable())
	assert.False(t, (&APIError{StatusCode: 400}).Retryable())
	assert.False(t, (&APIError{StatusCode: 401}).Retryable())
}

func TestAttemptsErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &AttemptsError{Label: "x", Attempts: []Attempt{{Provider: "p", Attempt: 1, Err: inner}}}
	assert.ErrorIs(t, err, inner)
}
