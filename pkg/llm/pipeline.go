package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dealdesk/dealdesk/pkg/config"
)

// Attempt records one failed provider call for diagnostics.
type Attempt struct {
	Provider string
	Attempt  int
	Err      error
}

// AttemptsError reports a pipeline call that exhausted every provider.
// It names each attempt so the job's error message shows the full chain.
type AttemptsError struct {
	Label    string
	Attempts []Attempt
}

func (e *AttemptsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "all LLM attempts failed for %s:", e.Label)
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, " [%s#%d: %v]", a.Provider, a.Attempt, a.Err)
	}
	return b.String()
}

// Unwrap returns the final attempt's error for errors.Is/As chains.
func (e *AttemptsError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1].Err
}

// CallContext describes one pipeline call.
type CallContext struct {
	// Label names the call in logs and errors, e.g. "legal-counsel".
	Label string

	// Messages is the full prompt.
	Messages []Message

	// DisableFallback keeps the call on the primary provider only.
	DisableFallback bool
}

// Pipeline owns the retry and fallback policy for agent LLM calls:
// up to MaxRetries attempts against the primary with exponential backoff
// (1s, 2s, 4s), then the same retry budget against the fallback provider
// with its own, longer per-attempt timeout.
//
// The reasoner is deliberately outside this chain: agents that need deep
// reasoning call Reason directly and handle its failure themselves.
type Pipeline struct {
	primary  Provider
	fallback Provider
	reasoner Provider
	cfg      *config.PipelineConfig

	// sleep is injectable for tests; defaults to time.Sleep.
	sleep func(time.Duration)
}

// NewPipeline wires the pipeline. fallback and reasoner may be nil.
func NewPipeline(primary, fallback, reasoner Provider, cfg *config.PipelineConfig) *Pipeline {
	if cfg == nil {
		cfg = config.DefaultPipelineConfig()
	}
	return &Pipeline{
		primary:  primary,
		fallback: fallback,
		reasoner: reasoner,
		cfg:      cfg,
		sleep:    time.Sleep,
	}
}

// HasReasoner reports whether a reasoner provider is configured.
func (p *Pipeline) HasReasoner() bool { return p.reasoner != nil }

// Call runs the retry/fallback chain and returns the first successful
// completion: up to MaxRetries attempts on the primary, then the same
// budget on the fallback with its extended timeout. On total failure it
// returns an *AttemptsError naming every attempt.
func (p *Pipeline) Call(ctx context.Context, call CallContext) (string, error) {
	attemptsErr := &AttemptsError{Label: call.Label}

	out, ok := p.tryProvider(ctx, p.primary, call, p.cfg.AttemptTimeout, attemptsErr)
	if ok {
		return out, nil
	}
	if ctx.Err() != nil || p.fallback == nil || call.DisableFallback {
		return "", attemptsErr
	}

	slog.Info("Primary provider exhausted, trying fallback",
		"label", call.Label, "fallback", p.fallback.Name())
	out, ok = p.tryProvider(ctx, p.fallback, call, p.cfg.FallbackTimeout, attemptsErr)
	if ok {
		return out, nil
	}
	return "", attemptsErr
}

// tryProvider runs the retry loop for one provider, appending failures to
// attemptsErr. Returns the completion and true on success.
func (p *Pipeline) tryProvider(ctx context.Context, provider Provider, call CallContext, timeout time.Duration, attemptsErr *AttemptsError) (string, bool) {
	log := slog.With("label", call.Label, "provider", provider.Name())

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.Reset()

	for attempt := 1; attempt <= p.cfg.MaxRetries; attempt++ {
		out, err := p.attempt(ctx, provider, call.Messages, timeout)
		if err == nil {
			return out, true
		}
		attemptsErr.Attempts = append(attemptsErr.Attempts, Attempt{
			Provider: provider.Name(), Attempt: attempt, Err: err,
		})

		if ctx.Err() != nil {
			return "", false
		}
		if !retryable(err) {
			log.Warn("Non-retryable provider error, skipping remaining retries", "error", err)
			return "", false
		}
		if attempt < p.cfg.MaxRetries {
			wait := bo.NextBackOff()
			log.Warn("LLM attempt failed, backing off", "attempt", attempt, "backoff", wait, "error", err)
			p.sleep(wait)
		}
	}
	return "", false
}

// Reason runs a single call against the slow reasoner provider.
// No retries and no fallback: reasoner output is an enhancement, and the
// calling agent degrades gracefully when it fails.
func (p *Pipeline) Reason(ctx context.Context, call CallContext) (string, error) {
	if p.reasoner == nil {
		return "", fmt.Errorf("no reasoner provider configured for %s", call.Label)
	}
	return p.attempt(ctx, p.reasoner, call.Messages, p.cfg.ReasonerTimeout)
}

func (p *Pipeline) attempt(ctx context.Context, provider Provider, messages []Message, timeout time.Duration) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return provider.Complete(attemptCtx, messages)
}

// retryable classifies a provider error. Transport errors and timeouts
// retry; a 4xx API rejection will not get better on the next attempt.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	if errors.Is(err, ErrEmptyCompletion) {
		return true
	}
	// Network errors, timeouts, unexpected payloads
	return true
}
