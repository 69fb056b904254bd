package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Providers first so role references validate against a known-good registry
	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateRoles(); err != nil {
		return fmt.Errorf("role validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}

	if err := v.validateValidator(); err != nil {
		return fmt.Errorf("validator config validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.BaseURL == "" {
			return NewValidationError("llm_provider", name, "base_url", ErrMissingRequiredField)
		}
		if provider.APIKeyEnv != "" {
			if os.Getenv(provider.APIKeyEnv) == "" {
				return NewValidationError("llm_provider", name, "api_key_env",
					fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}
		if provider.Temperature != nil && (*provider.Temperature < 0 || *provider.Temperature > 2) {
			return NewValidationError("llm_provider", name, "temperature",
				fmt.Errorf("%w: must be in [0, 2]", ErrInvalidValue))
		}
	}
	return nil
}

func (v *ConfigValidator) validateRoles() error {
	d := v.cfg.Defaults
	if d.PrimaryProvider == "" {
		return NewValidationError("defaults", "defaults", "primary_provider", ErrMissingRequiredField)
	}
	if !v.cfg.LLMProviderRegistry.Has(d.PrimaryProvider) {
		return NewValidationError("defaults", "defaults", "primary_provider",
			fmt.Errorf("%w: provider '%s' not found", ErrInvalidReference, d.PrimaryProvider))
	}
	if d.FallbackProvider != "" && !v.cfg.LLMProviderRegistry.Has(d.FallbackProvider) {
		return NewValidationError("defaults", "defaults", "fallback_provider",
			fmt.Errorf("%w: provider '%s' not found", ErrInvalidReference, d.FallbackProvider))
	}
	if d.ReasonerProvider != "" && !v.cfg.LLMProviderRegistry.Has(d.ReasonerProvider) {
		return NewValidationError("defaults", "defaults", "reasoner_provider",
			fmt.Errorf("%w: provider '%s' not found", ErrInvalidReference, d.ReasonerProvider))
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.MaxConcurrentJobs < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_jobs",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.JobTimeout <= 0 {
		return NewValidationError("queue", "queue", "job_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.AgentSoftTimeout <= 0 || q.AgentSoftTimeout >= q.JobTimeout {
		return NewValidationError("queue", "queue", "agent_soft_timeout",
			fmt.Errorf("%w: must be positive and below job_timeout", ErrInvalidValue))
	}
	if q.OrphanThreshold <= 0 {
		return NewValidationError("queue", "queue", "orphan_threshold",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p.MaxRetries < 1 {
		return NewValidationError("pipeline", "pipeline", "max_retries",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if p.AttemptTimeout <= 0 {
		return NewValidationError("pipeline", "pipeline", "attempt_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.FallbackTimeout <= 0 {
		return NewValidationError("pipeline", "pipeline", "fallback_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateValidator() error {
	if v.cfg.Validator.MinAgentCoverage < 1 {
		return NewValidationError("validator", "validator", "min_agent_coverage",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}
