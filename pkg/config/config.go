// Package config loads and validates DealDesk configuration from YAML files
// and environment variables.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// System-wide defaults (LLM roles, artifact directory)
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Pipeline retry/timeout tuning
	Pipeline *PipelineConfig

	// Consistency validator tuning
	Validator *ValidatorConfig

	// External data source endpoints and credentials
	DataSources *DataSourceConfig

	// LLM provider registry
	LLMProviderRegistry *LLMProviderRegistry
}

// Defaults groups system-wide default settings.
type Defaults struct {
	// PrimaryProvider names the provider used for standard agent calls.
	PrimaryProvider string `yaml:"primary_provider"`

	// FallbackProvider names the provider tried after the primary's
	// retry budget is exhausted. Empty disables fallback.
	FallbackProvider string `yaml:"fallback_provider"`

	// ReasonerProvider names the slow, deep-reasoning provider used by
	// agents that opt in. Deliberately outside the fallback chain.
	ReasonerProvider string `yaml:"reasoner_provider"`

	// ArtifactDir is where rendered report artifacts are written.
	ArtifactDir string `yaml:"artifact_dir"`
}

// PipelineConfig tunes the LLM call pipeline.
type PipelineConfig struct {
	// MaxRetries is the per-provider retry budget before falling back.
	MaxRetries int `yaml:"max_retries"`

	// AttemptTimeout bounds a single primary/fallback attempt.
	AttemptTimeout time.Duration `yaml:"attempt_timeout"`

	// FallbackTimeout bounds a fallback attempt. Fallback providers are
	// often slower, so this is separate from AttemptTimeout.
	FallbackTimeout time.Duration `yaml:"fallback_timeout"`

	// ReasonerTimeout bounds a reasoner call.
	ReasonerTimeout time.Duration `yaml:"reasoner_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxRetries:      3,
		AttemptTimeout:  90 * time.Second,
		FallbackTimeout: 120 * time.Second,
		ReasonerTimeout: 10 * time.Minute,
	}
}

// ValidatorConfig tunes the consistency validator.
type ValidatorConfig struct {
	// MinAgentCoverage is the minimum number of agent records required
	// for a completed analysis. Below this threshold a coverage issue
	// is raised.
	MinAgentCoverage int `yaml:"min_agent_coverage"`
}

// DefaultValidatorConfig returns the built-in validator defaults.
func DefaultValidatorConfig() *ValidatorConfig {
	return &ValidatorConfig{
		MinAgentCoverage: 10,
	}
}

// DataSourceConfig holds external data source endpoints and credentials.
type DataSourceConfig struct {
	// FinancialBaseURL is the financial data API root.
	FinancialBaseURL string `yaml:"financial_base_url"`

	// FinancialAPIKeyEnv names the env var holding the API key.
	FinancialAPIKeyEnv string `yaml:"financial_api_key_env"`

	// FilingsBaseURL is the regulatory filings API root.
	FilingsBaseURL string `yaml:"filings_base_url"`

	// FilingsUserAgent identifies this service to the filings API,
	// which requires a contactable user agent.
	FilingsUserAgent string `yaml:"filings_user_agent"`

	// SearchBaseURL is the web search API root. Empty disables search.
	SearchBaseURL string `yaml:"search_base_url"`

	// SearchAPIKeyEnv names the env var holding the search API key.
	SearchAPIKeyEnv string `yaml:"search_api_key_env"`

	// RequestsPerSecond rate-limits outbound data source calls.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// DefaultDataSourceConfig returns the built-in data source defaults.
func DefaultDataSourceConfig() *DataSourceConfig {
	return &DataSourceConfig{
		FinancialBaseURL:   "https://financialmodelingprep.com/api/v3",
		FinancialAPIKeyEnv: "FMP_API_KEY",
		FilingsBaseURL:     "https://data.sec.gov",
		FilingsUserAgent:   "dealdesk admin@dealdesk.local",
		SearchAPIKeyEnv:    "SEARCH_API_KEY",
		RequestsPerSecond:  4,
	}
}

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// ProviderForRole resolves a role (primary, fallback, reasoner) to its
// configured provider. Fallback and reasoner may be unset; the caller
// handles the nil case.
func (c *Config) ProviderForRole(role string) (*LLMProviderConfig, error) {
	var name string
	switch role {
	case RolePrimary:
		name = c.Defaults.PrimaryProvider
	case RoleFallback:
		name = c.Defaults.FallbackProvider
	case RoleReasoner:
		name = c.Defaults.ReasonerProvider
	default:
		return nil, NewValidationError("llm_provider", role, "", ErrInvalidValue)
	}
	if name == "" {
		return nil, nil
	}
	return c.LLMProviderRegistry.Get(name)
}
