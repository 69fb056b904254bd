package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, mainYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dealdesk.yaml"), []byte(mainYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

const validProvidersYAML = `
llm_providers:
  deepseek-chat:
    model: deepseek-chat
    base_url: https://api.deepseek.com/v1
  deepseek-reasoner:
    model: deepseek-reasoner
    base_url: https://api.deepseek.com/v1
`

func TestInitialize(t *testing.T) {
	t.Run("valid config with defaults applied", func(t *testing.T) {
		dir := writeConfigFiles(t, `
defaults:
  primary_provider: deepseek-chat
  reasoner_provider: deepseek-reasoner
`, validProvidersYAML)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Queue.WorkerCount)
		assert.Equal(t, 30*time.Minute, cfg.Queue.JobTimeout)
		assert.Equal(t, 3, cfg.Pipeline.MaxRetries)
		assert.Equal(t, 90*time.Second, cfg.Pipeline.AttemptTimeout)
		assert.Equal(t, 10, cfg.Validator.MinAgentCoverage)
		assert.Equal(t, "artifacts", cfg.Defaults.ArtifactDir)
		assert.Equal(t, 2, cfg.LLMProviderRegistry.Len())
	})

	t.Run("user values override defaults", func(t *testing.T) {
		dir := writeConfigFiles(t, `
defaults:
  primary_provider: deepseek-chat
queue:
  worker_count: 8
  job_timeout: 45m
validator:
  min_agent_coverage: 13
`, validProvidersYAML)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		assert.Equal(t, 8, cfg.Queue.WorkerCount)
		assert.Equal(t, 45*time.Minute, cfg.Queue.JobTimeout)
		// Unset fields retain defaults
		assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
		assert.Equal(t, 13, cfg.Validator.MinAgentCoverage)
	})

	t.Run("missing primary provider fails validation", func(t *testing.T) {
		dir := writeConfigFiles(t, `
defaults:
  fallback_provider: deepseek-chat
`, validProvidersYAML)

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "primary_provider")
	})

	t.Run("unknown provider reference fails validation", func(t *testing.T) {
		dir := writeConfigFiles(t, `
defaults:
  primary_provider: gpt-nonexistent
`, validProvidersYAML)

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gpt-nonexistent")
	})

	t.Run("provider without base_url fails validation", func(t *testing.T) {
		dir := writeConfigFiles(t, `
defaults:
  primary_provider: broken
`, `
llm_providers:
  broken:
    model: some-model
`)

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_url")
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Initialize(context.Background(), t.TempDir())
		require.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := writeConfigFiles(t, "queue: [not: a: mapping", validProvidersYAML)
		_, err := Initialize(context.Background(), dir)
		require.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("api_key_env expands and validates", func(t *testing.T) {
		t.Setenv("TEST_DEEPSEEK_KEY", "sk-test")
		dir := writeConfigFiles(t, `
defaults:
  primary_provider: deepseek-chat
`, `
llm_providers:
  deepseek-chat:
    model: deepseek-chat
    base_url: https://api.deepseek.com/v1
    api_key_env: TEST_DEEPSEEK_KEY
`)

		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		p, err := cfg.GetLLMProvider("deepseek-chat")
		require.NoError(t, err)
		assert.Equal(t, "TEST_DEEPSEEK_KEY", p.APIKeyEnv)
	})

	t.Run("unset api_key_env fails validation", func(t *testing.T) {
		dir := writeConfigFiles(t, `
defaults:
  primary_provider: deepseek-chat
`, `
llm_providers:
  deepseek-chat:
    model: deepseek-chat
    base_url: https://api.deepseek.com/v1
    api_key_env: DEFINITELY_NOT_SET_KEY
`)

		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DEFINITELY_NOT_SET_KEY")
	})
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_HOST", "db.internal")

	out := ExpandEnv([]byte("host: {{.EXPAND_TEST_HOST}}"))
	assert.Equal(t, "host: db.internal", string(out))

	// Literal $ survives untouched
	out = ExpandEnv([]byte(`pattern: "^secret.*$"`))
	assert.Equal(t, `pattern: "^secret.*$"`, string(out))

	// Missing variables expand to empty string
	out = ExpandEnv([]byte("key: {{.NOT_SET_ANYWHERE_XYZ}}"))
	assert.Equal(t, "key: ", string(out))
}

func TestProviderForRole(t *testing.T) {
	reg := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"fast": {Model: "fast-1", BaseURL: "https://example.com/v1"},
		"deep": {Model: "deep-1", BaseURL: "https://example.com/v1"},
	})
	cfg := &Config{
		Defaults: &Defaults{
			PrimaryProvider:  "fast",
			ReasonerProvider: "deep",
		},
		LLMProviderRegistry: reg,
	}

	p, err := cfg.ProviderForRole(RolePrimary)
	require.NoError(t, err)
	assert.Equal(t, "fast-1", p.Model)

	// Unset fallback resolves to nil without error
	p, err = cfg.ProviderForRole(RoleFallback)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = cfg.ProviderForRole(RoleReasoner)
	require.NoError(t, err)
	assert.Equal(t, "deep-1", p.Model)

	_, err = cfg.ProviderForRole("bogus")
	require.Error(t, err)
}
