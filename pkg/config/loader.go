package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DealdeskYAMLConfig represents the complete dealdesk.yaml file structure
type DealdeskYAMLConfig struct {
	Defaults    *Defaults         `yaml:"defaults"`
	Queue       *QueueConfig      `yaml:"queue"`
	Pipeline    *PipelineConfig   `yaml:"pipeline"`
	Validator   *ValidatorConfig  `yaml:"validator"`
	DataSources *DataSourceConfig `yaml:"data_sources"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]*LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-defined configuration over built-in defaults
//  5. Build in-memory registries
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"workers", cfg.Queue.WorkerCount,
		"min_agent_coverage", cfg.Validator.MinAgentCoverage)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load dealdesk.yaml (defaults, queue, pipeline, validator, data sources)
	mainCfg, err := loader.loadDealdeskYAML()
	if err != nil {
		return nil, NewLoadError("dealdesk.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Resolve each section by merging user YAML over built-in defaults.
	// mergo.WithOverride makes non-zero user values win while preserving
	// unset defaults.
	queueConfig := DefaultQueueConfig()
	if mainCfg.Queue != nil {
		if err := mergo.Merge(queueConfig, mainCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	pipelineConfig := DefaultPipelineConfig()
	if mainCfg.Pipeline != nil {
		if err := mergo.Merge(pipelineConfig, mainCfg.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
		}
	}

	validatorConfig := DefaultValidatorConfig()
	if mainCfg.Validator != nil {
		if err := mergo.Merge(validatorConfig, mainCfg.Validator, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge validator config: %w", err)
		}
	}

	dataSourceConfig := DefaultDataSourceConfig()
	if mainCfg.DataSources != nil {
		if err := mergo.Merge(dataSourceConfig, mainCfg.DataSources, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge data source config: %w", err)
		}
	}

	defaults := mainCfg.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.ArtifactDir == "" {
		defaults.ArtifactDir = "artifacts"
	}

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Queue:               queueConfig,
		Pipeline:            pipelineConfig,
		Validator:           validatorConfig,
		DataSources:         dataSourceConfig,
		LLMProviderRegistry: NewLLMProviderRegistry(llmProviders),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser surface a clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadDealdeskYAML() (*DealdeskYAMLConfig, error) {
	var config DealdeskYAMLConfig
	if err := l.loadYAML("dealdesk.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]*LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig
	config.LLMProviders = make(map[string]*LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}
