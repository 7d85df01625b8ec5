package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for cflow.
type Config struct {
	// OutputDir is where DOT and CSV artifacts are written. Empty means
	// next to the analyzed file.
	OutputDir string `yaml:"output_dir" env:"CFLOW_OUTPUT_DIR"`

	// WriteDOT controls whether run emits the graph description artifact.
	WriteDOT bool `yaml:"write_dot" env:"CFLOW_WRITE_DOT"`

	// WriteCSV controls whether run emits per-iteration CSV tables.
	WriteCSV bool `yaml:"write_csv" env:"CFLOW_WRITE_CSV"`

	// CacheEnabled turns on the report cache.
	CacheEnabled bool `yaml:"cache_enabled" env:"CFLOW_CACHE_ENABLED"`

	// CachePath is the cache file location.
	CachePath string `yaml:"cache_path" env:"CFLOW_CACHE_PATH"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" env:"CFLOW_VERBOSE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:    "",
		WriteDOT:     true,
		WriteCSV:     true,
		CacheEnabled: false,
		CachePath:    defaultCachePath(),
		Verbose:      false,
	}
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cflow/cache.msgpack"
	}
	return filepath.Join(home, ".cflow", "cache.msgpack")
}

// globalConfigFilePath returns the global config file path (~/.cflow/config.yaml)
func globalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cflow/config.yaml"
	}
	return filepath.Join(home, ".cflow", "config.yaml")
}

// projectConfigFilePath returns the project-level config file path (./.cflow/config.yaml)
func projectConfigFilePath() string {
	return ".cflow/config.yaml"
}

// GlobalPath returns the global config file path.
func GlobalPath() string {
	return globalConfigFilePath()
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Environment variables
// 2. Project-level config (./.cflow/config.yaml)
// 3. Global config (~/.cflow/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalConfigPath := globalConfigFilePath()
	if data, err := os.ReadFile(globalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", globalConfigPath, err)
		}
	}

	projectConfigPath := projectConfigFilePath()
	if data, err := os.ReadFile(projectConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", projectConfigPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CFLOW_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("CFLOW_WRITE_DOT"); v != "" {
		cfg.WriteDOT = parseBool(v)
	}
	if v := os.Getenv("CFLOW_WRITE_CSV"); v != "" {
		cfg.WriteCSV = parseBool(v)
	}
	if v := os.Getenv("CFLOW_CACHE_ENABLED"); v != "" {
		cfg.CacheEnabled = parseBool(v)
	}
	if v := os.Getenv("CFLOW_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("CFLOW_VERBOSE"); v != "" {
		cfg.Verbose = parseBool(v)
	}
}

// Validate checks that the configuration has valid required fields.
func (c *Config) Validate() error {
	if c.CacheEnabled && c.CachePath == "" {
		return fmt.Errorf("cache_path is required when cache_enabled is true")
	}
	return nil
}

func parseBool(s string) bool {
	return s == "true" || s == "1" || s == "yes"
}
