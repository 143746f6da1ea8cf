// Package config provides configuration management for seqgen.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/seqgen/pkg/seqgen"
)

// Defaults applied when neither the config file nor the environment sets a value.
const (
	DefaultTestSuffix  = "_test"
	DefaultBenchSuffix = "_bench"
	DefaultTimeout     = 5 * time.Minute
)

// Target is one template to regenerate with `seqgen generate`.
type Target struct {
	Mode    string `yaml:"mode"`
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Lenient bool   `yaml:"lenient,omitempty"`
}

// Config holds the seqgen configuration.
type Config struct {
	TestDir      string   `yaml:"test_dir,omitempty"`
	TestSuffix   string   `yaml:"test_suffix,omitempty"`
	BenchSuffix  string   `yaml:"bench_suffix,omitempty"`
	Timeout      string   `yaml:"timeout,omitempty"`
	OutputFormat string   `yaml:"output_format,omitempty"`
	Targets      []Target `yaml:"targets,omitempty"`
}

// ApplyDefaults fills in unset suffixes.
func (c *Config) ApplyDefaults() {
	if c.TestSuffix == "" {
		c.TestSuffix = DefaultTestSuffix
	}
	if c.BenchSuffix == "" {
		c.BenchSuffix = DefaultBenchSuffix
	}
}

// TimeoutDuration returns the per-executable timeout, DefaultTimeout when unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", c.Timeout)
	}
	return d, nil
}

// Validate checks that all configured values are usable.
func (c *Config) Validate() error {
	if c.TestSuffix == "" {
		return errors.New("test_suffix is required")
	}
	if c.BenchSuffix == "" {
		return errors.New("bench_suffix is required")
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	for i, t := range c.Targets {
		if _, err := seqgen.ParseMode(t.Mode); err != nil {
			return fmt.Errorf("targets[%d]: %w", i, err)
		}
		if t.Input == "" || t.Output == "" {
			return fmt.Errorf("targets[%d]: input and output are required", i)
		}
		if filepath.Clean(t.Input) == filepath.Clean(t.Output) {
			return fmt.Errorf("targets[%d]: input and output must differ (%s)", i, t.Input)
		}
	}

	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if dir := os.Getenv("SEQGEN_TEST_DIR"); dir != "" {
		c.TestDir = dir
	}
	if suffix := os.Getenv("SEQGEN_TEST_SUFFIX"); suffix != "" {
		c.TestSuffix = suffix
	}
	if suffix := os.Getenv("SEQGEN_BENCH_SUFFIX"); suffix != "" {
		c.BenchSuffix = suffix
	}
	if timeout := os.Getenv("SEQGEN_TIMEOUT"); timeout != "" {
		c.Timeout = timeout
	}
}

// EnvVars lists the environment variables read by LoadFromEnv.
func EnvVars() []string {
	return []string{"SEQGEN_TEST_DIR", "SEQGEN_TEST_SUFFIX", "SEQGEN_BENCH_SUFFIX", "SEQGEN_TIMEOUT"}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "seqgen", "config.yml")
	}

	// Fall back to ~/.config/seqgen/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".seqgen", "config.yml")
	}

	return filepath.Join(home, ".config", "seqgen", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file, overrides with environment
// variables and applies defaults.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}

// ResolvePath returns override when set, otherwise DefaultConfigPath.
func ResolvePath(override string) string {
	if override != "" {
		return override
	}
	return DefaultConfigPath()
}
