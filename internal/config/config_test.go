package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		TestSuffix:  "_test",
		BenchSuffix: "_bench",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing test suffix",
			mutate:  func(c *Config) { c.TestSuffix = "" },
			wantErr: true,
			errMsg:  "test_suffix is required",
		},
		{
			name:    "missing bench suffix",
			mutate:  func(c *Config) { c.BenchSuffix = "" },
			wantErr: true,
			errMsg:  "bench_suffix is required",
		},
		{
			name:    "unparseable timeout",
			mutate:  func(c *Config) { c.Timeout = "soon" },
			wantErr: true,
			errMsg:  "invalid timeout",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Timeout = "-1s" },
			wantErr: true,
			errMsg:  "must be positive",
		},
		{
			name: "valid target",
			mutate: func(c *Config) {
				c.Targets = []Target{{Mode: "h", Input: "resources/seq_base.h", Output: "src/base_seq.h"}}
			},
			wantErr: false,
		},
		{
			name: "target with bad mode",
			mutate: func(c *Config) {
				c.Targets = []Target{{Mode: "x", Input: "a", Output: "b"}}
			},
			wantErr: true,
			errMsg:  "targets[0]",
		},
		{
			name: "target missing output",
			mutate: func(c *Config) {
				c.Targets = []Target{{Mode: "c", Input: "a"}}
			},
			wantErr: true,
			errMsg:  "input and output are required",
		},
		{
			name: "target writes over its input",
			mutate: func(c *Config) {
				c.Targets = []Target{{Mode: "c", Input: "src/seq.c", Output: "./src/seq.c"}}
			},
			wantErr: true,
			errMsg:  "input and output must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	assert.Equal(t, DefaultTestSuffix, cfg.TestSuffix)
	assert.Equal(t, DefaultBenchSuffix, cfg.BenchSuffix)

	cfg = &Config{TestSuffix: "_check"}
	cfg.ApplyDefaults()
	assert.Equal(t, "_check", cfg.TestSuffix)
}

func TestConfig_TimeoutDuration(t *testing.T) {
	cfg := &Config{}
	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, d)

	cfg.Timeout = "90s"
	d, err = cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Run("loads all env vars", func(t *testing.T) {
		t.Setenv("SEQGEN_TEST_DIR", "build/test")
		t.Setenv("SEQGEN_TEST_SUFFIX", "_check")
		t.Setenv("SEQGEN_BENCH_SUFFIX", "_perf")
		t.Setenv("SEQGEN_TIMEOUT", "30s")

		cfg := &Config{}
		cfg.LoadFromEnv()

		assert.Equal(t, "build/test", cfg.TestDir)
		assert.Equal(t, "_check", cfg.TestSuffix)
		assert.Equal(t, "_perf", cfg.BenchSuffix)
		assert.Equal(t, "30s", cfg.Timeout)
	})

	t.Run("empty env vars do not override", func(t *testing.T) {
		t.Setenv("SEQGEN_TEST_DIR", "")
		t.Setenv("SEQGEN_TEST_SUFFIX", "")
		t.Setenv("SEQGEN_BENCH_SUFFIX", "")
		t.Setenv("SEQGEN_TIMEOUT", "")

		cfg := &Config{TestDir: "original", Timeout: "1m"}
		cfg.LoadFromEnv()

		assert.Equal(t, "original", cfg.TestDir)
		assert.Equal(t, "1m", cfg.Timeout)
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		assert.Equal(t, filepath.Join(dir, "seqgen", "config.yml"), DefaultConfigPath())
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		path := DefaultConfigPath()
		assert.True(t, strings.HasPrefix(path, home))
		assert.Contains(t, path, "seqgen")
		assert.Equal(t, ".yml", filepath.Ext(path))
	})
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "custom.yml", ResolvePath("custom.yml"))
	assert.Equal(t, DefaultConfigPath(), ResolvePath(""))
}

func TestConfig_Save_and_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yml")

	original := Config{
		TestDir:      "build/test",
		TestSuffix:   "_test",
		BenchSuffix:  "_bench",
		Timeout:      "2m",
		OutputFormat: "json",
		Targets: []Target{
			{Mode: "h", Input: "resources/seq_base.h", Output: "src/base_seq.h"},
			{Mode: "c", Input: "resources/seq_base.c", Output: "src/base_seq.c", Lenient: true},
		},
	}

	require.NoError(t, original.Save(configPath))

	loaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("targets: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadWithEnv_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SEQGEN_TEST_DIR", "")
	t.Setenv("SEQGEN_TEST_SUFFIX", "")
	t.Setenv("SEQGEN_BENCH_SUFFIX", "")
	t.Setenv("SEQGEN_TIMEOUT", "")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTestSuffix, cfg.TestSuffix)
	assert.Equal(t, DefaultBenchSuffix, cfg.BenchSuffix)
}

func TestLoadWithEnv_InvalidFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0644))

	_, err := LoadWithEnv(path)
	require.Error(t, err)
}
