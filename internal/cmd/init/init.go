// Package init provides the init command for seqgen.
package init

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/seqgen/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var testDir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize seqgen configuration",
		Long: `Initialize seqgen with the directory holding your compiled test and
benchmark programs, the file name suffixes that mark them, and the
per-program timeout. The configuration will be saved to
~/.config/seqgen/config.yml.

Templates to regenerate with "seqgen generate" are added by editing the
"targets" list in that file.`,
		Example: `  # Interactive setup
  seqgen init

  # Pre-populate the test directory
  seqgen init --test-dir build/test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runInit(config.ResolvePath(configPath), testDir)
		},
	}

	cmd.Flags().StringVar(&testDir, "test-dir", "", "Directory containing test and benchmark executables")

	return cmd
}

func runInit(configPath, prefillTestDir string) error {
	// Check if config already exists
	existing, err := config.Load(configPath)
	if err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	} else {
		existing = &config.Config{}
	}

	cfg := prefill(existing, prefillTestDir)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Test directory").
				Description("Directory containing compiled *_test and *_bench programs").
				Placeholder("build/test").
				Value(&cfg.TestDir).
				Validate(validateDir),

			huh.NewInput().
				Title("Test suffix").
				Description("File name suffix that marks a test program").
				Value(&cfg.TestSuffix).
				Validate(validateSuffix),

			huh.NewInput().
				Title("Benchmark suffix").
				Description("File name suffix that marks a benchmark program").
				Value(&cfg.BenchSuffix).
				Validate(validateSuffix),

			huh.NewInput().
				Title("Timeout").
				Description("Maximum run time per program, e.g. 30s or 5m").
				Value(&cfg.Timeout).
				Validate(validateTimeout),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  seqgen test")
	fmt.Println("  seqgen h < resources/seq_base.h > src/base_seq.h")

	return nil
}

// prefill returns a copy of existing with defaults and the flag value applied.
func prefill(existing *config.Config, testDir string) *config.Config {
	cfg := *existing
	if testDir != "" {
		cfg.TestDir = testDir
	}
	cfg.ApplyDefaults()
	if cfg.Timeout == "" {
		cfg.Timeout = config.DefaultTimeout.String()
	}
	return &cfg
}

func validateDir(s string) error {
	if s == "" {
		return fmt.Errorf("test directory is required")
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("cannot use %s: %w", s, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

func validateSuffix(s string) error {
	if s == "" {
		return fmt.Errorf("suffix is required")
	}
	return nil
}

func validateTimeout(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
