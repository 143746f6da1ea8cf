package configcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/seqgen/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current seqgen configuration with value source indicators.`,
		Example: `  # Show current config
  seqgen config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			configPath, _ := cmd.Flags().GetString("config")
			return runShow(config.ResolvePath(configPath), noColor, os.Stdout)
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides and defaults
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-14s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(w, "-")
			return
		}
		fmt.Fprint(w, value)

		source := "default"
		switch {
		case envVar != "" && os.Getenv(envVar) != "" && os.Getenv(envVar) == value:
			source = envVar
		case fileValue != "" && fileValue == value:
			source = "config"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}
	timeoutValue := cfg.Timeout
	if timeoutValue == "" {
		timeoutValue = timeout.String()
	}

	printField("Test dir", cfg.TestDir, fileCfg.TestDir, "SEQGEN_TEST_DIR")
	printField("Test suffix", cfg.TestSuffix, fileCfg.TestSuffix, "SEQGEN_TEST_SUFFIX")
	printField("Bench suffix", cfg.BenchSuffix, fileCfg.BenchSuffix, "SEQGEN_BENCH_SUFFIX")
	printField("Timeout", timeoutValue, fileCfg.Timeout, "SEQGEN_TIMEOUT")

	if len(cfg.Targets) > 0 {
		fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, "Targets:")
		for _, t := range cfg.Targets {
			line := fmt.Sprintf("  [%s] %s -> %s", t.Mode, t.Input, t.Output)
			if t.Lenient {
				line += " (lenient)"
			}
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}
