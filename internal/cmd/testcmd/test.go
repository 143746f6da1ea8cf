// Package testcmd provides the test and bench runner commands.
package testcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/seqgen/internal/config"
	"github.com/open-cli-collective/seqgen/internal/runner"
	"github.com/open-cli-collective/seqgen/internal/view"
)

// ErrTestsFailed is returned when at least one test program exits non-zero.
// The failure has already been reported, so callers only set the exit status.
var ErrTestsFailed = errors.New("tests failed")

type runOptions struct {
	dir        string
	suffix     string
	timeout    time.Duration
	configPath string
	output     string
	noColor    bool
	stdout     io.Writer // For testing; defaults to os.Stdout
	stderr     io.Writer // For testing; defaults to os.Stderr
}

// NewCmdTest creates the test command.
func NewCmdTest() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "test [dir]",
		Short: "Run all test executables in a directory",
		Long: `Run every regular file in a directory whose name ends in the test suffix
(default "_test") as a standalone program with no arguments.

A test passes when it exits with status zero. Test program output goes to
stderr; the pass/fail table goes to stdout. seqgen exits non-zero when any
test fails.`,
		Example: `  # Run the tests built into build/test
  seqgen test build/test

  # Use the directory from the config file, JSON report
  seqgen test -o json

  # HTML report for CI artifacts
  seqgen test build/test -o html > report.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.dir = args[0]
			}
			opts.configPath, _ = cmd.Flags().GetString("config")
			if cmd.Flags().Changed("output") {
				opts.output, _ = cmd.Flags().GetString("output")
			}
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runTest(cmd.Context(), opts)
		},
	}

	addRunFlags(cmd, opts)

	return cmd
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVarP(&opts.suffix, "suffix", "s", "", "File name suffix that marks an executable (overrides config)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Per-executable timeout (overrides config, default 5m)")
}

// newRunner resolves directory, suffix and timeout from flags, then config.
// The loaded config is returned for the remaining settings.
func newRunner(opts *runOptions, suffixFor func(*config.Config) string) (*runner.Runner, *config.Config, error) {
	cfg, err := config.LoadWithEnv(config.ResolvePath(opts.configPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := opts.dir
	if dir == "" {
		dir = cfg.TestDir
	}
	if dir == "" {
		return nil, nil, errors.New("no directory given: pass one or set test_dir in the config file")
	}

	suffix := opts.suffix
	if suffix == "" {
		suffix = suffixFor(cfg)
	}

	timeout := opts.timeout
	if timeout == 0 {
		if timeout, err = cfg.TimeoutDuration(); err != nil {
			return nil, nil, err
		}
	}
	if timeout < 0 {
		return nil, nil, fmt.Errorf("invalid timeout %s: must be positive", timeout)
	}

	return &runner.Runner{Dir: dir, Suffix: suffix, Timeout: timeout}, cfg, nil
}

func runTest(ctx context.Context, opts *runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	r, cfg, err := newRunner(opts, func(c *config.Config) string { return c.TestSuffix })
	if err != nil {
		return err
	}

	// An explicit --output wins over output_format in the config file
	format := opts.output
	if format == "" {
		format = cfg.OutputFormat
	}
	if err := view.ValidateFormat(format); err != nil {
		return err
	}
	r.Output = opts.stderr
	if r.Output == nil {
		r.Output = os.Stderr
	}

	renderer := view.NewRenderer(view.Format(format), opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}
	table := renderer.Format() == view.FormatTable

	if table {
		renderer.RenderText("Running all tests...")
	}

	report, err := r.RunTests(ctx)
	if err != nil {
		return fmt.Errorf("failed to run tests: %w", err)
	}

	switch {
	case renderer.Format() == view.FormatJSON:
		if err := renderer.RenderJSON(report); err != nil {
			return err
		}
	case len(report.Results) == 0:
		if table {
			renderer.Dim("No tests found.")
		}
		return nil
	default:
		if err := renderer.RenderTable(reportTable(report)); err != nil {
			return err
		}
		if table {
			if report.Failed() > 0 {
				renderer.Error(report.Summary())
			} else {
				renderer.Success(report.Summary())
			}
		}
	}

	if report.Failed() > 0 {
		return ErrTestsFailed
	}
	return nil
}

func reportTable(report *runner.Report) ([]string, [][]string) {
	headers := []string{"Test Name", "Passed", "Failed"}
	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		if res.Passed {
			rows = append(rows, []string{res.Name, "X", ""})
		} else {
			rows = append(rows, []string{res.Name, "", "X"})
		}
	}
	return headers, rows
}
