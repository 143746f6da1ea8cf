package testcmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/seqgen/internal/config"
)

// NewCmdBench creates the bench command.
func NewCmdBench() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "bench [dir]",
		Short: "Run all benchmark executables in a directory",
		Long: `Run every regular file in a directory whose name ends in the benchmark
suffix (default "_bench") and relay its output verbatim, each block headed
by the executable's name.`,
		Example: `  # Run the benchmarks built into build/test
  seqgen bench build/test`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.dir = args[0]
			}
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runBench(cmd.Context(), opts)
		},
	}

	addRunFlags(cmd, opts)

	return cmd
}

func runBench(ctx context.Context, opts *runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	r, _, err := newRunner(opts, func(c *config.Config) string { return c.BenchSuffix })
	if err != nil {
		return err
	}

	stdout := opts.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	fmt.Fprintln(stdout, "Running all benchmarks...")
	if _, err := r.RunBenchmarks(ctx, stdout); err != nil {
		return fmt.Errorf("failed to run benchmarks: %w", err)
	}
	return nil
}
