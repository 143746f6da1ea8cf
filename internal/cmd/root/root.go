// Package root provides the root command for the seqgen CLI.
package root

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/seqgen/internal/cmd/completion"
	"github.com/open-cli-collective/seqgen/internal/cmd/configcmd"
	"github.com/open-cli-collective/seqgen/internal/cmd/gen"
	initcmd "github.com/open-cli-collective/seqgen/internal/cmd/init"
	"github.com/open-cli-collective/seqgen/internal/cmd/testcmd"
	"github.com/open-cli-collective/seqgen/internal/version"
	"github.com/open-cli-collective/seqgen/pkg/seqgen"
)

// NewCmdRoot creates the root command for seqgen.
func NewCmdRoot() *cobra.Command {
	opts := &gen.Options{}

	cmd := &cobra.Command{
		Use:   "seqgen {h|c}",
		Short: "Turn example sequence templates into code-generation macros",
		Long: `seqgen reads a C template written around the placeholder types ExSeq and
Example, echoes it, and appends a GENERATE_SEQ_HEADER (h) or
GENERATE_SEQ_BODY (c) macro that instantiates the same code for any
element type and name prefix.

It also runs the compiled test and benchmark programs of a project.`,
		Example: `  # Generate the header and implementation macros
  seqgen h < resources/seq_base.h > src/base_seq.h
  seqgen c --lenient --in resources/seq_base.c --out src/base_seq.c

  # Run tests and benchmarks
  seqgen test build/test
  seqgen bench build/test`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"h\theader macro (GENERATE_SEQ_HEADER)", "c\timplementation macro (GENERATE_SEQ_BODY)"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Mode = args[0]
			}
			opts.Stdin = cmd.InOrStdin()
			opts.Stdout = cmd.OutOrStdout()

			err := gen.Run(opts)
			var usageErr *seqgen.UsageError
			if errors.As(err, &usageErr) {
				_ = cmd.Usage()
			}
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().String("config", "", "config file (default: ~/.config/seqgen/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain, html")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	gen.AddFlags(cmd, opts)

	// Set version template
	cmd.SetVersionTemplate(version.Template())

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(gen.NewCmdGenerate())
	cmd.AddCommand(testcmd.NewCmdTest())
	cmd.AddCommand(testcmd.NewCmdBench())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
