package gen

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/seqgen/internal/config"
	"github.com/open-cli-collective/seqgen/internal/view"
	"github.com/open-cli-collective/seqgen/pkg/seqgen"
)

type generateOptions struct {
	configPath string
	only       []string
	noColor    bool
	stdout     io.Writer // For testing; defaults to os.Stdout
}

// NewCmdGenerate creates the generate command.
func NewCmdGenerate() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Regenerate every configured template",
		Long: `Regenerate the macro files listed under "targets" in the config file.

Each target names a mode (h or c), a template input and a generated output.
Set "lenient: true" on a target whose template has no sentinel line.`,
		Example: `  # Regenerate all targets
  seqgen generate

  # Regenerate only the header
  seqgen generate --only src/base_seq.h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "Regenerate only targets with these output paths")

	return cmd
}

func runGenerate(opts *generateOptions) error {
	cfg, err := config.LoadWithEnv(config.ResolvePath(opts.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}

	targets := selectTargets(cfg.Targets, opts.only)
	if len(targets) == 0 {
		renderer.Dim("No targets configured.")
		return nil
	}

	for _, t := range targets {
		err := Run(&Options{
			Mode:    t.Mode,
			In:      t.Input,
			Out:     t.Output,
			Lenient: t.Lenient,
		})
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", t.Output, err)
		}
		mode, _ := seqgen.ParseMode(t.Mode)
		renderer.Success(fmt.Sprintf("Generated %s from %s (%s)", t.Output, t.Input, mode))
	}

	return nil
}

func selectTargets(targets []config.Target, only []string) []config.Target {
	if len(only) == 0 {
		return targets
	}
	want := make(map[string]bool, len(only))
	for _, o := range only {
		want[o] = true
	}
	var selected []config.Target
	for _, t := range targets {
		if want[t.Output] {
			selected = append(selected, t)
		}
	}
	return selected
}
