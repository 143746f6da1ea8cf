package configcmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/seqgen/internal/config"
	"github.com/open-cli-collective/seqgen/internal/view"
)

type clearOptions struct {
	configPath string
	noColor    bool
	stdout     io.Writer // For testing; defaults to os.Stdout
}

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	opts := &clearOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the seqgen config file",
		Long: `Delete the seqgen config file, including its generate targets.

SEQGEN_* environment variables are not affected and keep overriding the
built-in defaults.`,
		Example: `  # Remove the default config file
  seqgen config clear

  # Remove a project-local config file
  seqgen config clear --config ./seqgen.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			opts.configPath = config.ResolvePath(path)
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runClear(opts)
		},
	}

	return cmd
}

func runClear(opts *clearOptions) error {
	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	if opts.stdout != nil {
		renderer.SetWriter(opts.stdout)
	}

	switch err := os.Remove(opts.configPath); {
	case errors.Is(err, fs.ErrNotExist):
		renderer.Success("Nothing to clear: " + opts.configPath + " does not exist")
	case err != nil:
		return fmt.Errorf("failed to remove config file: %w", err)
	default:
		renderer.Success("Removed " + opts.configPath)
	}

	if active := activeEnvVars(); len(active) > 0 {
		renderer.Dim("Still set in the environment: " + strings.Join(active, ", "))
	}

	return nil
}

// activeEnvVars returns the SEQGEN_* variables that are currently non-empty.
func activeEnvVars() []string {
	var active []string
	for _, v := range config.EnvVars() {
		if os.Getenv(v) != "" {
			active = append(active, v)
		}
	}
	return active
}
