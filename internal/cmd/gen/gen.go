// Package gen provides the macro generation commands.
package gen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/seqgen/pkg/seqgen"
)

// Options configures a single template conversion.
type Options struct {
	Mode    string
	In      string // template path, stdin when empty
	Out     string // generated file path, stdout when empty
	Lenient bool

	Stdin  io.Reader // For testing; defaults to os.Stdin
	Stdout io.Writer // For testing; defaults to os.Stdout
}

// AddFlags registers the conversion flags on cmd.
func AddFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVar(&opts.In, "in", "", "Read the template from this file instead of stdin")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write the generated file here instead of stdout")
	cmd.Flags().BoolVar(&opts.Lenient, "lenient", false, "Accept templates without the autogeneration sentinel line")
}

// Run converts one template. The whole input is read before any output is
// written, and an output path that names the input file is rejected.
func Run(opts *Options) error {
	mode, err := seqgen.ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	if opts.In != "" && opts.Out != "" {
		same, err := samePath(opts.In, opts.Out)
		if err != nil {
			return err
		}
		if same {
			return fmt.Errorf("--in and --out both name %s: the template would be overwritten", opts.In)
		}
	}

	var input []byte
	if opts.In != "" {
		input, err = os.ReadFile(opts.In)
	} else {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		input, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	var genOpts []seqgen.Option
	if opts.Lenient {
		genOpts = append(genOpts, seqgen.WithLenient())
	}
	output, err := seqgen.Generate(mode, string(input), genOpts...)
	if err != nil {
		source := opts.In
		if source == "" {
			source = "<stdin>"
		}
		var malformed *seqgen.TemplateMalformedError
		if errors.As(err, &malformed) {
			return fmt.Errorf("%s: %w (pass --lenient to convert it anyway)", source, err)
		}
		return fmt.Errorf("%s: %w", source, err)
	}

	if opts.Out != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Out), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(opts.Out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	if _, err := io.WriteString(stdout, output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// samePath reports whether a and b refer to the same file.
func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}

	// An output that does not exist yet cannot be the input
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA != nil || errB != nil {
		return false, nil
	}
	return os.SameFile(infoA, infoB), nil
}
