// Package runner discovers test and benchmark executables by file name
// suffix and runs them as standalone programs.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Discover returns the regular files in dir whose names end with suffix,
// sorted by name.
func Discover(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		// Stat follows symlinks so linked executables still count
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// waitDelay bounds how long Run waits for output pipes after the program exits.
const waitDelay = time.Second

// Result is the outcome of one test executable.
type Result struct {
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
	Err      string        `json:"error,omitempty"` // set when the program could not be run
}

// Report collects the results of a test run.
type Report struct {
	Results []Result `json:"results"`
}

// Failed returns the number of failing tests.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// Summary returns the line printed after the result table.
func (r *Report) Summary() string {
	if failed := r.Failed(); failed > 0 {
		return fmt.Sprintf("Failed %d/%d tests.", failed, len(r.Results))
	}
	return "All tests passed!"
}

// Runner executes the programs found in Dir.
type Runner struct {
	Dir     string
	Suffix  string
	Timeout time.Duration // per executable, zero means no limit
	Output  io.Writer     // receives test program output, discarded when nil
}

// RunTests runs every test executable and records its exit status.
// A test passes when it exits with status zero.
func (r *Runner) RunTests(ctx context.Context) (*Report, error) {
	names, err := Discover(r.Dir, r.Suffix)
	if err != nil {
		return nil, err
	}

	report := &Report{Results: make([]Result, 0, len(names))}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		out := r.Output
		if out == nil {
			out = io.Discard
		}
		report.Results = append(report.Results, r.runOne(ctx, name, out))
	}
	return report, nil
}

// RunBenchmarks runs every benchmark executable, writing "name:" followed by
// the program's output verbatim. Benchmarks are separated by a blank line.
// It returns the number of benchmarks run.
func (r *Runner) RunBenchmarks(ctx context.Context, w io.Writer) (int, error) {
	names, err := Discover(r.Dir, r.Suffix)
	if err != nil {
		return 0, err
	}

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", name)
		res := r.runOne(ctx, name, w)
		if res.Err != "" {
			fmt.Fprintf(w, "%s: %s\n", name, res.Err)
		}
	}
	return len(names), nil
}

func (r *Runner) runOne(ctx context.Context, name string, out io.Writer) Result {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	path, err := filepath.Abs(filepath.Join(r.Dir, name))
	if err != nil {
		return Result{Name: name, ExitCode: -1, Err: err.Error()}
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Dir = r.Dir
	cmd.Stdout = out
	cmd.Stderr = out
	// A grandchild left holding the output pipe must not outlive the timeout
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err = cmd.Run()
	res := Result{Name: name, Duration: time.Since(start)}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.Passed = true
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && r.Timeout > 0 {
			res.Err = fmt.Sprintf("timed out after %s", r.Timeout)
		} else if ctx.Err() != nil {
			res.Err = ctx.Err().Error()
		}
	default:
		res.ExitCode = -1
		res.Err = err.Error()
	}
	return res
}
