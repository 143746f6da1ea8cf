package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/open-cli-collective/seqgen/internal/cmd/root"
	"github.com/open-cli-collective/seqgen/internal/cmd/testcmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := root.NewCmdRoot()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, testcmd.ErrTestsFailed) {
			red := color.New(color.FgRed)
			_, _ = red.Fprintln(os.Stderr, "Error: "+err.Error())
		}
		stop()
		os.Exit(1)
	}
}
