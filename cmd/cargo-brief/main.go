package main

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/matzehuels/cargo-brief/internal/cli"
	"github.com/matzehuels/cargo-brief/pkg/buildinfo"
)

func main() {
	if err := run(context.Background()); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		os.Exit(1)
	}
}

// run executes the command tree through fang, which prints the error.
// Cargo's own completion and man pages cover `cargo`, so fang's are disabled.
func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)

	return fang.Execute(
		ctx,
		c.RootCommand(),
		fang.WithVersion(buildinfo.Short()),
		fang.WithCommit(buildinfo.Commit),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
}
