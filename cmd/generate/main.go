package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd through fang, which renders any returned error on stderr
func execute(ctx context.Context, cmd *cobra.Command) error {
	return fang.Execute(ctx, cmd, fang.WithVersion(version))
}
