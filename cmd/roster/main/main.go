package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/roster/cmd/roster"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := roster.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			// Interrupted: the menu was left without saving.
			fmt.Fprintln(os.Stderr)
			stop()
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, style.RenderError(errors.UserMessage(err)))
		stop()
		os.Exit(1)
	}
}
