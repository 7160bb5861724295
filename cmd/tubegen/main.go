// Command tubegen generates tube puzzles.
package main

import (
	"context"
	"os"
	"os/signal"
)

// main runs the root command; an interrupt cancels generation.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
