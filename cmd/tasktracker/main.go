package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericfisherdev/tasktracker/internal/adapter/driving/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel in-flight database work on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Run(ctx, os.Args[1:], cli.Options{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	})
}
