// Package main contains the entrypoint for studybot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode)
}

// run executes the command line and returns the process exit code. Upstream
// failures are logged by the flows and never turn into a non-zero exit.
func run(ctx context.Context, args []string) int {
	root := newRootCommand()
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))

	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
