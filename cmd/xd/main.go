// Command xd formats dates through brace tokens and generates random strings
// from presets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// Version information - set at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "xd:", err)
		cancel()
		os.Exit(1)
	}
}

func versionString() string {
	return fmt.Sprintf("xd %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
