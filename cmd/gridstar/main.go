// Command gridstar generates a random grid, searches it for a path and
// prints the result.
//
// Usage:
//
//	gridstar [flags]
//
// With no flags it searches the 24x13 demo map (80% passable, seed 12345)
// from (0,0) to (23,11). Flags override values from -config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
