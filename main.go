// Command valueiteration evaluates the uniform random policy on a square
// gridworld by value iteration and prints the converged value table.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/CodeStranger-Fred/valueiteration/app"
	"github.com/CodeStranger-Fred/valueiteration/config"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
}
