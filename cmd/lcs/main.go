// Command lcs computes the longest common subsequence of every ordered pair
// of named strings in an input file.
package main

import (
	"context"
	"os"
	"os/signal"

	"charm.land/fang/v2"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, cli.NewRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}
