// Command plankpath solves and generates plank mazes.
//
// Usage:
//
//	plankpath generate --size 8 --density 0.3 --seed 7 --gap --out maze.yaml
//	plankpath solve maze.yaml --wildcard --workers 4 --timeout 10s
//
// Mazes and results are YAML documents; see package layoutio.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
