package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
}

// newRootCmd builds a fresh command tree; tests get isolated flag state.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "plankpath",
		Short: "Shortest paths across plank mazes with one wildcard plank",
		Long: `plankpath finds the shortest route between two pillars of an n×n grid
where only the laid planks may be crossed, except for at most one extra
plank when the wildcard is enabled.

Examples:
  plankpath generate --size 8 --gap --seed 3 --out maze.yaml
  plankpath solve maze.yaml --wildcard
  plankpath solve - --wildcard --workers 4 < maze.yaml`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "auto", "log format: text, json or auto (text on a terminal)")

	root.AddCommand(newSolveCmd(g), newGenerateCmd(g))

	return root
}

// logger builds the structured logger selected by the global flags.
func (g *globalFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", g.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	format := strings.ToLower(g.logFormat)
	if format == "auto" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--log-format %q: want text, json or auto", g.logFormat)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
