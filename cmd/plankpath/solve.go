package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/plankpath/layoutio"
	"github.com/katalvlaran/plankpath/search"
)

type solveFlags struct {
	wildcard    bool
	workers     int
	maxNodes    int64
	timeout     time.Duration
	output      string
	metricsFile string
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve MAZE",
		Short: "Find the shortest path through a maze document",
		Long: `Read a maze document (or stdin when MAZE is "-"), search it and write a
result document.

When a budget is exhausted or the search is interrupted, the best path found
so far is written with an error field and the command fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, f, args[0])
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&f.wildcard, "wildcard", "w", false, "allow one plank outside the layout")
	flags.IntVar(&f.workers, "workers", 1, "goroutines used by the search")
	flags.Int64Var(&f.maxNodes, "max-nodes", 0, "stop after this many pillar visits (0 = no cap)")
	flags.DurationVar(&f.timeout, "timeout", 0, "stop after this long (0 = no limit)")
	flags.StringVarP(&f.output, "output", "o", "", "write the result here instead of stdout")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "write prometheus metrics in text format to this file")

	return cmd
}

func runSolve(cmd *cobra.Command, g *globalFlags, f *solveFlags, src string) error {
	logger, err := g.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	runID := uuid.NewString()[:12]
	logger = logger.With(slog.String("run_id", runID))
	if f.workers < 1 {
		return fmt.Errorf("--workers %d: must be at least 1", f.workers)
	}
	if f.maxNodes < 0 || f.timeout < 0 {
		return errors.New("--max-nodes and --timeout must not be negative")
	}

	// 1. Load the maze.
	maze, err := readMaze(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}
	start, end, err := maze.Endpoints()
	if err != nil {
		return err
	}
	layout, err := maze.Layout()
	if err != nil {
		return err
	}

	// 2. Search.
	reg := prometheus.NewRegistry()
	engine, err := search.NewEngine(maze.Size, layout,
		search.WithStart(start),
		search.WithEnd(end),
		search.WithWorkers(f.workers),
		search.WithMaxNodes(f.maxNodes),
		search.WithTimeLimit(f.timeout),
		search.WithLogger(logger),
		search.WithMetrics(search.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}
	path, searchErr := engine.Search(cmd.Context(), f.wildcard)
	stats := engine.Stats()
	logger.Info("solved",
		"size", maze.Size,
		"wildcard", f.wildcard,
		"reachable", !path.IsInfinite(),
		"distance", path.Distance(),
		"nodes", stats.Nodes,
		"error", searchErr,
	)

	// 3. Report.
	result := layoutio.NewResult(maze, f.wildcard, path)
	result.Nodes = stats.Nodes
	result.RunID = runID
	if searchErr != nil {
		result.Error = searchErr.Error()
	}
	if err := writeResult(cmd.OutOrStdout(), f.output, result); err != nil {
		return err
	}
	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return searchErr
}

// readMaze decodes the maze at path, or from stdin when path is "-".
func readMaze(stdin io.Reader, path string) (*layoutio.Maze, error) {
	if path == "-" {
		return layoutio.DecodeMaze(stdin)
	}

	return layoutio.LoadMaze(path)
}

// writeResult writes r to path, or to w when path is empty.
func writeResult(w io.Writer, path string, r *layoutio.Result) error {
	if path == "" {
		return r.Encode(w)
	}
	if err := layoutio.SaveResult(path, r); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "result written to %s\n", path)

	return err
}
