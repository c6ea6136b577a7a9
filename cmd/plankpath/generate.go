package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/plankpath/generate"
	"github.com/katalvlaran/plankpath/grid"
	"github.com/katalvlaran/plankpath/layoutio"
)

// Layout kinds accepted by --kind.
const (
	kindStaircase = "staircase"
	kindRandom    = "random"
	kindComplete  = "complete"
)

type generateFlags struct {
	kind    string
	size    int
	density float64
	seed    int64
	gap     bool
	out     string
	planted string
}

func newGenerateCmd(g *globalFlags) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random maze document",
		Long: `Generate a maze from (0,0) to (n−1,n−1).

Kinds:
  staircase  a random monotone path plus random planks; --gap withholds one
             plank of the path so it needs the wildcard (default)
  random     planks chosen uniformly at --density
  complete   every plank of the grid

The same --seed always produces the same maze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, g, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.kind, "kind", kindStaircase, "staircase, random or complete")
	flags.IntVarP(&f.size, "size", "n", 10, "pillars per side")
	flags.Float64Var(&f.density, "density", 0.3, "fraction of all grid planks to lay, in [0,1]")
	flags.Int64Var(&f.seed, "seed", 1, "random seed")
	flags.BoolVar(&f.gap, "gap", false, "withhold one plank of the planted staircase")
	flags.StringVarP(&f.out, "out", "o", "", "write the maze here instead of stdout")
	flags.StringVar(&f.planted, "planted", "", "also write the planted staircase as a result document (staircase only)")

	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalFlags, f *generateFlags) error {
	logger, err := g.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var (
		layout  *grid.Layout
		planted *generate.Planted
	)
	switch f.kind {
	case kindStaircase:
		opts := []generate.Option{generate.WithSeed(f.seed)}
		if f.gap {
			opts = append(opts, generate.WithGap())
		}
		planted, err = generate.Staircase(f.size, f.density, opts...)
		if planted != nil {
			layout = planted.Layout
		}
	case kindRandom:
		layout, err = generate.Random(f.size, f.density, generate.WithSeed(f.seed))
	case kindComplete:
		layout, err = generate.Complete(f.size)
	default:
		return fmt.Errorf("--kind %q: want %s, %s or %s", f.kind, kindStaircase, kindRandom, kindComplete)
	}
	if err != nil {
		return err
	}
	if f.planted != "" && planted == nil {
		return fmt.Errorf("--planted needs --kind %s", kindStaircase)
	}

	end := grid.Coordinate{X: f.size - 1, Y: f.size - 1}
	maze := layoutio.NewMaze(f.size, layout, grid.Coordinate{}, end)
	logger.Info("generated",
		"kind", f.kind,
		"size", f.size,
		"planks", layout.Len(),
		"seed", f.seed,
	)

	if f.planted != "" {
		if err := layoutio.SaveResult(f.planted, layoutio.NewResult(maze, f.gap, planted.Path)); err != nil {
			return err
		}
	}
	if f.out == "" {
		return maze.Encode(cmd.OutOrStdout())
	}

	return layoutio.SaveMaze(f.out, maze)
}
