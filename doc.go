// Package plankpath finds shortest routes across plank mazes: an n×n grid of
// pillars where only the laid planks can be crossed, plus at most one extra
// plank when the wildcard is allowed.
//
// 🚀 What is in the box?
//
//	grid/           Coordinate, Edge (plank) and the thread-safe Layout set
//	route/          Path: the live route builder, snapshots and Verify
//	search/         Engine: branch-and-bound DFS with the Manhattan lower bound,
//	                budgets, parallel workers, slog logging, prometheus metrics
//	generate/       seeded staircase, random and complete layouts
//	layoutio/       YAML maze and result documents
//	cmd/plankpath/  the command-line front end (solve, generate)
//
// ✨ Quick start
//
//	layout := grid.NewLayout(grid.NewEdge(grid.Coordinate{}, grid.Coordinate{X: 1}))
//	engine, _ := search.NewEngine(2, layout)
//	path := engine.ShortestPath(true) // (0,0) --> (1,0) --> (1,1), extra plank [(1,0)(1,1)]
//
// Results are always owned snapshots; an unreachable end yields an empty
// path whose distance is route.Infinite.
package plankpath
