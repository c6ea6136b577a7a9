package search

import "errors"

var (
	// ErrNodeLimit indicates that Search visited more pillars than WithMaxNodes allows.
	ErrNodeLimit = errors.New("search: node limit exceeded")

	// ErrTimeLimit indicates that Search ran past the WithTimeLimit budget.
	ErrTimeLimit = errors.New("search: time limit exceeded")

	// errOptimalFound stops sibling walkers once one of them reached the lower bound.
	errOptimalFound = errors.New("search: optimal path found elsewhere")
)
