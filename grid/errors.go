package grid

import "errors"

var (
	// ErrOutOfRange indicates a coordinate or grid size outside its permitted range.
	ErrOutOfRange = errors.New("grid: value out of range")

	// ErrNilInput indicates that a required argument was absent.
	ErrNilInput = errors.New("grid: required input is nil")
)
