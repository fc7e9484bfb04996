package board

import "errors"

var (
	// ErrInvalidConfig reports board dimensions or a mine count that cannot
	// produce a playable board.
	ErrInvalidConfig = errors.New("board: invalid configuration")

	// ErrOutOfBounds reports a Position outside the grid.
	ErrOutOfBounds = errors.New("board: position out of bounds")
)
