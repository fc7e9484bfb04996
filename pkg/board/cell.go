package board

import "fmt"

// Cell is one square of the minefield.
type Cell struct {
	Mine     bool
	Adjacent int // mines in the 8-neighborhood, meaningful only when !Mine
	Revealed bool
	Flagged  bool
}

// Position identifies a cell by column (X) and row (Y).
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// neighborOffsets lists the 8 surrounding offsets in row-major order.
var neighborOffsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
