package board

import (
	"fmt"
)

// Default board geometry.
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// Config describes the board to generate.
type Config struct {
	Width  int
	Height int
	Mines  int
}

// Validate checks the dimensions and leaves room for at least one safe cell.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Mines < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidConfig, c.Mines)
	}
	if area := c.Width * c.Height; c.Mines >= area {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d board (max %d)",
			ErrInvalidConfig, c.Mines, c.Width, c.Height, area-1)
	}
	return nil
}

// Board is a fixed-size grid of cells stored row-major.
type Board struct {
	width  int
	height int
	mines  int
	cells  []Cell
}

// New returns an empty board with no mines.
func New(width, height int) (*Board, error) {
	if err := (Config{Width: width, Height: height}).Validate(); err != nil {
		return nil, err
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// FromMines builds a board with mines at exactly the given positions and
// precomputed adjacency counts.
func FromMines(width, height int, mines []Position) (*Board, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if err := (Config{Width: width, Height: height, Mines: len(mines)}).Validate(); err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !b.InBounds(p) {
			return nil, fmt.Errorf("%w: mine at %s on %dx%d board", ErrOutOfBounds, p, width, height)
		}
		if b.cells[b.index(p)].Mine {
			return nil, fmt.Errorf("%w: duplicate mine at %s", ErrInvalidConfig, p)
		}
		b.cells[b.index(p)].Mine = true
	}
	b.countAdjacent()
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mines }

// InBounds reports whether p addresses a cell of the board.
func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// At returns a copy of the cell at p.
func (b *Board) At(p Position) (Cell, bool) {
	if !b.InBounds(p) {
		return Cell{}, false
	}
	return b.cells[b.index(p)], true
}

// Neighbors returns the in-bounds positions around p, clipped at the edges.
func (b *Board) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Position{X: p.X + off.X, Y: p.Y + off.Y}
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy, used to hand the renderer a read-only view.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		mines:  b.mines,
		cells:  cells,
	}
}

// RevealedCount returns the number of revealed cells.
func (b *Board) RevealedCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Revealed {
			n++
		}
	}
	return n
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Flagged {
			n++
		}
	}
	return n
}

// SafeRemaining returns how many non-mine cells are still hidden.
func (b *Board) SafeRemaining() int {
	n := 0
	for i := range b.cells {
		if !b.cells[i].Mine && !b.cells[i].Revealed {
			n++
		}
	}
	return n
}

// Cleared reports whether every non-mine cell has been revealed.
func (b *Board) Cleared() bool {
	return b.SafeRemaining() == 0
}

// MinePositions lists mine positions in row-major order.
func (b *Board) MinePositions() []Position {
	out := make([]Position, 0, b.mines)
	for i := range b.cells {
		if b.cells[i].Mine {
			out = append(out, b.position(i))
		}
	}
	return out
}

func (b *Board) index(p Position) int {
	return p.Y*b.width + p.X
}

func (b *Board) position(i int) Position {
	return Position{X: i % b.width, Y: i / b.width}
}

func (b *Board) cell(p Position) *Cell {
	return &b.cells[b.index(p)]
}

// countAdjacent resets the mine tally and lets every mine bump its neighbors.
func (b *Board) countAdjacent() {
	b.mines = 0
	for i := range b.cells {
		b.cells[i].Adjacent = 0
	}
	for i := range b.cells {
		if !b.cells[i].Mine {
			continue
		}
		b.mines++
		for _, n := range b.Neighbors(b.position(i)) {
			b.cell(n).Adjacent++
		}
	}
}
