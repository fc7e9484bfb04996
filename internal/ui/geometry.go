package ui

import (
	"image"
	"math"

	"gioui.org/f32"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
)

// Grid maps between screen pixels and board positions for a board drawn
// with square cells of CellSize pixels starting at Origin.
type Grid struct {
	Origin   image.Point
	CellSize int
	Width    int
	Height   int
}

// PositionAt returns the cell under pt. Points left of or above the origin,
// or past the last row or column, report false.
func (g Grid) PositionAt(pt image.Point) (board.Position, bool) {
	if g.CellSize <= 0 {
		return board.Position{}, false
	}
	rel := pt.Sub(g.Origin)
	if rel.X < 0 || rel.Y < 0 {
		return board.Position{}, false
	}
	x, y := rel.X/g.CellSize, rel.Y/g.CellSize
	if x >= g.Width || y >= g.Height {
		return board.Position{}, false
	}
	return board.Pos(x, y), true
}

// PositionAtF is PositionAt for pointer coordinates.
func (g Grid) PositionAtF(pt f32.Point) (board.Position, bool) {
	return g.PositionAt(image.Pt(
		int(math.Floor(float64(pt.X))),
		int(math.Floor(float64(pt.Y))),
	))
}

// CellRect returns the screen rectangle covered by the cell at p.
func (g Grid) CellRect(p board.Position) image.Rectangle {
	min := g.Origin.Add(image.Pt(p.X*g.CellSize, p.Y*g.CellSize))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(g.CellSize, g.CellSize))}
}

// Bounds returns the rectangle covered by the whole board.
func (g Grid) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: g.Origin,
		Max: g.Origin.Add(image.Pt(g.Width*g.CellSize, g.Height*g.CellSize)),
	}
}
