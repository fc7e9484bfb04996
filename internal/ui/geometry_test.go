package ui

import (
	"image"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
)

func TestGridPositionAt(t *testing.T) {
	g := Grid{Origin: image.Pt(20, 20), CellSize: 50, Width: 10, Height: 10}

	tests := []struct {
		name string
		pt   image.Point
		want board.Position
		ok   bool
	}{
		{"origin", image.Pt(20, 20), board.Pos(0, 0), true},
		{"last pixel of first cell", image.Pt(69, 69), board.Pos(0, 0), true},
		{"second column", image.Pt(70, 20), board.Pos(1, 0), true},
		{"bottom right", image.Pt(519, 519), board.Pos(9, 9), true},
		{"middle", image.Pt(20+3*50+10, 20+7*50+49), board.Pos(3, 7), true},
		{"left of board", image.Pt(19, 100), board.Position{}, false},
		{"above board", image.Pt(100, 0), board.Position{}, false},
		{"right of board", image.Pt(520, 100), board.Position{}, false},
		{"below board", image.Pt(100, 520), board.Position{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.PositionAt(tt.pt)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGridPositionAtFFloorsNegative(t *testing.T) {
	g := Grid{Origin: image.Pt(0, 0), CellSize: 10, Width: 3, Height: 3}

	_, ok := g.PositionAtF(f32.Pt(-0.5, 4))
	assert.False(t, ok, "truncation would map -0.5 onto column 0")

	got, ok := g.PositionAtF(f32.Pt(19.9, 0.2))
	assert.True(t, ok)
	assert.Equal(t, board.Pos(1, 0), got)
}

func TestGridZeroCellSize(t *testing.T) {
	_, ok := Grid{Width: 10, Height: 10}.PositionAt(image.Pt(5, 5))
	assert.False(t, ok)
}

func TestGridCellRectRoundTrip(t *testing.T) {
	g := Grid{Origin: image.Pt(20, 20), CellSize: 50, Width: 10, Height: 10}

	r := g.CellRect(board.Pos(2, 3))
	assert.Equal(t, image.Rect(120, 170, 170, 220), r)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := board.Pos(x, y)
			r := g.CellRect(p)
			got, ok := g.PositionAt(r.Min)
			assert.True(t, ok)
			assert.Equal(t, p, got)
			got, ok = g.PositionAt(r.Max.Sub(image.Pt(1, 1)))
			assert.True(t, ok)
			assert.Equal(t, p, got)
		}
	}
	assert.Equal(t, image.Rect(20, 20, 520, 520), g.Bounds())
}
