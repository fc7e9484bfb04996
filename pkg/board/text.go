package board

import (
	"strconv"
	"strings"
)

// Glyphs used by Format.
const (
	GlyphHidden = '-'
	GlyphFlag   = 'F'
	GlyphMine   = '*'
	GlyphEmpty  = '.'
)

// Format renders the board as text with a column header and row labels.
// Hidden mines are shown as '*' only when showMines is set.
func (b *Board) Format(showMines bool) string {
	var sb strings.Builder

	cols := make([]string, b.width)
	for x := range cols {
		cols[x] = strconv.Itoa(x % 10)
	}
	sb.WriteString("   ")
	sb.WriteString(strings.Join(cols, " "))
	sb.WriteByte('\n')

	row := make([]string, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			row[x] = string(b.glyph(b.cells[y*b.width+x], showMines))
		}
		if y < 10 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(y))
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Format(false)
}

func (b *Board) glyph(c Cell, showMines bool) byte {
	switch {
	case c.Flagged:
		return GlyphFlag
	case c.Mine && (c.Revealed || showMines):
		return GlyphMine
	case !c.Revealed:
		return GlyphHidden
	case c.Adjacent == 0:
		return GlyphEmpty
	default:
		return byte('0' + c.Adjacent)
	}
}
