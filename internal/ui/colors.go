package ui

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/OpenTraceLab/OpenTraceSweeper/internal/config"
	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
)

// ColorTheme selects the board palette.
type ColorTheme int

const (
	ThemeClassic ColorTheme = iota
	ThemeNord
)

// ThemeNames maps theme enum to its config name.
var ThemeNames = map[ColorTheme]string{
	ThemeClassic: config.ThemeClassic,
	ThemeNord:    config.ThemeNord,
}

// ParseColorTheme maps a config theme name to a ColorTheme.
func ParseColorTheme(name string) (ColorTheme, error) {
	name, err := config.ParseTheme(name)
	if err != nil {
		return ThemeClassic, err
	}
	for theme, n := range ThemeNames {
		if n == name {
			return theme, nil
		}
	}
	return ThemeClassic, fmt.Errorf("%w: %q", config.ErrUnknownTheme, name)
}

func (t ColorTheme) String() string {
	if name, ok := ThemeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ColorTheme(%d)", int(t))
}

// Next cycles to the following theme.
func (t ColorTheme) Next() ColorTheme {
	return (t + 1) % ColorTheme(len(ThemeNames))
}

// Palette holds every color the board view paints.
type Palette struct {
	Background color.NRGBA
	GridLine   color.NRGBA
	Hidden     color.NRGBA
	Revealed   color.NRGBA
	Flag       color.NRGBA
	FlagIcon   color.NRGBA
	Mine       color.NRGBA
	Exploded   color.NRGBA
	// Numerals is indexed by adjacency count; index 0 is unused.
	Numerals [9]color.NRGBA
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func hex(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

var classicPalette = Palette{
	Background: nrgba(colornames.Purple),
	GridLine:   nrgba(colornames.Black),
	Hidden:     nrgba(colornames.Gray),
	Revealed:   nrgba(colornames.White),
	Flag:       nrgba(colornames.Yellow),
	FlagIcon:   nrgba(colornames.Darkred),
	Mine:       nrgba(colornames.Red),
	Exploded:   nrgba(colornames.Darkred),
	Numerals: [9]color.NRGBA{
		1: nrgba(colornames.Blue),
		2: nrgba(colornames.Green),
		3: nrgba(colornames.Red),
		4: nrgba(colornames.Navy),
		5: nrgba(colornames.Maroon),
		6: nrgba(colornames.Teal),
		7: nrgba(colornames.Black),
		8: nrgba(colornames.Gray),
	},
}

var nordPalette = Palette{
	Background: hex(0x2e3440),
	GridLine:   hex(0x3b4252),
	Hidden:     hex(0x4c566a),
	Revealed:   hex(0xeceff4),
	Flag:       hex(0xebcb8b),
	FlagIcon:   hex(0x2e3440),
	Mine:       hex(0xbf616a),
	Exploded:   hex(0xd08770),
	Numerals: [9]color.NRGBA{
		1: hex(0x5e81ac),
		2: hex(0xa3be8c),
		3: hex(0xbf616a),
		4: hex(0x81a1c1),
		5: hex(0xb48ead),
		6: hex(0x88c0d0),
		7: hex(0x2e3440),
		8: hex(0x4c566a),
	},
}

// GetPalette returns the palette for a theme, falling back to classic.
func GetPalette(t ColorTheme) Palette {
	switch t {
	case ThemeNord:
		return nordPalette
	default:
		return classicPalette
	}
}

// CellFill picks the fill for a cell: flagged, then mines (when shown),
// then hidden, then revealed.
func (p Palette) CellFill(c board.Cell, showMines, exploded bool) color.NRGBA {
	switch {
	case exploded:
		return p.Exploded
	case c.Flagged:
		return p.Flag
	case c.Mine && showMines && !c.Revealed:
		return p.Mine
	case !c.Revealed:
		return p.Hidden
	default:
		return p.Revealed
	}
}

// NumeralColor returns the text color for an adjacency count.
func (p Palette) NumeralColor(n int) color.NRGBA {
	if n < 1 || n > 8 {
		return p.GridLine
	}
	return p.Numerals[n]
}
