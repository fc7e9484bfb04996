package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenTraceSweeper/pkg/board"
)

var (
	// ErrEmptyLayout is returned for input without any rows.
	ErrEmptyLayout = errors.New("layout: no rows")

	// ErrRaggedLayout is returned when rows differ in width.
	ErrRaggedLayout = errors.New("layout: rows have different widths")
)

// Layout is a hand-authored minefield.
type Layout struct {
	Width  int
	Height int
	Mines  []board.Position
}

// Board builds a board with the layout's mines.
func (l *Layout) Board() (*board.Board, error) {
	return board.FromMines(l.Width, l.Height, l.Mines)
}

// Parser reads layout files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new layout parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(LayoutLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("layout: failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a layout from a reader
func (p *Parser) Parse(r io.Reader) (*Layout, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("layout: parse error: %w", err)
	}
	return fromFile(file)
}

// ParseString parses a layout from a string
func (p *Parser) ParseString(input string) (*Layout, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("layout: parse error: %w", err)
	}
	return fromFile(file)
}

// ParseFile parses a layout from a file path
func (p *Parser) ParseFile(filename string) (*Layout, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("layout: failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

func fromFile(file *File) (*Layout, error) {
	if len(file.Rows) == 0 {
		return nil, ErrEmptyLayout
	}

	l := &Layout{
		Width:  len(file.Rows[0].Cells),
		Height: len(file.Rows),
	}
	for y, row := range file.Rows {
		if len(row.Cells) != l.Width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d",
				ErrRaggedLayout, row.Pos.Line, len(row.Cells), l.Width)
		}
		for x, cell := range row.Cells {
			if cell == "*" {
				l.Mines = append(l.Mines, board.Pos(x, y))
			}
		}
	}
	return l, nil
}
