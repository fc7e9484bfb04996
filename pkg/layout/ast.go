package layout

import "github.com/alecthomas/participle/v2/lexer"

// File is the parsed form of a layout file.
type File struct {
	Rows []*Row `parser:"( @@ | EOL )*"`
}

// Row is one non-empty line of cells.
type Row struct {
	Pos   lexer.Position
	Cells []string `parser:"@Cell+"`
}
