package layout

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// LayoutLexer tokenizes board layout files: one row per line, '.' for a safe
// cell and '*' for a mine.
var LayoutLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Line breaks separate rows, so they are tokens rather than whitespace
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},

	{Name: "Cell", Pattern: `[.*]`},
})
