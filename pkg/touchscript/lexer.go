package touchscript

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer tokenises gesture scripts. Keywords are plain identifiers
// and are matched by the grammar.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Coordinates may carry a fraction; counts and ids may not, which the
	// grammar enforces through the field types.
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},

	// Identifiers allow hyphens for pointer-down / pointer-up
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},
})
