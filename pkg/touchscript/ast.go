package touchscript

import "github.com/alecthomas/participle/v2/lexer"

// File is the parse tree of a gesture script.
type File struct {
	Statements []*Statement `@@*`
}

// Statement is one line of a script.
type Statement struct {
	Pos lexer.Position

	Size      *SizeStmt    `  @@`
	Padding   *PaddingStmt `| @@`
	RTL       bool         `| @"rtl"`
	Scrolling bool         `| @"scrolling"`
	Cancel    bool         `| @"cancel"`
	Touch     *TouchStmt   `| @@`
}

// SizeStmt sets the host view size.
// Example: size 400 48
type SizeStmt struct {
	Width  int `"size" @Number`
	Height int `@Number`
}

// PaddingStmt sets the host padding.
// Example: padding 16 0 16 0
type PaddingStmt struct {
	Left   int `"padding" @Number`
	Top    int `@Number`
	Right  int `@Number`
	Bottom int `@Number`
}

// TouchStmt is one pointer action.
// Example: pointer-down 1 300 24
type TouchStmt struct {
	Action  string  `@( "pointer-down" | "pointer-up" | "down" | "move" | "up" )`
	Pointer int     `@Number`
	X       float32 `@Number`
	Y       float32 `@Number`
}
