package lr0

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners for grammar notation define
// their own constants.
type TokType int

// Tokens represent input tokens. They are produced by a scanner for grammar files
// and reflect the lexical elements of the grammar notation.
//
// An example would be a token for a character terminal:
//
//    TokType = CharLit     // identifier for this kind of tokens
//    Lexeme  = "'+'"       // lexeme how it appeared in the grammar file
//    Value   = '+'         // the rune value
//    Span    = 12…15       // occurred from position 12 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Pos() Position
}

// --- Positions and spans ---------------------------------------------------

// Position is a line/column pair within a grammar source, 1-based.
type Position struct {
	Line, Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a small type for capturing a length of input run. A span denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
