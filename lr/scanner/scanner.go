/*
Package scanner defines an interface for scanners of grammar notation, and the
token categories of this notation.

A default implementation, an adapter for lexmachine, lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.scanner")
}

// Token categories of the grammar notation
//
//    S -> E '+' E ;
//    E -> "ab" E | $ ;
//
const (
	EOF       lr0.TokType = -1 // end of grammar source
	Ident     lr0.TokType = 1  // non-terminal name
	CharLit   lr0.TokType = 2  // single-quoted character
	StringLit lr0.TokType = 3  // double-quoted string, one terminal per character
	Arrow     lr0.TokType = 4  // -> or ::=
	Bar       lr0.TokType = 5  // |
	Semicolon lr0.TokType = 6  // ;
	EOFMarker lr0.TokType = 7  // $, the end-of-input terminal
)

var tokenNames = map[lr0.TokType]string{
	EOF:       "end of input",
	Ident:     "identifier",
	CharLit:   "character literal",
	StringLit: "string literal",
	Arrow:     "'->'",
	Bar:       "'|'",
	Semicolon: "';'",
	EOFMarker: "'$'",
}

// TokenName returns a readable name for a token category.
func TokenName(t lr0.TokType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token<%d>", t)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lr0.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine scanner.
type DefaultToken struct {
	kind   lr0.TokType
	lexeme string
	Val    interface{}
	span   lr0.Span
	pos    lr0.Position
}

var _ lr0.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ lr0.TokType, lexeme string, span lr0.Span, pos lr0.Position) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		Val:    lexeme,
		span:   span,
		pos:    pos,
	}
}

func (t DefaultToken) TokType() lr0.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lr0.Span {
	return t.span
}

func (t DefaultToken) Pos() lr0.Position {
	return t.pos
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s %q @%v", TokenName(t.kind), t.lexeme, t.pos)
}
