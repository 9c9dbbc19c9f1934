package lexmach

import (
	"strings"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'lr0.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('->', ';', …), a list of keywords and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string,
	tokenIds map[string]int) (*LMAdapter, error) {
	//
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// GrammarNotation creates an adapter for the BNF-style grammar notation:
//
//    # comment
//    S -> E '+' E ;
//    E -> 'a' E
//       | ;
//
func GrammarNotation() (*LMAdapter, error) {
	literals := []string{"->", "::=", "|", ";", "$"}
	tokenIds := map[string]int{
		"->":  int(scanner.Arrow),
		"::=": int(scanner.Arrow),
		"|":   int(scanner.Bar),
		";":   int(scanner.Semicolon),
		"$":   int(scanner.EOFMarker),
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`#[^\n]*\n?`), Skip)
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), MakeToken("Ident", int(scanner.Ident)))
		lexer.Add([]byte(`'([^'\\]|\\.)+'`), MakeToken("CharLit", int(scanner.CharLit)))
		lexer.Add([]byte(`"([^"\\]|\\.)*"`), MakeToken("StringLit", int(scanner.StringLit)))
	}
	return NewLMAdapter(init, literals, nil, tokenIds)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: scanner.LogError, end: lr0.Position{Line: 1, Column: 1}}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	end     lr0.Position // position after the last token
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Unconsumable input is reported to
// the error handler and skipped.
func (lms *LMScanner) NextToken() lr0.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			eof = true
			break
		}
		lms.scanner.TC = ui.FailTC
		if ui.FailTC <= ui.StartTC { // always make progress
			lms.scanner.TC = ui.StartTC + 1
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		at := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(scanner.EOF, "", lr0.Span{at, at}, lms.end)
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q", token.Type, token.Lexeme)
	lms.end = lr0.Position{Line: token.EndLine, Column: token.EndColumn + 1}
	return scanner.MakeDefaultToken(
		lr0.TokType(token.Type),
		string(token.Lexeme),
		lr0.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		lr0.Position{Line: token.StartLine, Column: token.StartColumn},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
