/*
Package bnf reads grammars written in a BNF-style notation:

    # comment
    S -> E '+' E ;
    E -> 'a' E
       | ;

Non-terminals are identifiers. Terminals are single-quoted characters, which may
use Go escape sequences ('\n', '\'', 'ä'). A double-quoted string stands for a
sequence of terminals, one per character. '$' is the end-of-input terminal.
Alternatives are separated by '|', and an empty alternative is an epsilon
production. '::=' may be used instead of '->'. Every rule is terminated by ';'.

The first rule is the top-level production of the grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnf

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/lr0/lr/scanner"
	"github.com/npillmayer/lr0/lr/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.bnf")
}

// SyntaxError is an error in a grammar source, located by line and column.
// Span is the byte range of the offending token.
type SyntaxError struct {
	Pos  lr0.Position
	Span lr0.Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", e.Pos, e.Msg)
}

// Parse reads a grammar from r and creates a grammar with the given name.
func Parse(name string, r io.Reader) (*lr.Grammar, error) {
	src, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(name, string(src))
}

// ParseString creates a grammar from a grammar source string.
func ParseString(name string, src string) (*lr.Grammar, error) {
	prods, err := ParseProductions(src)
	if err != nil {
		return nil, err
	}
	return lr.NewGrammar(name, prods...)
}

// ParseProductions reads a sequence of rules and returns their productions, in
// the order of appearance. An empty source yields no productions and no error.
func ParseProductions(src string) ([]*lr.Production, error) {
	lm, err := lexmach.GrammarNotation()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(src)
	if err != nil {
		return nil, err
	}
	p := &parser{scan: scan}
	scan.SetErrorHandler(p.scanError)
	p.next()
	prods := p.rules()
	if p.err != nil {
		return nil, p.err
	}
	tracer().Debugf("read %d productions", len(prods))
	return prods, nil
}

// --- Recursive descent -----------------------------------------------------

type parser struct {
	scan scanner.Tokenizer
	tok  lr0.Token
	err  error
}

func (p *parser) scanError(e error) {
	if p.err == nil {
		p.err = fmt.Errorf("illegal input in grammar: %w", e)
	}
}

func (p *parser) next() {
	p.tok = p.scan.NextToken()
}

func (p *parser) errorf(format string, args ...interface{}) {
	if p.err == nil {
		p.err = &SyntaxError{
			Pos:  p.tok.Pos(),
			Span: p.tok.Span(),
			Msg:  fmt.Sprintf(format, args...),
		}
	}
}

func (p *parser) expect(typ lr0.TokType) bool {
	if p.tok.TokType() != typ {
		p.errorf("expected %s, found %s", scanner.TokenName(typ), scanner.TokenName(p.tok.TokType()))
		return false
	}
	p.next()
	return true
}

// rules = { rule } EOF
func (p *parser) rules() []*lr.Production {
	var prods []*lr.Production
	for p.err == nil && p.tok.TokType() != scanner.EOF {
		prods = append(prods, p.rule()...)
	}
	return prods
}

// rule = Ident Arrow alternative { '|' alternative } ';'
func (p *parser) rule() []*lr.Production {
	if p.tok.TokType() != scanner.Ident {
		p.errorf("expected non-terminal at start of rule, found %s", scanner.TokenName(p.tok.TokType()))
		return nil
	}
	lhs := lr.Nonterminal(p.tok.Lexeme())
	p.next()
	if !p.expect(scanner.Arrow) {
		return nil
	}
	var prods []*lr.Production
	for {
		rhs, ok := p.alternative()
		if !ok {
			return nil
		}
		prods = append(prods, lr.NewProduction(lhs, rhs...))
		if p.tok.TokType() != scanner.Bar {
			break
		}
		p.next()
	}
	if !p.expect(scanner.Semicolon) {
		return nil
	}
	return prods
}

// alternative = { Ident | CharLit | StringLit | '$' }
func (p *parser) alternative() ([]lr.Character, bool) {
	rhs := []lr.Character{}
	for {
		switch p.tok.TokType() {
		case scanner.Ident:
			rhs = append(rhs, lr.NontermChar(p.tok.Lexeme()))
		case scanner.EOFMarker:
			rhs = append(rhs, lr.EOFChar())
		case scanner.CharLit:
			c, err := strconv.Unquote(p.tok.Lexeme())
			if err != nil || len([]rune(c)) != 1 {
				p.errorf("malformed character literal %s", p.tok.Lexeme())
				return nil, false
			}
			rhs = append(rhs, lr.TermChar([]rune(c)[0]))
		case scanner.StringLit:
			s, err := strconv.Unquote(p.tok.Lexeme())
			if err != nil {
				p.errorf("malformed string literal %s", p.tok.Lexeme())
				return nil, false
			}
			for _, c := range s {
				rhs = append(rhs, lr.TermChar(c))
			}
		default:
			return rhs, p.err == nil
		}
		p.next()
	}
}
