/*
Package ebnf creates grammars from EBNF sources, as understood by package
golang.org/x/exp/ebnf:

    Expr = Term { "+" Term } .
    Term = "a" | "(" Expr ")" .

EBNF constructs are lowered to plain productions. Groups, options, repetitions and
character ranges each introduce a helper non-terminal, named after the enclosing
production and a running number (Expr.1, Expr.2, …):

    [ x ]       H -> x | ε
    { x }       H -> H x | ε
    ( x | y )   H -> x | y
    "a" … "c"   H -> a | b | c

Tokens are sequences of terminals, one per character. An empty production body
denotes an epsilon production.

The rules of the start production come first, the start production being the
top-level production of the resulting grammar. All other productions follow
in alphabetical order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ebnf

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/schuko/tracing"
	xebnf "golang.org/x/exp/ebnf"
)

// tracer traces with key 'lr0.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.bnf")
}

// ErrNoStart is returned if no start production has been named.
var ErrNoStart = errors.New("no start production given")

// ErrBadRange is returned for character ranges whose bounds are not single
// characters in ascending order.
var ErrBadRange = errors.New("malformed character range")

// Load reads an EBNF grammar from r, verifies it for start production start and
// lowers it to a grammar with the given name.
func Load(name string, r io.Reader, start string) (*lr.Grammar, error) {
	if start == "" {
		return nil, ErrNoStart
	}
	eg, err := xebnf.Parse(name, r)
	if err != nil {
		return nil, err
	}
	if err = xebnf.Verify(eg, start); err != nil {
		return nil, err
	}
	return Lower(name, eg, start)
}

// Lower converts a parsed EBNF grammar to a plain grammar, with the rules for
// production start first.
func Lower(name string, eg xebnf.Grammar, start string) (*lr.Grammar, error) {
	if _, ok := eg[start]; !ok {
		return nil, fmt.Errorf("start production %q not found", start)
	}
	names := make([]string, 0, len(eg))
	for n := range eg {
		if n != start {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	names = append([]string{start}, names...)
	var prods []*lr.Production
	for _, n := range names {
		l := &lowering{prod: n}
		rhss := l.alternatives(eg[n].Expr)
		if l.err != nil {
			return nil, fmt.Errorf("production %s: %w", n, l.err)
		}
		for _, rhs := range rhss {
			prods = append(prods, lr.NewProduction(lr.Nonterminal(n), rhs...))
		}
		prods = append(prods, l.helpers...)
		tracer().Debugf("EBNF production %s lowered with %d helpers", n, l.count)
	}
	return lr.NewGrammar(name, prods...)
}

// lowering collects the helper productions for a single EBNF production.
type lowering struct {
	prod    string
	count   int
	helpers []*lr.Production
	err     error // first error encountered
}

func (l *lowering) helper() lr.Nonterminal {
	l.count++
	return lr.Nonterminal(fmt.Sprintf("%s.%d", l.prod, l.count))
}

func (l *lowering) add(H lr.Nonterminal, rhs ...lr.Character) {
	l.helpers = append(l.helpers, lr.NewProduction(H, rhs...))
}

// alternatives returns the right-hand sides for an expression.
func (l *lowering) alternatives(x xebnf.Expression) [][]lr.Character {
	if alt, ok := x.(xebnf.Alternative); ok {
		rhss := make([][]lr.Character, 0, len(alt))
		for _, e := range alt {
			rhss = append(rhss, l.sequence(e))
		}
		return rhss
	}
	return [][]lr.Character{l.sequence(x)}
}

// sequence returns the symbols an expression contributes to a right-hand side.
func (l *lowering) sequence(x xebnf.Expression) []lr.Character {
	rhs := []lr.Character{}
	switch e := x.(type) {
	case nil:
	case xebnf.Sequence:
		for _, y := range e {
			rhs = append(rhs, l.sequence(y)...)
		}
	case xebnf.Alternative:
		H := l.helper()
		for _, alt := range l.alternatives(e) {
			l.add(H, alt...)
		}
		rhs = append(rhs, lr.FromNonterminal(H))
	case *xebnf.Name:
		rhs = append(rhs, lr.NontermChar(e.String))
	case *xebnf.Token:
		for _, c := range e.String {
			rhs = append(rhs, lr.TermChar(c))
		}
	case *xebnf.Range:
		var from, to []rune
		if e.Begin != nil && e.End != nil {
			from, to = []rune(e.Begin.String), []rune(e.End.String)
		}
		if len(from) != 1 || len(to) != 1 || from[0] > to[0] {
			if l.err == nil {
				l.err = fmt.Errorf("%w %q … %q", ErrBadRange, string(from), string(to))
			}
			break
		}
		H := l.helper()
		for c := from[0]; c <= to[0]; c++ {
			l.add(H, lr.TermChar(c))
		}
		rhs = append(rhs, lr.FromNonterminal(H))
	case *xebnf.Group:
		H := l.helper()
		for _, alt := range l.alternatives(e.Body) {
			l.add(H, alt...)
		}
		rhs = append(rhs, lr.FromNonterminal(H))
	case *xebnf.Option:
		H := l.helper()
		for _, alt := range l.alternatives(e.Body) {
			l.add(H, alt...)
		}
		l.add(H)
		rhs = append(rhs, lr.FromNonterminal(H))
	case *xebnf.Repetition:
		H := l.helper()
		for _, alt := range l.alternatives(e.Body) {
			l.add(H, append([]lr.Character{lr.FromNonterminal(H)}, alt...)...)
		}
		l.add(H)
		rhs = append(rhs, lr.FromNonterminal(H))
	default:
		panic(fmt.Sprintf("unexpected EBNF expression %T", x))
	}
	return rhs
}
