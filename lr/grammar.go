package lr

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrEmptyGrammar is returned when a grammar without any production is requested.
var ErrEmptyGrammar = errors.New("grammar has no productions")

// === Productions ===========================================================

// Production is a rewrite rule
//
//    LHS -> RHS
//
// where LHS is a non-terminal and RHS is a (possibly empty) sequence of grammar
// symbols. A production with an empty RHS is an epsilon production.
// Productions are immutable once they are part of a grammar.
type Production struct {
	Serial int         // position of this production within its grammar
	LHS    Nonterminal // left-hand side
	rhs    []Character
}

// NewProduction creates a production which is not yet part of a grammar.
func NewProduction(lhs Nonterminal, rhs ...Character) *Production {
	p := &Production{Serial: -1, LHS: lhs}
	p.rhs = append(p.rhs, rhs...)
	return p
}

// RHS returns a copy of the right-hand side symbols.
func (p *Production) RHS() []Character {
	return append([]Character(nil), p.rhs...)
}

// Len is the number of symbols on the right-hand side.
func (p *Production) Len() int {
	return len(p.rhs)
}

// At returns the RHS symbol at position i.
func (p *Production) At(i int) Character {
	return p.rhs[i]
}

// IsEpsilon is true for productions with an empty RHS.
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 0
}

// sameAs compares left and right side of two productions, ignoring the serial.
func (p *Production) sameAs(q *Production) bool {
	if p.LHS != q.LHS || len(p.rhs) != len(q.rhs) {
		return false
	}
	for i, A := range p.rhs {
		if q.rhs[i] != A {
			return false
		}
	}
	return true
}

func (p *Production) String() string {
	var b bytes.Buffer
	b.WriteString(p.LHS.String())
	b.WriteString(" ->")
	if len(p.rhs) == 0 {
		b.WriteString(" ε")
	}
	for _, A := range p.rhs {
		b.WriteString(" ")
		b.WriteString(A.String())
	}
	return b.String()
}

// === Grammars ==============================================================

// Grammar is a flat, ordered list of productions. Production 0 is the top-level
// production: its dotted start item is the seed of the CFSM.
type Grammar struct {
	Name         string
	rules        []*Production
	terminals    []Terminal    // in order of first appearance
	nonterminals []Nonterminal // in order of first appearance
}

// NewGrammar creates a grammar from a list of productions. Productions are copied
// and numbered. Duplicate productions are dropped, as productions are identified
// by their content.
func NewGrammar(name string, prods ...*Production) (*Grammar, error) {
	if len(prods) == 0 {
		return nil, fmt.Errorf("grammar %q: %w", name, ErrEmptyGrammar)
	}
	g := &Grammar{Name: name}
	seenT := make(map[Terminal]bool)
	seenN := make(map[Nonterminal]bool)
	addN := func(N Nonterminal) {
		if !seenN[N] {
			seenN[N] = true
			g.nonterminals = append(g.nonterminals, N)
		}
	}
	for _, p := range prods {
		if p.LHS == "" {
			return nil, fmt.Errorf("grammar %q: production with empty left-hand side", name)
		}
		if g.find(p) != nil {
			tracer().Infof("grammar %q: dropping duplicate production %v", name, p)
			continue
		}
		rule := NewProduction(p.LHS, p.rhs...)
		rule.Serial = len(g.rules)
		g.rules = append(g.rules, rule)
		addN(rule.LHS)
		for _, A := range rule.rhs {
			if A.IsTerminal() {
				if !seenT[A.Terminal()] {
					seenT[A.Terminal()] = true
					g.terminals = append(g.terminals, A.Terminal())
				}
				continue
			}
			if A.Nonterminal() == "" {
				return nil, fmt.Errorf("grammar %q: unnamed non-terminal in %v", name, rule)
			}
			addN(A.Nonterminal())
		}
	}
	return g, nil
}

func (g *Grammar) find(p *Production) *Production {
	for _, r := range g.rules {
		if r.sameAs(p) {
			return r
		}
	}
	return nil
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns production no. i.
func (g *Grammar) Rule(i int) *Production {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns the productions of g, in order.
func (g *Grammar) Rules() []*Production {
	return append([]*Production(nil), g.rules...)
}

// StartRule returns the top-level production.
func (g *Grammar) StartRule() *Production {
	return g.rules[0]
}

// RulesFor returns all productions with left-hand side N.
func (g *Grammar) RulesFor(N Nonterminal) []*Production {
	var R []*Production
	for _, r := range g.rules {
		if r.LHS == N {
			R = append(R, r)
		}
	}
	return R
}

// Terminals returns all terminals of g, in order of first appearance.
func (g *Grammar) Terminals() []Terminal {
	return append([]Terminal(nil), g.terminals...)
}

// Nonterminals returns all non-terminals of g, in order of first appearance.
func (g *Grammar) Nonterminals() []Nonterminal {
	return append([]Nonterminal(nil), g.nonterminals...)
}

// Symbols returns all grammar symbols, terminals first.
func (g *Grammar) Symbols() []Character {
	syms := make([]Character, 0, len(g.terminals)+len(g.nonterminals))
	for _, t := range g.terminals {
		syms = append(syms, FromTerminal(t))
	}
	for _, N := range g.nonterminals {
		syms = append(syms, FromNonterminal(N))
	}
	return syms
}

// Dump is a debugging helper: it traces the productions of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// === Grammar Builder =======================================================

// GrammarBuilder is a builder type for grammars. Usage:
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("S").N("E").T('+').N("E").End()   // S -> E + E
//    b.LHS("E").T('a').N("E").End()          // E -> a E
//    b.LHS("E").Epsilon()                    // E ->
//    g, err := b.Grammar()
//
// The first production added is the top-level production.
type GrammarBuilder struct {
	name  string
	rules []*Production
	err   error
}

// RuleBuilder is a helper type for adding right-hand side symbols to a production.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Nonterminal
	rhs []Character
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{name: name}
}

// LHS starts a new production with left-hand side non-terminal s.
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	if s == "" && gb.err == nil {
		gb.err = fmt.Errorf("grammar %q: production %d has an empty left-hand side",
			gb.name, len(gb.rules))
	}
	return &RuleBuilder{gb: gb, lhs: Nonterminal(s)}
}

// N appends a non-terminal to the RHS.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	if s == "" && rb.gb.err == nil {
		rb.gb.err = fmt.Errorf("grammar %q: empty non-terminal name in RHS of %s",
			rb.gb.name, rb.lhs)
	}
	rb.rhs = append(rb.rhs, NontermChar(s))
	return rb
}

// T appends a terminal for input character c to the RHS.
func (rb *RuleBuilder) T(c rune) *RuleBuilder {
	rb.rhs = append(rb.rhs, TermChar(c))
	return rb
}

// Sym appends an arbitrary grammar symbol to the RHS.
func (rb *RuleBuilder) Sym(A Character) *RuleBuilder {
	rb.rhs = append(rb.rhs, A)
	return rb
}

// End completes a production.
func (rb *RuleBuilder) End() *Production {
	p := NewProduction(rb.lhs, rb.rhs...)
	rb.gb.rules = append(rb.gb.rules, p)
	return p
}

// EOF appends the end-of-input marker and completes the production.
func (rb *RuleBuilder) EOF() *Production {
	rb.rhs = append(rb.rhs, EOFChar())
	return rb.End()
}

// Epsilon completes a production with an empty RHS. Symbols appended before
// are discarded.
func (rb *RuleBuilder) Epsilon() *Production {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	return NewGrammar(gb.name, gb.rules...)
}
