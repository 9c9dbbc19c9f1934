package lr

import (
	"fmt"

	"github.com/emirpasic/gods/utils"
)

// --- Terminals -------------------------------------------------------------

// Terminal is an atomic input symbol: either a single input character or the
// distinguished end-of-input marker EOF. Terminals are values and may be compared
// with ==.
type Terminal struct {
	ch  rune
	eof bool
}

// EOF is the end-of-input marker.
var EOF = Terminal{eof: true}

// T creates a terminal for an input character.
func T(c rune) Terminal {
	return Terminal{ch: c}
}

// IsEOF is true for the end-of-input marker.
func (t Terminal) IsEOF() bool {
	return t.eof
}

// Rune returns the input character of t. It is 0 for EOF.
func (t Terminal) Rune() rune {
	return t.ch
}

func (t Terminal) String() string {
	switch {
	case t.eof:
		return "$"
	case t.ch == '$':
		return "'$'"
	}
	return string(t.ch)
}

// --- Non-terminals ---------------------------------------------------------

// Nonterminal is a named grammar variable. Two non-terminals are equal iff their
// names are equal.
type Nonterminal string

// Name returns the name of a non-terminal.
func (n Nonterminal) Name() string {
	return string(n)
}

func (n Nonterminal) String() string {
	return string(n)
}

// --- Grammar symbols -------------------------------------------------------

// Character is a grammar symbol, i.e. either a terminal or a non-terminal.
// It is used as a right-hand-side element of productions and as an edge label
// in the CFSM. Characters are comparable and may be used as map keys.
type Character struct {
	term    Terminal
	nonterm Nonterminal
	isNT    bool
}

// TermChar creates a terminal symbol for an input character.
func TermChar(c rune) Character {
	return Character{term: T(c)}
}

// EOFChar creates a terminal symbol for the end-of-input marker.
func EOFChar() Character {
	return Character{term: EOF}
}

// FromTerminal wraps a terminal into a grammar symbol.
func FromTerminal(t Terminal) Character {
	return Character{term: t}
}

// NontermChar creates a non-terminal symbol by name.
func NontermChar(name string) Character {
	return Character{nonterm: Nonterminal(name), isNT: true}
}

// FromNonterminal wraps a non-terminal into a grammar symbol.
func FromNonterminal(n Nonterminal) Character {
	return Character{nonterm: n, isNT: true}
}

// IsTerminal is true if c is a terminal symbol.
func (c Character) IsTerminal() bool {
	return !c.isNT
}

// Terminal returns the terminal of c. It panics if c is a non-terminal.
func (c Character) Terminal() Terminal {
	if c.isNT {
		panic(fmt.Sprintf("grammar symbol %s is not a terminal", c.nonterm))
	}
	return c.term
}

// Nonterminal returns the non-terminal of c. It panics if c is a terminal.
func (c Character) Nonterminal() Nonterminal {
	if !c.isNT {
		panic(fmt.Sprintf("grammar symbol %s is not a non-terminal", c.term))
	}
	return c.nonterm
}

func (c Character) String() string {
	if c.isNT {
		return c.nonterm.String()
	}
	return c.term.String()
}

// --- Comparators -----------------------------------------------------------

// We need these for ordered sets and maps. EOF sorts before every character.

// TerminalComparator orders terminals by code point, with EOF first.
func TerminalComparator(a, b interface{}) int {
	t1, t2 := a.(Terminal), b.(Terminal)
	if t1.eof || t2.eof {
		return boolComparator(!t1.eof, !t2.eof)
	}
	return utils.IntComparator(int(t1.ch), int(t2.ch))
}

// NonterminalComparator orders non-terminals by name.
func NonterminalComparator(a, b interface{}) int {
	return utils.StringComparator(string(a.(Nonterminal)), string(b.(Nonterminal)))
}

// CharacterComparator orders grammar symbols, terminals before non-terminals.
func CharacterComparator(a, b interface{}) int {
	c1, c2 := a.(Character), b.(Character)
	if c1.isNT != c2.isNT {
		return boolComparator(c1.isNT, c2.isNT)
	}
	if c1.isNT {
		return NonterminalComparator(c1.nonterm, c2.nonterm)
	}
	return TerminalComparator(c1.term, c2.term)
}

func boolComparator(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
