package bnf

import (
	"strings"
	"testing"

	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
# the example grammar
S -> E '+' E ;
E -> 'a' E
   | ;
`

func TestParseExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.bnf")
	defer teardown()
	//
	g, err := Parse("G", strings.NewReader(example))
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
	assert.Equal(t, "S -> E + E", g.Rule(0).String())
	assert.Equal(t, "E -> a E", g.Rule(1).String())
	assert.Equal(t, "E -> ε", g.Rule(2).String())
	assert.Equal(t, lr.Nonterminal("S"), g.StartRule().LHS)
	assert.Equal(t, []lr.Terminal{lr.T('+'), lr.T('a')}, g.Terminals())
}

func TestParseLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.bnf")
	defer teardown()
	//
	g, err := ParseString("G", `Z ::= "ab" '\'' '\n' $ ;`)
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
	r := g.Rule(0)
	require.Equal(t, 5, r.Len())
	assert.Equal(t, lr.TermChar('a'), r.At(0))
	assert.Equal(t, lr.TermChar('b'), r.At(1))
	assert.Equal(t, lr.TermChar('\''), r.At(2))
	assert.Equal(t, lr.TermChar('\n'), r.At(3))
	assert.True(t, r.At(4).Terminal().IsEOF())
}

func TestParseEmptyString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.bnf")
	defer teardown()
	//
	g, err := ParseString("G", `S -> "" ;`)
	require.NoError(t, err)
	assert.True(t, g.Rule(0).IsEpsilon())
}

func TestParseAlternativesCollapseDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.bnf")
	defer teardown()
	//
	g, err := ParseString("G", "S -> 'a' | 'a' | S 'b' ;")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.bnf")
	defer teardown()
	//
	inputs := []string{
		"S -> 'a'",        // missing ';'
		"S 'a' ;",         // missing arrow
		"-> 'a' ;",        // missing LHS
		"S -> 'ab' ;",     // not a single character
		"S -> 'a' ;\n| ;", // dangling alternative
	}
	for _, input := range inputs {
		_, err := ParseString("G", input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseErrorPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.bnf")
	defer teardown()
	//
	_, err := ParseString("G", "S -> 'a' ;\nE 'b' ;")
	require.Error(t, err)
	serr, ok := err.(*SyntaxError)
	require.True(t, ok, "expected a syntax error, got %T", err)
	assert.Equal(t, 2, serr.Pos.Line)
	assert.Equal(t, uint64(13), serr.Span.From())
	assert.Equal(t, uint64(3), serr.Span.Len())
	assert.True(t, strings.HasPrefix(err.Error(), "2:"), err.Error())
}

func TestParseEmptySource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.bnf")
	defer teardown()
	//
	prods, err := ParseProductions("  # nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, prods)
	_, err = ParseString("G", "")
	assert.ErrorIs(t, err, lr.ErrEmptyGrammar)
}
