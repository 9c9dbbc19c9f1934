package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func terminalsEqual(T []Terminal, expected ...Terminal) bool {
	if len(T) != len(expected) {
		return false
	}
	for i := range T {
		if T[i] != expected[i] {
			return false
		}
	}
	return true
}

func TestNullableExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExampleGrammar(t)
	nullable := ComputeNullable(g.Rules())
	if nullable.Size() != 1 || !nullable.Contains("E") {
		t.Errorf("expected Nullable = {E}, is %v", nullable.Values())
	}
	if nullable.Contains("S") {
		t.Errorf("S must not be nullable")
	}
}

func TestNullableChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Chain")
	b.LHS("A").N("B").N("C").End() // A -> B C
	b.LHS("C").N("B").N("B").End() // C -> B B
	b.LHS("B").Epsilon()           // B ->
	b.LHS("D").N("B").T('x').End() // D -> B x
	g, _ := b.Grammar()
	nullable := ComputeNullable(g.Rules())
	for _, N := range []Nonterminal{"A", "B", "C"} {
		if !nullable.Contains(N) {
			t.Errorf("expected %s to be nullable", N)
		}
	}
	if nullable.Contains("D") {
		t.Errorf("D has a terminal in every production and must not be nullable")
	}
	for _, r := range g.Rules() { // result must be a fixed point
		allNullable := true
		for _, A := range r.RHS() {
			if A.IsTerminal() || !nullable.Contains(A.Nonterminal()) {
				allNullable = false
			}
		}
		if allNullable && !nullable.Contains(r.LHS) {
			t.Errorf("%v has a nullable RHS, but %s is missing from %v", r, r.LHS, nullable.Values())
		}
	}
}

func TestFirstExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExampleGrammar(t)
	ga := Analysis(g)
	if F := ga.First("E"); !terminalsEqual(F, T('a')) {
		t.Errorf("expected First(E) = {a}, is %v", F)
	}
	// E is nullable, so the scan of S -> E + E reaches '+'
	if F := ga.First("S"); !terminalsEqual(F, T('+'), T('a')) {
		t.Errorf("expected First(S) = {+, a}, is %v", F)
	}
	if !ga.HasFirst("E") || !ga.HasFirst("S") {
		t.Errorf("expected First(E) and First(S) to be populated")
	}
	if ga.HasFirst("X") {
		t.Errorf("expected no First entry for unknown non-terminal X")
	}
}

func TestFollowExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExampleGrammar(t)
	ga := Analysis(g)
	if F := ga.Follow("E"); !terminalsEqual(F, T('+')) {
		t.Errorf("expected Follow(E) = {+}, is %v", F)
	}
	if ga.FollowSets().Has("S") {
		t.Errorf("expected Follow(S) to be absent, is %v", ga.Follow("S"))
	}
}

func TestFirstNeverContainsEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("EOF")
	b.LHS("Z").N("S").EOF() // Z -> S $
	b.LHS("S").EOF()        // S -> $
	b.LHS("S").T('s').End() // S -> s
	g, _ := b.Grammar()
	ga := Analysis(g)
	for _, N := range g.Nonterminals() {
		for _, t1 := range ga.First(N) {
			if t1.IsEOF() {
				t.Errorf("First(%s) contains EOF: %v", N, ga.First(N))
			}
		}
	}
	if !ga.FollowSets().Contains("S", EOF) {
		t.Errorf("expected Follow(S) to contain EOF, is %v", ga.Follow("S"))
	}
}

func TestFirstLeftRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("LeftRec")
	b.LHS("E").N("E").T('+').T('a').End() // E -> E + a
	b.LHS("E").T('a').End()               // E -> a
	g, _ := b.Grammar()
	ga := Analysis(g)
	if F := ga.First("E"); !terminalsEqual(F, T('a')) {
		t.Errorf("expected First(E) = {a}, is %v", F)
	}
	if F := ga.Follow("E"); !terminalsEqual(F, T('+')) {
		t.Errorf("expected Follow(E) = {+}, is %v", F)
	}
}

func TestNullableTailPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Tail")
	b.LHS("Z").N("N").T('q').End() // Z -> N q
	b.LHS("N").N("M").End()        // N -> M
	b.LHS("M").T('m').End()        // M -> m
	b.LHS("M").Epsilon()           // M ->
	g, _ := b.Grammar()
	ga := Analysis(g)
	for _, t1 := range ga.First("M") {
		if !ga.FirstSets().Contains("N", t1) {
			t.Errorf("expected First(N) ⊇ First(M), missing %v", t1)
		}
	}
	for _, t1 := range ga.Follow("N") {
		if !ga.FollowSets().Contains("M", t1) {
			t.Errorf("expected Follow(M) ⊇ Follow(N), missing %v", t1)
		}
	}
	if !terminalsEqual(ga.Follow("M"), T('q')) {
		t.Errorf("expected Follow(M) = {q}, is %v", ga.Follow("M"))
	}
}

// In Z -> S z, S -> A b, A -> a, the terminal b blocks the scan after A, but it is
// the last symbol of its production.
func makeBlockedTailGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("BlockedTail")
	b.LHS("Z").N("S").T('z').End()
	b.LHS("S").N("A").T('b').End()
	b.LHS("A").T('a').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFollowBlockingLastSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeBlockedTailGrammar(t)
	ga := Analysis(g)
	if F := ga.Follow("A"); !terminalsEqual(F, T('b'), T('z')) {
		t.Errorf("expected Follow(A) = {b, z}, is %v", F)
	}
}

func TestFollowTextbook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeBlockedTailGrammar(t)
	ga := Analysis(g, TextbookFollow(true))
	if F := ga.Follow("A"); !terminalsEqual(F, T('b')) {
		t.Errorf("expected Follow(A) = {b}, is %v", F)
	}
	if F := ga.Follow("S"); !terminalsEqual(F, T('z')) {
		t.Errorf("expected Follow(S) = {z}, is %v", F)
	}
}

func TestFollowNonNullableTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("NonNullableTail")
	b.LHS("Z").N("S").T('z').End() // Z -> S z
	b.LHS("S").N("A").N("B").End() // S -> A B
	b.LHS("A").T('a').End()        // A -> a
	b.LHS("B").T('b').End()        // B -> b
	g, _ := b.Grammar()
	literal := ComputeFollow(g.Rules(), ComputeNullable(g.Rules()),
		ComputeFirst(g.Rules(), ComputeNullable(g.Rules())))
	if !terminalsEqual(literal.Get("A"), T('b'), T('z')) {
		t.Errorf("expected literal Follow(A) = {b, z}, is %v", literal.Get("A"))
	}
	ga := Analysis(g, TextbookFollow(true))
	if !terminalsEqual(ga.Follow("A"), T('b')) {
		t.Errorf("expected textbook Follow(A) = {b}, is %v", ga.Follow("A"))
	}
	if !terminalsEqual(ga.Follow("B"), T('z')) {
		t.Errorf("expected Follow(B) = {z}, is %v", ga.Follow("B"))
	}
}
