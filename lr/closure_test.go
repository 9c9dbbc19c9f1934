package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClosureOfStartItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExampleGrammar(t)
	U := BuildItemUniverse(g.Rules())
	C := Closure(StartItem(g.Rule(0)), U)
	Dump(C)
	expected := []Item{
		StartItem(g.Rule(0)), // S -> ・E + E
		StartItem(g.Rule(1)), // E -> ・a E
		StartItem(g.Rule(2)), // E -> ・
	}
	if C.Size() != len(expected) {
		t.Errorf("expected closure of size %d, is %v", len(expected), C)
	}
	for _, i := range expected {
		if !C.Contains(i) {
			t.Errorf("expected closure to contain %v", i)
		}
	}
}

func TestClosureStopsAtTerminalAndEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExampleGrammar(t)
	U := BuildItemUniverse(g.Rules())
	for _, i := range []Item{
		DottedItem(g.Rule(0), 1), // S -> E ・+ E
		DottedItem(g.Rule(1), 2), // E -> a E・
		StartItem(g.Rule(2)),     // E -> ・
	} {
		C := Closure(i, U)
		if C.Size() != 1 || !C.Contains(i) {
			t.Errorf("expected closure of %v to be a singleton, is %v", i, C)
		}
	}
}

func TestItemUniverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExampleGrammar(t)
	U := BuildItemUniverse(g.Rules())
	// |S -> E + E| + 1  +  |E -> a E| + 1  +  |E ->| + 1
	if U.Size() != 4+3+1 {
		t.Errorf("expected 8 items in universe, have %d", U.Size())
	}
	if n := len(U.StartItems("E")); n != 2 {
		t.Errorf("expected 2 start items for E, have %d", n)
	}
	for _, i := range U.Items() {
		if _, ok := i.DotPosition(); !ok {
			t.Errorf("item %v of universe is undotted", i)
		}
	}
}

func TestClosureIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExampleGrammar(t)
	U := BuildItemUniverse(g.Rules())
	for _, i := range U.Items() {
		C := Closure(i, U)
		CC := ClosureSet(C, U)
		if !C.Equals(CC) {
			t.Errorf("closure of %v not idempotent: %v vs %v", i, C, CC)
		}
		if !IsClosed(C, U) {
			t.Errorf("closure of %v is not closed", i)
		}
	}
}

func TestClosureLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("LeftRec")
	b.LHS("Z").N("E").End()               // Z -> E
	b.LHS("E").N("E").T('+').N("T").End() // E -> E + T
	b.LHS("E").N("T").End()               // E -> T
	b.LHS("T").T('a').End()               // T -> a
	b.LHS("T").N("A").N("T").End()        // T -> A T
	b.LHS("A").N("A").End()               // A -> A
	b.LHS("A").Epsilon()                  // A ->
	g, _ := b.Grammar()
	U := BuildItemUniverse(g.Rules())
	C := Closure(StartItem(g.Rule(0)), U)
	if C.Size() != g.Size() {
		t.Errorf("expected closure to contain every start item once, is %v", C)
	}
}

func TestClosurePanicsForUndottedItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExampleGrammar(t)
	U := BuildItemUniverse(g.Rules())
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected closure of undotted item to panic")
		}
	}()
	Closure(Undotted(g.Rule(0)), U)
}

func TestItemUniverseCollapsesEqualProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	s := NewProduction("S", NontermChar("A"))
	p1 := NewProduction("A", TermChar('b'))
	p2 := NewProduction("A", TermChar('b'))
	U := BuildItemUniverse([]*Production{s, p1, p2})
	if U.Size() != 2+2 {
		t.Errorf("expected 4 items in universe, have %d", U.Size())
	}
	if n := len(U.StartItems("A")); n != 1 {
		t.Errorf("expected 1 start item for A, have %d", n)
	}
	C := Closure(StartItem(s), U)
	if C.Size() != 2 {
		t.Errorf("expected closure { S -> ・A, A -> ・b }, is %v", C)
	}
	// an item for the duplicate production is mapped to the same canonical item
	D := Closure(StartItem(p2), U)
	if !D.Contains(StartItem(p1)) || D.Size() != 1 {
		t.Errorf("expected closure { A -> ・b } of duplicate, is %v", D)
	}
}
