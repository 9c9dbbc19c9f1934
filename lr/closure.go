package lr

import (
	"bytes"

	"github.com/npillmayer/lr0/lr/iteratable"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure computes the closure of an item: the item itself plus every item reachable
// by repeatedly expanding the non-terminal after the dot into the dot-0 items of
// its productions. Items have to be dotted.
func Closure(i Item, U *ItemUniverse) *iteratable.Set {
	S := iteratable.NewSet(8)
	S.Add(i)
	return ClosureSet(S, U)
}

// ClosureSet computes the closure of an item set. S is not modified. Items of the
// result refer to the canonical productions of U.
//
// Every non-terminal is expanded at most once per call. This cuts recursion through
// left-recursive productions (E -> E a) and through chains of nullable
// non-terminals, so closure terminates for every grammar.
// https://stackoverflow.com/questions/12968048/what-is-the-closure-of-a-left-recursive-lr0-item-with-epsilon-transitions
func ClosureSet(S *iteratable.Set, U *ItemUniverse) *iteratable.Set {
	C := iteratable.NewSet(S.Size() + 8)
	for _, x := range S.Values() { // add start items to closure
		C.Add(U.canonical(asItem(x)))
	}
	expanded := make(map[Nonterminal]bool)
	C.IterateOnce()
	for C.Next() {
		item := asItem(C.Item())
		A, ok := item.PeekSymbol() // get symbol A after dot
		if !ok || A.IsTerminal() {
			continue
		}
		N := A.Nonterminal()
		if expanded[N] {
			tracer().Debugf("closure: %s already expanded, cut at %v", N, item)
			continue
		}
		expanded[N] = true
		for _, start := range U.StartItems(N) {
			C.Add(start)
		}
	}
	return C
}

// gotoSet computes the kernel of goto(C, A): every item N -> … ・A … of C,
// advanced over A.
func gotoSet(C *iteratable.Set, A Character) *iteratable.Set {
	gotoset := iteratable.NewSet(4)
	for _, x := range C.Values() {
		i := asItem(x)
		if B, ok := i.PeekSymbol(); ok && B == A {
			ii := i.Advance()
			tracer().Debugf("goto(%s) -%s-> %s", i, A, ii)
			gotoset.Add(ii)
		}
	}
	return gotoset
}

// gotoSetClosure computes closure(goto(C, A)).
func gotoSetClosure(C *iteratable.Set, A Character, U *ItemUniverse) *iteratable.Set {
	gclosure := ClosureSet(gotoSet(C, A), U)
	tracer().Debugf("goto(%s) --%s--> %s", itemSetString(C), A, itemSetString(gclosure))
	return gclosure
}

// IsClosed is true if closing S would not add any item.
func IsClosed(S *iteratable.Set, U *ItemUniverse) bool {
	return ClosureSet(S, U).Size() == S.Size()
}

// --- Helpers ----------------------------------------------------------------

func asItem(x interface{}) Item {
	return x.(Item)
}

// Items returns the items of an item set, in insertion order.
func Items(S *iteratable.Set) []Item {
	items := make([]Item, 0, S.Size())
	for _, x := range S.Values() {
		items = append(items, asItem(x))
	}
	return items
}

// Dump is a debugging helper which traces the items of an item set.
func Dump(S *iteratable.Set) {
	for n, item := range Items(S) {
		tracer().Debugf("[%2d] %s", n+1, item)
	}
}

func itemSetString(S *iteratable.Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	for n, item := range Items(S) {
		if n == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
