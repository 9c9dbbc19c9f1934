package lr

import (
	"bytes"
	"fmt"
)

// noDot marks an undotted item.
const noDot = -1

// Item is a production annotated with a dot position. An item
//
//    E -> a・E
//
// tells that a parser has consumed 'a' and expects to see something derived from E.
// A bare production (no dot yet) is represented by an undotted item.
//
// Items are values and are equal iff production and dot position are equal.
type Item struct {
	rule *Production
	dot  int
}

// Undotted creates a bare item for production p.
func Undotted(p *Production) Item {
	return Item{rule: p, dot: noDot}
}

// DottedItem creates an item for production p with the dot at position k.
// It panics if k is outside of [0…|RHS|].
func DottedItem(p *Production, k int) Item {
	if k < 0 || k > p.Len() {
		panic(fmt.Sprintf("dot position %d out of range for %v", k, p))
	}
	return Item{rule: p, dot: k}
}

// StartItem returns the item for production p with the dot at the start.
func StartItem(p *Production) Item {
	return Item{rule: p, dot: 0}
}

// Rule returns the production of an item.
func (i Item) Rule() *Production {
	return i.rule
}

// DotPosition returns the dot position and false for undotted items.
func (i Item) DotPosition() (int, bool) {
	if i.dot == noDot {
		return 0, false
	}
	return i.dot, true
}

// mustDot returns the dot position. Undotted items are a contract violation here.
func (i Item) mustDot() int {
	if i.dot == noDot {
		panic(fmt.Sprintf("item %v has no dot position", i.rule))
	}
	return i.dot
}

// IsComplete is true if the dot is behind the last RHS symbol.
func (i Item) IsComplete() bool {
	return i.mustDot() == i.rule.Len()
}

// PeekSymbol returns the symbol after the dot, or false if the item is complete.
func (i Item) PeekSymbol() (Character, bool) {
	k := i.mustDot()
	if k >= i.rule.Len() {
		return Character{}, false
	}
	return i.rule.At(k), true
}

// Advance moves the dot one position to the right. It panics for complete items.
func (i Item) Advance() Item {
	return DottedItem(i.rule, i.mustDot()+1)
}

// Prefix returns the symbols before the dot.
func (i Item) Prefix() []Character {
	return i.rule.RHS()[:i.mustDot()]
}

func (i Item) String() string {
	if i.rule == nil {
		return "<no item>"
	} else if i.dot == noDot {
		return i.rule.String()
	}
	var b bytes.Buffer
	b.WriteString(i.rule.LHS.String())
	b.WriteString(" ->")
	for _, A := range i.Prefix() {
		b.WriteString(" ")
		b.WriteString(A.String())
	}
	if i.dot < i.rule.Len() || i.rule.Len() == 0 {
		b.WriteString(" ")
	}
	b.WriteString("・")
	for k, A := range i.rule.rhs[i.dot:] {
		if k > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.String())
	}
	return b.String()
}

// === Item Universe =========================================================

// ItemUniverse is the pool of all dotted items of a grammar: every production,
// with the dot at every position from 0 to the length of its RHS.
//
// Productions with equal LHS and RHS are represented by a single canonical
// production, so items of the universe compare equal iff they are structurally
// equal.
type ItemUniverse struct {
	rules  []*Production          // canonical productions, in order
	items  []Item                 // all dotted items
	starts map[Nonterminal][]Item // dot-0 items by LHS
	index  map[*Production]int    // production -> number of its canonical production
}

// BuildItemUniverse dots every production at every position, in production order.
// Duplicate productions contribute their items only once.
func BuildItemUniverse(rules []*Production) *ItemUniverse {
	U := &ItemUniverse{
		starts: make(map[Nonterminal][]Item),
		index:  make(map[*Production]int),
	}
	for _, r := range rules {
		if n, ok := U.find(r); ok {
			tracer().Debugf("item universe: %v is a duplicate of production %d", r, n)
			U.index[r] = n
			continue
		}
		U.index[r] = len(U.rules)
		U.rules = append(U.rules, r)
		for k := 0; k <= r.Len(); k++ {
			i := DottedItem(r, k)
			U.items = append(U.items, i)
			if k == 0 {
				U.starts[r.LHS] = append(U.starts[r.LHS], i)
			}
		}
	}
	tracer().Debugf("item universe has %d items for %d productions", len(U.items), len(U.rules))
	return U
}

func (U *ItemUniverse) find(p *Production) (int, bool) {
	if n, ok := U.index[p]; ok {
		return n, true
	}
	for n, r := range U.rules {
		if r.sameAs(p) {
			return n, true
		}
	}
	return -1, false
}

// canonical replaces the production of i by its canonical production in U.
// Items for productions unknown to U are returned unchanged.
func (U *ItemUniverse) canonical(i Item) Item {
	if n, ok := U.find(i.rule); ok {
		i.rule = U.rules[n]
	}
	return i
}

// ruleNumber is the number of the canonical production for p, or -1.
func (U *ItemUniverse) ruleNumber(p *Production) int {
	n, _ := U.find(p)
	return n
}

// Items returns all items of the universe.
func (U *ItemUniverse) Items() []Item {
	return append([]Item(nil), U.items...)
}

// Size is the number of items in the universe.
func (U *ItemUniverse) Size() int {
	return len(U.items)
}

// StartItems returns the items of the universe with LHS N and dot position 0.
func (U *ItemUniverse) StartItems(N Nonterminal) []Item {
	return U.starts[N]
}
