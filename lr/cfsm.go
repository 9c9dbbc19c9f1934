package lr

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/lr0/lr/iteratable"
	"github.com/npillmayer/lr0/lr/sparse"
)

// === CFSM Construction =====================================================

// CFSMOption configures the construction of a CFSM.
type CFSMOption func(*cfsmConfig)

type cfsmConfig struct {
	groupedGoto bool
}

// GroupedGoto selects the textbook goto function: for every symbol A after a dot,
// the successor state is the closure of all items of the state advanced over A.
//
// By default every single item contributes its own successor: the closure of the
// advanced item. If two items of a state advance over the same symbol into
// different item sets, the edge for this symbol is overwritten by the later item.
func GroupedGoto(b bool) CFSMOption {
	return func(c *cfsmConfig) {
		c.groupedGoto = b
	}
}

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID    int             // serial ID of this state
	items *iteratable.Set // configuration items within this state
	edges *treemap.Map    // grammar symbol -> ID of successor state
}

// Edge is a goto transition, labeled with the grammar symbol consumed.
type Edge struct {
	From, To int
	Label    Character
}

func (e Edge) String() string {
	return fmt.Sprintf("%d --%s--> %d", e.From, e.Label, e.To)
}

// Create a state from an item set
func state(id int, iset *iteratable.Set) *CFSMState {
	s := &CFSMState{ID: id, edges: treemap.NewWith(CharacterComparator)}
	if iset == nil {
		s.items = iteratable.NewSet(0)
	} else {
		s.items = iset
	}
	return s
}

// Items returns the items of s, in the order they have been added by closure.
func (s *CFSMState) Items() []Item {
	return Items(s.items)
}

// Size returns the number of items in s.
func (s *CFSMState) Size() int {
	return s.items.Size()
}

// Contains is true if item i is part of state s. Items are compared by structure,
// i.e. by the content of their productions and by dot position.
func (s *CFSMState) Contains(i Item) bool {
	if s.items.Contains(i) {
		return true
	} else if i.rule == nil {
		return false
	}
	for _, j := range s.Items() {
		if j.dot == i.dot && j.rule.sameAs(i.rule) {
			return true
		}
	}
	return false
}

// Goto returns the ID of the state reached from s by consuming A.
func (s *CFSMState) Goto(A Character) (int, bool) {
	to, ok := s.edges.Get(A)
	if !ok {
		return -1, false
	}
	return to.(int), true
}

// Edges returns the outgoing transitions of s, ordered by label.
func (s *CFSMState) Edges() []Edge {
	edges := make([]Edge, 0, s.edges.Size())
	it := s.edges.Iterator()
	for it.Next() {
		edges = append(edges, Edge{From: s.ID, To: it.Value().(int), Label: it.Key().(Character)})
	}
	return edges
}

// HasCompleteItem is true if s contains an item with the dot at the end.
func (s *CFSMState) HasCompleteItem() bool {
	for _, i := range s.Items() {
		if i.IsComplete() {
			return true
		}
	}
	return false
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	for _, e := range s.Edges() {
		tracer().Debugf("    %v", e)
	}
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

// CFSM is the characteristic finite state machine for a grammar, i.e. the LR(0)
// collection of item sets with goto transitions. States are identified by their
// item sets: no two states of a CFSM have equal item sets. State IDs are dense,
// starting at 0 for the start state, in order of discovery.
type CFSM struct {
	states *arraylist.List  // all the states, index = ID
	index  map[string][]int // canonical item set key -> state IDs
	U      *ItemUniverse    // items the states are built from
	S0     *CFSMState       // start state
}

// create an empty (initial) CFSM automaton.
func emptyCFSM(U *ItemUniverse) *CFSM {
	return &CFSM{
		states: arraylist.New(),
		index:  make(map[string][]int),
		U:      U,
	}
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	x, ok := c.states.Get(id)
	if !ok {
		return nil
	}
	return x.(*CFSMState)
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	states := make([]*CFSMState, 0, c.states.Size())
	it := c.states.Iterator()
	for it.Next() {
		states = append(states, it.Value().(*CFSMState))
	}
	return states
}

// Edges returns all transitions of the CFSM, ordered by source state and label.
func (c *CFSM) Edges() []Edge {
	var edges []Edge
	for _, s := range c.States() {
		edges = append(edges, s.Edges()...)
	}
	return edges
}

// Dump is a debugging helper
func (c *CFSM) Dump() {
	for _, s := range c.States() {
		s.Dump()
	}
}

// BuildCFSM constructs the CFSM for a grammar, starting from the closure of the
// top-level production with the dot at position 0.
func BuildCFSM(g *Grammar, opts ...CFSMOption) *CFSM {
	return BuildAutomaton(StartItem(g.StartRule()), BuildItemUniverse(g.rules), opts...)
}

// BuildAutomaton constructs the CFSM from a start item and the item universe of a
// grammar.
//
// State 0 is the closure of the start item. States are processed in order of
// discovery, while new states are appended to the list being processed. For every
// item of a state with a symbol A after the dot, the closure of the advanced item is
// a candidate item set. If a state with an equal item set exists, an edge labeled A
// leads there, otherwise the candidate becomes a new state.
func BuildAutomaton(start Item, U *ItemUniverse, opts ...CFSMOption) *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	conf := &cfsmConfig{}
	for _, opt := range opts {
		opt(conf)
	}
	cfsm := emptyCFSM(U)
	tracer().Debugf("Start item=%v", start)
	closure0 := Closure(start, U)
	cfsm.S0 = cfsm.addState(closure0)
	cfsm.S0.Dump()
	for done := 0; done < cfsm.Size(); done++ {
		s := cfsm.State(done)
		if conf.groupedGoto {
			cfsm.expandBySymbol(s, U)
		} else {
			cfsm.expandByItem(s, U)
		}
		tracer().Debugf("-----------------------------------------------------------------")
	}
	tracer().Infof("CFSM has %d states", cfsm.Size())
	return cfsm
}

// expandByItem lets every non-complete item of s contribute a successor.
func (c *CFSM) expandByItem(s *CFSMState, U *ItemUniverse) {
	for _, item := range s.Items() {
		A, ok := item.PeekSymbol()
		if !ok {
			continue
		}
		candidate := Closure(item.Advance(), U)
		c.addEdge(s, A, c.findOrAddState(candidate))
	}
}

// expandBySymbol computes goto(s, A) for every symbol A after a dot in s.
func (c *CFSM) expandBySymbol(s *CFSMState, U *ItemUniverse) {
	seen := make(map[Character]bool)
	for _, item := range s.Items() {
		A, ok := item.PeekSymbol()
		if !ok || seen[A] {
			continue
		}
		seen[A] = true
		tracer().Debugf("checking goto-set for symbol = %v", A)
		gotoset := gotoSetClosure(s.items, A, U)
		c.addEdge(s, A, c.findOrAddState(gotoset))
	}
}

func (c *CFSM) findOrAddState(iset *iteratable.Set) *CFSMState {
	if snew := c.findStateByItems(iset); snew != nil {
		return snew
	}
	snew := c.addState(iset)
	snew.Dump()
	return snew
}

// Add a state to the CFSM, with the next free ID. Does not check if the state
// is already present.
func (c *CFSM) addState(iset *iteratable.Set) *CFSMState {
	s := state(c.states.Size(), iset)
	c.states.Add(s)
	if key, err := canonicalKey(iset, c.U); err == nil {
		c.index[key] = append(c.index[key], s.ID)
	} else {
		tracer().Errorf("cannot index state %d: %v", s.ID, err)
	}
	return s
}

// Find a CFSM state by the contained item set. Hash buckets are confirmed by
// exact set comparison. If the item set cannot be hashed, we fall back to a
// linear scan in order of discovery.
func (c *CFSM) findStateByItems(iset *iteratable.Set) *CFSMState {
	key, err := canonicalKey(iset, c.U)
	if err == nil {
		for _, id := range c.index[key] {
			if s := c.State(id); s.items.Equals(iset) {
				return s
			}
		}
		return nil
	}
	tracer().Errorf("cannot hash item set, scanning states: %v", err)
	it := c.states.Iterator()
	for it.Next() {
		s := it.Value().(*CFSMState)
		if s.items.Equals(iset) {
			return s
		}
	}
	return nil
}

func (c *CFSM) addEdge(from *CFSMState, A Character, to *CFSMState) {
	if old, ok := from.Goto(A); ok && old != to.ID {
		tracer().Infof("state %d: edge on %s re-targeted from %d to %d", from.ID, A, old, to.ID)
	}
	tracer().Debugf("edge %d --%s--> %d", from.ID, A, to.ID)
	from.edges.Put(A, to.ID)
}

// --- Canonical keys ---------------------------------------------------------

// itemKey and stateKey have exported fields for structhash.
type itemKey struct {
	Rule int
	Dot  int
}

type stateKey struct {
	Items []itemKey
}

// canonicalKey hashes the sorted (production number, dot) list of an item set.
// Production numbers are taken from the item universe. Equal item sets have
// equal keys.
func canonicalKey(S *iteratable.Set, U *ItemUniverse) (string, error) {
	keys := make([]itemKey, 0, S.Size())
	for _, i := range Items(S) {
		keys = append(keys, itemKey{Rule: U.ruleNumber(i.rule), Dot: i.dot})
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].Rule != keys[b].Rule {
			return keys[a].Rule < keys[b].Rule
		}
		return keys[a].Dot < keys[b].Dot
	})
	return structhash.Hash(stateKey{Items: keys}, 1)
}

// === Transition Table ======================================================

// TransitionTable is the goto function of a CFSM as a sparse matrix. Rows are
// state IDs, columns are grammar symbols which label at least one edge.
type TransitionTable struct {
	matrix  *sparse.IntMatrix
	symbols []Character
	column  map[Character]int
}

// TransitionTable builds the transition table of c.
func (c *CFSM) TransitionTable() *TransitionTable {
	labels := treeset.NewWith(CharacterComparator)
	for _, e := range c.Edges() {
		labels.Add(e.Label)
	}
	T := &TransitionTable{column: make(map[Character]int, labels.Size())}
	for j, x := range labels.Values() {
		A := x.(Character)
		T.symbols = append(T.symbols, A)
		T.column[A] = j
	}
	tracer().Infof("transition table of size %d x %d", c.Size(), len(T.symbols))
	T.matrix = sparse.NewIntMatrix(c.Size(), len(T.symbols), sparse.DefaultNullValue)
	for _, e := range c.Edges() {
		T.matrix.Set(e.From, T.column[e.Label], int32(e.To))
	}
	return T
}

// Symbols returns the column labels of the table, ordered.
func (T *TransitionTable) Symbols() []Character {
	return append([]Character(nil), T.symbols...)
}

// Goto returns the successor state for (state, A).
func (T *TransitionTable) Goto(state int, A Character) (int, bool) {
	j, ok := T.column[A]
	if !ok || state < 0 || state >= T.matrix.M() {
		return -1, false
	}
	v := T.matrix.Value(state, j)
	if v == T.matrix.NullValue() {
		return -1, false
	}
	return int(v), true
}

// ValueCount returns the number of transitions in the table.
func (T *TransitionTable) ValueCount() int {
	return T.matrix.ValueCount()
}

// === GraphViz ==============================================================

// WriteDot exports a CFSM to the Graphviz Dot format.
func (c *CFSM) WriteDot(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		fmt.Fprintf(&b, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.Items()))
	}
	for _, e := range c.Edges() {
		fmt.Fprintf(&b, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, dotEscape(e.Label.String()))
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.HasCompleteItem() {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(items []Item) string {
	lines := make([]string, len(items))
	for k, i := range items {
		lines[k] = dotEscape(i.String())
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}
