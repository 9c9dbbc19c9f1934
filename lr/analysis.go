package lr

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// === Static Grammar Analysis ===============================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 4.5 Grammar Analysis Algorithms.
//
// All three analyses are least fixed points: they start from empty sets and
// iterate full passes over all productions until a pass adds nothing.

// AnalysisOption configures the grammar analysis.
type AnalysisOption func(*analysisConfig)

type analysisConfig struct {
	textbookFollow bool
}

// TextbookFollow selects the textbook rule for FOLLOW computation.
//
// By default, a symbol blocking the scan to the end of a production (a terminal, or a
// non-nullable non-terminal) still lets FOLLOW(LHS) propagate to the scanned
// non-terminal if the blocking symbol is the last one of the RHS. This reproduces the
// output of the tool this package replaces. With TextbookFollow(true), FOLLOW(LHS)
// is propagated only if everything after the non-terminal is nullable.
func TextbookFollow(b bool) AnalysisOption {
	return func(c *analysisConfig) {
		c.textbookFollow = b
	}
}

// --- Nullable ---------------------------------------------------------------

// NullableSet is the set of non-terminals which derive the empty string.
type NullableSet struct {
	set *treeset.Set
}

// Contains is true if N derives the empty string.
func (ns *NullableSet) Contains(N Nonterminal) bool {
	return ns.set.Contains(N)
}

// Size returns the number of nullable non-terminals.
func (ns *NullableSet) Size() int {
	return ns.set.Size()
}

// Values returns the nullable non-terminals, ordered by name.
func (ns *NullableSet) Values() []Nonterminal {
	vals := make([]Nonterminal, 0, ns.set.Size())
	for _, x := range ns.set.Values() {
		vals = append(vals, x.(Nonterminal))
	}
	return vals
}

// ComputeNullable returns the set of non-terminals which derive the empty string.
// A non-terminal N is nullable if there is a production N -> α where every symbol
// of α is a nullable non-terminal. Terminals are never nullable.
func ComputeNullable(rules []*Production) *NullableSet {
	ns := &NullableSet{set: treeset.NewWith(NonterminalComparator)}
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for _, r := range rules {
			if ns.set.Contains(r.LHS) {
				continue
			}
			if ns.derivesEpsilon(r) {
				tracer().Debugf("nullable: %s because of %v", r.LHS, r)
				ns.set.Add(r.LHS)
				changed = true
			}
		}
	}
	tracer().Infof("nullable set converged after %d passes: %v", passes, ns.Values())
	return ns
}

func (ns *NullableSet) derivesEpsilon(r *Production) bool {
	for _, A := range r.rhs {
		if A.IsTerminal() || !ns.set.Contains(A.Nonterminal()) {
			return false
		}
	}
	return true
}

// --- Terminal sets ----------------------------------------------------------

// terminalSets maps non-terminals to ordered sets of terminals.
type terminalSets struct {
	sets map[Nonterminal]*treeset.Set
}

func newTerminalSets() terminalSets {
	return terminalSets{sets: make(map[Nonterminal]*treeset.Set)}
}

func (ts *terminalSets) add(N Nonterminal, t Terminal) bool {
	S, ok := ts.sets[N]
	if !ok {
		S = treeset.NewWith(TerminalComparator)
		ts.sets[N] = S
	}
	if S.Contains(t) {
		return false
	}
	S.Add(t)
	return true
}

func (ts *terminalSets) addAll(N Nonterminal, T []Terminal) bool {
	added := false
	for _, t := range T {
		if ts.add(N, t) {
			added = true
		}
	}
	return added
}

// Get returns the terminals for N, ordered (EOF first, then by code point).
// The result is a snapshot and may be modified by the caller.
func (ts *terminalSets) Get(N Nonterminal) []Terminal {
	S, ok := ts.sets[N]
	if !ok {
		return nil
	}
	T := make([]Terminal, 0, S.Size())
	for _, x := range S.Values() {
		T = append(T, x.(Terminal))
	}
	return T
}

// Has is true if an entry for N has been populated.
func (ts *terminalSets) Has(N Nonterminal) bool {
	_, ok := ts.sets[N]
	return ok
}

// Contains is true if t is in the set for N.
func (ts *terminalSets) Contains(N Nonterminal, t Terminal) bool {
	S, ok := ts.sets[N]
	return ok && S.Contains(t)
}

// Nonterminals returns all non-terminals with a populated entry, ordered by name.
func (ts *terminalSets) Nonterminals() []Nonterminal {
	keys := treeset.NewWith(NonterminalComparator)
	for N := range ts.sets {
		keys.Add(N)
	}
	r := make([]Nonterminal, 0, keys.Size())
	for _, x := range keys.Values() {
		r = append(r, x.(Nonterminal))
	}
	return r
}

// --- First ------------------------------------------------------------------

// FirstSets holds FIRST(N) for every non-terminal N. Non-terminals whose FIRST set
// never received a terminal have no entry.
type FirstSets struct {
	terminalSets
}

// ComputeFirst computes FIRST(N) for all non-terminals. It needs the finished set
// of nullable non-terminals.
//
// For a production N -> X1 … Xk, symbols are scanned left to right. A terminal is
// added and ends the scan. For a non-terminal Xi, FIRST(Xi) is added; the scan
// continues past Xi only if Xi is nullable. FIRST sets never contain EOF: an EOF
// in a RHS ends the scan without contributing.
func ComputeFirst(rules []*Production, nullable *NullableSet) *FirstSets {
	first := &FirstSets{newTerminalSets()}
	passes := 0
	for dirty := true; dirty; {
		dirty = false
		passes++
		for _, r := range rules {
			for _, A := range r.rhs {
				if A.IsTerminal() {
					if !A.Terminal().IsEOF() && first.add(r.LHS, A.Terminal()) {
						dirty = true
					}
					break
				}
				M := A.Nonterminal()
				if first.addAll(r.LHS, first.Get(M)) {
					dirty = true
				}
				if !nullable.Contains(M) {
					break
				}
			}
		}
	}
	tracer().Infof("first sets converged after %d passes", passes)
	return first
}

// --- Follow -----------------------------------------------------------------

// FollowSets holds FOLLOW(N) for every non-terminal N. Non-terminals whose FOLLOW
// set never received a terminal have no entry.
type FollowSets struct {
	terminalSets
}

// ComputeFollow computes FOLLOW(N) for all non-terminals. It needs the finished
// nullable set and FIRST sets.
//
// For every occurrence of a non-terminal B at position i in a production
// A -> X0 … Xn-1, the symbols after B are scanned: terminals are added and end the
// scan, non-terminals contribute their FIRST set and end the scan if they are not
// nullable. If the scan reaches the end of the RHS, FOLLOW(A) is added to FOLLOW(B).
// See TextbookFollow for the treatment of a blocking last symbol.
func ComputeFollow(rules []*Production, nullable *NullableSet, first *FirstSets,
	opts ...AnalysisOption) *FollowSets {
	//
	conf := &analysisConfig{}
	for _, opt := range opts {
		opt(conf)
	}
	follow := &FollowSets{newTerminalSets()}
	passes := 0
	for dirty := true; dirty; {
		dirty = false
		passes++
		for _, r := range rules {
			if follow.propagate(r, nullable, first, conf.textbookFollow) {
				dirty = true
			}
		}
	}
	tracer().Infof("follow sets converged after %d passes", passes)
	return follow
}

func (follow *FollowSets) propagate(r *Production, nullable *NullableSet, first *FirstSets,
	textbook bool) bool {
	//
	n := r.Len()
	dirty := false
	for i := 0; i < n; i++ {
		if r.At(i).IsTerminal() {
			continue
		}
		target := r.At(i).Nonterminal()
		reachEnd := true
		for j := i + 1; j < n; j++ {
			X := r.At(j)
			if X.IsTerminal() {
				reachEnd = !textbook && j == n-1
				if follow.add(target, X.Terminal()) {
					dirty = true
				}
				break
			}
			M := X.Nonterminal()
			if follow.addAll(target, first.Get(M)) {
				dirty = true
			}
			if !nullable.Contains(M) {
				reachEnd = !textbook && j == n-1
				break
			}
		}
		if reachEnd && follow.addAll(target, follow.Get(r.LHS)) {
			dirty = true
		}
	}
	return dirty
}

// === Analysis ==============================================================

// LRAnalysis is the result of analysing a grammar: the nullable non-terminals and
// the FIRST and FOLLOW sets.
type LRAnalysis struct {
	g        *Grammar
	nullable *NullableSet
	first    *FirstSets
	follow   *FollowSets
}

// Analysis computes Nullable, First and Follow for g, in this order.
func Analysis(g *Grammar, opts ...AnalysisOption) *LRAnalysis {
	ga := &LRAnalysis{g: g}
	ga.nullable = ComputeNullable(g.rules)
	ga.first = ComputeFirst(g.rules, ga.nullable)
	ga.follow = ComputeFollow(g.rules, ga.nullable, ga.first, opts...)
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// NullableSet returns the set of nullable non-terminals.
func (ga *LRAnalysis) NullableSet() *NullableSet {
	return ga.nullable
}

// FirstSets returns FIRST for all non-terminals.
func (ga *LRAnalysis) FirstSets() *FirstSets {
	return ga.first
}

// FollowSets returns FOLLOW for all non-terminals.
func (ga *LRAnalysis) FollowSets() *FollowSets {
	return ga.follow
}

// Nullable is true if N derives the empty string.
func (ga *LRAnalysis) Nullable(N Nonterminal) bool {
	return ga.nullable.Contains(N)
}

// First returns FIRST(N).
func (ga *LRAnalysis) First(N Nonterminal) []Terminal {
	return ga.first.Get(N)
}

// HasFirst is true if FIRST(N) has received at least one terminal.
func (ga *LRAnalysis) HasFirst(N Nonterminal) bool {
	return ga.first.Has(N)
}

// Follow returns FOLLOW(N).
func (ga *LRAnalysis) Follow(N Nonterminal) []Terminal {
	return ga.follow.Get(N)
}
