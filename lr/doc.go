/*
Package lr implements prerequisites for LR parsing: grammar analysis and the
construction of the characteristic finite state machine (CFSM).

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are single
input characters or the end-of-input marker. Grammars may contain
epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("E").T('+').N("E").End()  // S  ->  E + E
    b.LHS("E").T('a').N("E").End()         // E  ->  a E
    b.LHS("E").Epsilon()                   // E  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S -> E + E
   1: E -> a E
   2: E -> ε

The first production is the top-level production. Grammars are not augmented
with an artificial start rule; clients who want one add it themselves, e.g.
with b.LHS("S'").N("S").EOF().

Static Grammar Analysis

After the grammar is complete, it may be analysed. Analysis computes the set of
nullable non-terminals, and FIRST and FOLLOW sets. Each of these is a least fixed
point and is computed by its own function, in the order Nullable, First, Follow:

    nullable := lr.ComputeNullable(g.Rules())
    first := lr.ComputeFirst(g.Rules(), nullable)
    follow := lr.ComputeFollow(g.Rules(), nullable, first)

or, in one step:

    ga := lr.Analysis(g)
    ga.First("E")      // [a]
    ga.Follow("E")     // [+]

CFSM Construction

Independent of the set analyses, the CFSM is built from the item universe of a
grammar, i.e., from every production with a dot at every position:

    U := lr.BuildItemUniverse(g.Rules())
    cfsm := lr.BuildAutomaton(lr.StartItem(g.StartRule()), U)

States are closed item sets, identified by their content. State IDs are assigned
in order of discovery, starting with 0 for the start state. The CFSM may be
exported to Graphviz's Dot-format, or turned into a sparse transition table.
This package does not compute ACTION tables and does not detect conflicts.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.lr")
}
