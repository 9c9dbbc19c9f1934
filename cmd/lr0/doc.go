/*
Command lr0 analyses context-free grammars and prints the LR(0) characteristic
finite state machine for them.

	lr0 analyze [grammar-file]     nullable non-terminals, FIRST and FOLLOW sets
	lr0 states  [grammar-file]     CFSM states with their items and edges
	lr0 dot     [grammar-file]     CFSM in Graphviz Dot format
	lr0 repl                       enter rules interactively

Grammar files use the BNF notation of package lr/bnf. Files ending in ".ebnf" are
read as EBNF, with the start production given by flag --start. Without a grammar
file, lr0 works on a small example grammar:

	S -> E '+' E ;
	E -> 'a' E | ;

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.cli'
func tracer() tracing.Trace {
	return tracing.Select("lr0.cli")
}
