/*
Package lr0 is a toolbox for the static analysis underlying bottom-up parser
construction.

It computes the Nullable, First and Follow sets of a context-free grammar and
builds the characteristic finite state machine (the LR(0) collection of item
sets, connected by goto transitions). It does not build ACTION tables and does
not parse input; these are left to downstream table generators. Package
structure is as follows:

■ lr: Package lr implements symbols, grammars, items, the set analyses, closure
and the state graph builder.

■ lr/bnf and lr/ebnf: Loaders for grammar files in BNF and EBNF notation.

■ cmd/lr0: A command line driver to inspect grammars and their automata.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr0
