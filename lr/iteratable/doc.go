/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around grammars and parser construction. These kinds of algorithms are often more
straightforward to describe as set constructions and operations.

A Set remembers the order of insertion, and iteration with IterateOnce/Next will
visit items which have been added while the iteration is under way. This is what
closure operations need: keep iterating until no more items are added.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
