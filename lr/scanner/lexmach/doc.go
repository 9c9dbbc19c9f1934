/*
Package lexmach provides an adapter to use the lexmachine scanner generator for
reading grammar files.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

GrammarNotation returns an adapter pre-configured for the BNF-style notation of
package bnf. Clients who need a different notation initialize lexmachine
themselves and use NewLMAdapter:

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   token
	}

	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("S -> 'a' S | ;")
	if err != nil {
		// do error handling
	}

Tokens are read until EOF.

	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
