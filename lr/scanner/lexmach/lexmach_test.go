package lexmach

import (
	"testing"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"S -> E '+' E ;",
	"E -> 'a' E | ;",
	"# a comment line\nX ::= \"ab\" $ ;",
	`Q -> '\'' '\\' ;`,
}

var tokenTypes = [][]lr0.TokType{
	{scanner.Ident, scanner.Arrow, scanner.Ident, scanner.CharLit, scanner.Ident, scanner.Semicolon},
	{scanner.Ident, scanner.Arrow, scanner.CharLit, scanner.Ident, scanner.Bar, scanner.Semicolon},
	{scanner.Ident, scanner.Arrow, scanner.StringLit, scanner.EOFMarker, scanner.Semicolon},
	{scanner.Ident, scanner.Arrow, scanner.CharLit, scanner.CharLit, scanner.Semicolon},
}

func TestGrammarNotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.scanner")
	defer teardown()
	//
	LM, err := GrammarNotation()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		var types []lr0.TokType
		for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
			t.Logf(" %4d | %15s | @%v", token.TokType(), token.Lexeme(), token.Pos())
			types = append(types, token.TokType())
		}
		if len(types) != len(tokenTypes[i]) {
			t.Errorf("expected %d tokens for #%d, got %d", len(tokenTypes[i]), i, len(types))
			continue
		}
		for k, typ := range types {
			if typ != tokenTypes[i][k] {
				t.Errorf("expected token #%d of input #%d to be %s, is %s", k, i,
					scanner.TokenName(tokenTypes[i][k]), scanner.TokenName(typ))
			}
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestScannerReportsIllegalInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.scanner")
	defer teardown()
	//
	LM, err := GrammarNotation()
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("S -> @ 'a' ;")
	var errs []error
	sc.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if len(errs) == 0 {
		t.Errorf("expected scanner to report '@' as an error")
	}
	if count != 4 {
		t.Errorf("expected 4 tokens after skipping illegal input, got %d", count)
	}
}
