package lexmach

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tablex/grammar/sample"
	"github.com/npillmayer/tablex/lexer"
	"github.com/npillmayer/tablex/scanner"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello World",
	"x = y * (z - 1);",
	"1,22,333",
	"a\n\tb  c\r\nd.e",
}

// sampleAdapter creates an adapter for the flat terminals of the sample language.
func sampleAdapter(t *testing.T) *LMAdapter {
	var patterns []Pattern
	for _, rule := range sample.FlatRules {
		patterns = append(patterns, Pattern{Symbol: rule.Symbol, Regex: rule.Regex})
	}
	LM, err := NewLMAdapter(sample.Table(), patterns)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func tokens(tok scanner.Tokenizer) []lexer.Token {
	var r []lexer.Token
	for {
		token := tok.NextToken()
		r = append(r, token)
		if token.Symbol.IsEnd() {
			return r
		}
	}
}

func TestLMMatchesTableLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.scanner")
	defer teardown()
	//
	LM := sampleAdapter(t)
	for _, input := range inputStrings {
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		lmTokens := tokens(sc)
		lx := lexer.New(sample.Table())
		lx.LoadString(input)
		tableTokens, err := lx.ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		for _, token := range lmTokens {
			t.Logf(" %15s | %15q | @%s", token.Name(), token.Lexeme, token.Pos)
		}
		if diff := cmp.Diff(tableTokens, lmTokens); diff != "" {
			t.Errorf("input %q: backends differ (-table +lexmachine):\n%s", input, diff)
		}
	}
}

func TestLMSkipAndErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(sample.Table(), []Pattern{
		{Symbol: sample.Identifier, Regex: `[a-z]+`},
		{Regex: `( |\n)+`},
	})
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("ab @ cd\nef")
	if err != nil {
		t.Fatal(err)
	}
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	var got []string
	for {
		token := sc.NextToken()
		got = append(got, token.Name()+"@"+token.Pos.String())
		if token.Symbol == sample.Table().EOF() {
			break
		}
	}
	want := []string{"Identifier@1:1", "Error@1:4", "Identifier@1:6", "Identifier@2:1", "EOF@2:3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	var lexErr *scanner.LexicalError
	if len(errs) != 1 || !errors.As(errs[0], &lexErr) {
		t.Errorf("expected a single lexical error, have %v", errs)
	}
	if _, err = NewLMAdapter(sample.Table(), []Pattern{{Symbol: "NoSuchSymbol", Regex: "x"}}); err == nil {
		t.Errorf("expected error for unknown symbol")
	}
}
