package lexer

import (
	"fmt"

	"github.com/npillmayer/tablex"
	"github.com/npillmayer/tablex/grammar"
)

// Token is a classified piece of input produced by a lexer.
//
// An example would be a token for an identifier:
//
//    Symbol = <Identifier:Terminal>  // grammar symbol of the token
//    Lexeme = "abc"                  // text as it appeared in the input
//    Pos    = 3:7                    // line and column of the first unit
//    Span   = (67…70)                // input units covered
//
// For a lexical group, Symbol is the group's container symbol and Lexeme the
// complete text captured for the group.
type Token struct {
	Symbol *grammar.Symbol
	Lexeme string
	Pos    tablex.Position
	Span   tablex.Span
}

// Kind returns the kind of the token's symbol.
func (t Token) Kind() grammar.SymbolKind {
	return t.Symbol.Kind
}

// Name returns the name of the token's symbol.
func (t Token) Name() string {
	return t.Symbol.Name
}

// String returns the token as `Name "lexeme" @line:column`.
func (t Token) String() string {
	if t.Symbol == nil {
		return fmt.Sprintf("<nil> %q @%s", t.Lexeme, t.Pos)
	}
	return fmt.Sprintf("%s %q @%s", t.Symbol.Name, t.Lexeme, t.Pos)
}
