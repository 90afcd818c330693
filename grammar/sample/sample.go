// Package sample provides the table of a small sample language. It is used
// for tests, for documentation and by the tlex command.
//
// The language consists of
//
//	Identifier      [A-Za-z_][A-Za-z0-9_]*
//	Number          [0-9]+
//	Operator        + - * / = ( ) ; , .
//	Escape          \ followed by any character
//	Whitespace      [ \t\r]+        (noise)
//	NewLine         \n              (noise)
//
// and of three lexical groups:
//
//	String          "…"             container StringLiteral, inclusive, token-wise
//	LineComment     // … NewLine    container Comment, exclusive, character-wise
//	BlockComment    /* … */         container Comment, inclusive, character-wise, nesting
//
// Unmatched input results in error tokens.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
package sample

import (
	"fmt"
	"sync"

	"github.com/npillmayer/tablex/grammar"
)

// Names of the symbols of the sample language.
const (
	Identifier        = "Identifier"
	Number            = "Number"
	Operator          = "Operator"
	Escape            = "Escape"
	Whitespace        = "Whitespace"
	NewLine           = "NewLine"
	Quote             = "Quote"
	StringLiteral     = "StringLiteral"
	LineCommentStart  = "LineCommentStart"
	BlockCommentStart = "BlockCommentStart"
	BlockCommentEnd   = "BlockCommentEnd"
	Comment           = "Comment"
)

// Rule pairs a symbol name with a regular expression (lexmachine syntax)
// recognizing it.
type Rule struct {
	Symbol string
	Regex  string
}

// FlatRules are regular expressions for the terminals of the sample language
// which do not participate in lexical groups.
var FlatRules = []Rule{
	{Identifier, `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Number, `[0-9]+`},
	{Whitespace, `( |\t|\r)+`},
	{NewLine, `\n`},
	{Operator, `\+|-|\*|/|=|\(|\)|;|,|\.`},
}

var table *grammar.Table
var tableOnce sync.Once // monitors one-time creation of the table

// Table returns the table of the sample language. The table is created once and
// shared by all callers.
func Table() *grammar.Table {
	tableOnce.Do(func() {
		var err error
		if table, err = build(); err != nil {
			panic(fmt.Errorf("cannot create sample table: %w", err))
		}
	})
	return table
}

func build() (*grammar.Table, error) {
	b := grammar.NewBuilder("Sample")
	ident := b.Symbol(Identifier, grammar.Terminal)
	number := b.Symbol(Number, grammar.Terminal)
	op := b.Symbol(Operator, grammar.Terminal)
	esc := b.Symbol(Escape, grammar.Terminal)
	ws := b.Symbol(Whitespace, grammar.Noise)
	nl := b.Symbol(NewLine, grammar.Noise)
	quote := b.Symbol(Quote, grammar.GroupStart)
	str := b.Symbol(StringLiteral, grammar.Terminal)
	lcStart := b.Symbol(LineCommentStart, grammar.GroupStart)
	bcStart := b.Symbol(BlockCommentStart, grammar.GroupStart)
	bcEnd := b.Symbol(BlockCommentEnd, grammar.GroupEnd)
	comment := b.Symbol(Comment, grammar.Noise)
	//
	s0 := b.State()
	sIdent := b.State().Accepts(ident)
	s0.Edge('A', 'Z', sIdent).Edge('a', 'z', sIdent).Edge('_', '_', sIdent)
	sIdent.Edge('0', '9', sIdent).Edge('A', 'Z', sIdent).Edge('_', '_', sIdent).Edge('a', 'z', sIdent)
	sNum := b.State().Accepts(number)
	s0.Edge('0', '9', sNum)
	sNum.Edge('0', '9', sNum)
	sWS := b.State().Accepts(ws)
	s0.Chars(" \t\r", sWS)
	sWS.Chars(" \t\r", sWS)
	b.Keyword(s0, "\n", nl)
	for _, o := range "+-*/=();,." {
		b.Keyword(s0, string(o), op)
	}
	b.Keyword(s0, `"`, quote)
	b.Keyword(s0, "//", lcStart)
	b.Keyword(s0, "/*", bcStart)
	b.Keyword(s0, "*/", bcEnd)
	sBackslash := b.State()
	s0.Edge('\\', '\\', sBackslash)
	sBackslash.Edge(0, 0x10ffff, b.State().Accepts(esc))
	//
	b.Group("String", quote, quote, str).
		Ending(grammar.Inclusive).
		Advancing(grammar.WholeToken)
	b.Group("LineComment", lcStart, nl, comment).
		Ending(grammar.Exclusive).
		Advancing(grammar.SingleCharacter)
	b.Group("BlockComment", bcStart, bcEnd, comment).
		Ending(grammar.Inclusive).
		Advancing(grammar.SingleCharacter).
		Nests("BlockComment")
	return b.Table()
}
