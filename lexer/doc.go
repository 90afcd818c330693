/*
Package lexer implements a table-driven lexer.

A Lexer runs the DFA of a grammar.Table over an input source and produces tokens.
Tokens are found by maximal munch: the lexer walks the automaton as far as the
input allows and reports the longest prefix which reached an accepting state.

	lx := lexer.New(table)
	lx.LoadString("abc \"x y\" d")
	for {
		token, err := lx.ReadToken()
		if err != nil {
			// I/O error of the source
		}
		if token.Symbol.IsEnd() {
			break // end of input or lexical error
		}
		…
	}

Input is read in chunks into a sliding window, so inputs of any length may be
lexed without loading them into memory first. A source is read either in
character mode, where lookahead codes are Unicode code points, or in byte mode,
where codes are byte values. The mode is fixed for a session. Loading another
source starts a new session.

Lexical Groups

On top of plain DFA matching, lexers handle lexical groups (see package
grammar). When the DFA recognizes the start symbol of a group, the lexer
captures everything up to the group's end symbol into a single token of the
group's container symbol. Nested groups, if permitted by their parent,
become part of the parent's text. Depending on the group's advance mode, content
is absorbed token-wise or character-wise; depending on its ending mode, the end
delimiter is either part of the container token or remains in the input.

Errors

End of input and unmatched input are not Go errors, but tokens of the table's
EOF and Error symbols, respectively. Error tokens carry the unmatched run of
input as their lexeme. The lexer does not try to recover from errors. ReadToken
commits the erroneous run, thus clients may just continue reading; ReadAll stops
at the first error token. Clients working with PeekToken step over input with
Skip. If input ends within a lexical group, ReadToken returns EOF and OpenGroups
names the groups left open. Errors returned from the lexer's methods are I/O
errors of the underlying source, passed through unchanged.

A Lexer is not safe for concurrent use. Use one lexer per input stream.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tablex.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("tablex.lexer")
}
