/*
Package grammar holds the immutable tables a lexer works on.

A Table bundles the symbols of a grammar, a deterministic finite automaton (DFA)
recognizing its terminals, and the definitions of lexical groups. Tables are
usually produced by a grammar compiler and loaded by a front-end; this package
does not compile regular expressions or grammars. It does, however, provide a
Builder to assemble tables programmatically:

    b := grammar.NewBuilder("Identifiers")
    id := b.Symbol("Identifier", grammar.Terminal)
    s0 := b.State()                        // the first state is the initial state
    s1 := b.State().Accepts(id)
    s0.Edge('a', 'z', s1)
    s1.Edge('a', 'z', s1)
    table, err := b.Table()

Lexical Groups

A lexical group is a region of input delimited by a start symbol and an end symbol,
e.g. a block comment. A lexer captures the complete region as one token of the
group's container symbol. Groups may allow other groups to nest inside them.

    b.Group("Comment", start, end, container).
        Ending(grammar.Inclusive).
        Advancing(grammar.SingleCharacter).
        Nests("Comment")

Tables are never mutated once built, and may be shared between any number of
lexers, including lexers running on different goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tablex.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("tablex.grammar")
}
