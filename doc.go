/*
Package tablex is the lexical analysis engine of a table-driven parsing toolkit.

TabLex runs a deterministic finite automaton, handed to it as an immutable table,
over a stream of characters or bytes and produces classified tokens with source
positions. On top of plain DFA matching it supports lexical groups: nested,
delimited regions like string literals or block comments, which are captured
as a single token. Package structure is as follows:

■ grammar: Package grammar holds the immutable tables the engine works on: symbols,
DFA states and edges, and lexical group definitions, together with a builder to
assemble them.

■ lexer: Package lexer implements the engine itself: a streaming input buffer, the
maximal-munch DFA walk, line/column tracking and the lexical group stack machine.

■ scanner: Package scanner defines the tokenizer interface used by parsers and adapts
lexers to it. Sub-package lexmach provides an alternative tokenizer backed by
lexmachine.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tablex
