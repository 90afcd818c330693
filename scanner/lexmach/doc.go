/*
Package lexmach provides an adapter to use the lexmachine scanner generator as
an alternative backend for the symbols of a grammar.Table.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing regular expressions. Package lexmach
pairs each regular expression with the name of a symbol of a table:

	patterns := []lexmach.Pattern{
		{Symbol: "Identifier", Regex: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Symbol: "Number", Regex: `[0-9]+`},
		{Regex: `( |\t)+`}, // no symbol: skip
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if a symbol is unknown or compiling the DFA failed.

	LM, err := lexmach.NewLMAdapter(table, patterns)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface and produces lexer.Token
values, with positions and spans counted in code points, as a table-driven lexer
would report them.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

Lexmachine has no notion of lexical groups. Patterns may use regular expressions
to match simple groups, e.g. strings without escapes.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tablex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("tablex.scanner")
}
