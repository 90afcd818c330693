/*
Command tlex provides an interactive command line tool (T.LEX) for experiments
with the table-driven lexer of package lexer. Every line entered is tokenized
with the table of the sample language (see package grammar/sample), and the
tokens are printed as a table. Lines ending in a backslash are continued on the
next line, so lexical groups spanning lines may be tried out.

	tlex [-trace Debug] [-backend table|lexmachine] [-dump]
	tlex -file input.txt [-encoding iso-8859-1 | -bytes]

Within the REPL, the commands ':dump' and ':groups' print the lexer table or its
lexical groups, respectively. Quit with ':quit' or <ctrl>D.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tablex.cmd'
func tracer() tracing.Trace {
	return tracing.Select("tablex.cmd")
}
