package lexmach

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/tablex"
	"github.com/npillmayer/tablex/grammar"
	"github.com/npillmayer/tablex/lexer"
	"github.com/npillmayer/tablex/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Pattern pairs a regular expression with the name of a table symbol. Matches of
// a pattern with an empty symbol name are skipped.
type Pattern struct {
	Symbol string
	Regex  string
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	table *grammar.Table
}

// NewLMAdapter creates a new lexmachine adapter, which produces tokens for the
// symbols of table. Patterns are tried in the order given; for matches of equal
// length, the first pattern wins.
//
// NewLMAdapter will return an error if a pattern refers to an unknown symbol or
// if compiling the DFA failed.
func NewLMAdapter(table *grammar.Table, patterns []Pattern) (*LMAdapter, error) {
	adapter := &LMAdapter{
		Lexer: lexmachine.NewLexer(),
		table: table,
	}
	for _, p := range patterns {
		if p.Symbol == "" {
			adapter.Lexer.Add([]byte(p.Regex), Skip)
			continue
		}
		sym := table.SymbolByName(p.Symbol)
		if sym == nil {
			return nil, fmt.Errorf("pattern %q for unknown symbol %q", p.Regex, p.Symbol)
		}
		adapter.Lexer.Add([]byte(p.Regex), MakeToken(sym))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{
		scanner: s,
		table:   lm.table,
		input:   input,
		pos:     tablex.StartOfInput,
		Error:   scanner.LogError,
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	table   *grammar.Table
	input   string
	tc      int             // byte offset into input up to which pos is valid
	offset  uint64          // code points before tc
	pos     tablex.Position // position at tc
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Input lexmachine is unable to match is reported to the error handler and returned
// as a token of the table's error symbol. The scanner then continues behind it.
func (lms *LMScanner) NextToken() lexer.Token {
	tok, err, eos := lms.scanner.Next()
	if err != nil {
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			lms.Error(err)
			return lms.token(lms.table.EOF(), len(lms.input), len(lms.input))
		}
		fail := ui.FailTC
		if fail <= ui.StartTC { // always make progress
			_, size := utf8.DecodeRuneInString(lms.input[ui.StartTC:])
			fail = ui.StartTC + size
		}
		if fail > len(lms.input) {
			fail = len(lms.input)
		}
		lms.scanner.TC = fail
		token := lms.token(lms.table.Error(), ui.StartTC, fail)
		lms.Error(&scanner.LexicalError{Token: token})
		return token
	}
	if eos {
		tracer().Debugf("LMScanner reached end of input")
		return lms.token(lms.table.EOF(), len(lms.input), len(lms.input))
	}
	token := tok.(*lexmachine.Token)
	return lms.token(lms.table.Symbol(token.Type), token.TC, token.TC+len(token.Lexeme))
}

// token creates a token for input[from:to]. Calls must be ordered by from.
func (lms *LMScanner) token(sym *grammar.Symbol, from, to int) lexer.Token {
	lms.moveTo(from)
	start, pos := lms.offset, lms.pos
	lms.moveTo(to)
	return lexer.Token{
		Symbol: sym,
		Lexeme: lms.input[from:to],
		Pos:    pos,
		Span:   tablex.Span{start, lms.offset},
	}
}

// moveTo advances the position up to byte offset tc.
func (lms *LMScanner) moveTo(tc int) {
	for lms.tc < tc {
		r, size := utf8.DecodeRuneInString(lms.input[lms.tc:])
		lms.tc += size
		lms.offset++
		if r == '\n' {
			lms.pos.Line++
			lms.pos.Column = 1
		} else {
			lms.pos.Column++
		}
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// for symbol sym.
func MakeToken(sym *grammar.Symbol) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(sym.Index, string(m.Bytes), m), nil
	}
}
