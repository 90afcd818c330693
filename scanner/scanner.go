/*
Package scanner defines an interface for scanners to be used by parsers, which pull
tokens one at a time.

Two scanner implementations are provided: (1) an adapter for table-driven lexers of
package lexer, and (2) an adapter for lexmachine, living in sub-package `lexmach`.
Both produce tokens of type lexer.Token.

Scanners do not return errors. Errors are reported to an error handler, which by
default logs them to the tracer. Lexical errors result in tokens of a table's error
symbol, read errors of the input source in an end-of-input token.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tablex"
	"github.com/npillmayer/tablex/grammar"
	"github.com/npillmayer/tablex/lexer"
)

// tracer traces with key 'tablex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("tablex.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lexer.Token
	SetErrorHandler(func(error))
}

// ErrUnterminatedGroup is reported if the input ends within a lexical group.
var ErrUnterminatedGroup = errors.New("input ends within lexical group")

// LexicalError is reported for input a scanner could not match.
type LexicalError struct {
	Token lexer.Token // error token covering the unmatched input
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: unrecognized input %q", e.Token.Pos, e.Token.Lexeme)
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// TableTokenizer is a Tokenizer backed by a table-driven lexer.
// Create one with New.
type TableTokenizer struct {
	lx           *lexer.Lexer
	Error        func(error) // error handler
	skipNoise    bool        // drop noise tokens
	skipComments bool        // drop noise containers
	comments     *hashset.Set
	reported     bool // unterminated group has been reported
}

var _ Tokenizer = (*TableTokenizer)(nil)

// New creates a tokenizer reading tokens from lx. lx must have an input loaded.
func New(lx *lexer.Lexer, opts ...Option) *TableTokenizer {
	t := &TableTokenizer{
		lx:       lx,
		Error:    LogError,
		comments: hashset.New(),
	}
	for _, g := range lx.Table().Groups() {
		if g.Container.Kind == grammar.Noise {
			t.comments.Add(g.Container)
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *TableTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = LogError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// After the end of input, NextToken returns end-of-input tokens. After an error
// token, NextToken continues behind the unmatched input.
func (t *TableTokenizer) NextToken() lexer.Token {
	for {
		token, err := t.lx.ReadToken()
		if err != nil {
			t.Error(fmt.Errorf("scanner cannot read input: %w", err))
			return t.eof()
		}
		switch {
		case token.Symbol == t.lx.Table().EOF():
			if open := t.lx.OpenGroups(); len(open) > 0 && !t.reported {
				t.reported = true
				t.Error(fmt.Errorf("%s: %w %s", token.Pos, ErrUnterminatedGroup,
					strings.Join(open, "/")))
			}
			tracer().Debugf("TableTokenizer reached end of input")
			return token
		case token.Symbol == t.lx.Table().Error():
			t.Error(&LexicalError{Token: token})
			return token
		case token.Kind() == grammar.Noise:
			if t.comments.Contains(token.Symbol) {
				if t.skipComments {
					continue
				}
			} else if t.skipNoise {
				continue
			}
		}
		return token
	}
}

func (t *TableTokenizer) eof() lexer.Token {
	return lexer.Token{
		Symbol: t.lx.Table().EOF(),
		Pos:    t.lx.Position(),
		Span:   tablex.Span{t.lx.Offset(), t.lx.Offset()},
	}
}

// --- Scanner options -------------------------------------------------------

// Option configures a TableTokenizer.
type Option func(t *TableTokenizer)

// SkipNoise sets or clears option SkipNoise: do not pass tokens of kind Noise,
// e.g. whitespace. Containers of lexical groups are not affected.
func SkipNoise(b bool) Option {
	return func(t *TableTokenizer) {
		t.skipNoise = b
	}
}

// SkipComments sets or clears option SkipComments: do not pass tokens for lexical
// groups whose container symbol is of kind Noise, e.g. comments.
func SkipComments(b bool) Option {
	return func(t *TableTokenizer) {
		t.skipComments = b
	}
}
