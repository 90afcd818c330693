package lexer

import (
	"io"

	"github.com/npillmayer/tablex"
	"github.com/npillmayer/tablex/grammar"
)

// PeekToken proposes the next token at the current input position without
// committing any input. Calling PeekToken repeatedly without reading tokens in
// between returns the same token every time.
//
// The DFA of the lexer's table is walked as long as there is input and a
// matching edge; the longest prefix which reached an accepting state wins. If
// no input is left, the token is of the table's EOF symbol with an empty lexeme.
// If no prefix has been accepted, the token is of the table's Error symbol and
// covers the units read up to and including the one the DFA got stuck at.
//
// The token's position is the current position of the lexer. The only errors
// returned are read errors of the source.
func (lx *Lexer) PeekToken() (Token, error) {
	state := lx.table.Initial()
	var accept *grammar.Symbol // symbol of longest match
	best, cur := 0, 0          // length of longest match, units looked at
	for {
		code, err := lx.buffer.Peek(cur)
		if err == io.EOF {
			break
		} else if err != nil {
			return Token{}, err
		}
		cur++
		edge, ok := state.Next(code)
		if !ok {
			break // dead end
		}
		switch edge.Action {
		case grammar.Transparent:
		case grammar.Mark:
			best = cur
		default:
			state = edge.Target
			if state.IsAccepting() {
				accept, best = state.Accept, cur
			}
		}
	}
	var token Token
	switch {
	case accept != nil:
		token = lx.proposal(accept, best)
	case cur == 0:
		token = lx.proposal(lx.table.EOF(), 0)
	default:
		token = lx.proposal(lx.table.Error(), cur)
	}
	tracer().Debugf("DFA proposes %s after looking at %d units", token, cur)
	return token, nil
}

func (lx *Lexer) proposal(sym *grammar.Symbol, n int) Token {
	return Token{
		Symbol: sym,
		Lexeme: lx.buffer.Span(n),
		Pos:    lx.Position(),
		Span:   tablex.Span{lx.offset, lx.offset + uint64(n)},
	}
}
