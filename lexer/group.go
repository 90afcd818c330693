package lexer

import (
	"strings"

	"github.com/npillmayer/tablex"
	"github.com/npillmayer/tablex/grammar"
)

// groupFrame is an open lexical group. A frame exclusively owns the text captured
// so far. When a nested group closes, its text is appended to the parent frame.
type groupFrame struct {
	group *grammar.Group
	text  strings.Builder
	pos   tablex.Position // position of the group's start delimiter
	start uint64          // offset of the group's start delimiter
}

func (lx *Lexer) push(g *grammar.Group, start Token) {
	frame := &groupFrame{
		group: g,
		pos:   start.Pos,
		start: start.Span.From(),
	}
	frame.text.WriteString(start.Lexeme)
	lx.stack.Push(frame)
	tracer().Debugf("open group %s at %s, depth %d", g.Name, start.Pos, lx.stack.Size())
}

func (lx *Lexer) pop() *groupFrame {
	f, ok := lx.stack.Pop()
	if !ok {
		panic("lexer: group stack is empty")
	}
	frame := f.(*groupFrame)
	tracer().Debugf("close group %s, depth %d", frame.group.Name, lx.stack.Size())
	return frame
}

// top returns the innermost open group frame, or nil.
func (lx *Lexer) top() *groupFrame {
	f, ok := lx.stack.Peek()
	if !ok {
		return nil
	}
	return f.(*groupFrame)
}

// OpenGroups returns the names of the lexical groups currently open, innermost
// last. After ReadToken returned an EOF token, a non-empty result means that the
// input ended within a group.
func (lx *Lexer) OpenGroups() []string {
	frames := lx.stack.Values() // innermost first
	names := make([]string, len(frames))
	for i, f := range frames {
		names[len(frames)-1-i] = f.(*groupFrame).group.Name
	}
	return names
}

// ReadToken reads the next token from the input and commits it.
//
// If a token starts a lexical group, ReadToken continues reading until the group
// is closed and returns a single token of the group's container symbol. Groups
// nested into the group become part of its text. If the input ends within a
// group, ReadToken returns a token of the EOF symbol; use OpenGroups to find out
// about the groups left unterminated.
//
// With option SkipNoise, top-level tokens of kind Noise are skipped. Container
// tokens are always returned, even if their symbol is of kind Noise.
func (lx *Lexer) ReadToken() (Token, error) {
	for {
		token, err := lx.PeekToken()
		if err != nil {
			return token, err
		}
		frame := lx.top()
		if g := lx.opens(token, frame); g != nil {
			lx.consume(int(token.Span.Len()))
			lx.push(g, token)
			continue
		}
		if frame == nil {
			lx.consume(int(token.Span.Len()))
			if lx.skips(token) {
				continue
			}
			return lx.emit(token), nil
		}
		switch {
		case token.Symbol == frame.group.End:
			lx.pop()
			if frame.group.Ending == grammar.Inclusive {
				frame.text.WriteString(token.Lexeme)
				lx.consume(int(token.Span.Len()))
			}
			if parent := lx.top(); parent != nil {
				parent.text.WriteString(frame.text.String())
				continue
			}
			container := Token{
				Symbol: frame.group.Container,
				Lexeme: frame.text.String(),
				Pos:    frame.pos,
				Span:   tablex.Span{frame.start, lx.offset},
			}
			return lx.emit(container), nil
		case token.Symbol == lx.table.EOF():
			tracer().Infof("input ends within group %s", frame.group.Name)
			return lx.emit(token), nil
		case frame.group.Advance == grammar.SingleCharacter:
			frame.text.WriteString(lx.buffer.Span(1))
			lx.consume(1)
		default:
			frame.text.WriteString(token.Lexeme)
			lx.consume(int(token.Span.Len()))
		}
	}
}

// opens returns the group started by token, if it may open in the context of
// the top frame. Otherwise opens returns nil.
func (lx *Lexer) opens(token Token, frame *groupFrame) *grammar.Group {
	if token.Kind() != grammar.GroupStart {
		return nil
	}
	g := lx.table.GroupStartedBy(token.Symbol)
	if g == nil {
		return nil
	}
	if frame != nil && !frame.group.AllowsNesting(g) {
		return nil
	}
	return g
}

func (lx *Lexer) skips(token Token) bool {
	return lx.skipNoise && token.Kind() == grammar.Noise
}

func (lx *Lexer) emit(token Token) Token {
	if lx.traceTokens {
		tracer().Infof("token %s", token)
	}
	return token
}

// ReadAll reads tokens until the end of input or a lexical error. The EOF or
// Error token is the last token of the result. If a read error occurs, ReadAll
// returns the tokens read so far together with the error.
func (lx *Lexer) ReadAll() ([]Token, error) {
	var tokens []Token
	for {
		token, err := lx.ReadToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
		if token.Symbol.IsEnd() {
			return tokens, nil
		}
	}
}
