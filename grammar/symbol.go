package grammar

import "fmt"

// SymbolKind is a category type for grammar symbols. The set of kinds follows the
// kinds found in GOLD-style compiled grammar tables.
type SymbolKind int8

// Symbol kinds
const (
	NonTerminal SymbolKind = iota // produced by the parser, never by a lexer
	Terminal                      // regular terminal recognized by the DFA
	Noise                         // terminal a parser will ignore, e.g. whitespace
	EndOfFile                     // end of input
	GroupStart                    // starts a lexical group
	GroupEnd                      // ends a lexical group
	CommentLine                   // legacy line comment marker
	Error                         // input the DFA is unable to match
)

var kindNames = [...]string{"NonTerminal", "Terminal", "Noise", "EOF",
	"GroupStart", "GroupEnd", "CommentLine", "Error"}

func (k SymbolKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
	return kindNames[k]
}

// Symbol is a grammar symbol. Symbols are created by a Builder and are compared
// by identity: two symbols are the same if and only if the pointers are equal.
type Symbol struct {
	Index int        // position of the symbol within its table
	Name  string     // name as written in the grammar
	Kind  SymbolKind // category of the symbol
}

// IsTerminal is a predicate: may this symbol be produced by a lexer?
func (sym *Symbol) IsTerminal() bool {
	return sym != nil && sym.Kind != NonTerminal
}

// IsEnd is a predicate: does a token of this symbol end a token sequence?
// This holds for end-of-input and for errors.
func (sym *Symbol) IsEnd() bool {
	return sym != nil && (sym.Kind == EndOfFile || sym.Kind == Error)
}

// String is a debug Stringer for symbols.
func (sym *Symbol) String() string {
	if sym == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<%s:%s>", sym.Name, sym.Kind)
}
