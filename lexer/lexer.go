package lexer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/tablex"
	"github.com/npillmayer/tablex/grammar"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Configuration keys read when a lexer is created.
const (
	ConfigTraceTokens = "tablex-trace-tokens" // bool: trace every token returned
	ConfigChunkSize   = "tablex-chunk-size"   // int: units read per refill
)

// Lexer is a table-driven lexer. Create one with New and load an input source
// with one of the Load… methods.
type Lexer struct {
	table       *grammar.Table
	buffer      *Buffer
	line        int
	column      int
	offset      uint64            // committed units since start of input
	stack       *arraystack.Stack // open lexical groups, innermost on top
	closer      io.Closer         // file opened by LoadFile
	skipNoise   bool
	chunkSize   int
	traceTokens bool
}

// Option configures a lexer.
type Option func(lx *Lexer)

// SkipNoise sets or clears option SkipNoise: do not return tokens of symbols of
// kind Noise (whitespace, comments), but continue with the next token.
func SkipNoise(b bool) Option {
	return func(lx *Lexer) {
		lx.skipNoise = b
	}
}

// ChunkSize sets the number of units read from a source per refill. Values
// <= 0 select DefaultChunkSize. Takes effect with the next source loaded.
func ChunkSize(n int) Option {
	return func(lx *Lexer) {
		lx.chunkSize = n
	}
}

// New creates a lexer for a table. The table is shared, not copied. The new lexer
// has an empty input loaded.
func New(table *grammar.Table, opts ...Option) *Lexer {
	lx := &Lexer{
		table:       table,
		stack:       arraystack.New(),
		chunkSize:   gconf.GetInt(ConfigChunkSize),
		traceTokens: gconf.GetBool(ConfigTraceTokens),
	}
	for _, opt := range opts {
		opt(lx)
	}
	lx.LoadString("")
	return lx
}

// Table returns the table the lexer works on.
func (lx *Lexer) Table() *grammar.Table {
	return lx.table
}

// --- Sessions --------------------------------------------------------------

// Load starts a new session in character mode, reading code points from r.
func (lx *Lexer) Load(r io.RuneReader) {
	lx.load(runeSource{r}, CharacterMode, nil)
}

// LoadString starts a new session in character mode, lexing s.
func (lx *Lexer) LoadString(s string) {
	lx.load(runeSource{strings.NewReader(s)}, CharacterMode, nil)
}

// LoadReader starts a new session in character mode, decoding UTF-8 from r.
func (lx *Lexer) LoadReader(r io.Reader) {
	lx.load(runeSource{bufio.NewReader(r)}, CharacterMode, nil)
}

// LoadBytes starts a new session in byte mode, reading bytes from r.
func (lx *Lexer) LoadBytes(r io.Reader) {
	lx.load(&byteSource{r: r}, ByteMode, nil)
}

// LoadFile starts a new session for the file at path. If encoding is empty, the
// file is read in byte mode. Otherwise the file is decoded using the named
// encoding (e.g. "utf-8", "utf-16le", "iso-8859-1", "shift_jis") and read in
// character mode. The file is closed when the next source is loaded or on Close.
func (lx *Lexer) LoadFile(path string, encoding string) error {
	var decode func(io.Reader) io.Reader
	if encoding != "" {
		enc, err := htmlindex.Get(encoding)
		if err != nil {
			return fmt.Errorf("lexer cannot read %s: %w", path, err)
		}
		decode = func(r io.Reader) io.Reader {
			return transform.NewReader(r, enc.NewDecoder())
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	if decode == nil {
		lx.load(&byteSource{r: f}, ByteMode, f)
	} else {
		lx.load(runeSource{bufio.NewReader(decode(f))}, CharacterMode, f)
	}
	return nil
}

// Close closes a file opened by LoadFile, if any. The lexer is left with an
// exhausted input.
func (lx *Lexer) Close() error {
	if lx.closer == nil {
		return nil
	}
	err := lx.closer.Close()
	lx.closer = nil
	lx.load(runeSource{strings.NewReader("")}, CharacterMode, nil)
	return err
}

func (lx *Lexer) load(src unitSource, mode Mode, closer io.Closer) {
	if lx.closer != nil {
		if err := lx.closer.Close(); err != nil {
			tracer().Errorf("lexer cannot close previous input: %v", err)
		}
	}
	lx.closer = closer
	lx.buffer = newBuffer(src, mode, lx.chunkSize)
	lx.line, lx.column = 1, 1
	lx.offset = 0
	lx.stack.Clear()
	tracer().Debugf("lexer loaded new input in %s mode for table %q", mode, lx.table.Name)
}

// Mode returns the input mode of the current session.
func (lx *Lexer) Mode() Mode {
	return lx.buffer.Mode()
}

// --- Positions -------------------------------------------------------------

// Position returns the line and column of the next uncommitted unit.
func (lx *Lexer) Position() tablex.Position {
	return tablex.Position{Line: lx.line, Column: lx.column}
}

// Offset returns the number of units committed since the start of input.
func (lx *Lexer) Offset() uint64 {
	return lx.offset
}

// consume commits n units and moves the position past them.
func (lx *Lexer) consume(n int) {
	start, lineStart := 0, -1
	for {
		i := lx.buffer.FindNewline(start, n-start)
		if i < 0 {
			break
		}
		lx.line++
		start = i + 1
		lineStart = start
	}
	if lineStart < 0 {
		lx.column += n
	} else {
		lx.column = 1 + n - lineStart
	}
	lx.offset += uint64(n)
	lx.buffer.Commit(n)
}

// Skip discards up to n units of input, e.g. to step over input which PeekToken
// reported as erroneous. It returns the number of units skipped. Skip must not
// be called while a lexical group is open.
func (lx *Lexer) Skip(n int) (int, error) {
	if !lx.stack.Empty() {
		panic("lexer.Skip() called with open lexical groups")
	}
	if n <= 0 {
		return 0, nil
	}
	if _, err := lx.buffer.Peek(n - 1); err != nil && err != io.EOF {
		return 0, err
	}
	if b := lx.buffer.Buffered(); b < n {
		n = b
	}
	lx.consume(n)
	return n, nil
}
