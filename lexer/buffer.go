package lexer

import (
	"fmt"
	"io"
)

// Mode is the input mode of a lexing session.
type Mode int8

// Input modes
const (
	CharacterMode Mode = iota // units are Unicode code points
	ByteMode                  // units are bytes
)

func (m Mode) String() string {
	if m == ByteMode {
		return "byte"
	}
	return "character"
}

// DefaultChunkSize is the number of units read from a source per refill. It is
// also the cursor position at which a buffer discards already committed data.
const DefaultChunkSize = 4096

// maxEmptyReads limits consecutive reads returning neither data nor an error.
const maxEmptyReads = 100

// --- Sources ---------------------------------------------------------------

// unitSource reads up to n units and appends them to dst.
type unitSource interface {
	readUnits(dst []rune, n int) ([]rune, error)
}

// runeSource reads code points from a rune reader.
type runeSource struct {
	r io.RuneReader
}

func (src runeSource) readUnits(dst []rune, n int) ([]rune, error) {
	for i := 0; i < n; i++ {
		r, _, err := src.r.ReadRune()
		if err != nil {
			return dst, err
		}
		dst = append(dst, r)
	}
	return dst, nil
}

// byteSource reads bytes from a reader. Every byte is one unit.
type byteSource struct {
	r     io.Reader
	chunk []byte
}

func (src *byteSource) readUnits(dst []rune, n int) ([]rune, error) {
	if len(src.chunk) < n {
		src.chunk = make([]byte, n)
	}
	k, err := src.r.Read(src.chunk[:n])
	for _, b := range src.chunk[:k] {
		dst = append(dst, rune(b))
	}
	return dst, err
}

// --- Buffer ----------------------------------------------------------------

// Buffer holds a sliding window of an input source. Callers look ahead of the
// read cursor with Peek and move the cursor with Commit once they know how many
// units have been consumed.
//
// Invariant: cursor + remaining valid units = length of data held.
type Buffer struct {
	src    unitSource
	mode   Mode
	buf    []rune
	cur    int   // read cursor
	remain int   // valid, uncommitted units ahead of cur
	chunk  int   // units per refill
	err    error // sticky read error, io.EOF at end of source
}

func newBuffer(src unitSource, mode Mode, chunk int) *Buffer {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	return &Buffer{
		src:   src,
		mode:  mode,
		chunk: chunk,
	}
}

// NewCharBuffer creates a buffer reading code points from r.
func NewCharBuffer(r io.RuneReader) *Buffer {
	return newBuffer(runeSource{r}, CharacterMode, DefaultChunkSize)
}

// NewByteBuffer creates a buffer reading bytes from r.
func NewByteBuffer(r io.Reader) *Buffer {
	return newBuffer(&byteSource{r: r}, ByteMode, DefaultChunkSize)
}

// Mode returns the input mode of the buffer.
func (b *Buffer) Mode() Mode {
	return b.mode
}

// Buffered returns the number of valid units ahead of the cursor which are
// available without reading from the source.
func (b *Buffer) Buffered() int {
	return b.remain
}

// Peek returns the unit at cursor+offset without committing it. If the offset
// exceeds the data buffered, Peek reads from the source. At end of input Peek
// returns io.EOF. Other read errors are returned unchanged, once the units read
// before the error have been peeked.
func (b *Buffer) Peek(offset int) (rune, error) {
	empty := 0
	for offset >= b.remain {
		if b.err != nil {
			return 0, b.err
		}
		if b.fill() == 0 && b.err == nil {
			if empty++; empty >= maxEmptyReads {
				b.err = io.ErrNoProgress
			}
		}
	}
	return b.buf[b.cur+offset], nil
}

// fill appends the next chunk of input to the buffer, discarding committed data
// first if the cursor has moved far enough. Returns the number of units read.
func (b *Buffer) fill() int {
	if b.cur >= b.chunk {
		n := copy(b.buf, b.buf[b.cur:])
		b.buf = b.buf[:n]
		b.cur = 0
	}
	l := len(b.buf)
	b.buf, b.err = b.src.readUnits(b.buf, b.chunk)
	b.remain = len(b.buf) - b.cur
	if b.err != nil && b.err != io.EOF {
		tracer().Errorf("error reading input: %v", b.err)
	}
	return len(b.buf) - l
}

// Commit advances the cursor by n units. If n is not less than the number of
// valid units ahead of the cursor, the buffer is reset instead.
func (b *Buffer) Commit(n int) {
	if n < 0 {
		panic(fmt.Sprintf("lexer.Buffer.Commit() with count < 0: %d", n))
	}
	if n < b.remain {
		b.cur += n
		b.remain -= n
		return
	}
	b.reset()
}

func (b *Buffer) reset() {
	b.buf = b.buf[:0]
	b.cur = 0
	b.remain = 0
}

// Span returns the n units ahead of the cursor as a string. In character mode the
// string is UTF-8 encoded, in byte mode it holds the raw bytes.
// n must not exceed the number of buffered units.
func (b *Buffer) Span(n int) string {
	if n < 0 || n > b.remain {
		panic(fmt.Sprintf("lexer.Buffer.Span() with count %d outside of buffered data (%d)", n, b.remain))
	}
	units := b.buf[b.cur : b.cur+n]
	if b.mode == ByteMode {
		bytes := make([]byte, n)
		for i, u := range units {
			bytes[i] = byte(u)
		}
		return string(bytes)
	}
	return string(units)
}

// FindNewline returns the offset of the first newline within
// [cursor+start … cursor+start+limit), relative to the cursor, or -1.
func (b *Buffer) FindNewline(start, limit int) int {
	if start < 0 {
		start = 0
	}
	end := start + limit
	if end > b.remain {
		end = b.remain
	}
	for i := start; i < end; i++ {
		if b.buf[b.cur+i] == '\n' {
			return i
		}
	}
	return -1
}
