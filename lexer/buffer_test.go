package lexer

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBufferPeekCommit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.lexer")
	defer teardown()
	//
	b := NewCharBuffer(strings.NewReader("häll\no"))
	if r, err := b.Peek(1); r != 'ä' || err != nil {
		t.Errorf("expected 'ä' at offset 1, have %q (%v)", r, err)
	}
	if b.Buffered() != 6 {
		t.Errorf("expected 6 units buffered, have %d", b.Buffered())
	}
	if s := b.Span(3); s != "häl" {
		t.Errorf("expected span 'häl', have %q", s)
	}
	if i := b.FindNewline(0, 6); i != 4 {
		t.Errorf("expected newline at offset 4, have %d", i)
	}
	if i := b.FindNewline(0, 4); i != -1 {
		t.Errorf("expected no newline within first 4 units, have %d", i)
	}
	b.Commit(2)
	if r, _ := b.Peek(0); r != 'l' {
		t.Errorf("expected 'l' after commit, have %q", r)
	}
	if i := b.FindNewline(0, 10); i != 2 {
		t.Errorf("expected newline at offset 2 after commit, have %d", i)
	}
	if _, err := b.Peek(4); err != io.EOF {
		t.Errorf("expected EOF behind end of input, have %v", err)
	}
	b.Commit(4)
	if b.Buffered() != 0 {
		t.Errorf("expected buffer to be reset, have %d units", b.Buffered())
	}
	if _, err := b.Peek(0); err != io.EOF {
		t.Errorf("expected EOF, have %v", err)
	}
}

func TestBufferCompaction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.lexer")
	defer teardown()
	//
	input := strings.Repeat("0123456789", 5)
	b := newBuffer(runeSource{strings.NewReader(input)}, CharacterMode, 8)
	for i := 0; i < len(input); i++ {
		r, err := b.Peek(0)
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if r != rune(input[i]) {
			t.Fatalf("expected %q at %d, have %q", input[i], i, r)
		}
		if i%7 == 0 {
			// look ahead across a chunk border
			if r, _ := b.Peek(9); i+9 < len(input) && r != rune(input[i+9]) {
				t.Fatalf("expected %q at %d+9, have %q", input[i+9], i, r)
			}
		}
		b.Commit(1)
		if len(b.buf) > 3*8 {
			t.Fatalf("buffer not compacted, holds %d units", len(b.buf))
		}
	}
}

func TestByteBufferSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.lexer")
	defer teardown()
	//
	b := NewByteBuffer(strings.NewReader("ä!"))
	if b.Mode() != ByteMode {
		t.Errorf("expected byte mode")
	}
	if r, _ := b.Peek(0); r != 0xc3 {
		t.Errorf("expected byte 0xc3, have %#x", r)
	}
	if s := b.Span(2); s != "ä" {
		t.Errorf("expected raw bytes of 'ä', have %q", s)
	}
}

func TestBufferSpanPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tablex.lexer")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Span beyond buffered data to panic")
		}
	}()
	b := NewCharBuffer(strings.NewReader("ab"))
	b.Peek(0)
	b.Span(5)
}
