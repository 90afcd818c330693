package lexer

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Caret returns a line with a caret ('^') under the given 1-based column of a
// source line, suitable to be printed below the line in error messages.
// Columns are counted in code points. Wide East Asian characters occupy two
// cells, tabs are kept so that terminals expand them the same way in both lines.
//
//    a := "漢字" @ 1
//                ^
func Caret(line string, column int) string {
	var b strings.Builder
	col := 1
	for _, r := range line {
		if col >= column {
			break
		}
		col++
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", cellWidth(r)))
	}
	for ; col < column; col++ { // column behind end of line
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}

// cellWidth is the width of r in text cells, supposing a monospaced font and a
// non-CJK locale.
func cellWidth(r rune) int {
	if !unicode.IsGraphic(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	}
	return 1
}
