package discovery

import (
	"strings"

	m "efitest.dev/pkg/efitest/internal/model"
)

// extraction is the result of reading one declaration after its marker.
type extraction struct {
	test m.Test
	// end is the offset just past the closing parenthesis.
	end int
}

// extract reads the test name that follows the marker starting at offset.
// line is the line the marker sits on.
func extract(src string, offset, line int, marker string) (extraction, *m.SyntaxError) {
	c := cursor{src: src, pos: offset + len(marker), line: line}

	if !c.skipUntil('(') {
		return extraction{}, &m.SyntaxError{Line: line, Reason: "missing '(' after " + marker, Err: m.ErrUnterminated}
	}

	c.pos++

	c.skipSpace()

	start, startLine := c.pos, c.line

	if !c.skipUntil(')') {
		return extraction{}, &m.SyntaxError{Line: startLine, Reason: "missing ')' to close " + marker, Err: m.ErrUnterminated}
	}

	name := cleanName(src[start:c.pos])
	if name == "" {
		return extraction{}, &m.SyntaxError{Line: startLine, Reason: "empty test name in " + marker, Err: m.ErrMalformed}
	}

	return extraction{
		test: m.Test{Name: name, LineNumber: startLine},
		end:  c.pos + 1,
	}, nil
}

// cleanName drops newline and tab characters anywhere in the capture and
// trims the remaining surrounding blanks.
func cleanName(raw string) string {
	name := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return -1
		}

		return r
	}, raw)

	return strings.Trim(name, " \r")
}

type cursor struct {
	src  string
	pos  int
	line int
}

// skipUntil advances to the next occurrence of b. It reports false when the
// input ends first.
func (c *cursor) skipUntil(b byte) bool {
	for c.pos < len(c.src) {
		if c.src[c.pos] == b {
			return true
		}

		c.advance()
	}

	return false
}

func (c *cursor) skipSpace() {
	for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
		c.advance()
	}
}

func (c *cursor) advance() {
	if c.src[c.pos] == '\n' {
		c.line++
	}

	c.pos++
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
