package macros

import (
	m "efitest.dev/pkg/efitest/internal/model"
)

// cursor walks a build script byte by byte and tracks the current line.
type cursor struct {
	src  string
	pos  int
	line int
}

func newCursor(src string) *cursor {
	return &cursor{src: src, line: 1}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}

	return c.src[c.pos]
}

func (c *cursor) advance() {
	if c.src[c.pos] == '\n' {
		c.line++
	}

	c.pos++
}

func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.peek()) {
		c.advance()
	}
}

// word reads the identifier starting at the current position.
func (c *cursor) word() string {
	start := c.pos
	for !c.eof() && isIdentByte(c.peek()) {
		c.pos++
	}

	return c.src[start:c.pos]
}

// atWordStart reports whether an identifier begins at the current position
// and is not the tail of a longer one.
func (c *cursor) atWordStart() bool {
	if c.eof() || !isIdentByte(c.peek()) {
		return false
	}

	return c.pos == 0 || !isIdentByte(c.src[c.pos-1])
}

// token reads one argument. It returns an empty token without consuming
// anything when the closing parenthesis comes first.
func (c *cursor) token() (string, *m.SyntaxError) {
	c.skipSpace()

	if c.eof() {
		return "", c.unterminated("missing ')'")
	}

	if c.peek() == ')' {
		return "", nil
	}

	if c.peek() == '"' {
		return c.quoted()
	}

	start := c.pos
	for !c.eof() && !isSpace(c.peek()) && c.peek() != ')' {
		c.advance()
	}

	if c.eof() {
		return "", c.unterminated("missing ')'")
	}

	return c.src[start:c.pos], nil
}

// quoted reads a double-quoted token including both quotes. Backslash
// escapes are copied through untouched.
func (c *cursor) quoted() (string, *m.SyntaxError) {
	start, line := c.pos, c.line
	c.advance()

	for !c.eof() {
		switch c.peek() {
		case '\\':
			c.advance()
			if !c.eof() {
				c.advance()
			}
		case '"':
			c.advance()
			return c.src[start:c.pos], nil
		default:
			c.advance()
		}
	}

	return "", &m.SyntaxError{Line: line, Reason: "missing closing quote", Err: m.ErrUnterminated}
}

// rest reads tokens up to and including the closing parenthesis.
func (c *cursor) rest() ([]string, *m.SyntaxError) {
	var tokens []string

	for {
		tok, err := c.token()
		if err != nil {
			return nil, err
		}

		if tok == "" {
			c.advance()
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

func (c *cursor) unterminated(reason string) *m.SyntaxError {
	return &m.SyntaxError{Line: c.line, Reason: reason, Err: m.ErrUnterminated}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
