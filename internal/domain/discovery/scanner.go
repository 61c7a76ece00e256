// Package discovery finds test declarations in C sources.
package discovery

import (
	"iter"
	"strings"
)

type scanState int

const (
	stateNormal scanState = iota
	stateLineComment
	stateBlockComment
)

// Scanner walks source text one byte at a time and stops at every occurrence
// of a marker that is not inside a comment.
type Scanner struct {
	src    string
	marker string
	state  scanState
	pos    int
	line   int
	offset int
	// markerLine is the line the last reported marker starts on.
	markerLine int
}

// NewScanner creates a Scanner over src looking for marker.
func NewScanner(src, marker string) *Scanner {
	return &Scanner{src: src, marker: marker, line: 1}
}

// Next advances to the next marker outside a comment. It returns false once
// the input is exhausted.
func (s *Scanner) Next() bool {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch s.state {
		case stateBlockComment:
			if c == '*' && s.peek(1) == '/' {
				s.state = stateNormal
				s.pos += 2

				continue
			}

			s.advance()

		case stateLineComment:
			if c == '\n' {
				s.state = stateNormal
			}

			s.advance()

		case stateNormal:
			if c == '/' {
				switch s.peek(1) {
				case '*':
					s.state = stateBlockComment
					s.pos += 2

					continue
				case '/':
					s.state = stateLineComment
					s.pos += 2

					continue
				}
			}

			if s.marker != "" && strings.HasPrefix(s.src[s.pos:], s.marker) {
				s.offset = s.pos
				s.markerLine = s.line
				s.pos += len(s.marker)

				return true
			}

			s.advance()
		}
	}

	return false
}

// Offset returns the byte offset of the marker reported by the last Next.
func (s *Scanner) Offset() int {
	return s.offset
}

// Line returns the 1-based line of the marker reported by the last Next.
func (s *Scanner) Line() int {
	return s.markerLine
}

// Seek moves the scanner forward to offset, counting the newlines it passes.
// Offsets behind the current position are ignored.
func (s *Scanner) Seek(offset int) {
	if offset > len(s.src) {
		offset = len(s.src)
	}

	for s.pos < offset {
		s.advance()
	}
}

// Markers returns a lazy sequence of marker offsets. Calling Seek from the
// loop body is allowed and affects where the next search resumes.
func (s *Scanner) Markers() iter.Seq[int] {
	return func(yield func(int) bool) {
		for s.Next() {
			if !yield(s.offset) {
				return
			}
		}
	}
}

func (s *Scanner) peek(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}

	return s.src[s.pos+n]
}

func (s *Scanner) advance() {
	if s.src[s.pos] == '\n' {
		s.line++
	}

	s.pos++
}
