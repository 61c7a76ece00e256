// Package highlight colours C source listings for the terminal.
package highlight

import "strings"

// Kind classifies a token for styling.
type Kind int

// Token kinds.
const (
	KindPlain Kind = iota
	KindKeyword
	KindIdentifier
	KindNumber
	KindString
	KindOperator
	KindComment
	KindPreprocessor
)

// Token is a run of source text with a single style.
type Token struct {
	Kind Kind
	Text string
}

var keywords = map[string]struct{}{}

func init() {
	for _, kw := range strings.Fields(`
		void char short int long unsigned signed float double true false nullptr
		bool sizeof alignas alignof if else for while do goto continue switch
		break case default return inline static volatile extern register
		static_assert thread_local typedef typeof typeof_unqual const constexpr
		struct union enum restrict _Atomic _Thread_local _Noreturn _Bool
		_Alignas _Alignof _Complex _Imaginary _BitInt _Decimal128 _Decimal64
		_Decimal32 _Static_assert _Pragma _Generic auto __asm__ __volatile__
		__attribute__ __asm __volatile __forceinline __declspec
		int8_t int16_t int32_t int64_t uint8_t uint16_t uint32_t uint64_t
		size_t ptrdiff_t intptr_t uintptr_t wchar_t
		BOOLEAN TRUE FALSE UINTN INTN CHAR8 CHAR16 EFI_STATUS`) {
		keywords[kw] = struct{}{}
	}
}

// Longest operators first so "<<=" wins over "<<" and "<".
var operators = []string{
	"...",
	"<<=", ">>=",
	"->", "<<", ">>", "||", "&&", "++", "--",
	"|=", "&=", "^=", "+=", "-=", "*=", "/=", "%=", "==", "!=", "<=", ">=",
	"|", "&", "^", "+", "-", "*", "/", "%", "~", "!", "<", ">", "=", "?", ":",
}

var stringPrefixes = map[string]struct{}{"L": {}, "u": {}, "U": {}, "u8": {}}

// Tokenize splits src into styled runs. Concatenating the Text of every
// token reproduces src exactly.
func Tokenize(src string) []Token {
	var tokens []Token

	lineStart := true

	for pos := 0; pos < len(src); {
		c := src[pos]
		end := pos + 1
		kind := KindPlain

		switch {
		case c == '\n':
			lineStart = true
			tokens = append(tokens, Token{Kind: KindPlain, Text: "\n"})
			pos++

			continue
		case c == ' ' || c == '\t' || c == '\r':
			for end < len(src) && (src[end] == ' ' || src[end] == '\t' || src[end] == '\r') {
				end++
			}

			tokens = append(tokens, Token{Kind: KindPlain, Text: src[pos:end]})
			pos = end

			continue
		case strings.HasPrefix(src[pos:], "//"):
			end = lineEnd(src, pos)
			kind = KindComment
		case strings.HasPrefix(src[pos:], "/*"):
			end = len(src)
			if idx := strings.Index(src[pos+2:], "*/"); idx >= 0 {
				end = pos + 2 + idx + 2
			}

			kind = KindComment
		case c == '#' && lineStart:
			end = lineEnd(src, pos)
			kind = KindPreprocessor
		case c == '"' || c == '\'':
			end = quotedEnd(src, pos+1, c)
			kind = KindString
		case isDigit(c):
			for end < len(src) && isNumberByte(src[end]) {
				end++
			}

			kind = KindNumber
		case isIdentStart(c):
			for end < len(src) && isIdentByte(src[end]) {
				end++
			}

			word := src[pos:end]
			if _, ok := stringPrefixes[word]; ok && end < len(src) && src[end] == '"' {
				end = quotedEnd(src, end+1, '"')
				kind = KindString
			} else if _, ok := keywords[word]; ok {
				kind = KindKeyword
			} else {
				kind = KindIdentifier
			}
		default:
			for _, op := range operators {
				if strings.HasPrefix(src[pos:], op) {
					end = pos + len(op)
					kind = KindOperator

					break
				}
			}
		}

		lineStart = false
		tokens = append(tokens, Token{Kind: kind, Text: src[pos:end]})
		pos = end
	}

	return tokens
}

// quotedEnd returns the offset just past the closing quote, or len(src) when
// the literal is not closed on its line.
func quotedEnd(src string, pos int, quote byte) int {
	for pos < len(src) {
		switch src[pos] {
		case '\\':
			pos += 2
			continue
		case '\n':
			return pos
		case quote:
			return pos + 1
		}

		pos++
	}

	return len(src)
}

func lineEnd(src string, pos int) int {
	if idx := strings.IndexByte(src[pos:], '\n'); idx >= 0 {
		return pos + idx
	}

	return len(src)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberByte accepts hex digits, suffixes and the radix point.
func isNumberByte(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') ||
		strings.IndexByte("xXuUlL.", c) >= 0
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
