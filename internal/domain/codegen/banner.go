package codegen

import "strings"

// Comment prefixes for the two artifact languages.
const (
	SourceComment = "//"
	ScriptComment = "#"
)

// Banner returns the "do not modify" block that opens every generated file.
func Banner(comment string) string {
	rule := comment + " ===================================="

	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString(comment + " GENERATED BY EFITEST - DO NOT MODIFY\n")
	b.WriteString(rule + "\n\n")

	return b.String()
}

// InjectedSeparator marks where copied content ends and generated code begins.
func InjectedSeparator(comment string) string {
	return comment + " ========== BEGIN INJECTED CODE ==========\n\n"
}

// withTrailingNewline guarantees content ends in a newline so generated text
// always starts on a fresh line.
func withTrailingNewline(content []byte) string {
	text := string(content)
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return text
}

// cString renders s as a C string literal.
func cString(s string) string {
	var b strings.Builder

	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte('"')

	return b.String()
}
