// Package macros parses the efitest_* macros of a CMake build script and
// renders them in their original and CMake-native forms.
package macros

import (
	"log/slog"

	m "efitest.dev/pkg/efitest/internal/model"
)

// Parse returns every recognized macro invocation in src, in order. A '#'
// outside an invocation comments out the rest of its line. Unknown commands
// are skipped. path is only used to locate errors.
func Parse(path m.Path, src []byte) ([]m.Invocation, error) {
	c := newCursor(string(src))

	var invocations []m.Invocation

	inComment := false

	for !c.eof() {
		if inComment {
			if c.peek() == '\n' {
				inComment = false
			}

			c.advance()

			continue
		}

		if c.peek() == '#' {
			inComment = true

			c.advance()

			continue
		}

		if !c.atWordStart() {
			c.advance()
			continue
		}

		line := c.line
		name := c.word()

		kind, ok := m.LookupMacro(name)
		if !ok {
			continue
		}

		c.skipSpace()

		if c.peek() != '(' {
			slog.Debug("Ignoring macro name without call", "path", path, "name", name, "line", line)
			continue
		}

		c.advance()

		invocation, syntaxErr := parseInvocation(c, kind)
		if syntaxErr != nil {
			syntaxErr.Path = path
			if syntaxErr.Line == 0 {
				syntaxErr.Line = line
			}

			slog.Error("Failed to parse macro invocation", "path", path, "macro", name, "line", line, "error", syntaxErr)

			return nil, syntaxErr
		}

		slog.Debug("Parsed macro invocation", "path", path, "macro", name, "line", line)

		invocations = append(invocations, invocation)
	}

	return invocations, nil
}

func parseInvocation(c *cursor, kind m.MacroKind) (m.Invocation, *m.SyntaxError) {
	line := c.line
	invocation := m.Invocation{Shape: kind.Shape(), Kind: kind}

	if invocation.Shape == m.ShapeTargeted {
		target, err := c.token()
		if err != nil {
			return m.Invocation{}, err
		}

		if target == "" {
			return m.Invocation{}, &m.SyntaxError{Line: line, Reason: kind.Name() + " is missing its target", Err: m.ErrMalformed}
		}

		access, err := c.token()
		if err != nil {
			return m.Invocation{}, err
		}

		args, err := c.rest()
		if err != nil {
			return m.Invocation{}, err
		}

		invocation.Target = target
		invocation.Access = access
		invocation.Args = args

		return invocation, nil
	}

	name, err := c.token()
	if err != nil {
		return m.Invocation{}, err
	}

	if name == "" {
		return m.Invocation{}, &m.SyntaxError{Line: line, Reason: kind.Name() + " is missing its variable name", Err: m.ErrMalformed}
	}

	rest, err := c.rest()
	if err != nil {
		return m.Invocation{}, err
	}

	invocation.Args = []string{name}

	switch kind {
	case m.KindSet:
		invocation.Args = append(invocation.Args, rest...)
	default:
		if len(rest) > 0 {
			slog.Debug("Dropping extra arguments", "macro", kind.Name(), "arguments", rest)
		}
	}

	return invocation, nil
}
