package macros

import (
	"strings"

	m "efitest.dev/pkg/efitest/internal/model"
)

// RenderOriginal renders the invocation as it was written, using its
// efitest_* macro name.
func RenderOriginal(invocation m.Invocation) string {
	return render(invocation.Kind.Name(), invocation)
}

// RenderTransformed renders the invocation as the CMake-native command it
// stands for.
func RenderTransformed(invocation m.Invocation) string {
	return render(invocation.Kind.NativeName(), invocation)
}

func render(function string, invocation m.Invocation) string {
	parts := make([]string, 0, len(invocation.Args)+2)

	if invocation.Shape == m.ShapeTargeted {
		parts = append(parts, invocation.Target, invocation.Access)
	}

	parts = append(parts, invocation.Args...)

	nonEmpty := parts[:0]

	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return function + "(" + strings.Join(nonEmpty, " ") + ")"
}
