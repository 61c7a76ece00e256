package codegen

import (
	"strings"

	"efitest.dev/pkg/efitest/internal/domain/macros"
	m "efitest.dev/pkg/efitest/internal/model"
)

// RenderScript renders the injected build script: the input copied verbatim,
// then the CMake-native form of every invocation, one per line.
func RenderScript(outPath m.Path, input []byte, invocations []m.Invocation) m.Artifact {
	var b strings.Builder

	b.WriteString(Banner(ScriptComment))
	b.WriteString(withTrailingNewline(input))
	b.WriteString("\n")
	b.WriteString(InjectedSeparator(ScriptComment))

	for _, invocation := range invocations {
		b.WriteString(macros.RenderTransformed(invocation))
		b.WriteString("\n")
	}

	return m.Artifact{Path: outPath, Content: []byte(b.String())}
}
