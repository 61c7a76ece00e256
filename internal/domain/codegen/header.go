package codegen

import (
	"fmt"
	"strings"

	m "efitest.dev/pkg/efitest/internal/model"
)

// RenderHeader renders the forward declarations of every trampoline of target.
func RenderHeader(target m.Target) m.Artifact {
	var b strings.Builder

	b.WriteString(Banner(SourceComment))
	b.WriteString("#pragma once\n\n")
	b.WriteString("#include <efitest/efitest.h>\n\n")

	for _, test := range target.Tests {
		fmt.Fprintf(&b, "void %s(EFITestContext* context);\n", FunctionName(target, test))
	}

	return m.Artifact{Path: target.HeaderPath, Content: []byte(b.String())}
}
