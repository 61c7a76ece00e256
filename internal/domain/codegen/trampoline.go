package codegen

import (
	"fmt"
	"path/filepath"
	"strings"

	m "efitest.dev/pkg/efitest/internal/model"
)

// RenderTranslationUnit renders a copy of source followed by one trampoline
// per test. The unit is placed in outDir under the original file name.
func RenderTranslationUnit(outDir m.Path, target m.Target, source []byte) m.Artifact {
	var b strings.Builder

	b.WriteString(Banner(SourceComment))
	b.WriteString(withTrailingNewline(source))
	b.WriteString("\n")
	b.WriteString(InjectedSeparator(SourceComment))
	fmt.Fprintf(&b, "#include %s\n\n", cString(filepath.Base(string(target.HeaderPath))))

	for index, test := range target.Tests {
		writeTrampoline(&b, target, test, index)
		b.WriteString("\n")
	}

	path := filepath.Join(string(outDir), filepath.Base(string(target.SourcePath)))

	return m.Artifact{Path: m.Path(path), Content: []byte(b.String())}
}

// writeTrampoline emits reset, pre-hook, body and post-hook in that order.
func writeTrampoline(b *strings.Builder, target m.Target, test m.Test, index int) {
	fmt.Fprintf(b, "void %s(EFITestContext* context) {\n", FunctionName(target, test))
	fmt.Fprintf(b, "\tcontext->test_name = %s;\n", cString(test.Name))
	fmt.Fprintf(b, "\tcontext->line_number = %d;\n", test.LineNumber)
	fmt.Fprintf(b, "\tcontext->group_index = %d;\n", index)
	b.WriteString("\tcontext->failed = FALSE;\n")
	b.WriteString("\tefitest_on_pre_run_test(context);\n")
	fmt.Fprintf(b, "\t%s(context);\n", test.Name)
	b.WriteString("\tefitest_on_post_run_test(context);\n")
	b.WriteString("}\n")
}
