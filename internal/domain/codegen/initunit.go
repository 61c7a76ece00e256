package codegen

import (
	"fmt"
	"path/filepath"
	"strings"

	m "efitest.dev/pkg/efitest/internal/model"
)

// RenderInit renders the aggregated init unit: every generated header is
// included and efitest_run_tests runs each target as one group, in order.
func RenderInit(outDir m.Path, targets []m.Target) m.Artifact {
	var b strings.Builder

	b.WriteString(Banner(SourceComment))
	b.WriteString("#include <efitest/efitest.h>\n")

	for _, target := range targets {
		fmt.Fprintf(&b, "#include %s\n", cString(filepath.Base(string(target.HeaderPath))))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "void %s(EFITestContext* context) {\n", RunFunctionName)
	b.WriteString("\tefitest_on_pre_run_tests(context);\n")

	for _, target := range targets {
		fmt.Fprintf(&b, "\tcontext->file_path = %s;\n", cString(string(target.SourcePath)))
		fmt.Fprintf(&b, "\tcontext->file_name = %s;\n", cString(filepath.Base(string(target.SourcePath))))
		fmt.Fprintf(&b, "\tcontext->group_name = %s;\n", cString(Stem(target.SourcePath)))
		fmt.Fprintf(&b, "\tcontext->group_size = %d;\n", len(target.Tests))
		b.WriteString("\tefitest_on_pre_run_group(context);\n")

		for _, test := range target.Tests {
			fmt.Fprintf(&b, "\t%s(context);\n", FunctionName(target, test))
		}

		b.WriteString("\tefitest_on_post_run_group(context);\n")
	}

	b.WriteString("\tefitest_on_post_run_tests(context);\n")
	b.WriteString("}\n")

	path := filepath.Join(string(outDir), InitFileName)

	return m.Artifact{Path: m.Path(path), Content: []byte(b.String())}
}
