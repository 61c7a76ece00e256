package macros

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "efitest.dev/pkg/efitest/internal/model"
)

type parseTest struct {
	name   string
	input  string
	output []m.Invocation
}

var parseTests = []parseTest{
	{
		"empty",
		"",
		nil,
	},
	{
		"link libraries",
		"efitest_link_libraries(mytarget PUBLIC foo bar)\n",
		[]m.Invocation{{Shape: m.ShapeTargeted, Kind: m.KindLinkLibraries, Target: "mytarget", Access: "PUBLIC", Args: []string{"foo", "bar"}}},
	},
	{
		"set with quoted value",
		`efitest_set(MY_VAR "hello world")` + "\n",
		[]m.Invocation{{Shape: m.ShapeSimple, Kind: m.KindSet, Args: []string{"MY_VAR", `"hello world"`}}},
	},
	{
		"quoted value keeps parenthesis and escaped quote",
		`efitest_set(MSG "a ) \" b" tail)`,
		[]m.Invocation{{Shape: m.ShapeSimple, Kind: m.KindSet, Args: []string{"MSG", `"a ) \" b"`, "tail"}}},
	},
	{
		"quoted target",
		`efitest_include_directories("my target" PRIVATE include)`,
		[]m.Invocation{{Shape: m.ShapeTargeted, Kind: m.KindIncludeDirectories, Target: `"my target"`, Access: "PRIVATE", Args: []string{"include"}}},
	},
	{
		"unset drops extra arguments",
		"efitest_unset(MY_VAR PARENT_SCOPE)",
		[]m.Invocation{{Shape: m.ShapeSimple, Kind: m.KindUnset, Args: []string{"MY_VAR"}}},
	},
	{
		"arguments across lines",
		"efitest_compile_options(kernel\n    PRIVATE\n    -ffreestanding\n    -fno-stack-protector\n)\n",
		[]m.Invocation{{Shape: m.ShapeTargeted, Kind: m.KindCompileOptions, Target: "kernel", Access: "PRIVATE", Args: []string{"-ffreestanding", "-fno-stack-protector"}}},
	},
	{
		"target without access",
		"efitest_compile_definitions(kernel)",
		[]m.Invocation{{Shape: m.ShapeTargeted, Kind: m.KindCompileDefinitions, Target: "kernel"}},
	},
	{
		"space before parenthesis",
		"efitest_set (X 1)",
		[]m.Invocation{{Shape: m.ShapeSimple, Kind: m.KindSet, Args: []string{"X", "1"}}},
	},
	{
		"hash comment hides macro",
		"# efitest_set(HIDDEN 1)\nefitest_set(SHOWN 2)\n",
		[]m.Invocation{{Shape: m.ShapeSimple, Kind: m.KindSet, Args: []string{"SHOWN", "2"}}},
	},
	{
		"trailing comment",
		"efitest_set(A 1) # efitest_set(B 2)\n",
		[]m.Invocation{{Shape: m.ShapeSimple, Kind: m.KindSet, Args: []string{"A", "1"}}},
	},
	{
		"unknown commands are skipped",
		"project(demo C)\nadd_executable(demo main.c)\nefitest_set_property(X)\nmy_efitest_set(Y 1)\nefitest_unknown(Z)\n",
		nil,
	},
	{
		"macro name without call is ignored",
		"set(efitest_set 1)\n",
		nil,
	},
	{
		"order is preserved",
		"efitest_set(A 1)\nefitest_link_libraries(t PUBLIC x)\nefitest_unset(A)\n",
		[]m.Invocation{
			{Shape: m.ShapeSimple, Kind: m.KindSet, Args: []string{"A", "1"}},
			{Shape: m.ShapeTargeted, Kind: m.KindLinkLibraries, Target: "t", Access: "PUBLIC", Args: []string{"x"}},
			{Shape: m.ShapeSimple, Kind: m.KindUnset, Args: []string{"A"}},
		},
	},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse("CMakeLists.txt", []byte(tt.input))
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if diff := cmp.Diff(tt.output, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    int
	}{
		{"missing closing parenthesis", "efitest_link_libraries(t PUBLIC foo", m.ErrUnterminated, 1},
		{"missing closing parenthesis after newline", "\nefitest_set(A 1\n", m.ErrUnterminated, 3},
		{"missing closing quote", "efitest_set(A \"open)\n", m.ErrUnterminated, 1},
		{"missing target", "efitest_link_libraries()", m.ErrMalformed, 1},
		{"missing variable name", "\n\nefitest_unset( )", m.ErrMalformed, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse("CMakeLists.txt", []byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)

			var syntaxErr *m.SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, m.Path("CMakeLists.txt"), syntaxErr.Path)
			assert.Equal(t, tt.line, syntaxErr.Line)
		})
	}
}
