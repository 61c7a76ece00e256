package model

// MacroKind identifies one of the build-script macros the injector understands.
type MacroKind int

// The closed set of recognized macro kinds.
const (
	KindIncludeDirectories MacroKind = iota
	KindLinkLibraries
	KindCompileOptions
	KindCompileDefinitions
	KindSet
	KindUnset
)

// Shape tells which fields of an Invocation are populated.
type Shape int

const (
	// ShapeSimple invocations carry only an argument list (set, unset).
	ShapeSimple Shape = iota
	// ShapeTargeted invocations carry a target name and an access qualifier
	// ahead of their argument list.
	ShapeTargeted
)

// Invocation is one recognized macro call in a build script.
type Invocation struct {
	Shape Shape
	Kind  MacroKind
	// Target and Access are set for ShapeTargeted only.
	Target string
	Access string
	Args   []string
}

var macroKindsByName = map[string]MacroKind{
	"efitest_include_directories": KindIncludeDirectories,
	"efitest_link_libraries":      KindLinkLibraries,
	"efitest_compile_options":     KindCompileOptions,
	"efitest_compile_definitions": KindCompileDefinitions,
	"efitest_set":                 KindSet,
	"efitest_unset":               KindUnset,
}

var macroNames = map[MacroKind]string{
	KindIncludeDirectories: "efitest_include_directories",
	KindLinkLibraries:      "efitest_link_libraries",
	KindCompileOptions:     "efitest_compile_options",
	KindCompileDefinitions: "efitest_compile_definitions",
	KindSet:                "efitest_set",
	KindUnset:              "efitest_unset",
}

var nativeNames = map[MacroKind]string{
	KindIncludeDirectories: "target_include_directories",
	KindLinkLibraries:      "target_link_libraries",
	KindCompileOptions:     "target_compile_options",
	KindCompileDefinitions: "target_compile_definitions",
	KindSet:                "set",
	KindUnset:              "unset",
}

// LookupMacro returns the kind registered for a macro name.
func LookupMacro(name string) (MacroKind, bool) {
	kind, ok := macroKindsByName[name]
	return kind, ok
}

// MacroNames returns every recognized macro name. The order is unspecified.
func MacroNames() []string {
	names := make([]string, 0, len(macroKindsByName))
	for name := range macroKindsByName {
		names = append(names, name)
	}

	return names
}

// Name returns the efitest_* spelling of the kind.
func (k MacroKind) Name() string {
	return macroNames[k]
}

// NativeName returns the CMake-native command the kind translates to.
func (k MacroKind) NativeName() string {
	return nativeNames[k]
}

// Shape returns the invocation shape used by the kind.
func (k MacroKind) Shape() Shape {
	switch k {
	case KindIncludeDirectories, KindLinkLibraries, KindCompileOptions, KindCompileDefinitions:
		return ShapeTargeted
	default:
		return ShapeSimple
	}
}

func (k MacroKind) String() string {
	return k.Name()
}
