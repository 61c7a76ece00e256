// Package codegen renders the C artifacts derived from discovered targets
// and the script produced by the injector.
package codegen

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	m "efitest.dev/pkg/efitest/internal/model"
)

const (
	// HeaderExtension is appended to a source stem to name its header.
	HeaderExtension = ".h"
	// InitFileName is the reserved name of the aggregated init unit.
	InitFileName = "init.c"
	// RunFunctionName is the orchestration function defined in the init unit.
	RunFunctionName = "efitest_run_tests"
)

// ErrNameCollision reports two targets or tests that would map to the same
// generated identifier or artifact.
var ErrNameCollision = errors.New("generated name collision")

// Stem returns the file name of path cut at its first dot.
func Stem(path m.Path) string {
	base := filepath.Base(string(path))
	if idx := strings.IndexByte(base, '.'); idx > 0 {
		return base[:idx]
	}

	return base
}

// Identifier maps every byte outside [A-Za-z0-9_] to an underscore.
func Identifier(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('_')
	}

	return b.String()
}

// FunctionName returns the trampoline identifier for a test of target.
func FunctionName(target m.Target, test m.Test) string {
	return fmt.Sprintf("__%s_%s", Identifier(Stem(target.SourcePath)), test.Name)
}

// HeaderPath derives the header location for source inside outDir.
func HeaderPath(outDir, source m.Path) m.Path {
	return m.Path(filepath.Join(string(outDir), Stem(source)+HeaderExtension))
}

// CheckNames verifies that no two targets write to the same artifact and
// that every trampoline identifier in the run is unique.
func CheckNames(targets []m.Target) error {
	outputs := map[string]m.Path{InitFileName: ""}
	functions := make(map[string]m.Path)

	for _, target := range targets {
		header := Stem(target.SourcePath) + HeaderExtension
		unit := filepath.Base(string(target.SourcePath))

		for _, name := range []string{header, unit} {
			if other, ok := outputs[name]; ok {
				if other == "" {
					return fmt.Errorf("%w: %s would overwrite the reserved %s", ErrNameCollision, target.SourcePath, name)
				}

				return fmt.Errorf("%w: %s and %s both generate %s", ErrNameCollision, other, target.SourcePath, name)
			}

			outputs[name] = target.SourcePath
		}

		for _, test := range target.Tests {
			name := FunctionName(target, test)
			if other, ok := functions[name]; ok {
				return fmt.Errorf("%w: %s is generated for both %s and %s", ErrNameCollision, name, other, target.SourcePath)
			}

			functions[name] = target.SourcePath
		}
	}

	return nil
}
