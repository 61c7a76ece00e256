package discovery

import (
	"log/slog"

	m "efitest.dev/pkg/efitest/internal/model"
)

// Marker is the literal token that declares a test.
const Marker = "ETEST_DEFINE_TEST"

// DiscoverTests returns every test declared in src, in file order. Declarations
// inside comments are ignored. path is only used to locate errors.
func DiscoverTests(path m.Path, src []byte) ([]m.Test, error) {
	text := string(src)
	scanner := NewScanner(text, Marker)

	var tests []m.Test

	for offset := range scanner.Markers() {
		result, syntaxErr := extract(text, offset, scanner.Line(), Marker)
		if syntaxErr != nil {
			syntaxErr.Path = path
			slog.Error("Failed to extract test declaration", "path", path, "line", syntaxErr.Line, "error", syntaxErr)

			return nil, syntaxErr
		}

		slog.Debug("Found test", "path", path, "name", result.test.Name, "line", result.test.LineNumber)

		tests = append(tests, result.test)
		scanner.Seek(result.end)
	}

	return tests, nil
}
