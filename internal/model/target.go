package model

// Test is a single test declaration found in a source file.
type Test struct {
	// Name is the declared test function name. It never contains newline or
	// tab characters.
	Name string
	// LineNumber is the 1-based physical line of the declared name.
	LineNumber int
}

// Target is one discovered input file together with its derived paths and
// the tests it declares, in declaration order.
type Target struct {
	SourcePath Path
	HeaderPath Path
	Tests      []Test
}

// TestCount returns the total number of tests across targets.
func TestCount(targets []Target) int {
	count := 0
	for _, target := range targets {
		count += len(target.Tests)
	}

	return count
}
