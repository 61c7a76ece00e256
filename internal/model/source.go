// Package model defines the data structures shared by the discovery and
// injection pipelines.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Artifact is one rendered output file. Rendering produces artifacts without
// touching the disk; writing them is a separate step.
type Artifact struct {
	Path    Path
	Content []byte
}
