package model

// ManifestVersion is the schema version written into new manifests.
const ManifestVersion = 1

// Manifest records the outcome of one discovery run.
type Manifest struct {
	Version int              `yaml:"version"`
	Output  Path             `yaml:"output"`
	Targets []ManifestTarget `yaml:"targets"`
}

// ManifestTarget is the manifest entry for a single source file.
type ManifestTarget struct {
	Source Path           `yaml:"source"`
	Hash   string         `yaml:"hash"`
	Header Path           `yaml:"header"`
	Tests  []ManifestTest `yaml:"tests"`
}

// ManifestTest is the manifest entry for a single test.
type ManifestTest struct {
	Name     string `yaml:"name"`
	Line     int    `yaml:"line"`
	Function string `yaml:"function"`
}

// TargetList rebuilds the target list described by the manifest.
func (mf Manifest) TargetList() []Target {
	targets := make([]Target, 0, len(mf.Targets))
	for _, entry := range mf.Targets {
		target := Target{SourcePath: entry.Source, HeaderPath: entry.Header}
		for _, test := range entry.Tests {
			target.Tests = append(target.Tests, Test{Name: test.Name, LineNumber: test.Line})
		}

		targets = append(targets, target)
	}

	return targets
}
