package codegen

import (
	m "efitest.dev/pkg/efitest/internal/model"
)

// Unit pairs a target with the source text it was discovered in.
type Unit struct {
	Target m.Target
	Source []byte
}

// RenderAll renders every artifact of a discovery run: one header per target,
// the init unit, then one translation unit per target. Names are checked
// before anything is rendered.
func RenderAll(outDir m.Path, units []Unit) ([]m.Artifact, error) {
	targets := make([]m.Target, 0, len(units))
	for _, unit := range units {
		targets = append(targets, unit.Target)
	}

	if err := CheckNames(targets); err != nil {
		return nil, err
	}

	artifacts := make([]m.Artifact, 0, 2*len(units)+1)

	for _, target := range targets {
		artifacts = append(artifacts, RenderHeader(target))
	}

	artifacts = append(artifacts, RenderInit(outDir, targets))

	for _, unit := range units {
		artifacts = append(artifacts, RenderTranslationUnit(outDir, unit.Target, unit.Source))
	}

	return artifacts, nil
}
