package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"mesh-generator/config"
	"mesh-generator/generator"
	"mesh-generator/math"
	"mesh-generator/scene"
)

const defaultHeightFieldSegments = 64

// buildMesh produces the mesh described by spec. Height map paths are
// resolved against baseDir.
func buildMesh(gen *generator.Generator, spec config.MeshSpec, baseDir string) (*scene.Mesh, error) {
	var (
		m   *scene.Mesh
		err error
	)
	switch {
	case spec.Shape != "":
		m, err = buildShape(gen, spec)
	case spec.SuperShape != "":
		m, err = buildSuperShape(gen, spec)
	case spec.HeightMap != "":
		m, err = buildHeightField(gen, spec, baseDir)
	default:
		err = fmt.Errorf("mesh %q has no source", spec.Name)
	}
	if err != nil {
		return nil, err
	}

	if turn := spec.TurnAngles(); turn != (math.Vec3{}) {
		m.Turn(turn)
	}
	if spec.Name != "" {
		m.Name = spec.Name
	}
	return m, nil
}

func buildShape(gen *generator.Generator, spec config.MeshSpec) (*scene.Mesh, error) {
	kind, err := spec.Kind()
	if err != nil {
		return nil, err
	}
	return gen.NewMesh(kind, spec.Construct())
}

func buildSuperShape(gen *generator.Generator, spec config.MeshSpec) (*scene.Mesh, error) {
	preset, err := spec.Preset()
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if spec.Seed != 0 {
		rng = rand.New(rand.NewPCG(spec.Seed, spec.Seed))
	}
	values, err := generator.SuperShapeValues(preset, rng)
	if err != nil {
		return nil, err
	}

	segments := spec.Segments
	if segments <= 0 {
		segments = generator.DefaultSuperShapeSegments
	}
	m := scene.NewMesh(preset.String())
	if spec.Flat {
		m.SetShading(scene.ShadingFlat)
	}
	if err := gen.SuperShape(m, values, segments); err != nil {
		return nil, err
	}
	return m, nil
}

func buildHeightField(gen *generator.Generator, spec config.MeshSpec, baseDir string) (*scene.Mesh, error) {
	path := spec.HeightMap
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	tex, err := scene.LoadTexture(path)
	if err != nil {
		return nil, err
	}

	segments := spec.Segments
	if segments <= 0 {
		segments = defaultHeightFieldSegments
	}
	m := gen.HeightField(tex, segments)
	if m.IsEmpty() {
		return nil, fmt.Errorf("height map %q produced no geometry", spec.HeightMap)
	}
	return m, nil
}
