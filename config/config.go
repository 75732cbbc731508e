// Package config loads batch generation jobs from TOML, YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"mesh-generator/generator"
	"mesh-generator/math"
	"mesh-generator/scene"
)

// Output formats understood by the batch runner.
const (
	FormatGLB  = "glb"
	FormatGLTF = "gltf"
	FormatOBJ  = "obj"
)

var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Job is one batch file: global settings plus the meshes to build.
type Job struct {
	LogLevel  string     `toml:"log_level" yaml:"log_level" json:"log_level"`
	OutputDir string     `toml:"output_dir" yaml:"output_dir" json:"output_dir"`
	Workers   int        `toml:"workers" yaml:"workers" json:"workers"`
	Meshes    []MeshSpec `toml:"mesh" yaml:"mesh" json:"mesh"`
}

// MeshSpec describes one output mesh. Exactly one of Shape, SuperShape or
// HeightMap selects the source.
type MeshSpec struct {
	Name       string `toml:"name" yaml:"name" json:"name"`
	Shape      string `toml:"shape" yaml:"shape" json:"shape"`
	SuperShape string `toml:"supershape" yaml:"supershape" json:"supershape"`
	HeightMap  string `toml:"heightmap" yaml:"heightmap" json:"heightmap"`

	// Zero values fall back to the generator defaults.
	Segments         int     `toml:"segments" yaml:"segments" json:"segments"`
	Radius           float32 `toml:"radius" yaml:"radius" json:"radius"`
	OuterRadius      float32 `toml:"outer_radius" yaml:"outer_radius" json:"outer_radius"`
	RotationDegree   float32 `toml:"rotation_degree" yaml:"rotation_degree" json:"rotation_degree"`
	RotationDistance float32 `toml:"rotation_distance" yaml:"rotation_distance" json:"rotation_distance"`

	NoCap   bool       `toml:"no_cap" yaml:"no_cap" json:"no_cap"`
	Flat    bool       `toml:"flat" yaml:"flat" json:"flat"`
	Dynamic bool       `toml:"dynamic" yaml:"dynamic" json:"dynamic"`
	Seed    uint64     `toml:"seed" yaml:"seed" json:"seed"`
	Turn    [3]float32 `toml:"turn" yaml:"turn" json:"turn"` // euler degrees applied after generation
	Format  string     `toml:"format" yaml:"format" json:"format"`
}

// Load reads a job file, choosing the decoder from the file extension.
// Unknown keys are rejected. Defaults are applied and the job validated.
// A relative output_dir is taken relative to the job file.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open job file: %w", err)
	}
	defer f.Close()

	job, err := Decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !filepath.IsAbs(job.OutputDir) {
		job.OutputDir = filepath.Join(filepath.Dir(path), job.OutputDir)
	}
	return job, nil
}

// Decode parses a job in the format named by ext (".toml", ".yaml", ".yml"
// or ".json").
func Decode(r io.Reader, ext string) (*Job, error) {
	job := &Job{}
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(job)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(job)
	case ".json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(job)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}

	job.applyDefaults()
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

func (j *Job) applyDefaults() {
	if j.LogLevel == "" {
		j.LogLevel = "info"
	}
	if j.OutputDir == "" {
		j.OutputDir = "."
	}
	if j.Workers <= 0 {
		j.Workers = runtime.NumCPU()
	}
	for i := range j.Meshes {
		m := &j.Meshes[i]
		if m.Format == "" {
			m.Format = FormatGLB
		}
		m.Format = strings.ToLower(m.Format)
		if m.Name == "" {
			m.Name = fmt.Sprintf("mesh%d", i)
		}
	}
}

// Validate reports the first problem found in the job.
func (j *Job) Validate() error {
	if _, err := j.Level(); err != nil {
		return err
	}
	if len(j.Meshes) == 0 {
		return errors.New("job has no meshes")
	}

	seen := make(map[string]bool, len(j.Meshes))
	for i, m := range j.Meshes {
		if seen[m.Name] {
			return fmt.Errorf("mesh %d: duplicate name %q", i, m.Name)
		}
		seen[m.Name] = true
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mesh %q: %w", m.Name, err)
		}
	}
	return nil
}

// Level parses LogLevel as a slog level name.
func (j *Job) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(j.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// OutputPath is where the mesh is written.
func (j *Job) OutputPath(m MeshSpec) string {
	return filepath.Join(j.OutputDir, m.Name+"."+m.Format)
}

// Validate checks one mesh entry in isolation.
func (m MeshSpec) Validate() error {
	sources := 0
	for _, s := range []string{m.Shape, m.SuperShape, m.HeightMap} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return errors.New("exactly one of shape, supershape or heightmap must be set")
	}

	switch m.Format {
	case FormatGLB, FormatGLTF, FormatOBJ:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, m.Format)
	}

	if m.Segments < 0 {
		return fmt.Errorf("%w: %d", generator.ErrInvalidSegments, m.Segments)
	}
	if m.Radius < 0 || m.OuterRadius < 0 {
		return fmt.Errorf("%w: %g / %g", generator.ErrInvalidRadius, m.Radius, m.OuterRadius)
	}

	if m.Shape != "" {
		if _, err := generator.ParseKind(m.Shape); err != nil {
			return err
		}
	}
	if m.SuperShape != "" {
		if _, err := generator.ParsePreset(m.SuperShape); err != nil {
			return err
		}
	}
	return nil
}

// Kind resolves the shape name.
func (m MeshSpec) Kind() (generator.Kind, error) {
	return generator.ParseKind(m.Shape)
}

// Preset resolves the supershape preset name.
func (m MeshSpec) Preset() (generator.Preset, error) {
	return generator.ParsePreset(m.SuperShape)
}

// Construct maps the entry onto generator parameters. Unset fields keep
// the generator defaults; an explicit radius without an outer radius
// follows the single-radius rule of NewConstruct.
func (m MeshSpec) Construct() generator.Construct {
	c := generator.DefaultConstruct()
	if m.Segments > 0 {
		c.SegmentsVert = m.Segments
		c.SegmentsHorz = m.Segments
	}
	if m.Radius > 0 {
		c.RadiusInner = m.Radius
		c.RadiusOuter = m.Radius / 2
	}
	if m.OuterRadius > 0 {
		c.RadiusOuter = m.OuterRadius
	}
	if m.RotationDegree != 0 {
		c.RotationDegree = m.RotationDegree
	}
	if m.RotationDistance != 0 {
		c.RotationDistance = m.RotationDistance
	}
	c.HasCap = !m.NoCap
	if m.Flat {
		c.Shading = scene.ShadingFlat
	}
	c.DynamicTeapot = m.Dynamic
	return c
}

// TurnAngles returns Turn as a vector, zero when no turn is configured.
func (m MeshSpec) TurnAngles() math.Vec3 {
	return math.NewVec3(m.Turn[0], m.Turn[1], m.Turn[2])
}
