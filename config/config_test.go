package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-generator/generator"
	"mesh-generator/scene"
)

const tomlJob = `
log_level = "debug"
output_dir = "build"
workers = 2

[[mesh]]
name = "ball"
shape = "sphere"
segments = 12
radius = 2.0
flat = true

[[mesh]]
name = "crystal"
supershape = "small_crystal1"
format = "OBJ"
turn = [-90.0, 0.0, 0.0]
`

const yamlJob = `
log_level: warn
mesh:
  - name: pot
    shape: teapot
    dynamic: true
    segments: 4
  - shape: torus-knot
    outer_radius: 0.1
    no_cap: true
`

const jsonJob = `{
  "workers": 1,
  "mesh": [{"name": "ground", "heightmap": "ground.png", "segments": 32, "format": "gltf"}]
}`

func TestDecodeTOML(t *testing.T) {
	job, err := Decode(strings.NewReader(tomlJob), ".toml")
	require.NoError(t, err)

	assert.Equal(t, "build", job.OutputDir)
	assert.Equal(t, 2, job.Workers)
	require.Len(t, job.Meshes, 2)

	lvl, err := job.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	ball := job.Meshes[0]
	kind, err := ball.Kind()
	require.NoError(t, err)
	assert.Equal(t, generator.Sphere, kind)
	assert.Equal(t, FormatGLB, ball.Format)
	assert.Equal(t, filepath.Join("build", "ball.glb"), job.OutputPath(ball))

	crystal := job.Meshes[1]
	assert.Equal(t, FormatOBJ, crystal.Format)
	preset, err := crystal.Preset()
	require.NoError(t, err)
	assert.Equal(t, generator.SmallCrystal1, preset)
	assert.Equal(t, float32(-90), crystal.TurnAngles().X)
}

func TestDecodeYAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml", ".YAML"} {
		job, err := Decode(strings.NewReader(yamlJob), ext)
		require.NoError(t, err, ext)

		assert.Equal(t, ".", job.OutputDir)
		assert.Equal(t, runtime.NumCPU(), job.Workers)
		require.Len(t, job.Meshes, 2)
		assert.Equal(t, "mesh1", job.Meshes[1].Name)
		assert.True(t, job.Meshes[0].Dynamic)
		assert.True(t, job.Meshes[1].NoCap)
	}
}

func TestDecodeJSON(t *testing.T) {
	job, err := Decode(strings.NewReader(jsonJob), ".json")
	require.NoError(t, err)

	lvl, err := job.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
	require.Len(t, job.Meshes, 1)
	assert.Equal(t, "ground.png", job.Meshes[0].HeightMap)
	assert.Equal(t, FormatGLTF, job.Meshes[0].Format)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		ext, doc string
	}{
		{".toml", "colour = \"red\"\n[[mesh]]\nshape = \"cube\"\n"},
		{".yaml", "colour: red\nmesh:\n  - shape: cube\n"},
		{".json", `{"colour": "red", "mesh": [{"shape": "cube"}]}`},
	}
	for _, tt := range tests {
		_, err := Decode(strings.NewReader(tt.doc), tt.ext)
		assert.Error(t, err, tt.ext)
	}
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	_, err := Decode(strings.NewReader(""), ".ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want error
	}{
		{"no meshes", Job{}, nil},
		{"bad level", Job{LogLevel: "loud", Meshes: []MeshSpec{{Shape: "cube"}}}, nil},
		{"two sources", Job{Meshes: []MeshSpec{{Shape: "cube", SuperShape: "urchin1"}}}, nil},
		{"no source", Job{Meshes: []MeshSpec{{Name: "x"}}}, nil},
		{"unknown shape", Job{Meshes: []MeshSpec{{Shape: "blob"}}}, generator.ErrUnknownShape},
		{"unknown preset", Job{Meshes: []MeshSpec{{SuperShape: "blob"}}}, generator.ErrUnknownPreset},
		{"negative segments", Job{Meshes: []MeshSpec{{Shape: "cube", Segments: -3}}}, generator.ErrInvalidSegments},
		{"negative radius", Job{Meshes: []MeshSpec{{Shape: "cube", Radius: -1}}}, generator.ErrInvalidRadius},
		{"bad format", Job{Meshes: []MeshSpec{{Shape: "cube", Format: "stl"}}}, ErrUnsupportedFormat},
		{"duplicate names", Job{Meshes: []MeshSpec{{Name: "a", Shape: "cube"}, {Name: "a", Shape: "cone"}}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.job.applyDefaults()
			err := tt.job.Validate()
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestMeshSpecConstruct(t *testing.T) {
	def := MeshSpec{Shape: "cube"}.Construct()
	assert.Equal(t, generator.DefaultConstruct(), def)

	c := MeshSpec{
		Shape:            "torus",
		Segments:         10,
		Radius:           2,
		NoCap:            true,
		Flat:             true,
		Dynamic:          true,
		RotationDegree:   720,
		RotationDistance: 3,
	}.Construct()
	assert.Equal(t, 10, c.SegmentsVert)
	assert.Equal(t, 10, c.SegmentsHorz)
	assert.Equal(t, float32(2), c.RadiusInner)
	assert.Equal(t, float32(1), c.RadiusOuter)
	assert.False(t, c.HasCap)
	assert.Equal(t, scene.ShadingFlat, c.Shading)
	assert.True(t, c.DynamicTeapot)
	assert.Equal(t, float32(720), c.RotationDegree)
	assert.Equal(t, float32(3), c.RotationDistance)

	outer := MeshSpec{Shape: "torus", Radius: 2, OuterRadius: 0.3}.Construct()
	assert.Equal(t, float32(0.3), outer.RadiusOuter)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlJob), 0o644))

	job, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, job.Meshes, 2)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
