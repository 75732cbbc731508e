// Package generator builds procedural primitive meshes: the platonic and
// rounded solids, the Utah teapot, superformula shapes, Bézier patches,
// skyboxes and height fields.
package generator

import (
	"fmt"
	"log/slog"

	"mesh-generator/math"
	"mesh-generator/scene"
)

// Generator dispatches shape kinds to their builders. It keeps no state
// between calls and is safe for concurrent use; the meshes it fills are not.
type Generator struct {
	builders map[Kind]BuildFunc
	log      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger routes warnings and debug output to l.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithShape registers fn for k, replacing any built-in builder.
func WithShape(k Kind, fn BuildFunc) Option {
	return func(g *Generator) { g.builders[k] = fn }
}

// WithoutShape removes k from the capability table. Generating it then
// fails with ErrNotRegistered.
func WithoutShape(k Kind) Option {
	return func(g *Generator) { delete(g.builders, k) }
}

// New returns a Generator with every built-in shape registered, then applies opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		builders: defaultBuilders(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Has reports whether k can be generated.
func (g *Generator) Has(k Kind) bool {
	_, ok := g.builders[k]
	return ok
}

// Generate appends one surface holding the shape's geometry to mesh, then
// rebuilds its index buffer and normals. On error the mesh is left without
// a new surface.
func (g *Generator) Generate(mesh *scene.Mesh, kind Kind, c Construct) error {
	if mesh == nil {
		return ErrNilMesh
	}

	c = c.resolve(kind)
	if err := c.Validate(); err != nil {
		g.log.Warn("invalid construction parameters", "shape", kind, "err", err)
		return err
	}

	build, ok := g.builders[kind]
	if !ok {
		g.log.Warn("primitive not registered", "shape", kind)
		return fmt.Errorf("%w: %s", ErrNotRegistered, kind)
	}

	mesh.SetShading(c.Shading)
	ctx := &Context{
		Mesh:      mesh,
		Surface:   mesh.CreateSurface(),
		Construct: c,
	}
	build(ctx)

	mesh.RebuildIndexBuffer()
	mesh.RecomputeNormals()

	g.log.Debug("generated mesh",
		"shape", kind,
		"vertices", ctx.Surface.VertexCount(),
		"triangles", ctx.Surface.TriangleCount(),
		"lines", ctx.Surface.LineCount())
	return nil
}

// NewMesh allocates a mesh named after the kind and generates into it.
func (g *Generator) NewMesh(kind Kind, c Construct) (*scene.Mesh, error) {
	mesh := scene.NewMesh(kind.String())
	if err := g.Generate(mesh, kind, c); err != nil {
		return nil, err
	}
	return mesh, nil
}

// SuperShape appends a superformula surface with segments steps around and
// segments/2 rings from pole to pole, then recomputes normals.
func (g *Generator) SuperShape(mesh *scene.Mesh, values [12]float32, segments int) error {
	if mesh == nil {
		return ErrNilMesh
	}
	if segments <= 0 {
		g.log.Warn("invalid supershape segments", "segments", segments)
		return fmt.Errorf("%w: %d", ErrInvalidSegments, segments)
	}

	ctx := &Context{Mesh: mesh, Surface: mesh.CreateSurface()}
	ctx.superShapeSurface(values, segments)
	mesh.RecomputeNormals()

	g.log.Debug("generated supershape",
		"vertices", ctx.Surface.VertexCount(),
		"triangles", ctx.Surface.TriangleCount())
	return nil
}

// BezierPatch tessellates one bicubic patch into a new mesh. front picks
// the side the triangles face.
func (g *Generator) BezierPatch(anchors [4][4]math.Vec3, segments int, front bool) *scene.Mesh {
	mesh := scene.NewMesh("bezier")
	ctx := &Context{Mesh: mesh, Surface: mesh.CreateSurface()}
	if segments <= 0 {
		g.log.Warn("invalid bezier segments", "segments", segments)
		return mesh
	}
	ctx.bezierPatchFace(anchors, segments, front)
	mesh.RecomputeNormals()
	return mesh
}
