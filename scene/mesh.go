package scene

import (
	"mesh-generator/math"
)

// Shading selects how RecomputeNormals assigns vertex normals.
type Shading int

const (
	ShadingFlat    Shading = iota // one face normal per triangle
	ShadingGouraud                // normals averaged over coincident vertices
)

func (s Shading) String() string {
	if s == ShadingFlat {
		return "flat"
	}
	return "gouraud"
}

// RenderOrder places a mesh in the draw sequence.
type RenderOrder int

const (
	OrderNormal     RenderOrder = iota
	OrderBackground             // drawn first, e.g. skyboxes
)

// Mesh is an ordered list of surfaces sharing shading and material state.
// Generators append geometry to the last surface; readers walk Surfaces.
type Mesh struct {
	Name     string
	Surfaces []*Surface
	Shading  Shading
	Order    RenderOrder

	// Material holds render state. If nil, DefaultMaterial() applies.
	Material *Material

	// Cached local-space AABB, refreshed by RebuildIndexBuffer.
	LocalAABB    AABB
	HasLocalAABB bool
}

func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Surfaces: make([]*Surface, 0, 1),
		Shading:  ShadingGouraud,
		Material: DefaultMaterial(),
	}
}

// CreateSurface appends an empty surface and returns it.
func (m *Mesh) CreateSurface() *Surface {
	s := newSurface()
	m.Surfaces = append(m.Surfaces, s)
	return s
}

// Surface returns surface i, or nil when out of range.
func (m *Mesh) Surface(i int) *Surface {
	if i < 0 || i >= len(m.Surfaces) {
		return nil
	}
	return m.Surfaces[i]
}

// LastSurface returns the most recently created surface, or nil.
func (m *Mesh) LastSurface() *Surface {
	return m.Surface(len(m.Surfaces) - 1)
}

func (m *Mesh) SetShading(s Shading) {
	m.Shading = s
}

// RebuildIndexBuffer finalizes index storage after geometry edits: it picks
// the index width for every surface and refreshes the cached bounds.
func (m *Mesh) RebuildIndexBuffer() {
	for _, s := range m.Surfaces {
		if len(s.Vertices) > 0xFFFF {
			s.Format = IndexUint32
		} else {
			s.Format = IndexUint16
		}
	}
	m.LocalAABB, m.HasLocalAABB = m.computeBounds()
}

// Turn rotates every vertex position and normal by euler angles in degrees,
// applied in Y, X, Z order.
func (m *Mesh) Turn(eulerDeg math.Vec3) {
	rot := math.Mat4RotationDeg(eulerDeg)
	for _, s := range m.Surfaces {
		s.transform(rot)
	}
	if m.HasLocalAABB {
		m.LocalAABB, m.HasLocalAABB = m.computeBounds()
	}
}

func (m *Mesh) VertexCount() int {
	n := 0
	for _, s := range m.Surfaces {
		n += s.VertexCount()
	}
	return n
}

func (m *Mesh) TriangleCount() int {
	n := 0
	for _, s := range m.Surfaces {
		n += s.TriangleCount()
	}
	return n
}

func (m *Mesh) LineCount() int {
	n := 0
	for _, s := range m.Surfaces {
		n += s.LineCount()
	}
	return n
}

// IsEmpty reports whether the mesh holds no vertices at all.
func (m *Mesh) IsEmpty() bool {
	return m.VertexCount() == 0
}

// Bounds returns the tight AABB over all surfaces. The zero AABB is
// returned for an empty mesh.
func (m *Mesh) Bounds() AABB {
	b, _ := m.computeBounds()
	return b
}

func (m *Mesh) computeBounds() (AABB, bool) {
	var (
		b     AABB
		found bool
	)
	for _, s := range m.Surfaces {
		for _, v := range s.Vertices {
			if !found {
				b = AABB{Min: v.Position, Max: v.Position}
				found = true
				continue
			}
			b.Extend(v.Position)
		}
	}
	return b, found
}

// Stats summarises a mesh for listings and logs.
type Stats struct {
	Surfaces  int
	Vertices  int
	Triangles int
	Lines     int
	Bounds    AABB
}

func (m *Mesh) Stats() Stats {
	return Stats{
		Surfaces:  len(m.Surfaces),
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Lines:     m.LineCount(),
		Bounds:    m.Bounds(),
	}
}
