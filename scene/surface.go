package scene

import (
	"mesh-generator/core"
	"mesh-generator/math"
)

// PrimitiveType selects how a surface's indices are assembled.
type PrimitiveType int

const (
	PrimitiveTriangles PrimitiveType = iota // three indices per triangle (default)
	PrimitiveLines                          // pairs of indices form line segments
)

func (p PrimitiveType) String() string {
	if p == PrimitiveLines {
		return "lines"
	}
	return "triangles"
}

// IndexFormat is the narrowest integer type able to address every vertex of
// a surface. It is chosen by Mesh.RebuildIndexBuffer.
type IndexFormat int

const (
	IndexUint16 IndexFormat = iota
	IndexUint32
)

// Surface is one drawable batch of a mesh: an append-only vertex list plus
// indices. Indices passed to AddTriangle and AddLine are relative to the
// running index offset, so a piece of geometry can be numbered from zero
// no matter how much the surface already holds.
type Surface struct {
	Vertices  []core.Vertex
	Indices   []uint32 // absolute, three per triangle or two per line
	Primitive PrimitiveType
	Format    IndexFormat
	Textures  []*Texture

	indexOffset uint32
}

func newSurface() *Surface {
	return &Surface{
		Vertices: make([]core.Vertex, 0),
		Indices:  make([]uint32, 0),
	}
}

// AddVertex appends a white vertex and returns its absolute index.
func (s *Surface) AddVertex(pos math.Vec3, uv math.Vec2) uint32 {
	s.Vertices = append(s.Vertices, core.Vertex{
		Position: pos,
		UV:       uv,
		Color:    core.ColorWhite,
	})
	return uint32(len(s.Vertices) - 1)
}

// AddTriangle appends a triangle whose indices are relative to IndexOffset.
func (s *Surface) AddTriangle(i0, i1, i2 uint32) {
	o := s.indexOffset
	s.Indices = append(s.Indices, o+i0, o+i1, o+i2)
}

// AddLine appends a line segment whose indices are relative to IndexOffset.
func (s *Surface) AddLine(i0, i1 uint32) {
	o := s.indexOffset
	s.Indices = append(s.Indices, o+i0, o+i1)
}

func (s *Surface) SetIndexOffset(n uint32) {
	s.indexOffset = n
}

func (s *Surface) AddIndexOffset(delta uint32) {
	s.indexOffset += delta
}

func (s *Surface) IndexOffset() uint32 {
	return s.indexOffset
}

func (s *Surface) VertexCount() int {
	return len(s.Vertices)
}

// TriangleCount returns 0 for line surfaces.
func (s *Surface) TriangleCount() int {
	if s.Primitive != PrimitiveTriangles {
		return 0
	}
	return len(s.Indices) / 3
}

// LineCount returns 0 for triangle surfaces.
func (s *Surface) LineCount() int {
	if s.Primitive != PrimitiveLines {
		return 0
	}
	return len(s.Indices) / 2
}

// Triangle returns the absolute vertex indices of triangle i.
func (s *Surface) Triangle(i int) [3]uint32 {
	return [3]uint32{s.Indices[i*3], s.Indices[i*3+1], s.Indices[i*3+2]}
}

func (s *Surface) SetVertexColor(i int, c core.Color) {
	s.Vertices[i].Color = c
}

func (s *Surface) AddTexture(tex *Texture) {
	s.Textures = append(s.Textures, tex)
}

// Indices16 returns the indices narrowed to uint16. Only valid when Format
// is IndexUint16.
func (s *Surface) Indices16() []uint16 {
	out := make([]uint16, len(s.Indices))
	for i, idx := range s.Indices {
		out[i] = uint16(idx)
	}
	return out
}

// Turn rotates this surface's positions and normals by euler angles in
// degrees, in the same order as Mesh.Turn. Other surfaces are untouched.
func (s *Surface) Turn(eulerDeg math.Vec3) {
	s.transform(math.Mat4RotationDeg(eulerDeg))
}

func (s *Surface) transform(rot math.Mat4) {
	for i := range s.Vertices {
		v := &s.Vertices[i]
		v.Position = rot.MulVec3(v.Position)
		v.Normal = rot.MulDir(v.Normal)
	}
}
