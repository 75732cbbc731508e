package generator

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies one of the built-in primitive shapes.
type Kind int

const (
	Cube Kind = iota
	Cone
	Cylinder
	Sphere
	Icosphere
	Torus
	TorusKnot
	Pipe
	Spiral
	Plane
	Disk
	Cuboctahedron
	Tetrahedron
	Octahedron
	Dodecahedron
	Icosahedron
	Teapot
	WireCube
	kindCount
)

var kindNames = [kindCount]string{
	Cube:          "cube",
	Cone:          "cone",
	Cylinder:      "cylinder",
	Sphere:        "sphere",
	Icosphere:     "icosphere",
	Torus:         "torus",
	TorusKnot:     "torusknot",
	Pipe:          "pipe",
	Spiral:        "spiral",
	Plane:         "plane",
	Disk:          "disk",
	Cuboctahedron: "cuboctahedron",
	Tetrahedron:   "tetrahedron",
	Octahedron:    "octahedron",
	Dodecahedron:  "dodecahedron",
	Icosahedron:   "icosahedron",
	Teapot:        "teapot",
	WireCube:      "wirecube",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a shape name case-insensitively. Dashes and
// underscores are ignored, so "torus-knot" and "wire_cube" both work.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for k, n := range kindNames {
		if n == key {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Kinds returns every built-in kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// DefaultSegments is the segment count used when a Construct leaves it at -1.
func (k Kind) DefaultSegments() int {
	switch k {
	case Icosphere:
		return 3
	case Teapot:
		return 6
	case Sphere, Torus, TorusKnot, Spiral:
		return 10
	case Cone, Cylinder, Pipe, Disk:
		return 20
	default:
		return 1
	}
}

// ForcesFlatShading reports whether the kind always renders faceted.
func (k Kind) ForcesFlatShading() bool {
	switch k {
	case Cube, Plane, Disk, Dodecahedron, Icosahedron, Tetrahedron, Cuboctahedron:
		return true
	}
	return false
}

// BuildFunc emits one shape's geometry into ctx.Surface.
type BuildFunc func(ctx *Context)

func defaultBuilders() map[Kind]BuildFunc {
	return map[Kind]BuildFunc{
		Cube:          buildCube,
		Cone:          buildCone,
		Cylinder:      buildCylinder,
		Sphere:        buildSphere,
		Icosphere:     buildIcosphere,
		Torus:         buildTorus,
		TorusKnot:     buildTorusKnot,
		Pipe:          buildPipe,
		Spiral:        buildSpiral,
		Plane:         buildPlane,
		Disk:          buildDisk,
		Cuboctahedron: buildCuboctahedron,
		Tetrahedron:   buildTetrahedron,
		Octahedron:    buildOctahedron,
		Dodecahedron:  buildDodecahedron,
		Icosahedron:   buildIcosahedron,
		Teapot:        buildTeapot,
		WireCube:      buildWireCube,
	}
}

// Registered returns the kinds this generator can build, sorted.
func (g *Generator) Registered() []Kind {
	out := make([]Kind, 0, len(g.builders))
	for k := range g.builders {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
