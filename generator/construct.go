package generator

import (
	"fmt"

	"mesh-generator/scene"
)

// Construct holds the parameters every shape builder reads. Segment counts
// of -1 are replaced by the per-shape default at generation time.
type Construct struct {
	SegmentsVert int // main segment count when a shape uses only one
	SegmentsHorz int
	RadiusInner  float32 // main radius when a shape uses only one
	RadiusOuter  float32
	HasCap       bool // cone, cylinder, spiral, pipe and disk only
	Shading      scene.Shading

	// Spiral pitch: total sweep in degrees and rise per full turn.
	RotationDegree   float32
	RotationDistance float32

	// DynamicTeapot tessellates the teapot from its Bézier patches instead
	// of replaying the static table.
	DynamicTeapot bool
}

// DefaultConstruct returns the stock parameters: default segments, radii
// 0.5 and 0.25, capped, gouraud shaded, one full spiral turn of height 1.
func DefaultConstruct() Construct {
	return Construct{
		SegmentsVert:     -1,
		SegmentsHorz:     -1,
		RadiusInner:      0.5,
		RadiusOuter:      0.25,
		HasCap:           true,
		Shading:          scene.ShadingGouraud,
		RotationDegree:   360,
		RotationDistance: 1,
	}
}

// NewConstruct sets both segment counts to segments and derives the outer
// radius as half the given radius.
func NewConstruct(segments int, radius float32, hasCap bool, shading scene.Shading) Construct {
	c := DefaultConstruct()
	c.SegmentsVert = segments
	c.SegmentsHorz = segments
	c.RadiusInner = radius
	c.RadiusOuter = radius / 2
	c.HasCap = hasCap
	c.Shading = shading
	return c
}

// Validate checks the resolved parameters.
func (c Construct) Validate() error {
	if c.SegmentsVert <= 0 || c.SegmentsHorz <= 0 {
		return fmt.Errorf("%w (vert %d, horz %d)", ErrInvalidSegments, c.SegmentsVert, c.SegmentsHorz)
	}
	if c.RadiusInner <= 0 {
		return fmt.Errorf("%w (inner %g)", ErrInvalidRadius, c.RadiusInner)
	}
	return nil
}

// resolve applies the shape's default segment count and forced shading.
func (c Construct) resolve(k Kind) Construct {
	if c.SegmentsVert == -1 {
		c.SegmentsVert = k.DefaultSegments()
	}
	if c.SegmentsHorz == -1 {
		c.SegmentsHorz = k.DefaultSegments()
	}
	if k.ForcesFlatShading() {
		c.Shading = scene.ShadingFlat
	}
	return c
}
