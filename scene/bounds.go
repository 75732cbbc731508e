package scene

import "mesh-generator/math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// Extend grows the box to contain p.
func (b *AABB) Extend(p math.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Radius returns half the box diagonal, used to frame a mesh in the preview.
func (b AABB) Radius() float32 {
	return b.Size().Length() * 0.5
}

// Contains reports whether p lies inside the box, widened by eps.
func (b AABB) Contains(p math.Vec3, eps float32) bool {
	return p.X >= b.Min.X-eps && p.X <= b.Max.X+eps &&
		p.Y >= b.Min.Y-eps && p.Y <= b.Max.Y+eps &&
		p.Z >= b.Min.Z-eps && p.Z <= b.Max.Z+eps
}
