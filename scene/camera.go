package scene

import (
	"github.com/chewxy/math32"

	"mesh-generator/math"
)

// OrbitCamera circles a target point. Angles are in radians.
type OrbitCamera struct {
	Target      math.Vec3
	Position    math.Vec3
	Distance    float32
	Yaw         float32
	Pitch       float32
	FOV         float32 // vertical, radians
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewOrbitCamera(target math.Vec3, distance, fov, aspectRatio float32) *OrbitCamera {
	c := &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Pitch:       0.3,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   0.01,
		FarPlane:    1000,
	}
	c.UpdatePosition()
	return c
}

// FrameBounds points the camera at the box center from far enough away to
// keep the whole box in view.
func (c *OrbitCamera) FrameBounds(b AABB) {
	c.Target = b.Center()
	r := b.Radius()
	if r <= 0 {
		r = 1
	}
	c.Distance = r / math32.Sin(c.FOV/2) * 1.1
	c.UpdatePosition()
}

func (c *OrbitCamera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

func (c *OrbitCamera) UpdatePosition() {
	if c.Pitch > 1.5 {
		c.Pitch = 1.5
	}
	if c.Pitch < -1.5 {
		c.Pitch = -1.5
	}

	cosPitch := math32.Cos(c.Pitch)
	offset := math.Vec3{
		X: c.Distance * cosPitch * math32.Sin(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * cosPitch * math32.Cos(c.Yaw),
	}
	c.Position = c.Target.Add(offset)
}

func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.UpdatePosition()
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance += delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Target, math.Vec3Up)
}

func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjection returns view * projection for row vectors.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.ViewMatrix().Mul(c.ProjectionMatrix())
}
