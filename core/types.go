package core

import (
	"mesh-generator/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Array returns the color as an RGBA array.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// RGBA8 quantizes the color to 8 bits per channel, clamping to [0, 1].
func (c Color) RGBA8() [4]uint8 {
	return [4]uint8{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

func to8(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// Vertex is the layout shared by generated surfaces and the GL preview.
// Field order matters: the renderer derives attribute offsets from it.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Color    Color
}
