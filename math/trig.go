package math

import "github.com/chewxy/math32"

const (
	Pi       = math32.Pi
	DegToRad = math32.Pi / 180
	RadToDeg = 180 / math32.Pi
)

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(deg float32) float32 {
	return math32.Sin(deg * DegToRad)
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(deg float32) float32 {
	return math32.Cos(deg * DegToRad)
}

// Pow is a float32 power function.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Bernstein evaluates a cubic Bézier curve at t. The control points are
// weighted in reverse: p[0] is reached at t = 1 and p[3] at t = 0.
func Bernstein(t float32, p [4]Vec3) Vec3 {
	inv := 1 - t
	return p[0].Mul(t * t * t).
		Add(p[1].Mul(3 * t * t * inv)).
		Add(p[2].Mul(3 * inv * inv * t)).
		Add(p[3].Mul(inv * inv * inv))
}

// ClampInt limits v to the closed range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
