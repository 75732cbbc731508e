package math

import "github.com/chewxy/math32"

type Vec3 struct {
	X, Y, Z float32
}

var (
	Vec3Zero  = Vec3{0, 0, 0}
	Vec3One   = Vec3{1, 1, 1}
	Vec3Up    = Vec3{0, 1, 0}
	Vec3Right = Vec3{1, 0, 0}
	Vec3Front = Vec3{0, 0, 1}
)

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) Mul(scalar float32) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func (v Vec3) MulVec(other Vec3) Vec3 {
	return Vec3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

func (v Vec3) Div(scalar float32) Vec3 {
	return v.Mul(1.0 / scalar)
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length > 0 {
		return v.Mul(1.0 / length)
	}
	return v
}

// SetLength returns v scaled to the given length. A zero vector stays zero.
func (v Vec3) SetLength(length float32) Vec3 {
	return v.Normalize().Mul(length)
}

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{X: math32.Abs(v.X), Y: math32.Abs(v.Y), Z: math32.Abs(v.Z)}
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return v.Add(other.Sub(v).Mul(t))
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{X: math32.Min(v.X, other.X), Y: math32.Min(v.Y, other.Y), Z: math32.Min(v.Z, other.Z)}
}

func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{X: math32.Max(v.X, other.X), Y: math32.Max(v.Y, other.Y), Z: math32.Max(v.Z, other.Z)}
}

// RotatedAxis rotates v by angle degrees around axis (right-handed).
// The axis does not need to be normalized. A zero angle returns v unchanged.
func (v Vec3) RotatedAxis(angle float32, axis Vec3) Vec3 {
	if angle == 0 {
		return v
	}
	axis = axis.Normalize()

	s := SinDeg(angle)
	c := CosDeg(angle)
	t := 1 - c

	row1 := Vec3{
		X: axis.X*axis.X + c*(1-axis.X*axis.X),
		Y: axis.X*axis.Y*t - s*axis.Z,
		Z: axis.X*axis.Z*t + s*axis.Y,
	}
	row2 := Vec3{
		X: axis.X*axis.Y*t + s*axis.Z,
		Y: axis.Y*axis.Y + c*(1-axis.Y*axis.Y),
		Z: axis.Y*axis.Z*t - s*axis.X,
	}
	row3 := Vec3{
		X: axis.X*axis.Z*t - s*axis.Y,
		Y: axis.Y*axis.Z*t + s*axis.X,
		Z: axis.Z*axis.Z + c*(1-axis.Z*axis.Z),
	}

	return Vec3{X: row1.Dot(v), Y: row2.Dot(v), Z: row3.Dot(v)}
}

// Array returns the components as a fixed array, the layout glTF accessors use.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
