package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func approxVec(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	if dot != 32 {
		t.Errorf("Dot: expected 32, got %v", dot)
	}

	// Right x Up = Front in a right-handed system
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}

	abs := NewVec3(-1, 2, -3).Abs()
	if abs != NewVec3(1, 2, 3) {
		t.Errorf("Abs: expected (1,2,3), got %v", abs)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	if !approx(normalized.Length(), 1) {
		t.Errorf("Normalize: expected length 1, got %v", normalized.Length())
	}

	if Vec3Zero.Normalize() != Vec3Zero {
		t.Errorf("Normalize: zero vector should stay zero")
	}
}

func TestVec3SetLength(t *testing.T) {
	v := NewVec3(1, 1, 1).SetLength(2)
	if !approx(v.Length(), 2) {
		t.Errorf("SetLength: expected length 2, got %v", v.Length())
	}
	if !approx(v.X, v.Y) || !approx(v.Y, v.Z) {
		t.Errorf("SetLength: direction changed, got %v", v)
	}
}

func TestVec3RotatedAxis(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		angle float32
		axis  Vec3
		want  Vec3
	}{
		{"zero angle", NewVec3(1, 2, 3), 0, Vec3Up, NewVec3(1, 2, 3)},
		{"x around y", Vec3Right, 90, Vec3Up, NewVec3(0, 0, -1)},
		{"y around x", Vec3Up, 90, Vec3Right, NewVec3(0, 0, 1)},
		{"unnormalized axis", Vec3Right, 180, NewVec3(0, 5, 0), NewVec3(-1, 0, 0)},
		{"full turn", NewVec3(0.3, -0.2, 0.7), 360, NewVec3(1, 1, 0), NewVec3(0.3, -0.2, 0.7)},
	}
	for _, tt := range tests {
		got := tt.v.RotatedAxis(tt.angle, tt.axis)
		if !approxVec(got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestDegreeTrig(t *testing.T) {
	if !approx(SinDeg(90), 1) {
		t.Errorf("SinDeg(90): expected 1, got %v", SinDeg(90))
	}
	if !approx(CosDeg(180), -1) {
		t.Errorf("CosDeg(180): expected -1, got %v", CosDeg(180))
	}
	if !approx(SinDeg(30), 0.5) {
		t.Errorf("SinDeg(30): expected 0.5, got %v", SinDeg(30))
	}
}

func TestBernstein(t *testing.T) {
	p := [4]Vec3{
		NewVec3(3, 0, 0),
		NewVec3(2, 1, 0),
		NewVec3(1, 1, 0),
		NewVec3(0, 0, 0),
	}

	if got := Bernstein(0, p); got != p[3] {
		t.Errorf("Bernstein(0): expected %v, got %v", p[3], got)
	}
	if got := Bernstein(1, p); got != p[0] {
		t.Errorf("Bernstein(1): expected %v, got %v", p[0], got)
	}

	// Collinear, evenly spaced X control points give a linear X.
	mid := Bernstein(0.5, p)
	if !approx(mid.X, 1.5) || !approx(mid.Y, 0.75) {
		t.Errorf("Bernstein(0.5): expected (1.5, 0.75, 0), got %v", mid)
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(1, 3, 360) != 3 || ClampInt(400, 3, 360) != 360 || ClampInt(20, 3, 360) != 20 {
		t.Errorf("ClampInt: unexpected result")
	}
}

func TestMat4Identity(t *testing.T) {
	v := NewVec3(1, 2, 3)
	if got := Mat4Identity().MulVec3(v); got != v {
		t.Errorf("Identity: expected %v, got %v", v, got)
	}
}

func TestMat4Multiplication(t *testing.T) {
	a := Mat4Translation(NewVec3(1, 0, 0))
	b := Mat4Translation(NewVec3(0, 2, 0))
	got := a.Mul(b).MulVec3(Vec3Zero)
	if got != NewVec3(1, 2, 0) {
		t.Errorf("Mul: expected (1,2,0), got %v", got)
	}
}

func TestMat4Translation(t *testing.T) {
	m := Mat4Translation(NewVec3(10, 20, 30))
	got := m.MulVec3(NewVec3(1, 2, 3))
	if got != NewVec3(11, 22, 33) {
		t.Errorf("Translation: expected (11,22,33), got %v", got)
	}
	if dir := m.MulDir(NewVec3(1, 2, 3)); dir != NewVec3(1, 2, 3) {
		t.Errorf("MulDir: translation should not apply, got %v", dir)
	}
}

func TestMat4RotationDeg(t *testing.T) {
	// -90 degrees about X turns a Z-up model into a Y-up one.
	got := Mat4RotationDeg(NewVec3(-90, 0, 0)).MulVec3(Vec3Front)
	if !approxVec(got, Vec3Up) {
		t.Errorf("RotationDeg: expected %v, got %v", Vec3Up, got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	view := Mat4LookAt(eye, Vec3Zero, Vec3Up)
	got := view.MulVec3(Vec3Zero)
	if !approxVec(got, NewVec3(0, 0, -5)) {
		t.Errorf("LookAt: target should sit 5 units down -Z, got %v", got)
	}
}

func BenchmarkVec3RotatedAxis(b *testing.B) {
	v := NewVec3(0.3, 0.4, 0.5)
	axis := NewVec3(1, 1, 0)
	for i := 0; i < b.N; i++ {
		_ = v.RotatedAxis(33, axis)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Translation(NewVec3(1, 2, 3))
	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
