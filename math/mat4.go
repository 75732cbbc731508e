package math

import "github.com/chewxy/math32"

// Mat4 is a row-vector matrix: points transform as v*M and translation lives
// in the last row.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// MulVec3 transforms a point (w = 1) as a row vector and divides by the
// resulting w when it is not zero.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	x, y, z, w := m.mulRow(v, 1)
	if w != 0 && w != 1 {
		return Vec3{X: x / w, Y: y / w, Z: z / w}
	}
	return Vec3{X: x, Y: y, Z: z}
}

// MulDir transforms a direction (w = 0), ignoring translation.
func (m Mat4) MulDir(v Vec3) Vec3 {
	x, y, z, _ := m.mulRow(v, 0)
	return Vec3{X: x, Y: y, Z: z}
}

func (m Mat4) mulRow(v Vec3, w float32) (x, y, z, rw float32) {
	x = v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + w*m[3][0]
	y = v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + w*m[3][1]
	z = v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + w*m[3][2]
	rw = v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + w*m[3][3]
	return
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Rotation builds a rotation from euler angles in radians, applied in
// Y, X, Z order.
func Mat4Rotation(euler Vec3) Mat4 {
	return Mat4RotationY(euler.Y).Mul(Mat4RotationX(euler.X)).Mul(Mat4RotationZ(euler.Z))
}

// Mat4RotationDeg is Mat4Rotation with angles in degrees.
func Mat4RotationDeg(euler Vec3) Mat4 {
	return Mat4Rotation(euler.Mul(DegToRad))
}

func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	tanHalfFovy := math32.Tan(fovY / 2)

	var m Mat4
	m[0][0] = 1 / (aspect * tanHalfFovy)
	m[1][1] = 1 / tanHalfFovy
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		{xAxis.X, yAxis.X, zAxis.X, 0},
		{xAxis.Y, yAxis.Y, zAxis.Y, 0},
		{xAxis.Z, yAxis.Z, zAxis.Z, 0},
		{-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1},
	}
}
