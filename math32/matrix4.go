// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "errors"

// Matrix4 is a 4x4 matrix stored as a flat column-major array:
// element [col*4 + row]. A matrix composed from four column vectors
// [c0, c1, c2, c3] applied to a point p = (x, y, z, 1) yields
// x*c0 + y*c1 + z*c2 + 1*c3. Once composed for a given invocation it
// is treated as immutable; all operations return new values.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// Matrix4FromVectors returns a new [Matrix4] composed from the given
// column vectors, in order. This is the form in which per-instance
// transforms arrive from vertex attribute bindings.
func Matrix4FromVectors(c0, c1, c2, c3 Vector4) Matrix4 {
	return Matrix4{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// Translate3D returns a new [Matrix4] that translates by the given offsets.
func Translate3D(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scale3D returns a new [Matrix4] that scales by the given factors.
func Scale3D(x, y, z float32) Matrix4 {
	m := Matrix4{}
	m[0] = x
	m[5] = y
	m[10] = z
	m[15] = 1
	return m
}

// Rotate3DY returns a new [Matrix4] that rotates by the given angle
// (in radians) around the Y axis.
func Rotate3DY(angle float32) Matrix4 {
	c := Cos(angle)
	s := Sin(angle)
	m := Identity4()
	m[0] = c
	m[8] = s
	m[2] = -s
	m[10] = c
	return m
}

// Rotate3DX returns a new [Matrix4] that rotates by the given angle
// (in radians) around the X axis.
func Rotate3DX(angle float32) Matrix4 {
	c := Cos(angle)
	s := Sin(angle)
	m := Identity4()
	m[5] = c
	m[9] = -s
	m[6] = s
	m[10] = c
	return m
}

// NewLookAt returns a new view [Matrix4] for a camera at eye looking at
// target, with the given up vector: a rotation composed with a
// translation by -eye. Eye and target must not coincide, and up must
// not be parallel to the view direction (caller precondition).
func NewLookAt(eye, target, up Vector3) *Matrix4 {
	f := target.Sub(eye).Normal()
	s := f.Cross(up).Normal()
	u := s.Cross(f)
	m := Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
	return &m
}

// SetIdentity sets this matrix to the identity.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetZero sets all elements of this matrix to zero.
func (m *Matrix4) SetZero() {
	*m = Matrix4{}
}

// CopyFrom copies from the given source matrix into this matrix.
func (m *Matrix4) CopyFrom(src *Matrix4) {
	*m = *src
}

// SetPerspective sets this matrix to a perspective projection with the
// given vertical field of view in degrees, aspect ratio (width/height),
// and near and far plane distances.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fov)/2)
	m.SetZero()
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = (2 * far * near) / (near - far)
}

// Mul returns this matrix times the other matrix (this * other).
// Multiplication is associative but not commutative: the right operand
// is applied to a vector first.
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix to a * b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	nm := Matrix4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			nm[col*4+row] = a[row]*b[col*4] + a[4+row]*b[col*4+1] +
				a[8+row]*b[col*4+2] + a[12+row]*b[col*4+3]
		}
	}
	*m = nm
}

// MulVector4 returns the given vector multiplied by this matrix.
func (m *Matrix4) MulVector4(v Vector4) Vector4 {
	return v.MulMatrix4(m)
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4) Transpose() *Matrix4 {
	nm := &Matrix4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			nm[row*4+col] = m[col*4+row]
		}
	}
	return nm
}

// Determinant returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	b00 := m[0]*m[5] - m[1]*m[4]
	b01 := m[0]*m[6] - m[2]*m[4]
	b02 := m[0]*m[7] - m[3]*m[4]
	b03 := m[1]*m[6] - m[2]*m[5]
	b04 := m[1]*m[7] - m[3]*m[5]
	b05 := m[2]*m[7] - m[3]*m[6]
	b06 := m[8]*m[13] - m[9]*m[12]
	b07 := m[8]*m[14] - m[10]*m[12]
	b08 := m[8]*m[15] - m[11]*m[12]
	b09 := m[9]*m[14] - m[10]*m[13]
	b10 := m[9]*m[15] - m[11]*m[13]
	b11 := m[10]*m[15] - m[11]*m[14]
	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Inverse returns the inverse of this matrix. If the matrix is
// singular (zero determinant) it returns the identity and an error;
// near-singular inputs are a precondition violation of the caller
// (degenerate camera or instance data).
func (m *Matrix4) Inverse() (*Matrix4, error) {
	b00 := m[0]*m[5] - m[1]*m[4]
	b01 := m[0]*m[6] - m[2]*m[4]
	b02 := m[0]*m[7] - m[3]*m[4]
	b03 := m[1]*m[6] - m[2]*m[5]
	b04 := m[1]*m[7] - m[3]*m[5]
	b05 := m[2]*m[7] - m[3]*m[6]
	b06 := m[8]*m[13] - m[9]*m[12]
	b07 := m[8]*m[14] - m[10]*m[12]
	b08 := m[8]*m[15] - m[11]*m[12]
	b09 := m[9]*m[14] - m[10]*m[13]
	b10 := m[9]*m[15] - m[11]*m[13]
	b11 := m[10]*m[15] - m[11]*m[14]

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		nm := Identity4()
		return &nm, errors.New("math32.Matrix4.Inverse: cannot invert singular matrix")
	}
	d := 1 / det

	nm := &Matrix4{}
	nm[0] = (m[5]*b11 - m[6]*b10 + m[7]*b09) * d
	nm[1] = (m[2]*b10 - m[1]*b11 - m[3]*b09) * d
	nm[2] = (m[13]*b05 - m[14]*b04 + m[15]*b03) * d
	nm[3] = (m[10]*b04 - m[9]*b05 - m[11]*b03) * d
	nm[4] = (m[6]*b08 - m[4]*b11 - m[7]*b07) * d
	nm[5] = (m[0]*b11 - m[2]*b08 + m[3]*b07) * d
	nm[6] = (m[14]*b02 - m[12]*b05 - m[15]*b01) * d
	nm[7] = (m[8]*b05 - m[10]*b02 + m[11]*b01) * d
	nm[8] = (m[4]*b10 - m[5]*b08 + m[7]*b06) * d
	nm[9] = (m[1]*b08 - m[0]*b10 - m[3]*b06) * d
	nm[10] = (m[12]*b04 - m[13]*b02 + m[15]*b00) * d
	nm[11] = (m[9]*b02 - m[8]*b04 - m[11]*b00) * d
	nm[12] = (m[5]*b07 - m[4]*b09 - m[6]*b06) * d
	nm[13] = (m[0]*b09 - m[1]*b07 + m[2]*b06) * d
	nm[14] = (m[13]*b01 - m[12]*b03 - m[14]*b00) * d
	nm[15] = (m[8]*b03 - m[9]*b01 + m[10]*b00) * d
	return nm, nil
}
