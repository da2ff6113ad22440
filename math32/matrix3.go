// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix3 is a 3x3 matrix stored as a flat column-major array:
// element [col*3 + row]. Once composed for a given invocation it is
// treated as immutable; all operations return new values.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3].
func Identity3() Matrix3 {
	m := Matrix3{}
	m.SetIdentity()
	return m
}

// Matrix3FromVectors returns a new [Matrix3] composed from the given
// column vectors, in order.
func Matrix3FromVectors(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Matrix3FromMatrix4 returns a new [Matrix3] from the upper-left 3x3
// of the given [Matrix4].
func Matrix3FromMatrix4(m *Matrix4) Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// SetIdentity sets this matrix to the identity.
func (m *Matrix3) SetIdentity() {
	*m = Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns this matrix times the other matrix (this * other).
// Composition order is part of the contract: the right operand is
// applied to a vector first.
func (m *Matrix3) Mul(other *Matrix3) Matrix3 {
	nm := Matrix3{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix to a * b.
func (m *Matrix3) MulMatrices(a, b *Matrix3) {
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m[col*3+row] = a[row]*b[col*3] + a[3+row]*b[col*3+1] + a[6+row]*b[col*3+2]
		}
	}
}

// MulVector3 returns the given vector multiplied by this matrix:
// x*c0 + y*c1 + z*c2 for matrix columns c0..c2.
func (m *Matrix3) MulVector3(v Vector3) Vector3 {
	return v.MulMatrix3(m)
}

// Transpose returns the transpose of this matrix.
// For an orthonormal basis matrix the transpose is its inverse,
// which is how tangent-space math converts world vectors into
// tangent space without a full inversion.
func (m *Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of this matrix.
func (m *Matrix3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}
