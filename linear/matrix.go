// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/rigidgeo/rigid"
)

// M3 is a column-major 3x3 matrix of T.
type M3[T rigid.Float] [3]V3[T]

// I3 returns an identity matrix.
func I3[T rigid.Float]() M3[T] {
	return M3[T]{{1}, {0, 1}, {0, 0, 1}}
}

// MulM3 returns l ⋅ r.
func MulM3[T rigid.Float](l, r M3[T]) (m M3[T]) {
	for i := range m {
		for j := range m {
			for k := range m {
				m[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	return
}

// MulM3V3 returns m ⋅ v.
func MulM3V3[T rigid.Float](m M3[T], v V3[T]) (u V3[T]) {
	for i := range u {
		for k := range v {
			u[i] += m[k][i] * v[k]
		}
	}
	return
}

// TransposeM3 returns the transpose of m.
func TransposeM3[T rigid.Float](m M3[T]) (n M3[T]) {
	for i := range n {
		n[i][i] = m[i][i]
		for j := i + 1; j < len(n); j++ {
			n[i][j], n[j][i] = m[j][i], m[i][j]
		}
	}
	return
}

// InvertM3 returns the inverse of m.
func InvertM3[T rigid.Float](m M3[T]) (n M3[T]) {
	s0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	s1 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	s2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	idet := 1 / (m[0][0]*s0 - m[0][1]*s1 + m[0][2]*s2)
	n[0][0] = s0 * idet
	n[0][1] = -(m[0][1]*m[2][2] - m[0][2]*m[2][1]) * idet
	n[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * idet
	n[1][0] = -s1 * idet
	n[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * idet
	n[1][2] = -(m[0][0]*m[1][2] - m[0][2]*m[1][0]) * idet
	n[2][0] = s2 * idet
	n[2][1] = -(m[0][0]*m[2][1] - m[0][1]*m[2][0]) * idet
	n[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * idet
	return
}

// M4 is a column-major 4x4 matrix of T.
type M4[T rigid.Float] [4]V4[T]

// I4 returns an identity matrix.
func I4[T rigid.Float]() M4[T] {
	return M4[T]{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}}
}

// MulM4 returns l ⋅ r.
func MulM4[T rigid.Float](l, r M4[T]) (m M4[T]) {
	for i := range m {
		for j := range m {
			for k := range m {
				m[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	return
}

// MulM4V4 returns m ⋅ v.
func MulM4V4[T rigid.Float](m M4[T], v V4[T]) (u V4[T]) {
	for i := range u {
		for k := range v {
			u[i] += m[k][i] * v[k]
		}
	}
	return
}

// TransposeM4 returns the transpose of m.
func TransposeM4[T rigid.Float](m M4[T]) (n M4[T]) {
	for i := range n {
		n[i][i] = m[i][i]
		for j := i + 1; j < len(n); j++ {
			n[i][j], n[j][i] = m[j][i], m[i][j]
		}
	}
	return
}

// InvertM4 returns the inverse of m.
func InvertM4[T rigid.Float](m M4[T]) (n M4[T]) {
	s0 := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s1 := m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s2 := m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s3 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s4 := m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s5 := m[0][2]*m[1][3] - m[0][3]*m[1][2]
	c0 := m[2][0]*m[3][1] - m[2][1]*m[3][0]
	c1 := m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c2 := m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c3 := m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c4 := m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c5 := m[2][2]*m[3][3] - m[2][3]*m[3][2]
	idet := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)
	n[0][0] = (c5*m[1][1] - c4*m[1][2] + c3*m[1][3]) * idet
	n[0][1] = (-c5*m[0][1] + c4*m[0][2] - c3*m[0][3]) * idet
	n[0][2] = (s5*m[3][1] - s4*m[3][2] + s3*m[3][3]) * idet
	n[0][3] = (-s5*m[2][1] + s4*m[2][2] - s3*m[2][3]) * idet
	n[1][0] = (-c5*m[1][0] + c2*m[1][2] - c1*m[1][3]) * idet
	n[1][1] = (c5*m[0][0] - c2*m[0][2] + c1*m[0][3]) * idet
	n[1][2] = (-s5*m[3][0] + s2*m[3][2] - s1*m[3][3]) * idet
	n[1][3] = (s5*m[2][0] - s2*m[2][2] + s1*m[2][3]) * idet
	n[2][0] = (c4*m[1][0] - c2*m[1][1] + c0*m[1][3]) * idet
	n[2][1] = (-c4*m[0][0] + c2*m[0][1] - c0*m[0][3]) * idet
	n[2][2] = (s4*m[3][0] - s2*m[3][1] + s0*m[3][3]) * idet
	n[2][3] = (-s4*m[2][0] + s2*m[2][1] - s0*m[2][3]) * idet
	n[3][0] = (-c3*m[1][0] + c1*m[1][1] - c0*m[1][2]) * idet
	n[3][1] = (c3*m[0][0] - c1*m[0][1] + c0*m[0][2]) * idet
	n[3][2] = (-s3*m[3][0] + s1*m[3][1] - s0*m[3][2]) * idet
	n[3][3] = (s3*m[2][0] - s1*m[2][1] + s0*m[2][2]) * idet
	return
}
