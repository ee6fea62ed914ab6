// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/rigidgeo/rigid"
)

// Q is a quaternion of T. V holds the imaginary part and R the
// real part, so a rotation quaternion reads (x, y, z, w).
type Q[T rigid.Float] struct {
	V V3[T]
	R T
}

// QIdent returns the identity quaternion.
func QIdent[T rigid.Float]() Q[T] {
	return Q[T]{R: 1}
}

// MulQ returns the Hamilton product l ⋅ r.
func MulQ[T rigid.Float](l, r Q[T]) Q[T] {
	v := ScaleV3(l.R, r.V)
	w := ScaleV3(r.R, l.V)
	return Q[T]{
		V: AddV3(AddV3(v, w), Cross(l.V, r.V)),
		R: l.R*r.R - DotV3(l.V, r.V),
	}
}

// ConjQ returns the conjugate of q. For a unit q this is also its
// inverse.
func ConjQ[T rigid.Float](q Q[T]) Q[T] {
	return Q[T]{V: ScaleV3(-1, q.V), R: q.R}
}

// LenQ returns the norm of q.
func LenQ[T rigid.Float](q Q[T]) T {
	return Sqrt(DotV3(q.V, q.V) + q.R*q.R)
}

// IsUnit reports whether the norm of q is within tol of 1.
// The rotation code never calls this; it is a debugging aid for
// callers that construct quaternions themselves.
func IsUnit[T rigid.Float](q Q[T], tol T) bool {
	d := LenQ(q) - 1
	return -tol <= d && d <= tol
}

// Rotate returns v rotated by the unit quaternion q.
func Rotate[T rigid.Float](q Q[T], v V3[T]) V3[T] {
	// v + 2w(qv × v) + 2qv × (qv × v), with the doubling folded
	// into the first cross product.
	t := ScaleV3(2, Cross(q.V, v))
	return AddV3(v, AddV3(ScaleV3(q.R, t), Cross(q.V, t)))
}

// RotateInv returns v rotated by the inverse of the unit
// quaternion q.
func RotateInv[T rigid.Float](q Q[T], v V3[T]) V3[T] {
	return Rotate(ConjQ(q), v)
}

// MatQ returns the rotation matrix of the unit quaternion q.
func MatQ[T rigid.Float](q Q[T]) (m M3[T]) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	m[0] = V3[T]{1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w)}
	m[1] = V3[T]{2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w)}
	m[2] = V3[T]{2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y)}
	return
}
