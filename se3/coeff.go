// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package se3

import (
	"github.com/rigidgeo/rigid"
	"github.com/rigidgeo/rigid/linear"
)

// rotCoeffs holds the angle-dependent coefficients shared by the
// tangent-to-group maps. With θ² = ‖ω‖² + ε², θ stays bounded away
// from zero and every ratio below remains finite; this is the one
// numerical device the whole package relies on.
type rotCoeffs[T rigid.Float] struct {
	cosHalf  T // cos(θ/2): real part of the rotation quaternion
	sinHalfT T // sin(θ/2)/θ: scales ω into the imaginary part
	k1       T // (1 - cos θ)/θ²: coefficient of [ω]× in the coupling
	k2       T // (θ - sin θ)/θ³: coefficient of [ω]×² in the coupling
}

// coeffs computes the rotation coefficients for the generator w.
func coeffs[T rigid.Float](w linear.V3[T], eps T) rotCoeffs[T] {
	t2 := linear.DotV3(w, w) + eps*eps
	theta := linear.Sqrt(t2)
	return rotCoeffs[T]{
		cosHalf:  linear.Cos(theta / 2),
		sinHalfT: linear.Sin(theta/2) / theta,
		k1:       (1 - linear.Cos(theta)) / t2,
		k2:       (theta - linear.Sin(theta)) / (t2 * theta),
	}
}

// couple applies I + k1⋅[w]× + k2⋅[w]×² to v without materializing
// the matrix, using [w]×²v = w(w⋅v) - (w⋅w)v.
func couple[T rigid.Float](k1, k2 T, w, v linear.V3[T]) linear.V3[T] {
	u := linear.AddV3(v, linear.ScaleV3(k1, linear.Cross(w, v)))
	sq := linear.SubV3(
		linear.ScaleV3(linear.DotV3(w, v), w),
		linear.ScaleV3(linear.DotV3(w, w), v),
	)
	return linear.AddV3(u, linear.ScaleV3(k2, sq))
}

// rotQuat returns the exponential of the generator w as a unit
// quaternion.
func rotQuat[T rigid.Float](c rotCoeffs[T], w linear.V3[T]) linear.Q[T] {
	return linear.Q[T]{V: linear.ScaleV3(c.sinHalfT, w), R: c.cosHalf}
}

// angleAxis recovers the rotation generator ω from a unit
// quaternion, plus the coefficient of [ω]×² in the inverse coupling
// I - ½[ω]× + d⋅[ω]×².
//
// The arc cosine argument is clamped to [ε-1, 1-ε]: round-off can
// push the real part of a unit quaternion past ±1, which would be a
// domain fault. The sine is recovered as sqrt(max(ε, 1-w²)) so the
// 2θ/sin θ ratio stays finite at the identity. At θ = π the clamp
// keeps the value finite but the recovered axis is only as good as
// the regularization; the boundary is a documented singularity of
// the principal branch.
func angleAxis[T rigid.Float](q linear.Q[T], eps T) (w linear.V3[T], d T) {
	sin2 := max(eps, 1-q.R*q.R)
	angle := linear.Acos(linear.Clamp(q.R, eps-1, 1-eps))
	w = linear.ScaleV3(2*angle/linear.Sqrt(sin2), q.V)

	// Inverse-coupling coefficient, evaluated at the recovered
	// angle with an additive ε regularizing the squared norm.
	n2 := linear.DotV3(w, w) + eps
	theta := linear.Sqrt(n2)
	half := theta / 2
	d = (1 - half*linear.Cos(half)/linear.Sin(half)) / n2
	return
}
