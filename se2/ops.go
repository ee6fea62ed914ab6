// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package se2

import (
	"github.com/rigidgeo/rigid"
	"github.com/rigidgeo/rigid/linear"
)

// Tangent is an element of the algebra se(2): a rotation generator
// Theta and a translation generator V.
type Tangent[T rigid.Float] struct {
	Theta T
	V     linear.V2[T]
}

// offset shifts a away from zero by eps, preserving its sign, so
// the sin/cos ratios below stay well-defined at zero angle. A zero
// a counts as positive; the ratios are even in a, so the branch
// choice at exactly zero does not matter.
func offset[T rigid.Float](a, eps T) T {
	return a + linear.Copysign(eps, a)
}

// Exp maps a tangent vector to a group element. The translation is
// the planar coupling matrix (1/θ)[[sin θ, cos θ - 1], [1 - cos θ,
// sin θ]] applied to v, with θ regularized by the sign-preserving
// epsilon offset.
func Exp[T rigid.Float](t Tangent[T], eps T) Pose2[T] {
	theta := offset(t.Theta, eps)
	a := linear.Sin(theta) / theta
	b := (1 - linear.Cos(theta)) / theta
	return Pose2[T]{
		r: FromAngle(t.Theta),
		t: linear.V2[T]{
			a*t.V[0] - b*t.V[1],
			b*t.V[0] + a*t.V[1],
		},
	}
}

// Log maps a group element to a tangent vector, inverting Exp on
// the principal branch |θ| < π. The translation generator applies
// the closed-form inverse coupling [[h cot h, h], [-h, h cot h]]
// with h = θ/2, the half-angle cotangent regularized like Exp.
func Log[T rigid.Float](p Pose2[T], eps T) Tangent[T] {
	theta := p.r.Angle()
	h := theta / 2
	hr := offset(h, eps)
	k := hr * linear.Cos(hr) / linear.Sin(hr)
	return Tangent[T]{
		Theta: theta,
		V: linear.V2[T]{
			k*p.t[0] + h*p.t[1],
			k*p.t[1] - h*p.t[0],
		},
	}
}

// Retract steps the pose a by the tangent t.
func Retract[T rigid.Float](a Pose2[T], t Tangent[T], eps T) Pose2[T] {
	return Compose(a, Exp(t, eps))
}

// LocalCoordinates measures the tangent that carries a to b.
// LocalCoordinates(a, a, eps) is exactly zero.
func LocalCoordinates[T rigid.Float](a, b Pose2[T], eps T) Tangent[T] {
	return Log(Between(a, b), eps)
}
