// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package se3

import (
	"github.com/rigidgeo/rigid"
	"github.com/rigidgeo/rigid/linear"
)

// Exp maps a tangent vector to a group element.
//
// The rotation is (sin(θ/2)/θ⋅ω, cos(θ/2)) with θ² = ‖ω‖² + ε², a
// unit quaternion for any finite input. The translation is the
// coupling matrix I + (1-cosθ)/θ²⋅[ω]× + (θ-sinθ)/θ³⋅[ω]×² applied
// to v. As ω → 0 the result tends to (identity, v).
func Exp[T rigid.Float](t Tangent[T], eps T) Pose[T] {
	c := coeffs(t.W, eps)
	return Pose[T]{
		q: rotQuat(c, t.W),
		t: couple(c.k1, c.k2, t.W, t.V),
	}
}

// Log maps a group element to a tangent vector, inverting Exp on
// the principal branch ‖ω‖ < π.
//
// The rotation generator is 2θ/sinθ ⋅ (qx, qy, qz) with θ recovered
// from the clamped arc cosine of qw. The translation generator
// solves the Exp coupling in closed form:
// v = (I - ½[ω]× + d⋅[ω]×²)⋅t with d = (1 - (θ/2)cot(θ/2))/θ².
// At ‖ω‖ = π the recovered axis is a regularized approximation; the
// antipodal boundary is outside the principal branch.
func Log[T rigid.Float](p Pose[T], eps T) Tangent[T] {
	w, d := angleAxis(p.q, eps)
	return Tangent[T]{
		W: w,
		V: couple(T(-0.5), d, w, p.t),
	}
}

// Retract steps the pose a by the tangent t, computing
// Compose(a, Exp(t, eps)) in fused form. The quaternion product is
// expanded directly, so no renormalization happens between the
// exponential and the composition; Retract(a, Tangent{}, eps)
// returns a without drift. For small ‖t‖ the result is the
// first-order expansion of the group action, which optimizers rely
// on for local linearization.
func Retract[T rigid.Float](a Pose[T], t Tangent[T], eps T) Pose[T] {
	c := coeffs(t.W, eps)
	step := couple(c.k1, c.k2, t.W, t.V)
	return Pose[T]{
		q: linear.MulQ(a.q, rotQuat(c, t.W)),
		t: linear.AddV3(a.t, linear.Rotate(a.q, step)),
	}
}

// LocalCoordinates measures the tangent that carries a to b,
// computing Log(Between(a, b), eps) in fused form: the relative
// rotation is the conjugate product conj(qa)⋅qb and the relative
// translation is the difference of translations rotated back into
// a's frame, both fed through the same recovery as Log.
// LocalCoordinates(a, a, eps) is exactly zero, and
// LocalCoordinates(a, Retract(a, t, eps), eps) ≈ t for small ‖t‖.
func LocalCoordinates[T rigid.Float](a, b Pose[T], eps T) Tangent[T] {
	dq := linear.MulQ(linear.ConjQ(a.q), b.q)
	dt := linear.RotateInv(a.q, linear.SubV3(b.t, a.t))
	w, d := angleAxis(dq, eps)
	return Tangent[T]{
		W: w,
		V: couple(T(-0.5), d, w, dt),
	}
}
