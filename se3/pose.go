// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package se3 implements the group of 3D rigid-body transforms and
// the maps between the group and its tangent space.
//
// A Pose is a unit quaternion plus a translation. A Tangent is the
// 6-dimensional twist (ω, v) of the algebra se(3). Exp and Log
// convert between the two; Retract and LocalCoordinates are the
// fused step/difference operations an iterative pose optimizer
// needs. All operations are pure functions, safe for unbounded
// concurrent use.
//
// Near zero rotation angle the maps involve sin/cos ratios that
// degenerate to 0/0. Every such ratio is regularized by the
// caller-supplied epsilon instead of branching: illegal inputs
// (epsilon <= 0, non-unit quaternions) produce NaN/Inf values,
// never a panic or an error.
package se3

import (
	"github.com/rigidgeo/rigid"
	"github.com/rigidgeo/rigid/linear"
)

// Tangent is an element of the algebra se(3): a rotation generator
// W (angular velocity) and a translation generator V (linear
// velocity).
type Tangent[T rigid.Float] struct {
	W linear.V3[T]
	V linear.V3[T]
}

// Pose is an element of SE(3): a rotation and a translation.
// It is an immutable value; operations return new poses.
// The rotation quaternion must be unit-norm.
type Pose[T rigid.Float] struct {
	q linear.Q[T]
	t linear.V3[T]
}

// New returns the pose with rotation q and translation t.
// q must be unit-norm; it is not checked.
func New[T rigid.Float](q linear.Q[T], t linear.V3[T]) Pose[T] {
	return Pose[T]{q: q, t: t}
}

// Identity returns the identity pose.
func Identity[T rigid.Float]() Pose[T] {
	return Pose[T]{q: linear.QIdent[T]()}
}

// FromData returns the pose stored in d, laid out as
// (qx, qy, qz, qw, tx, ty, tz).
func FromData[T rigid.Float](d [7]T) Pose[T] {
	return Pose[T]{
		q: linear.Q[T]{V: linear.V3[T]{d[0], d[1], d[2]}, R: d[3]},
		t: linear.V3[T]{d[4], d[5], d[6]},
	}
}

// Data returns the pose as (qx, qy, qz, qw, tx, ty, tz).
func (p Pose[T]) Data() [7]T {
	return [7]T{p.q.V[0], p.q.V[1], p.q.V[2], p.q.R, p.t[0], p.t[1], p.t[2]}
}

// Rotation returns the rotation quaternion of p.
func (p Pose[T]) Rotation() linear.Q[T] { return p.q }

// Translation returns the translation of p.
func (p Pose[T]) Translation() linear.V3[T] { return p.t }

// IsNormalized reports whether the rotation of p is unit-norm
// within tol. Operations never call this; it is a debugging aid.
func (p Pose[T]) IsNormalized(tol T) bool {
	return linear.IsUnit(p.q, tol)
}
