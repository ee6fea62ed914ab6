// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package se2 implements the group of planar rigid-body transforms,
// the 2D counterpart of package se3.
//
// A Rot2 stores a rotation as its cosine/sine pair, so composition
// needs no trigonometry. The same epsilon conventions as se3 apply:
// ratios that degenerate at zero angle are regularized by a
// sign-preserving epsilon offset, and inputs are never validated.
package se2

import (
	"github.com/rigidgeo/rigid"
	"github.com/rigidgeo/rigid/linear"
)

// Rot2 is a planar rotation, stored as (cos θ, sin θ).
// The pair must lie on the unit circle.
type Rot2[T rigid.Float] struct {
	C, S T
}

// FromAngle returns the rotation by the angle a (radians).
func FromAngle[T rigid.Float](a T) Rot2[T] {
	return Rot2[T]{C: linear.Cos(a), S: linear.Sin(a)}
}

// Angle returns the angle of r in (-π, π].
func (r Rot2[T]) Angle() T {
	return linear.Atan2(r.S, r.C)
}

// MulR returns the composition a ⋅ b.
func MulR[T rigid.Float](a, b Rot2[T]) Rot2[T] {
	return Rot2[T]{
		C: a.C*b.C - a.S*b.S,
		S: a.S*b.C + a.C*b.S,
	}
}

// ConjR returns the inverse rotation of r.
func ConjR[T rigid.Float](r Rot2[T]) Rot2[T] {
	return Rot2[T]{C: r.C, S: -r.S}
}

// Apply returns v rotated by r.
func Apply[T rigid.Float](r Rot2[T], v linear.V2[T]) linear.V2[T] {
	return linear.V2[T]{
		r.C*v[0] - r.S*v[1],
		r.S*v[0] + r.C*v[1],
	}
}

// ApplyInv returns v rotated by the inverse of r.
func ApplyInv[T rigid.Float](r Rot2[T], v linear.V2[T]) linear.V2[T] {
	return linear.V2[T]{
		r.C*v[0] + r.S*v[1],
		r.C*v[1] - r.S*v[0],
	}
}

// Pose2 is an element of SE(2): a planar rotation and translation.
// It is an immutable value; operations return new poses.
type Pose2[T rigid.Float] struct {
	r Rot2[T]
	t linear.V2[T]
}

// New returns the pose with rotation r and translation t.
func New[T rigid.Float](r Rot2[T], t linear.V2[T]) Pose2[T] {
	return Pose2[T]{r: r, t: t}
}

// Identity returns the identity pose.
func Identity[T rigid.Float]() Pose2[T] {
	return Pose2[T]{r: Rot2[T]{C: 1}}
}

// FromData returns the pose stored in d, laid out as
// (cos θ, sin θ, tx, ty).
func FromData[T rigid.Float](d [4]T) Pose2[T] {
	return Pose2[T]{r: Rot2[T]{C: d[0], S: d[1]}, t: linear.V2[T]{d[2], d[3]}}
}

// Data returns the pose as (cos θ, sin θ, tx, ty).
func (p Pose2[T]) Data() [4]T {
	return [4]T{p.r.C, p.r.S, p.t[0], p.t[1]}
}

// Rotation returns the rotation of p.
func (p Pose2[T]) Rotation() Rot2[T] { return p.r }

// Translation returns the translation of p.
func (p Pose2[T]) Translation() linear.V2[T] { return p.t }

// Compose returns the group product a ⋅ b.
func Compose[T rigid.Float](a, b Pose2[T]) Pose2[T] {
	return Pose2[T]{
		r: MulR(a.r, b.r),
		t: linear.AddV2(a.t, Apply(a.r, b.t)),
	}
}

// Inverse returns the group inverse of a.
func Inverse[T rigid.Float](a Pose2[T]) Pose2[T] {
	return Pose2[T]{
		r: ConjR(a.r),
		t: linear.ScaleV2(-1, ApplyInv(a.r, a.t)),
	}
}

// Between returns Compose(Inverse(a), b).
func Between[T rigid.Float](a, b Pose2[T]) Pose2[T] {
	return Pose2[T]{
		r: MulR(ConjR(a.r), b.r),
		t: ApplyInv(a.r, linear.SubV2(b.t, a.t)),
	}
}

// Transform returns p applied to the point v.
func (p Pose2[T]) Transform(v linear.V2[T]) linear.V2[T] {
	return linear.AddV2(p.t, Apply(p.r, v))
}

// InverseTransform returns the inverse of p applied to the point v.
func (p Pose2[T]) InverseTransform(v linear.V2[T]) linear.V2[T] {
	return ApplyInv(p.r, linear.SubV2(v, p.t))
}

// Matrix returns the homogeneous matrix of p, column-major.
func (p Pose2[T]) Matrix() linear.M3[T] {
	return linear.M3[T]{
		{p.r.C, p.r.S, 0},
		{-p.r.S, p.r.C, 0},
		{p.t[0], p.t[1], 1},
	}
}
