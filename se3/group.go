// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package se3

import (
	"github.com/rigidgeo/rigid"
	"github.com/rigidgeo/rigid/linear"
)

// Compose returns the group product a ⋅ b.
func Compose[T rigid.Float](a, b Pose[T]) Pose[T] {
	return Pose[T]{
		q: linear.MulQ(a.q, b.q),
		t: linear.AddV3(a.t, linear.Rotate(a.q, b.t)),
	}
}

// Inverse returns the group inverse of a.
func Inverse[T rigid.Float](a Pose[T]) Pose[T] {
	return Pose[T]{
		q: linear.ConjQ(a.q),
		t: linear.ScaleV3(-1, linear.RotateInv(a.q, a.t)),
	}
}

// Between returns Compose(Inverse(a), b), the pose of b expressed
// in a's frame.
func Between[T rigid.Float](a, b Pose[T]) Pose[T] {
	return Pose[T]{
		q: linear.MulQ(linear.ConjQ(a.q), b.q),
		t: linear.RotateInv(a.q, linear.SubV3(b.t, a.t)),
	}
}

// Transform returns p applied to the point v.
func (p Pose[T]) Transform(v linear.V3[T]) linear.V3[T] {
	return linear.AddV3(p.t, linear.Rotate(p.q, v))
}

// InverseTransform returns the inverse of p applied to the point v.
func (p Pose[T]) InverseTransform(v linear.V3[T]) linear.V3[T] {
	return linear.RotateInv(p.q, linear.SubV3(v, p.t))
}

// Matrix returns the homogeneous matrix of p, column-major.
func (p Pose[T]) Matrix() linear.M4[T] {
	r := linear.MatQ(p.q)
	return linear.M4[T]{
		{r[0][0], r[0][1], r[0][2], 0},
		{r[1][0], r[1][1], r[1][2], 0},
		{r[2][0], r[2][1], r[2][2], 0},
		{p.t[0], p.t[1], p.t[2], 1},
	}
}
