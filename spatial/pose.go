// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package spatial bridges the float64 pose types to the gonum and
// geo vector algebra most estimation code is written against.
// Orientation is a gonum quat.Number, translation an r3.Vector; the
// tangent-space operations delegate to package se3.
package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/rigidgeo/rigid/linear"
	"github.com/rigidgeo/rigid/se3"
)

// Pose is a rigid transform: a unit orientation quaternion and a
// translation.
type Pose struct {
	R quat.Number
	T r3.Vector
}

// New returns the pose with orientation r and translation t.
// r must be unit-norm; it is not checked.
func New(r quat.Number, t r3.Vector) Pose {
	return Pose{R: r, T: t}
}

// Identity returns the identity pose.
func Identity() Pose {
	return Pose{R: quat.Number{Real: 1}}
}

// FromSE3 converts p to a spatial pose.
func FromSE3(p se3.Pose[float64]) Pose {
	q := p.Rotation()
	t := p.Translation()
	return Pose{
		R: quat.Number{Real: q.R, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]},
		T: r3.Vector{X: t[0], Y: t[1], Z: t[2]},
	}
}

// SE3 converts p to its se3 representation.
func (p Pose) SE3() se3.Pose[float64] {
	return se3.New(
		linear.Q[float64]{V: linear.V3[float64]{p.R.Imag, p.R.Jmag, p.R.Kmag}, R: p.R.Real},
		linear.V3[float64]{p.T.X, p.T.Y, p.T.Z},
	)
}

// Compose returns the group product a ⋅ b.
func Compose(a, b Pose) Pose {
	return Pose{
		R: quat.Mul(a.R, b.R),
		T: a.T.Add(a.rotate(b.T)),
	}
}

// Inverse returns the group inverse of a.
func Inverse(a Pose) Pose {
	r := quat.Conj(a.R)
	inv := Pose{R: r}
	return Pose{R: r, T: inv.rotate(a.T).Mul(-1)}
}

// Between returns the pose of b expressed in a's frame.
func Between(a, b Pose) Pose {
	return Compose(Inverse(a), b)
}

// Normalize returns p with its orientation scaled to unit norm.
// The se3 maps never need this, but an optimizer that composes many
// externally supplied poses may.
func Normalize(p Pose) Pose {
	return Pose{R: quat.Scale(1/quat.Abs(p.R), p.R), T: p.T}
}

// TransformPoint returns p applied to the point pt.
func (p Pose) TransformPoint(pt r3.Vector) r3.Vector {
	return p.T.Add(p.rotate(pt))
}

// rotate conjugates pt by the orientation of p.
func (p Pose) rotate(pt r3.Vector) r3.Vector {
	q := quat.Mul(quat.Mul(p.R, quat.Number{Imag: pt.X, Jmag: pt.Y, Kmag: pt.Z}), quat.Conj(p.R))
	return r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// Step applies the tangent t to a, delegating to the drift-free
// se3 retraction.
func Step(a Pose, t se3.Tangent[float64], eps float64) Pose {
	return FromSE3(se3.Retract(a.SE3(), t, eps))
}

// Delta measures the tangent that carries a to b, the pose-error
// signal of estimation problems.
func Delta(a, b Pose, eps float64) se3.Tangent[float64] {
	return se3.LocalCoordinates(a.SE3(), b.SE3(), eps)
}

// Mat4 returns the homogeneous matrix of p.
func (p Pose) Mat4() mgl64.Mat4 {
	m := p.MglQuat().Mat4()
	m.SetCol(3, mgl64.Vec4{p.T.X, p.T.Y, p.T.Z, 1})
	return m
}

// MglQuat returns the orientation of p as an mgl64 quaternion.
func (p Pose) MglQuat() mgl64.Quat {
	return mgl64.Quat{W: p.R.Real, V: mgl64.Vec3{p.R.Imag, p.R.Jmag, p.R.Kmag}}
}

// FromMgl returns the pose with the given mgl64 orientation and
// translation.
func FromMgl(q mgl64.Quat, t mgl64.Vec3) Pose {
	return Pose{
		R: quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]},
		T: r3.Vector{X: t[0], Y: t[1], Z: t[2]},
	}
}
