// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for rigid-body transforms.
package linear

import (
	"github.com/rigidgeo/rigid"
)

// V2 is a 2-component vector of T.
type V2[T rigid.Float] [2]T

// AddV2 returns v + w.
func AddV2[T rigid.Float](v, w V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV2 returns v - w.
func SubV2[T rigid.Float](v, w V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV2 returns s ⋅ v.
func ScaleV2[T rigid.Float](s T, v V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV2 returns v ⋅ w.
func DotV2[T rigid.Float](v, w V2[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// V3 is a 3-component vector of T.
type V3[T rigid.Float] [3]T

// AddV3 returns v + w.
func AddV3[T rigid.Float](v, w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV3 returns v - w.
func SubV3[T rigid.Float](v, w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3[T rigid.Float](s T, v V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3[T rigid.Float](v, w V3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
func LenV3[T rigid.Float](v V3[T]) T {
	return Sqrt(DotV3(v, v))
}

// NormV3 returns v normalized.
func NormV3[T rigid.Float](v V3[T]) V3[T] {
	return ScaleV3(1/LenV3(v), v)
}

// Cross returns v × w.
func Cross[T rigid.Float](v, w V3[T]) (u V3[T]) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// V4 is a 4-component vector of T.
type V4[T rigid.Float] [4]T

// AddV4 returns v + w.
func AddV4[T rigid.Float](v, w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// ScaleV4 returns s ⋅ v.
func ScaleV4[T rigid.Float](s T, v V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV4 returns v ⋅ w.
func DotV4[T rigid.Float](v, w V4[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}
