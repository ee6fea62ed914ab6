// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"github.com/rigidgeo/rigid"
)

// The transcendental helpers below evaluate in float64 and convert,
// which is exact to within half an ulp of the narrower type.

// Sqrt returns the square root of x.
func Sqrt[T rigid.Float](x T) T { return T(math.Sqrt(float64(x))) }

// Sin returns the sine of x (radians).
func Sin[T rigid.Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[T rigid.Float](x T) T { return T(math.Cos(float64(x))) }

// Acos returns the arc cosine of x (radians).
func Acos[T rigid.Float](x T) T { return T(math.Acos(float64(x))) }

// Atan2 returns the arc tangent of y/x, using the signs of the two
// to determine the quadrant.
func Atan2[T rigid.Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Copysign returns a value with the magnitude of x and the sign of y.
// A zero y counts as positive.
func Copysign[T rigid.Float](x, y T) T { return T(math.Copysign(float64(x), float64(y))) }

// Clamp returns x limited to [lo, hi].
func Clamp[T rigid.Float](x, lo, hi T) T { return min(max(x, lo), hi) }
