// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package rigid provides Lie-group math for rigid-body transforms
// in two and three dimensions.
//
// The se3 and se2 packages implement the group operations and the
// exponential/logarithm maps between group elements and their tangent
// (twist) representations. The spatial package bridges the float64
// types to the gonum/geo ecosystem, and the frame package builds a
// tree of named coordinate frames on top of it.
//
// Every map near the identity involves sin/cos ratios that degenerate
// to 0/0 at zero rotation angle. All such ratios are regularized by a
// caller-supplied epsilon instead of branching; Eps32 and Eps64 are
// suitable defaults. Inputs are not validated: a non-unit quaternion
// or a non-positive epsilon yields NaN/Inf results, never a panic.
package rigid

// Float is the scalar constraint shared by all packages in this
// module. Operations are instantiable at both precisions so callers
// can trade accuracy for throughput per use site.
type Float interface {
	~float32 | ~float64
}

// Suggested regularization epsilons, roughly 10x the machine epsilon
// of each precision.
const (
	Eps32 float32 = 1.1920929e-6
	Eps64 float64 = 2.220446049250313e-15
)

// Eps returns the suggested epsilon for T.
func Eps[T Float]() T {
	// 1 + 1e-10 rounds to 1 in single precision only.
	if 1+T(1e-10) == 1 {
		return T(Eps32)
	}
	return T(Eps64)
}
