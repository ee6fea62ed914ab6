// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package se3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/rigidgeo/rigid/linear"
)

const eps = 1e-8

// tangents cover identity, small, moderate and near-π rotations.
// Generators with ‖ω‖ of the order sqrt(eps) are deliberately
// absent: there the clamped arc cosine dominates the recovered
// angle and the round trip is only epsilon-accurate.
var tangents = []Tangent[float64]{
	{},
	{W: linear.V3[float64]{0, 0, 0}, V: linear.V3[float64]{1, 2, 3}},
	{W: linear.V3[float64]{1e-3, 0, 0}, V: linear.V3[float64]{0, -1, 0.5}},
	{W: linear.V3[float64]{0.1, -0.2, 0.3}, V: linear.V3[float64]{-4, 2, 0}},
	{W: linear.V3[float64]{0.7, 0.7, -0.1}, V: linear.V3[float64]{0.3, 0, -9}},
	{W: linear.V3[float64]{-1.2, 0.4, 2.0}, V: linear.V3[float64]{5, 5, 5}},
	{W: linear.V3[float64]{3.0, 0.5, 0}, V: linear.V3[float64]{1, 0, 1}},
}

func nearV3(t *testing.T, op string, have, want linear.V3[float64], tol float64) {
	t.Helper()
	for i := range have {
		if !scalar.EqualWithinAbs(have[i], want[i], tol) {
			t.Fatalf("%s\nhave %v\nwant %v", op, have, want)
		}
	}
}

func nearTangent(t *testing.T, op string, have, want Tangent[float64], tol float64) {
	t.Helper()
	nearV3(t, op, have.W, want.W, tol)
	nearV3(t, op, have.V, want.V, tol)
}

func TestExpZero(t *testing.T) {
	p := Exp(Tangent[float64]{}, eps)
	q := p.Rotation()
	if q.V != (linear.V3[float64]{}) {
		t.Fatalf("Exp(0): rotation imaginary part\nhave %v\nwant [0 0 0]", q.V)
	}
	if !scalar.EqualWithinAbs(q.R, 1, 1e-15) {
		t.Fatalf("Exp(0): rotation real part\nhave %v\nwant 1", q.R)
	}
	if p.Translation() != (linear.V3[float64]{}) {
		t.Fatalf("Exp(0): translation\nhave %v\nwant [0 0 0]", p.Translation())
	}
}

func TestExpPureTranslation(t *testing.T) {
	p := Exp(Tangent[float64]{V: linear.V3[float64]{1, 2, 3}}, eps)
	q := p.Rotation()
	if q.V != (linear.V3[float64]{}) || !scalar.EqualWithinAbs(q.R, 1, 1e-15) {
		t.Fatalf("Exp: rotation\nhave %v %v\nwant [0 0 0] 1", q.V, q.R)
	}
	nearV3(t, "Exp: translation", p.Translation(), linear.V3[float64]{1, 2, 3}, 1e-15)
}

func TestExpHalfTurn(t *testing.T) {
	p := Exp(Tangent[float64]{W: linear.V3[float64]{math.Pi, 0, 0}}, eps)
	q := p.Rotation()
	nearV3(t, "Exp: half-turn axis", q.V, linear.V3[float64]{1, 0, 0}, 1e-9)
	if !scalar.EqualWithinAbs(q.R, 0, 1e-9) {
		t.Fatalf("Exp: half-turn real part\nhave %v\nwant 0", q.R)
	}
	nearV3(t, "Exp: half-turn translation", p.Translation(), linear.V3[float64]{}, 1e-15)

	// The recovered generator has ‖ω‖ = π; the axis sign at this
	// boundary is an edge case of the principal branch.
	w := Log(p, eps).W
	if n := linear.LenV3(w); !scalar.EqualWithinAbs(n, math.Pi, 1e-6) {
		t.Fatalf("Log: half-turn angle\nhave %v\nwant %v", n, math.Pi)
	}
}

func TestExpUnitNorm(t *testing.T) {
	for _, tan := range tangents {
		q := Exp(tan, eps).Rotation()
		if n := linear.LenQ(q); !scalar.EqualWithinAbs(n, 1, 1e-9) {
			t.Fatalf("Exp(%v): rotation norm\nhave %v\nwant 1", tan, n)
		}
	}
}

func TestLogExpRoundTrip(t *testing.T) {
	for _, tan := range tangents {
		got := Log(Exp(tan, eps), eps)
		nearTangent(t, "Log(Exp)", got, tan, 1e-6)
	}
}

func TestRetractZero(t *testing.T) {
	for _, tan := range tangents {
		a := Exp(tan, eps)
		b := Retract(a, Tangent[float64]{}, eps)
		if a.Data() != b.Data() {
			t.Fatalf("Retract(a, 0)\nhave %v\nwant %v", b.Data(), a.Data())
		}
	}
}

func TestRetractComposeExp(t *testing.T) {
	a := Exp(tangents[3], eps)
	for _, tan := range tangents {
		have := Retract(a, tan, eps)
		want := Compose(a, Exp(tan, eps))
		hd, wd := have.Data(), want.Data()
		for i := range hd {
			if !scalar.EqualWithinAbs(hd[i], wd[i], 1e-12) {
				t.Fatalf("Retract vs Compose∘Exp\nhave %v\nwant %v", hd, wd)
			}
		}
	}
}

func TestLocalCoordinatesSame(t *testing.T) {
	for _, tan := range tangents {
		a := Exp(tan, eps)
		got := LocalCoordinates(a, a, eps)
		if got.W != (linear.V3[float64]{}) || got.V != (linear.V3[float64]{}) {
			t.Fatalf("LocalCoordinates(a, a)\nhave %v\nwant zero", got)
		}
	}
}

func TestLocalCoordinatesRetract(t *testing.T) {
	small := []Tangent[float64]{
		{W: linear.V3[float64]{0.05, 0, 0}, V: linear.V3[float64]{0.02, -0.01, 0}},
		{W: linear.V3[float64]{-0.01, 0.03, 0.02}, V: linear.V3[float64]{0, 0.05, 0.05}},
		{W: linear.V3[float64]{0.002, 0.004, -0.006}, V: linear.V3[float64]{-0.08, 0, 0.01}},
	}
	for _, base := range tangents {
		a := Exp(base, eps)
		for _, tan := range small {
			got := LocalCoordinates(a, Retract(a, tan, eps), eps)
			nearTangent(t, "LocalCoordinates(a, Retract(a, t))", got, tan, 1e-5)
		}
	}
}

func TestLocalCoordinatesLogBetween(t *testing.T) {
	a := Exp(tangents[4], eps)
	b := Exp(tangents[5], eps)
	have := LocalCoordinates(a, b, eps)
	want := Log(Between(a, b), eps)
	nearTangent(t, "LocalCoordinates vs Log∘Between", have, want, 1e-12)
}

func TestFloat32(t *testing.T) {
	const eps32 = 1.1920929e-6
	tan := Tangent[float32]{
		W: linear.V3[float32]{0.3, -0.5, 0.2},
		V: linear.V3[float32]{1, -2, 0.5},
	}
	a := Exp(tan, float32(eps32))
	if n := linear.LenQ(a.Rotation()); n < 1-1e-6 || n > 1+1e-6 {
		t.Fatalf("Exp: float32 rotation norm\nhave %v\nwant 1", n)
	}
	got := Log(a, float32(eps32))
	for i := range got.W {
		dw := float64(got.W[i] - tan.W[i])
		dv := float64(got.V[i] - tan.V[i])
		if math.Abs(dw) > 1e-4 || math.Abs(dv) > 1e-4 {
			t.Fatalf("Log(Exp): float32\nhave %v\nwant %v", got, tan)
		}
	}
	b := Retract(a, Tangent[float32]{}, float32(eps32))
	if a.Data() != b.Data() {
		t.Fatalf("Retract(a, 0): float32\nhave %v\nwant %v", b.Data(), a.Data())
	}
}

func TestData(t *testing.T) {
	d := [7]float64{0, 0.6, 0, 0.8, 1, 2, 3}
	p := FromData(d)
	if p.Data() != d {
		t.Fatalf("FromData/Data\nhave %v\nwant %v", p.Data(), d)
	}
	if q := p.Rotation(); q.V != (linear.V3[float64]{0, 0.6, 0}) || q.R != 0.8 {
		t.Fatalf("Rotation\nhave %v\nwant [0 0.6 0] 0.8", q)
	}
	if p.Translation() != (linear.V3[float64]{1, 2, 3}) {
		t.Fatalf("Translation\nhave %v\nwant [1 2 3]", p.Translation())
	}
	if !p.IsNormalized(1e-12) {
		t.Fatalf("IsNormalized\nhave false\nwant true")
	}
	if FromData([7]float64{0, 0, 0, 2}).IsNormalized(1e-12) {
		t.Fatalf("IsNormalized\nhave true\nwant false")
	}
}
