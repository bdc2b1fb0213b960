// SPDX-FileCopyrightText : © 2024-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package lin

import (
	"math"
	"testing"
)

func TestAffineIdentity(t *testing.T) {
	p := &V2{3, 4}
	got := AffineI().Apply(p)
	if !got.Eq(p) {
		t.Errorf("identity got %+v, want %+v", got, p)
	}
}

func TestAffineTranslateRotateCompose(t *testing.T) {
	rot := Rotation(math.Pi / 2)
	tr := Translation(10, 0)
	m := &Affine{}
	m.Mult(rot, tr) // rotate then translate
	got := m.Apply(&V2{1, 0})
	want := &V2{10, 1}
	if !got.Aeq(want) {
		t.Errorf("Mult(rot,tr) applied to (1,0) got %+v, want %+v", got, want)
	}
}

func TestAffineInverse(t *testing.T) {
	m := &Affine{}
	m.Mult(Rotation(0.7), Translation(3, -2))
	inv := m.Inverse()
	if inv == nil {
		t.Fatalf("expected invertible matrix")
	}
	p := &V2{5, -1}
	round := inv.Apply(m.Apply(p))
	if !round.AeqTol(p, 1e-9) {
		t.Errorf("round-trip got %+v, want %+v", round, p)
	}
}

func TestAffineSingular(t *testing.T) {
	m := &Affine{A: 0, B: 0, C: 0, D: 0, E: 1, F: 1}
	if m.Inverse() != nil {
		t.Errorf("expected nil inverse for singular matrix")
	}
}

func TestReflection(t *testing.T) {
	// reflecting across the X axis sends (x,y) -> (x,-y).
	m := Reflection(0)
	got := m.Apply(&V2{2, 3})
	want := &V2{2, -3}
	if !got.Aeq(want) {
		t.Errorf("Reflection(0) got %+v, want %+v", got, want)
	}
}
