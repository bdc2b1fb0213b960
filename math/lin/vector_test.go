// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package lin

import (
	"math"
	"testing"
)

// While the functions below are not complicated, they are foundational such
// that it is better to test each one of them then have the bugs discovered
// later from other code.

func TestSetV3(t *testing.T) {
	v, a := &V3{}, &V3{1, 2, 3}
	if !v.Set(a).Eq(a) {
		t.Errorf("%+v is not the same as %+v", v, a)
	}
}

func TestAddSubV2(t *testing.T) {
	v, a, b := &V2{}, &V2{1, 2}, &V2{3, 4}
	v.Add(a, b)
	if !v.Eq(&V2{4, 6}) {
		t.Errorf("Add got %+v, want {4 6}", v)
	}
	v.Sub(v, b)
	if !v.Eq(a) {
		t.Errorf("Sub got %+v, want %+v", v, a)
	}
}

func TestCrossV3(t *testing.T) {
	v, x, y := &V3{}, &V3{1, 0, 0}, &V3{0, 1, 0}
	v.Cross(x, y)
	if !v.Eq(&V3{0, 0, 1}) {
		t.Errorf("Cross got %+v, want {0 0 1}", v)
	}
}

func TestCross2(t *testing.T) {
	a, b := &V2{1, 0}, &V2{0, 1}
	if got := Cross2(a, b); got != 1 {
		t.Errorf("Cross2 got %v, want 1", got)
	}
}

func TestUnitV3(t *testing.T) {
	v := &V3{3, 4, 0}
	v.Unit()
	if !Aeq(v.Len(), 1) {
		t.Errorf("Unit length got %v, want 1", v.Len())
	}
}

func TestPerp(t *testing.T) {
	v, a := &V2{}, &V2{1, 0}
	v.Perp(a)
	if !v.Eq(&V2{0, 1}) {
		t.Errorf("Perp got %+v, want {0 1}", v)
	}
}

func TestRotate(t *testing.T) {
	v, a := &V2{}, &V2{1, 0}
	v.Rotate(a, math.Pi/2)
	if !v.Aeq(&V2{0, 1}) {
		t.Errorf("Rotate got %+v, want ~{0 1}", v)
	}
}

func TestDistSqrV2(t *testing.T) {
	a, b := &V2{0, 0}, &V2{3, 4}
	if got := a.DistSqr(b); got != 25 {
		t.Errorf("DistSqr got %v, want 25", got)
	}
}
