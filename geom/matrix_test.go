// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Errorf("Identity() = %+v, want identity matrix", m)
	}
	if x, y := m.TransformPoint(3, -4); x != 3 || y != -4 {
		t.Errorf("Identity().TransformPoint(3, -4) = (%v, %v)", x, y)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, 20)
	if !m.IsTranslation() {
		t.Error("Translate().IsTranslation() = false, want true")
	}
	x, y := m.TransformPoint(5, 5)
	if x != 15 || y != 25 {
		t.Errorf("TransformPoint(5, 5) = (%v, %v), want (15, 25)", x, y)
	}
	dx, dy := m.TransformDistance(5, 5)
	if dx != 5 || dy != 5 {
		t.Errorf("TransformDistance(5, 5) = (%v, %v), want (5, 5)", dx, dy)
	}
	tx, ty, ok := m.IsIntegerTranslation()
	if !ok || tx != 10 || ty != 20 {
		t.Errorf("IsIntegerTranslation() = %d, %d, %v", tx, ty, ok)
	}
	if _, _, ok := Translate(0.5, 0).IsIntegerTranslation(); ok {
		t.Error("Translate(0.5, 0).IsIntegerTranslation() = true")
	}
}

func TestRotate(t *testing.T) {
	x, y := Rotate(math.Pi/2).TransformPoint(1, 0)
	if !almostEqual(x, 0) || !almostEqual(y, 1) {
		t.Errorf("Rotate(pi/2).TransformPoint(1, 0) = (%v, %v), want (0, 1)", x, y)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (12, 2)", x, y)
	}
}

func TestInvert(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular matrix")
	}
	x, y := inv.TransformPoint(m.TransformPoint(7, -2))
	if !almostEqual(x, 7) || !almostEqual(y, -2) {
		t.Errorf("round trip = (%v, %v), want (7, -2)", x, y)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Scale(0, 1).Invert() ok = true, want false")
	}
}

func TestAff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	if got := m.Aff3(); got != (f64.Aff3{1, 2, 3, 4, 5, 6}) {
		t.Errorf("Aff3() = %v", got)
	}
	if d := m.Determinant(); d != -3 {
		t.Errorf("Determinant() = %v, want -3", d)
	}
}
