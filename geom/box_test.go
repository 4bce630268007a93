// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "testing"

func TestNewBoxNormalizes(t *testing.T) {
	b := NewBox(PtInt(10, 2), PtInt(1, 8))
	want := Box{P1: PtInt(1, 2), P2: PtInt(10, 8)}
	if b != want {
		t.Errorf("NewBox() = %+v, want %+v", b, want)
	}
}

func TestBoxesExtents(t *testing.T) {
	boxes := []Box{
		NewBox(PtInt(0, 0), PtInt(1, 1)),
		NewBox(PtInt(5, 5), PtInt(6, 6)),
	}
	got := BoxesExtents(boxes)
	want := NewBox(PtInt(0, 0), PtInt(6, 6))
	if got != want {
		t.Errorf("BoxesExtents() = %+v, want %+v", got, want)
	}
	if !got.Contains(boxes[0]) || !got.Contains(boxes[1]) {
		t.Error("extents do not contain every input box")
	}
}

func TestBoxesExtentsSingle(t *testing.T) {
	b := BoxFromFloats(-1.5, 2, 3, 4.25)
	if got := BoxesExtents([]Box{b}); got != b {
		t.Errorf("BoxesExtents(one) = %+v, want %+v", got, b)
	}
}

func TestBoxesExtentsEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BoxesExtents(nil) did not panic")
		}
	}()
	BoxesExtents(nil)
}

func TestBoxContainsPoint(t *testing.T) {
	b := NewBox(PtInt(0, 0), PtInt(10, 10))
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", PtInt(5, 5), true},
		{"corner", PtInt(0, 0), true},
		{"far edge", PtInt(10, 3), true},
		{"left", PtInt(-1, 5), false},
		{"below", PtFloat(5, 10.015625), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoxAddPoint(t *testing.T) {
	b := Box{P1: PtInt(2, 2), P2: PtInt(2, 2)}
	b.AddPoint(PtInt(-1, 4))
	b.AddPoint(PtInt(3, 0))
	want := Box{P1: PtInt(-1, 0), P2: PtInt(3, 4)}
	if b != want {
		t.Errorf("AddPoint() box = %+v, want %+v", b, want)
	}
}

func TestBoxRoundOut(t *testing.T) {
	b := BoxFromFloats(0.5, -0.25, 2.25, 3)
	want := Rect(0, -1, 3, 4)
	if got := b.RoundOut(); got != want {
		t.Errorf("RoundOut() = %+v, want %+v", got, want)
	}
	if b.IsPixelAligned() {
		t.Error("IsPixelAligned() = true for fractional box")
	}
}

func TestBoxFromRectangle(t *testing.T) {
	r := Rect(1, 2, 3, 4)
	b := BoxFromRectangle(r)
	if !b.IsPixelAligned() {
		t.Error("BoxFromRectangle() not pixel aligned")
	}
	if got := b.RoundOut(); got != r {
		t.Errorf("BoxFromRectangle(%+v).RoundOut() = %+v", r, got)
	}
	x1, y1, x2, y2 := b.Floats()
	if x1 != 1 || y1 != 2 || x2 != 4 || y2 != 6 {
		t.Errorf("Floats() = %v %v %v %v, want 1 2 4 6", x1, y1, x2, y2)
	}
	rr := b.Rectangle26_6()
	if rr.Min != b.P1 || rr.Max != b.P2 {
		t.Errorf("Rectangle26_6() = %+v", rr)
	}
}

func TestBoxFromRectangleSaturates(t *testing.T) {
	b := BoxFromRectangle(Rect(-1<<26, 0, 1<<27, 1<<26))
	if b.P1.X != FixedMin || b.P2.X != FixedMax || b.P2.Y != FixedMax {
		t.Errorf("BoxFromRectangle() = %+v, want saturated corners", b)
	}
	if b.P1.X > b.P2.X || b.P1.Y > b.P2.Y {
		t.Errorf("BoxFromRectangle() = %+v is inverted", b)
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBox(PtInt(0, 0), PtInt(2, 2)).Translate(IntToFixed(3), IntToFixed(-1))
	want := NewBox(PtInt(3, -1), PtInt(5, 1))
	if b != want {
		t.Errorf("Translate() = %+v, want %+v", b, want)
	}
}
