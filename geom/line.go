// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Line is a segment between two fixed-point points.
type Line struct {
	P1, P2 Point
}

// IntersectsLineSegment reports whether the segment l passes through b.
//
// The test never divides. A segment with an endpoint inside b intersects
// it. Otherwise the parametric ranges over which l lies within the x and y
// slabs of b are compared by cross-multiplication, using 64-bit differences
// and exact 128-bit products.
func (b Box) IntersectsLineSegment(l Line) bool {
	if b.ContainsPoint(l.P1) || b.ContainsPoint(l.P2) {
		return true
	}

	var t1, t2, t3, t4 int64

	xlen := int64(l.P2.X) - int64(l.P1.X)
	ylen := int64(l.P2.Y) - int64(l.P1.Y)

	if xlen != 0 {
		if xlen > 0 {
			t1 = int64(b.P1.X) - int64(l.P1.X)
			t2 = int64(b.P2.X) - int64(l.P1.X)
		} else {
			t1 = int64(l.P1.X) - int64(b.P2.X)
			t2 = int64(l.P1.X) - int64(b.P1.X)
			xlen = -xlen
		}
		if t1 > xlen || t2 < 0 {
			return false
		}
	} else if l.P1.X < b.P1.X || l.P1.X > b.P2.X {
		// Vertical segment outside the x slab.
		return false
	}

	if ylen != 0 {
		if ylen > 0 {
			t3 = int64(b.P1.Y) - int64(l.P1.Y)
			t4 = int64(b.P2.Y) - int64(l.P1.Y)
		} else {
			t3 = int64(l.P1.Y) - int64(b.P2.Y)
			t4 = int64(l.P1.Y) - int64(b.P1.Y)
			ylen = -ylen
		}
		if t3 > ylen || t4 < 0 {
			return false
		}
	} else if l.P1.Y < b.P1.Y || l.P1.Y > b.P2.Y {
		return false
	}

	// Axis-aligned segments that survived both slab tests cross the box.
	if l.P1.X == l.P2.X || l.P1.Y == l.P2.Y {
		return true
	}

	// The x range is [t1/xlen, t2/xlen] and the y range [t3/ylen, t4/ylen];
	// they overlap iff t1/xlen < t4/ylen and t3/ylen < t2/xlen.
	t1y := Mul64x64(t1, ylen)
	t2y := Mul64x64(t2, ylen)
	t3x := Mul64x64(t3, xlen)
	t4x := Mul64x64(t4, xlen)

	return t1y.Lt(t4x) && t3x.Lt(t2y)
}
