// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "golang.org/x/image/math/fixed"

// Box is an axis-aligned box with fixed-point corners. A normalized box has
// P1 <= P2 componentwise; the constructors in this package always normalize.
type Box struct {
	P1, P2 Point
}

// NewBox returns the normalized box spanned by a and b.
func NewBox(a, b Point) Box {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Box{P1: a, P2: b}
}

// BoxFromFloats returns the normalized box spanned by (x1, y1) and (x2, y2).
func BoxFromFloats(x1, y1, x2, y2 float64) Box {
	return NewBox(PtFloat(x1, y1), PtFloat(x2, y2))
}

// BoxFromRectangle converts an integer rectangle to a box.
func BoxFromRectangle(r Rectangle) Box {
	return Box{
		P1: PtInt(r.X, r.Y),
		P2: PtInt(r.X+r.Width, r.Y+r.Height),
	}
}

// BoxesExtents returns the smallest box covering every box in boxes.
// It panics if boxes is empty.
func BoxesExtents(boxes []Box) Box {
	if len(boxes) == 0 {
		panic("geom: BoxesExtents of no boxes")
	}
	ext := boxes[0]
	for _, b := range boxes[1:] {
		ext = ext.Union(b)
	}
	return ext
}

// Floats returns the corners of b as float64 values.
func (b Box) Floats() (x1, y1, x2, y2 float64) {
	return FixedToFloat(b.P1.X), FixedToFloat(b.P1.Y),
		FixedToFloat(b.P2.X), FixedToFloat(b.P2.Y)
}

// Rectangle26_6 returns b as a fixed.Rectangle26_6.
func (b Box) Rectangle26_6() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.P1, Max: b.P2}
}

// IsEmpty reports whether b encloses no area.
func (b Box) IsEmpty() bool {
	return b.P1.X >= b.P2.X || b.P1.Y >= b.P2.Y
}

// ContainsPoint reports whether p lies inside b or on its boundary.
func (b Box) ContainsPoint(p Point) bool {
	return p.X >= b.P1.X && p.X <= b.P2.X &&
		p.Y >= b.P1.Y && p.Y <= b.P2.Y
}

// Contains reports whether o lies entirely within b.
func (b Box) Contains(o Box) bool {
	return b.P1.X <= o.P1.X && b.P1.Y <= o.P1.Y &&
		b.P2.X >= o.P2.X && b.P2.Y >= o.P2.Y
}

// AddPoint grows b to cover p.
func (b *Box) AddPoint(p Point) {
	if p.X < b.P1.X {
		b.P1.X = p.X
	} else if p.X > b.P2.X {
		b.P2.X = p.X
	}
	if p.Y < b.P1.Y {
		b.P1.Y = p.Y
	} else if p.Y > b.P2.Y {
		b.P2.Y = p.Y
	}
}

// Union returns the smallest box covering both b and o.
func (b Box) Union(o Box) Box {
	u := b
	u.P1.X = min(u.P1.X, o.P1.X)
	u.P1.Y = min(u.P1.Y, o.P1.Y)
	u.P2.X = max(u.P2.X, o.P2.X)
	u.P2.Y = max(u.P2.Y, o.P2.Y)
	return u
}

// Translate returns b offset by (dx, dy).
func (b Box) Translate(dx, dy Fixed) Box {
	return Box{
		P1: Point{X: b.P1.X + dx, Y: b.P1.Y + dy},
		P2: Point{X: b.P2.X + dx, Y: b.P2.Y + dy},
	}
}

// RoundOut returns the smallest integer rectangle covering b: the minimum
// corner is floored and the maximum corner is ceiled.
func (b Box) RoundOut() Rectangle {
	x1, y1 := FixedFloor(b.P1.X), FixedFloor(b.P1.Y)
	x2, y2 := FixedCeil(b.P2.X), FixedCeil(b.P2.Y)
	return Rectangle{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// IsPixelAligned reports whether every corner of b lies on an integer.
func (b Box) IsPixelAligned() bool {
	return FixedIsInteger(b.P1.X) && FixedIsInteger(b.P1.Y) &&
		FixedIsInteger(b.P2.X) && FixedIsInteger(b.P2.Y)
}
