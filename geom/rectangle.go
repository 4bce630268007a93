// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "image"

// Rectangle is an integer rectangle given by its origin and size.
// Width and Height are never negative.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Rect returns the rectangle with origin (x, y) and the given size.
func Rect(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// RectangleFromImage converts an image.Rectangle.
func RectangleFromImage(r image.Rectangle) Rectangle {
	r = r.Canon()
	return Rectangle{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Image returns r as an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// IsEmpty reports whether r encloses no pixels.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether o lies entirely within r.
func (r Rectangle) Contains(o Rectangle) bool {
	return r.X <= o.X && r.Y <= o.Y &&
		r.X+r.Width >= o.X+o.Width &&
		r.Y+r.Height >= o.Y+o.Height
}

// Intersect returns the intersection of r and o. When they do not overlap
// it returns the zero Rectangle and false.
func (r Rectangle) Intersect(o Rectangle) (Rectangle, bool) {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)

	if x1 >= x2 || y1 >= y2 {
		return Rectangle{}, false
	}
	return Rectangle{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// Union returns the smallest rectangle covering r and o. Empty rectangles
// do not contribute.
func (r Rectangle) Union(o Rectangle) Rectangle {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.X+r.Width, o.X+o.Width)
	y2 := max(r.Y+r.Height, o.Y+o.Height)
	return Rectangle{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
