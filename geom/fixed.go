// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed is a signed 26.6 fixed-point scalar.
type Fixed = fixed.Int26_6

// Point is a device-space point with fixed-point coordinates.
type Point = fixed.Point26_6

// Fixed-point format parameters.
const (
	FixedFracBits       = 6
	FixedOne      Fixed = 1 << FixedFracBits
	FixedHalf     Fixed = FixedOne / 2
	FixedMask     Fixed = FixedOne - 1
	FixedMax      Fixed = math.MaxInt32
	FixedMin      Fixed = math.MinInt32
)

// Pt returns the point (x, y).
func Pt(x, y Fixed) Point {
	return Point{X: x, Y: y}
}

// PtInt returns the point with integer coordinates (x, y).
func PtInt(x, y int) Point {
	return Point{X: IntToFixed(x), Y: IntToFixed(y)}
}

// PtFloat returns the point nearest to (x, y).
func PtFloat(x, y float64) Point {
	return Point{X: FloatToFixed(x), Y: FloatToFixed(y)}
}

// FloatToFixed converts f to the nearest Fixed value.
// Values outside the representable range saturate; NaN converts to zero.
func FloatToFixed(f float64) Fixed {
	if math.IsNaN(f) {
		return 0
	}
	v := math.Round(f * float64(FixedOne))
	switch {
	case v >= math.MaxInt32:
		return FixedMax
	case v <= math.MinInt32:
		return FixedMin
	}
	return Fixed(v)
}

// FixedToFloat converts f to float64. The conversion is exact.
func FixedToFloat(f Fixed) float64 {
	return float64(f) / float64(FixedOne)
}

// Integer range representable as Fixed.
const (
	maxFixedInt = int(FixedMax >> FixedFracBits)
	minFixedInt = int(FixedMin >> FixedFracBits)
)

// IntToFixed converts an integer to Fixed. Integers outside the
// representable range saturate like FloatToFixed.
func IntToFixed(i int) Fixed {
	switch {
	case i > maxFixedInt:
		return FixedMax
	case i < minFixedInt:
		return FixedMin
	}
	return Fixed(i << FixedFracBits)
}

// FixedFloor returns the greatest integer not above f.
func FixedFloor(f Fixed) int {
	return f.Floor()
}

// FixedCeil returns the least integer not below f.
func FixedCeil(f Fixed) int {
	return int((int64(f) + int64(FixedMask)) >> FixedFracBits)
}

// FixedRound returns f rounded to the nearest integer, halves rounding up.
func FixedRound(f Fixed) int {
	return int((int64(f) + int64(FixedHalf)) >> FixedFracBits)
}

// FixedIsInteger reports whether f has no fractional part.
func FixedIsInteger(f Fixed) bool {
	return f&FixedMask == 0
}

// FixedFrac returns the fractional part of f, always in [0, FixedOne).
func FixedFrac(f Fixed) Fixed {
	return f & FixedMask
}

// FixedMul returns a*b rounded to the nearest Fixed value.
// The product is formed in 64 bits.
func FixedMul(a, b Fixed) Fixed {
	return a.Mul(b)
}

// FixedMulDiv returns a*b/c with the product formed in 64 bits and the
// quotient truncated toward zero. c must be non-zero.
func FixedMulDiv(a, b, c Fixed) Fixed {
	return Fixed(int64(a) * int64(b) / int64(c))
}

// FixedShift shifts f left by n bits when n is positive and right
// (arithmetically) when n is negative.
func FixedShift(f Fixed, n int) Fixed {
	if n >= 0 {
		return f << uint(n)
	}
	return f >> uint(-n)
}
