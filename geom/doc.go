// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the numeric substrate of vgcore: 26.6 fixed-point
// scalars, exact wide-integer products, and the axis-aligned box, rectangle
// and line geometry built on top of them.
//
// Device-space coordinates are [Fixed] values (an alias of
// fixed.Int26_6 from golang.org/x/image/math/fixed), so a Point can be handed
// directly to any x/image API that accepts fixed.Point26_6.
//
// Addition and subtraction of Fixed values are exact as long as the result
// stays in range. Products that could overflow 32 bits go through int64
// ([Mul32x32], [FixedMul]) and products of 64-bit values go through [Int128]
// ([Mul64x64]), so the geometric predicates in this package never lose
// precision to silent wraparound.
package geom
