// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math/bits"

// Mul32x32 returns the exact 64-bit product of a and b.
func Mul32x32(a, b int32) int64 {
	return int64(a) * int64(b)
}

// Int128 is a signed 128-bit two's complement integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// Mul64x64 returns the exact 128-bit product of a and b.
func Mul64x64(a, b int64) Int128 {
	neg := false
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
		neg = !neg
	}
	if b < 0 {
		ub = uint64(-b)
		neg = !neg
	}
	hi, lo := bits.Mul64(ua, ub)
	r := Int128{Hi: int64(hi), Lo: lo}
	if neg {
		return r.Neg()
	}
	return r
}

// Add returns x+y, wrapping on overflow.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	return Int128{Hi: x.Hi + y.Hi + int64(carry), Lo: lo}
}

// Sub returns x-y, wrapping on overflow.
func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	return Int128{Hi: x.Hi - y.Hi - int64(borrow), Lo: lo}
}

// Neg returns -x.
func (x Int128) Neg() Int128 {
	lo := ^x.Lo + 1
	hi := ^x.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Hi: hi, Lo: lo}
}

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Int128) Cmp(y Int128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	}
	return 0
}

// Lt reports whether x < y.
func (x Int128) Lt(y Int128) bool { return x.Cmp(y) < 0 }

// Eq reports whether x == y.
func (x Int128) Eq(y Int128) bool { return x == y }

// IsZero reports whether x == 0.
func (x Int128) IsZero() bool { return x.Hi == 0 && x.Lo == 0 }

// Sign returns -1, 0 or +1.
func (x Int128) Sign() int {
	switch {
	case x.Hi < 0:
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// Lsl returns x shifted left by n bits.
func (x Int128) Lsl(n uint) Int128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return Int128{}
	case n >= 64:
		return Int128{Hi: int64(x.Lo << (n - 64))}
	}
	return Int128{
		Hi: x.Hi<<n | int64(x.Lo>>(64-n)),
		Lo: x.Lo << n,
	}
}

// Rsa returns x shifted right arithmetically by n bits.
func (x Int128) Rsa(n uint) Int128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return Int128{Hi: x.Hi >> 63, Lo: uint64(x.Hi >> 63)}
	case n >= 64:
		return Int128{Hi: x.Hi >> 63, Lo: uint64(x.Hi >> (n - 64))}
	}
	return Int128{
		Hi: x.Hi >> n,
		Lo: x.Lo>>n | uint64(x.Hi)<<(64-n),
	}
}

// Int64 returns x as an int64 and reports whether the conversion was exact.
func (x Int128) Int64() (int64, bool) {
	v := int64(x.Lo)
	return v, (x.Hi == 0 && v >= 0) || (x.Hi == -1 && v < 0)
}
