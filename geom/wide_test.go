// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"math"
	"testing"
)

func TestMul32x32(t *testing.T) {
	got := Mul32x32(math.MaxInt32, math.MaxInt32)
	want := int64(math.MaxInt32) * int64(math.MaxInt32)
	if got != want {
		t.Errorf("Mul32x32(MaxInt32, MaxInt32) = %d, want %d", got, want)
	}
	if got := Mul32x32(math.MinInt32, -1); got != 1<<31 {
		t.Errorf("Mul32x32(MinInt32, -1) = %d, want %d", got, int64(1)<<31)
	}
}

func TestMul64x64(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int64
		want   Int128
		fits   bool
		want64 int64
	}{
		{"small", 6, 7, Int128{Lo: 42}, true, 42},
		{"negative", -3, 4, Int128From64(-12), true, -12},
		{"both negative", -5, -5, Int128{Lo: 25}, true, 25},
		{"overflows int64", math.MaxInt64, 2, Int128{Lo: math.MaxUint64 - 1}, false, 0},
		{"min times minus one", math.MinInt64, -1, Int128{Lo: 1 << 63}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mul64x64(tt.a, tt.b)
			if got != tt.want {
				t.Fatalf("Mul64x64(%d, %d) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
			v, ok := got.Int64()
			if ok != tt.fits {
				t.Errorf("Int64() ok = %v, want %v", ok, tt.fits)
			}
			if ok && v != tt.want64 {
				t.Errorf("Int64() = %d, want %d", v, tt.want64)
			}
		})
	}
}

func TestInt128AddSub(t *testing.T) {
	one := Int128From64(1)
	minusOne := Int128From64(-1)

	if got := minusOne.Add(one); !got.IsZero() {
		t.Errorf("-1 + 1 = %+v, want 0", got)
	}
	carry := Int128{Lo: math.MaxUint64}.Add(one)
	if carry != (Int128{Hi: 1}) {
		t.Errorf("(2^64-1) + 1 = %+v, want {Hi:1 Lo:0}", carry)
	}
	if got := carry.Sub(one); got != (Int128{Lo: math.MaxUint64}) {
		t.Errorf("2^64 - 1 = %+v", got)
	}
	if got := one.Sub(Int128From64(3)); got != Int128From64(-2) {
		t.Errorf("1 - 3 = %+v, want -2", got)
	}
}

func TestInt128Neg(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 12345, math.MaxInt64} {
		if got := Int128From64(v).Neg(); got != Int128From64(-v) {
			t.Errorf("Neg(%d) = %+v, want %+v", v, got, Int128From64(-v))
		}
	}
}

func TestInt128Compare(t *testing.T) {
	a := Int128From64(-10)
	b := Int128From64(3)
	big := Mul64x64(math.MaxInt64, 4)

	if !a.Lt(b) || b.Lt(a) {
		t.Error("expected -10 < 3")
	}
	if !b.Lt(big) {
		t.Error("expected 3 < MaxInt64*4")
	}
	if a.Cmp(a) != 0 || !a.Eq(Int128From64(-10)) {
		t.Error("expected -10 == -10")
	}
	if a.Sign() != -1 || b.Sign() != 1 || (Int128{}).Sign() != 0 {
		t.Errorf("Sign() = %d %d %d, want -1 1 0", a.Sign(), b.Sign(), (Int128{}).Sign())
	}
}

func TestInt128Shifts(t *testing.T) {
	one := Int128From64(1)
	if got := one.Lsl(64); got != (Int128{Hi: 1}) {
		t.Errorf("1 << 64 = %+v", got)
	}
	if got := one.Lsl(64).Rsa(64); got != one {
		t.Errorf("(1 << 64) >> 64 = %+v, want 1", got)
	}
	if got := Int128From64(-8).Rsa(2); got != Int128From64(-2) {
		t.Errorf("-8 >> 2 = %+v, want -2", got)
	}
	if got := Int128From64(-1).Rsa(200); got != Int128From64(-1) {
		t.Errorf("-1 >> 200 = %+v, want -1", got)
	}
	if got := Int128From64(3).Lsl(1); got != Int128From64(6) {
		t.Errorf("3 << 1 = %+v, want 6", got)
	}
	if got := Int128From64(5).Lsl(128); !got.IsZero() {
		t.Errorf("5 << 128 = %+v, want 0", got)
	}
}
