// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dec implements a signed decimal floating-point number built on
// the floating core: a value is mantissa × 10^exponent with up to 18
// decimal digits of precision. It can be used to represent numbers like
// currency rates with no binary rounding surprises.
// Out-of-range results do not fail, they saturate to the special zero,
// infinity and not-a-number values of the core.
package dec

import (
	"math"

	"github.com/avdva/floating"
	"github.com/avdva/floating/internal/mathutil"
)

type (
	mantType = int64
	expType  = int8
)

const (
	// MaxMantissa is the largest storable mantissa, 18 full decimal digits.
	MaxMantissa = 999999999999999999
	// MinMantissa is the smallest storable mantissa.
	MinMantissa = -MaxMantissa
	// MaxExponent is the largest storable decimal exponent.
	MaxExponent = 127
	// MinExponent is the smallest storable decimal exponent.
	MinExponent = -127
)

// format is the single layout shared by all Values.
var format = floating.MustFormat[mantType, expType](10, MinMantissa, MaxMantissa, MinExponent, MaxExponent)

// Value is a signed decimal floating-point number.
// Values are immutable and safe to copy; the zero Value is the number 0.
type Value struct {
	f floating.Float[mantType, expType]
}

func wrap(f floating.Float[mantType, expType]) Value {
	return Value{f: f}
}

// Zero returns the zero value.
func Zero() Value { return wrap(format.Zero()) }

// One returns the value 1.
func One() Value { return wrap(format.One()) }

// Inf returns the positive infinity value.
func Inf() Value { return wrap(format.Inf()) }

// NegInf returns the negative infinity value.
func NegInf() Value { return wrap(format.NegInf()) }

// NaN returns the not-a-number value.
func NaN() Value { return wrap(format.NaN()) }

// Min returns the smallest positive value, 1e-127.
func Min() Value { return wrap(format.Min()) }

// Lowest returns the most negative value.
func Lowest() Value { return wrap(format.Lowest()) }

// Max returns the largest value.
func Max() Value { return wrap(format.Max()) }

// FromMantAndExp returns a value for the given mantissa and exponent.
// An exponent outside the storable window is first pulled back by
// scaling the mantissa; if that cannot absorb the whole difference the
// value saturates to zero or to the infinity of the mantissa's sign.
func FromMantAndExp(mant int64, exp int32) Value {
	return fromWide(mant, int64(exp))
}

// FromInt64 returns a value for the given int64 number.
func FromInt64(v int64) Value {
	return fromWide(v, 0)
}

// FromUint64 returns a value for the given uint64 number.
// If the number does not fit the mantissa, the least significant digits
// are truncated.
func FromUint64(v uint64) Value {
	var e int64
	if toCut := mathutil.DecimalDigits(v) - digitsInMaxMantissa; toCut > 0 {
		v /= mathutil.Pow10(toCut)
		e = int64(toCut)
	}
	return fromWide(int64(v), e)
}

// FromFloat64 returns a value for the given float64 number.
// Float specials map to the matching sentinels.
func FromFloat64(v float64) Value {
	switch {
	case math.IsNaN(v):
		return NaN()
	case math.IsInf(v, 1):
		return Inf()
	case math.IsInf(v, -1):
		return NegInf()
	case v == 0:
		return Zero()
	}
	mant, e := mathutil.FloatMantissa(v, 1e-10)
	var ei = int64(e)
	for mant > MaxMantissa {
		mant /= 10
		ei++
	}
	m := int64(mant)
	if math.Signbit(v) {
		m = -m
	}
	return fromWide(m, ei)
}

// MustFromFloat64 is like FromFloat64, but panics if the number has no
// finite representation.
func MustFromFloat64(v float64) Value {
	result := FromFloat64(v)
	if result.f.IsSpecial() && v != 0 {
		panic("value is not representable")
	}
	return result
}

// fromWide mirrors the core conversion constructor, but first scales an
// out-of-window exponent back into range, and keeps the mantissa's sign
// when saturation is unavoidable.
func fromWide(m, e int64) Value {
	for e < MinExponent && m != 0 {
		m /= 10
		e++
	}
	if m == 0 {
		return Zero()
	}
	for e > MaxExponent {
		if m > MaxMantissa/10 || m < MinMantissa/10 {
			if m < 0 {
				return NegInf()
			}
			return Inf()
		}
		m *= 10
		e--
	}
	return wrap(format.FromMantAndExp(m, e))
}

// Mantissa returns v's mantissa in its canonical (maximal) form.
func (v Value) Mantissa() int64 {
	return v.f.Mantissa()
}

// Exponent returns v's exponent in its canonical form.
func (v Value) Exponent() int32 {
	return int32(v.f.Exponent())
}

// compact returns the shortest (mantissa, exponent) spelling of v,
// trimming the trailing zeros that the canonical maximal-mantissa form
// accumulates. Used for display only; the stored form stays canonical.
func (v Value) compact() (mant int64, exp int64) {
	m, e := v.f.Mantissa(), int64(v.f.Exponent())
	u, e := mathutil.TrimMantExp(uint64(mathutil.Abs(m)), e, MaxExponent)
	mant = int64(u)
	if m < 0 {
		mant = -mant
	}
	return mant, e
}

// IsZero reports whether v is the zero value.
func (v Value) IsZero() bool { return v.f.IsZero() }

// IsInf reports whether v is an infinity, see floating.Float.IsInf.
func (v Value) IsInf(sign int) bool { return v.f.IsInf(sign) }

// IsNaN reports whether v is the not-a-number value.
func (v Value) IsNaN() bool { return v.f.IsNaN() }

// Sign returns 1 if v > 0, -1 if v < 0, 0 for zero and not-a-number.
func (v Value) Sign() int { return v.f.Sign() }

// Float64 returns the closest float64 number.
func (v Value) Float64() float64 {
	switch {
	case v.f.IsNaN():
		return math.NaN()
	case v.f.IsInf(1):
		return math.Inf(1)
	case v.f.IsInf(-1):
		return math.Inf(-1)
	}
	m, e := v.compact()
	return float64(m) * math.Pow10(int(e))
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	return wrap(format.Add(v.f, other.f))
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return wrap(format.Sub(v.f, other.f))
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	return wrap(format.Mul(v.f, other.f))
}

// Div returns v / other. There is no division panic: a nonzero value
// divided by zero is the infinity of its sign, and 0/0 is NaN.
func (v Value) Div(other Value) Value {
	return wrap(format.Div(v.f, other.f))
}

// Neg returns -v.
func (v Value) Neg() Value {
	return wrap(format.Neg(v.f))
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return wrap(format.Abs(v.f))
}

// Cmp compares two values, ordering NaN below -Inf.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value) Cmp(other Value) int {
	return format.Cmp(v.f, other.f)
}

// Eq reports whether both values represent the same number.
// NaN is not equal to anything, itself included.
func (v Value) Eq(other Value) bool {
	return format.Eq(v.f, other.f)
}
