// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floating

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/avdva/floating/internal/mathutil"
)

// Neg returns -a. Negation goes through the normalizer, since with
// asymmetric bounds the negated mantissa may not be storable as is.
func (f *Format[M, E]) Neg(a Float[M, E]) Float[M, E] {
	if a.mant == 0 {
		switch a.exp {
		case expInf:
			return f.NegInf()
		case expNegInf:
			return f.Inf()
		}
		return a // zero and NaN are their own negations
	}
	return f.adjust(-int64(a.mant), int64(a.exp))
}

// Abs returns |a|.
func (f *Format[M, E]) Abs(a Float[M, E]) Float[M, E] {
	if a.Sign() < 0 {
		return f.Neg(a)
	}
	return a
}

// Add returns a + b.
// The mantissa of the result is truncated to the representable digits;
// a result beyond Max or Lowest saturates to the infinity of its sign.
// Opposite infinities add up to NaN.
func (f *Format[M, E]) Add(a, b Float[M, E]) Float[M, E] {
	if a.IsNaN() || b.IsNaN() {
		return f.NaN()
	}
	if a.IsInf(0) {
		if b.IsInf(-a.Sign()) {
			return f.NaN()
		}
		return a
	}
	if b.IsInf(0) {
		return b
	}
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}

	m1, m2, e := toEqualExp(f, a, b)
	sum, ok := mathutil.CheckedAdd(m1, m2)
	if !ok {
		base := int64(f.base)
		sum = m1/base + m2/base
		e++
	}
	return f.adjust(sum, e)
}

// Sub returns a - b.
func (f *Format[M, E]) Sub(a, b Float[M, E]) Float[M, E] {
	return f.Add(a, f.Neg(b))
}

// toEqualExp rewrites two finite nonzero operands to a common exponent in
// wide arithmetic, so that the mantissas can be added directly.
func toEqualExp[M, E constraints.Signed](f *Format[M, E], a, b Float[M, E]) (m1, m2, e int64) {
	m1, e1 := int64(a.mant), int64(a.exp)
	m2, e2 := int64(b.mant), int64(b.exp)
	if e1 >= e2 {
		return alignExp(f, m1, e1, m2, e2)
	}
	m2, m1, e = alignExp(f, m2, e2, m1, e1)
	return m1, m2, e
}

// alignExp is a helper for toEqualExp, it assumes e1 >= e2.
// First the mantissa with the larger exponent grows while it fits an
// int64; any difference still left is taken out of the other mantissa by
// truncating division, losing its low-order digits.
func alignExp[M, E constraints.Signed](f *Format[M, E], m1, e1, m2, e2 int64) (int64, int64, int64) {
	base := int64(f.base)
	for e1 > e2 {
		p, ok := mathutil.CheckedMul(m1, base)
		if !ok {
			break
		}
		m1 = p
		e1--
	}
	for e1 > e2 && m2 != 0 {
		m2 /= base
		e2++
	}
	if m2 == 0 {
		e2 = e1
	}
	return m1, m2, e1
}

// Mul returns a * b.
// The product is computed in 128 bits and reduced by base division until
// it fits, so no intermediate overflow is possible. Multiplying an
// infinity by zero yields NaN.
func (f *Format[M, E]) Mul(a, b Float[M, E]) Float[M, E] {
	if a.IsNaN() || b.IsNaN() {
		return f.NaN()
	}
	if a.IsInf(0) || b.IsInf(0) {
		if a.IsZero() || b.IsZero() {
			return f.NaN()
		}
		if a.Sign() == b.Sign() {
			return f.Inf()
		}
		return f.NegInf()
	}
	if a.IsZero() || b.IsZero() {
		return f.Zero()
	}

	neg := !mathutil.SameSign(int64(a.mant), int64(b.mant))
	e := int64(a.exp) + int64(b.exp)
	base := uint64(f.base)

	hi, lo := bits.Mul64(uint64(mathutil.Abs(int64(a.mant))), uint64(mathutil.Abs(int64(b.mant))))
	for hi != 0 || lo > math.MaxInt64 {
		rem := hi % base
		hi /= base
		lo, _ = bits.Div64(rem, lo, base)
		e++
	}

	m := int64(lo)
	if neg {
		m = -m
	}
	return f.adjust(m, e)
}

// Div returns a / b, truncated to the representable digits.
// The core has no failure channel, so the boundary cases saturate:
// a finite value divided by zero is the infinity of its sign, and zero
// divided by zero, or an infinity divided by an infinity, is NaN.
func (f *Format[M, E]) Div(a, b Float[M, E]) Float[M, E] {
	if a.IsNaN() || b.IsNaN() {
		return f.NaN()
	}
	if a.IsInf(0) {
		if b.IsInf(0) {
			return f.NaN()
		}
		s := a.Sign()
		if b.Sign() < 0 {
			s = -s
		}
		if s < 0 {
			return f.NegInf()
		}
		return f.Inf()
	}
	if b.IsInf(0) {
		return f.Zero()
	}
	if a.IsZero() {
		if b.IsZero() {
			return f.NaN()
		}
		return f.Zero()
	}
	if b.IsZero() {
		if a.Sign() < 0 {
			return f.NegInf()
		}
		return f.Inf()
	}

	neg := !mathutil.SameSign(int64(a.mant), int64(b.mant))
	e := int64(a.exp) - int64(b.exp)
	base := uint64(f.base)
	u2 := uint64(mathutil.Abs(int64(b.mant)))

	// give the division its best chances: scale the dividend up into 128
	// bits, as far as bits.Div64 still allows, so that the quotient
	// carries as many digits as the wide type can hold.
	var hi uint64
	lo := uint64(mathutil.Abs(int64(a.mant)))
	for hi < u2/base {
		lohi, lolo := bits.Mul64(lo, base)
		hi, lo = hi*base+lohi, lolo
		e--
	}
	q, _ := bits.Div64(hi, lo, u2)
	for q > math.MaxInt64 {
		q /= base
		e++
	}

	m := int64(q)
	if neg {
		m = -m
	}
	return f.adjust(m, e)
}

// Cmp compares two values using a total, deterministic order:
// NaN < -Inf < finite values < +Inf.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func (f *Format[M, E]) Cmp(a, b Float[M, E]) int {
	if ra, rb := rank(a), rank(b); ra != rb {
		return mathutil.Cmp(ra, rb)
	}
	if a.mant == 0 { // the same special value
		return 0
	}
	// Finite values of one sign. Canonical form makes the exponent the
	// primary sort key and the mantissa the secondary one.
	if a.exp != b.exp {
		c := mathutil.Cmp(int64(a.exp), int64(b.exp))
		if a.mant < 0 {
			return -c
		}
		return c
	}
	return mathutil.Cmp(int64(a.mant), int64(b.mant))
}

func rank[M, E constraints.Signed](f Float[M, E]) int {
	switch {
	case f.IsNaN():
		return 0
	case f.IsInf(-1):
		return 1
	case f.mant < 0:
		return 2
	case f.IsZero():
		return 3
	case f.mant > 0:
		return 4
	default: // +Inf
		return 5
	}
}

// Eq reports whether a and b represent the same number.
// Canonical form makes the encoding of every representable number
// unique, so this is a plain field comparison, except that NaN is not
// equal to anything, itself included.
func (f *Format[M, E]) Eq(a, b Float[M, E]) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a == b
}
