// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floating implements a software-defined floating-point number,
// stored as a (mantissa, exponent) pair over a configurable base.
// Storage types, base, and the representable bounds of both fields are
// configuration, see Format. The conceptual value of a Float is
// mantissa × base^exponent, except for four reserved encodings with a
// zero mantissa, keyed by the exponent:
//	(0, 0) zero, (0, 1) +infinity, (0, 2) -infinity, (0, 3) not-a-number.
// Unlike ieee formats there is no implicit leading digit: normalization
// multiplies the mantissa by the base until it is as large as its bounds
// allow, so a normalized nonzero value never has a zero mantissa, and the
// whole zero-mantissa encoding space is free for the special values.
package floating

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/floating/internal/mathutil"
)

// Special value codes, stored in the exponent of a zero-mantissa Float.
const (
	expZero   = 0
	expInf    = 1
	expNegInf = 2
	expNaN    = 3
)

// Float is a floating-point number. M is the mantissa storage type,
// E is the exponent storage type, both signed.
// Floats are immutable values, produced only by a Format's factory and
// conversion functions, which maintain the canonical (maximal-mantissa)
// form. The zero Float is the zero number of any format.
type Float[M, E constraints.Signed] struct {
	mant M
	exp  E
}

// of builds a Float from raw fields, bypassing normalization.
// It stays unexported so that outside code cannot break the
// canonical-form invariant.
func of[M, E constraints.Signed](mant M, exp E) Float[M, E] {
	return Float[M, E]{mant: mant, exp: exp}
}

// Mantissa returns the value's mantissa.
func (f Float[M, E]) Mantissa() M {
	return f.mant
}

// Exponent returns the value's exponent.
func (f Float[M, E]) Exponent() E {
	return f.exp
}

// IsSpecial reports whether f is one of the four reserved encodings.
func (f Float[M, E]) IsSpecial() bool {
	return f.mant == 0
}

// IsZero reports whether f is the zero value.
func (f Float[M, E]) IsZero() bool {
	return f.mant == 0 && f.exp == expZero
}

// IsInf reports whether f is an infinity.
// If sign > 0 only positive infinity matches, if sign < 0 only negative,
// and either one if sign == 0.
func (f Float[M, E]) IsInf(sign int) bool {
	if f.mant != 0 {
		return false
	}
	switch {
	case sign > 0:
		return f.exp == expInf
	case sign < 0:
		return f.exp == expNegInf
	default:
		return f.exp == expInf || f.exp == expNegInf
	}
}

// IsNaN reports whether f is the not-a-number value.
func (f Float[M, E]) IsNaN() bool {
	return f.mant == 0 && f.exp == expNaN
}

// Sign returns 1 if f > 0, -1 if f < 0, and 0 if f is zero or not-a-number.
// Infinities report the sign they carry.
func (f Float[M, E]) Sign() int {
	if f.mant != 0 {
		return mathutil.Sign(f.mant)
	}
	switch f.exp {
	case expInf:
		return 1
	case expNegInf:
		return -1
	}
	return 0
}
