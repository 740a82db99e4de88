// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floating

import (
	"golang.org/x/exp/constraints"
)

// FromMantAndExp builds a value representing value × base^exp,
// normalized so that the mantissa is as large as its bounds allow.
// An exponent above ExponentMax saturates to +Inf regardless of value,
// one below ExponentLowest saturates to -Inf. A magnitude that cannot be
// shrunk into the mantissa bounds before the exponent tops out saturates
// to the infinity of its sign, and one that stays below the growth
// target at the exponent floor underflows to zero.
func (f *Format[M, E]) FromMantAndExp(value, exp int64) Float[M, E] {
	if exp > int64(f.expMax) {
		return f.Inf()
	}
	if exp < int64(f.expLow) {
		return f.NegInf()
	}
	// normalize scales its argument in place, so it has to run in a type
	// wide enough for the growth phase. If value already fits strictly
	// inside the mantissa bounds, narrowing first is safe and keeps the
	// loops in the storage type. Otherwise normalize the int64 and
	// narrow the truncated result.
	if value > int64(f.mantLow) && value < int64(f.mantMax) {
		return normalize(f, M(value), f.mantLow, f.mantMax, f.base, E(exp))
	}
	return normalize(f, value, int64(f.mantLow), int64(f.mantMax), int64(f.base), E(exp))
}

// normalize turns (value, exp) into the canonical encoding of
// value × base^exp, or a sentinel if the bounds are exceeded.
// A positive mantissa is made as large as possible, a negative one as
// small as possible, by repeated multiplication; an oversized magnitude
// is shrunk by truncating division, discarding low-order digits.
// lowest, max and base are the format bounds converted to T.
//
// The loops stop one multiplication short of the bound, so for any T at
// least as wide as the mantissa bounds they cannot overflow.
func normalize[T, M, E constraints.Signed](f *Format[M, E], value, lowest, max, base T, exp E) Float[M, E] {
	// Zero has a specific code.
	if value == 0 {
		return f.Zero()
	}

	if value > 0 {
		// Grow the mantissa as much as possible.
		for value <= max/base {
			if exp == f.expLow {
				return f.Zero()
			}
			exp--
			value *= base
		}
		// Shrink it as needed.
		for value > max {
			if exp == f.expMax {
				return f.Inf()
			}
			exp++
			value /= base
		}
	} else {
		for value >= lowest/base {
			if exp == f.expLow {
				return f.Zero()
			}
			exp--
			value *= base
		}
		for value < lowest {
			if exp == f.expMax {
				return f.NegInf()
			}
			exp++
			value /= base
		}
	}

	return of(M(value), exp)
}

// adjust is the constructor used by arithmetic: unlike FromMantAndExp it
// first scales an out-of-window exponent back into range instead of
// saturating outright, and when saturation is unavoidable it keeps the
// sign of the magnitude. Both loops are bounded: the first zeroes the
// mantissa after at most one digit per step, the second grows it past
// the bound just as fast.
func (f *Format[M, E]) adjust(value, exp int64) Float[M, E] {
	base := int64(f.base)
	for exp < int64(f.expLow) && value != 0 {
		value /= base
		exp++
	}
	if value == 0 {
		return f.Zero()
	}
	for exp > int64(f.expMax) {
		if value > 0 && value > int64(f.mantMax)/base ||
			value < 0 && value < int64(f.mantLow)/base {
			if value > 0 {
				return f.Inf()
			}
			return f.NegInf()
		}
		exp--
		value *= base
	}
	return normalize(f, value, int64(f.mantLow), int64(f.mantMax), base, E(exp))
}
