// Package mathutil holds integer helpers shared by the floating packages.
package mathutil

import (
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow, or 0 if it does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

func DecimalLenInt64(value int64) int {
	result := 0
	if value < 0 {
		result++
		value = -value
	}
	return result + DecimalDigits(uint64(value))
}

// Abs returns |val|. The result is negative for the lowest value of T.
func Abs[T constraints.Signed](val T) T {
	mask := val >> (unsafe.Sizeof(val)*8 - 1)
	return (val + mask) ^ mask
}

// Sign returns -1, 0, or 1 for negative, zero, and positive val.
func Sign[T constraints.Signed](val T) int {
	switch {
	case val > 0:
		return 1
	case val < 0:
		return -1
	default:
		return 0
	}
}

// Cmp returns -1 if a < b, 0 if a == b, 1 if a > b.
func Cmp[T constraints.Ordered](a, b T) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func SameSign[T constraints.Signed](a, b T) bool {
	return a >= 0 && b >= 0 || a < 0 && b < 0
}

// CheckedAdd returns a+b and whether the sum fits an int64.
func CheckedAdd(a, b int64) (int64, bool) {
	sum := a + b
	if a > 0 && b > 0 && sum < 0 || a < 0 && b < 0 && sum >= 0 {
		return 0, false
	}
	return sum, true
}

// CheckedMul returns a*b and whether the product fits an int64.
func CheckedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

// TrimMantExp removes trailing decimal zeros from m, increasing e,
// while e stays within eMax.
func TrimMantExp(m uint64, e, eMax int64) (uint64, int64) {
	for e < eMax && m > 9 && m%10 == 0 {
		m /= 10
		e++
	}
	return m, e
}

// normFloat64 calculates such e, that 1 <= abs(f)*(10**e) <= 10
func normFloat64(f float64) (exp int) {
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	f = math.Abs(f)
	switch {
	case f < 1:
		exp = int(math.Log10(1/f)) + 1
	case f > 10:
		exp = -(int(math.Log10(f/10)) + 1)
	default:
		return 0
	}
	return exp
}

// FloatMantissa returns such (mant, exp) that abs(mant*(10^exp) - abs(f)) < epsilon.
func FloatMantissa(f float64, epsilon float64) (mant uint64, exp int) {
	const maxPrec = 19
	var result uint64
	f = math.Abs(f)
	i, e := 0, normFloat64(f)
	for ; ; i++ {
		integ, frac := math.Modf(f * math.Pow10(e+i))
		result = uint64(integ)
		if frac < epsilon || i >= maxPrec {
			break
		}
	}
	return result, -(e + i)
}
