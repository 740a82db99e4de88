// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floating

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Format describes a concrete floating-point layout: the exponent base
// and the representable bounds of the mantissa and the exponent.
// A Format is validated once by NewFormat and read-only afterwards, so a
// single Format may be shared freely between goroutines.
// All factory, conversion and arithmetic operations hang off a Format,
// since the meaning of a Float exists only relative to its layout.
type Format[M, E constraints.Signed] struct {
	base    M
	mantLow M
	mantMax M
	expLow  E
	expMax  E
}

// NewFormat returns a Format for the given base and bounds.
// The bounds must satisfy:
//	base >= 2
//	mantMax >= base, mantLowest <= -base
//	expLowest <= 0 < expMax, expMax >= 3
// The last requirement keeps the special value codes storable in the
// exponent field.
func NewFormat[M, E constraints.Signed](base, mantLowest, mantMax M, expLowest, expMax E) (*Format[M, E], error) {
	switch {
	case base < 2:
		return nil, fmt.Errorf("base must be at least 2, got %v", base)
	case mantMax < base:
		return nil, fmt.Errorf("mantissa max %v is less than base %v", mantMax, base)
	case mantLowest > -base:
		return nil, fmt.Errorf("mantissa lowest %v is greater than -base", mantLowest)
	case expLowest > 0:
		return nil, fmt.Errorf("exponent lowest %v is positive", expLowest)
	case expMax < expNaN:
		return nil, fmt.Errorf("exponent max %v does not cover the special value codes", expMax)
	}
	return &Format[M, E]{
		base:    base,
		mantLow: mantLowest,
		mantMax: mantMax,
		expLow:  expLowest,
		expMax:  expMax,
	}, nil
}

// MustFormat is like NewFormat, but panics if the bounds are invalid.
func MustFormat[M, E constraints.Signed](base, mantLowest, mantMax M, expLowest, expMax E) *Format[M, E] {
	f, err := NewFormat(base, mantLowest, mantMax, expLowest, expMax)
	if err != nil {
		panic(err)
	}
	return f
}

// Base returns the exponent base.
func (f *Format[M, E]) Base() M {
	return f.base
}

// MantissaLowest returns the smallest storable mantissa.
func (f *Format[M, E]) MantissaLowest() M {
	return f.mantLow
}

// MantissaMax returns the largest storable mantissa.
func (f *Format[M, E]) MantissaMax() M {
	return f.mantMax
}

// ExponentLowest returns the smallest storable exponent.
func (f *Format[M, E]) ExponentLowest() E {
	return f.expLow
}

// ExponentMax returns the largest storable exponent.
func (f *Format[M, E]) ExponentMax() E {
	return f.expMax
}

// Zero returns the zero value.
func (f *Format[M, E]) Zero() Float[M, E] {
	return of[M, E](0, expZero)
}

// One returns the value closest to 1 the layout can represent.
// Depending on base and bounds its stored form is usually not (1, 0).
func (f *Format[M, E]) One() Float[M, E] {
	return f.FromMantAndExp(1, 0)
}

// Inf returns the positive infinity value.
func (f *Format[M, E]) Inf() Float[M, E] {
	return of[M, E](0, expInf)
}

// NegInf returns the negative infinity value.
func (f *Format[M, E]) NegInf() Float[M, E] {
	return of[M, E](0, expNegInf)
}

// NaN returns the not-a-number value.
// The normalizer never produces it; it exists for operations with no
// meaningful numeric result, such as dividing zero by zero.
func (f *Format[M, E]) NaN() Float[M, E] {
	return of[M, E](0, expNaN)
}

// Min returns the smallest positive value.
// Note that Min is a factory-only encoding: feeding (1, ExponentLowest)
// through FromMantAndExp underflows to zero, since the growth phase
// cannot run at the exponent floor and there are no subnormals.
func (f *Format[M, E]) Min() Float[M, E] {
	return of(M(1), f.expLow)
}

// Lowest returns the most negative representable value.
func (f *Format[M, E]) Lowest() Float[M, E] {
	return of(f.mantLow, f.expMax)
}

// Max returns the largest representable value.
func (f *Format[M, E]) Max() Float[M, E] {
	return of(f.mantMax, f.expMax)
}
