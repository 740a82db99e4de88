// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floating

// Limits is the numeric-limits capability: the boundary values a numeric
// type can represent. Generic numeric code can accept a Limits[T] and
// stay independent of the mantissa/exponent layout behind T.
// Every *Format[M, E] is a Limits[Float[M, E]].
type Limits[T any] interface {
	// Max returns the largest representable value.
	Max() T
	// Min returns the smallest positive value.
	Min() T
	// Lowest returns the most negative representable value.
	Lowest() T
}

// Traits classifies the type for generic numeric code, standing in for
// the trait queries a template system would answer.
type Traits struct {
	// FloatingPoint is true: values scale by a base raised to an exponent.
	FloatingPoint bool
	// Arithmetic is true: the type supports the usual operators.
	Arithmetic bool
	// Scalar is true: a value is a single number, not a composite.
	Scalar bool
	// Object is true: values are plain copyable objects.
	Object bool
}

// Traits returns the classification of Float values of this format.
func (f *Format[M, E]) Traits() Traits {
	return Traits{
		FloatingPoint: true,
		Arithmetic:    true,
		Scalar:        true,
		Object:        true,
	}
}

var _ Limits[Float[int64, int32]] = (*Format[int64, int32])(nil)
