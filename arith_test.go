// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floating

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(value, exp int64) Float[int64, int32] {
	return f10.FromMantAndExp(value, exp)
}

func TestAddSpecial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, sum Float[int64, int32]
	}{
		{f10.Inf(), f10.Inf(), f10.Inf()},
		{f10.NegInf(), f10.NegInf(), f10.NegInf()},
		{f10.Inf(), f10.NegInf(), f10.NaN()},
		{f10.NegInf(), f10.Inf(), f10.NaN()},
		{f10.NaN(), d(1, 0), f10.NaN()},
		{d(1, 0), f10.NaN(), f10.NaN()},
		{f10.NaN(), f10.Inf(), f10.NaN()},
		{f10.Inf(), d(-5, 0), f10.Inf()},
		{d(5, 0), f10.NegInf(), f10.NegInf()},
		{f10.Zero(), d(5, 0), d(5, 0)},
		{d(5, 0), f10.Zero(), d(5, 0)},
		{f10.Zero(), f10.Zero(), f10.Zero()},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.sum, f10.Add(test.x, test.y))
		})
	}
}

func TestAddExact(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 10000; i++ {
		x := rnd.Int63n(200000000) - 100000000
		y := rnd.Int63n(200000000) - 100000000
		sum := f10.Add(d(x, 0), d(y, 0))
		a.Equal(d(x+y, 0), sum, "%v + %v", x, y)
		a.Equal(sum, f10.Add(d(y, 0), d(x, 0)))
	}
}

func TestAddTruncation(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, sum Float[int64, int32]
	}{
		// the smaller addend is entirely below the representable digits.
		{d(1, 0), d(1, -18), d(1, 0)},
		{d(1, -18), d(1, 0), d(1, 0)},
		// mantissas overflow an int64 when added at the common exponent,
		// both lose a digit first.
		{d(9, 0), d(5, -1), d(95, -1)},
		{d(-9, 0), d(-5, -1), d(-95, -1)},
		// the sum is beyond Max: saturation to infinity.
		{f10.Max(), f10.Max(), f10.Inf()},
		{f10.Lowest(), f10.Lowest(), f10.NegInf()},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.sum, f10.Add(test.x, test.y))
		})
	}
}

func TestSub(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, diff Float[int64, int32]
	}{
		{d(3, 0), d(5, 0), d(-2, 0)},
		{d(5, 0), d(3, 0), d(2, 0)},
		{f10.Inf(), f10.Inf(), f10.NaN()},
		{f10.NegInf(), f10.NegInf(), f10.NaN()},
		{f10.Inf(), f10.NegInf(), f10.Inf()},
		{d(1, 0), f10.Inf(), f10.NegInf()},
		{f10.Zero(), d(7, 0), d(-7, 0)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.diff, f10.Sub(test.x, test.y))
		})
	}

	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 10000; i++ {
		v := d(rnd.Int63n(2000000000000000000)-1000000000000000000, rnd.Int63n(200)-100)
		a.Equal(f10.Zero(), f10.Sub(v, v))
	}
}

func TestMulSpecial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, prod Float[int64, int32]
	}{
		{f10.Inf(), f10.Inf(), f10.Inf()},
		{f10.Inf(), f10.NegInf(), f10.NegInf()},
		{f10.NegInf(), f10.NegInf(), f10.Inf()},
		{f10.Inf(), f10.Zero(), f10.NaN()},
		{f10.Zero(), f10.NegInf(), f10.NaN()},
		{f10.NaN(), d(2, 0), f10.NaN()},
		{f10.Inf(), d(-2, 0), f10.NegInf()},
		{f10.NegInf(), d(-2, 0), f10.Inf()},
		{f10.Zero(), d(42, 5), f10.Zero()},
		// overflow and underflow of the exponent window.
		{f10.Max(), f10.Max(), f10.Inf()},
		{f10.Lowest(), f10.Max(), f10.NegInf()},
		{f10.Min(), f10.Min(), f10.Zero()},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.prod, f10.Mul(test.x, test.y))
		})
	}
}

func TestMulExact(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 10000; i++ {
		x := rnd.Int63n(2000000) - 1000000
		y := rnd.Int63n(2000000) - 1000000
		prod := f10.Mul(d(x, 0), d(y, 0))
		a.Equal(d(x*y, 0), prod, "%v * %v", x, y)
		a.Equal(prod, f10.Mul(d(y, 0), d(x, 0)))
	}
	for i := 0; i < 10000; i++ {
		v := d(rnd.Int63n(2000000000000000000)-1000000000000000000, rnd.Int63n(200)-100)
		a.Equal(v, f10.Mul(f10.One(), v))
	}
}

func TestDivSpecial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, quot Float[int64, int32]
	}{
		{f10.NaN(), d(1, 0), f10.NaN()},
		{d(1, 0), f10.NaN(), f10.NaN()},
		{f10.Inf(), f10.Inf(), f10.NaN()},
		{f10.Inf(), f10.NegInf(), f10.NaN()},
		{f10.Zero(), f10.Zero(), f10.NaN()},
		// no error channel: division by zero saturates.
		{d(1, 0), f10.Zero(), f10.Inf()},
		{d(-1, 0), f10.Zero(), f10.NegInf()},
		{f10.Inf(), f10.Zero(), f10.Inf()},
		{f10.Inf(), d(-2, 0), f10.NegInf()},
		{f10.NegInf(), d(-2, 0), f10.Inf()},
		{d(1, 0), f10.Inf(), f10.Zero()},
		{d(1, 0), f10.NegInf(), f10.Zero()},
		{f10.Zero(), d(5, 0), f10.Zero()},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.quot, f10.Div(test.x, test.y))
		})
	}
}

func TestDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, quot Float[int64, int32]
	}{
		{d(6, 0), d(3, 0), d(2, 0)},
		{d(-6, 0), d(3, 0), d(-2, 0)},
		{d(6, 0), d(-3, 0), d(-2, 0)},
		{d(-6, 0), d(-3, 0), d(2, 0)},
		{d(1, 0), d(2, 0), d(5, -1)},
		{d(1, 2), d(4, 0), d(25, 0)},
		// 18 significant digits of 1/3.
		{d(1, 0), d(3, 0), d(333333333333333333, -18)},
		{d(2, 0), d(3, 0), d(666666666666666666, -18)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.quot, f10.Div(test.x, test.y))
		})
	}
}

// TestDivInverse multiplies two integers and divides the product back.
// Both operations are exact here, so the result must be bitwise equal.
func TestDivInverse(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 10000; i++ {
		x := rnd.Int63n(2000000) - 1000000
		y := rnd.Int63n(2000000) - 1000000
		if y == 0 {
			continue
		}
		prod := f10.Mul(d(x, 0), d(y, 0))
		a.Equal(d(x, 0), f10.Div(prod, d(y, 0)), "%v * %v / %v", x, y, y)
	}
}

func TestNegAbs(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v, neg, abs Float[int64, int32]
	}{
		{f10.Zero(), f10.Zero(), f10.Zero()},
		{f10.NaN(), f10.NaN(), f10.NaN()},
		{f10.Inf(), f10.NegInf(), f10.Inf()},
		{f10.NegInf(), f10.Inf(), f10.Inf()},
		{d(5, 0), d(-5, 0), d(5, 0)},
		{d(-5, 0), d(5, 0), d(5, 0)},
		{f10.Max(), f10.Lowest(), f10.Max()},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.neg, f10.Neg(test.v))
			a.Equal(test.abs, f10.Abs(test.v))
			a.Equal(test.v, f10.Neg(f10.Neg(test.v)))
		})
	}

	// Min() is a factory-only encoding: its negation runs through the
	// normalizer, which underflows a unit mantissa at the exponent floor.
	a.Equal(f10.Zero(), f10.Neg(f10.Min()))
	a.Equal(f10.Min(), f10.Abs(f10.Min()))
}

// TestNegAsymmetric exercises negation on a layout whose mantissa bounds
// are not symmetric: -(-128) is not storable in an int8 and has to be
// renormalized.
func TestNegAsymmetric(t *testing.T) {
	a := assert.New(t)

	// -(-1) == 1: the mantissa halves, the exponent grows.
	a.Equal(f2.One(), f2.Neg(f2.FromMantAndExp(-1, 0)))
	// -Lowest does not fit: the exponent is already at its max.
	a.Equal(f2.Inf(), f2.Neg(f2.Lowest()))
	a.Equal(f2.Inf(), f2.Abs(f2.Lowest()))
}

func TestCmp(t *testing.T) {
	a := assert.New(t)

	// the deterministic total order, ascending.
	ordered := []Float[int64, int32]{
		f10.NaN(),
		f10.NegInf(),
		f10.Lowest(),
		d(-3, 5),
		d(-1, 0),
		d(-1, -10),
		f10.Zero(),
		f10.Min(),
		d(1, -10),
		d(1, 0),
		d(2, 0),
		d(12, 0),
		d(3, 5),
		f10.Max(),
		f10.Inf(),
	}
	for i, x := range ordered {
		for j, y := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			a.Equal(want, f10.Cmp(x, y), "Cmp(%d, %d)", i, j)
		}
	}
}

func TestEq(t *testing.T) {
	a := assert.New(t)

	a.True(f10.Eq(d(5, 0), d(5, 0)))
	// the same number from a non-canonical pair.
	a.True(f10.Eq(d(5, 0), d(50, -1)))
	a.True(f10.Eq(f10.Zero(), d(0, 10)))
	a.True(f10.Eq(f10.Inf(), f10.Inf()))
	a.False(f10.Eq(d(5, 0), d(5, 1)))
	a.False(f10.Eq(d(5, 0), d(-5, 0)))
	// NaN compares unequal to everything, itself included.
	a.False(f10.Eq(f10.NaN(), f10.NaN()))
	a.False(f10.Eq(f10.NaN(), d(5, 0)))
	a.Equal(0, f10.Cmp(f10.NaN(), f10.NaN()))
}

func BenchmarkAdd(b *testing.B) {
	x, y := d(123456789, -5), d(987654321, 3)
	for i := 0; i < b.N; i++ {
		f10.Add(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := d(123456789, -5), d(987654321, 3)
	for i := 0; i < b.N; i++ {
		f10.Mul(x, y)
	}
}

func BenchmarkDiv(b *testing.B) {
	x, y := d(123456789, -5), d(987654321, 3)
	for i := 0; i < b.N; i++ {
		f10.Div(x, y)
	}
}
