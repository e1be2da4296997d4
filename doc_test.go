package bigrat_test

import (
	"fmt"

	"github.com/govalues/bigrat"
	"github.com/govalues/decimal"
)

// Harmonic returns the n-th harmonic number 1 + 1/2 + ... + 1/n.
func Harmonic(n int) (bigrat.Rat, error) {
	one := bigrat.NewRat(1)
	sum := bigrat.NewRat(0)
	for i := 1; i <= n; i++ {
		t, err := one.Div(bigrat.NewRat(int64(i)))
		if err != nil {
			return bigrat.Rat{}, err
		}
		sum = sum.Add(t).Simplify()
	}
	return sum, nil
}

// This example shows how to accumulate a sum of fractions without
// losing precision.
func Example_harmonicNumbers() {
	for _, n := range []int{1, 2, 3, 4, 10} {
		h, err := Harmonic(n)
		if err != nil {
			panic(err)
		}
		fmt.Printf("H(%v) = %r\n", n, h)
	}
	// Output:
	// H(1) = 1
	// H(2) = 3/2
	// H(3) = 11/6
	// H(4) = 25/12
	// H(10) = 7381/2520
}

// This example shows how to bound the area of a circle using an
// approximation of π.
func Example_circleArea() {
	r := bigrat.MustParseRat("1.5")
	area := bigrat.ApproxPi().Mul(r).Mul(r)
	fmt.Println(area)
	fmt.Println(area.IsExact())
	// Output:
	// approx. 7.0685834705
	// false
}

func ExampleNewRat() {
	fmt.Println(bigrat.NewRat(-42))
	fmt.Println(bigrat.NewRat(0))
	// Output:
	// -42
	// 0
}

func ExampleNewRatFromNats() {
	num := bigrat.NewNat(22)
	den := bigrat.NewNat(7)
	fmt.Println(bigrat.NewRatFromNats(bigrat.Negative, num, den))
	fmt.Println(bigrat.NewRatFromNats(bigrat.Positive, num, bigrat.NewNat(0)))
	// Output:
	// -22/7, approx. -3.1428571428 <nil>
	// 0 converting +22/0: division by zero
}

func ExampleApproxPi() {
	pi := bigrat.ApproxPi()
	fmt.Println(pi)
	fmt.Printf("%r\n", pi)
	// Output:
	// approx. 3.1415926535
	// ~1068966896/340262731
}

func ExampleParseRat() {
	fmt.Println(bigrat.ParseRat("3.14"))
	fmt.Println(bigrat.ParseRat("-1/3"))
	fmt.Println(bigrat.ParseRat("1/0"))
	// Output:
	// 3.14 <nil>
	// -1/3, approx. -0.3333333333 <nil>
	// 0 parsing "1/0": division by zero
}

func ExampleMustParseRat() {
	fmt.Println(bigrat.MustParseRat("0.125"))
	// Output:
	// 0.125
}

func ExampleBuilder() {
	var b bigrat.Builder
	if err := b.AddIntegerDigit(3); err != nil {
		panic(err)
	}
	for _, d := range []byte{1, 4} {
		if err := b.AddDecimalDigit(d); err != nil {
			panic(err)
		}
	}
	b.Negate()
	r := b.Rat()
	fmt.Println(r)
	fmt.Println(r.Num(), r.Den())
	// Output:
	// -3.14
	// 314 100
}

func ExampleRat_Add() {
	a := bigrat.MustParseRat("1/2")
	b := bigrat.MustParseRat("1/3")
	fmt.Println(a.Add(b))
	// Output: 5/6, approx. 0.8333333333
}

func ExampleRat_Sub() {
	a := bigrat.MustParseRat("1/3")
	b := bigrat.MustParseRat("1/2")
	fmt.Println(a.Sub(b))
	// Output: -1/6, approx. -0.1666666666
}

func ExampleRat_Mul() {
	a := bigrat.MustParseRat("2/3")
	b := bigrat.MustParseRat("3/4")
	c := a.Mul(b)
	fmt.Println(c.Num(), c.Den())
	fmt.Println(c)
	// Output:
	// 6 12
	// 0.5
}

func ExampleRat_Div() {
	a := bigrat.MustParseRat("1")
	b := bigrat.MustParseRat("8")
	c := bigrat.MustParseRat("0")
	fmt.Println(a.Div(b))
	fmt.Println(a.Div(c))
	// Output:
	// 0.125 <nil>
	// 0 computing [1 / 0]: division by zero
}

func ExampleRat_Pow() {
	a := bigrat.MustParseRat("2/3")
	fmt.Println(a.Pow(bigrat.NewRat(-2)))
	fmt.Println(a.Pow(bigrat.NewRat(3)))
	fmt.Println(a.Pow(bigrat.MustParseRat("1/2")))
	// Output:
	// 2.25 <nil>
	// 8/27, approx. 0.2962962962 <nil>
	// 0 computing [2/3 ^ 1/2]: non-integer exponents not supported
}

func ExampleRat_Simplify() {
	r := bigrat.MustParseRat("-6/8").Simplify()
	fmt.Println(r.Num(), r.Den())
	// Output: 3 4
}

func ExampleRat_TerminatesInBase() {
	r := bigrat.MustParseRat("1/3")
	fmt.Println(r.TerminatesInBase(10))
	fmt.Println(r.TerminatesInBase(3))
	fmt.Println(r.TerminatesInBase(6))
	// Output:
	// false
	// true
	// true
}

func ExampleRat_Cmp() {
	a := bigrat.MustParseRat("1/3")
	b := bigrat.MustParseRat("0.3333")
	fmt.Println(a.Cmp(b))
	fmt.Println(b.Cmp(a))
	fmt.Println(a.Cmp(bigrat.MustParseRat("2/6")))
	// Output:
	// 1
	// -1
	// 0
}

func ExampleRat_String() {
	fmt.Println(bigrat.MustParseRat("2"))
	fmt.Println(bigrat.MustParseRat("1/4"))
	fmt.Println(bigrat.MustParseRat("1/3"))
	fmt.Println(bigrat.ApproxPi())
	// Output:
	// 2
	// 0.25
	// 1/3, approx. 0.3333333333
	// approx. 3.1415926535
}

func ExampleRat_Format() {
	r := bigrat.MustParseRat("-6/8")
	fmt.Printf("%v\n", r)
	fmt.Printf("%r\n", r)
	fmt.Printf("%q\n", r)
	fmt.Printf("[%8r]\n", r)
	fmt.Printf("[%-8r]\n", r)
	// Output:
	// -0.75
	// -3/4
	// "-0.75"
	// [    -3/4]
	// [-3/4    ]
}

func ExampleRat_MarshalText() {
	b, _ := bigrat.MustParseRat("0.25").MarshalText()
	fmt.Println(string(b))
	b, _ = bigrat.ApproxPi().Neg().MarshalText()
	fmt.Println(string(b))
	// Output:
	// 1/4
	// ~-1068966896/340262731
}

func ExampleRat_UnmarshalText() {
	var r bigrat.Rat
	err := r.UnmarshalText([]byte("~-5/10"))
	fmt.Println(r, r.IsExact(), err)
	// Output: approx. -0.5 false <nil>
}

func ExampleRat_Scan() {
	var r bigrat.Rat
	_ = r.Scan("22/7")
	fmt.Println(r)
	// Output: 22/7, approx. 3.1428571428
}

func ExampleRat_Value() {
	r := bigrat.MustParseRat("0.50")
	fmt.Println(r.Value())
	// Output: 1/2 <nil>
}

func ExampleNewRatFromDecimal() {
	d := decimal.MustParse("-1.25")
	r := bigrat.NewRatFromDecimal(d)
	fmt.Println(r)
	fmt.Println(r.Num(), r.Den())
	// Output:
	// -1.25
	// 125 100
}

func ExampleRat_Decimal() {
	r := bigrat.MustParseRat("2/3")
	fmt.Println(r.Decimal(4))
	fmt.Println(r.Decimal(-1))
	// Output:
	// 0.6666 <nil>
	// 0 converting 2/3 to decimal.Decimal: scale out of range
}

func ExampleFlag() {
	var f bigrat.Flag
	f.Interrupt()
	_, err := bigrat.NewRat(3).PowInterruptible(bigrat.NewRat(100), &f)
	fmt.Println(err)
	f.Reset()
	fmt.Println(bigrat.NewRat(3).PowInterruptible(bigrat.NewRat(4), &f))
	// Output:
	// computing [3 ^ 100]: interrupted
	// 81 <nil>
}
