package bigrat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errInvalidDigit        = errors.New("invalid digit")
	errIntegerAfterDecimal = errors.New("integer digit after decimal digits")
	errInvalidRat          = errors.New("invalid rational")
)

var natTen = NewNat(10)

// Builder accumulates a decimal literal one digit at a time.
// Its zero value corresponds to 0.
//
// A Builder keeps the raw, unreduced fraction produced by the digits seen so
// far, which is why it is a separate type: a [Rat] that has been reduced or
// combined with other values can never be appended to.
// Use [Builder.Rat] to obtain the accumulated value.
type Builder struct {
	sign Sign
	num  Nat
	den  Nat // 0 is read as 1
}

func (b *Builder) denom() Nat {
	if b.den.IsZero() {
		return natOne
	}
	return b.den
}

// AddIntegerDigit appends a digit to the integer part of the literal,
// computing num = num * 10 + digit.
// It must not be called after [Builder.AddDecimalDigit].
//
// AddIntegerDigit returns an error if:
//   - the digit is greater than 9;
//   - a digit after the decimal point has already been added.
func (b *Builder) AddIntegerDigit(digit byte) error {
	if digit > 9 {
		return fmt.Errorf("adding integer digit %v: %w", digit, errInvalidDigit)
	}
	if !b.denom().IsOne() {
		return fmt.Errorf("adding integer digit %v: %w", digit, errIntegerAfterDecimal)
	}
	b.num = b.num.Mul(natTen).Add(NewNat(uint64(digit)))
	return nil
}

// AddDecimalDigit appends a digit after the decimal point, computing
// num = num * 10 + digit and den = den * 10.
// Appending digits 1 and 4 to the integer 3 results in 314/100.
//
// AddDecimalDigit returns an error if the digit is greater than 9.
func (b *Builder) AddDecimalDigit(digit byte) error {
	if digit > 9 {
		return fmt.Errorf("adding decimal digit %v: %w", digit, errInvalidDigit)
	}
	b.num = b.num.Mul(natTen).Add(NewNat(uint64(digit)))
	b.den = b.denom().Mul(natTen)
	return nil
}

// Negate flips the sign of the literal.
func (b *Builder) Negate() {
	b.sign = b.sign.Flip()
}

// Rat returns the accumulated literal as an exact rational.
// The fraction is not reduced.
func (b *Builder) Rat() Rat {
	return newRatUnsafe(b.sign, b.num, b.denom(), true)
}

// ParseRat converts a string to a rational.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.0001234
//	22/7
//	-1/3
//
// A leading '~' marks the result as inexact, as produced by [Rat.MarshalText].
//
// ParseRat returns an error if:
//   - the string contains any whitespaces;
//   - the denominator of a fraction is 0;
//   - the string does not follow one of the formats above.
func ParseRat(s string) (Rat, error) {
	r, err := parseRat(s)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return r, nil
}

func parseRat(s string) (Rat, error) {
	// Exactness
	exact := true
	if strings.HasPrefix(s, "~") {
		exact = false
		s = s[1:]
	}

	// Sign
	var b Builder
	switch {
	case strings.HasPrefix(s, "-"):
		b.Negate()
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	var r Rat
	if n, d, ok := strings.Cut(s, "/"); ok {
		// Fraction
		num, err := ParseNat(n)
		if err != nil {
			return Rat{}, errInvalidRat
		}
		den, err := ParseNat(d)
		if err != nil {
			return Rat{}, errInvalidRat
		}
		if den.IsZero() {
			return Rat{}, errDivisionByZero
		}
		r = newRatUnsafe(b.sign, num, den, true)
	} else {
		// Decimal literal
		ipart, fpart, dot := strings.Cut(s, ".")
		if ipart == "" || (dot && fpart == "") {
			return Rat{}, errInvalidRat
		}
		for i := 0; i < len(ipart); i++ {
			if err := b.AddIntegerDigit(ipart[i] - '0'); err != nil {
				return Rat{}, errInvalidRat
			}
		}
		for i := 0; i < len(fpart); i++ {
			if err := b.AddDecimalDigit(fpart[i] - '0'); err != nil {
				return Rat{}, errInvalidRat
			}
		}
		r = b.Rat()
	}

	if !exact {
		r = r.Approx()
	}
	return r, nil
}

// MustParseRat is like [ParseRat] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParseRat(s string) Rat {
	r, err := ParseRat(s)
	if err != nil {
		panic(fmt.Sprintf("ParseRat(%q) failed: %v", s, err))
	}
	return r
}
