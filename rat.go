package bigrat

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

var (
	errDivisionByZero     = errors.New("division by zero")
	errNonIntegerExponent = errors.New("non-integer exponents not supported")
	errInvalidBase        = errors.New("base must be at least 2")
)

// Rat type represents a signed rational number of arbitrary precision.
// Its zero value corresponds to the exact value 0.
//
// A Rat is stored in sign-magnitude form as a [Sign], an unsigned numerator
// and an unsigned, never zero, denominator.
// The fraction is not kept in lowest terms: operations reduce it only where
// needed, see [Rat.Simplify].
//
// Besides its value, a Rat carries an exactness flag.
// A value is inexact if it is a deliberate approximation of an irrational
// quantity, such as [ApproxPi], or if it was computed from such a value.
//
// Rat is immutable and designed to be safe for concurrent use by multiple
// goroutines.
type Rat struct {
	sign    Sign
	num     Nat
	den     Nat  // 0 is read as 1, so that Rat{} is usable
	inexact bool // inverted, so that Rat{} is exact
}

// newRatUnsafe creates a new rational without checking the denominator.
// Use it only if you are absolutely sure that den is not zero.
func newRatUnsafe(sign Sign, num, den Nat, exact bool) Rat {
	return Rat{sign: sign, num: num, den: den, inexact: !exact}
}

func newRatFromNat(num Nat, exact bool) Rat {
	return newRatUnsafe(Positive, num, natOne, exact)
}

// NewRat returns an exact rational equal to i.
func NewRat(i int64) Rat {
	if i < 0 {
		// -i overflows for math.MinInt64
		return newRatUnsafe(Negative, NewNat(uint64(-(i+1))+1), natOne, true)
	}
	return NewRatFromUint64(uint64(i))
}

// NewRatFromUint64 returns an exact rational equal to u.
func NewRatFromUint64(u uint64) Rat {
	return newRatFromNat(NewNat(u), true)
}

// NewRatFromNats returns an exact rational equal to sign * num / den.
// The fraction is stored as is, without reduction.
//
// NewRatFromNats returns an error if the denominator is 0.
func NewRatFromNats(sign Sign, num, den Nat) (Rat, error) {
	if den.IsZero() {
		return Rat{}, fmt.Errorf("converting %v%v/%v: %w", sign, num, den, errDivisionByZero)
	}
	return newRatUnsafe(sign, num, den, true), nil
}

// MustNewRatFromNats is like [NewRatFromNats] but panics if the denominator is 0.
// It simplifies safe initialization of global variables holding rationals.
func MustNewRatFromNats(sign Sign, num, den Nat) Rat {
	r, err := NewRatFromNats(sign, num, den)
	if err != nil {
		panic(fmt.Sprintf("NewRatFromNats(%v, %v, %v) failed: %v", sign, num, den, err))
	}
	return r
}

// ApproxPi returns an inexact rational approximation of π.
func ApproxPi() Rat {
	return newRatUnsafe(Positive, NewNat(1068966896), NewNat(340262731), false)
}

func (r Rat) denom() Nat {
	if r.den.IsZero() {
		return natOne
	}
	return r.den
}

// Num returns the stored numerator, which is not necessarily in lowest terms.
// See also method [Rat.Simplify].
func (r Rat) Num() Nat {
	return r.num
}

// Den returns the stored denominator, which is never 0.
// See also method [Rat.Simplify].
func (r Rat) Den() Nat {
	return r.denom()
}

// IsExact returns true if the rational is a precise value rather than
// an approximation.
func (r Rat) IsExact() bool {
	return !r.inexact
}

// Approx returns a rational with the same value, marked as inexact.
func (r Rat) Approx() Rat {
	r.inexact = true
	return r
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Rat) Sign() int {
	switch {
	case r.num.IsZero():
		return 0
	case r.sign == Negative:
		return -1
	default:
		return 1
	}
}

// IsNeg returns:
//
//	true  if r < 0
//	false otherwise
func (r Rat) IsNeg() bool {
	return r.Sign() < 0
}

// IsPos returns:
//
//	true  if r > 0
//	false otherwise
func (r Rat) IsPos() bool {
	return r.Sign() > 0
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Rat) IsZero() bool {
	return r.num.IsZero()
}

// IsInt returns true if the rational is an integer.
func (r Rat) IsInt() bool {
	return r.num.Rem(r.denom()).IsZero()
}

// Neg returns a rational with the opposite sign.
func (r Rat) Neg() Rat {
	r.sign = r.sign.Flip()
	return r
}

// Abs returns the absolute value of the rational.
func (r Rat) Abs() Rat {
	r.sign = Positive
	return r
}

// Add returns the sum of rationals a and b.
// The result is exact only if both operands are exact.
func (a Rat) Add(b Rat) Rat {
	// a + b = -((-a) + (-b))
	if a.sign == Negative {
		return a.Neg().addPositive(b.Neg()).Neg()
	}
	return a.addPositive(b)
}

// addPositive computes a + b for a non-negative a.
func (a Rat) addPositive(b Rat) Rat {
	if a.sign != Positive {
		panic(fmt.Sprintf("addPositive(%v, %v) failed: left operand is negative", a.num, b.num))
	}
	exact := a.IsExact() && b.IsExact()

	// Common denominator
	x, y, den := a.num, b.num, a.denom()
	if e := b.denom(); den.Cmp(e) != 0 {
		lcm := den.LCM(e)
		x = x.Mul(lcm.Quo(den))
		y = y.Mul(lcm.Quo(e))
		den = lcm
	}

	// Numerators
	switch {
	case b.sign == Positive:
		return newRatUnsafe(Positive, x.Add(y), den, exact)
	case x.Cmp(y) < 0:
		return newRatUnsafe(Negative, y.Sub(x), den, exact)
	default:
		return newRatUnsafe(Positive, x.Sub(y), den, exact)
	}
}

// Sub returns the difference between rationals a and b.
// The result is exact only if both operands are exact.
func (a Rat) Sub(b Rat) Rat {
	return a.Add(b.Neg())
}

// Mul returns the product of rationals a and b.
// The fraction is not reduced.
// The result is exact only if both operands are exact.
func (a Rat) Mul(b Rat) Rat {
	return newRatUnsafe(
		SignOfProduct(a.sign, b.sign),
		a.num.Mul(b.num),
		a.denom().Mul(b.denom()),
		a.IsExact() && b.IsExact(),
	)
}

// Div returns the quotient of rationals a and b.
// The fraction is not reduced.
// The result is exact only if both operands are exact.
//
// Div returns an error if the divisor is 0.
func (a Rat) Div(b Rat) (Rat, error) {
	c, err := a.div(b)
	if err != nil {
		return Rat{}, fmt.Errorf("computing [%r / %r]: %w", a, b, err)
	}
	return c, nil
}

func (a Rat) div(b Rat) (Rat, error) {
	if b.num.IsZero() {
		return Rat{}, errDivisionByZero
	}
	return newRatUnsafe(
		SignOfProduct(a.sign, b.sign),
		a.num.Mul(b.denom()),
		a.denom().Mul(b.num),
		a.IsExact() && b.IsExact(),
	), nil
}

// Pow returns rational a raised to the power of e.
// Zero raised to the power of zero is 1.
// The result is exact only if both operands are exact.
// See also method [Rat.PowInterruptible].
//
// Pow returns an error if:
//   - the exponent is not an integer;
//   - a is 0 and the exponent is negative;
//   - the result would be too large to compute.
func (a Rat) Pow(e Rat) (Rat, error) {
	c, err := a.pow(e, Never{})
	if err != nil {
		return Rat{}, fmt.Errorf("computing [%r ^ %r]: %w", a, e, err)
	}
	return c, nil
}

// PowInterruptible is like [Rat.Pow] but polls irq while computing the
// power and returns an error as soon as irq requests an interruption.
func (a Rat) PowInterruptible(e Rat, irq Interrupter) (Rat, error) {
	c, err := a.pow(e, irq)
	if err != nil {
		return Rat{}, fmt.Errorf("computing [%r ^ %r]: %w", a, e, err)
	}
	return c, nil
}

func (a Rat) pow(e Rat, irq Interrupter) (Rat, error) {
	a, e = a.Simplify(), e.Simplify()
	if !e.denom().IsOne() {
		return Rat{}, errNonIntegerExponent
	}

	// a^-e = 1 / a^e
	if e.sign == Negative {
		c, err := a.pow(e.Neg(), irq)
		if err != nil {
			return Rat{}, err
		}
		return NewRat(1).div(c)
	}

	num, err := a.num.pow(e.num, irq)
	if err != nil {
		return Rat{}, err
	}
	den, err := a.denom().pow(e.num, irq)
	if err != nil {
		return Rat{}, err
	}
	sign := Positive
	if a.sign == Negative && e.num.isOdd() {
		sign = Negative
	}
	return newRatUnsafe(sign, num, den, a.IsExact() && e.IsExact()), nil
}

// Simplify returns the rational reduced to lowest terms.
// The sign and the exactness are preserved.
func (r Rat) Simplify() Rat {
	den := r.denom()
	if den.IsOne() {
		return r
	}
	gcd := r.num.GCD(den)
	return newRatUnsafe(r.sign, r.num.Quo(gcd), den.Quo(gcd), r.IsExact())
}

// TerminatesInBase returns true if the rational has a finite positional
// expansion in the given base.
// For example, 1/4 terminates in base 10 but 1/3 does not.
//
// TerminatesInBase panics if the base is less than 2.
func (r Rat) TerminatesInBase(base uint64) bool {
	ok, _ := r.terminatesInBase(base, Never{})
	return ok
}

// terminatesInBase strips from the reduced denominator every factor it
// shares with the base, polling irq before every step.
// The expansion terminates iff nothing is left.
func (r Rat) terminatesInBase(base uint64, irq Interrupter) (bool, error) {
	if base < 2 {
		panic(fmt.Sprintf("TerminatesInBase(%v) failed: %v", base, errInvalidBase))
	}
	den := r.Simplify().denom()
	b := NewNat(base)
	for !den.IsOne() {
		if irq.ShouldInterrupt() {
			return false, errInterrupted
		}
		g := den.GCD(b)
		if g.IsOne() {
			return false, nil
		}
		den = den.Quo(g)
	}
	return true, nil
}

// Cmp compares rationals and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// The fractions do not need to be in lowest terms and the exactness
// is ignored.
func (a Rat) Cmp(b Rat) int {
	d := a.Sub(b)
	switch {
	case d.num.IsZero():
		return 0
	case d.sign == Positive:
		return 1
	default:
		return -1
	}
}

// Equal returns true if rationals a and b have the same value.
// See also method [Rat.Cmp].
func (a Rat) Equal(b Rat) bool {
	return a.Cmp(b) == 0
}

// Less returns true if a < b.
// See also method [Rat.Cmp].
func (a Rat) Less(b Rat) bool {
	return a.Cmp(b) < 0
}

// maxApproxDigits is the number of fractional digits shown for a value
// without a finite decimal expansion.
const maxApproxDigits = 10

// String implements the [fmt.Stringer] interface and returns the form
// shown by the calculator:
//
//	2                          an integer
//	0.25                       a terminating fraction
//	1/3, approx. 0.3333333333  an exact fraction without a finite expansion
//	approx. 3.1415926535       an inexact value
//
// See also methods [Rat.Format] and [Rat.StringInterruptible].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rat) String() string {
	s, _ := r.text(Never{})
	return s
}

// StringInterruptible is like [Rat.String] but polls irq while expanding
// the digits and returns an error as soon as irq requests an interruption.
// A terminating fraction with a large denominator, such as 2^-100000,
// has as many digits as its denominator, so rendering it may take long.
func (r Rat) StringInterruptible(irq Interrupter) (string, error) {
	s, err := r.text(irq)
	if err != nil {
		return "", fmt.Errorf("rendering %r: %w", r, err)
	}
	return s, nil
}

func (r Rat) text(irq Interrupter) (string, error) {
	var buf strings.Builder

	// Exactness
	if !r.IsExact() {
		buf.WriteString("approx. ")
	}

	// Sign
	x := r.Simplify()
	neg := x.IsNeg()
	if neg {
		buf.WriteByte('-')
	}

	// Integer
	num, den := x.num, x.denom()
	if den.IsOne() {
		buf.WriteString(num.String())
		return buf.String(), nil
	}

	// Exact fraction
	terminating, err := x.terminatesInBase(10, irq)
	if err != nil {
		return "", err
	}
	if !terminating && x.IsExact() {
		buf.WriteString(num.String())
		buf.WriteByte('/')
		buf.WriteString(den.String())
		buf.WriteString(", approx. ")
		if neg {
			buf.WriteByte('-')
		}
	}

	// Integer part
	ipart, rem := num.QuoRem(den)
	buf.WriteString(ipart.String())
	buf.WriteByte('.')

	// Fractional digits
	var digit Nat
	for i := 0; !rem.IsZero() && (terminating || i < maxApproxDigits); i++ {
		if irq.ShouldInterrupt() {
			return "", errInterrupted
		}
		digit, rem = rem.Mul(natTen).QuoRem(den)
		buf.WriteString(digit.String())
	}

	return buf.String(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example                       | Description       |
//	| ------ | ----------------------------- | ----------------- |
//	| %s, %v | 1/3, approx. 0.3333333333     | Calculator form   |
//	| %q     | "1/3, approx. 0.3333333333"   | Quoted form       |
//	| %r     | 1/3                           | Reduced fraction  |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rat) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'r', 'R':
		text = r.fraction()
	default:
		text = r.String()
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + len(text) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	for range lspaces {
		buf = append(buf, ' ')
	}
	for range lquote {
		buf = append(buf, '"')
	}
	buf = append(buf, text...)
	for range tquote {
		buf = append(buf, '"')
	}
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'r', 'R':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigrat.Rat="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// fraction returns the reduced fraction as [~][-]num[/den].
// The '~' marks an inexact value.
func (r Rat) fraction() string {
	var buf strings.Builder
	if !r.IsExact() {
		buf.WriteByte('~')
	}
	x := r.Simplify()
	if x.IsNeg() {
		buf.WriteByte('-')
	}
	buf.WriteString(x.num.String())
	if den := x.denom(); !den.IsOne() {
		buf.WriteByte('/')
		buf.WriteString(den.String())
	}
	return buf.String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRat].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rat) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRat(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Rat{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a reduced fraction, so that no precision is lost.
// Inexact values are prefixed with '~'.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rat) MarshalText() ([]byte, error) {
	return []byte(r.fraction()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *Rat) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*r, err = ParseRat(value)
	case []byte:
		*r, err = ParseRat(string(value))
	case int64:
		*r = NewRat(value)
	case nil:
		err = fmt.Errorf("%T does not support null values", Rat{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Rat{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Rat.MarshalText].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Rat) Value() (driver.Value, error) {
	return r.fraction(), nil
}
