package bigrat

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	errExponentTooLarge = errors.New("exponent too large")
	errInterrupted      = errors.New("interrupted")
	errInvalidNat       = errors.New("invalid natural number")
)

// maxPowBits limits the size of a power computed by [Nat.Pow].
// It is the bit length above which the result is considered too large.
const maxPowBits = 1 << 26

// Nat type represents an unsigned integer of arbitrary precision.
// Its zero value corresponds to 0.
//
// Nat is immutable: every operation returns a new value and never modifies
// its operands, so it is safe for concurrent use by multiple goroutines.
type Nat struct {
	v *big.Int // nil means 0, never negative
}

var natOne = NewNat(1)

// NewNat returns a natural number equal to u.
func NewNat(u uint64) Nat {
	if u == 0 {
		return Nat{}
	}
	return Nat{v: new(big.Int).SetUint64(u)}
}

func newNatFromBig(b *big.Int) Nat {
	if b.Sign() == 0 {
		return Nat{}
	}
	return Nat{v: b}
}

// ParseNat converts a string of decimal digits to a natural number.
// Signs, spaces and underscores are not allowed.
func ParseNat(s string) (Nat, error) {
	if s == "" {
		return Nat{}, fmt.Errorf("parsing %q: %w", s, errInvalidNat)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Nat{}, fmt.Errorf("parsing %q: %w", s, errInvalidNat)
		}
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Nat{}, fmt.Errorf("parsing %q: %w", s, errInvalidNat)
	}
	return newNatFromBig(b), nil
}

// MustParseNat is like [ParseNat] but panics if the string cannot be parsed.
func MustParseNat(s string) Nat {
	x, err := ParseNat(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNat(%q) failed: %v", s, err))
	}
	return x
}

// big returns x as a *big.Int that must not be modified.
func (x Nat) big() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// IsZero returns true if x = 0.
func (x Nat) IsZero() bool {
	return x.v == nil || x.v.Sign() == 0
}

// IsOne returns true if x = 1.
func (x Nat) IsOne() bool {
	return x.v != nil && x.v.IsUint64() && x.v.Uint64() == 1
}

func (x Nat) isOdd() bool {
	return x.v != nil && x.v.Bit(0) == 1
}

// Uint64 returns x as a uint64.
// If x cannot be represented as a uint64, then false is returned.
func (x Nat) Uint64() (u uint64, ok bool) {
	b := x.big()
	if !b.IsUint64() {
		return 0, false
	}
	return b.Uint64(), true
}

// Cmp compares natural numbers and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x Nat) Cmp(y Nat) int {
	return x.big().Cmp(y.big())
}

// Add returns x + y.
func (x Nat) Add(y Nat) Nat {
	return newNatFromBig(new(big.Int).Add(x.big(), y.big()))
}

// Sub returns x - y.
//
// Sub panics if x < y, since the result cannot be represented.
// Callers must order the operands first.
func (x Nat) Sub(y Nat) Nat {
	if x.Cmp(y) < 0 {
		panic(fmt.Sprintf("Nat(%v).Sub(%v) failed: negative result", x, y))
	}
	return newNatFromBig(new(big.Int).Sub(x.big(), y.big()))
}

// Mul returns x * y.
func (x Nat) Mul(y Nat) Nat {
	if x.IsZero() || y.IsZero() {
		return Nat{}
	}
	return newNatFromBig(new(big.Int).Mul(x.big(), y.big()))
}

// QuoRem returns q = ⌊x / y⌋ and r = x - y * q.
//
// QuoRem panics if y = 0.
func (x Nat) QuoRem(y Nat) (q, r Nat) {
	if y.IsZero() {
		panic(fmt.Sprintf("Nat(%v).QuoRem(%v) failed: division by zero", x, y))
	}
	bq, br := new(big.Int).QuoRem(x.big(), y.big(), new(big.Int))
	return newNatFromBig(bq), newNatFromBig(br)
}

// Quo returns ⌊x / y⌋.
//
// Quo panics if y = 0.
func (x Nat) Quo(y Nat) Nat {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns x mod y.
//
// Rem panics if y = 0.
func (x Nat) Rem(y Nat) Nat {
	_, r := x.QuoRem(y)
	return r
}

// GCD returns the greatest common divisor of x and y.
// GCD(0, 0) is 0 and GCD(x, 0) is x.
func (x Nat) GCD(y Nat) Nat {
	return newNatFromBig(new(big.Int).GCD(nil, nil, x.big(), y.big()))
}

// LCM returns the least common multiple of x and y.
// LCM is 0 if either operand is 0.
func (x Nat) LCM(y Nat) Nat {
	if x.IsZero() || y.IsZero() {
		return Nat{}
	}
	return x.Quo(x.GCD(y)).Mul(y)
}

// Pow returns x raised to the power of e.
// Zero raised to the power of zero is 1.
//
// Pow returns an error if the result would be too large to compute.
func (x Nat) Pow(e Nat) (Nat, error) {
	z, err := x.pow(e, Never{})
	if err != nil {
		return Nat{}, fmt.Errorf("computing [%v ^ %v]: %w", x, e, err)
	}
	return z, nil
}

// pow computes x^e by repeated squaring, polling irq before every step.
func (x Nat) pow(e Nat, irq Interrupter) (Nat, error) {
	// Special cases
	switch {
	case e.IsZero():
		return natOne, nil
	case x.IsZero(), x.IsOne():
		return x, nil
	}

	// Result size
	n, ok := e.Uint64()
	if !ok {
		return Nat{}, errExponentTooLarge
	}
	if b := uint64(x.big().BitLen() - 1); n > maxPowBits/b {
		return Nat{}, errExponentTooLarge
	}

	// Square and multiply
	z := big.NewInt(1)
	b := new(big.Int).Set(x.big())
	for n > 0 {
		if irq.ShouldInterrupt() {
			return Nat{}, errInterrupted
		}
		if n&1 == 1 {
			z.Mul(z, b)
		}
		n >>= 1
		if n > 0 {
			b.Mul(b, b)
		}
	}
	return newNatFromBig(z), nil
}

// String implements the [fmt.Stringer] interface and returns
// the decimal digits of the natural number.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Nat) String() string {
	if x.v == nil {
		return "0"
	}
	return x.v.String()
}
