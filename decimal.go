package bigrat

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

var (
	errScaleRange      = errors.New("scale out of range")
	errDecimalOverflow = errors.New("decimal overflow")
)

// NewRatFromDecimal returns an exact rational equal to decimal d,
// that is coef / 10^scale.
// The fraction is not reduced.
// See also method [Rat.Decimal].
func NewRatFromDecimal(d decimal.Decimal) Rat {
	den, _ := natTen.pow(NewNat(uint64(d.Scale())), Never{}) // at most 10^19
	sign := Positive
	if d.IsNeg() {
		sign = Negative
	}
	return newRatUnsafe(sign, NewNat(d.Coef()), den, true)
}

// Decimal returns the rational truncated towards zero to the given number of
// digits after the decimal point.
// The exactness of the rational is not carried over.
// See also constructor [NewRatFromDecimal].
//
// Decimal returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the coefficient of the result does not fit into an int64.
func (r Rat) Decimal(scale int) (decimal.Decimal, error) {
	d, err := r.decimal(scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %r to %T: %w", r, decimal.Decimal{}, err)
	}
	return d, nil
}

func (r Rat) decimal(scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, errScaleRange
	}
	x := r.Simplify()

	// Coefficient
	pow, err := natTen.pow(NewNat(uint64(scale)), Never{})
	if err != nil {
		return decimal.Decimal{}, err
	}
	coef := x.num.Mul(pow).Quo(x.denom())
	u, ok := coef.Uint64()
	if !ok || u > math.MaxInt64 {
		return decimal.Decimal{}, errDecimalOverflow
	}
	i := int64(u)
	if x.IsNeg() {
		i = -i
	}

	return decimal.New(i, scale)
}
