/*
Package bigrat implements the signed rational numbers of arbitrary precision
used by a terminal calculator.
It relies on the [Nat] type, an unsigned integer of arbitrary precision, for
numerators and denominators, and on the [decimal] package for conversion to
decimal floating-point numbers.

# Features

  - Immutable rational values, ensuring safe usage across multiple goroutines
  - Exact arithmetic: addition, subtraction, multiplication, division and
    integer powers
  - Exactness tracking, to tell precise results from approximations of
    irrational numbers such as π
  - Rendering suitable for a calculator, with both the exact fraction and its
    decimal approximation when the decimal expansion does not terminate
  - Cooperative interruption of long-running powers and digit expansions

# Representation

A [Rat] is stored in sign-magnitude form: a [Sign], an unsigned numerator and
an unsigned denominator, which is never zero.
Fractions are not kept in lowest terms after every operation.
They are reduced by [Rat.Simplify] where it matters: when raising to a power,
when testing whether a decimal expansion terminates, and when rendering.
Comparison does not depend on the representation, since it is derived from
subtraction.

Decimal literals are accumulated digit by digit with a [Builder], which is
kept apart from [Rat] because appending a digit only makes sense for a fraction
that has never been reduced or combined with other values.

# Exactness

Every [Rat] carries an exactness flag.
Values constructed from integers and literals are exact, [ApproxPi] is not.
The result of an operation is exact only if all of its operands are exact.
Inexact values are rendered with the "approx. " prefix.

# Errors

Division returns an error if the divisor is zero.
Pow returns an error if the exponent is not an integer, if the result would be
too large, or if the computation was interrupted.
Nat panics on subtraction underflow and on division by zero.
Rat never triggers these. Apart from the Must helpers and [Rat.TerminatesInBase]
called with a base below 2, its methods do not panic.
*/
package bigrat
