// Package rpn evaluates arithmetic expressions written in reverse Polish
// notation on top of the bigrat package.
//
// Tokens are separated by whitespace.
// Literals are parsed by [bigrat.ParseRat], so both 3.14 and 22/7 are valid.
// The following words are recognised:
//
//	+ - * / ^  binary operators, applied to the two topmost values
//	neg        negates the topmost value
//	pi         pushes an approximation of π
package rpn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/bigrat"
)

var (
	errEmptyExpression = errors.New("empty expression")
	errStackUnderflow  = errors.New("not enough operands")
	errStackLeftover   = errors.New("too many operands")
	errUnknownToken    = errors.New("unknown token")
)

// Eval evaluates the expression and returns its single resulting value.
// Powers poll irq, so that a long computation can be interrupted.
//
// Eval returns an error if:
//   - the expression is empty;
//   - an operator lacks operands, or values are left over;
//   - a token is neither a literal nor a known word;
//   - an operation fails, for example a division by zero.
func Eval(expr string, irq bigrat.Interrupter) (bigrat.Rat, error) {
	r, err := eval(expr, irq)
	if err != nil {
		return bigrat.Rat{}, fmt.Errorf("evaluating %q: %w", expr, err)
	}
	return r, nil
}

func eval(expr string, irq bigrat.Interrupter) (bigrat.Rat, error) {
	var stack []bigrat.Rat
	for _, tok := range strings.Fields(expr) {
		switch tok {
		case "+", "-", "*", "/", "^":
			if len(stack) < 2 {
				return bigrat.Rat{}, fmt.Errorf("%w for %q", errStackUnderflow, tok)
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			c, err := apply(tok, a, b, irq)
			if err != nil {
				return bigrat.Rat{}, err
			}
			stack = append(stack, c)
		case "neg":
			if len(stack) < 1 {
				return bigrat.Rat{}, fmt.Errorf("%w for %q", errStackUnderflow, tok)
			}
			stack[len(stack)-1] = stack[len(stack)-1].Neg()
		case "pi":
			stack = append(stack, bigrat.ApproxPi())
		default:
			r, err := bigrat.ParseRat(tok)
			if err != nil {
				return bigrat.Rat{}, fmt.Errorf("%w %q: %w", errUnknownToken, tok, err)
			}
			stack = append(stack, r)
		}
	}
	switch len(stack) {
	case 0:
		return bigrat.Rat{}, errEmptyExpression
	case 1:
		return stack[0], nil
	default:
		return bigrat.Rat{}, fmt.Errorf("%w: %v values left", errStackLeftover, len(stack))
	}
}

func apply(op string, a, b bigrat.Rat, irq bigrat.Interrupter) (bigrat.Rat, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		return a.Div(b)
	default:
		return a.PowInterruptible(b, irq)
	}
}
