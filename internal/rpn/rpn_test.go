package rpn

import (
	"errors"
	"strings"
	"testing"

	"github.com/govalues/bigrat"
)

func TestEval(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			expr  string
			want  string
			exact bool
		}{
			{"42", "42", true},
			{"  7  ", "7", true},
			{"1 3 /", "1/3, approx. 0.3333333333", true},
			{"2 3 4 * +", "14", true},
			{"1 2 -", "-1", true},
			{"-3 2 *", "-6", true},
			{"5 neg", "-5", true},
			{"5 neg neg", "5", true},
			{"0.1 0.2 +", "0.3", true},
			{"22/7 7 *", "22", true},
			{"2 10 ^", "1024", true},
			{"2 -10 ^", "0.0009765625", true},
			{"-2 3 ^", "-8", true},
			{"0 0 ^", "1", true},
			{"1 2 / 1 3 / +", "5/6, approx. 0.8333333333", true},
			{"pi", "approx. 3.1415926535", false},
			{"pi 2 *", "approx. 6.2831853071", false},
			{"pi pi -", "approx. 0", false},
			{"~1/3", "approx. 0.3333333333", false},
		}
		for _, tt := range tests {
			got, err := Eval(tt.expr, bigrat.Never{})
			if err != nil {
				t.Errorf("Eval(%q) failed: %v", tt.expr, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("Eval(%q) = %q, want %q", tt.expr, s, tt.want)
			}
			if got.IsExact() != tt.exact {
				t.Errorf("Eval(%q).IsExact() = %v, want %v", tt.expr, got.IsExact(), tt.exact)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			expr string
			want error
		}{
			"empty":          {"", errEmptyExpression},
			"blank":          {" \t ", errEmptyExpression},
			"binary operand": {"1 +", errStackUnderflow},
			"no operands":    {"*", errStackUnderflow},
			"neg operand":    {"neg", errStackUnderflow},
			"leftover":       {"1 2", errStackLeftover},
			"unknown word":   {"1 x +", errUnknownToken},
			"bad literal":    {"1.", errUnknownToken},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Eval(tt.expr, bigrat.Never{})
				if !errors.Is(err, tt.want) {
					t.Errorf("Eval(%q) = %v, want %v", tt.expr, err, tt.want)
				}
			})
		}
	})

	t.Run("literal error", func(t *testing.T) {
		tests := []struct {
			expr string
			want string
		}{
			{"1/0 2 +", "division by zero"},
			{"2 1.5.1 *", "invalid rational"},
		}
		for _, tt := range tests {
			_, err := Eval(tt.expr, bigrat.Never{})
			if !errors.Is(err, errUnknownToken) {
				t.Errorf("Eval(%q) = %v, want %v", tt.expr, err, errUnknownToken)
				continue
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Eval(%q) = %v, want error containing %q", tt.expr, err, tt.want)
			}
		}
	})

	t.Run("arithmetic error", func(t *testing.T) {
		tests := []struct {
			expr string
			want string
		}{
			{"1 0 /", "division by zero"},
			{"0 -1 ^", "division by zero"},
			{"2 1/2 ^", "non-integer exponents not supported"},
			{"2 100000000 ^", "exponent too large"},
		}
		for _, tt := range tests {
			_, err := Eval(tt.expr, bigrat.Never{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Eval(%q) = %v, want error containing %q", tt.expr, err, tt.want)
			}
		}
	})
}

func TestEval_Interrupted(t *testing.T) {
	var f bigrat.Flag
	f.Interrupt()

	_, err := Eval("3 1000 ^", &f)
	if err == nil || !strings.Contains(err.Error(), "interrupted") {
		t.Errorf("Eval(%q) = %v, want interrupted error", "3 1000 ^", err)
	}

	got, err := Eval("3 4 +", &f)
	if err != nil {
		t.Fatalf("Eval(%q) failed: %v", "3 4 +", err)
	}
	if s := got.String(); s != "7" {
		t.Errorf("Eval(%q) = %q, want %q", "3 4 +", s, "7")
	}
}
