package bigrat

import "fmt"

// MustDiv is like [Rat.Div] but panics if computing error.
func (a Rat) MustDiv(b Rat) Rat {
	c, err := a.Div(b)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%r) failed: %v", a, err))
	}
	return c
}

// MustPow is like [Rat.Pow] but panics if computing error.
func (a Rat) MustPow(e Rat) Rat {
	c, err := a.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%r) failed: %v", a, err))
	}
	return c
}
