package bigrat

// Sign is the sign of a rational value stored in sign-magnitude form.
// The zero value is [Positive].
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// Flip returns the opposite sign.
func (s Sign) Flip() Sign {
	if s == Negative {
		return Positive
	}
	return Negative
}

// SignOfProduct returns the sign of a product of two values with signs a and b:
//
//	Positive if a = b
//	Negative otherwise
func SignOfProduct(a, b Sign) Sign {
	if a == b {
		return Positive
	}
	return Negative
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}
