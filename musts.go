package measurement

import "fmt"

// MustParseScalar is like [ParseScalar] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding scalars.
func MustParseScalar(s string) Scalar {
	d, err := ParseScalar(s)
	if err != nil {
		panic(fmt.Sprintf("ParseScalar(%q) failed: %v", s, err))
	}
	return d
}

// MustQuo is like [Scalar.Quo] but panics if computing error.
func (s Scalar) MustQuo(e Scalar) Scalar {
	q, err := s.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return q
}

// MustSqrt is like [Scalar.Sqrt] but panics if computing error.
func (s Scalar) MustSqrt() Scalar {
	r, err := s.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return r
}
