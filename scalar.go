package measurement

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/big"

	govalues "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

// Scalar is an immutable arbitrary-precision decimal number.
// Every quantity in this package stores exactly one Scalar (or, for derived
// quantities, a few of them).
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Scalar is a thin adapter over [decimal.Decimal] from github.com/shopspring/decimal.
// Addition, subtraction and multiplication are exact.
// Division and square root are rounded to [Precision] significant digits.
type Scalar struct {
	d decimal.Decimal
}

// Precision is the number of significant digits kept by [Scalar.Quo] and
// [Scalar.Sqrt].
const Precision = 34

var (
	errDivisionByZero    = errors.New("division by zero")
	errNegativeRadicand  = errors.New("square root of negative number")
	errInvalidFloat      = errors.New("invalid float")
	errSqrtNotConverging = errors.New("square root did not converge")
)

var (
	ten  = big.NewInt(10)
	half = decimal.New(5, -1)
)

// NewScalar returns a scalar equal to coef * 10^exp.
func NewScalar(coef int64, exp int) Scalar {
	return Scalar{decimal.New(coef, int32(exp))}
}

// ScalarFromInt64 returns a scalar equal to v.
func ScalarFromInt64(v int64) Scalar {
	return Scalar{decimal.NewFromInt(v)}
}

// NewScalarFromFloat64 converts a float to a scalar using the shortest decimal
// representation that round-trips to f.
//
// NewScalarFromFloat64 returns an error if f is NaN or an infinity.
func NewScalarFromFloat64(f float64) (Scalar, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Scalar{}, fmt.Errorf("converting %v: %w", f, errInvalidFloat)
	}
	return Scalar{decimal.NewFromFloat(f)}, nil
}

// ParseScalar converts a string such as "1.5", "-0.002" or "2.5e-24" to a scalar.
func ParseScalar(s string) (Scalar, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Scalar{}, fmt.Errorf("parsing scalar: %w", err)
	}
	return Scalar{d}, nil
}

// ScalarFromDecimal converts a fixed-precision [govalues.Decimal] to a scalar.
// The conversion is exact.
func ScalarFromDecimal(d govalues.Decimal) Scalar {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return Scalar{decimal.NewFromBigInt(coef, -int32(d.Scale()))}
}

// Decimal converts s to a fixed-precision [govalues.Decimal].
// Digits beyond [govalues.MaxScale] after the decimal point are rounded.
//
// Decimal returns an error if the integer part of s has more than
// [govalues.MaxPrec] digits.
func (s Scalar) Decimal() (govalues.Decimal, error) {
	d, err := govalues.Parse(s.String())
	if err != nil {
		return govalues.Decimal{}, fmt.Errorf("converting %v: %w", s, err)
	}
	return d, nil
}

// Float64 returns the nearest float64 to s and a flag reporting whether the
// conversion was exact.
func (s Scalar) Float64() (f float64, exact bool) {
	return s.d.Float64()
}

// Int64 returns s rounded to the nearest integer, with halves rounded away
// from zero.
// The second result is false if the rounded value does not fit in an int64.
func (s Scalar) Int64() (int64, bool) {
	i := s.d.Round(0).BigInt()
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// String implements [fmt.Stringer].
// Trailing zeros in the fractional part are omitted.
func (s Scalar) String() string {
	return s.d.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scalar) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scalar) UnmarshalText(text []byte) error {
	var err error
	*s, err = ParseScalar(string(text))
	return err
}

// Add returns s + e.
func (s Scalar) Add(e Scalar) Scalar {
	return Scalar{s.d.Add(e.d)}
}

// Sub returns s - e.
func (s Scalar) Sub(e Scalar) Scalar {
	return Scalar{s.d.Sub(e.d)}
}

// Mul returns s * e.
func (s Scalar) Mul(e Scalar) Scalar {
	return Scalar{s.d.Mul(e.d)}
}

// Neg returns s with opposite sign.
func (s Scalar) Neg() Scalar {
	return Scalar{s.d.Neg()}
}

// Abs returns the absolute value of s.
func (s Scalar) Abs() Scalar {
	return Scalar{s.d.Abs()}
}

// Quo returns s / e rounded to [Precision] significant digits.
//
// Quo returns an error if e is 0.
func (s Scalar) Quo(e Scalar) (Scalar, error) {
	q, err := s.quo(e)
	if err != nil {
		return Scalar{}, fmt.Errorf("computing [%v / %v]: %w", s, e, err)
	}
	return q, nil
}

func (s Scalar) quo(e Scalar) (Scalar, error) {
	if e.IsZero() {
		return Scalar{}, errDivisionByZero
	}
	if s.IsZero() {
		return Scalar{}, nil
	}
	// The exponent of the quotient is either diff or diff-1.
	diff := s.Exponent() - e.Exponent()
	places := Precision - diff
	q := Scalar{s.d.DivRound(e.d, int32(places))}
	if q.Exponent() >= diff {
		q = Scalar{s.d.DivRound(e.d, int32(places-1))}
	}
	return q.reduce(), nil
}

// Sqrt returns the square root of s rounded to [Precision] significant digits.
//
// Sqrt returns an error if s is negative.
func (s Scalar) Sqrt() (Scalar, error) {
	r, err := s.sqrt()
	if err != nil {
		return Scalar{}, fmt.Errorf("computing sqrt(%v): %w", s, err)
	}
	return r, nil
}

func (s Scalar) sqrt() (Scalar, error) {
	switch s.Sign() {
	case -1:
		return Scalar{}, errNegativeRadicand
	case 0:
		return Scalar{}, nil
	}

	places := int32(Precision - s.Exponent()/2 + 1)

	// Initial guess
	var x decimal.Decimal
	if f, _ := s.d.Float64(); f > 0 && !math.IsInf(f, 0) {
		x = decimal.NewFromFloat(math.Sqrt(f))
	}
	if x.Sign() <= 0 {
		x = decimal.New(1, int32(s.Exponent()/2))
	}

	// Newton's method: x = (x + s / x) / 2
	ulp := decimal.New(1, -places)
	for i := 0; i < 100; i++ {
		next := x.Add(s.d.DivRound(x, places)).Mul(half).Round(places)
		if next.Sub(x).Abs().LessThanOrEqual(ulp) {
			return Scalar{next}.round().reduce(), nil
		}
		x = next
	}
	return Scalar{}, errSqrtNotConverging
}

// Floor returns the largest integer less than or equal to s.
func (s Scalar) Floor() Scalar {
	return Scalar{s.d.Floor()}
}

// Shift returns s * 10^n.
func (s Scalar) Shift(n int) Scalar {
	if n == 0 {
		return s
	}
	return Scalar{s.d.Shift(int32(n))}
}

// Exponent returns the exponent of s in scientific notation, that is the
// power of ten of its most significant digit.
// For example, the exponent of 4500 is 3 and the exponent of 0.012 is -2.
// The exponent of 0 is 0.
func (s Scalar) Exponent() int {
	if s.IsZero() {
		return 0
	}
	return s.digits() + int(s.d.Exponent()) - 1
}

// digits returns the number of decimal digits in the coefficient of s.
func (s Scalar) digits() int {
	coef := s.d.Coefficient()
	return len(coef.Abs(coef).String())
}

// Sign returns:
//
//	-1 if s < 0
//	 0 if s == 0
//	+1 if s > 0
func (s Scalar) Sign() int {
	return s.d.Sign()
}

// IsZero returns true if s == 0.
func (s Scalar) IsZero() bool {
	return s.d.IsZero()
}

// IsNeg returns true if s < 0.
func (s Scalar) IsNeg() bool {
	return s.d.IsNegative()
}

// Cmp compares s and e numerically and returns:
//
//	-1 if s < e
//	 0 if s == e
//	+1 if s > e
func (s Scalar) Cmp(e Scalar) int {
	return s.d.Cmp(e.d)
}

// Equal returns true if s and e are numerically equal.
// 1.0 and 1.00 are equal.
func (s Scalar) Equal(e Scalar) bool {
	return s.d.Equal(e.d)
}

// Hash returns a hash of the numeric value of s.
// Numerically equal scalars have equal hashes.
func (s Scalar) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.reduce().String()))
	return h.Sum64()
}

// hashParts returns a hash of the numeric values of parts, in order.
func hashParts(parts ...Scalar) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p.reduce().String()))
		h.Write([]byte{'/'})
	}
	return h.Sum64()
}

// round rounds s to [Precision] significant digits.
func (s Scalar) round() Scalar {
	places := Precision - 1 - s.Exponent()
	if places >= -int(s.d.Exponent()) {
		return s
	}
	return Scalar{s.d.Round(int32(places))}
}

// reduce returns s with all trailing zeros removed from the coefficient.
func (s Scalar) reduce() Scalar {
	if s.IsZero() {
		return Scalar{}
	}
	coef := s.d.Coefficient()
	exp := s.d.Exponent()
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}
		coef, q = q, coef
		exp++
	}
	return Scalar{decimal.NewFromBigInt(coef, exp)}
}
