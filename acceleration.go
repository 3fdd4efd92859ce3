package measurement

import "fmt"

// Acceleration is a change of speed per duration, a length divided by two
// durations.
//
// Like [Speed], an acceleration keeps its parts separately: a length a and
// two durations b1 and b2 for a / (b1·b2).
// Operations combine the parts so that the ratio of the result is exact.
// The zero value has zero durations; its Total method returns an error.
type Acceleration struct {
	length Length
	time1  Duration
	time2  Duration
}

var errZeroTimeAcceleration = fmt.Errorf("acceleration with zero duration: %w", errDivisionByZero)

// NewAcceleration returns the acceleration l / (t1·t2).
func NewAcceleration(l Length, t1, t2 Duration) Acceleration {
	return Acceleration{length: l, time1: t1, time2: t2}
}

// MetresPerSecondSquared returns an acceleration of v metres per second
// per second.
func MetresPerSecondSquared(v Scalar) Acceleration {
	return NewAcceleration(Metres(v), Seconds(one), Seconds(one))
}

// Length returns the length part of a.
func (a Acceleration) Length() Length {
	return a.length
}

// Time1 returns the first duration part of a.
func (a Acceleration) Time1() Duration {
	return a.time1
}

// Time2 returns the second duration part of a.
func (a Acceleration) Time2() Duration {
	return a.time2
}

// Speed returns the speed part of a, its length over its first duration.
func (a Acceleration) Speed() Speed {
	return NewSpeed(a.length, a.time1)
}

func (a Acceleration) denominator() Scalar {
	return a.time1.value.Mul(a.time2.value)
}

// TotalMetresPerSecondSquared returns a in metres per second squared.
//
// TotalMetresPerSecondSquared returns an error if either duration of a is zero.
func (a Acceleration) TotalMetresPerSecondSquared() (Scalar, error) {
	den := a.denominator()
	if den.IsZero() {
		return Scalar{}, errZeroTimeAcceleration
	}
	return a.length.value.Quo(den)
}

// Unit returns the unit of a, metres per second per second.
func (Acceleration) Unit() Unit { return accelerateUnit }

// String returns a in metres per second squared followed by the unit symbol,
// for example "9.81m/s/s".
func (a Acceleration) String() string {
	v, err := a.TotalMetresPerSecondSquared()
	if err != nil {
		return a.length.String() + "/" + a.time1.String() + "/" + a.time2.String()
	}
	return v.String() + accelerateUnit.Symbol
}

// Equal returns true if x is an Acceleration representing the same ratio as a.
// An acceleration with a zero duration has no ratio: it equals only an
// acceleration with the same parts.
func (a Acceleration) Equal(x Measure) bool {
	y, ok := x.(Acceleration)
	if !ok {
		return false
	}
	b, d := a.denominator(), y.denominator()
	if b.IsZero() || d.IsZero() {
		return b.IsZero() && d.IsZero() &&
			a.length.Equal(y.length) && a.time1.Equal(y.time1) && a.time2.Equal(y.time2)
	}
	return a.length.value.Mul(d).Equal(y.length.value.Mul(b))
}

// Hash returns a hash of a. Equal accelerations have equal hashes.
func (a Acceleration) Hash() uint64 {
	v, err := a.length.value.quo(a.denominator())
	if err != nil {
		return hashParts(a.length.value, a.time1.value, a.time2.value)
	}
	return v.Hash()
}

// Add returns a + x.
// For a = p/(b1·b2) and x = c/(d1·d2) the result is
// (p·d1·d2 + c·b1·b2) / ((b1·d1)·(b2·d2)).
func (a Acceleration) Add(x Acceleration) Acceleration {
	return a.combine(x, Scalar.Add)
}

// Sub returns a - x.
// For a = p/(b1·b2) and x = c/(d1·d2) the result is
// (p·d1·d2 - c·b1·b2) / ((b1·d1)·(b2·d2)).
func (a Acceleration) Sub(x Acceleration) Acceleration {
	return a.combine(x, Scalar.Sub)
}

func (a Acceleration) combine(x Acceleration, op func(Scalar, Scalar) Scalar) Acceleration {
	lhs := a.length.value.Mul(x.denominator())
	rhs := x.length.value.Mul(a.denominator())
	return Acceleration{
		length: Length{op(lhs, rhs)},
		time1:  Duration{a.time1.value.Mul(x.time1.value)},
		time2:  Duration{a.time2.value.Mul(x.time2.value)},
	}
}

// Mul returns a * x.
// For a = p/(b1·b2) and x = c/(d1·d2) the result is (p·c) / ((b1·d1)·(b2·d2)).
func (a Acceleration) Mul(x Acceleration) Acceleration {
	return Acceleration{
		length: Length{a.length.value.Mul(x.length.value)},
		time1:  Duration{a.time1.value.Mul(x.time1.value)},
		time2:  Duration{a.time2.value.Mul(x.time2.value)},
	}
}

// Quo returns a / x.
// For a = p/(b1·b2) and x = c/(d1·d2) the result is (p·d1·d2) / ((b1·c)·b2).
// Only the ratio of the result is meaningful.
//
// Quo returns an error if x is zero.
func (a Acceleration) Quo(x Acceleration) (Acceleration, error) {
	c := x.length.value
	if c.IsZero() {
		return Acceleration{}, fmt.Errorf("computing [%v / %v]: %w", a, x, errDivisionByZero)
	}
	return Acceleration{
		length: Length{a.length.value.Mul(x.denominator())},
		time1:  Duration{a.time1.value.Mul(c)},
		time2:  a.time2,
	}, nil
}

// Neg returns -a.
func (a Acceleration) Neg() Acceleration {
	return Acceleration{length: a.length.Neg(), time1: a.time1, time2: a.time2}
}

// Sqrt returns the square root of a, computed part by part.
//
// Sqrt returns an error if any part of a is negative.
func (a Acceleration) Sqrt() (Acceleration, error) {
	var parts [3]Scalar
	for i, v := range [...]Scalar{a.length.value, a.time1.value, a.time2.value} {
		r, err := v.sqrt()
		if err != nil {
			return Acceleration{}, fmt.Errorf("computing sqrt(%v): %w", a, err)
		}
		parts[i] = r
	}
	return Acceleration{
		length: Length{parts[0]},
		time1:  Duration{parts[1]},
		time2:  Duration{parts[2]},
	}, nil
}

// Scale returns a * k.
func (a Acceleration) Scale(k Scalar) Acceleration {
	return Acceleration{length: a.length.Scale(k), time1: a.time1, time2: a.time2}
}
