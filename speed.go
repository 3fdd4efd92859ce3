package measurement

import "fmt"

// Speed is a length travelled per duration.
//
// A speed keeps its length and its duration separately and never divides one by
// the other until a Total method is called.
// Arithmetic combines speeds the way fractions a/b and c/d are combined, so no
// rounding accumulates between operations.
// The zero value has a zero duration; its Total methods return an error.
type Speed struct {
	length Length
	time   Duration
}

var (
	one              = ScalarFromInt64(1)
	kmPerHourFactor  = NewScalar(36, -1) // 1 m/s = 3.6 km/h
	errZeroTimeSpeed = fmt.Errorf("speed with zero duration: %w", errDivisionByZero)
)

// NewSpeed returns the speed of covering l in time t.
func NewSpeed(l Length, t Duration) Speed {
	return Speed{length: l, time: t}
}

// MetresPerSecond returns a speed of v metres per second.
func MetresPerSecond(v Scalar) Speed {
	return NewSpeed(Metres(v), Seconds(one))
}

// KilometresPerHour returns a speed of v kilometres per hour.
func KilometresPerHour(v Scalar) Speed {
	return NewSpeed(Kilometres(v), Hours(one))
}

// Length returns the length part of s.
func (s Speed) Length() Length {
	return s.length
}

// Time returns the duration part of s.
func (s Speed) Time() Duration {
	return s.time
}

// Per returns the acceleration of reaching s in time t.
func (s Speed) Per(t Duration) Acceleration {
	return NewAcceleration(s.length, s.time, t)
}

// TotalMetresPerSecond returns s in metres per second.
//
// TotalMetresPerSecond returns an error if the duration of s is zero.
func (s Speed) TotalMetresPerSecond() (Scalar, error) {
	if s.time.value.IsZero() {
		return Scalar{}, errZeroTimeSpeed
	}
	return s.length.value.Quo(s.time.value)
}

// TotalKilometresPerHour returns s in kilometres per hour.
//
// TotalKilometresPerHour returns an error if the duration of s is zero.
func (s Speed) TotalKilometresPerHour() (Scalar, error) {
	if s.time.value.IsZero() {
		return Scalar{}, errZeroTimeSpeed
	}
	return s.length.value.Mul(kmPerHourFactor).Quo(s.time.value)
}

// Unit returns the unit of s, metres per second.
func (Speed) Unit() Unit { return speedUnit }

// String returns s in metres per second followed by the unit symbol, for
// example "5m/s".
// A speed with zero duration is printed as its parts, for example "5m/0s".
func (s Speed) String() string {
	v, err := s.TotalMetresPerSecond()
	if err != nil {
		return s.length.String() + "/" + s.time.String()
	}
	return v.String() + speedUnit.Symbol
}

// Equal returns true if x is a Speed representing the same ratio as s.
// Speeds are compared by cross multiplication, so 10 m in 2 s equals
// 5 m in 1 s.
// A speed with zero duration has no ratio: it equals only a speed with the
// same length and zero duration.
func (s Speed) Equal(x Measure) bool {
	y, ok := x.(Speed)
	if !ok {
		return false
	}
	a, b := s.length.value, s.time.value
	c, d := y.length.value, y.time.value
	if b.IsZero() || d.IsZero() {
		return b.IsZero() && d.IsZero() && a.Equal(c)
	}
	return a.Mul(d).Equal(c.Mul(b))
}

// Hash returns a hash of s. Equal speeds have equal hashes.
func (s Speed) Hash() uint64 {
	v, err := s.length.value.quo(s.time.value)
	if err != nil {
		return hashParts(s.length.value, s.time.value)
	}
	return v.Hash()
}

// Add returns s + x.
// For s = a/b and x = c/d the result is (a·d + c·b) / (b·d).
func (s Speed) Add(x Speed) Speed {
	a, b := s.length.value, s.time.value
	c, d := x.length.value, x.time.value
	return Speed{
		length: Length{a.Mul(d).Add(c.Mul(b))},
		time:   Duration{b.Mul(d)},
	}
}

// Sub returns s - x.
// For s = a/b and x = c/d the result is (a·d - c·b) / (b·d).
func (s Speed) Sub(x Speed) Speed {
	a, b := s.length.value, s.time.value
	c, d := x.length.value, x.time.value
	return Speed{
		length: Length{a.Mul(d).Sub(c.Mul(b))},
		time:   Duration{b.Mul(d)},
	}
}

// Mul returns s * x.
// For s = a/b and x = c/d the result is (a·c) / (b·d).
func (s Speed) Mul(x Speed) Speed {
	a, b := s.length.value, s.time.value
	c, d := x.length.value, x.time.value
	return Speed{
		length: Length{a.Mul(c)},
		time:   Duration{b.Mul(d)},
	}
}

// Quo returns s / x.
// For s = a/b and x = c/d the result is (a·d) / (b·c).
// Only the ratio of the result is meaningful; its parts are no longer a
// length and a duration.
//
// Quo returns an error if x is zero.
func (s Speed) Quo(x Speed) (Speed, error) {
	a, b := s.length.value, s.time.value
	c, d := x.length.value, x.time.value
	if c.IsZero() {
		return Speed{}, fmt.Errorf("computing [%v / %v]: %w", s, x, errDivisionByZero)
	}
	return Speed{
		length: Length{a.Mul(d)},
		time:   Duration{b.Mul(c)},
	}, nil
}

// Neg returns -s.
func (s Speed) Neg() Speed {
	return Speed{length: s.length.Neg(), time: s.time}
}

// Sqrt returns the square root of s, computed as √a / √b.
//
// Sqrt returns an error if either part of s is negative.
func (s Speed) Sqrt() (Speed, error) {
	a, err := s.length.value.sqrt()
	if err != nil {
		return Speed{}, fmt.Errorf("computing sqrt(%v): %w", s, err)
	}
	b, err := s.time.value.sqrt()
	if err != nil {
		return Speed{}, fmt.Errorf("computing sqrt(%v): %w", s, err)
	}
	return Speed{length: Length{a}, time: Duration{b}}, nil
}

// Scale returns s * k.
func (s Speed) Scale(k Scalar) Speed {
	return Speed{length: s.length.Scale(k), time: s.time}
}
