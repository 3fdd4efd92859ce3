package measurement

import (
	"fmt"
	"math"
)

// Angle is a plane angle, stored in decimal degrees.
// An angle is always in the range [0, 360): every constructor and every
// arithmetic operation wraps its result with a floored modulo, so -90° becomes
// 270° and 400° becomes 40°.
// The zero value is an angle of 0 degrees.
type Angle struct {
	value Scalar
}

var (
	fullTurn         = ScalarFromInt64(360)
	halfTurn         = ScalarFromInt64(180)
	degreesPerHour   = ScalarFromInt64(15)
	degreesPerGon    = NewScalar(9, -1) // 0.9
	sixty            = ScalarFromInt64(60)
	thirtySixHundred = ScalarFromInt64(3600)
	pi               = MustParseScalar("3.14159265358979323846264338327950288419716939937510")
)

// wrap returns v - 360 * floor(v / 360).
// The remainder is exact for any v, however many digits it has.
func wrap(v Scalar) Scalar {
	r := Scalar{v.d.Mod(fullTurn.d)}
	if r.IsNeg() {
		r = r.Add(fullTurn)
	}
	return r
}

// Degrees returns an angle of v degrees.
func Degrees(v Scalar) Angle {
	return Angle{}.with(v)
}

// TotalDegrees returns a in decimal degrees, in the range [0, 360).
func (a Angle) TotalDegrees() Scalar {
	return a.value
}

// DegreesMinutesSeconds returns an angle of d degrees, m arcminutes and
// s arcseconds.
func DegreesMinutesSeconds(d, m int, s Scalar) Angle {
	return Degrees(fromSexagesimal(d, m, s))
}

// TotalDegreesMinutesSeconds splits a into whole degrees, whole arcminutes
// and arcseconds.
// For example, 10.46° is 10° 27' 36".
func (a Angle) TotalDegreesMinutesSeconds() (d, m int, s Scalar) {
	return toSexagesimal(a.TotalDegrees())
}

// Radians returns an angle of v radians.
func Radians(v Scalar) Angle {
	return Degrees(v.Mul(halfTurn).MustQuo(pi))
}

// TotalRadians returns a in radians, in the range [0, 2π).
func (a Angle) TotalRadians() Scalar {
	return a.value.Mul(pi).MustQuo(halfTurn)
}

// HourAngles returns an angle of v hours, where one hour is 15 degrees.
func HourAngles(v Scalar) Angle {
	return Degrees(v.Mul(degreesPerHour))
}

// TotalHourAngles returns a in hours, where one hour is 15 degrees.
func (a Angle) TotalHourAngles() Scalar {
	return a.value.MustQuo(degreesPerHour)
}

// HoursMinutesSeconds returns an hour angle of h hours, m minutes and
// s seconds.
func HoursMinutesSeconds(h, m int, s Scalar) Angle {
	return HourAngles(fromSexagesimal(h, m, s))
}

// TotalHoursMinutesSeconds splits a into whole hours, whole minutes and
// seconds of hour angle.
func (a Angle) TotalHoursMinutesSeconds() (h, m int, s Scalar) {
	return toSexagesimal(a.TotalHourAngles())
}

// Gradians returns an angle of v gradians, where a right angle is 100 gradians.
func Gradians(v Scalar) Angle {
	return Degrees(v.Mul(degreesPerGon))
}

// TotalGradians returns a in gradians.
func (a Angle) TotalGradians() Scalar {
	return a.value.MustQuo(degreesPerGon)
}

// Revolutions returns an angle of v full turns.
// Whole turns are discarded.
func Revolutions(v Scalar) Angle {
	return Degrees(v.Mul(fullTurn))
}

// TotalRevolutions returns a as a fraction of a full turn, in the range [0, 1).
func (a Angle) TotalRevolutions() Scalar {
	return a.value.MustQuo(fullTurn)
}

func fromSexagesimal(whole, minutes int, seconds Scalar) Scalar {
	v := ScalarFromInt64(int64(whole))
	v = v.Add(ScalarFromInt64(int64(minutes)).MustQuo(sixty))
	return v.Add(seconds.MustQuo(thirtySixHundred))
}

// toSexagesimal splits a non-negative v into whole units, whole sixtieths
// and the remaining three-thousand-six-hundredths.
func toSexagesimal(v Scalar) (whole, minutes int, seconds Scalar) {
	w := v.Floor()
	m := v.Sub(w).Mul(sixty)
	wm := m.Floor()
	seconds = m.Sub(wm).Mul(sixty)
	wi, _ := w.Int64()
	mi, _ := wm.Int64()
	return int(wi), int(mi), seconds
}

func (a Angle) base() Scalar { return a.value }

func (Angle) with(v Scalar) Angle { return Angle{wrap(v)} }

// Unit returns the unit a is stored in.
func (Angle) Unit() Unit { return degreesUnit }

// String returns a in degrees followed by the degree sign, for example "270°".
func (a Angle) String() string { return format(a) }

// Equal returns true if x is an Angle equal to a.
func (a Angle) Equal(x Measure) bool { return equal(a, x) }

// Hash returns a hash of a. Equal values have equal hashes.
func (a Angle) Hash() uint64 { return a.value.Hash() }

// Add returns a + x, wrapped into [0, 360).
func (a Angle) Add(x Angle) Angle { return add(a, x) }

// Sub returns a - x, wrapped into [0, 360).
func (a Angle) Sub(x Angle) Angle { return sub(a, x) }

// Mul returns the product of a and x in degrees, wrapped into [0, 360).
func (a Angle) Mul(x Angle) Angle { return mul(a, x) }

// Quo returns the quotient of a and x in degrees, wrapped into [0, 360).
func (a Angle) Quo(x Angle) (Angle, error) { return quo(a, x) }

// Neg returns -a, wrapped into [0, 360).
func (a Angle) Neg() Angle { return neg(a) }

// Sqrt returns the square root of a in degrees.
func (a Angle) Sqrt() (Angle, error) { return sqrt(a) }

// Scale returns a * k, wrapped into [0, 360).
func (a Angle) Scale(k Scalar) Angle { return scale(a, k) }

// Trigonometry is computed in float64.
// Precision beyond float64 is lost in both directions.

func (a Angle) radians() float64 {
	r, _ := a.TotalRadians().Float64()
	return r
}

// Sin returns the sine of a.
func (a Angle) Sin() float64 {
	return math.Sin(a.radians())
}

// Cos returns the cosine of a.
func (a Angle) Cos() float64 {
	return math.Cos(a.radians())
}

// Tan returns the tangent of a.
func (a Angle) Tan() float64 {
	return math.Tan(a.radians())
}

// Asin returns the angle whose sine is x.
//
// Asin returns an error if x is outside [-1, 1].
func Asin(x float64) (Angle, error) {
	a, err := radiansFromFloat(math.Asin(x))
	if err != nil {
		return Angle{}, fmt.Errorf("computing Asin(%v): %w", x, err)
	}
	return a, nil
}

// Acos returns the angle whose cosine is x.
//
// Acos returns an error if x is outside [-1, 1].
func Acos(x float64) (Angle, error) {
	a, err := radiansFromFloat(math.Acos(x))
	if err != nil {
		return Angle{}, fmt.Errorf("computing Acos(%v): %w", x, err)
	}
	return a, nil
}

// Atan returns the angle whose tangent is x.
//
// Atan returns an error if x is NaN.
func Atan(x float64) (Angle, error) {
	a, err := radiansFromFloat(math.Atan(x))
	if err != nil {
		return Angle{}, fmt.Errorf("computing Atan(%v): %w", x, err)
	}
	return a, nil
}

// Atan2 returns the angle of the point (x, y) measured counterclockwise from
// the positive x axis.
//
// Atan2 returns an error if x or y is NaN.
func Atan2(y, x float64) (Angle, error) {
	a, err := radiansFromFloat(math.Atan2(y, x))
	if err != nil {
		return Angle{}, fmt.Errorf("computing Atan2(%v, %v): %w", y, x, err)
	}
	return a, nil
}

func radiansFromFloat(r float64) (Angle, error) {
	v, err := NewScalarFromFloat64(r)
	if err != nil {
		return Angle{}, err
	}
	return Radians(v), nil
}
