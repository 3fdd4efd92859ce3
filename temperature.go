package measurement

// Temperature is a thermodynamic temperature, stored in kelvin.
// A temperature is never below absolute zero: every constructor and every
// arithmetic operation clamps negative results to 0 K.
// The zero value is absolute zero.
type Temperature struct {
	value Scalar
}

var (
	celsiusOffset  = NewScalar(27315, -2) // 273.15
	fahrenheitBase = ScalarFromInt64(32)
	fahrenheitStep = NewScalar(18, -1) // 1.8
)

// Kelvin returns a temperature of v kelvin.
// Values below 0 are clamped to 0.
func Kelvin(v Scalar) Temperature {
	return Temperature{}.with(v)
}

// TotalKelvin returns t in kelvin.
func (t Temperature) TotalKelvin() Scalar {
	return t.value
}

// Celsius returns a temperature of v degrees Celsius.
// Values below -273.15 °C are clamped to absolute zero.
func Celsius(v Scalar) Temperature {
	return Kelvin(v.Add(celsiusOffset))
}

// TotalCelsius returns t in degrees Celsius.
func (t Temperature) TotalCelsius() Scalar {
	return t.value.Sub(celsiusOffset)
}

// Fahrenheit returns a temperature of v degrees Fahrenheit.
// Values below -459.67 °F are clamped to absolute zero.
func Fahrenheit(v Scalar) Temperature {
	return Celsius(v.Sub(fahrenheitBase).MustQuo(fahrenheitStep))
}

// TotalFahrenheit returns t in degrees Fahrenheit.
func (t Temperature) TotalFahrenheit() Scalar {
	return t.TotalCelsius().Mul(fahrenheitStep).Add(fahrenheitBase)
}

func (t Temperature) base() Scalar { return t.value }

func (Temperature) with(v Scalar) Temperature {
	if v.IsNeg() {
		return Temperature{}
	}
	return Temperature{v}
}

// Unit returns the unit t is stored in.
func (Temperature) Unit() Unit { return kelvinUnit }

// String returns t in kelvin followed by the unit symbol, for example "300K".
func (t Temperature) String() string { return format(t) }

// Equal returns true if x is a Temperature equal to t.
func (t Temperature) Equal(x Measure) bool { return equal(t, x) }

// Hash returns a hash of t. Equal values have equal hashes.
func (t Temperature) Hash() uint64 { return t.value.Hash() }

// Add returns t + x.
func (t Temperature) Add(x Temperature) Temperature { return add(t, x) }

// Sub returns t - x, or absolute zero if x is hotter than t.
func (t Temperature) Sub(x Temperature) Temperature { return sub(t, x) }

// Mul returns t * x.
func (t Temperature) Mul(x Temperature) Temperature { return mul(t, x) }

// Quo returns t / x.
func (t Temperature) Quo(x Temperature) (Temperature, error) { return quo(t, x) }

// Neg returns absolute zero, because -t is never above it.
func (t Temperature) Neg() Temperature { return neg(t) }

// Sqrt returns the square root of t.
func (t Temperature) Sqrt() (Temperature, error) { return sqrt(t) }

// Scale returns t * k, or absolute zero if k is negative.
func (t Temperature) Scale(k Scalar) Temperature { return scale(t, k) }
