package measurement

// Energy is an amount of energy, stored in joules.
// The zero value is 0 joules.
type Energy struct {
	value Scalar
}

// joulesPerWattHour is the number of joules in one watt-hour.
var joulesPerWattHour = ScalarFromInt64(3600)

// WattHours returns an energy of v watt-hours.
// Use [Prefix.Scale] for kilowatt-hours and other multiples.
func WattHours(v Scalar) Energy {
	return Joules(v.Mul(joulesPerWattHour))
}

// TotalWattHours returns e in watt-hours.
func (e Energy) TotalWattHours() Scalar {
	return e.value.MustQuo(joulesPerWattHour)
}
