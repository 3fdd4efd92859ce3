package measurement

// Current is an electric current, stored in amperes.
// The zero value is a current of 0 amperes.
type Current struct {
	value Scalar
}

// Voltage is an electric potential difference, stored in volts.
// The zero value is 0 volts.
type Voltage struct {
	value Scalar
}

// Resistance is an electrical resistance, stored in ohms.
// The zero value is 0 ohms.
type Resistance struct {
	value Scalar
}
