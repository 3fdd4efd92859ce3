package measurement

// Mass is a mass, stored in grams.
// Kilograms and every other prefixed unit are derived from grams.
// The zero value is a mass of 0 grams.
type Mass struct {
	value Scalar
}
