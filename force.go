package measurement

// Force is a force, stored in newtons.
// The zero value is a force of 0 newtons.
type Force struct {
	value Scalar
}
