package measurement

// Length is a distance, stored in metres.
// The zero value is a length of 0 metres.
type Length struct {
	value Scalar
}

// Per returns the speed of covering l in time t.
// The ratio is kept unreduced; see [Speed].
func (l Length) Per(t Duration) Speed {
	return NewSpeed(l, t)
}
