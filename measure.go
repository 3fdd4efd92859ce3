package measurement

import "fmt"

// Measure is implemented by every quantity in this package.
type Measure interface {
	fmt.Stringer

	// Unit returns the unit the quantity is stored in.
	Unit() Unit

	// Equal returns true if m has the same concrete type and represents
	// the same amount.
	// It returns false for nil and for quantities of any other type,
	// even when their numeric values match.
	Equal(m Measure) bool
}

// Arithmetic is the set of operations shared by all quantities.
// Every operation returns a new value; receivers are never modified.
type Arithmetic[T any] interface {
	Measure
	Add(x T) T
	Sub(x T) T
	Mul(x T) T
	Quo(x T) (T, error)
	Neg() T
	Sqrt() (T, error)
	Scale(k Scalar) T
}

// scalarMeasure is a quantity stored as a single Scalar in its base unit.
// with returns a new quantity holding v, applying the canonical form of T.
type scalarMeasure[T any] interface {
	Measure
	base() Scalar
	with(v Scalar) T
}

func add[T scalarMeasure[T]](x, y T) T {
	return x.with(x.base().Add(y.base()))
}

func sub[T scalarMeasure[T]](x, y T) T {
	return x.with(x.base().Sub(y.base()))
}

func mul[T scalarMeasure[T]](x, y T) T {
	return x.with(x.base().Mul(y.base()))
}

func quo[T scalarMeasure[T]](x, y T) (T, error) {
	v, err := x.base().quo(y.base())
	if err != nil {
		var zero T
		return zero, fmt.Errorf("computing [%v / %v]: %w", x, y, err)
	}
	return x.with(v), nil
}

func neg[T scalarMeasure[T]](x T) T {
	return x.with(x.base().Neg())
}

func sqrt[T scalarMeasure[T]](x T) (T, error) {
	v, err := x.base().sqrt()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("computing sqrt(%v): %w", x, err)
	}
	return x.with(v), nil
}

func scale[T scalarMeasure[T]](x T, k Scalar) T {
	return x.with(x.base().Mul(k))
}

// equal is the type-gated equality shared by scalar quantities.
func equal[T scalarMeasure[T]](x T, m Measure) bool {
	y, ok := m.(T)
	return ok && x.base().Equal(y.base())
}

func format[T scalarMeasure[T]](x T) string {
	return x.base().String() + x.Unit().Symbol
}
