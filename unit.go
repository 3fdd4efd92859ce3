package measurement

// Unit describes a unit of measure for display.
// Units carry no numeric meaning; conversions are done by the quantity types.
// The zero value is a unit with no name and no symbol.
type Unit struct {
	Name      string // long name, such as "Metres"
	Symbol    string // primary symbol, such as "m"
	secondary []string
}

// NewUnit returns a unit with the given name, primary symbol and alternative
// symbols.
func NewUnit(name, symbol string, secondary ...string) Unit {
	return Unit{
		Name:      name,
		Symbol:    symbol,
		secondary: append([]string(nil), secondary...),
	}
}

var (
	metresUnit     = NewUnit("Metres", "m")
	gramsUnit      = NewUnit("Grams", "g")
	secondsUnit    = NewUnit("Seconds", "s", "sec")
	newtonsUnit    = NewUnit("Newtons", "N")
	joulesUnit     = NewUnit("Joules", "J")
	amperesUnit    = NewUnit("Amperes", "A", "amp")
	voltsUnit      = NewUnit("Volts", "V")
	ohmsUnit       = NewUnit("Ohms", "Ω", "ohm")
	kelvinUnit     = NewUnit("Kelvin", "K")
	degreesUnit    = NewUnit("Degrees", "°", "deg")
	speedUnit      = metresUnit.Per(secondsUnit)
	accelerateUnit = speedUnit.Per(secondsUnit)
)

// SecondarySymbols returns the alternative symbols of u.
// The returned slice is a copy.
func (u Unit) SecondarySymbols() []string {
	return append([]string(nil), u.secondary...)
}

// Per returns the unit u divided by v.
// Its name is "<u> Per <v>" and its symbol is "<u>/<v>".
// Its alternative symbols are "a/b" for every alternative symbol a of u and
// every alternative symbol b of v, in that order.
func (u Unit) Per(v Unit) Unit {
	var secondary []string
	if len(u.secondary) > 0 && len(v.secondary) > 0 {
		secondary = make([]string, 0, len(u.secondary)*len(v.secondary))
	}
	for _, a := range u.secondary {
		for _, b := range v.secondary {
			secondary = append(secondary, a+"/"+b)
		}
	}
	return Unit{
		Name:      u.Name + " Per " + v.Name,
		Symbol:    u.Symbol + "/" + v.Symbol,
		secondary: secondary,
	}
}

// Equal returns true if u and v have the same name and primary symbol.
func (u Unit) Equal(v Unit) bool {
	return u.Name == v.Name && u.Symbol == v.Symbol
}

// String returns the primary symbol of u.
func (u Unit) String() string {
	return u.Symbol
}
