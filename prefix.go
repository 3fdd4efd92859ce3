package measurement

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Prefix is one of the twenty SI metric prefixes, or [None].
// The numeric value of a prefix is its power of ten.
type Prefix int8

const (
	None  Prefix = 0
	Deca  Prefix = 1
	Hecto Prefix = 2
	Kilo  Prefix = 3
	Mega  Prefix = 6
	Giga  Prefix = 9
	Tera  Prefix = 12
	Peta  Prefix = 15
	Exa   Prefix = 18
	Zetta Prefix = 21
	Yotta Prefix = 24

	Deci  Prefix = -1
	Centi Prefix = -2
	Milli Prefix = -3
	Micro Prefix = -6
	Nano  Prefix = -9
	Pico  Prefix = -12
	Femto Prefix = -15
	Atto  Prefix = -18
	Zepto Prefix = -21
	Yocto Prefix = -24
)

type prefixInfo struct {
	prefix Prefix
	name   string
	symbol string
}

// prefixTable lists every prefix in ascending order of exponent.
var prefixTable = [...]prefixInfo{
	{Yocto, "Yocto", "y"}, // 10^-24
	{Zepto, "Zepto", "z"}, // 10^-21
	{Atto, "Atto", "a"},   // 10^-18
	{Femto, "Femto", "f"}, // 10^-15
	{Pico, "Pico", "p"},   // 10^-12
	{Nano, "Nano", "n"},   // 10^-9
	{Micro, "Micro", "µ"}, // 10^-6
	{Milli, "Milli", "m"}, // 10^-3
	{Centi, "Centi", "c"}, // 10^-2
	{Deci, "Deci", "d"},   // 10^-1
	{None, "", ""},        // 10^0
	{Deca, "Deca", "da"},  // 10^1
	{Hecto, "Hecto", "h"}, // 10^2
	{Kilo, "Kilo", "k"},   // 10^3
	{Mega, "Mega", "M"},   // 10^6
	{Giga, "Giga", "G"},   // 10^9
	{Tera, "Tera", "T"},   // 10^12
	{Peta, "Peta", "P"},   // 10^15
	{Exa, "Exa", "E"},     // 10^18
	{Zetta, "Zetta", "Z"}, // 10^21
	{Yotta, "Yotta", "Y"}, // 10^24
}

// prefixAliases are alternative single-character symbols accepted by [ParsePrefix].
var prefixAliases = map[rune]Prefix{
	'u': Micro,
	'μ': Micro, // U+03BC GREEK SMALL LETTER MU
}

// Prefixes returns all prefixes, including [None], in ascending order of exponent.
func Prefixes() []Prefix {
	ps := make([]Prefix, len(prefixTable))
	for i, info := range prefixTable {
		ps[i] = info.prefix
	}
	return ps
}

func (p Prefix) info() (prefixInfo, bool) {
	for _, info := range prefixTable {
		if info.prefix == p {
			return info, true
		}
	}
	return prefixInfo{}, false
}

// Exponent returns the power of ten represented by p.
func (p Prefix) Exponent() int {
	return int(p)
}

// Symbol returns the SI symbol of p, such as "k" for [Kilo] or "da" for [Deca].
// The symbol of [None] and of unknown prefixes is the empty string.
func (p Prefix) Symbol() string {
	info, _ := p.info()
	return info.symbol
}

// String returns the name of p, such as "Kilo".
func (p Prefix) String() string {
	info, ok := p.info()
	switch {
	case !ok:
		return "Prefix(" + strconv.Itoa(int(p)) + ")"
	case p == None:
		return "None"
	}
	return info.name
}

// Scale converts v expressed in units with prefix p to the unprefixed unit,
// that is it returns v * 10^p.
func (p Prefix) Scale(v Scalar) Scalar {
	return v.Shift(p.Exponent())
}

// Unscale converts v expressed in the unprefixed unit to units with prefix p,
// that is it returns v * 10^-p.
func (p Prefix) Unscale(v Scalar) Scalar {
	return v.Shift(-p.Exponent())
}

// PreferredPrefix returns the prefix whose exponent is nearest to the
// exponent of v in scientific notation.
// For example, the preferred prefix of 4500 is [Kilo] and of 0.00002 is [Micro].
func PreferredPrefix(v Scalar) Prefix {
	exp := v.Exponent()
	best := prefixTable[0]
	dist := absInt(best.prefix.Exponent() - exp)
	for _, info := range prefixTable[1:] {
		if d := absInt(info.prefix.Exponent() - exp); d < dist {
			best, dist = info, d
		}
	}
	return best.prefix
}

// ParsePrefix returns the metric prefix at the start of symbol.
// The two-character "da" ([Deca]) is tried before any single-character prefix,
// so "dam" parses as [Deca] rather than [Deci].
// "u" and "μ" are accepted for [Micro].
// ParsePrefix returns [None] if symbol does not start with a known prefix.
func ParsePrefix(symbol string) Prefix {
	if strings.HasPrefix(symbol, "da") {
		return Deca
	}
	r, _ := utf8.DecodeRuneInString(symbol)
	if r == utf8.RuneError {
		return None
	}
	if p, ok := prefixAliases[r]; ok {
		return p
	}
	for _, info := range prefixTable {
		if info.symbol == "" || len(info.symbol) != utf8.RuneLen(r) {
			continue
		}
		if strings.HasPrefix(symbol, info.symbol) {
			return info.prefix
		}
	}
	return None
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
