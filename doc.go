/*
Package measurement implements immutable, strongly typed physical quantities.
A length cannot be added to a mass, a temperature never drops below absolute
zero, and an angle always lies in [0°, 360°).

# Representation

Every quantity stores its amount as a [Scalar] in a single base unit:

	| Quantity      | Base unit | Symbol | Canonical form             |
	| ------------- | --------- | ------ | -------------------------- |
	| [Length]      | metre     | m      |                            |
	| [Mass]        | gram      | g      |                            |
	| [Duration]    | second    | s      |                            |
	| [Force]       | newton    | N      |                            |
	| [Energy]      | joule     | J      |                            |
	| [Current]     | ampere    | A      |                            |
	| [Voltage]     | volt      | V      |                            |
	| [Resistance]  | ohm       | Ω      |                            |
	| [Temperature] | kelvin    | K      | clamped to 0 K and above   |
	| [Angle]       | degree    | °      | wrapped into [0°, 360°)    |

Mass is stored in grams, not kilograms, so that every metric prefix applies
to it uniformly.

Derived quantities keep their parts instead of a single scalar:

  - [Speed] is a length over a duration.
  - [Acceleration] is a length over two durations.

The parts are divided only when a Total method or String is called.
Two speeds are equal when their ratios are equal, so 10 m in 2 s equals 5 m
in 1 s.

[Scalar] is an arbitrary-precision decimal backed by
github.com/shopspring/decimal.
Addition, subtraction and multiplication are exact.
Division and square root are rounded to [Precision] significant digits.
Scalars convert to and from the fixed-precision decimals of
github.com/govalues/decimal with [ScalarFromDecimal] and [Scalar.Decimal].

# Prefixes

The twenty SI prefixes from [Yocto] (10^-24) to [Yotta] (10^24) are
represented by [Prefix], with [None] for the unprefixed unit.
Every metric quantity has a constructor and a Total accessor per prefix,
such as [Kilometres] and [Length.TotalKilometres], as well as the generic
pair [NewLength] and [Length.In].
[PreferredPrefix] picks the prefix closest in magnitude to a value and
[ParsePrefix] reads the prefix at the start of a unit symbol.

# Conversions

Besides metric prefixes, the package converts between the following units:

  - [Duration]:
    [Minutes], [Hours], [Days] and [time.Duration] via [DurationOf] and [Duration.Std].
  - [Energy]:
    [WattHours].
  - [Temperature]:
    [Kelvin], [Celsius], [Fahrenheit].
  - [Angle]:
    [Degrees], [DegreesMinutesSeconds], [Radians], [HourAngles],
    [HoursMinutesSeconds], [Gradians], [Revolutions].
  - [Speed]:
    [MetresPerSecond], [KilometresPerHour].
  - [Acceleration]:
    [MetresPerSecondSquared].

Radians are computed with π to 50 significant digits, so conversions from
and to radians are rounded.

# Operations

Every quantity implements [Arithmetic] for its own type:
Add, Sub, Mul, Quo, Neg, Sqrt and Scale.
Operations never modify their receiver and always return a value in
canonical form.
For example, Degrees(350).Add(Degrees(20)) is 10° and
Kelvin(5).Sub(Kelvin(10)) is 0 K.

Mul, Quo and Sqrt keep the type of their operands.
The product of two lengths is a [Length] holding the numeric product of the
two amounts; it is not an area.

# Errors

Constructors and arithmetic methods are panic-free.
Errors are returned in the following cases:

  - Division by Zero.
    Quo returns an error when the divisor is 0, and the Total methods of
    [Speed] and [Acceleration] return an error when a duration is 0.

  - Invalid Operation.
    Sqrt returns an error for negative amounts.
    [NewScalarFromFloat64] returns an error for NaN and infinities.

  - Overflow.
    [Scalar.Decimal] returns an error when a value does not fit a
    fixed-precision decimal.

Functions prefixed with Must, such as [MustParseScalar], panic instead of
returning an error.
They are intended for initialization of package-level variables.
*/
package measurement
