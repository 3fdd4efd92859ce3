package measurement_test

import (
	"fmt"
	"time"

	govalues "github.com/govalues/decimal"
	"github.com/qkmaxware/measurement"
)

// This example uses Ohm's law to find the current through a resistor.
func Example_ohmsLaw() {
	v := measurement.Volts(measurement.ScalarFromInt64(12))
	r := measurement.Kiloohms(measurement.NewScalar(4, -3)) // 4 Ω
	i, err := v.TotalVolts().Quo(r.TotalOhms())
	if err != nil {
		panic(err)
	}
	fmt.Println(measurement.Amperes(i))
	fmt.Println(measurement.Amperes(i).TotalMilliamperes())
	// Output:
	// 3A
	// 3000
}

// This example sums the legs of a trip travelled at different speeds.
func Example_trip() {
	legs := []measurement.Speed{
		measurement.NewSpeed(measurement.Kilometres(measurement.ScalarFromInt64(120)), measurement.Hours(measurement.ScalarFromInt64(2))),
		measurement.NewSpeed(measurement.Kilometres(measurement.ScalarFromInt64(30)), measurement.Hours(measurement.ScalarFromInt64(1))),
	}
	sum := legs[0]
	for _, s := range legs[1:] {
		sum = sum.Add(s)
	}
	fmt.Println(sum.TotalKilometresPerHour())
	// Output: 90 <nil>
}

func ExampleNewScalar() {
	fmt.Println(measurement.NewScalar(-123, -2))
	fmt.Println(measurement.NewScalar(5, 3))
	// Output:
	// -1.23
	// 5000
}

func ExampleParseScalar() {
	fmt.Println(measurement.ParseScalar("2.5e-24"))
	// Output: 0.0000000000000000000000025 <nil>
}

func ExampleScalarFromDecimal() {
	d := govalues.MustParse("-12.340")
	fmt.Println(measurement.ScalarFromDecimal(d))
	// Output: -12.34
}

func ExampleScalar_Decimal() {
	s := measurement.MustParseScalar("1.5")
	fmt.Println(s.Decimal())
	// Output: 1.5 <nil>
}

func ExampleScalar_Quo() {
	one := measurement.ScalarFromInt64(1)
	fmt.Println(one.Quo(measurement.ScalarFromInt64(3)))
	fmt.Println(one.Quo(measurement.ScalarFromInt64(0)))
	// Output:
	// 0.3333333333333333333333333333333333 <nil>
	// 0 computing [1 / 0]: division by zero
}

func ExampleScalar_Sqrt() {
	fmt.Println(measurement.ScalarFromInt64(16).Sqrt())
	fmt.Println(measurement.ScalarFromInt64(-1).Sqrt())
	// Output:
	// 4 <nil>
	// 0 computing sqrt(-1): square root of negative number
}

func ExamplePreferredPrefix() {
	fmt.Println(measurement.PreferredPrefix(measurement.ScalarFromInt64(4500)))
	fmt.Println(measurement.PreferredPrefix(measurement.NewScalar(2, -5)))
	// Output:
	// Kilo
	// Micro
}

func ExampleParsePrefix() {
	fmt.Println(measurement.ParsePrefix("dam"))
	fmt.Println(measurement.ParsePrefix("dm"))
	fmt.Println(measurement.ParsePrefix("km"))
	fmt.Println(measurement.ParsePrefix("x"))
	// Output:
	// Deca
	// Deci
	// Kilo
	// None
}

func ExamplePrefix_Symbol() {
	fmt.Println(measurement.Kilo.Symbol())
	fmt.Println(measurement.Deca.Symbol())
	fmt.Println(measurement.Micro.Symbol())
	// Output:
	// k
	// da
	// µ
}

func ExampleUnit_Per() {
	m := measurement.NewUnit("Metres", "m", "metre")
	s := measurement.NewUnit("Seconds", "s", "sec")
	u := m.Per(s)
	fmt.Println(u.Name)
	fmt.Println(u)
	fmt.Println(u.SecondarySymbols())
	// Output:
	// Metres Per Seconds
	// m/s
	// [metre/sec]
}

func ExampleKilometres() {
	l := measurement.Kilometres(measurement.ScalarFromInt64(2))
	fmt.Println(l)
	fmt.Println(l.TotalKilometres())
	fmt.Println(l.PreferredPrefix())
	// Output:
	// 2000m
	// 2
	// Kilo
}

func ExampleLength_Equal() {
	a := measurement.Metres(measurement.ScalarFromInt64(10))
	b := measurement.Kilometres(measurement.NewScalar(1, -2))
	c := measurement.Grams(measurement.ScalarFromInt64(10))
	fmt.Println(a.Equal(b))
	fmt.Println(a.Equal(c))
	// Output:
	// true
	// false
}

func ExampleLength_Quo() {
	a := measurement.Metres(measurement.ScalarFromInt64(10))
	fmt.Println(a.Quo(measurement.Metres(measurement.ScalarFromInt64(4))))
	fmt.Println(a.Quo(measurement.Length{}))
	// Output:
	// 2.5m <nil>
	// 0m computing [10m / 0m]: division by zero
}

func ExampleHours() {
	d := measurement.Hours(measurement.ScalarFromInt64(2))
	fmt.Println(d)
	fmt.Println(d.TotalMinutes())
	// Output:
	// 7200s
	// 120
}

func ExampleDurationOf() {
	d := measurement.DurationOf(90 * time.Second)
	fmt.Println(d)
	fmt.Println(d.Std())
	// Output:
	// 90s
	// 1m30s true
}

func ExampleWattHours() {
	fmt.Println(measurement.WattHours(measurement.ScalarFromInt64(1)))
	// Output: 3600J
}

func ExampleKelvin() {
	fmt.Println(measurement.Kelvin(measurement.ScalarFromInt64(300)))
	fmt.Println(measurement.Kelvin(measurement.ScalarFromInt64(-5)))
	// Output:
	// 300K
	// 0K
}

func ExampleCelsius() {
	t := measurement.Celsius(measurement.ScalarFromInt64(100))
	fmt.Println(t)
	fmt.Println(t.TotalFahrenheit())
	// Output:
	// 373.15K
	// 212
}

func ExampleTemperature_Sub() {
	a := measurement.Kelvin(measurement.ScalarFromInt64(5))
	b := measurement.Kelvin(measurement.ScalarFromInt64(10))
	fmt.Println(a.Sub(b))
	// Output: 0K
}

func ExampleDegrees() {
	fmt.Println(measurement.Degrees(measurement.ScalarFromInt64(-90)))
	fmt.Println(measurement.Degrees(measurement.ScalarFromInt64(400)))
	// Output:
	// 270°
	// 40°
}

func ExampleAngle_Add() {
	a := measurement.Degrees(measurement.ScalarFromInt64(350))
	b := measurement.Degrees(measurement.ScalarFromInt64(20))
	fmt.Println(a.Add(b))
	// Output: 10°
}

func ExampleAngle_TotalDegreesMinutesSeconds() {
	a := measurement.Degrees(measurement.MustParseScalar("10.46"))
	fmt.Println(a.TotalDegreesMinutesSeconds())
	// Output: 10 27 36
}

func ExampleAngle_TotalRadians() {
	a := measurement.Degrees(measurement.ScalarFromInt64(180))
	fmt.Println(a.TotalRadians())
	// Output: 3.141592653589793238462643383279503
}

func ExampleAngle_Sin() {
	a := measurement.Degrees(measurement.ScalarFromInt64(90))
	fmt.Println(a.Sin())
	// Output: 1
}

func ExampleNewSpeed() {
	s := measurement.NewSpeed(
		measurement.Metres(measurement.ScalarFromInt64(10)),
		measurement.Seconds(measurement.ScalarFromInt64(2)),
	)
	fmt.Println(s)
	fmt.Println(s.Equal(measurement.MetresPerSecond(measurement.ScalarFromInt64(5))))
	// Output:
	// 5m/s
	// true
}

func ExampleSpeed_Add() {
	a := measurement.NewSpeed(measurement.Metres(measurement.ScalarFromInt64(10)), measurement.Seconds(measurement.ScalarFromInt64(2)))
	b := measurement.NewSpeed(measurement.Metres(measurement.ScalarFromInt64(20)), measurement.Seconds(measurement.ScalarFromInt64(4)))
	fmt.Println(a.Add(b))
	// Output: 10m/s
}

func ExampleKilometresPerHour() {
	s := measurement.KilometresPerHour(measurement.ScalarFromInt64(36))
	fmt.Println(s.TotalMetresPerSecond())
	// Output: 10 <nil>
}

func ExampleMetresPerSecondSquared() {
	a := measurement.MetresPerSecondSquared(measurement.MustParseScalar("9.81"))
	fmt.Println(a)
	// Output: 9.81m/s/s
}
