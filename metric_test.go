package measurement

import (
	"errors"
	"testing"
	"time"
)

func TestLength_In(t *testing.T) {
	v := MustParseScalar("1.25")
	for _, p := range Prefixes() {
		l := NewLength(v, p)
		if got := l.In(p); !got.Equal(v) {
			t.Errorf("NewLength(%v, %v).In(%v) = %v, want %v", v, p, p, got, v)
		}
		if got, want := l.TotalMetres(), p.Scale(v); !got.Equal(want) {
			t.Errorf("NewLength(%v, %v).TotalMetres() = %v, want %v", v, p, got, want)
		}
	}
}

func TestQuantities_In(t *testing.T) {
	tests := []struct {
		name string
		in   func(v Scalar, p Prefix) (Scalar, Scalar)
	}{
		{"Mass", func(v Scalar, p Prefix) (Scalar, Scalar) {
			m := NewMass(v, p)
			return m.In(p), m.TotalGrams()
		}},
		{"Duration", func(v Scalar, p Prefix) (Scalar, Scalar) {
			d := NewDuration(v, p)
			return d.In(p), d.TotalSeconds()
		}},
		{"Force", func(v Scalar, p Prefix) (Scalar, Scalar) {
			f := NewForce(v, p)
			return f.In(p), f.TotalNewtons()
		}},
		{"Energy", func(v Scalar, p Prefix) (Scalar, Scalar) {
			e := NewEnergy(v, p)
			return e.In(p), e.TotalJoules()
		}},
		{"Current", func(v Scalar, p Prefix) (Scalar, Scalar) {
			i := NewCurrent(v, p)
			return i.In(p), i.TotalAmperes()
		}},
		{"Voltage", func(v Scalar, p Prefix) (Scalar, Scalar) {
			u := NewVoltage(v, p)
			return u.In(p), u.TotalVolts()
		}},
		{"Resistance", func(v Scalar, p Prefix) (Scalar, Scalar) {
			r := NewResistance(v, p)
			return r.In(p), r.TotalOhms()
		}},
	}
	v := MustParseScalar("-7.5")
	for _, tt := range tests {
		for _, p := range Prefixes() {
			got, base := tt.in(v, p)
			if !got.Equal(v) {
				t.Errorf("New%v(%v, %v).In(%v) = %v, want %v", tt.name, v, p, p, got, v)
			}
			if want := p.Scale(v); !base.Equal(want) {
				t.Errorf("New%v(%v, %v) in base unit = %v, want %v", tt.name, v, p, base, want)
			}
		}
	}
}

func TestLength_Constructors(t *testing.T) {
	one := ScalarFromInt64(1)
	tests := []struct {
		got  Length
		want string
	}{
		{Metres(one), "1"},
		{Kilometres(one), "1000"},
		{Decametres(one), "10"},
		{Decimetres(one), "0.1"},
		{Centimetres(one), "0.01"},
		{Millimetres(one), "0.001"},
		{Micrometres(one), "0.000001"},
		{Yottametres(one), "1000000000000000000000000"},
		{Yoctometres(one), "0.000000000000000000000001"},
	}
	for _, tt := range tests {
		if got := tt.got.TotalMetres(); got.String() != tt.want {
			t.Errorf("TotalMetres() = %q, want %q", got, tt.want)
		}
	}

	l := Metres(ScalarFromInt64(1500))
	if got := l.TotalKilometres(); got.String() != "1.5" {
		t.Errorf("%v.TotalKilometres() = %q, want %q", l, got, "1.5")
	}
	if got := l.TotalCentimetres(); got.String() != "150000" {
		t.Errorf("%v.TotalCentimetres() = %q, want %q", l, got, "150000")
	}
}

func TestLength_Equal(t *testing.T) {
	tests := []struct {
		l    Length
		m    Measure
		want bool
	}{
		{Metres(ScalarFromInt64(10)), Kilometres(NewScalar(1, -2)), true},
		{Metres(ScalarFromInt64(10)), Metres(MustParseScalar("10.000")), true},
		{Metres(ScalarFromInt64(10)), Metres(ScalarFromInt64(11)), false},
		{Metres(ScalarFromInt64(10)), Grams(ScalarFromInt64(10)), false},
		{Metres(ScalarFromInt64(10)), Seconds(ScalarFromInt64(10)), false},
		{Metres(ScalarFromInt64(10)), nil, false},
	}
	for _, tt := range tests {
		if got := tt.l.Equal(tt.m); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.l, tt.m, got, tt.want)
		}
	}
}

func TestLength_Hash(t *testing.T) {
	a := Metres(ScalarFromInt64(10))
	b := Kilometres(NewScalar(1, -2))
	if a.Hash() != b.Hash() {
		t.Errorf("%v.Hash() != %v.Hash()", a, b)
	}
	set := map[uint64]Length{a.Hash(): a}
	if _, ok := set[b.Hash()]; !ok {
		t.Errorf("%v not found in set containing %v", b, a)
	}
}

func TestLength_Arithmetic(t *testing.T) {
	a := Metres(ScalarFromInt64(10))
	b := Metres(ScalarFromInt64(4))

	tests := []struct {
		name string
		got  Length
		want string
	}{
		{"Add", a.Add(b), "14m"},
		{"Sub", a.Sub(b), "6m"},
		{"Sub", b.Sub(a), "-6m"},
		{"Mul", a.Mul(b), "40m"},
		{"Neg", a.Neg(), "-10m"},
		{"Scale", a.Scale(MustParseScalar("0.5")), "5m"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%v(%v, %v) = %q, want %q", tt.name, a, b, got, tt.want)
		}
	}

	t.Run("success", func(t *testing.T) {
		q, err := a.Quo(b)
		if err != nil {
			t.Fatalf("%v.Quo(%v) failed: %v", a, b, err)
		}
		if q.String() != "2.5m" {
			t.Errorf("%v.Quo(%v) = %q, want %q", a, b, q, "2.5m")
		}
		r, err := Metres(ScalarFromInt64(9)).Sqrt()
		if err != nil {
			t.Fatalf("Sqrt() failed: %v", err)
		}
		if r.String() != "3m" {
			t.Errorf("Sqrt() = %q, want %q", r, "3m")
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := a.Quo(Length{})
		if !errors.Is(err, errDivisionByZero) {
			t.Errorf("%v.Quo(0m) did not fail with %v", a, errDivisionByZero)
		}
		_, err = a.Neg().Sqrt()
		if !errors.Is(err, errNegativeRadicand) {
			t.Errorf("%v.Sqrt() did not fail with %v", a.Neg(), errNegativeRadicand)
		}
	})
}

func TestLength_Immutable(t *testing.T) {
	a := Metres(ScalarFromInt64(10))
	b := Metres(ScalarFromInt64(4))
	_ = a.Add(b)
	_ = a.Neg()
	_ = a.Scale(ScalarFromInt64(3))
	if a.String() != "10m" || b.String() != "4m" {
		t.Errorf("operands changed to %v and %v", a, b)
	}
}

func TestLength_PreferredPrefix(t *testing.T) {
	tests := []struct {
		l    Length
		want Prefix
	}{
		{Metres(ScalarFromInt64(4500)), Kilo},
		{Metres(ScalarFromInt64(1)), None},
		{Millimetres(ScalarFromInt64(2)), Milli},
		{Nanometres(ScalarFromInt64(2)), Nano},
		{Nanometres(ScalarFromInt64(500)), Micro},
	}
	for _, tt := range tests {
		if got := tt.l.PreferredPrefix(); got != tt.want {
			t.Errorf("%v.PreferredPrefix() = %v, want %v", tt.l, got, tt.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	var (
		_ Arithmetic[Length]       = Length{}
		_ Arithmetic[Mass]         = Mass{}
		_ Arithmetic[Duration]     = Duration{}
		_ Arithmetic[Force]        = Force{}
		_ Arithmetic[Energy]       = Energy{}
		_ Arithmetic[Current]      = Current{}
		_ Arithmetic[Voltage]      = Voltage{}
		_ Arithmetic[Resistance]   = Resistance{}
		_ Arithmetic[Temperature]  = Temperature{}
		_ Arithmetic[Angle]        = Angle{}
		_ Arithmetic[Speed]        = Speed{}
		_ Arithmetic[Acceleration] = Acceleration{}
	)
}

func TestMetric_String(t *testing.T) {
	two := ScalarFromInt64(2)
	tests := []struct {
		m    Measure
		want string
	}{
		{Kilograms(two), "2000g"},
		{Milligrams(two), "0.002g"},
		{Milliseconds(two), "0.002s"},
		{Kilonewtons(two), "2000N"},
		{Megajoules(two), "2000000J"},
		{Milliamperes(two), "0.002A"},
		{Kilovolts(two), "2000V"},
		{Kiloohms(two), "2000Ω"},
		{Microohms(two), "0.000002Ω"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%T.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestMass_Kilograms(t *testing.T) {
	m := Kilograms(MustParseScalar("2.5"))
	if got := m.TotalGrams(); got.String() != "2500" {
		t.Errorf("%v.TotalGrams() = %q, want %q", m, got, "2500")
	}
	if got := m.TotalKilograms(); got.String() != "2.5" {
		t.Errorf("%v.TotalKilograms() = %q, want %q", m, got, "2.5")
	}
}

func TestDuration_Units(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Minutes(ScalarFromInt64(1)), "60"},
		{Minutes(MustParseScalar("1.5")), "90"},
		{Hours(ScalarFromInt64(1)), "3600"},
		{Hours(ScalarFromInt64(2)), "7200"},
		{Days(ScalarFromInt64(1)), "86400"},
	}
	for _, tt := range tests {
		if got := tt.d.TotalSeconds(); got.String() != tt.want {
			t.Errorf("TotalSeconds() = %q, want %q", got, tt.want)
		}
	}

	d := Days(ScalarFromInt64(3))
	if got := d.TotalDays(); got.String() != "3" {
		t.Errorf("%v.TotalDays() = %q, want %q", d, got, "3")
	}
	if got := d.TotalHours(); got.String() != "72" {
		t.Errorf("%v.TotalHours() = %q, want %q", d, got, "72")
	}
	if got := d.TotalMinutes(); got.String() != "4320" {
		t.Errorf("%v.TotalMinutes() = %q, want %q", d, got, "4320")
	}
	s := Seconds(ScalarFromInt64(90))
	if got := s.TotalMinutes(); got.String() != "1.5" {
		t.Errorf("%v.TotalMinutes() = %q, want %q", s, got, "1.5")
	}
}

func TestDurationOf(t *testing.T) {
	tests := []struct {
		t    time.Duration
		want string
	}{
		{0, "0s"},
		{time.Nanosecond, "0.000000001s"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "90s"},
		{-time.Hour, "-3600s"},
	}
	for _, tt := range tests {
		d := DurationOf(tt.t)
		if got := d.String(); got != tt.want {
			t.Errorf("DurationOf(%v) = %q, want %q", tt.t, got, tt.want)
		}
		back, ok := d.Std()
		if !ok || back != tt.t {
			t.Errorf("DurationOf(%v).Std() = [%v %v], want [%v %v]", tt.t, back, ok, tt.t, true)
		}
	}
}

func TestDuration_Std(t *testing.T) {
	d := Days(ScalarFromInt64(1000000))
	if _, ok := d.Std(); ok {
		t.Errorf("%v.Std() did not report overflow", d)
	}
	d = Nanoseconds(MustParseScalar("1.6"))
	got, ok := d.Std()
	if !ok || got != 2*time.Nanosecond {
		t.Errorf("%v.Std() = [%v %v], want [%v %v]", d, got, ok, 2*time.Nanosecond, true)
	}
}

func TestEnergy_WattHours(t *testing.T) {
	e := WattHours(ScalarFromInt64(1))
	if got := e.TotalJoules(); got.String() != "3600" {
		t.Errorf("%v.TotalJoules() = %q, want %q", e, got, "3600")
	}
	e = Kilojoules(ScalarFromInt64(36))
	if got := e.TotalWattHours(); got.String() != "10" {
		t.Errorf("%v.TotalWattHours() = %q, want %q", e, got, "10")
	}
	e = WattHours(Kilo.Scale(ScalarFromInt64(1)))
	if got := e.TotalMegajoules(); got.String() != "3.6" {
		t.Errorf("%v.TotalMegajoules() = %q, want %q", e, got, "3.6")
	}
}

func TestElectric(t *testing.T) {
	v := Volts(ScalarFromInt64(12))
	r := Ohms(ScalarFromInt64(4))
	i := Amperes(v.TotalVolts().MustQuo(r.TotalOhms()))
	if !i.Equal(Milliamperes(ScalarFromInt64(3000))) {
		t.Errorf("Amperes(12V / 4Ω) = %v, want %v", i, "3A")
	}
	if (Voltage{}).Equal(Current{}) {
		t.Errorf("Voltage{}.Equal(Current{}) = true, want false")
	}
}
