package measurement

import (
	"slices"
	"testing"
)

func TestNewUnit(t *testing.T) {
	secondary := []string{"sec", "secs"}
	u := NewUnit("Seconds", "s", secondary...)
	secondary[0] = "changed"
	if got, want := u.SecondarySymbols(), []string{"sec", "secs"}; !slices.Equal(got, want) {
		t.Errorf("NewUnit(...).SecondarySymbols() = %v, want %v", got, want)
	}

	got := u.SecondarySymbols()
	got[0] = "changed"
	if u.SecondarySymbols()[0] != "sec" {
		t.Errorf("SecondarySymbols() returned an alias of the unit's symbols")
	}
}

func TestUnit_Per(t *testing.T) {
	tests := []struct {
		u, v          Unit
		wantName      string
		wantSymbol    string
		wantSecondary []string
	}{
		{
			u:          metresUnit,
			v:          secondsUnit,
			wantName:   "Metres Per Seconds",
			wantSymbol: "m/s",
		},
		{
			u:             NewUnit("Metres", "m", "metre", "meter"),
			v:             NewUnit("Seconds", "s", "sec", "second"),
			wantName:      "Metres Per Seconds",
			wantSymbol:    "m/s",
			wantSecondary: []string{"metre/sec", "metre/second", "meter/sec", "meter/second"},
		},
		{
			u:             NewUnit("Amperes", "A", "amp"),
			v:             secondsUnit,
			wantName:      "Amperes Per Seconds",
			wantSymbol:    "A/s",
			wantSecondary: []string{"amp/sec"},
		},
		{
			u:          speedUnit,
			v:          secondsUnit,
			wantName:   "Metres Per Seconds Per Seconds",
			wantSymbol: "m/s/s",
		},
	}
	for _, tt := range tests {
		got := tt.u.Per(tt.v)
		if got.Name != tt.wantName {
			t.Errorf("%v.Per(%v).Name = %q, want %q", tt.u, tt.v, got.Name, tt.wantName)
		}
		if got.Symbol != tt.wantSymbol {
			t.Errorf("%v.Per(%v).Symbol = %q, want %q", tt.u, tt.v, got.Symbol, tt.wantSymbol)
		}
		if !slices.Equal(got.SecondarySymbols(), tt.wantSecondary) {
			t.Errorf("%v.Per(%v).SecondarySymbols() = %v, want %v", tt.u, tt.v, got.SecondarySymbols(), tt.wantSecondary)
		}
	}
}

func TestUnit_Equal(t *testing.T) {
	tests := []struct {
		u, v Unit
		want bool
	}{
		{metresUnit, metresUnit, true},
		{metresUnit, NewUnit("Metres", "m", "metre"), true},
		{metresUnit, gramsUnit, false},
		{speedUnit, metresUnit.Per(secondsUnit), true},
		{Unit{}, Unit{}, true},
	}
	for _, tt := range tests {
		if got := tt.u.Equal(tt.v); got != tt.want {
			t.Errorf("%q.Equal(%q) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestMeasure_Unit(t *testing.T) {
	tests := []struct {
		m          Measure
		wantSymbol string
	}{
		{Length{}, "m"},
		{Mass{}, "g"},
		{Duration{}, "s"},
		{Force{}, "N"},
		{Energy{}, "J"},
		{Current{}, "A"},
		{Voltage{}, "V"},
		{Resistance{}, "Ω"},
		{Temperature{}, "K"},
		{Angle{}, "°"},
		{Speed{}, "m/s"},
		{Acceleration{}, "m/s/s"},
	}
	for _, tt := range tests {
		if got := tt.m.Unit().Symbol; got != tt.wantSymbol {
			t.Errorf("%T.Unit().Symbol = %q, want %q", tt.m, got, tt.wantSymbol)
		}
	}
}
