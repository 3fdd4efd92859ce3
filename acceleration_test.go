package measurement

import (
	"errors"
	"testing"
)

func acceleration(m, s1, s2 int64) Acceleration {
	return NewAcceleration(Metres(ScalarFromInt64(m)), Seconds(ScalarFromInt64(s1)), Seconds(ScalarFromInt64(s2)))
}

func TestNewAcceleration(t *testing.T) {
	a := acceleration(10, 2, 5)
	if got := a.String(); got != "1m/s/s" {
		t.Errorf("NewAcceleration(10m, 2s, 5s) = %q, want %q", got, "1m/s/s")
	}
	if !a.Length().Equal(Metres(ScalarFromInt64(10))) {
		t.Errorf("%v.Length() = %v, want %v", a, a.Length(), "10m")
	}
	if !a.Time1().Equal(Seconds(ScalarFromInt64(2))) || !a.Time2().Equal(Seconds(ScalarFromInt64(5))) {
		t.Errorf("%v times = [%v %v], want [2s 5s]", a, a.Time1(), a.Time2())
	}
	if !a.Speed().Equal(speed(10, 2)) {
		t.Errorf("%v.Speed() = %v, want %v", a, a.Speed(), "5m/s")
	}

	s := MetresPerSecond(ScalarFromInt64(10)).Per(Seconds(ScalarFromInt64(2)))
	if !s.Equal(MetresPerSecondSquared(ScalarFromInt64(5))) {
		t.Errorf("10m/s.Per(2s) = %v, want %v", s, "5m/s/s")
	}

	g := MetresPerSecondSquared(MustParseScalar("9.81"))
	if got := g.String(); got != "9.81m/s/s" {
		t.Errorf("MetresPerSecondSquared(9.81) = %q, want %q", got, "9.81m/s/s")
	}
}

func TestAcceleration_Total(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := acceleration(10, 2, 5).TotalMetresPerSecondSquared()
		if err != nil {
			t.Fatalf("TotalMetresPerSecondSquared() failed: %v", err)
		}
		if got.String() != "1" {
			t.Errorf("TotalMetresPerSecondSquared() = %q, want %q", got, "1")
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []Acceleration{
			{},
			acceleration(1, 0, 1),
			acceleration(1, 1, 0),
		}
		for _, a := range tests {
			_, err := a.TotalMetresPerSecondSquared()
			if !errors.Is(err, errDivisionByZero) {
				t.Errorf("%v.TotalMetresPerSecondSquared() did not fail with %v", a, errDivisionByZero)
			}
		}
		if got := acceleration(1, 0, 1).String(); got != "1m/0s/1s" {
			t.Errorf("NewAcceleration(1m, 0s, 1s).String() = %q, want %q", got, "1m/0s/1s")
		}
	})
}

func TestAcceleration_Equal(t *testing.T) {
	tests := []struct {
		a    Acceleration
		m    Measure
		want bool
	}{
		{acceleration(10, 2, 5), acceleration(1, 1, 1), true},
		{acceleration(10, 2, 5), acceleration(10, 5, 2), true},
		{acceleration(10, 2, 5), MetresPerSecondSquared(ScalarFromInt64(1)), true},
		{acceleration(10, 2, 5), acceleration(10, 2, 4), false},
		{acceleration(10, 2, 5), speed(10, 10), false},
		{acceleration(1, 0, 1), acceleration(1, 0, 1), true},
		{acceleration(1, 0, 1), acceleration(2, 0, 1), false},
		{acceleration(1, 0, 1), acceleration(1, 1, 0), false},
		{Acceleration{}, Acceleration{}, true},
		{Acceleration{}, MetresPerSecondSquared(MustParseScalar("9")), false},
		{MetresPerSecondSquared(MustParseScalar("9")), Acceleration{}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.m); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.m, got, tt.want)
		}
	}
}

func TestAcceleration_Hash(t *testing.T) {
	tests := []struct {
		a, x Acceleration
	}{
		{acceleration(10, 2, 5), MetresPerSecondSquared(ScalarFromInt64(1))},
		{acceleration(10, 2, 5), acceleration(10, 5, 2)},
		{acceleration(1, 3, 1), acceleration(2, 2, 3)},
		{acceleration(1, 0, 1), acceleration(1, 0, 1)},
	}
	for _, tt := range tests {
		if !tt.a.Equal(tt.x) {
			t.Errorf("%v.Equal(%v) = false, want true", tt.a, tt.x)
			continue
		}
		if tt.a.Hash() != tt.x.Hash() {
			t.Errorf("%v.Hash() = %v, %v.Hash() = %v, want equal", tt.a, tt.a.Hash(), tt.x, tt.x.Hash())
		}
	}
}

func TestAcceleration_Arithmetic(t *testing.T) {
	a := acceleration(10, 2, 5)
	b := MetresPerSecondSquared(ScalarFromInt64(2))

	tests := []struct {
		name string
		got  Acceleration
		want string
	}{
		{"Add", a.Add(b), "3m/s/s"},
		{"Sub", a.Sub(b), "-1m/s/s"},
		{"Mul", a.Mul(b), "2m/s/s"},
		{"Neg", a.Neg(), "-1m/s/s"},
		{"Scale", a.Scale(ScalarFromInt64(3)), "3m/s/s"},
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
		if q.String() != "0.5m/s/s" {
			t.Errorf("%v.Quo(%v) = %q, want %q", a, b, q, "0.5m/s/s")
		}
		r, err := acceleration(16, 4, 1).Sqrt()
		if err != nil {
			t.Fatalf("Sqrt() failed: %v", err)
		}
		if r.String() != "2m/s/s" {
			t.Errorf("Sqrt() = %q, want %q", r, "2m/s/s")
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := a.Quo(Acceleration{})
		if !errors.Is(err, errDivisionByZero) {
			t.Errorf("%v.Quo(0) did not fail with %v", a, errDivisionByZero)
		}
		_, err = acceleration(16, -4, 1).Sqrt()
		if !errors.Is(err, errNegativeRadicand) {
			t.Errorf("Sqrt() did not fail with %v", errNegativeRadicand)
		}
	})
}
