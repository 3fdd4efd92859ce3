package measurement

import "time"

// Duration is an interval of time, stored in seconds.
// The zero value is a duration of 0 seconds.
//
// Unlike [time.Duration], a Duration is not limited to nanosecond resolution
// or to about 290 years.
type Duration struct {
	value Scalar
}

var (
	secondsPerMinute = ScalarFromInt64(60)
	secondsPerHour   = ScalarFromInt64(3600)
	secondsPerDay    = ScalarFromInt64(86400)
)

// DurationOf converts a [time.Duration] to a Duration.
func DurationOf(t time.Duration) Duration {
	return Nanoseconds(ScalarFromInt64(int64(t)))
}

// Std converts d to a [time.Duration], rounding to the nearest nanosecond.
// The second result is false if d does not fit in a [time.Duration].
func (d Duration) Std() (time.Duration, bool) {
	ns, ok := d.TotalNanoseconds().Int64()
	if !ok {
		return 0, false
	}
	return time.Duration(ns), true
}

// Minutes returns a duration of v minutes.
func Minutes(v Scalar) Duration {
	return Seconds(v.Mul(secondsPerMinute))
}

// TotalMinutes returns d in minutes.
func (d Duration) TotalMinutes() Scalar {
	return d.value.MustQuo(secondsPerMinute)
}

// Hours returns a duration of v hours.
func Hours(v Scalar) Duration {
	return Seconds(v.Mul(secondsPerHour))
}

// TotalHours returns d in hours.
func (d Duration) TotalHours() Scalar {
	return d.value.MustQuo(secondsPerHour)
}

// Days returns a duration of v days of 24 hours.
func Days(v Scalar) Duration {
	return Seconds(v.Mul(secondsPerDay))
}

// TotalDays returns d in days of 24 hours.
func (d Duration) TotalDays() Scalar {
	return d.value.MustQuo(secondsPerDay)
}
