// Package duration implements Taskwarrior's ISO-8601 duration subset, as used
// by the `elapsed` attribute and UDAs of type duration.
//
// The grammar is P[nY][nM][nD][T[nH][nM][nS]]. Components are kept exactly as
// written: P90M stays 90 minutes and is never folded into an hour and a half,
// so a value read from a task export serializes back without data loss.
package duration

import "fmt"

// Duration is a non-negative calendar/clock quantity. The zero value
// represents no elapsed time and formats as "PT0S".
//
// Components are not normalized against each other; Minutes may be 90.
type Duration struct {
	Years   uint32
	Months  uint32
	Days    uint32
	Hours   uint32
	Minutes uint32
	Seconds uint32
}

// Constructors for single-component durations.

func OfYears(n uint32) Duration   { return Duration{Years: n} }
func OfMonths(n uint32) Duration  { return Duration{Months: n} }
func OfWeeks(n uint32) Duration   { return Duration{Days: n * 7} }
func OfDays(n uint32) Duration    { return Duration{Days: n} }
func OfHours(n uint32) Duration   { return Duration{Hours: n} }
func OfMinutes(n uint32) Duration { return Duration{Minutes: n} }
func OfSeconds(n uint32) Duration { return Duration{Seconds: n} }

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// String renders the canonical wire form: only non-zero components, in
// designator order, with the T separator present only when a time component
// is non-zero. The all-zero duration renders as "PT0S".
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	buf := make([]byte, 0, 24)
	buf = append(buf, 'P')
	if d.Years > 0 {
		buf = appendComponent(buf, d.Years, 'Y')
	}
	if d.Months > 0 {
		buf = appendComponent(buf, d.Months, 'M')
	}
	if d.Days > 0 {
		buf = appendComponent(buf, d.Days, 'D')
	}
	if d.Hours > 0 || d.Minutes > 0 || d.Seconds > 0 {
		buf = append(buf, 'T')
	}
	if d.Hours > 0 {
		buf = appendComponent(buf, d.Hours, 'H')
	}
	if d.Minutes > 0 {
		buf = appendComponent(buf, d.Minutes, 'M')
	}
	if d.Seconds > 0 {
		buf = appendComponent(buf, d.Seconds, 'S')
	}
	return string(buf)
}

func appendComponent(buf []byte, n uint32, designator byte) []byte {
	buf = append(buf, fmt.Sprintf("%d", n)...)
	return append(buf, designator)
}

// NumSeconds approximates the total length in seconds, counting a month as 30
// days and a year as 365, which is how Taskwarrior's own calc treats them.
func (d Duration) NumSeconds() uint64 {
	const (
		perMinute = 60
		perHour   = 60 * perMinute
		perDay    = 24 * perHour
		perMonth  = 30 * perDay
		perYear   = 365 * perDay
	)
	return uint64(d.Seconds) +
		uint64(d.Minutes)*perMinute +
		uint64(d.Hours)*perHour +
		uint64(d.Days)*perDay +
		uint64(d.Months)*perMonth +
		uint64(d.Years)*perYear
}

// Add sums two durations component-wise.
func (d Duration) Add(other Duration) Duration {
	return Duration{
		Years:   d.Years + other.Years,
		Months:  d.Months + other.Months,
		Days:    d.Days + other.Days,
		Hours:   d.Hours + other.Hours,
		Minutes: d.Minutes + other.Minutes,
		Seconds: d.Seconds + other.Seconds,
	}
}

// Smooth carries overflowing components upward: seconds into minutes, minutes
// into hours, hours into days, and months into years. Days are never folded
// into months since months vary in length.
func (d Duration) Smooth() Duration {
	d.Minutes += d.Seconds / 60
	d.Seconds %= 60
	d.Hours += d.Minutes / 60
	d.Minutes %= 60
	d.Days += d.Hours / 24
	d.Hours %= 24
	d.Years += d.Months / 12
	d.Months %= 12
	return d
}
