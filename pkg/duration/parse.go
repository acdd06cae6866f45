package duration

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ParseError reports a malformed duration string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed duration %q: %s", e.Input, e.Reason)
}

// Parser controls how duration strings are read. The zero value is the strict
// parser used by Parse.
type Parser struct {
	// Lenient accepts designators written out of canonical order within
	// their half of the string, e.g. "P3D1Y". Some historical task exports
	// contain such strings. The M disambiguation is unaffected: months must
	// still appear before T and minutes after it. With duplicated
	// designators the last occurrence wins.
	Lenient bool
}

// Parse reads a duration in the form P[nY][nM][nD][T[nH][nM][nS]] with strict
// designator ordering. Absent designators are zero. Errors are *ParseError.
func Parse(s string) (Duration, error) {
	return Parser{}.Parse(s)
}

// MustParse is Parse, panicking on error. For fixtures and literals.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Designator ranks within each half, used to enforce canonical order.
var (
	dateRank = map[byte]int{'Y': 0, 'M': 1, 'D': 2}
	timeRank = map[byte]int{'H': 0, 'M': 1, 'S': 2}
)

// Parse reads a duration string. The scan is split in two phases at the T
// separator so the M designator can be resolved: months in the date half,
// minutes in the time half.
func (p Parser) Parse(s string) (Duration, error) {
	if len(s) == 0 || s[0] != 'P' {
		return Duration{}, &ParseError{Input: s, Reason: "must start with 'P'"}
	}

	var d Duration
	rest := s[1:]
	inTime := false
	lastRank := -1

	for len(rest) > 0 {
		if rest[0] == 'T' {
			if inTime {
				return Duration{}, &ParseError{Input: s, Reason: "repeated 'T' separator"}
			}
			inTime = true
			lastRank = -1
			rest = rest[1:]
			continue
		}

		digits := 0
		for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
			digits++
		}
		if digits == len(rest) {
			return Duration{}, &ParseError{Input: s, Reason: "digits without a designator"}
		}
		designator := rest[digits]
		if digits == 0 {
			return Duration{}, &ParseError{Input: s, Reason: fmt.Sprintf("designator '%c' without a value", designator)}
		}

		rank, ok := dateRank[designator]
		if inTime {
			rank, ok = timeRank[designator]
		}
		if !ok {
			half := "date"
			if inTime {
				half = "time"
			}
			return Duration{}, &ParseError{Input: s, Reason: fmt.Sprintf("designator '%c' not valid in %s part", designator, half)}
		}
		if rank <= lastRank && !p.Lenient {
			return Duration{}, &ParseError{Input: s, Reason: fmt.Sprintf("designator '%c' out of order", designator)}
		}
		if rank > lastRank {
			lastRank = rank
		}

		n, err := strconv.ParseUint(rest[:digits], 10, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Duration{}, &ParseError{Input: s, Reason: fmt.Sprintf("component %s%c out of range", rest[:digits], designator)}
			}
			return Duration{}, &ParseError{Input: s, Reason: err.Error()}
		}
		v := uint32(n)

		switch {
		case !inTime && designator == 'Y':
			d.Years = v
		case !inTime && designator == 'M':
			d.Months = v
		case !inTime && designator == 'D':
			d.Days = v
		case inTime && designator == 'H':
			d.Hours = v
		case inTime && designator == 'M':
			d.Minutes = v
		case inTime && designator == 'S':
			d.Seconds = v
		}
		rest = rest[digits+1:]
	}
	return d, nil
}

// MarshalJSON writes the canonical wire string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a quoted duration string with the strict parser.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a JSON string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
