package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the compact UTC form Taskwarrior uses in its JSON export.
const TimeLayout = "20060102T150405Z" // YYYYMMDDTHHMMSSZ, 'Z' indicates UTC

// Time is an absolute instant at second resolution, always UTC. It embeds
// time.Time so the full stdlib API is available on it.
type Time struct {
	time.Time
}

// TimestampError reports a string that is not a valid wire timestamp.
type TimestampError struct {
	Input string
	Err   error
}

func (e *TimestampError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed timestamp %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("malformed timestamp %q", e.Input)
}

func (e *TimestampError) Unwrap() error { return e.Err }

// ParseTime reads a wire timestamp. The input must be exactly 16 characters;
// field ranges and calendar validity (such as February 30th) are checked by
// the stdlib parser.
func ParseTime(s string) (Time, error) {
	if len(s) != len(TimeLayout) {
		return Time{}, &TimestampError{Input: s, Err: fmt.Errorf("want %d characters, have %d", len(TimeLayout), len(s))}
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return Time{}, &TimestampError{Input: s, Err: err}
	}
	return Time{t.UTC()}, nil
}

// At builds a wire Time from a stdlib instant, truncating to whole seconds
// in UTC so that formatting and re-parsing yields an identical value.
func At(t time.Time) Time {
	return Time{t.UTC().Truncate(time.Second)}
}

// String formats the instant as the 16-character wire pattern. It is the left
// inverse of ParseTime for every string ParseTime accepts.
func (t Time) String() string {
	return t.UTC().Format(TimeLayout)
}

// MarshalJSON writes the quoted wire string.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON reads a quoted wire string. An empty string is an error, not
// a zero time: substituting a default for malformed input would corrupt task
// data invisibly.
func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
