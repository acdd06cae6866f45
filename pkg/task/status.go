package task

import (
	"encoding/json"
	"fmt"
)

// Status is a task's lifecycle state. The set is closed: every valid wire
// token maps to exactly one Status and back. Unknown tokens are rejected
// rather than carried as opaque strings, so a future Taskwarrior status
// cannot slip through undetected.
type Status int

const (
	Pending Status = iota
	Completed
	Deleted
	Waiting
	Recurring
)

var statusTokens = [...]string{
	Pending:   "pending",
	Completed: "completed",
	Deleted:   "deleted",
	Waiting:   "waiting",
	Recurring: "recurring",
}

var statusByToken = map[string]Status{
	"pending":   Pending,
	"completed": Completed,
	"deleted":   Deleted,
	"waiting":   Waiting,
	"recurring": Recurring,
}

// ParseStatus maps a lowercase wire token to its Status.
func ParseStatus(token string) (Status, error) {
	s, ok := statusByToken[token]
	if !ok {
		return 0, fmt.Errorf("unknown status %q", token)
	}
	return s, nil
}

// String returns the wire token.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusTokens) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusTokens[s]
}

// MarshalJSON writes the quoted wire token.
func (s Status) MarshalJSON() ([]byte, error) {
	if s < 0 || int(s) >= len(statusTokens) {
		return nil, fmt.Errorf("invalid status value %d", int(s))
	}
	return json.Marshal(statusTokens[s])
}

// UnmarshalJSON reads a quoted wire token.
func (s *Status) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return fmt.Errorf("status must be a JSON string: %w", err)
	}
	parsed, err := ParseStatus(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
