// Package task models Taskwarrior's exported task record and its textual
// codecs: the compact UTC timestamp, the status vocabulary, and the
// field-by-field JSON mapping including user-defined attributes.
//
// Round-trip fidelity is the contract throughout: decoding a record and
// encoding it again must not lose or reshape anything the tool wrote,
// including attributes this library has no static knowledge of.
package task

import (
	"github.com/google/uuid"

	"github.com/taskwire/taskwire/pkg/duration"
)

// Task is one Taskwarrior record. ID, UUID, Description, Entry, Modified,
// Status and Urgency are always present on the wire; an ID of 0 marks a
// record not yet committed to the tool's working set. The remaining fields
// are optional and omitted from JSON entirely when absent.
//
// Parent is a reference to another task's UUID, not an ownership link; the
// referenced task's existence is never validated here.
type Task struct {
	ID          int
	UUID        uuid.UUID
	Description string
	Entry       Time
	Modified    Time
	Status      Status
	Urgency     float64

	Project     string
	Start       *Time
	End         *Time
	Elapsed     *duration.Duration
	Tags        []string
	Annotations []Annotation
	Parent      *uuid.UUID

	// UDA carries every top-level wire key that is not a built-in field,
	// byte-for-byte.
	UDA map[string]UDAValue
}

// Annotation is a timestamped note attached to a task. Creation order is
// preserved across decode and encode.
type Annotation struct {
	Entry       Time   `json:"entry"`
	Description string `json:"description"`
}
