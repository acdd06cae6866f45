package task

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/taskwire/taskwire/pkg/duration"
)

// MissingFieldError reports a required wire field absent from the input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// FieldError reports a wire field whose value could not be decoded. It
// unwraps to the underlying codec error.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// requiredFields in reporting order: when several are absent, the first one
// here is the one named in the error.
var requiredFields = []string{"id", "uuid", "description", "entry", "modified", "status", "urgency"}

// builtinFields is every wire key the Task struct claims for itself. Any
// other key is a user-defined attribute.
var builtinFields = map[string]bool{
	"id": true, "uuid": true, "description": true, "entry": true,
	"modified": true, "status": true, "urgency": true, "project": true,
	"start": true, "end": true, "elapsed": true, "tags": true,
	"annotations": true, "parent": true,
}

// FromJSON decodes one exported task object.
func FromJSON(data []byte) (Task, error) {
	var t Task
	if err := json.Unmarshal(data, &t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// ToJSON encodes the task as a single wire object.
func (t Task) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}

// UnmarshalJSON decodes the wire object field by field: built-in keys go
// through their codecs, every other key is folded raw into UDA.
func (t *Task) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("task must be a JSON object: %w", err)
	}

	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return &MissingFieldError{Field: name}
		}
	}

	var out Task
	if err := decodeField(fields, "id", &out.ID); err != nil {
		return err
	}
	if err := decodeUUID(fields["uuid"], "uuid", &out.UUID); err != nil {
		return err
	}
	if err := decodeField(fields, "description", &out.Description); err != nil {
		return err
	}
	if out.Description == "" {
		return &FieldError{Field: "description", Err: fmt.Errorf("must not be empty")}
	}
	if err := decodeField(fields, "entry", &out.Entry); err != nil {
		return err
	}
	if err := decodeField(fields, "modified", &out.Modified); err != nil {
		return err
	}
	if err := decodeField(fields, "status", &out.Status); err != nil {
		return err
	}
	if err := decodeField(fields, "urgency", &out.Urgency); err != nil {
		return err
	}

	if err := decodeField(fields, "project", &out.Project); err != nil {
		return err
	}
	if err := decodeField(fields, "start", &out.Start); err != nil {
		return err
	}
	if err := decodeField(fields, "end", &out.End); err != nil {
		return err
	}
	if err := decodeField(fields, "elapsed", &out.Elapsed); err != nil {
		return err
	}
	if err := decodeField(fields, "tags", &out.Tags); err != nil {
		return err
	}
	if err := decodeField(fields, "annotations", &out.Annotations); err != nil {
		return err
	}
	if raw, ok := fields["parent"]; ok {
		var parent uuid.UUID
		if err := decodeUUID(raw, "parent", &parent); err != nil {
			return err
		}
		out.Parent = &parent
	}

	// The tool never exports empty collections; an explicit empty array
	// means the same as absence and is normalized so round trips compare
	// equal.
	if len(out.Tags) == 0 {
		out.Tags = nil
	}
	if len(out.Annotations) == 0 {
		out.Annotations = nil
	}

	for name, raw := range fields {
		if builtinFields[name] {
			continue
		}
		if out.UDA == nil {
			out.UDA = make(map[string]UDAValue)
		}
		out.UDA[name] = UDARaw(raw)
	}

	*t = out
	return nil
}

func decodeField(fields map[string]json.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &FieldError{Field: name, Err: err}
	}
	return nil
}

// decodeUUID enforces the canonical 36-character form; the uuid package alone
// would also accept braced, URN and bare-hex spellings the tool never emits.
func decodeUUID(raw json.RawMessage, name string, dst *uuid.UUID) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return &FieldError{Field: name, Err: err}
	}
	if len(s) != 36 {
		return &FieldError{Field: name, Err: fmt.Errorf("uuid must be the 36-character canonical form, got %q", s)}
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return &FieldError{Field: name, Err: err}
	}
	*dst = u
	return nil
}

// wireTask is the fixed-field shadow of Task used for encoding. Optional
// fields are omitted entirely when absent, never written as null.
type wireTask struct {
	ID          int                `json:"id"`
	UUID        uuid.UUID          `json:"uuid"`
	Description string             `json:"description"`
	Entry       Time               `json:"entry"`
	Modified    Time               `json:"modified"`
	Status      Status             `json:"status"`
	Urgency     float64            `json:"urgency"`
	Project     string             `json:"project,omitempty"`
	Start       *Time              `json:"start,omitempty"`
	End         *Time              `json:"end,omitempty"`
	Elapsed     *duration.Duration `json:"elapsed,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Annotations []Annotation       `json:"annotations,omitempty"`
	Parent      *uuid.UUID         `json:"parent,omitempty"`
}

// MarshalJSON writes the wire object: built-in fields first, then each UDA
// entry as an additional top-level key. A UDA key shadowing a built-in field
// is a data error; the typed field wins and the conflict is logged.
func (t Task) MarshalJSON() ([]byte, error) {
	fixed, err := json.Marshal(wireTask{
		ID:          t.ID,
		UUID:        t.UUID,
		Description: t.Description,
		Entry:       t.Entry,
		Modified:    t.Modified,
		Status:      t.Status,
		Urgency:     t.Urgency,
		Project:     t.Project,
		Start:       t.Start,
		End:         t.End,
		Elapsed:     t.Elapsed,
		Tags:        t.Tags,
		Annotations: t.Annotations,
		Parent:      t.Parent,
	})
	if err != nil {
		return nil, err
	}
	if len(t.UDA) == 0 {
		return fixed, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(fixed, &merged); err != nil {
		return nil, err
	}
	for name, value := range t.UDA {
		if builtinFields[name] {
			log.Printf("task %s: UDA %q collides with a built-in field, keeping the typed value", t.UUID, name)
			continue
		}
		merged[name], err = value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("encoding UDA %q: %w", name, err)
		}
	}
	return json.Marshal(merged)
}
