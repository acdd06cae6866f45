package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskwire/taskwire/pkg/duration"
)

// Builder constructs a Task programmatically with the same validation rules
// decoding applies: required fields are checked once, at Build time. A UUID
// is generated when none is supplied, and Status defaults to Pending.
type Builder struct {
	t       Task
	hasUUID bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) ID(id int) *Builder {
	b.t.ID = id
	return b
}

func (b *Builder) UUID(u uuid.UUID) *Builder {
	b.t.UUID = u
	b.hasUUID = true
	return b
}

func (b *Builder) Description(d string) *Builder {
	b.t.Description = d
	return b
}

func (b *Builder) Entry(t time.Time) *Builder {
	b.t.Entry = At(t)
	return b
}

func (b *Builder) Modified(t time.Time) *Builder {
	b.t.Modified = At(t)
	return b
}

func (b *Builder) Status(s Status) *Builder {
	b.t.Status = s
	return b
}

func (b *Builder) Urgency(u float64) *Builder {
	b.t.Urgency = u
	return b
}

func (b *Builder) Project(p string) *Builder {
	b.t.Project = p
	return b
}

func (b *Builder) Start(t time.Time) *Builder {
	wt := At(t)
	b.t.Start = &wt
	return b
}

func (b *Builder) End(t time.Time) *Builder {
	wt := At(t)
	b.t.End = &wt
	return b
}

func (b *Builder) Elapsed(d duration.Duration) *Builder {
	b.t.Elapsed = &d
	return b
}

func (b *Builder) Tags(tags ...string) *Builder {
	b.t.Tags = append(b.t.Tags, tags...)
	return b
}

// Annotate appends a note; calls are kept in order.
func (b *Builder) Annotate(entry time.Time, description string) *Builder {
	b.t.Annotations = append(b.t.Annotations, Annotation{Entry: At(entry), Description: description})
	return b
}

func (b *Builder) Parent(u uuid.UUID) *Builder {
	b.t.Parent = &u
	return b
}

// UDA sets one user-defined attribute.
func (b *Builder) UDA(name string, value UDAValue) *Builder {
	if b.t.UDA == nil {
		b.t.UDA = make(map[string]UDAValue)
	}
	b.t.UDA[name] = value
	return b
}

// Build validates and returns the task. Errors reuse the decoder's types:
// *MissingFieldError for absent required fields, *FieldError for invalid
// values.
func (b *Builder) Build() (Task, error) {
	if b.t.Description == "" {
		return Task{}, &MissingFieldError{Field: "description"}
	}
	if b.t.Entry.IsZero() {
		return Task{}, &MissingFieldError{Field: "entry"}
	}
	if b.t.Modified.IsZero() {
		return Task{}, &MissingFieldError{Field: "modified"}
	}
	if b.t.ID < 0 {
		return Task{}, &FieldError{Field: "id", Err: fmt.Errorf("must not be negative")}
	}
	t := b.t
	if !b.hasUUID {
		t.UUID = uuid.New()
	}
	return t, nil
}
