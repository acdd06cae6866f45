package hook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/taskwire/taskwire/pkg/task"
)

// ReadTask reads the single task object an on-add hook receives on stdin.
func ReadTask(r io.Reader) (task.Task, error) {
	var t task.Task
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return task.Task{}, fmt.Errorf("failed to decode task json: %w", err)
	}
	return t, nil
}

// ReadTaskPair reads the two objects an on-modify hook receives: the task as
// it was, then the task as the user edited it.
func ReadTaskPair(r io.Reader) (original, edited task.Task, err error) {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&original); err != nil {
		return task.Task{}, task.Task{}, fmt.Errorf("failed to decode original task json: %w", err)
	}
	if err := decoder.Decode(&edited); err != nil {
		return task.Task{}, task.Task{}, fmt.Errorf("failed to decode edited task json: %w", err)
	}
	return original, edited, nil
}

// WriteTask writes one task object followed by a newline, the form the tool
// expects back from a feedback hook.
func WriteTask(w io.Writer, t task.Task) error {
	b, err := t.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode task json: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write task json: %w", err)
	}
	return nil
}
