package cycle

import (
	"errors"
	"strings"
)

// ErrCycleActive is returned by Create while another cycle is counting down.
var ErrCycleActive = errors.New("a cycle is already active")

// FieldError is a single rejected form field.
type FieldError struct {
	Field   string
	Message string
}

// Error returns only the message so forms can show it as-is.
func (e *FieldError) Error() string {
	return e.Message
}

// ValidationError collects the field errors of a rejected submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid cycle: " + strings.Join(msgs, "; ")
}

// Message returns the message for field, or "" when the field passed.
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}
