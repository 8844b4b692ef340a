package binding

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports that a singular read came back without its row. It is
// distinct from an empty listing, which is a successful result.
var ErrNotFound = errors.New("not found")

// MissingFieldError reports a required field that was not supplied. Only
// add-style operations enforce required fields; for every other category an
// omitted field has a meaning of its own.
type MissingFieldError struct {
	Op    string
	Field string // dotted path for nested fields
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %q was not supplied", e.Op, e.Field)
}

// ConflictingFieldsError reports that more than one member of a choice group
// was supplied.
type ConflictingFieldsError struct {
	Op     string
	Fields []string
}

func (e *ConflictingFieldsError) Error() string {
	return fmt.Sprintf("%s: fields %s are mutually exclusive", e.Op, strings.Join(e.Fields, ", "))
}

// ValidationError reports a supplied value the schema rules out: an unknown
// field, a rejected enum literal, a malformed UUID, a length overrun.
type ValidationError struct {
	Op      string
	Path    string // dotted field path, may be empty
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Path, e.Message)
}
