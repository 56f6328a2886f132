package coerce

import (
	"fmt"

	"github.com/aretw0/graft/pkg/schema"
)

// ShapeError reports a container value whose shape is incompatible with the
// target schema (e.g., a scalar handed to a set-kind array schema).
type ShapeError struct {
	Target schema.Schema
	Value  any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("value of type %T does not fit %s", e.Value, e.Target.Repr())
}

// MissingFieldError reports a required object field absent from the input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %q", e.Field)
}

// ConversionError reports a primitive value that does not satisfy its target
// schema's coercion rule.
type ConversionError struct {
	Target schema.Schema
	Value  any
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot coerce %v (%T) to %s: %s", e.Value, e.Value, e.Target.Repr(), e.Reason)
}

// UnionError reports that no variant of a union accepted the value. Last
// carries the final variant's failure as context.
type UnionError struct {
	Target schema.Schema
	Last   error
}

func (e *UnionError) Error() string {
	return fmt.Sprintf("value does not match any union variant: %v", e.Last)
}

func (e *UnionError) Unwrap() error { return e.Last }
