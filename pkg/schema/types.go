package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Schema is a node in the closed variant tree describing the shape of a value.
// Nodes are immutable after construction and safe for concurrent use.
// The interface is sealed: the set of variants is fixed, and operations over
// schemas dispatch exhaustively on the concrete types.
type Schema interface {
	// Repr returns the canonical text form of the schema. It is a
	// deterministic function of content (Object properties render in sorted
	// key order) and distinguishes any two structurally different schemas.
	Repr() string

	isSchema()
}

// ArrayKind records the traversal/uniqueness semantics of a sequence.
type ArrayKind string

const (
	List  ArrayKind = "list"
	Tuple ArrayKind = "tuple"
	Set   ArrayKind = "set"
)

// --- Variant types ---

// NullSchema describes an absent value.
type NullSchema struct{}

// BoolSchema describes a boolean.
type BoolSchema struct{}

// IntSchema describes an integral number.
type IntSchema struct{}

// FloatSchema describes a floating-point number.
type FloatSchema struct{}

// StringSchema describes text.
type StringSchema struct{}

// BytesSchema describes a binary blob.
type BytesSchema struct{}

// DateSchema describes a calendar date without a time component.
type DateSchema struct{}

// DateTimeSchema describes a date with a time component.
type DateTimeSchema struct{}

// ArraySchema describes a homogeneous sequence. ArrayKind records whether the
// sequence was list-like, fixed-tuple-like or set-like.
type ArraySchema struct {
	Item      Schema
	ArrayKind ArrayKind
}

// MapSchema describes an associative collection whose keys are not text.
type MapSchema struct {
	Key   Schema
	Value Schema
}

// ObjectSchema describes a text-keyed record. Optional holds the names of
// properties that may be absent or null; it is always a subset of Properties.
// Both maps are treated as immutable after construction.
type ObjectSchema struct {
	Properties map[string]Schema
	Optional   map[string]struct{}
}

// UnionSchema describes a sum of mutually exclusive shapes. Invariants: at
// least two variants, no variant is itself a union, no two variants are
// structurally equal, never both Int and Float, variants sorted by Repr.
// Build unions with Union, never by hand.
type UnionSchema struct {
	Variants []Schema
}

func (NullSchema) isSchema()     {}
func (BoolSchema) isSchema()     {}
func (IntSchema) isSchema()      {}
func (FloatSchema) isSchema()    {}
func (StringSchema) isSchema()   {}
func (BytesSchema) isSchema()    {}
func (DateSchema) isSchema()     {}
func (DateTimeSchema) isSchema() {}
func (ArraySchema) isSchema()    {}
func (MapSchema) isSchema()      {}
func (ObjectSchema) isSchema()   {}
func (UnionSchema) isSchema()    {}

// --- Canonical representation ---

func (NullSchema) Repr() string     { return "Null" }
func (BoolSchema) Repr() string     { return "Bool" }
func (IntSchema) Repr() string      { return "Int" }
func (FloatSchema) Repr() string    { return "Float" }
func (StringSchema) Repr() string   { return "String" }
func (BytesSchema) Repr() string    { return "Bytes" }
func (DateSchema) Repr() string     { return "Date" }
func (DateTimeSchema) Repr() string { return "DateTime" }

func (s ArraySchema) Repr() string {
	var label string
	switch s.ArrayKind {
	case Tuple:
		label = "Tuple"
	case Set:
		label = "Set"
	default:
		label = "List"
	}
	return fmt.Sprintf("%s[%s]", label, s.Item.Repr())
}

func (s MapSchema) Repr() string {
	return fmt.Sprintf("Map[%s -> %s]", s.Key.Repr(), s.Value.Repr())
}

func (s ObjectSchema) Repr() string {
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		marker := ""
		if _, ok := s.Optional[k]; ok {
			marker = "?"
		}
		parts = append(parts, fmt.Sprintf("%s%s: %s", k, marker, s.Properties[k].Repr()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s UnionSchema) Repr() string {
	parts := make([]string, len(s.Variants))
	for i, v := range s.Variants {
		parts[i] = v.Repr()
	}
	return strings.Join(parts, " | ")
}

// --- Factory constructors ---

// Null creates the schema for absent values.
func Null() Schema { return NullSchema{} }

// Bool creates the boolean schema.
func Bool() Schema { return BoolSchema{} }

// Int creates the integral-number schema.
func Int() Schema { return IntSchema{} }

// Float creates the floating-point schema.
func Float() Schema { return FloatSchema{} }

// String creates the text schema.
func String() Schema { return StringSchema{} }

// Bytes creates the binary-blob schema.
func Bytes() Schema { return BytesSchema{} }

// Date creates the calendar-date schema.
func Date() Schema { return DateSchema{} }

// DateTime creates the date-with-time schema.
func DateTime() Schema { return DateTimeSchema{} }

// Array creates a sequence schema for items of the given schema.
func Array(item Schema, kind ArrayKind) Schema {
	return ArraySchema{Item: item, ArrayKind: kind}
}

// MapOf creates a schema for a non-text-keyed associative collection.
func MapOf(key, value Schema) Schema {
	return MapSchema{Key: key, Value: value}
}

// Object creates a text-keyed record schema. The optional names mark
// properties that may be absent or null; names without a matching property
// are ignored. The properties map is copied, so callers may reuse theirs.
func Object(properties map[string]Schema, optional ...string) Schema {
	props := make(map[string]Schema, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	opt := make(map[string]struct{}, len(optional))
	for _, name := range optional {
		if _, ok := props[name]; ok {
			opt[name] = struct{}{}
		}
	}
	return ObjectSchema{Properties: props, Optional: opt}
}
