package graft

import (
	"github.com/aretw0/graft/pkg/coerce"
	"github.com/aretw0/graft/pkg/export"
	"github.com/aretw0/graft/pkg/infer"
	"github.com/aretw0/graft/pkg/schema"
)

// Deduce infers a schema from a sequence of sample values. An empty sequence,
// or one where every sample is null, yields the Null schema.
func Deduce(samples []any) schema.Schema {
	return infer.Deduce(samples)
}

// Infer classifies a single value into a schema. It never fails; unknown
// value kinds degrade to String.
func Infer(value any) schema.Schema {
	return infer.Infer(value)
}

// Coerce converts value into a form conforming to the given schema,
// best-effort. Failures are typed errors from pkg/coerce.
func Coerce(value any, s schema.Schema) (any, error) {
	return coerce.Coerce(value, s)
}

// Repr returns the canonical, deterministic text form of a schema, usable for
// equality testing, deduplication and diagnostics.
func Repr(s schema.Schema) string {
	return s.Repr()
}

// Document maps a schema to its structural document form for interop with
// external validators or documentation generators.
func Document(s schema.Schema) map[string]any {
	return export.Document(s)
}
