// Package graft infers structural schemas from in-memory sample values,
// merges them into one schema that soundly describes every observed shape,
// and coerces new raw values into schema-conforming form.
//
// The three operations share one closed schema algebra (pkg/schema): a
// recursive variant tree with order-insensitive union construction and
// numeric widening, so deducing a schema from samples does not depend on the
// order the samples arrive in.
//
//	s := graft.Deduce([]any{
//	    map[string]any{"id": 1, "name": "a"},
//	    map[string]any{"id": 2, "email": "b@c"},
//	})
//	fmt.Println(graft.Repr(s)) // {email?: String, id: Int, name?: String}
//
//	out, err := graft.Coerce(map[string]any{"id": "3"}, s)
//
// Schemas export to a generic nested-document form (pkg/export) for interop
// with validators and documentation tooling. Everything is pure and
// in-memory: no I/O, no shared mutable state, safe for concurrent use.
package graft
