// Package coerce converts runtime values into schema-conforming form,
// best-effort and conservative: a value either matches one of the fixed
// conversion rules for its target schema or the coercion fails with a typed
// error. There is no partial result and no recovery; a call is all-or-nothing.
//
// Failures are plain error values matched with errors.As: ShapeError for
// container/shape mismatches, MissingFieldError for absent required object
// fields, ConversionError for primitive rule violations, and UnionError when
// no union variant accepts the value (carrying the last variant's failure).
package coerce
