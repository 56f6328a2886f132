// Package export maps schemas to a generic nested-document form for interop
// with validators, documentation generators and similar consumers. The
// mapping is best-effort structural, not a validation-grade JSON Schema.
//
// Document produces the raw map form; JSON and YAML render it as text, and
// OpenAPI mirrors it as a kin-openapi schema object.
package export
