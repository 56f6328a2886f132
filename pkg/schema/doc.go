// Package schema defines a closed algebra of structural type descriptions.
//
// A Schema is an immutable tree describing the shape of a value: primitives
// (Null, Bool, Int, Float, String, Bytes, Date, DateTime), sequences (Array
// with list, tuple or set semantics), associative collections (Map for
// non-text keys, Object for text-keyed records with per-field presence
// tracking) and Union for mutually exclusive alternatives.
//
// Schemas are built programmatically via the factory constructors:
//
//	s := schema.Object(map[string]schema.Schema{
//	    "name": schema.String(),
//	    "tags": schema.Array(schema.String(), schema.List),
//	}, "tags")
//
// Merge combines two schemas into one that accepts every value either side
// accepts. Union construction keeps unions flat, deduplicated, numerically
// widened (Float absorbs Int) and canonically ordered, so Merge folds are
// independent of sample order.
//
// Equality is structural (Equal); the canonical text form (Repr) is a
// deterministic function of content used for union ordering, diagnostics and
// test assertions.
package schema
