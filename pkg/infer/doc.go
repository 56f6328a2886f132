// Package infer classifies runtime values into schemas and folds sample
// sequences into a single schema describing the union of observed shapes.
//
// Classification follows a fixed precedence: nil, bool (before the numeric
// kinds, because several host representations treat booleans as integers),
// integers, floats, strings, byte slices, date/time kinds (DateTime before
// Date), text-keyed mappings (Object), other mappings (Map), sequences
// (Array with list/tuple/set kind), attribute bags via the adapter, and a
// final degradation to String. Inference never fails.
//
//	s := infer.Deduce([]any{
//	    map[string]any{"a": 1},
//	    map[string]any{"b": 2},
//	})
//	// s.Repr() == "{a?: Int, b?: Int}"
package infer
