package schema

// Equal reports whether two schemas are structurally equal. Equality is by
// content only: two independently built trees with the same shape are equal.
func Equal(a, b Schema) bool {
	switch x := a.(type) {
	case NullSchema:
		_, ok := b.(NullSchema)
		return ok
	case BoolSchema:
		_, ok := b.(BoolSchema)
		return ok
	case IntSchema:
		_, ok := b.(IntSchema)
		return ok
	case FloatSchema:
		_, ok := b.(FloatSchema)
		return ok
	case StringSchema:
		_, ok := b.(StringSchema)
		return ok
	case BytesSchema:
		_, ok := b.(BytesSchema)
		return ok
	case DateSchema:
		_, ok := b.(DateSchema)
		return ok
	case DateTimeSchema:
		_, ok := b.(DateTimeSchema)
		return ok
	case ArraySchema:
		y, ok := b.(ArraySchema)
		return ok && x.ArrayKind == y.ArrayKind && Equal(x.Item, y.Item)
	case MapSchema:
		y, ok := b.(MapSchema)
		return ok && Equal(x.Key, y.Key) && Equal(x.Value, y.Value)
	case ObjectSchema:
		y, ok := b.(ObjectSchema)
		return ok && equalObjects(x, y)
	case UnionSchema:
		y, ok := b.(UnionSchema)
		if !ok || len(x.Variants) != len(y.Variants) {
			return false
		}
		// Union variants are canonically ordered, so pairwise comparison
		// suffices.
		for i := range x.Variants {
			if !Equal(x.Variants[i], y.Variants[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalObjects(x, y ObjectSchema) bool {
	if len(x.Properties) != len(y.Properties) || len(x.Optional) != len(y.Optional) {
		return false
	}
	for k, xs := range x.Properties {
		ys, ok := y.Properties[k]
		if !ok || !Equal(xs, ys) {
			return false
		}
	}
	for k := range x.Optional {
		if _, ok := y.Optional[k]; !ok {
			return false
		}
	}
	return true
}
