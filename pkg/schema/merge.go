package schema

// Merge combines two schemas into one that accepts every value either side
// accepts. Merging is idempotent and, because union construction is
// order-independent, commutative up to canonical form. Both inputs are left
// untouched; the result is an independently valid tree.
//
// Structurally equal inputs merge to themselves. Arrays of the same kind
// merge item-wise; arrays of different kinds are genuinely different shapes
// and fall through to a union. Maps merge key- and value-wise. Objects merge
// property-wise with monotonic optionality: a key seen on only one side
// becomes optional, and a key optional in either input stays optional.
// Every other pairing forms a union.
func Merge(a, b Schema) Schema {
	if Equal(a, b) {
		return a
	}
	switch x := a.(type) {
	case ArraySchema:
		if y, ok := b.(ArraySchema); ok && x.ArrayKind == y.ArrayKind {
			return ArraySchema{Item: Merge(x.Item, y.Item), ArrayKind: x.ArrayKind}
		}
	case MapSchema:
		if y, ok := b.(MapSchema); ok {
			return MapSchema{Key: Merge(x.Key, y.Key), Value: Merge(x.Value, y.Value)}
		}
	case ObjectSchema:
		if y, ok := b.(ObjectSchema); ok {
			return mergeObjects(x, y)
		}
	}
	return Union(a, b)
}

func mergeObjects(x, y ObjectSchema) Schema {
	props := make(map[string]Schema, len(x.Properties)+len(y.Properties))
	optional := make(map[string]struct{})

	for k, xs := range x.Properties {
		if ys, ok := y.Properties[k]; ok {
			props[k] = Merge(xs, ys)
		} else {
			props[k] = xs
			optional[k] = struct{}{}
		}
	}
	for k, ys := range y.Properties {
		if _, ok := x.Properties[k]; !ok {
			props[k] = ys
			optional[k] = struct{}{}
		}
	}

	// Optionality is monotonic: once a field is optional it stays optional.
	for k := range x.Optional {
		optional[k] = struct{}{}
	}
	for k := range y.Optional {
		optional[k] = struct{}{}
	}

	return ObjectSchema{Properties: props, Optional: optional}
}
