package schema

import "sort"

// Union builds the sum of the given schemas. Construction normalizes the
// result so that a union behaves as a true set, independent of the order in
// which its members were accumulated:
//
//  1. inputs that are themselves unions are flattened, depth-first;
//  2. structural duplicates collapse to one;
//  3. if both Int and Float remain, Int is dropped (Float absorbs it);
//  4. a single remaining schema is returned directly, without a wrapper;
//  5. otherwise the variants are sorted by canonical repr.
//
// With no arguments Union returns Null.
func Union(schemas ...Schema) Schema {
	var flat []Schema
	for _, s := range schemas {
		flat = flatten(s, flat)
	}

	var uniq []Schema
	for _, s := range flat {
		dup := false
		for _, u := range uniq {
			if Equal(u, s) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, s)
		}
	}

	uniq = widen(uniq)

	switch len(uniq) {
	case 0:
		return Null()
	case 1:
		return uniq[0]
	}

	sort.Slice(uniq, func(i, j int) bool {
		return uniq[i].Repr() < uniq[j].Repr()
	})
	return UnionSchema{Variants: uniq}
}

func flatten(s Schema, acc []Schema) []Schema {
	if u, ok := s.(UnionSchema); ok {
		for _, v := range u.Variants {
			acc = flatten(v, acc)
		}
		return acc
	}
	return append(acc, s)
}

// widen drops Int when Float is present among the variants.
func widen(schemas []Schema) []Schema {
	hasInt, hasFloat := false, false
	for _, s := range schemas {
		switch s.(type) {
		case IntSchema:
			hasInt = true
		case FloatSchema:
			hasFloat = true
		}
	}
	if !hasInt || !hasFloat {
		return schemas
	}
	out := schemas[:0]
	for _, s := range schemas {
		if _, ok := s.(IntSchema); ok {
			continue
		}
		out = append(out, s)
	}
	return out
}
