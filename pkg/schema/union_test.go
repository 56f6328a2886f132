package schema

import "testing"

func TestUnion_Normalization(t *testing.T) {
	tests := []struct {
		in   []Schema
		want string
		desc string
	}{
		{[]Schema{Int(), String()}, "Int | String", "two primitives"},
		{[]Schema{String(), Int()}, "Int | String", "sorted regardless of input order"},
		{[]Schema{Int(), Int()}, "Int", "duplicates collapse to the schema itself"},
		{[]Schema{Int()}, "Int", "singleton has no wrapper"},
		{[]Schema{Int(), Float()}, "Float", "float absorbs int"},
		{[]Schema{Int(), Float(), String()}, "Float | String", "widening inside a larger union"},
		{[]Schema{Union(Int(), String()), Bool()}, "Bool | Int | String", "nested union flattens"},
		{[]Schema{Union(Int(), String()), Union(String(), Null())}, "Int | Null | String", "flatten then dedup"},
		{[]Schema{Union(Int(), String()), Float()}, "Float | String", "widening applies after flattening"},
		{
			[]Schema{Array(Int(), List), Array(Int(), Set)},
			"List[Int] | Set[Int]",
			"array kinds stay distinct",
		},
		{nil, "Null", "empty input degrades to null"},
	}

	for _, tt := range tests {
		got := Union(tt.in...)
		if got.Repr() != tt.want {
			t.Errorf("%s: Union(...) = %q, want %q", tt.desc, got.Repr(), tt.want)
		}
	}
}

func TestUnion_Invariants(t *testing.T) {
	u := Union(String(), Union(Int(), Union(Bool(), Null())), Int(), Bool())

	union, ok := u.(UnionSchema)
	if !ok {
		t.Fatalf("expected a union, got %s", u.Repr())
	}
	if len(union.Variants) < 2 {
		t.Fatalf("union must hold at least two variants, got %d", len(union.Variants))
	}
	for i, v := range union.Variants {
		if _, nested := v.(UnionSchema); nested {
			t.Errorf("variant %d is a nested union", i)
		}
		for j, w := range union.Variants {
			if i != j && Equal(v, w) {
				t.Errorf("variants %d and %d are structural duplicates", i, j)
			}
		}
	}
	for i := 1; i < len(union.Variants); i++ {
		if union.Variants[i-1].Repr() >= union.Variants[i].Repr() {
			t.Errorf("variants not in canonical order at %d: %q >= %q",
				i, union.Variants[i-1].Repr(), union.Variants[i].Repr())
		}
	}
}
