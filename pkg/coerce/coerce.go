package coerce

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/graft/pkg/schema"
	"github.com/aretw0/graft/pkg/values"
)

// Coerce attempts to convert value into a form conforming to the target
// schema. Unmatched cases fail with a typed error rather than approximating.
// Integral results are normalized to int64 and floating results to float64.
func Coerce(value any, target schema.Schema) (any, error) {
	switch t := target.(type) {
	case schema.NullSchema:
		if value == nil {
			return nil, nil
		}
		return nil, &ConversionError{Target: t, Value: value, Reason: "non-null value"}
	case schema.BoolSchema:
		return coerceBool(value, t)
	case schema.IntSchema:
		return coerceInt(value, t)
	case schema.FloatSchema:
		return coerceFloat(value, t)
	case schema.StringSchema:
		// Nil passes through unchanged; nullability is the caller's concern.
		if value == nil {
			return nil, nil
		}
		return fmt.Sprintf("%v", value), nil
	case schema.DateSchema:
		switch value.(type) {
		case values.Date:
			return value, nil
		case time.Time:
			return nil, &ConversionError{Target: t, Value: value, Reason: "value carries a time component"}
		}
		return nil, &ConversionError{Target: t, Value: value, Reason: "not a date"}
	case schema.DateTimeSchema:
		if _, ok := value.(time.Time); ok {
			return value, nil
		}
		return nil, &ConversionError{Target: t, Value: value, Reason: "not a datetime"}
	case schema.ArraySchema:
		return coerceArray(value, t)
	case schema.ObjectSchema:
		return coerceObject(value, t)
	case schema.UnionSchema:
		return coerceUnion(value, t)
	}
	// Bytes and Map have no bespoke rule: identity passthrough.
	return value, nil
}

func coerceBool(value any, t schema.BoolSchema) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "t", "1", "yes", "y":
			return true, nil
		case "false", "f", "0", "no", "n":
			return false, nil
		}
		return nil, &ConversionError{Target: t, Value: value, Reason: "unrecognized boolean text"}
	}
	if f, ok := asFloat(value); ok {
		return f != 0, nil
	}
	return nil, &ConversionError{Target: t, Value: value, Reason: "not a boolean"}
}

func coerceInt(value any, t schema.IntSchema) (any, error) {
	// Bools are structurally numeric in some hosts; never accept them here.
	if _, ok := value.(bool); ok {
		return nil, &ConversionError{Target: t, Value: value, Reason: "bool is not accepted as int"}
	}
	if i, ok := asInt(value); ok {
		return i, nil
	}
	switch v := value.(type) {
	case float32, float64:
		f, _ := asFloat(v)
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f), nil
		}
		return nil, &ConversionError{Target: t, Value: value, Reason: "non-zero fractional part"}
	case string:
		s := strings.TrimSpace(v)
		if isDigitRun(s) {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return i, nil
			}
		}
		return nil, &ConversionError{Target: t, Value: value, Reason: "not an integer literal"}
	}
	return nil, &ConversionError{Target: t, Value: value, Reason: "not a number"}
}

func coerceFloat(value any, t schema.FloatSchema) (any, error) {
	if _, ok := value.(bool); ok {
		return nil, &ConversionError{Target: t, Value: value, Reason: "bool is not accepted as float"}
	}
	if f, ok := asFloat(value); ok {
		return f, nil
	}
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, nil
		}
		return nil, &ConversionError{Target: t, Value: value, Reason: "not a finite number literal"}
	}
	return nil, &ConversionError{Target: t, Value: value, Reason: "not a number"}
}

func coerceArray(value any, t schema.ArraySchema) (any, error) {
	elems, ok := sequenceElems(value, t.ArrayKind)
	if !ok {
		return nil, &ShapeError{Target: t, Value: value}
	}
	out := make([]any, len(elems))
	for i, el := range elems {
		c, err := Coerce(el, t.Item)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	switch t.ArrayKind {
	case schema.Tuple:
		return values.Tuple(out), nil
	case schema.Set:
		set := make(values.Set, len(out))
		for _, m := range out {
			if m != nil && !reflect.ValueOf(m).Comparable() {
				return nil, &ShapeError{Target: t, Value: m}
			}
			set[m] = struct{}{}
		}
		return set, nil
	}
	return out, nil
}

// sequenceElems extracts the elements of a sequence value if its shape is
// compatible with the array kind: list accepts list-like input only, tuple
// additionally accepts fixed sequences, set accepts all three.
func sequenceElems(value any, kind schema.ArrayKind) ([]any, bool) {
	switch v := value.(type) {
	case values.Tuple:
		if kind == schema.List {
			return nil, false
		}
		return v, true
	case values.Set:
		if kind != schema.Set {
			return nil, false
		}
		return v.Members(), true
	case []byte, string:
		// Blobs and text are scalars here, not element sequences.
		return nil, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		return reflectElems(rv), true
	case reflect.Array:
		if kind == schema.List {
			return nil, false
		}
		return reflectElems(rv), true
	case reflect.Map:
		if kind == schema.Set && rv.Type().Elem() == reflect.TypeOf(struct{}{}) {
			keys := make([]any, 0, rv.Len())
			for it := rv.MapRange(); it.Next(); {
				keys = append(keys, it.Key().Interface())
			}
			return keys, true
		}
	}
	return nil, false
}

func reflectElems(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func coerceObject(value any, t schema.ObjectSchema) (any, error) {
	fields, ok := mappingFields(value)
	if !ok {
		return nil, &ShapeError{Target: t, Value: value}
	}

	// Deterministic traversal so the same input always reports the same
	// missing field first.
	names := make([]string, 0, len(t.Properties))
	for name := range t.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]any, len(names))
	for _, name := range names {
		v, present := fields[name]
		switch {
		case present && v != nil:
			c, err := Coerce(v, t.Properties[name])
			if err != nil {
				return nil, err
			}
			out[name] = c
		default:
			if _, opt := t.Optional[name]; !opt {
				return nil, &MissingFieldError{Field: name}
			}
			out[name] = nil
		}
	}
	return out, nil
}

// mappingFields reads the input as a name→value mapping: directly for
// text-keyed maps (non-text keys are ignored; they can never match a declared
// property), via the attribute-bag adapter for structs.
func mappingFields(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Map {
		out := make(map[string]any, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			k := it.Key()
			if k.Kind() == reflect.Interface {
				k = k.Elem()
			}
			if k.Kind() == reflect.String {
				out[k.String()] = it.Value().Interface()
			}
		}
		return out, true
	}
	return values.Fields(value)
}

func coerceUnion(value any, t schema.UnionSchema) (any, error) {
	// Variants are tried in the union's fixed canonical order; the first
	// success wins and the last failure is kept for the report.
	var last error
	for _, variant := range t.Variants {
		out, err := Coerce(value, variant)
		if err == nil {
			return out, nil
		}
		last = err
	}
	return nil, &UnionError{Target: t, Last: last}
}

func asInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	}
	return 0, false
}

func asFloat(value any) (float64, bool) {
	if i, ok := asInt(value); ok {
		return float64(i), true
	}
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func isDigitRun(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
