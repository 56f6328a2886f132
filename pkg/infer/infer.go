package infer

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/pkg/schema"
	"github.com/aretw0/graft/pkg/values"
)

// Engine classifies runtime values into schemas. The zero-config engine is
// ready to use; options customize logging and the attribute-bag adapter.
// Engines are stateless and safe for concurrent use.
type Engine struct {
	logger  *slog.Logger
	adapter AdapterFunc
}

// New initializes an inference Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:  logging.NewNop(),
		adapter: values.Fields,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Infer classifies a single value using a default engine.
func Infer(value any) schema.Schema { return defaultEngine.Infer(value) }

// Deduce infers a schema from a sequence of samples using a default engine.
func Deduce(samples []any) schema.Schema { return defaultEngine.Deduce(samples) }

// Deduce infers each sample independently and folds the results with Merge.
// An empty sample sequence, or one where every sample infers to Null, yields
// Null. Union construction is order-independent, so the result does not
// depend on fold order.
func (e *Engine) Deduce(samples []any) schema.Schema {
	if len(samples) == 0 {
		return schema.Null()
	}
	var merged schema.Schema
	allNull := true
	for _, v := range samples {
		s := e.Infer(v)
		if _, ok := s.(schema.NullSchema); !ok {
			allNull = false
		}
		if merged == nil {
			merged = s
		} else {
			merged = schema.Merge(merged, s)
		}
	}
	if allNull {
		return schema.Null()
	}
	e.logger.Debug("deduced schema", "samples", len(samples), "schema", merged.Repr())
	return merged
}

// Infer classifies one value. It never fails: value kinds outside the
// recognized set degrade to String.
func (e *Engine) Infer(value any) schema.Schema {
	switch v := value.(type) {
	case nil:
		return schema.Null()
	case bool:
		// Before the numeric kinds: a bool is not an Int here even though
		// some host representations conflate them.
		return schema.Bool()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return schema.Int()
	case float32, float64:
		return schema.Float()
	case string:
		return schema.String()
	case []byte:
		return schema.Bytes()
	case time.Time:
		return schema.DateTime()
	case values.Date:
		// After time.Time: Date only matches values that carry no clock.
		return schema.Date()
	case values.Tuple:
		return e.inferItems(v, schema.Tuple)
	case values.Set:
		return e.inferItems(v.Members(), schema.Set)
	case map[string]any:
		return e.inferObject(v)
	case []any:
		return e.inferItems(v, schema.List)
	}
	return e.inferReflect(value)
}

// inferReflect handles named types and containers that did not match the
// direct cases: named primitives, typed maps and slices, arrays, structs.
func (e *Engine) inferReflect(value any) schema.Schema {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return schema.Null()
		}
		return e.Infer(rv.Elem().Interface())
	case reflect.Bool:
		return schema.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return schema.Int()
	case reflect.Float32, reflect.Float64:
		return schema.Float()
	case reflect.String:
		return schema.String()
	case reflect.Map:
		return e.inferMapping(rv)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return schema.Bytes()
		}
		return e.inferItems(sliceElems(rv), schema.List)
	case reflect.Array:
		// Go arrays are fixed-shape sequences.
		return e.inferItems(sliceElems(rv), schema.Tuple)
	}

	if fields, ok := e.adapter(value); ok {
		return e.inferObject(fields)
	}

	e.logger.Debug("unrecognized value kind; degrading to string", "type", fmt.Sprintf("%T", value))
	return schema.String()
}

// inferObject builds an Object schema from a name→value mapping. Keys bound
// to nil get a Null field schema and are marked optional.
func (e *Engine) inferObject(fields map[string]any) schema.Schema {
	props := make(map[string]schema.Schema, len(fields))
	optional := make([]string, 0)
	for k, v := range fields {
		if v == nil {
			props[k] = schema.Null()
			optional = append(optional, k)
		} else {
			props[k] = e.Infer(v)
		}
	}
	return schema.Object(props, optional...)
}

// inferItems folds the item schemas of a sequence. An empty sequence yields
// Null as the item placeholder.
func (e *Engine) inferItems(items []any, kind schema.ArrayKind) schema.Schema {
	var item schema.Schema
	for _, el := range items {
		s := e.Infer(el)
		if item == nil {
			item = s
		} else {
			item = schema.Merge(item, s)
		}
	}
	if item == nil {
		item = schema.Null()
	}
	return schema.Array(item, kind)
}

var emptyStruct = reflect.TypeOf(struct{}{})

// inferMapping classifies a reflected map value. Maps with a struct{} element
// type are sets of their keys. Maps whose keys are all text are Objects
// (vacuously so when the key type is unconstrained and the map is empty);
// everything else is a Map folding key and value schemas, with Map(String,
// Null) as the placeholder for an empty collection.
func (e *Engine) inferMapping(rv reflect.Value) schema.Schema {
	if rv.Type().Elem() == emptyStruct {
		keys := make([]any, 0, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			keys = append(keys, it.Key().Interface())
		}
		return e.inferItems(keys, schema.Set)
	}

	type pair struct{ key, value any }
	pairs := make([]pair, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		pairs = append(pairs, pair{it.Key().Interface(), it.Value().Interface()})
	}

	textKeyed := rv.Type().Key().Kind() == reflect.String
	if rv.Type().Key().Kind() == reflect.Interface {
		textKeyed = true
		for _, p := range pairs {
			if _, ok := p.key.(string); !ok {
				textKeyed = false
				break
			}
		}
	}

	if textKeyed {
		fields := make(map[string]any, len(pairs))
		for _, p := range pairs {
			fields[reflect.ValueOf(p.key).String()] = p.value
		}
		return e.inferObject(fields)
	}

	if len(pairs) == 0 {
		return schema.MapOf(schema.String(), schema.Null())
	}
	var keySchema, valueSchema schema.Schema
	for _, p := range pairs {
		ks, vs := e.Infer(p.key), e.Infer(p.value)
		if keySchema == nil {
			keySchema, valueSchema = ks, vs
		} else {
			keySchema = schema.Merge(keySchema, ks)
			valueSchema = schema.Merge(valueSchema, vs)
		}
	}
	return schema.MapOf(keySchema, valueSchema)
}

func sliceElems(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
