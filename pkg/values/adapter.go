package values

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Fields reads a struct (or pointer to struct) as a name→value mapping, so
// plain record types can participate in inference and object coercion without
// the caller flattening them by hand. Field names follow mapstructure rules:
// the exported Go name, or the `mapstructure` tag when present.
//
// The second return is false when the value is not an attribute bag. Dates
// and times are value kinds of their own and are never treated as bags.
func Fields(value any) (map[string]any, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	switch rv.Interface().(type) {
	case time.Time, Date:
		return nil, false
	}

	out := make(map[string]any, rv.NumField())
	if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
		return nil, false
	}
	return out, true
}
