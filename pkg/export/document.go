package export

import (
	"sort"

	"github.com/aretw0/graft/pkg/schema"
)

// Document maps a schema to its structural document form, one entry shape per
// variant. Object required lists render in sorted order for determinism.
func Document(s schema.Schema) map[string]any {
	switch t := s.(type) {
	case schema.NullSchema:
		return map[string]any{"type": "null"}
	case schema.BoolSchema:
		return map[string]any{"type": "boolean"}
	case schema.IntSchema:
		return map[string]any{"type": "integer"}
	case schema.FloatSchema:
		return map[string]any{"type": "number"}
	case schema.StringSchema:
		return map[string]any{"type": "string"}
	case schema.BytesSchema:
		return map[string]any{"type": "string", "contentEncoding": "base64"}
	case schema.DateSchema:
		return map[string]any{"type": "string", "format": "date"}
	case schema.DateTimeSchema:
		return map[string]any{"type": "string", "format": "date-time"}
	case schema.ArraySchema:
		doc := map[string]any{"type": "array", "items": Document(t.Item)}
		if t.ArrayKind == schema.Set {
			doc["uniqueItems"] = true
		}
		return doc
	case schema.MapSchema:
		// The key schema has no document counterpart and is not exported.
		return map[string]any{
			"type":                 "object",
			"additionalProperties": Document(t.Value),
		}
	case schema.ObjectSchema:
		props := make(map[string]any, len(t.Properties))
		required := make([]string, 0, len(t.Properties))
		for name, prop := range t.Properties {
			props[name] = Document(prop)
			if _, opt := t.Optional[name]; !opt {
				required = append(required, name)
			}
		}
		sort.Strings(required)
		return map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		}
	case schema.UnionSchema:
		anyOf := make([]any, len(t.Variants))
		for i, v := range t.Variants {
			anyOf[i] = Document(v)
		}
		return map[string]any{"anyOf": anyOf}
	}
	return map[string]any{}
}
