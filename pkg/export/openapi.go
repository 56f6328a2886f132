package export

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/aretw0/graft/pkg/schema"
)

// OpenAPI mirrors the structural document as a kin-openapi schema object,
// suitable for embedding in an OpenAPI document or handing to a validator.
// Bytes render as a string with "byte" format, the OpenAPI convention for
// base64 content.
func OpenAPI(s schema.Schema) *openapi3.Schema {
	switch t := s.(type) {
	case schema.NullSchema:
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNull}}
	case schema.BoolSchema:
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeBoolean}}
	case schema.IntSchema:
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeInteger}}
	case schema.FloatSchema:
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}
	case schema.StringSchema:
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}
	case schema.BytesSchema:
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Format: "byte"}
	case schema.DateSchema:
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Format: "date"}
	case schema.DateTimeSchema:
		return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Format: "date-time"}
	case schema.ArraySchema:
		out := &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: openapi3.NewSchemaRef("", OpenAPI(t.Item)),
		}
		if t.ArrayKind == schema.Set {
			out.UniqueItems = true
		}
		return out
	case schema.MapSchema:
		return &openapi3.Schema{
			Type: &openapi3.Types{openapi3.TypeObject},
			AdditionalProperties: openapi3.AdditionalProperties{
				Schema: openapi3.NewSchemaRef("", OpenAPI(t.Value)),
			},
		}
	case schema.ObjectSchema:
		props := make(openapi3.Schemas, len(t.Properties))
		required := make([]string, 0, len(t.Properties))
		for name, prop := range t.Properties {
			props[name] = openapi3.NewSchemaRef("", OpenAPI(prop))
			if _, opt := t.Optional[name]; !opt {
				required = append(required, name)
			}
		}
		sort.Strings(required)
		return &openapi3.Schema{
			Type:                 &openapi3.Types{openapi3.TypeObject},
			Properties:           props,
			Required:             required,
			AdditionalProperties: openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)},
		}
	case schema.UnionSchema:
		anyOf := make(openapi3.SchemaRefs, len(t.Variants))
		for i, v := range t.Variants {
			anyOf[i] = openapi3.NewSchemaRef("", OpenAPI(v))
		}
		return &openapi3.Schema{AnyOf: anyOf}
	}
	return &openapi3.Schema{}
}
