package export_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/graft/pkg/export"
	"github.com/aretw0/graft/pkg/schema"
)

func TestDocument_Primitives(t *testing.T) {
	tests := []struct {
		s    schema.Schema
		want map[string]any
	}{
		{schema.Null(), map[string]any{"type": "null"}},
		{schema.Bool(), map[string]any{"type": "boolean"}},
		{schema.Int(), map[string]any{"type": "integer"}},
		{schema.Float(), map[string]any{"type": "number"}},
		{schema.String(), map[string]any{"type": "string"}},
		{schema.Bytes(), map[string]any{"type": "string", "contentEncoding": "base64"}},
		{schema.Date(), map[string]any{"type": "string", "format": "date"}},
		{schema.DateTime(), map[string]any{"type": "string", "format": "date-time"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, export.Document(tt.s), "Document(%s)", tt.s.Repr())
	}
}

func TestDocument_Containers(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		doc := export.Document(schema.Array(schema.Int(), schema.List))
		assert.Equal(t, map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "integer"},
		}, doc)
	})

	t.Run("Set Adds UniqueItems", func(t *testing.T) {
		doc := export.Document(schema.Array(schema.Int(), schema.Set))
		assert.Equal(t, true, doc["uniqueItems"])
	})

	t.Run("Map Exports Value Schema Only", func(t *testing.T) {
		doc := export.Document(schema.MapOf(schema.Int(), schema.String()))
		assert.Equal(t, map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		}, doc)
	})

	t.Run("Object", func(t *testing.T) {
		doc := export.Document(schema.Object(map[string]schema.Schema{
			"b": schema.String(),
			"a": schema.Int(),
		}, "b"))
		assert.Equal(t, map[string]any{
			"type": "object",
			"properties": map[string]any{
				"a": map[string]any{"type": "integer"},
				"b": map[string]any{"type": "string"},
			},
			"required":             []string{"a"},
			"additionalProperties": false,
		}, doc)
	})

	t.Run("Union", func(t *testing.T) {
		doc := export.Document(schema.Union(schema.Int(), schema.String()))
		assert.Equal(t, map[string]any{
			"anyOf": []any{
				map[string]any{"type": "integer"},
				map[string]any{"type": "string"},
			},
		}, doc)
	})
}

func TestJSON(t *testing.T) {
	out, err := export.JSON(schema.Object(map[string]schema.Schema{"a": schema.Int()}))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])
}

func TestYAML(t *testing.T) {
	out, err := export.YAML(schema.Array(schema.Float(), schema.Set))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "array", doc["type"])
	assert.Equal(t, true, doc["uniqueItems"])
}
