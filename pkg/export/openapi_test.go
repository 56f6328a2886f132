package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/graft/pkg/export"
	"github.com/aretw0/graft/pkg/schema"
)

func TestOpenAPI_Primitives(t *testing.T) {
	assert.True(t, export.OpenAPI(schema.Bool()).Type.Is("boolean"))
	assert.True(t, export.OpenAPI(schema.Int()).Type.Is("integer"))
	assert.True(t, export.OpenAPI(schema.Float()).Type.Is("number"))
	assert.True(t, export.OpenAPI(schema.Null()).Type.Is("null"))

	bytes := export.OpenAPI(schema.Bytes())
	assert.True(t, bytes.Type.Is("string"))
	assert.Equal(t, "byte", bytes.Format)

	assert.Equal(t, "date", export.OpenAPI(schema.Date()).Format)
	assert.Equal(t, "date-time", export.OpenAPI(schema.DateTime()).Format)
}

func TestOpenAPI_Containers(t *testing.T) {
	t.Run("Array", func(t *testing.T) {
		s := export.OpenAPI(schema.Array(schema.Int(), schema.Set))
		require.NotNil(t, s.Items)
		assert.True(t, s.Type.Is("array"))
		assert.True(t, s.Items.Value.Type.Is("integer"))
		assert.True(t, s.UniqueItems)
	})

	t.Run("Map", func(t *testing.T) {
		s := export.OpenAPI(schema.MapOf(schema.Int(), schema.String()))
		require.NotNil(t, s.AdditionalProperties.Schema)
		assert.True(t, s.AdditionalProperties.Schema.Value.Type.Is("string"))
	})

	t.Run("Object", func(t *testing.T) {
		s := export.OpenAPI(schema.Object(map[string]schema.Schema{
			"a": schema.Int(),
			"b": schema.String(),
		}, "b"))
		assert.True(t, s.Type.Is("object"))
		assert.Equal(t, []string{"a"}, s.Required)
		require.Contains(t, s.Properties, "a")
		require.Contains(t, s.Properties, "b")
		require.NotNil(t, s.AdditionalProperties.Has)
		assert.False(t, *s.AdditionalProperties.Has)
	})

	t.Run("Union", func(t *testing.T) {
		s := export.OpenAPI(schema.Union(schema.Int(), schema.String()))
		require.Len(t, s.AnyOf, 2)
		assert.True(t, s.AnyOf[0].Value.Type.Is("integer"))
		assert.True(t, s.AnyOf[1].Value.Type.Is("string"))
	})
}
