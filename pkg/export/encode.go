package export

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/graft/pkg/schema"
)

// JSON renders the structural document as indented JSON.
func JSON(s schema.Schema) ([]byte, error) {
	return json.MarshalIndent(Document(s), "", "  ")
}

// YAML renders the structural document as YAML.
func YAML(s schema.Schema) ([]byte, error) {
	return yaml.Marshal(Document(s))
}
