package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanSchemaStripsReferenceKeywords(t *testing.T) {
	in := map[string]any{
		"$schema": "https://json-schema.org/draft-07/schema#",
		"type":    "object",
		"$defs": map[string]any{
			"city": map[string]any{"type": "string"},
		},
		"definitions": map[string]any{
			"old": map[string]any{"type": "string"},
		},
		"properties": map[string]any{
			"location": map[string]any{
				"$ref":    "#/$defs/city",
				"$schema": "nested",
				"type":    "string",
			},
			"tags": map[string]any{
				"type": "array",
				"items": map[string]any{
					"$ref": "#/$defs/city",
					"type": "string",
				},
			},
		},
	}

	out := cleanSchema(in)

	assert.NotContains(t, out, "$schema")
	assert.NotContains(t, out, "$defs")
	assert.NotContains(t, out, "definitions")

	props := out["properties"].(map[string]any)
	location := props["location"].(map[string]any)
	assert.NotContains(t, location, "$ref")
	assert.NotContains(t, location, "$schema")
	assert.Equal(t, "string", location["type"])

	items := props["tags"].(map[string]any)["items"].(map[string]any)
	assert.NotContains(t, items, "$ref")
}

func TestCleanSchemaInjectsObjectType(t *testing.T) {
	out := cleanSchema(map[string]any{
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	})
	assert.Equal(t, "object", out["type"])
}

func TestCleanSchemaKeepsDeclaredType(t *testing.T) {
	out := cleanSchema(map[string]any{
		"type":       "array",
		"properties": map[string]any{},
	})
	assert.Equal(t, "array", out["type"])
}

func TestCleanSchemaIdempotent(t *testing.T) {
	in := map[string]any{
		"$schema": "draft",
		"type":    "object",
		"properties": map[string]any{
			"nested": map[string]any{
				"properties": map[string]any{
					"value": map[string]any{"$ref": "#/x", "type": "number"},
				},
			},
		},
		"anyOf": []any{
			map[string]any{"$ref": "#/a"},
			map[string]any{"type": "string"},
		},
	}

	once := cleanSchema(in)
	twice := cleanSchema(once)
	assert.Equal(t, once, twice)
}

func TestCleanSchemaDoesNotMutateInput(t *testing.T) {
	in := map[string]any{
		"$schema": "draft",
		"properties": map[string]any{
			"name": map[string]any{"$ref": "#/x", "type": "string"},
		},
	}

	_ = cleanSchema(in)

	require.Contains(t, in, "$schema")
	inner := in["properties"].(map[string]any)["name"].(map[string]any)
	assert.Contains(t, inner, "$ref")
}

func TestCleanSchemaNonMapPositionsPassThrough(t *testing.T) {
	out := cleanSchema(map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"items":                []any{map[string]any{"$ref": "#/x", "type": "string"}, true},
	})
	assert.Equal(t, false, out["additionalProperties"])
	tuple := out["items"].([]any)
	assert.NotContains(t, tuple[0].(map[string]any), "$ref")
	assert.Equal(t, true, tuple[1])
}
