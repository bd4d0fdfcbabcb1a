package gemini

// cleanSchema normalizes a JSON-Schema-shaped map into the subset the API
// accepts. Reference keywords ($schema, $ref, $defs, definitions) are removed
// at every depth, nested schema positions are cleaned recursively, and a
// schema that declares properties without a type is assigned "object".
// The input map is never mutated, and the function is idempotent.
func cleanSchema(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		switch key {
		case "$schema", "$ref", "$defs", "definitions":
			continue
		case "properties":
			if props, ok := value.(map[string]any); ok {
				cleaned := make(map[string]any, len(props))
				for name, prop := range props {
					cleaned[name] = cleanSchemaValue(prop)
				}
				out[key] = cleaned
				continue
			}
			out[key] = value
		case "items", "additionalProperties":
			out[key] = cleanSchemaValue(value)
		case "allOf", "anyOf", "oneOf":
			if list, ok := value.([]any); ok {
				cleaned := make([]any, len(list))
				for i, entry := range list {
					cleaned[i] = cleanSchemaValue(entry)
				}
				out[key] = cleaned
				continue
			}
			out[key] = value
		default:
			out[key] = value
		}
	}
	if _, hasProps := out["properties"]; hasProps {
		if _, hasType := out["type"]; !hasType {
			out["type"] = "object"
		}
	}
	return out
}

// cleanSchemaValue cleans a value that may or may not be a nested schema.
// Non-map values (e.g. a boolean additionalProperties, tuple-form items)
// pass through; map entries within tuple-form items are cleaned.
func cleanSchemaValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cleanSchema(v)
	case []any:
		cleaned := make([]any, len(v))
		for i, entry := range v {
			cleaned[i] = cleanSchemaValue(entry)
		}
		return cleaned
	default:
		return value
	}
}
