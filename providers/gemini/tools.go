package gemini

import (
	"fmt"

	"github.com/shillcollin/genbridge/core"
	"github.com/shillcollin/genbridge/schema"
)

// schemaSource classifies what kind of parameter declaration a tool carries.
type schemaSource int

const (
	// schemaSourceJSON marks a map already shaped like a JSON Schema.
	schemaSourceJSON schemaSource = iota
	// schemaSourceBuilder marks a *schema.Schema builder value.
	schemaSourceBuilder
	// schemaSourceUnknown marks anything else; callers fall back to a
	// permissive object schema with a warning.
	schemaSourceUnknown
)

// classifySchemaSource inspects a tool's Parameters value. A map counts as
// JSON-Schema-shaped when it carries a type, properties, or $schema marker.
func classifySchemaSource(v any) schemaSource {
	switch value := v.(type) {
	case *schema.Schema:
		if value != nil {
			return schemaSourceBuilder
		}
		return schemaSourceUnknown
	case map[string]any:
		if _, ok := value["type"]; ok {
			return schemaSourceJSON
		}
		if _, ok := value["properties"]; ok {
			return schemaSourceJSON
		}
		if _, ok := value["$schema"]; ok {
			return schemaSourceJSON
		}
		return schemaSourceUnknown
	default:
		return schemaSourceUnknown
	}
}

// convertTools maps tool declarations into function declarations, cleaning
// each parameter schema. Unconvertible parameter values degrade to a bare
// object schema and surface a warning rather than failing the request.
func convertTools(tools []core.Tool) ([]tool, []core.Warning, error) {
	if len(tools) == 0 {
		return nil, nil, nil
	}
	decls := make([]functionDeclaration, 0, len(tools))
	var warnings []core.Warning
	for _, t := range tools {
		if t.Name == "" {
			return nil, nil, core.NewError(core.ErrMapping, "tool declaration missing name")
		}
		params, warning, err := toolParameters(t)
		if err != nil {
			return nil, nil, err
		}
		if warning != nil {
			warnings = append(warnings, *warning)
		}
		decls = append(decls, functionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  params,
		})
	}
	return []tool{{FunctionDeclarations: decls}}, warnings, nil
}

func toolParameters(t core.Tool) (map[string]any, *core.Warning, error) {
	switch classifySchemaSource(t.Parameters) {
	case schemaSourceJSON:
		return cleanSchema(t.Parameters.(map[string]any)), nil, nil
	case schemaSourceBuilder:
		m, err := t.Parameters.(*schema.Schema).Map()
		if err != nil {
			return nil, nil, core.NewError(core.ErrMapping,
				fmt.Sprintf("tool %s: convert parameter schema", t.Name),
				core.WithWrapped(err))
		}
		return cleanSchema(m), nil, nil
	default:
		if t.Parameters == nil {
			return map[string]any{"type": "object"}, nil, nil
		}
		return map[string]any{"type": "object"}, &core.Warning{
			Type:    core.WarningSchemaFallback,
			Feature: "tool." + t.Name,
			Message: fmt.Sprintf("tool %s: unrecognized parameter schema %T, using permissive object schema", t.Name, t.Parameters),
		}, nil
	}
}

// convertToolChoice maps the uniform tool-choice directive onto the function
// calling config. An unspecified choice emits no config so the backend
// default applies.
func convertToolChoice(choice core.ToolChoice) *toolConfig {
	var cfg *functionCallingConfig
	switch choice.Mode {
	case core.ToolChoiceModeAuto:
		cfg = &functionCallingConfig{Mode: modeAuto}
	case core.ToolChoiceModeNone:
		cfg = &functionCallingConfig{Mode: modeNone}
	case core.ToolChoiceModeRequired:
		cfg = &functionCallingConfig{Mode: modeAny}
	case core.ToolChoiceModeTool:
		cfg = &functionCallingConfig{Mode: modeAny, AllowedFunctionNames: []string{choice.Name}}
	default:
		return nil
	}
	return &toolConfig{FunctionCallingConfig: cfg}
}
