package gemini

import (
	"github.com/shillcollin/genbridge/core"
)

const (
	mimeTypeText = "text/plain"
	mimeTypeJSON = "application/json"
)

// buildGenerationConfig assembles the per-request generation config. Scalar
// sampling parameters take the call-time value, else the model-level setting,
// else stay unset. A JSON response format without a schema downgrades to
// plain text with exactly one unsupported-feature warning.
func buildGenerationConfig(req core.Request, opts options) (*generationConfig, []core.Warning) {
	cfg := &generationConfig{
		Temperature:     pickFloat(req.Temperature, opts.temperature),
		TopP:            pickFloat(req.TopP, opts.topP),
		TopK:            pickInt(req.TopK, opts.topK),
		MaxOutputTokens: pickInt(req.MaxOutputTokens, opts.maxOutputTokens),
	}
	if len(req.StopSequences) > 0 {
		cfg.StopSequences = req.StopSequences
	} else if len(opts.stopSequences) > 0 {
		cfg.StopSequences = opts.stopSequences
	}

	var warnings []core.Warning
	switch {
	case req.ResponseFormat.Kind == core.ResponseFormatJSON && req.ResponseFormat.Schema != nil:
		cfg.ResponseMimeType = mimeTypeJSON
		cfg.ResponseSchema = req.ResponseFormat.Schema
	case req.ResponseFormat.Kind == core.ResponseFormatJSON:
		cfg.ResponseMimeType = mimeTypeText
		warnings = append(warnings, core.Warning{
			Type:    core.WarningUnsupportedFeature,
			Feature: "responseFormat",
			Message: "responseFormat json requires a schema; generating plain text output instead",
		})
	default:
		cfg.ResponseMimeType = mimeTypeText
	}

	if effective := mergeReasoning(opts.reasoning, req.Reasoning); !effective.IsZero() {
		cfg.ThinkingConfig = &thinkingConfig{
			ThinkingLevel:  string(effective.Level),
			ThinkingBudget: effective.Budget,
		}
		if effective.IncludeTraces != nil {
			cfg.ThinkingConfig.IncludeThoughts = *effective.IncludeTraces
		}
	}

	return cfg, warnings
}

// mergeReasoning combines model-level defaults with call-time overrides,
// override fields winning per field. An override level that does not parse is
// dropped from the override alone, so the default level survives rather than
// the whole block being discarded. A fully empty merge yields nil.
func mergeReasoning(defaults, override *core.ReasoningConfig) *core.ReasoningConfig {
	defaults = sanitizeReasoning(defaults)
	override = sanitizeReasoning(override)
	if defaults.IsZero() && override.IsZero() {
		return nil
	}

	merged := &core.ReasoningConfig{}
	if defaults != nil {
		merged = defaults.Clone()
	}
	if override != nil {
		if override.Level != "" {
			merged.Level = override.Level
		}
		if override.Budget != nil {
			merged.Budget = override.Budget
		}
		if override.IncludeTraces != nil {
			merged.IncludeTraces = override.IncludeTraces
		}
	}
	if merged.IsZero() {
		return nil
	}
	return merged
}

// sanitizeReasoning validates the level field, stripping unparseable values
// while keeping the rest of the config intact.
func sanitizeReasoning(cfg *core.ReasoningConfig) *core.ReasoningConfig {
	if cfg == nil || cfg.Level == "" {
		return cfg
	}
	clone := cfg.Clone()
	if level, ok := core.ParseReasoningLevel(string(cfg.Level)); ok {
		clone.Level = level
	} else {
		clone.Level = ""
	}
	return clone
}

func pickFloat(call, fallback *float64) *float64 {
	if call != nil {
		return call
	}
	return fallback
}

func pickInt(call, fallback *int) *int {
	if call != nil {
		return call
	}
	return fallback
}
