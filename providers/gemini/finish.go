package gemini

import "github.com/shillcollin/genbridge/core"

var finishReasonTable = map[string]core.FinishReasonKind{
	"STOP":       core.FinishStop,
	"MAX_TOKENS": core.FinishLength,
	"SAFETY":     core.FinishContentFilter,
	"RECITATION": core.FinishContentFilter,
	"OTHER":      core.FinishOther,
}

// mapFinishReason maps the backend completion signal into the uniform
// taxonomy, keeping the raw value for diagnostics. When any tool call was
// produced during the response, the unified reason is forced to tool-calls
// regardless of the backend's own signal.
func mapFinishReason(raw string, hasToolCalls bool) core.FinishReason {
	if hasToolCalls {
		return core.FinishReason{Unified: core.FinishToolCalls, Raw: raw}
	}
	if kind, ok := finishReasonTable[raw]; ok {
		return core.FinishReason{Unified: kind, Raw: raw}
	}
	return core.FinishReason{Unified: core.FinishOther, Raw: raw}
}

// mapUsage converts reported token counts. Absent metadata or absent fields
// stay nil, meaning unknown rather than zero.
func mapUsage(meta *usageMetadata) core.Usage {
	if meta == nil {
		return core.Usage{}
	}
	return core.Usage{
		InputTokens:       meta.PromptTokenCount,
		OutputTokens:      meta.CandidatesTokenCount,
		TotalTokens:       meta.TotalTokenCount,
		ReasoningTokens:   meta.ThoughtsTokenCount,
		CachedInputTokens: meta.CachedContentTokenCount,
	}
}
