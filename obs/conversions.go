package obs

import "github.com/shillcollin/genbridge/core"

// UsageFromCore projects core token usage into the metrics representation.
// Unknown counts become zero and are skipped by the recorder.
func UsageFromCore(usage core.Usage) UsageTokens {
	return UsageTokens{
		InputTokens:     deref(usage.InputTokens),
		OutputTokens:    deref(usage.OutputTokens),
		TotalTokens:     deref(usage.TotalTokens),
		ReasoningTokens: deref(usage.ReasoningTokens),
		CachedTokens:    deref(usage.CachedInputTokens),
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
