package core

// Usage captures token accounting returned by providers. Fields are pointers
// because backends frequently omit counts; a nil field means "unknown", which
// is deliberately distinct from an explicit zero.
type Usage struct {
	InputTokens       *int `json:"input_tokens,omitempty"`
	OutputTokens      *int `json:"output_tokens,omitempty"`
	TotalTokens       *int `json:"total_tokens,omitempty"`
	ReasoningTokens   *int `json:"reasoning_tokens,omitempty"`
	CachedInputTokens *int `json:"cached_input_tokens,omitempty"`
}

// Known reports whether any token count was reported at all.
func (u Usage) Known() bool {
	return u.InputTokens != nil || u.OutputTokens != nil || u.TotalTokens != nil ||
		u.ReasoningTokens != nil || u.CachedInputTokens != nil
}

// FinishReasonKind is the uniform completion taxonomy.
type FinishReasonKind string

const (
	FinishStop          FinishReasonKind = "stop"
	FinishLength        FinishReasonKind = "length"
	FinishContentFilter FinishReasonKind = "content-filter"
	FinishToolCalls     FinishReasonKind = "tool-calls"
	FinishOther         FinishReasonKind = "other"
)

// FinishReason documents why generation ended. Raw carries the backend's
// original value for diagnostics alongside the unified tag.
type FinishReason struct {
	Unified FinishReasonKind `json:"unified"`
	Raw     string           `json:"raw,omitempty"`
}

// WarningType classifies non-fatal conditions surfaced in results.
type WarningType string

const (
	// WarningUnsupportedFeature flags a requested feature the backend cannot
	// honor; the request proceeds with degraded behavior.
	WarningUnsupportedFeature WarningType = "unsupported-feature"
	// WarningSchemaFallback flags a tool schema that could not be converted
	// and was replaced with a permissive object schema.
	WarningSchemaFallback WarningType = "schema-fallback"
)

// Warning represents a non-fatal issue encountered while mapping a request.
type Warning struct {
	Type    WarningType `json:"type"`
	Feature string      `json:"feature,omitempty"`
	Message string      `json:"message"`
}

// Result represents a non-streaming generation response.
type Result struct {
	Content      []Part       `json:"content"`
	FinishReason FinishReason `json:"finish_reason"`
	Usage        Usage        `json:"usage"`
	Warnings     []Warning    `json:"warnings,omitempty"`

	Model    string `json:"model"`
	Provider string `json:"provider"`

	// RawRequest and RawResponse expose the provider-shaped payloads for
	// debugging; their concrete types are provider-specific.
	RawRequest  any `json:"-"`
	RawResponse any `json:"-"`
}

// Text joins all text parts of the result content.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	var out string
	for _, part := range r.Content {
		if text, ok := part.(Text); ok {
			out += text.Text
		}
	}
	return out
}

// ToolCalls returns the tool-call parts of the result content, in order.
func (r *Result) ToolCalls() []ToolCall {
	if r == nil {
		return nil
	}
	var calls []ToolCall
	for _, part := range r.Content {
		if call, ok := part.(ToolCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}
