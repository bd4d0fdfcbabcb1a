package core

// Request represents a single generation request. Sampling parameters use
// pointers so "not specified" is distinguishable from an explicit zero; a nil
// field falls back to the adapter's model-level setting, if any.
type Request struct {
	Model string `json:"model,omitempty"`

	Messages []Message `json:"messages"`

	Temperature     *float64 `json:"temperature,omitempty"`
	TopP            *float64 `json:"top_p,omitempty"`
	TopK            *int     `json:"top_k,omitempty"`
	MaxOutputTokens *int     `json:"max_output_tokens,omitempty"`
	StopSequences   []string `json:"stop_sequences,omitempty"`

	Tools      []Tool     `json:"tools,omitempty"`
	ToolChoice ToolChoice `json:"tool_choice,omitempty"`

	ResponseFormat ResponseFormat   `json:"response_format,omitempty"`
	Reasoning      *ReasoningConfig `json:"reasoning,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

// Clone returns a shallow copy of the request with safe slice/map duplication
// where necessary.
func (r Request) Clone() Request {
	clone := r
	if len(r.Messages) > 0 {
		clone.Messages = append([]Message(nil), r.Messages...)
	}
	if len(r.Tools) > 0 {
		clone.Tools = append([]Tool(nil), r.Tools...)
	}
	if len(r.StopSequences) > 0 {
		clone.StopSequences = append([]string(nil), r.StopSequences...)
	}
	if r.Metadata != nil {
		clone.Metadata = make(map[string]any, len(r.Metadata))
		for k, v := range r.Metadata {
			clone.Metadata[k] = v
		}
	}
	return clone
}

// Tool declares a callable function the model may invoke. Parameters holds the
// input schema and accepts either a JSON-Schema-shaped map[string]any or a
// *schema.Schema builder value; adapters classify and convert as needed.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  any    `json:"parameters,omitempty"`
}

// ToolChoiceMode enumerates how the provider should select tools.
type ToolChoiceMode string

const (
	ToolChoiceModeAuto     ToolChoiceMode = "auto"
	ToolChoiceModeNone     ToolChoiceMode = "none"
	ToolChoiceModeRequired ToolChoiceMode = "required"
	ToolChoiceModeTool     ToolChoiceMode = "tool"
)

// ToolChoice directs tool selection. The zero value means "unspecified" and
// adapters emit no tool configuration at all, letting the backend default
// apply.
type ToolChoice struct {
	Mode ToolChoiceMode `json:"mode,omitempty"`
	Name string         `json:"name,omitempty"`
}

// ToolChoiceAuto lets the model decide whether to call tools.
func ToolChoiceAuto() ToolChoice { return ToolChoice{Mode: ToolChoiceModeAuto} }

// ToolChoiceNone forbids tool calls.
func ToolChoiceNone() ToolChoice { return ToolChoice{Mode: ToolChoiceModeNone} }

// ToolChoiceRequired forces the model to call some tool.
func ToolChoiceRequired() ToolChoice { return ToolChoice{Mode: ToolChoiceModeRequired} }

// ToolChoiceTool forces the model to call the named tool.
func ToolChoiceTool(name string) ToolChoice {
	return ToolChoice{Mode: ToolChoiceModeTool, Name: name}
}

// ResponseFormatKind selects the output shape of a generation.
type ResponseFormatKind string

const (
	ResponseFormatText ResponseFormatKind = "text"
	ResponseFormatJSON ResponseFormatKind = "json"
)

// ResponseFormat requests plain text or schema-constrained JSON output. A JSON
// format without a schema is downgraded by adapters to plain text with a
// warning rather than rejected.
type ResponseFormat struct {
	Kind   ResponseFormatKind `json:"kind,omitempty"`
	Schema map[string]any     `json:"schema,omitempty"`
}
