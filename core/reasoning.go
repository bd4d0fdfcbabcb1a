package core

import "strings"

// ReasoningLevel is the ordered effort scale for backend deliberation:
// minimal < low < medium < high.
type ReasoningLevel string

const (
	ReasoningMinimal ReasoningLevel = "minimal"
	ReasoningLow     ReasoningLevel = "low"
	ReasoningMedium  ReasoningLevel = "medium"
	ReasoningHigh    ReasoningLevel = "high"
)

var reasoningRank = map[ReasoningLevel]int{
	ReasoningMinimal: 0,
	ReasoningLow:     1,
	ReasoningMedium:  2,
	ReasoningHigh:    3,
}

// ParseReasoningLevel normalizes a case-insensitive level string. The second
// return value reports whether the input named a known level.
func ParseReasoningLevel(s string) (ReasoningLevel, bool) {
	level := ReasoningLevel(strings.ToLower(strings.TrimSpace(s)))
	_, ok := reasoningRank[level]
	if !ok {
		return "", false
	}
	return level, true
}

// Compare orders two levels; negative when l is below other.
func (l ReasoningLevel) Compare(other ReasoningLevel) int {
	return reasoningRank[l] - reasoningRank[other]
}

// ReasoningConfig controls how much internal deliberation the backend performs
// before responding. All fields are optional; adapters merge call-time values
// over model-level defaults field by field.
type ReasoningConfig struct {
	Level         ReasoningLevel `json:"level,omitempty"`
	Budget        *int           `json:"budget,omitempty"`
	IncludeTraces *bool          `json:"include_traces,omitempty"`
}

// IsZero reports whether no field is set.
func (c *ReasoningConfig) IsZero() bool {
	return c == nil || (c.Level == "" && c.Budget == nil && c.IncludeTraces == nil)
}

// Clone returns a copy safe to mutate.
func (c *ReasoningConfig) Clone() *ReasoningConfig {
	if c == nil {
		return nil
	}
	clone := &ReasoningConfig{Level: c.Level}
	if c.Budget != nil {
		budget := *c.Budget
		clone.Budget = &budget
	}
	if c.IncludeTraces != nil {
		include := *c.IncludeTraces
		clone.IncludeTraces = &include
	}
	return clone
}
