// Package tokens provides cheap token-count heuristics used for request
// budgeting before a backend reports real usage.
package tokens

import (
	"encoding/json"
	"math"
)

// DefaultMaxOutput is assumed when a request does not cap output tokens.
const DefaultMaxOutput = 256

// EstimateText approximates tokens for text at four runes per token.
func EstimateText(text string) int {
	if text == "" {
		return 0
	}
	runes := len([]rune(text))
	if runes == 0 {
		return 0
	}
	return int(math.Ceil(float64(runes) / 4.0))
}

// EstimateBytes approximates tokens for an inline binary payload.
func EstimateBytes(size int64) int {
	if size <= 0 {
		return 0
	}
	return int(math.Ceil(float64(size) / 1024.0))
}

// EstimateJSON approximates tokens for a structured value by serializing it.
func EstimateJSON(value any) int {
	if value == nil {
		return 0
	}
	data, err := json.Marshal(value)
	if err != nil {
		return EstimateText(err.Error())
	}
	return EstimateText(string(data))
}
