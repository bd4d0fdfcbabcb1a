package core

import (
	"strings"

	"github.com/shillcollin/genbridge/internal/tokens"
)

// TokenEstimate summarises estimated token usage.
type TokenEstimate struct {
	Input     int
	MaxOutput int
	Total     int
}

// EstimateTokens estimates tokens for a request using heuristics.
func EstimateTokens(req Request) TokenEstimate {
	input := 0
	for _, msg := range req.Messages {
		input += EstimateMessageTokens(msg)
	}
	maxOut := tokens.DefaultMaxOutput
	if req.MaxOutputTokens != nil {
		maxOut = *req.MaxOutputTokens
	}
	return TokenEstimate{Input: input, MaxOutput: maxOut, Total: input + maxOut}
}

// EstimateMessageTokens estimates tokens for a message.
func EstimateMessageTokens(msg Message) int {
	total := tokens.EstimateText(string(msg.Role))
	for _, part := range msg.Parts {
		total += estimatePartTokens(part)
	}
	return total
}

// EstimateTextTokens estimates tokens from raw text.
func EstimateTextTokens(text string) int {
	return tokens.EstimateText(text)
}

func estimatePartTokens(part Part) int {
	switch p := part.(type) {
	case Text:
		return tokens.EstimateText(p.Text)
	case File:
		switch p.Source.Kind {
		case BlobBytes:
			return tokens.EstimateBytes(int64(len(p.Source.Bytes)))
		case BlobBase64:
			return tokens.EstimateBytes(int64(len(p.Source.Base64)))
		default:
			return 256
		}
	case ToolCall:
		keys := make([]string, 0, len(p.Input))
		for k := range p.Input {
			keys = append(keys, k)
		}
		return tokens.EstimateText(strings.Join(keys, " ")) + tokens.EstimateJSON(p.Input)
	case ToolResult:
		switch p.Output.Kind {
		case ToolOutputText, ToolOutputErrorText:
			return tokens.EstimateText(p.Output.Text)
		case ToolOutputContent:
			return tokens.EstimateText(p.Output.JoinText())
		default:
			return tokens.EstimateJSON(p.Output.Value)
		}
	default:
		return 32
	}
}
