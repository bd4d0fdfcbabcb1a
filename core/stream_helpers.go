package core

import (
	"io"
	"strings"
)

// CollectStream drains a stream and aggregates its events into a Result.
// Adjacent text blocks become one Text part each; tool calls keep their
// position relative to surrounding text.
func CollectStream(stream *Stream) (*Result, error) {
	if stream == nil {
		return nil, ErrStreamClosed
	}
	var result Result
	var block strings.Builder
	blockOpen := false

	closeBlock := func() {
		if blockOpen {
			result.Content = append(result.Content, Text{Text: block.String()})
			block.Reset()
			blockOpen = false
		}
	}

	for event := range stream.Events() {
		switch event.Type {
		case EventStreamStart:
			result.Warnings = event.Warnings
		case EventTextStart:
			blockOpen = true
		case EventTextDelta:
			block.WriteString(event.TextDelta)
		case EventTextEnd:
			closeBlock()
		case EventToolCall:
			closeBlock()
			result.Content = append(result.Content, event.ToolCall)
		case EventFinish:
			if event.FinishReason != nil {
				result.FinishReason = *event.FinishReason
			}
			result.Usage = event.Usage
			result.Model = event.Model
			result.Provider = event.Provider
		case EventError:
			if event.Error != nil {
				return nil, event.Error
			}
		}
	}
	closeBlock()
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return &result, nil
}

// StreamToWriter writes streaming text deltas to the provided writer.
func StreamToWriter(stream *Stream, w io.Writer) error {
	for event := range stream.Events() {
		if event.Type == EventTextDelta {
			if _, err := io.WriteString(w, event.TextDelta); err != nil {
				return err
			}
		}
		if event.Type == EventError && event.Error != nil {
			return event.Error
		}
	}
	return stream.Err()
}
