package core

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func playEvents(events ...StreamEvent) *Stream {
	stream := NewStream(context.Background())
	go func() {
		for _, event := range events {
			stream.Push(event)
		}
		stream.Close()
	}()
	return stream
}

func TestCollectStreamTextAndToolCalls(t *testing.T) {
	reason := FinishReason{Unified: FinishToolCalls, Raw: "STOP"}
	stream := playEvents(
		StreamEvent{Type: EventStreamStart, Seq: 1, Warnings: []Warning{{Type: WarningUnsupportedFeature, Message: "w"}}},
		StreamEvent{Type: EventTextStart, Seq: 2, BlockID: "txt_1"},
		StreamEvent{Type: EventTextDelta, Seq: 3, BlockID: "txt_1", TextDelta: "Let me "},
		StreamEvent{Type: EventTextDelta, Seq: 4, BlockID: "txt_1", TextDelta: "check."},
		StreamEvent{Type: EventTextEnd, Seq: 5, BlockID: "txt_1"},
		StreamEvent{Type: EventToolCall, Seq: 6, ToolCall: ToolCall{ID: "c1", Name: "lookup", Input: map[string]any{}}},
		StreamEvent{Type: EventFinish, Seq: 7, FinishReason: &reason, Model: "m", Provider: "p"},
	)

	result, err := CollectStream(stream)
	if err != nil {
		t.Fatalf("CollectStream: %v", err)
	}
	if result.Text() != "Let me check." {
		t.Fatalf("text = %q", result.Text())
	}
	if len(result.Content) != 2 {
		t.Fatalf("content parts = %d", len(result.Content))
	}
	if _, ok := result.Content[1].(ToolCall); !ok {
		t.Fatalf("second part = %T, want ToolCall", result.Content[1])
	}
	if result.FinishReason.Unified != FinishToolCalls {
		t.Fatalf("finish = %s", result.FinishReason.Unified)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %+v", result.Warnings)
	}
	if result.Model != "m" || result.Provider != "p" {
		t.Fatalf("model/provider = %q/%q", result.Model, result.Provider)
	}
}

func TestCollectStreamError(t *testing.T) {
	stream := NewStream(context.Background())
	boom := errors.New("boom")
	go stream.Fail(boom)

	_, err := CollectStream(stream)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestStreamToWriter(t *testing.T) {
	stream := playEvents(
		StreamEvent{Type: EventStreamStart, Seq: 1},
		StreamEvent{Type: EventTextStart, Seq: 2},
		StreamEvent{Type: EventTextDelta, Seq: 3, TextDelta: "hello "},
		StreamEvent{Type: EventTextDelta, Seq: 4, TextDelta: "world"},
		StreamEvent{Type: EventTextEnd, Seq: 5},
	)

	var out strings.Builder
	if err := StreamToWriter(stream, &out); err != nil {
		t.Fatalf("StreamToWriter: %v", err)
	}
	if out.String() != "hello world" {
		t.Fatalf("out = %q", out.String())
	}
}
