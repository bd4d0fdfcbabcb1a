package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStreamDeliversEventsInOrder(t *testing.T) {
	stream := NewStream(context.Background())

	go func() {
		stream.Push(StreamEvent{Type: EventStreamStart, Seq: 1})
		stream.Push(StreamEvent{Type: EventTextDelta, Seq: 2, TextDelta: "hi"})
		stream.Push(StreamEvent{Type: EventFinish, Seq: 3, Usage: Usage{TotalTokens: intp(5)}, Model: "m", Provider: "p"})
		stream.Close()
	}()

	var got []EventType
	for event := range stream.Events() {
		got = append(got, event.Type)
	}
	want := []EventType{EventStreamStart, EventTextDelta, EventFinish}
	if len(got) != len(want) {
		t.Fatalf("events = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %s, want %s", i, got[i], want[i])
		}
	}

	meta := stream.Meta()
	if meta.Model != "m" || meta.Provider != "p" {
		t.Fatalf("meta = %+v", meta)
	}
	if meta.Usage.TotalTokens == nil || *meta.Usage.TotalTokens != 5 {
		t.Fatalf("meta usage = %+v", meta.Usage)
	}
}

func TestStreamPushBlocksUntilConsumed(t *testing.T) {
	stream := NewStream(context.Background())
	second := make(chan struct{})

	go func() {
		stream.Push(StreamEvent{Type: EventTextDelta, Seq: 1})
		stream.Push(StreamEvent{Type: EventTextDelta, Seq: 2})
		close(second)
		stream.Close()
	}()

	select {
	case <-second:
		t.Fatal("second push completed before the first event was consumed")
	case <-time.After(20 * time.Millisecond):
	}

	<-stream.Events()
	<-stream.Events()
	<-second
	for range stream.Events() {
	}
}

func TestStreamPushAfterCancelReturns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stream := NewStream(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		stream.Push(StreamEvent{Type: EventTextDelta, Seq: 1})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Push did not return after context cancellation")
	}
	stream.Close()
}

func TestStreamFail(t *testing.T) {
	stream := NewStream(context.Background())
	boom := errors.New("boom")

	go stream.Fail(boom)

	var last StreamEvent
	for event := range stream.Events() {
		last = event
	}
	if last.Type != EventError {
		t.Fatalf("last event = %s, want error", last.Type)
	}
	if !errors.Is(stream.Err(), boom) {
		t.Fatalf("Err = %v", stream.Err())
	}
	if err := stream.Wait(); !errors.Is(err, boom) {
		t.Fatalf("Wait = %v", err)
	}
}

func TestStreamCloseTwice(t *testing.T) {
	stream := NewStream(context.Background())
	if err := stream.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := stream.Close(); !errors.Is(err, ErrStreamClosed) {
		t.Fatalf("second Close: %v", err)
	}
}

func intp(i int) *int { return &i }
