package core

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrStreamClosed indicates the stream has already been closed.
var ErrStreamClosed = errors.New("stream closed")

// EventType enumerates stream event types.
type EventType string

const (
	EventStreamStart      EventType = "stream.start"
	EventTextStart        EventType = "text.start"
	EventTextDelta        EventType = "text.delta"
	EventTextEnd          EventType = "text.end"
	EventToolCall         EventType = "tool.call"
	EventResponseMetadata EventType = "response.metadata"
	EventFinish           EventType = "finish"
	EventError            EventType = "error"
)

// StreamEvent models a single event within the normalized stream. Lifecycle:
// stream.start is always first; every text block is bracketed by text.start
// and text.end around its deltas; tool.call events are atomic; finish, when
// present, is always last on success.
type StreamEvent struct {
	Type      EventType `json:"type"`
	Seq       int       `json:"seq"`
	Timestamp time.Time `json:"ts"`
	Provider  string    `json:"provider,omitempty"`
	Model     string    `json:"model,omitempty"`

	Warnings     []Warning     `json:"warnings,omitempty"`
	BlockID      string        `json:"block_id,omitempty"`
	TextDelta    string        `json:"text,omitempty"`
	ToolCall     ToolCall      `json:"tool_call,omitempty"`
	ResponseID   string        `json:"response_id,omitempty"`
	FinishReason *FinishReason `json:"finish_reason,omitempty"`
	Usage        Usage         `json:"usage,omitempty"`
	Error        error         `json:"-"`
}

// StreamMeta captures final metadata recorded from finish events.
type StreamMeta struct {
	Model    string
	Provider string
	Usage    Usage
}

// Stream represents a streaming response from a provider. The event channel is
// unbuffered: the producer blocks until the consumer takes each event, so the
// adapter never runs more than one chunk ahead of its consumer.
type Stream struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	events chan StreamEvent
	err    error
	closed bool
	meta   StreamMeta
}

// NewStream constructs a Stream tied to the provided context.
func NewStream(ctx context.Context) *Stream {
	c, cancel := context.WithCancel(ctx)
	return &Stream{
		ctx:    c,
		cancel: cancel,
		events: make(chan StreamEvent),
	}
}

// Push delivers an event to the consumer, blocking until it is received or
// the stream's context ends. Safe to call from multiple goroutines.
func (s *Stream) Push(event StreamEvent) {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return
	}

	if event.Type == EventFinish {
		s.mu.Lock()
		s.meta = StreamMeta{
			Model:    event.Model,
			Provider: event.Provider,
			Usage:    event.Usage,
		}
		s.mu.Unlock()
	}

	select {
	case s.events <- event:
	case <-s.ctx.Done():
	}
}

// Close closes the stream channel and cancels its context.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	s.closed = true
	close(s.events)
	s.cancel()
	return nil
}

// Events returns a read-only channel of events.
func (s *Stream) Events() <-chan StreamEvent {
	return s.events
}

// Err returns the terminal error, if any.
func (s *Stream) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Meta returns metadata recorded from the finish event.
func (s *Stream) Meta() StreamMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// Wait blocks until the stream is closed and returns the terminal error.
func (s *Stream) Wait() error {
	<-s.ctx.Done()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Fail marks the stream as failed and closes it after emitting a terminal
// error event.
func (s *Stream) Fail(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	alreadyClosed := s.closed
	s.mu.Unlock()

	if err != nil && !alreadyClosed {
		s.Push(StreamEvent{Type: EventError, Error: err, Timestamp: time.Now()})
	}
	if !alreadyClosed {
		_ = s.Close()
	}
}
