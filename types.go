// Package genbridge exposes the unified model-calling contract together with
// a registry of backend adapters. Messages, tools, and call options are
// vendor neutral; each adapter under providers/ translates them to and from
// one backend's wire protocol.
package genbridge

import "github.com/shillcollin/genbridge/core"

// Message and Role types for building conversations.
// These are type aliases from core for convenience.
type (
	// Message represents a single conversation turn.
	Message = core.Message

	// Role identifies the author of a message.
	Role = core.Role
)

// Role constants.
const (
	System    = core.System
	User      = core.User
	Assistant = core.Assistant
	ToolRole  = core.ToolRole
)

// Part types for multimodal messages.
type (
	// Part is the interface implemented by all message fragments.
	Part = core.Part

	// Text represents text content.
	Text = core.Text

	// File references inline binary content.
	File = core.File
)

// Tool-related types.
type (
	// Tool declares a callable function the model may invoke.
	Tool = core.Tool

	// ToolChoice controls how the model uses tools.
	ToolChoice = core.ToolChoice

	// ToolCall records a model-initiated tool invocation.
	ToolCall = core.ToolCall

	// ToolResult records the response to a tool invocation.
	ToolResult = core.ToolResult

	// ToolOutput is the typed output union of a tool result.
	ToolOutput = core.ToolOutput
)

// Generation option types.
type (
	// Request holds the call options for one generation.
	Request = core.Request

	// ResponseFormat requests plain-text or schema-constrained JSON output.
	ResponseFormat = core.ResponseFormat

	// ReasoningConfig controls backend deliberation effort.
	ReasoningConfig = core.ReasoningConfig
)

// Result and stream types.
type (
	// Result is the one-shot generation response.
	Result = core.Result

	// Stream is the event sequence of a streaming generation.
	Stream = core.Stream

	// StreamEvent represents a streaming event from generation.
	StreamEvent = core.StreamEvent

	// EventType identifies the type of stream event.
	EventType = core.EventType
)

// Event type constants.
const (
	EventStreamStart      = core.EventStreamStart
	EventTextStart        = core.EventTextStart
	EventTextDelta        = core.EventTextDelta
	EventTextEnd          = core.EventTextEnd
	EventToolCall         = core.EventToolCall
	EventResponseMetadata = core.EventResponseMetadata
	EventFinish           = core.EventFinish
	EventError            = core.EventError
)

// Usage tracks token consumption.
type Usage = core.Usage

// Warning represents a non-fatal issue during request mapping.
type Warning = core.Warning

// FinishReason documents why generation ended.
type FinishReason = core.FinishReason

// Message constructors - convenience functions that wrap core functions.

// SystemMessage creates a system message with text content.
func SystemMessage(content string) Message {
	return core.SystemMessage(content)
}

// UserMessage creates a user message with the given parts.
func UserMessage(parts ...Part) Message {
	return core.UserMessage(parts...)
}

// AssistantMessage creates an assistant message with text content.
func AssistantMessage(content string) Message {
	return core.AssistantMessage(content)
}

// ToolMessage creates a tool message carrying the given results.
func ToolMessage(results ...ToolResult) Message {
	return core.ToolMessage(results...)
}

// TextPart creates a text part for use in messages.
func TextPart(text string) Text {
	return core.Text{Text: text}
}

// FilePart creates an inline file part from raw bytes.
func FilePart(data []byte, mimeType string) File {
	return core.FilePart(data, mimeType)
}
