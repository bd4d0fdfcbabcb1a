package core

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Role identifies the author of a message.
type Role string

const (
	System    Role = "system"
	User      Role = "user"
	Assistant Role = "assistant"
	ToolRole  Role = "tool"
)

// Message represents a single conversation turn. Ordering of messages and of
// parts within a message is significant and preserved by adapters.
type Message struct {
	Role     Role           `json:"role"`
	Parts    []Part         `json:"parts"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// PartType identifies the type of content stored in a Part.
type PartType string

const (
	PartTypeText       PartType = "text"
	PartTypeFile       PartType = "file"
	PartTypeToolCall   PartType = "tool_call"
	PartTypeToolResult PartType = "tool_result"
)

// Part is the interface implemented by all message fragments.
type Part interface {
	Type() PartType
}

// Text represents text content.
type Text struct {
	Text string `json:"text"`
}

func (t Text) Type() PartType { return PartTypeText }

// File references inline binary content (image, audio, video, or PDF).
type File struct {
	Source BlobRef `json:"source"`
	Name   string  `json:"name,omitempty"`
}

func (f File) Type() PartType { return PartTypeFile }

// ToolCall records a model-initiated tool invocation. Metadata is an opaque
// channel for provider-specific extensions such as continuation tokens; values
// placed there round-trip through the adapter unmodified.
type ToolCall struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Input    map[string]any `json:"input"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (t ToolCall) Type() PartType { return PartTypeToolCall }

// ToolResult records the application-provided response to a tool invocation.
type ToolResult struct {
	ID     string     `json:"id,omitempty"`
	Name   string     `json:"name"`
	Output ToolOutput `json:"output"`
}

func (t ToolResult) Type() PartType { return PartTypeToolResult }

// ToolOutputKind discriminates the typed output union of a tool result.
type ToolOutputKind string

const (
	ToolOutputText      ToolOutputKind = "text"
	ToolOutputErrorText ToolOutputKind = "error-text"
	ToolOutputJSON      ToolOutputKind = "json"
	ToolOutputErrorJSON ToolOutputKind = "error-json"
	ToolOutputDenied    ToolOutputKind = "execution-denied"
	ToolOutputContent   ToolOutputKind = "content"
)

// ToolOutput is the typed output of a tool result. Exactly one of the payload
// fields is meaningful for a given Kind: Text for text/error-text, Value for
// json/error-json, Reason for execution-denied, Parts for content.
type ToolOutput struct {
	Kind   ToolOutputKind   `json:"kind"`
	Text   string           `json:"text,omitempty"`
	Value  any              `json:"value,omitempty"`
	Reason string           `json:"reason,omitempty"`
	Parts  []ToolOutputPart `json:"parts,omitempty"`
}

// ToolOutputPart is one sub-part of a content-kind tool output.
type ToolOutputPart struct {
	Text string `json:"text,omitempty"`
}

// JoinText concatenates the text sub-parts of a content-kind output.
func (o ToolOutput) JoinText() string {
	var b strings.Builder
	for _, p := range o.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// BlobKind identifies how binary data is carried.
type BlobKind string

const (
	BlobBytes  BlobKind = "bytes"
	BlobBase64 BlobKind = "base64"
	BlobURL    BlobKind = "url"
)

// BlobRef points to binary data. Bytes carries raw data, Base64 carries
// pre-encoded data, URL references external content (which adapters may
// reject when they only accept inline payloads).
type BlobRef struct {
	Kind BlobKind `json:"kind"`

	Bytes  []byte `json:"bytes,omitempty"`
	Base64 string `json:"base64,omitempty"`
	URL    string `json:"url,omitempty"`

	MIME string `json:"mime"`
}

// Validate ensures the blob reference is well-formed.
func (b BlobRef) Validate() error {
	if b.Kind == "" {
		return errors.New("blob kind is required")
	}
	if b.MIME == "" {
		return errors.New("blob MIME type is required")
	}
	switch b.Kind {
	case BlobBytes:
		if len(b.Bytes) == 0 {
			return errors.New("bytes kind requires data")
		}
	case BlobBase64:
		if b.Base64 == "" {
			return errors.New("base64 kind requires data")
		}
	case BlobURL:
		if b.URL == "" {
			return errors.New("url kind requires URL")
		}
	default:
		return fmt.Errorf("unknown blob kind: %s", b.Kind)
	}
	return nil
}

// EncodedData returns the payload encoded as base64. Bytes payloads are
// encoded; Base64 payloads pass through assuming they are already encoded.
func (b BlobRef) EncodedData() (string, error) {
	switch b.Kind {
	case BlobBytes:
		return base64.StdEncoding.EncodeToString(b.Bytes), nil
	case BlobBase64:
		return b.Base64, nil
	default:
		return "", fmt.Errorf("base64 conversion unsupported for kind %s", b.Kind)
	}
}
