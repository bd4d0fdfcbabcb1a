package core

import "fmt"

// SystemMessage creates a system message with the given text.
func SystemMessage(text string) Message {
	return Message{Role: System, Parts: []Part{Text{Text: text}}}
}

// UserMessage creates a user message for the provided parts.
func UserMessage(parts ...Part) Message {
	clone := append([]Part(nil), parts...)
	return Message{Role: User, Parts: clone}
}

// AssistantMessage creates an assistant message with plain text.
func AssistantMessage(text string) Message {
	return Message{Role: Assistant, Parts: []Part{Text{Text: text}}}
}

// ToolMessage creates a tool message carrying the given results.
func ToolMessage(results ...ToolResult) Message {
	parts := make([]Part, 0, len(results))
	for _, r := range results {
		parts = append(parts, r)
	}
	return Message{Role: ToolRole, Parts: parts}
}

// TextPart is a convenience for constructing a text part.
func TextPart(text string) Text {
	return Text{Text: text}
}

// FilePart builds a File part from raw bytes.
func FilePart(data []byte, mime string) File {
	return File{Source: BlobRef{Kind: BlobBytes, Bytes: data, MIME: mime}}
}

// FileBase64Part builds a File part from pre-encoded base64 data.
func FileBase64Part(data string, mime string) File {
	return File{Source: BlobRef{Kind: BlobBase64, Base64: data, MIME: mime}}
}

// TextOutput builds a text tool output.
func TextOutput(text string) ToolOutput {
	return ToolOutput{Kind: ToolOutputText, Text: text}
}

// ErrorTextOutput builds an error-text tool output.
func ErrorTextOutput(text string) ToolOutput {
	return ToolOutput{Kind: ToolOutputErrorText, Text: text}
}

// JSONOutput builds a json tool output from an arbitrary value.
func JSONOutput(value any) ToolOutput {
	return ToolOutput{Kind: ToolOutputJSON, Value: value}
}

// ErrorJSONOutput builds an error-json tool output.
func ErrorJSONOutput(value any) ToolOutput {
	return ToolOutput{Kind: ToolOutputErrorJSON, Value: value}
}

// DeniedOutput builds an execution-denied tool output.
func DeniedOutput(reason string) ToolOutput {
	return ToolOutput{Kind: ToolOutputDenied, Reason: reason}
}

// ContentOutput builds a content tool output from text sub-parts.
func ContentOutput(parts ...ToolOutputPart) ToolOutput {
	return ToolOutput{Kind: ToolOutputContent, Parts: parts}
}

// SimpleRequest creates a minimal text generation request.
func SimpleRequest(prompt string) Request {
	return Request{Messages: []Message{UserMessage(Text{Text: prompt})}}
}

// ValidateMessages ensures each message has valid parts for its role.
func ValidateMessages(messages []Message) error {
	for i, msg := range messages {
		if msg.Role == "" {
			return fmt.Errorf("message %d missing role", i)
		}
		if len(msg.Parts) == 0 {
			return fmt.Errorf("message %d missing parts", i)
		}
		for j, part := range msg.Parts {
			switch part.(type) {
			case Text, File, ToolCall, ToolResult:
				// Known part types.
			default:
				return fmt.Errorf("message %d part %d has unsupported type %T", i, j, part)
			}
			if msg.Role == ToolRole {
				if _, ok := msg.Parts[j].(ToolResult); !ok {
					return fmt.Errorf("message %d part %d: tool messages accept only tool results", i, j)
				}
			}
		}
	}
	return nil
}
