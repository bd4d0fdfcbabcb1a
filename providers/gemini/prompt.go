package gemini

import (
	"fmt"
	"strings"

	"github.com/shillcollin/genbridge/core"
)

// metadataKeyThoughtSignature is the provider extension channel under which
// continuation tokens travel on tool-call parts.
const metadataKeyThoughtSignature = "gemini.thought_signature"

// convertMessages maps the uniform message list onto a content list plus a
// separate system instruction. System messages are hoisted out of the content
// list; when several occur, the last one wins and earlier ones are silently
// superseded. User and assistant messages map 1:1 in order; tool messages
// become a single user-role entry of function responses.
func convertMessages(messages []core.Message) ([]content, *content, error) {
	contents := make([]content, 0, len(messages))
	var systemInstruction *content

	for i, message := range messages {
		switch message.Role {
		case core.System:
			var b strings.Builder
			for _, p := range message.Parts {
				if text, ok := p.(core.Text); ok {
					b.WriteString(text.Text)
				}
			}
			systemInstruction = &content{Parts: []part{{Text: b.String()}}}
		case core.User:
			parts, err := convertPromptParts(message.Parts)
			if err != nil {
				return nil, nil, fmt.Errorf("message %d: %w", i, err)
			}
			contents = append(contents, content{Role: "user", Parts: parts})
		case core.Assistant:
			parts, err := convertPromptParts(message.Parts)
			if err != nil {
				return nil, nil, fmt.Errorf("message %d: %w", i, err)
			}
			contents = append(contents, content{Role: "model", Parts: parts})
		case core.ToolRole:
			parts, err := convertToolResultParts(message.Parts)
			if err != nil {
				return nil, nil, fmt.Errorf("message %d: %w", i, err)
			}
			contents = append(contents, content{Role: "user", Parts: parts})
		default:
			return nil, nil, core.NewError(core.ErrMapping,
				fmt.Sprintf("unsupported message role %q", message.Role))
		}
	}

	return contents, systemInstruction, nil
}

func convertPromptParts(parts []core.Part) ([]part, error) {
	out := make([]part, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case core.Text:
			out = append(out, part{Text: v.Text})
		case core.File:
			filePart, err := convertFilePart(v)
			if err != nil {
				return nil, err
			}
			out = append(out, *filePart)
		case core.ToolCall:
			fc := &functionCall{Name: v.Name, Args: v.Input}
			if v.ID != "" {
				fc.ID = v.ID
			}
			mapped := part{FunctionCall: fc}
			if sig, ok := v.Metadata[metadataKeyThoughtSignature].(string); ok && sig != "" {
				mapped.ThoughtSignature = sig
			}
			out = append(out, mapped)
		default:
			return nil, core.NewError(core.ErrMapping,
				fmt.Sprintf("unsupported content part type %T", p))
		}
	}
	return out, nil
}

func convertToolResultParts(parts []core.Part) ([]part, error) {
	out := make([]part, 0, len(parts))
	for _, p := range parts {
		result, ok := p.(core.ToolResult)
		if !ok {
			return nil, core.NewError(core.ErrMapping,
				fmt.Sprintf("tool message carries non-result part type %T", p))
		}
		response, err := functionResponsePayload(result.Output)
		if err != nil {
			return nil, err
		}
		resp := &functionResponse{Name: result.Name, Response: response}
		if result.ID != "" {
			resp.ID = result.ID
		}
		out = append(out, part{FunctionResponse: resp})
	}
	return out, nil
}

// supportedMediaType restricts file parts to the media families the API
// accepts as inline data.
func supportedMediaType(mime string) bool {
	switch {
	case strings.HasPrefix(mime, "image/"),
		strings.HasPrefix(mime, "audio/"),
		strings.HasPrefix(mime, "video/"):
		return true
	case mime == "application/pdf":
		return true
	default:
		return false
	}
}

func convertFilePart(file core.File) (*part, error) {
	src := file.Source
	if !supportedMediaType(src.MIME) {
		return nil, core.NewError(core.ErrMapping,
			fmt.Sprintf("unsupported file media type %q: only image, audio, video, and PDF content is accepted", src.MIME))
	}
	switch src.Kind {
	case core.BlobBytes, core.BlobBase64:
		data, err := src.EncodedData()
		if err != nil {
			return nil, core.NewError(core.ErrMapping, "encode file payload", core.WithWrapped(err))
		}
		return &part{InlineData: &inlineData{MimeType: src.MIME, Data: data}}, nil
	case core.BlobURL:
		return nil, core.NewError(core.ErrMapping,
			fmt.Sprintf("file URLs are not supported: %s must be provided as inline data", src.URL))
	default:
		return nil, core.NewError(core.ErrMapping,
			fmt.Sprintf("unrecognized file payload kind %q", src.Kind))
	}
}

// functionResponsePayload normalizes a typed tool output into the
// object-shaped response the API requires. Object-valued JSON passes through
// unchanged; every other value is wrapped under a single "result" key.
func functionResponsePayload(output core.ToolOutput) (map[string]any, error) {
	var value any
	switch output.Kind {
	case core.ToolOutputText, core.ToolOutputErrorText:
		value = output.Text
	case core.ToolOutputJSON, core.ToolOutputErrorJSON:
		value = output.Value
	case core.ToolOutputDenied:
		if output.Reason != "" {
			value = fmt.Sprintf("Tool execution denied: %s", output.Reason)
		} else {
			value = "Tool execution denied."
		}
	case core.ToolOutputContent:
		value = output.JoinText()
	default:
		return nil, core.NewError(core.ErrMapping,
			fmt.Sprintf("unsupported tool output kind %q", output.Kind))
	}
	if object, ok := value.(map[string]any); ok {
		return object, nil
	}
	return map[string]any{"result": value}, nil
}
