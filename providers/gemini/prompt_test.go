package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shillcollin/genbridge/core"
)

func TestConvertMessagesRoles(t *testing.T) {
	messages := []core.Message{
		core.SystemMessage("be brief"),
		core.UserMessage(core.TextPart("hello")),
		core.AssistantMessage("hi"),
		core.UserMessage(core.TextPart("what now?")),
	}

	contents, system, err := convertMessages(messages)
	require.NoError(t, err)
	require.NotNil(t, system)
	assert.Equal(t, "be brief", system.Parts[0].Text)

	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "hello", contents[0].Parts[0].Text)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, "user", contents[2].Role)
}

func TestConvertMessagesLastSystemWins(t *testing.T) {
	messages := []core.Message{
		core.SystemMessage("first"),
		core.UserMessage(core.TextPart("hi")),
		core.SystemMessage("second"),
	}

	contents, system, err := convertMessages(messages)
	require.NoError(t, err)
	require.NotNil(t, system)
	assert.Equal(t, "second", system.Parts[0].Text)
	assert.Len(t, contents, 1)
}

func TestConvertMessagesToolCallRoundTrip(t *testing.T) {
	call := core.ToolCall{
		ID:    "call_1",
		Name:  "get_weather",
		Input: map[string]any{"city": "Oslo"},
		Metadata: map[string]any{
			metadataKeyThoughtSignature: "sig-abc",
		},
	}
	messages := []core.Message{
		core.UserMessage(core.TextPart("weather?")),
		{Role: core.Assistant, Parts: []core.Part{call}},
		core.ToolMessage(core.ToolResult{
			ID:     "call_1",
			Name:   "get_weather",
			Output: core.JSONOutput(map[string]any{"temperature": 72}),
		}),
	}

	contents, _, err := convertMessages(messages)
	require.NoError(t, err)
	require.Len(t, contents, 3)

	fc := contents[1].Parts[0].FunctionCall
	require.NotNil(t, fc)
	assert.Equal(t, "call_1", fc.ID)
	assert.Equal(t, "get_weather", fc.Name)
	assert.Equal(t, "sig-abc", contents[1].Parts[0].ThoughtSignature)

	fr := contents[2].Parts[0].FunctionResponse
	require.NotNil(t, fr)
	assert.Equal(t, "user", contents[2].Role)
	assert.Equal(t, map[string]any{"temperature": 72}, fr.Response)
}

func TestFunctionResponsePayloadShapes(t *testing.T) {
	tests := []struct {
		name   string
		output core.ToolOutput
		want   map[string]any
	}{
		{
			name:   "object passes through",
			output: core.JSONOutput(map[string]any{"temperature": 72}),
			want:   map[string]any{"temperature": 72},
		},
		{
			name:   "scalar wrapped",
			output: core.JSONOutput(72),
			want:   map[string]any{"result": 72},
		},
		{
			name:   "text wrapped",
			output: core.TextOutput("sunny"),
			want:   map[string]any{"result": "sunny"},
		},
		{
			name:   "denied with reason",
			output: core.DeniedOutput("policy"),
			want:   map[string]any{"result": "Tool execution denied: policy"},
		},
		{
			name:   "denied without reason",
			output: core.DeniedOutput(""),
			want:   map[string]any{"result": "Tool execution denied."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := functionResponsePayload(tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertFilePartInline(t *testing.T) {
	file := core.FilePart([]byte{0x89, 0x50}, "image/png")
	p, err := convertFilePart(file)
	require.NoError(t, err)
	require.NotNil(t, p.InlineData)
	assert.Equal(t, "image/png", p.InlineData.MimeType)
	assert.NotEmpty(t, p.InlineData.Data)
}

func TestConvertFilePartRejectsURL(t *testing.T) {
	file := core.File{Source: core.BlobRef{Kind: core.BlobURL, URL: "https://example.com/cat.png", MIME: "image/png"}}
	_, err := convertFilePart(file)
	require.Error(t, err)
	assert.True(t, core.IsMapping(err))
	assert.Contains(t, err.Error(), "not supported")
}

func TestConvertFilePartRejectsUnknownKind(t *testing.T) {
	file := core.File{Source: core.BlobRef{Kind: "carrier-pigeon", MIME: "image/png"}}
	_, err := convertFilePart(file)
	require.Error(t, err)
	assert.True(t, core.IsMapping(err))
	assert.Contains(t, err.Error(), "unrecognized")
}

func TestConvertFilePartRejectsUnsupportedMedia(t *testing.T) {
	file := core.FilePart([]byte("hello"), "text/plain")
	_, err := convertFilePart(file)
	require.Error(t, err)
	assert.True(t, core.IsMapping(err))
}
