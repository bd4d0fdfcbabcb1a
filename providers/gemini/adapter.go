package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/shillcollin/genbridge/core"
	"github.com/shillcollin/genbridge/obs"
)

const providerName = "gemini"

// Adapter translates uniform requests into generateContent calls and
// normalizes the responses. It is safe for concurrent use; the backend client
// is built lazily on first use and shared by all subsequent calls.
type Adapter struct {
	opts options

	initGroup singleflight.Group
	mu        sync.RWMutex
	backend   backendClient
}

func New(opts ...Option) *Adapter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Adapter{opts: o}
}

// client returns the shared backend, constructing it on first call. Concurrent
// first calls collapse into a single construction attempt; a failed attempt is
// reported to every waiter and retried on the next call.
func (a *Adapter) client() (backendClient, error) {
	a.mu.RLock()
	backend := a.backend
	a.mu.RUnlock()
	if backend != nil {
		return backend, nil
	}
	v, err, _ := a.initGroup.Do("backend", func() (any, error) {
		a.mu.RLock()
		cached := a.backend
		a.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		built, err := a.opts.newBackend(a.opts)
		if err != nil {
			return nil, err
		}
		a.mu.Lock()
		a.backend = built
		a.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, core.NewError(core.ErrInitialization, "initialize backend client", core.WithWrapped(err))
	}
	return v.(backendClient), nil
}

func (a *Adapter) Capabilities() core.Capabilities {
	return core.Capabilities{
		Streaming:  true,
		Tools:      true,
		JSONOutput: true,
		Reasoning:  true,
		Files:      true,
		Provider:   providerName,
	}
}

// GenerateText performs a unary generation call.
func (a *Adapter) GenerateText(ctx context.Context, req core.Request) (_ *core.Result, err error) {
	ctx, recorder := obs.StartRequest(ctx, "providers.gemini.GenerateText",
		attribute.String("ai.provider", providerName),
		attribute.String("ai.operation", "generateContent"),
	)
	var usageTokens obs.UsageTokens
	defer func() {
		recorder.End(err, usageTokens)
	}()

	if ctx.Err() != nil {
		return nil, cancellationError(ctx)
	}
	backend, err := a.client()
	if err != nil {
		return nil, err
	}
	payload, warnings, err := a.buildRequest(req)
	if err != nil {
		return nil, err
	}
	recorder.AddAttributes(attribute.String("ai.model", payload.Model))

	requestID := newRequestID()
	a.opts.logger.Debug("generate request",
		zap.String("provider", providerName),
		zap.String("model", payload.Model),
		zap.String("request_id", requestID),
		zap.Int("estimated_input_tokens", core.EstimateTokens(req).Input),
	)

	resp, err := backend.Generate(ctx, payload, requestID)
	if err != nil {
		return nil, mapBackendError(err)
	}
	if ctx.Err() != nil {
		return nil, cancellationError(ctx)
	}
	if err := blockedPromptError(resp); err != nil {
		return nil, err
	}

	content, hasToolCalls := mapResponseParts(resp)
	var finishRaw string
	if len(resp.Candidates) > 0 {
		finishRaw = resp.Candidates[0].FinishReason
	}
	usage := mapUsage(resp.UsageMetadata)
	usageTokens = obs.UsageFromCore(usage)

	return &core.Result{
		Content:      content,
		FinishReason: mapFinishReason(finishRaw, hasToolCalls),
		Usage:        usage,
		Warnings:     warnings,
		Model:        payload.Model,
		Provider:     providerName,
		RawRequest:   payload,
		RawResponse:  resp,
	}, nil
}

// StreamText performs a streaming generation call. Mapping and transport
// errors before the first chunk return an error with no stream; once a stream
// is returned, failures surface as a terminal error event on it.
func (a *Adapter) StreamText(ctx context.Context, req core.Request) (*core.Stream, error) {
	ctx, recorder := obs.StartRequest(ctx, "providers.gemini.StreamText",
		attribute.String("ai.provider", providerName),
		attribute.String("ai.operation", "streamGenerateContent"),
	)

	if ctx.Err() != nil {
		err := cancellationError(ctx)
		recorder.End(err, obs.UsageTokens{})
		return nil, err
	}
	backend, err := a.client()
	if err != nil {
		recorder.End(err, obs.UsageTokens{})
		return nil, err
	}
	payload, warnings, err := a.buildRequest(req)
	if err != nil {
		recorder.End(err, obs.UsageTokens{})
		return nil, err
	}
	recorder.AddAttributes(attribute.String("ai.model", payload.Model))

	requestID := newRequestID()
	a.opts.logger.Debug("stream request",
		zap.String("provider", providerName),
		zap.String("model", payload.Model),
		zap.String("request_id", requestID),
		zap.Int("estimated_input_tokens", core.EstimateTokens(req).Input),
	)

	chunks, err := backend.GenerateStream(ctx, payload, requestID)
	if err != nil {
		err = mapBackendError(err)
		recorder.End(err, obs.UsageTokens{})
		return nil, err
	}

	stream := core.NewStream(ctx)
	go func() {
		a.runStream(ctx, stream, chunks, payload.Model, requestID, warnings)
		recorder.End(stream.Err(), obs.UsageFromCore(stream.Meta().Usage))
	}()
	return stream, nil
}

// runStream drives the streaming state machine: a stream.start opens the
// stream, text deltas are bracketed by block boundaries, tool calls close any
// open text block, and the chunk carrying a finish reason ends the stream
// with response.metadata followed by finish. A stream that closes without a
// finish signal ends with no synthetic finish event.
func (a *Adapter) runStream(ctx context.Context, stream *core.Stream, chunks chunkStream, model, requestID string, warnings []core.Warning) {
	defer chunks.Close()
	defer stream.Close()

	w := &eventWriter{stream: stream, model: model}
	w.push(core.StreamEvent{Type: core.EventStreamStart, Warnings: warnings})

	var (
		lastUsage    core.Usage
		hasToolCalls bool
		blockOpen    bool
		blockCount   int
		blockID      string
	)

	closeBlock := func() {
		if blockOpen {
			w.push(core.StreamEvent{Type: core.EventTextEnd, BlockID: blockID})
			blockOpen = false
		}
	}

	for {
		if ctx.Err() != nil {
			stream.Fail(cancellationError(ctx))
			return
		}
		chunk, err := chunks.Recv()
		if errors.Is(err, io.EOF) {
			closeBlock()
			return
		}
		if err != nil {
			stream.Fail(mapBackendError(err))
			return
		}
		if err := blockedPromptError(chunk); err != nil {
			stream.Fail(err)
			return
		}

		if chunk.UsageMetadata != nil {
			lastUsage = mapUsage(chunk.UsageMetadata)
		}

		var finishRaw string
		for _, cand := range chunk.Candidates {
			for _, p := range cand.Content.Parts {
				switch {
				case p.FunctionCall != nil:
					closeBlock()
					hasToolCalls = true
					w.push(core.StreamEvent{Type: core.EventToolCall, ToolCall: toolCallFromPart(p)})
				case p.Text != "":
					if !blockOpen {
						blockCount++
						blockID = fmt.Sprintf("txt_%d", blockCount)
						blockOpen = true
						w.push(core.StreamEvent{Type: core.EventTextStart, BlockID: blockID})
					}
					w.push(core.StreamEvent{Type: core.EventTextDelta, BlockID: blockID, TextDelta: p.Text})
				}
			}
			if cand.FinishReason != "" {
				finishRaw = cand.FinishReason
			}
		}

		if finishRaw != "" {
			closeBlock()
			w.push(core.StreamEvent{Type: core.EventResponseMetadata, ResponseID: requestID})
			reason := mapFinishReason(finishRaw, hasToolCalls)
			w.push(core.StreamEvent{Type: core.EventFinish, FinishReason: &reason, Usage: lastUsage})
			return
		}
	}
}

// eventWriter stamps the envelope fields shared by every event.
type eventWriter struct {
	stream *core.Stream
	model  string
	seq    int
}

func (w *eventWriter) push(event core.StreamEvent) {
	w.seq++
	event.Seq = w.seq
	event.Timestamp = time.Now()
	event.Provider = providerName
	event.Model = w.model
	w.stream.Push(event)
}

// buildRequest assembles the wire payload from a uniform request, collecting
// mapping warnings from tool and generation-config conversion.
func (a *Adapter) buildRequest(req core.Request) (*generateRequest, []core.Warning, error) {
	model := req.Model
	if model == "" {
		model = a.opts.model
	}
	if model == "" {
		return nil, nil, core.NewError(core.ErrBadRequest, "no model specified")
	}
	if len(req.Messages) == 0 {
		return nil, nil, core.NewError(core.ErrBadRequest, "request requires messages")
	}

	contents, systemInstruction, err := convertMessages(req.Messages)
	if err != nil {
		return nil, nil, err
	}
	if len(contents) == 0 {
		return nil, nil, core.NewError(core.ErrBadRequest, "request requires at least one non-system message")
	}
	tools, toolWarnings, err := convertTools(req.Tools)
	if err != nil {
		return nil, nil, err
	}
	genConfig, configWarnings := buildGenerationConfig(req, a.opts)

	payload := &generateRequest{
		Model:             model,
		Contents:          contents,
		SystemInstruction: systemInstruction,
		GenerationConfig:  genConfig,
		Tools:             tools,
		ToolConfig:        convertToolChoice(req.ToolChoice),
	}
	warnings := append(toolWarnings, configWarnings...)
	for _, warning := range warnings {
		a.opts.logger.Warn("request mapping degraded",
			zap.String("type", string(warning.Type)),
			zap.String("feature", warning.Feature),
			zap.String("message", warning.Message),
		)
	}
	return payload, warnings, nil
}

// mapResponseParts converts response content into uniform parts, reporting
// whether any tool call was present.
func mapResponseParts(resp *generateResponse) ([]core.Part, bool) {
	if len(resp.Candidates) == 0 {
		return nil, false
	}
	var (
		parts        []core.Part
		hasToolCalls bool
	)
	for _, p := range resp.Candidates[0].Content.Parts {
		switch {
		case p.FunctionCall != nil:
			hasToolCalls = true
			parts = append(parts, toolCallFromPart(p))
		case p.Text != "":
			parts = append(parts, core.Text{Text: p.Text})
		}
	}
	return parts, hasToolCalls
}

// toolCallFromPart maps a function call part, preserving a backend-issued call
// ID when present and minting one otherwise.
func toolCallFromPart(p part) core.ToolCall {
	call := core.ToolCall{
		ID:    p.FunctionCall.ID,
		Name:  p.FunctionCall.Name,
		Input: p.FunctionCall.Args,
	}
	if call.ID == "" {
		call.ID = "call_" + uuid.NewString()
	}
	if call.Input == nil {
		call.Input = map[string]any{}
	}
	if p.ThoughtSignature != "" {
		call.Metadata = map[string]any{metadataKeyThoughtSignature: p.ThoughtSignature}
	}
	return call
}

// blockedPromptError reports prompt-feedback safety blocks as content-filter
// failures.
func blockedPromptError(resp *generateResponse) error {
	if resp.PromptFeedback == nil || resp.PromptFeedback.BlockReason == "" {
		return nil
	}
	return core.NewError(core.ErrContentFiltered,
		fmt.Sprintf("prompt blocked: %s", resp.PromptFeedback.BlockReason))
}

func newRequestID() string {
	return "req_" + uuid.NewString()
}
