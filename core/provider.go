package core

import "context"

// Provider is the primary interface implemented by model adapters. It exposes
// one-shot and streaming generation against the vendor-neutral contract.
type Provider interface {
	GenerateText(ctx context.Context, req Request) (*Result, error)
	StreamText(ctx context.Context, req Request) (*Stream, error)
	Capabilities() Capabilities
}

// Capabilities describes the features supported by a provider.
type Capabilities struct {
	Streaming  bool
	Tools      bool
	JSONOutput bool
	Reasoning  bool
	Files      bool

	MaxInputTokens  int
	MaxOutputTokens int

	Provider string
	Models   []string
}
