package gemini

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shillcollin/genbridge/core"
)

type Option func(*options)

type options struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger

	// Model-level generation defaults; call-time values take precedence
	// field by field.
	temperature     *float64
	topP            *float64
	topK            *int
	maxOutputTokens *int
	stopSequences   []string
	reasoning       *core.ReasoningConfig

	// newBackend is replaced in tests to inject fake backends.
	newBackend func(options) (backendClient, error)
}

func defaultOptions() options {
	return options{
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
		timeout:    60 * time.Second,
		logger:     zap.NewNop(),
		newBackend: newHTTPBackend,
	}
}

func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

func WithModel(model string) Option {
	return func(o *options) { o.model = model }
}

func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a structured logger; defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTemperature sets the model-level default sampling temperature.
func WithTemperature(t float64) Option {
	return func(o *options) { o.temperature = &t }
}

// WithTopP sets the model-level default nucleus sampling mass.
func WithTopP(p float64) Option {
	return func(o *options) { o.topP = &p }
}

// WithTopK sets the model-level default top-k cutoff.
func WithTopK(k int) Option {
	return func(o *options) { o.topK = &k }
}

// WithMaxOutputTokens sets the model-level default output token cap.
func WithMaxOutputTokens(n int) Option {
	return func(o *options) { o.maxOutputTokens = &n }
}

// WithStopSequences sets the model-level default stop sequences.
func WithStopSequences(sequences ...string) Option {
	return func(o *options) { o.stopSequences = append([]string(nil), sequences...) }
}

// WithReasoning sets the model-level default reasoning configuration.
// Call-time reasoning settings override it field by field.
func WithReasoning(cfg core.ReasoningConfig) Option {
	return func(o *options) { o.reasoning = cfg.Clone() }
}
