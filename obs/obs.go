// Package obs provides the tracing and metrics instrumentation used by the
// adapters. Exporter and provider setup is the host application's concern;
// this package only talks to the OpenTelemetry globals, so it is a no-op
// until the host installs real providers.
package obs

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/shillcollin/genbridge/obs"

// Tracer exposes the tracer used for adapter spans.
func Tracer() trace.Tracer {
	return otel.Tracer(scopeName)
}

// Meter exposes the meter used for adapter metrics.
func Meter() metric.Meter {
	return otel.Meter(scopeName)
}

// RecordRequest records request-level metrics.
func RecordRequest(attrs ...attribute.KeyValue) {
	recordRequest(attrs...)
}

// RecordUsage emits token metrics.
func RecordUsage(usageTokens UsageTokens, attrs ...attribute.KeyValue) {
	recordUsage(usageTokens, attrs...)
}

// UsageTokens standardizes token metrics across instruments. Zero values mean
// the backend did not report the count.
type UsageTokens struct {
	InputTokens     int
	OutputTokens    int
	TotalTokens     int
	ReasoningTokens int
	CachedTokens    int
}
