package obs

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce      sync.Once
	requestCounter   metric.Int64Counter
	latencyHistogram metric.Float64Histogram
	inputTokensHist  metric.Int64Histogram
	outputTokensHist metric.Int64Histogram
	totalTokensHist  metric.Int64Histogram
)

func ensureMetrics() {
	metricsOnce.Do(func() {
		m := Meter()
		requestCounter, _ = m.Int64Counter("genbridge.requests", metric.WithDescription("Total model requests"))
		latencyHistogram, _ = m.Float64Histogram("genbridge.request.latency_ms", metric.WithDescription("Model request latency (ms)"))
		inputTokensHist, _ = m.Int64Histogram("genbridge.tokens.input", metric.WithDescription("Input tokens"))
		outputTokensHist, _ = m.Int64Histogram("genbridge.tokens.output", metric.WithDescription("Output tokens"))
		totalTokensHist, _ = m.Int64Histogram("genbridge.tokens.total", metric.WithDescription("Total tokens"))
	})
}

func recordRequest(attrs ...attribute.KeyValue) {
	ensureMetrics()
	if requestCounter != nil {
		requestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	}
}

func recordLatency(ms float64, attrs ...attribute.KeyValue) {
	ensureMetrics()
	if latencyHistogram != nil {
		latencyHistogram.Record(context.Background(), ms, metric.WithAttributes(attrs...))
	}
}

func recordUsage(usage UsageTokens, attrs ...attribute.KeyValue) {
	ensureMetrics()
	ctx := context.Background()
	if inputTokensHist != nil {
		inputTokensHist.Record(ctx, int64(usage.InputTokens), metric.WithAttributes(attrs...))
	}
	if outputTokensHist != nil {
		outputTokensHist.Record(ctx, int64(usage.OutputTokens), metric.WithAttributes(attrs...))
	}
	if totalTokensHist != nil {
		totalTokensHist.Record(ctx, int64(usage.TotalTokens), metric.WithAttributes(attrs...))
	}
}
