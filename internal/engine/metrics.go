package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	UpstreamRequests atomic.Int64
	UpstreamErrors   atomic.Int64
	LoadsStarted     atomic.Int64
	LoadsRendered    atomic.Int64
	LoadsFailed      atomic.Int64
	LoadsDiscarded   atomic.Int64
	ShortsScanned    atomic.Int64
}

var metricKeys = []string{
	"upstream_requests", "upstream_errors",
	"loads_started", "loads_rendered", "loads_failed", "loads_discarded",
	"shorts_scanned",
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"upstream_requests": metrics.UpstreamRequests.Load(),
		"upstream_errors":   metrics.UpstreamErrors.Load(),
		"loads_started":     metrics.LoadsStarted.Load(),
		"loads_rendered":    metrics.LoadsRendered.Load(),
		"loads_failed":      metrics.LoadsFailed.Load(),
		"loads_discarded":   metrics.LoadsDiscarded.Load(),
		"shorts_scanned":    metrics.ShortsScanned.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func IncrUpstreamRequests()  { metrics.UpstreamRequests.Add(1) }
func IncrUpstreamErrors()    { metrics.UpstreamErrors.Add(1) }
func IncrLoadsStarted()      { metrics.LoadsStarted.Add(1) }
func IncrLoadsRendered()     { metrics.LoadsRendered.Add(1) }
func IncrLoadsFailed()       { metrics.LoadsFailed.Add(1) }
func IncrLoadsDiscarded()    { metrics.LoadsDiscarded.Add(1) }
func AddShortsScanned(n int) { metrics.ShortsScanned.Add(int64(n)) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
