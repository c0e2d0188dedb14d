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
	ATSChecks        atomic.Int64
	ExtractRequests  atomic.Int64
	ExtractFallbacks atomic.Int64
	JDKeywordCalls   atomic.Int64
	LLMCalls         atomic.Int64
	LLMErrors        atomic.Int64
	VisionCalls      atomic.Int64
	VisionErrors     atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"ats_checks":        metrics.ATSChecks.Load(),
		"extract_requests":  metrics.ExtractRequests.Load(),
		"extract_fallbacks": metrics.ExtractFallbacks.Load(),
		"jd_keyword_calls":  metrics.JDKeywordCalls.Load(),
		"llm_calls":         metrics.LLMCalls.Load(),
		"llm_errors":        metrics.LLMErrors.Load(),
		"vision_calls":      metrics.VisionCalls.Load(),
		"vision_errors":     metrics.VisionErrors.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"ats_checks", "extract_requests", "extract_fallbacks",
		"jd_keyword_calls",
		"llm_calls", "llm_errors",
		"vision_calls", "vision_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for tool handlers and sub-packages.
func IncrATSChecks()        { metrics.ATSChecks.Add(1) }
func IncrExtractRequests()  { metrics.ExtractRequests.Add(1) }
func IncrExtractFallbacks() { metrics.ExtractFallbacks.Add(1) }
func IncrJDKeywordCalls()   { metrics.JDKeywordCalls.Add(1) }

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
