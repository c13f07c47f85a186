package metrics

import (
	"sync/atomic"
	"time"
)

// Usage records token consumption reported by the external model.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Store accumulates external-call and fallback statistics.
type Store struct {
	totalCalls        int64
	totalErrors       int64
	classifyFallbacks int64
	replyFallbacks    int64
	totalInputTokens  int64
	totalOutputTokens int64
	totalDurationMs   int64
}

// NewStore creates an empty statistics store.
func NewStore() *Store {
	return &Store{}
}

// RecordSuccess records a successful external call.
func (s *Store) RecordSuccess(duration time.Duration, usage Usage) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalInputTokens, int64(usage.InputTokens))
	atomic.AddInt64(&s.totalOutputTokens, int64(usage.OutputTokens))
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// RecordError records a failed external call.
func (s *Store) RecordError(duration time.Duration) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalErrors, 1)
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// RecordClassifyFallback records a classification served by the rule path.
func (s *Store) RecordClassifyFallback() {
	atomic.AddInt64(&s.classifyFallbacks, 1)
}

// RecordReplyFallback records a reply served by the template path.
func (s *Store) RecordReplyFallback() {
	atomic.AddInt64(&s.replyFallbacks, 1)
}

// Snapshot returns the accumulated statistics.
func (s *Store) Snapshot() map[string]float64 {
	totalCalls := atomic.LoadInt64(&s.totalCalls)
	totalErrors := atomic.LoadInt64(&s.totalErrors)
	input := atomic.LoadInt64(&s.totalInputTokens)
	output := atomic.LoadInt64(&s.totalOutputTokens)
	durationMs := atomic.LoadInt64(&s.totalDurationMs)

	avgDuration := 0.0
	if totalCalls > 0 {
		avgDuration = float64(durationMs) / float64(totalCalls)
	}

	return map[string]float64{
		"external_calls":      float64(totalCalls),
		"external_errors":     float64(totalErrors),
		"classify_fallbacks":  float64(atomic.LoadInt64(&s.classifyFallbacks)),
		"reply_fallbacks":     float64(atomic.LoadInt64(&s.replyFallbacks)),
		"total_input_tokens":  float64(input),
		"total_output_tokens": float64(output),
		"total_tokens":        float64(input + output),
		"total_duration_ms":   float64(durationMs),
		"avg_duration_ms":     avgDuration,
	}
}
