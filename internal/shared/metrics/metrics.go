package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	scoreComputedTotal atomic.Uint64
	scoreCacheHitTotal atomic.Uint64
	gapComputedTotal   atomic.Uint64
	gapCacheHitTotal   atomic.Uint64
	taxonomyFallback   atomic.Uint64

	evaluationDuration = newHistogram([]float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncScoreComputed increments the computed match-score counter.
func IncScoreComputed() {
	scoreComputedTotal.Add(1)
}

// IncScoreCacheHit increments the match-score cache-hit counter.
func IncScoreCacheHit() {
	scoreCacheHitTotal.Add(1)
}

// IncGapComputed increments the computed gap-analysis counter.
func IncGapComputed() {
	gapComputedTotal.Add(1)
}

// IncGapCacheHit increments the gap-analysis cache-hit counter.
func IncGapCacheHit() {
	gapCacheHitTotal.Add(1)
}

// IncTaxonomyFallback increments the builtin-taxonomy fallback counter.
func IncTaxonomyFallback() {
	taxonomyFallback.Add(1)
}

// ObserveEvaluationDurationMs records an engine evaluation duration in
// milliseconds.
func ObserveEvaluationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	evaluationDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "match_score_computed_total", "Total match scores computed", scoreComputedTotal.Load())
	writeCounter(&buf, "match_score_cache_hit_total", "Total match scores served from cache", scoreCacheHitTotal.Load())
	writeCounter(&buf, "gap_analysis_computed_total", "Total gap analyses computed", gapComputedTotal.Load())
	writeCounter(&buf, "gap_analysis_cache_hit_total", "Total gap analyses served from cache", gapCacheHitTotal.Load())
	writeCounter(&buf, "taxonomy_fallback_total", "Times the builtin default taxonomy was used", taxonomyFallback.Load())
	writeHistogram(&buf, "evaluation_duration_ms", "Engine evaluation duration in milliseconds", evaluationDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
