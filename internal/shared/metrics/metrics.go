package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	jobsCreatedTotal         atomic.Uint64
	candidatesCreatedTotal   atomic.Uint64
	applicationsCreatedTotal atomic.Uint64
	applicationsRejected     atomic.Uint64
	storeErrorsTotal         atomic.Uint64

	storeDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncJobsCreated increments the created jobs counter.
func IncJobsCreated() {
	jobsCreatedTotal.Add(1)
}

// IncCandidatesCreated increments the created candidates counter.
func IncCandidatesCreated() {
	candidatesCreatedTotal.Add(1)
}

// IncApplicationsCreated increments the created applications counter.
func IncApplicationsCreated() {
	applicationsCreatedTotal.Add(1)
}

// IncApplicationsRejected counts applications refused for a missing job or candidate.
func IncApplicationsRejected() {
	applicationsRejected.Add(1)
}

// IncStoreErrors counts failed store operations.
func IncStoreErrors() {
	storeErrorsTotal.Add(1)
}

// ObserveStoreDurationMs records a store round-trip in milliseconds.
func ObserveStoreDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	storeDuration.Observe(value)
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
	writeCounter(&buf, "jobs_created_total", "Total jobs created", jobsCreatedTotal.Load())
	writeCounter(&buf, "candidates_created_total", "Total candidates created", candidatesCreatedTotal.Load())
	writeCounter(&buf, "applications_created_total", "Total applications created", applicationsCreatedTotal.Load())
	writeCounter(&buf, "applications_rejected_total", "Applications rejected for a missing job or candidate", applicationsRejected.Load())
	writeCounter(&buf, "store_errors_total", "Failed document store operations", storeErrorsTotal.Load())
	writeHistogram(&buf, "store_operation_duration_ms", "Document store operation duration in milliseconds", storeDuration.Snapshot())
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

// Observe adds value to the first bucket whose bound holds it.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
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
