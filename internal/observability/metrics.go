package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	sweepRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "libgc",
			Subsystem: "sweep",
			Name:      "runs_total",
			Help:      "Total sweep passes over the registry.",
		},
	)
	sweepReclaimed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "libgc",
			Subsystem: "sweep",
			Name:      "reclaimed_total",
			Help:      "Total tracked objects reclaimed by sweeps.",
		},
	)
	sweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "libgc",
			Subsystem: "sweep",
			Name:      "duration_seconds",
			Help:      "Sweep pass duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	trackedObjects = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "libgc",
			Subsystem: "registry",
			Name:      "tracked_objects",
			Help:      "Tracked objects remaining after the last sweep.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "libgc",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total monitor HTTP requests.",
		},
		[]string{"app", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "libgc",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Monitor HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"app", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			sweepRuns, sweepReclaimed, sweepDuration, trackedObjects,
			httpRequests, httpDuration,
		)
	})
}

func RecordSweep(reclaimed, tracked int, duration time.Duration) {
	RegisterMetrics()
	sweepRuns.Inc()
	sweepReclaimed.Add(float64(reclaimed))
	sweepDuration.Observe(duration.Seconds())
	trackedObjects.Set(float64(tracked))
}

func RecordHTTPRequest(app, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(app, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(app, method, path, statusLabel).Observe(duration.Seconds())
}
