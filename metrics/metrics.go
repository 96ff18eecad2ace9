// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Vote rejection reasons
const (
	ReasonNotEnabled = "not_enabled"
	ReasonNotFound   = "not_found"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "votr",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "votr",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "votr",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	questionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "votr",
			Subsystem: "polls",
			Name:      "questions_created_total",
			Help:      "Total number of questions created.",
		},
	)

	answersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "votr",
			Subsystem: "polls",
			Name:      "answers_created_total",
			Help:      "Total number of answers created.",
		},
	)

	votesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "votr",
			Subsystem: "polls",
			Name:      "votes_recorded_total",
			Help:      "Total number of votes recorded.",
		},
	)

	votesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "votr",
			Subsystem: "polls",
			Name:      "votes_rejected_total",
			Help:      "Total number of vote attempts rejected.",
		},
		[]string{"reason"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		questionsCreated,
		answersCreated,
		votesRecorded,
		votesRejected,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
// Requests are labelled by the ServeMux pattern they matched so that IDs in
// the path do not create new series.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		route := routeLabel(r)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	})
}

func RecordQuestionCreated() {
	questionsCreated.Inc()
}

func RecordAnswerCreated() {
	answersCreated.Inc()
}

func RecordVote() {
	votesRecorded.Inc()
}

func RecordVoteRejected(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	votesRejected.WithLabelValues(reason).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// routeLabel prefers the matched pattern ("PUT /api/questions/{id}") and
// strips the method prefix, since method is its own label.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return path
	}
	return r.Pattern
}
