package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts all HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "procurement_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration records request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "procurement_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// GatewayCallsTotal counts language-model gateway calls by outcome.
	GatewayCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "procurement_gateway_calls_total",
			Help: "Total number of language-model gateway calls",
		},
		[]string{"operation", "outcome"},
	)

	// ProposalsReceivedTotal counts proposals created from inbox checks.
	ProposalsReceivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "procurement_proposals_received_total",
			Help: "Total number of proposals created from inbound email",
		},
	)
)

// Middleware records request count and duration per method/path/status.
// The path label is the chi route pattern, not the raw URL, so record
// ids do not mint a new series per request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := strconv.Itoa(ww.Status())
		HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path, status).
			Observe(time.Since(start).Seconds())
	})
}

// RecordGatewayCall increments the gateway call counter.
func RecordGatewayCall(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	GatewayCallsTotal.WithLabelValues(operation, outcome).Inc()
}
