package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lobby",
		Name:      "connections_active",
		Help:      "Current number of live websocket sessions",
	})

	RoomsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lobby",
		Name:      "rooms_active",
		Help:      "Current number of registered rooms",
	})

	ChatMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lobby",
		Name:      "chat_messages_total",
		Help:      "Total chat messages broadcast to rooms",
	})

	InboundEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lobby",
		Name:      "inbound_events_total",
		Help:      "Inbound client events by type",
	}, []string{"type"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lobby",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lobby",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware records request counts and latency. The websocket route is
// skipped; its connections are long-lived and tracked by the gauges instead.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": strconv.Itoa(rec.status),
		}
		httpRequests.With(labels).Inc()
		httpLatency.With(labels).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
