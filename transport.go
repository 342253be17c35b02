package woocommerce

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// basicAuthTransport attaches the consumer key pair as an HTTP Basic
// Authorization header to every outgoing request.
type basicAuthTransport struct {
	username string
	password string
	next     http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.SetBasicAuth(t.username, t.password)
	return t.next.RoundTrip(r)
}

// loggingTransport logs each request and its outcome. Installed when the
// client is constructed with debug enabled.
type loggingTransport struct {
	log  zerolog.Logger
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.log.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", time.Since(start)).
			Msg("request failed")
		return nil, err
	}
	t.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")
	return resp, nil
}

// metricsTransport records request counts and latencies. Opt-in via
// WithMetrics.
type metricsTransport struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	next     http.RoundTripper
}

func newMetricsTransport(reg prometheus.Registerer, next http.RoundTripper) *metricsTransport {
	t := &metricsTransport{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "woocommerce_client_requests_total",
			Help: "Requests sent to the WooCommerce API by method and status.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "woocommerce_client_request_duration_seconds",
			Help:    "WooCommerce API request latency by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		next: next,
	}
	reg.MustRegister(t.requests, t.duration)
	return t
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	t.duration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.requests.WithLabelValues(req.Method, status).Inc()
	return resp, err
}
