package woocommerce

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsTransportCountsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()
	c, err := NewClient(srv.URL, "ck", "cs", WithDebug(false), WithMetrics(reg))
	require.NoError(t, err)

	_, err = c.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	_, err = c.ListOrders(context.Background(), nil)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, fam := range families {
		if fam.GetName() != "woocommerce_client_requests_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(2), total)
}

func TestBasicAuthTransportDoesNotMutateRequest(t *testing.T) {
	var gotAuth string
	next := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		rec := httptest.NewRecorder()
		rec.WriteString("{}")
		return rec.Result(), nil
	})

	rt := &basicAuthTransport{username: "user", password: "pass", next: next}
	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	assert.NotEmpty(t, gotAuth)
	// The caller's request must stay clean; auth goes on the clone only.
	assert.Empty(t, req.Header.Get("Authorization"))
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
