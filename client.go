package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/loaidev64/woocommerce-go/storage"
)

const (
	defaultPathSuffix     = "/wp-json/wc/v3"
	defaultAuthPathSuffix = "/wp-json/wcgo/v1/auth"
	defaultTimeout        = 30 * time.Second
)

// Client is a WooCommerce REST API client. All configuration is fixed at
// construction; methods are safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	pathSuffix string
	authSuffix string
	useFaker   bool
	debug      bool
	httpClient *http.Client
	logger     zerolog.Logger
	users      storage.UserStore
	metricsReg prometheus.Registerer
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithPathSuffix overrides the REST API mount point, /wp-json/wc/v3 by
// default.
func WithPathSuffix(suffix string) Option {
	return func(c *Client) { c.pathSuffix = suffix }
}

// WithAuthPathSuffix overrides the mount point of the companion auth
// plugin used by Login and friends.
func WithAuthPathSuffix(suffix string) Option {
	return func(c *Client) { c.authSuffix = suffix }
}

// WithDebug toggles the request/response logging interceptor. Enabled by
// default.
func WithDebug(enabled bool) Option {
	return func(c *Client) { c.debug = enabled }
}

// WithFakerDefault sets the client-level synthetic-data flag. Individual
// calls can still override it with WithFaker.
func WithFakerDefault(enabled bool) Option {
	return func(c *Client) { c.useFaker = enabled }
}

// WithHTTPClient supplies the underlying HTTP client. Its transport is
// wrapped, the caller's value is not mutated.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger supplies the logger used by the debug interceptor.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// WithUserStore supplies the persistence backend for the current user id
// written by the auth operations. Defaults to an in-memory store.
func WithUserStore(s storage.UserStore) Option {
	return func(c *Client) { c.users = s }
}

// WithMetrics registers request counter and latency metrics on reg and
// instruments the transport with them.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) { c.metricsReg = reg }
}

// NewClient builds a client for the store at storeURL authenticating with
// the given consumer key pair. No I/O happens here; the store URL is only
// parsed and the transport chain assembled.
func NewClient(storeURL, consumerKey, consumerSecret string, opts ...Option) (*Client, error) {
	base, err := url.Parse(storeURL)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("store url %q must be absolute", storeURL)
	}
	base.Path = ""
	base.RawQuery = ""

	c := &Client{
		baseURL:    base,
		pathSuffix: defaultPathSuffix,
		authSuffix: defaultAuthPathSuffix,
		debug:      true,
		logger:     zerolog.Nop(),
		users:      storage.NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := http.Client{Timeout: defaultTimeout}
	if c.httpClient != nil {
		hc = *c.httpClient
	}
	rt := hc.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	rt = &basicAuthTransport{username: consumerKey, password: consumerSecret, next: rt}
	if c.debug {
		rt = &loggingTransport{log: c.logger, next: rt}
	}
	if c.metricsReg != nil {
		rt = newMetricsTransport(c.metricsReg, rt)
	}
	hc.Transport = rt
	c.httpClient = &hc
	return c, nil
}

// requestOptions holds per-call settings resolved by each operation.
type requestOptions struct {
	faker *bool
}

// RequestOption adjusts a single API call.
type RequestOption func(*requestOptions)

// WithFaker overrides the client-level synthetic-data flag for one call.
func WithFaker(enabled bool) RequestOption {
	return func(o *requestOptions) { o.faker = &enabled }
}

// fakeMode resolves the fake-or-live branch for a call: the per-call
// override wins, otherwise the client default applies. Resolved once per
// call and never re-evaluated mid-call.
func (c *Client) fakeMode(opts []RequestOption) bool {
	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}
	if ro.faker != nil {
		return *ro.faker
	}
	return c.useFaker
}

func (c *Client) endpoint(fullPath string, query url.Values) string {
	u := *c.baseURL
	u.Path = fullPath
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// request performs one HTTP call against an already-suffixed path and
// decodes the JSON response into T. Transport failures and non-2xx
// statuses pass through untouched; only a shape mismatch becomes a
// DecodeError.
func request[T any](ctx context.Context, c *Client, method, fullPath string, query url.Values, body any) (T, error) {
	var out T

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return out, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(fullPath, query), reader)
	if err != nil {
		return out, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", method, fullPath, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return out, newAPIError(resp.StatusCode, raw)
	}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &DecodeError{Path: fullPath, Err: err}
	}
	return out, nil
}

// do runs a call against the wc/v3 API surface.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	return request[T](ctx, c, method, c.pathSuffix+path, query, body)
}

// doAuth runs a call against the companion auth plugin surface.
func doAuth[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	return request[T](ctx, c, method, c.authSuffix+path, nil, body)
}

// fakeList synthesizes n entities with the given factory.
func fakeList[T any](factory func() T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = factory()
	}
	return out
}

// fakeBatchResult mirrors a batch request with synthesized entities, one
// per requested create, update and delete.
func fakeBatchResult[T any](req *Batch[T], factory func() T) *BatchResult[T] {
	res := &BatchResult[T]{}
	if req == nil {
		return res
	}
	if len(req.Create) > 0 {
		res.Create = fakeList(factory, len(req.Create))
	}
	if len(req.Update) > 0 {
		res.Update = fakeList(factory, len(req.Update))
	}
	if len(req.Delete) > 0 {
		res.Delete = fakeList(factory, len(req.Delete))
	}
	return res
}
