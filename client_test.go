package woocommerce

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errTransport fails every request. Used to prove fake mode never touches
// the network.
type errTransport struct{}

func (errTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("transport must not be used")
}

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithDebug(false)}, opts...)
	c, err := NewClient(srv.URL, "ck_test", "cs_test", opts...)
	require.NoError(t, err)
	return c
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := NewClient("example.com", "ck", "cs")
	assert.Error(t, err)

	_, err = NewClient("://bad", "ck", "cs")
	assert.Error(t, err)
}

func TestNewClientStripsPathAndQuery(t *testing.T) {
	c, err := NewClient("https://shop.example.com/store?x=1", "ck", "cs")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com", c.baseURL.String())
}

func TestClientSendsBasicAuth(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		w.Write([]byte(`[]`))
	}))

	_, err := c.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, gotOK)
	assert.Equal(t, "ck_test", gotUser)
	assert.Equal(t, "cs_test", gotPass)
}

func TestClientResolvesPathSuffix(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":7}`))
	}))

	_, err := c.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/wc/v3/products/7", gotPath)
}

func TestCreateOrderUsesResponseID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "id")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":815,"status":"processing"}`))
	}))

	order, err := c.CreateOrder(context.Background(), &Order{CustomerID: ptr(int64(3))})
	require.NoError(t, err)
	require.NotNil(t, order.ID)
	assert.Equal(t, int64(815), *order.ID)
	assert.Equal(t, OrderStatusProcessing, order.Status)
}

func TestNonOKStatusBecomesAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"woocommerce_rest_product_invalid_id","message":"Invalid ID."}`))
	}))

	_, err := c.GetProduct(context.Background(), 999)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "woocommerce_rest_product_invalid_id", apiErr.Code)
	assert.Equal(t, "Invalid ID.", apiErr.Message)
}

func TestShapeMismatchBecomesDecodeError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))

	_, err := c.ListProducts(context.Background(), nil)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Contains(t, decErr.Path, "/products")
}

func TestFakeModeSkipsTransport(t *testing.T) {
	c, err := NewClient("https://shop.example.com", "ck", "cs",
		WithDebug(false),
		WithFakerDefault(true),
		WithHTTPClient(&http.Client{Transport: errTransport{}}),
	)
	require.NoError(t, err)

	products, err := c.ListProducts(context.Background(), &ProductListOptions{
		ListOptions: ListOptions{PerPage: 3},
	})
	require.NoError(t, err)
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.NotNil(t, p.ID)
		assert.NotNil(t, p.Name)
	}
}

func TestFakeModeDefaultsToTenResults(t *testing.T) {
	c, err := NewClient("https://shop.example.com", "ck", "cs",
		WithDebug(false),
		WithFakerDefault(true),
		WithHTTPClient(&http.Client{Transport: errTransport{}}),
	)
	require.NoError(t, err)

	orders, err := c.ListOrders(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, orders, defaultPerPage)
}

func TestPerCallFakerOverridesClientDefault(t *testing.T) {
	// Live client, faked call: the transport must stay untouched.
	c, err := NewClient("https://shop.example.com", "ck", "cs",
		WithDebug(false),
		WithHTTPClient(&http.Client{Transport: errTransport{}}),
	)
	require.NoError(t, err)

	p, err := c.GetProduct(context.Background(), 42, WithFaker(true))
	require.NoError(t, err)
	require.NotNil(t, p.ID)
	assert.Equal(t, int64(42), *p.ID)

	// Faked client, live call: the override must force the request out.
	var hit bool
	c2 := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.Write([]byte(`{"id":1}`))
	}), WithFakerDefault(true))

	_, err = c2.GetProduct(context.Background(), 1, WithFaker(false))
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestFakeModeNeverReturnsMissingIDError(t *testing.T) {
	c, err := NewClient("https://shop.example.com", "ck", "cs",
		WithDebug(false),
		WithFakerDefault(true),
		WithHTTPClient(&http.Client{Transport: errTransport{}}),
	)
	require.NoError(t, err)

	// No ID set; live mode would reject this before sending.
	updated, err := c.UpdateProduct(context.Background(), &Product{Name: ptr("renamed")})
	require.NoError(t, err)
	assert.NotNil(t, updated.ID)
}

func TestUpdateWithoutIDFailsBeforeSending(t *testing.T) {
	var hit bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))

	_, err := c.UpdateProduct(context.Background(), &Product{})
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = c.UpdateOrder(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingID)
	assert.False(t, hit)
}

func TestFakeBatchResultMirrorsRequestCounts(t *testing.T) {
	c, err := NewClient("https://shop.example.com", "ck", "cs",
		WithDebug(false),
		WithFakerDefault(true),
		WithHTTPClient(&http.Client{Transport: errTransport{}}),
	)
	require.NoError(t, err)

	res, err := c.BatchUpdateProducts(context.Background(), &Batch[Product]{
		Create: []Product{{Name: ptr("a")}, {Name: ptr("b")}},
		Delete: []int64{10},
	})
	require.NoError(t, err)
	assert.Len(t, res.Create, 2)
	assert.Empty(t, res.Update)
	assert.Len(t, res.Delete, 1)
}

func TestBatchRequestOmitsEmptyKeys(t *testing.T) {
	var body map[string]json.RawMessage
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{}`))
	}))

	_, err := c.BatchUpdateProducts(context.Background(), &Batch[Product]{
		Create: []Product{{Name: ptr("only create")}},
	})
	require.NoError(t, err)
	assert.Contains(t, body, "create")
	assert.NotContains(t, body, "update")
	assert.NotContains(t, body, "delete")
}

func TestEmptyResponseBodyYieldsZeroValue(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	p, err := c.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, p)
}
