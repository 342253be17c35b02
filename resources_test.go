package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTaxRatesSendsClassFilter(t *testing.T) {
	var got url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	}))

	_, err := c.ListTaxRates(context.Background(), &TaxRateListOptions{Class: "standard"})
	require.NoError(t, err)
	assert.Equal(t, "standard", got.Get("class"))
	assert.Equal(t, "1", got.Get("page"))
	assert.Equal(t, "10", got.Get("per_page"))
	_, hasOffset := got["offset"]
	assert.False(t, hasOffset)
}

func TestDeleteWebhookSendsForceAndReportsSuccess(t *testing.T) {
	var gotMethod, gotPath string
	var got url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		got = r.URL.Query()
		w.Write([]byte(`{"id":5}`))
	}))

	ok, err := c.DeleteWebhook(context.Background(), 5, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/wp-json/wc/v3/webhooks/5", gotPath)
	assert.Equal(t, "true", got.Get("force"))
}

func TestDeleteWebhookFailureReportsFalse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"woocommerce_rest_webhook_invalid_id","message":"Invalid ID."}`))
	}))

	ok, err := c.DeleteWebhook(context.Background(), 5, false)
	assert.False(t, ok)
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestListOrdersSendsFilters(t *testing.T) {
	var got url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	}))

	_, err := c.ListOrders(context.Background(), &OrderListOptions{
		Status:        OrderStatusCompleted,
		Customer:      ptr(int64(12)),
		DecimalPoints: ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Get("status"))
	assert.Equal(t, "12", got.Get("customer"))
	assert.Equal(t, "4", got.Get("dp"))
}

func TestDeleteCustomerSendsReassign(t *testing.T) {
	var got url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"id":5}`))
	}))

	_, err := c.DeleteCustomer(context.Background(), 5, true, ptr(int64(9)))
	require.NoError(t, err)
	assert.Equal(t, "true", got.Get("force"))
	assert.Equal(t, "9", got.Get("reassign"))
}

func TestGetFakeEntityKeepsRequestedID(t *testing.T) {
	c, err := NewClient("https://shop.example.com", "ck", "cs",
		WithDebug(false),
		WithFakerDefault(true),
		WithHTTPClient(&http.Client{Transport: errTransport{}}),
	)
	require.NoError(t, err)

	ctx := context.Background()

	order, err := c.GetOrder(ctx, 77)
	require.NoError(t, err)
	assert.Equal(t, int64(77), *order.ID)

	coupon, err := c.DeleteCoupon(ctx, 88, true)
	require.NoError(t, err)
	assert.Equal(t, int64(88), *coupon.ID)

	tc, err := c.DeleteTaxClass(ctx, "reduced", true)
	require.NoError(t, err)
	assert.Equal(t, "reduced", *tc.Slug)
}

func TestListRefundsResolvesStoreWidePath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"id":3,"parent_id":11}]`))
	}))

	refunds, err := c.ListRefunds(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/wc/v3/refunds", gotPath)
	require.Len(t, refunds, 1)
	require.NotNil(t, refunds[0].ParentID)
	assert.Equal(t, int64(11), *refunds[0].ParentID)
}

func TestSalesReportSendsPeriod(t *testing.T) {
	var got url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[{}]`))
	}))

	_, err := c.GetSalesReport(context.Background(), &SalesReportOptions{Period: ReportPeriodMonth})
	require.NoError(t, err)
	assert.Equal(t, "month", got.Get("period"))
	_, hasMin := got["date_min"]
	assert.False(t, hasMin)
}

func TestRunSystemStatusToolFakeReportsSuccess(t *testing.T) {
	c, err := NewClient("https://shop.example.com", "ck", "cs",
		WithDebug(false),
		WithFakerDefault(true),
		WithHTTPClient(&http.Client{Transport: errTransport{}}),
	)
	require.NoError(t, err)

	res, err := c.RunSystemStatusTool(context.Background(), "clear_transients")
	require.NoError(t, err)
	assert.Equal(t, "clear_transients", *res.ID)
	require.NotNil(t, res.Success)
	assert.True(t, *res.Success)
}
