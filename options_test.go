package woocommerce

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOptionsZeroValueResolvesDefaults(t *testing.T) {
	q := ListOptions{}.values()

	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "10", q.Get("per_page"))
	// Only the paging defaults may appear; every optional filter must be
	// absent, not empty.
	assert.Len(t, q, 2)
}

func TestListOptionsOmitsUnsetFilters(t *testing.T) {
	q := ListOptions{Search: "hoodie", Order: SortAsc}.values()

	assert.Equal(t, "hoodie", q.Get("search"))
	assert.Equal(t, "asc", q.Get("order"))
	_, hasOffset := q["offset"]
	assert.False(t, hasOffset)
	_, hasContext := q["context"]
	assert.False(t, hasContext)
}

func TestListOptionsFullSet(t *testing.T) {
	after := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	q := ListOptions{
		Context: ListContextEdit,
		Page:    4,
		PerPage: 25,
		Search:  "tee",
		After:   &after,
		Include: []int64{1, 2, 3},
		Offset:  ptr(50),
		Order:   SortDesc,
		OrderBy: "title",
	}.values()

	assert.Equal(t, "4", q.Get("page"))
	assert.Equal(t, "25", q.Get("per_page"))
	assert.Equal(t, "edit", q.Get("context"))
	assert.Equal(t, "2024-03-01T12:30:00", q.Get("after"))
	assert.Equal(t, "1,2,3", q.Get("include"))
	assert.Equal(t, "50", q.Get("offset"))
	assert.Equal(t, "desc", q.Get("order"))
	assert.Equal(t, "title", q.Get("orderby"))
}

func TestListOptionsZeroOffsetIsStillSent(t *testing.T) {
	// Offset 0 and no offset are different requests; the pointer keeps
	// them apart.
	q := ListOptions{Offset: ptr(0)}.values()
	assert.Equal(t, "0", q.Get("offset"))
}

func TestResolvedPerPage(t *testing.T) {
	assert.Equal(t, 10, ListOptions{}.resolvedPerPage())
	assert.Equal(t, 3, ListOptions{PerPage: 3}.resolvedPerPage())
	assert.Equal(t, 10, ListOptions{PerPage: -1}.resolvedPerPage())
}

func TestForceQuery(t *testing.T) {
	assert.Empty(t, forceQuery(false))
	assert.Equal(t, "true", forceQuery(true).Get("force"))
}

func TestEnumFallbacks(t *testing.T) {
	var ctx ListContext
	require.NoError(t, json.Unmarshal([]byte(`"garbage"`), &ctx))
	assert.Equal(t, ListContextView, ctx)

	var order SortOrder
	require.NoError(t, json.Unmarshal([]byte(`"sideways"`), &order))
	assert.Equal(t, SortDesc, order)

	var status OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`"unknown-status"`), &status))
	assert.Equal(t, OrderStatusPending, status)

	var ptype ProductType
	require.NoError(t, json.Unmarshal([]byte(`"weird"`), &ptype))
	assert.Equal(t, ProductTypeSimple, ptype)

	var dt DiscountType
	require.NoError(t, json.Unmarshal([]byte(`""`), &dt))
	assert.Equal(t, DiscountTypeFixedCart, dt)

	var ws WebhookStatus
	require.NoError(t, json.Unmarshal([]byte(`"zombie"`), &ws))
	assert.Equal(t, WebhookStatusActive, ws)
}

func TestEnumKeepsKnownValues(t *testing.T) {
	var status OrderStatus
	require.NoError(t, json.Unmarshal([]byte(`"completed"`), &status))
	assert.Equal(t, OrderStatusCompleted, status)

	var order SortOrder
	require.NoError(t, json.Unmarshal([]byte(`"asc"`), &order))
	assert.Equal(t, SortAsc, order)
}
