package woocommerce

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeDecodesWireLayout(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-17T09:15:30"`), &d))
	assert.Equal(t, time.Date(2024, 5, 17, 9, 15, 30, 0, time.UTC), d.Time)
}

func TestDateTimeDecodesFallbackLayouts(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-17T09:15:30Z"`), &d))
	assert.False(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"2024-05-17"`), &d))
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestDateTimeToleratesGarbage(t *testing.T) {
	for _, input := range []string{`null`, `""`, `"not a date"`, `"17/05/2024"`} {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(input), &d), "input %s", input)
		assert.True(t, d.IsZero(), "input %s", input)
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	d := NewDateTime(time.Date(2024, 5, 17, 9, 15, 30, 999999999, time.UTC))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-17T09:15:30"`, string(raw))

	var back DateTime
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back.Time))
}

func TestZeroDateTimeMarshalsToNull(t *testing.T) {
	raw, err := json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestBatchOmitsEmptyKeys(t *testing.T) {
	raw, err := json.Marshal(Batch[Coupon]{Delete: []int64{1, 2}})
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "create")
	assert.NotContains(t, m, "update")
	assert.Contains(t, m, "delete")
}

// Encoding a decoded entity must reproduce the original document: fields
// absent on the way in stay absent on the way out.
func TestModelRoundTripPreservesOmission(t *testing.T) {
	const doc = `{"id":42,"name":"Hoodie","type":"simple","regular_price":"29.99"}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(doc), &p))
	require.NotNil(t, p.ID)
	assert.Nil(t, p.SKU)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Contains(t, m, "id")
	assert.Contains(t, m, "regular_price")
	assert.NotContains(t, m, "sku")
	assert.NotContains(t, m, "date_created")
}

func TestFakeEntityRoundTrips(t *testing.T) {
	entities := []any{
		fakeProduct(), fakeOrder(), fakeCustomer(), fakeCoupon(),
		fakeTaxRate(), fakeWebhook(), fakeShippingZone(), fakeOrderNote(),
	}
	for _, e := range entities {
		first, err := json.Marshal(e)
		require.NoError(t, err)

		// Decode into a generic map and re-encode; key sets must match.
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(first, &m))
		second, err := json.Marshal(m)
		require.NoError(t, err)

		var a, b map[string]any
		require.NoError(t, json.Unmarshal(first, &a))
		require.NoError(t, json.Unmarshal(second, &b))
		assert.Equal(t, len(a), len(b))
	}
}
