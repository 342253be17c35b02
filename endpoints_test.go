package woocommerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourcePaths(t *testing.T) {
	assert.Equal(t, "/products/42", productPath(42))
	assert.Equal(t, "/products/42/variations/7", productVariationPath(42, 7))
	assert.Equal(t, "/products/42/variations/batch", productVariationsBatchPath(42))
	assert.Equal(t, "/orders/9/notes/3", orderNotePath(9, 3))
	assert.Equal(t, "/orders/9/refunds/3", orderRefundPath(9, 3))
	assert.Equal(t, "/customers/5/downloads", customerDownloadsPath(5))
	assert.Equal(t, "/webhooks/5", webhookPath(5))
	assert.Equal(t, "/shipping/zones/2/methods/8", shippingZoneMethodPath(2, 8))
	assert.Equal(t, "/reports/orders/totals", reportTotalsPath("orders"))
	assert.Equal(t, "/data/currencies/EUR", currencyPath("EUR"))
	assert.Equal(t, "/system_status/tools/clear_transients", systemStatusToolPath("clear_transients"))
}

func TestStringSegmentsAreEscaped(t *testing.T) {
	assert.Equal(t, "/taxes/classes/reduced%20rate", taxClassPath("reduced rate"))
	assert.Equal(t, "/settings/general/woocommerce_currency", settingOptionPath("general", "woocommerce_currency"))
	assert.Equal(t, "/settings/a%2Fb/c%2Fd", settingOptionPath("a/b", "c/d"))
	assert.Equal(t, "/payment_gateways/cod%3Fx", paymentGatewayPath("cod?x"))
}
