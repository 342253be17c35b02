package woocommerce

import (
	"fmt"
	"net/url"
)

// Endpoint paths are resolved by pure helpers so they can be tested
// without a client. Caller-supplied string segments (tax class slugs,
// setting ids) are always path-escaped.

const (
	productsPath          = "/products"
	productsBatchPath     = "/products/batch"
	productCategoriesPath = "/products/categories"
	productTagsPath       = "/products/tags"
	productReviewsPath    = "/products/reviews"
	ordersPath            = "/orders"
	ordersBatchPath       = "/orders/batch"
	refundsPath           = "/refunds"
	customersPath         = "/customers"
	customersBatchPath    = "/customers/batch"
	couponsPath           = "/coupons"
	couponsBatchPath      = "/coupons/batch"
	taxRatesPath          = "/taxes"
	taxRatesBatchPath     = "/taxes/batch"
	taxClassesPath        = "/taxes/classes"
	webhooksPath          = "/webhooks"
	webhooksBatchPath     = "/webhooks/batch"
	shippingZonesPath     = "/shipping/zones"
	shippingMethodsPath   = "/shipping_methods"
	paymentGatewaysPath   = "/payment_gateways"
	settingsPath          = "/settings"
	reportsPath           = "/reports"
	reportSalesPath       = "/reports/sales"
	reportTopSellersPath  = "/reports/top_sellers"
	countriesPath         = "/data/countries"
	currenciesPath        = "/data/currencies"
	currentCurrencyPath   = "/data/currencies/current"
	systemStatusPath      = "/system_status"
	systemStatusToolsPath = "/system_status/tools"
)

func productPath(id int64) string { return fmt.Sprintf("%s/%d", productsPath, id) }

func productVariationsPath(productID int64) string {
	return fmt.Sprintf("%s/%d/variations", productsPath, productID)
}

func productVariationPath(productID, variationID int64) string {
	return fmt.Sprintf("%s/%d/variations/%d", productsPath, productID, variationID)
}

func productVariationsBatchPath(productID int64) string {
	return fmt.Sprintf("%s/%d/variations/batch", productsPath, productID)
}

func productCategoryPath(id int64) string { return fmt.Sprintf("%s/%d", productCategoriesPath, id) }
func productTagPath(id int64) string      { return fmt.Sprintf("%s/%d", productTagsPath, id) }
func productReviewPath(id int64) string   { return fmt.Sprintf("%s/%d", productReviewsPath, id) }

func orderPath(id int64) string { return fmt.Sprintf("%s/%d", ordersPath, id) }

func orderNotesPath(orderID int64) string {
	return fmt.Sprintf("%s/%d/notes", ordersPath, orderID)
}

func orderNotePath(orderID, noteID int64) string {
	return fmt.Sprintf("%s/%d/notes/%d", ordersPath, orderID, noteID)
}

func orderRefundsPath(orderID int64) string {
	return fmt.Sprintf("%s/%d/refunds", ordersPath, orderID)
}

func orderRefundPath(orderID, refundID int64) string {
	return fmt.Sprintf("%s/%d/refunds/%d", ordersPath, orderID, refundID)
}

func customerPath(id int64) string { return fmt.Sprintf("%s/%d", customersPath, id) }

func customerDownloadsPath(customerID int64) string {
	return fmt.Sprintf("%s/%d/downloads", customersPath, customerID)
}

func couponPath(id int64) string  { return fmt.Sprintf("%s/%d", couponsPath, id) }
func taxRatePath(id int64) string { return fmt.Sprintf("%s/%d", taxRatesPath, id) }

func taxClassPath(slug string) string {
	return taxClassesPath + "/" + url.PathEscape(slug)
}

func webhookPath(id int64) string { return fmt.Sprintf("%s/%d", webhooksPath, id) }

func shippingZonePath(id int64) string { return fmt.Sprintf("%s/%d", shippingZonesPath, id) }

func shippingZoneLocationsPath(zoneID int64) string {
	return fmt.Sprintf("%s/%d/locations", shippingZonesPath, zoneID)
}

func shippingZoneMethodsPath(zoneID int64) string {
	return fmt.Sprintf("%s/%d/methods", shippingZonesPath, zoneID)
}

func shippingZoneMethodPath(zoneID, instanceID int64) string {
	return fmt.Sprintf("%s/%d/methods/%d", shippingZonesPath, zoneID, instanceID)
}

func shippingMethodPath(id string) string {
	return shippingMethodsPath + "/" + url.PathEscape(id)
}

func paymentGatewayPath(id string) string {
	return paymentGatewaysPath + "/" + url.PathEscape(id)
}

func settingGroupPath(group string) string {
	return settingsPath + "/" + url.PathEscape(group)
}

func settingOptionPath(group, id string) string {
	return settingGroupPath(group) + "/" + url.PathEscape(id)
}

func settingOptionsBatchPath(group string) string {
	return settingGroupPath(group) + "/batch"
}

func reportTotalsPath(kind string) string {
	return reportsPath + "/" + url.PathEscape(kind) + "/totals"
}

func currencyPath(code string) string {
	return currenciesPath + "/" + url.PathEscape(code)
}

func systemStatusToolPath(id string) string {
	return systemStatusToolsPath + "/" + url.PathEscape(id)
}
