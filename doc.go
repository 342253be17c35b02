// Package woocommerce is a typed client for the WooCommerce REST API
// (wp-json/wc/v3). It authenticates requests with HTTP Basic Auth, maps
// snake_case JSON payloads to typed model structs and exposes one method
// per API endpoint: products, orders, customers, coupons, taxes, webhooks,
// shipping zones, payment gateways, settings, reports, system status and
// store data.
//
// Every operation can be short-circuited to synthesized data, either for
// the whole client (WithFakerDefault) or per call (WithFaker). In fake
// mode no network request is made and the returned entities are fully
// populated with plausible random values, which makes the client usable
// for UI prototyping and tests without a live store.
//
// The client is deliberately thin: transport failures and non-2xx
// responses surface to the caller unchanged (as *APIError), there are no
// retries and no caching. Timeouts and cancellation belong to the
// http.Client and the context passed to each call.
package woocommerce
