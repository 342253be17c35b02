package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusTrash      OrderStatus = "trash"
)

func orderStatusFromString(s string) OrderStatus {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusOnHold, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusRefunded, OrderStatusFailed, OrderStatusTrash:
		return OrderStatus(s)
	}
	return OrderStatusPending
}

func (s *OrderStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = orderStatusFromString(raw)
	return nil
}

// ItemTax is the per-rate tax breakdown attached to line items, shipping
// lines and fee lines.
type ItemTax struct {
	ID       *int64  `json:"id,omitempty"`
	Total    *string `json:"total,omitempty"`
	Subtotal *string `json:"subtotal,omitempty"`
}

// LineItem is one product position on an order.
type LineItem struct {
	ID          *int64     `json:"id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	ProductID   *int64     `json:"product_id,omitempty"`
	VariationID *int64     `json:"variation_id,omitempty"`
	Quantity    *int       `json:"quantity,omitempty"`
	TaxClass    *string    `json:"tax_class,omitempty"`
	Subtotal    *string    `json:"subtotal,omitempty"`
	SubtotalTax *string    `json:"subtotal_tax,omitempty"`
	Total       *string    `json:"total,omitempty"`
	TotalTax    *string    `json:"total_tax,omitempty"`
	Taxes       []ItemTax  `json:"taxes,omitempty"`
	MetaData    []MetaData `json:"meta_data,omitempty"`
	SKU         *string    `json:"sku,omitempty"`
	Price       *float64   `json:"price,omitempty"`
}

// TaxLine is one aggregated tax rate applied to an order.
type TaxLine struct {
	ID               *int64     `json:"id,omitempty"`
	RateCode         *string    `json:"rate_code,omitempty"`
	RateID           *int64     `json:"rate_id,omitempty"`
	Label            *string    `json:"label,omitempty"`
	Compound         *bool      `json:"compound,omitempty"`
	TaxTotal         *string    `json:"tax_total,omitempty"`
	ShippingTaxTotal *string    `json:"shipping_tax_total,omitempty"`
	MetaData         []MetaData `json:"meta_data,omitempty"`
}

// ShippingLine is one shipping charge on an order.
type ShippingLine struct {
	ID          *int64     `json:"id,omitempty"`
	MethodTitle *string    `json:"method_title,omitempty"`
	MethodID    *string    `json:"method_id,omitempty"`
	Total       *string    `json:"total,omitempty"`
	TotalTax    *string    `json:"total_tax,omitempty"`
	Taxes       []ItemTax  `json:"taxes,omitempty"`
	MetaData    []MetaData `json:"meta_data,omitempty"`
}

// FeeLine is one extra fee on an order.
type FeeLine struct {
	ID        *int64     `json:"id,omitempty"`
	Name      *string    `json:"name,omitempty"`
	TaxClass  *string    `json:"tax_class,omitempty"`
	TaxStatus TaxStatus  `json:"tax_status,omitempty"`
	Total     *string    `json:"total,omitempty"`
	TotalTax  *string    `json:"total_tax,omitempty"`
	Taxes     []ItemTax  `json:"taxes,omitempty"`
	MetaData  []MetaData `json:"meta_data,omitempty"`
}

// CouponLine is one coupon applied to an order.
type CouponLine struct {
	ID          *int64     `json:"id,omitempty"`
	Code        *string    `json:"code,omitempty"`
	Discount    *string    `json:"discount,omitempty"`
	DiscountTax *string    `json:"discount_tax,omitempty"`
	MetaData    []MetaData `json:"meta_data,omitempty"`
}

// RefundSummary is the abbreviated refund record embedded in an order.
type RefundSummary struct {
	ID     *int64  `json:"id,omitempty"`
	Reason *string `json:"reason,omitempty"`
	Total  *string `json:"total,omitempty"`
}

// Order is a WooCommerce order.
type Order struct {
	ID                 *int64          `json:"id,omitempty"`
	ParentID           *int64          `json:"parent_id,omitempty"`
	Number             *string         `json:"number,omitempty"`
	OrderKey           *string         `json:"order_key,omitempty"`
	CreatedVia         *string         `json:"created_via,omitempty"`
	Version            *string         `json:"version,omitempty"`
	Status             OrderStatus     `json:"status,omitempty"`
	Currency           *string         `json:"currency,omitempty"`
	DateCreated        *DateTime       `json:"date_created,omitempty"`
	DateModified       *DateTime       `json:"date_modified,omitempty"`
	DiscountTotal      *string         `json:"discount_total,omitempty"`
	DiscountTax        *string         `json:"discount_tax,omitempty"`
	ShippingTotal      *string         `json:"shipping_total,omitempty"`
	ShippingTax        *string         `json:"shipping_tax,omitempty"`
	CartTax            *string         `json:"cart_tax,omitempty"`
	Total              *string         `json:"total,omitempty"`
	TotalTax           *string         `json:"total_tax,omitempty"`
	PricesIncludeTax   *bool           `json:"prices_include_tax,omitempty"`
	CustomerID         *int64          `json:"customer_id,omitempty"`
	CustomerIPAddress  *string         `json:"customer_ip_address,omitempty"`
	CustomerUserAgent  *string         `json:"customer_user_agent,omitempty"`
	CustomerNote       *string         `json:"customer_note,omitempty"`
	Billing            *Address        `json:"billing,omitempty"`
	Shipping           *Address        `json:"shipping,omitempty"`
	PaymentMethod      *string         `json:"payment_method,omitempty"`
	PaymentMethodTitle *string         `json:"payment_method_title,omitempty"`
	TransactionID      *string         `json:"transaction_id,omitempty"`
	DatePaid           *DateTime       `json:"date_paid,omitempty"`
	DateCompleted      *DateTime       `json:"date_completed,omitempty"`
	CartHash           *string         `json:"cart_hash,omitempty"`
	MetaData           []MetaData      `json:"meta_data,omitempty"`
	LineItems          []LineItem      `json:"line_items,omitempty"`
	TaxLines           []TaxLine       `json:"tax_lines,omitempty"`
	ShippingLines      []ShippingLine  `json:"shipping_lines,omitempty"`
	FeeLines           []FeeLine       `json:"fee_lines,omitempty"`
	CouponLines        []CouponLine    `json:"coupon_lines,omitempty"`
	Refunds            []RefundSummary `json:"refunds,omitempty"`
	// SetPaid is write-only: it marks the order paid on create/update.
	SetPaid *bool `json:"set_paid,omitempty"`
}

// OrderListOptions filters order list reads.
type OrderListOptions struct {
	ListOptions
	Status        OrderStatus
	Customer      *int64
	Product       *int64
	ParentIn      []int64
	DecimalPoints *int
}

func (o OrderListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "status", string(o.Status))
	setQueryInt64(q, "customer", o.Customer)
	setQueryInt64(q, "product", o.Product)
	setQueryIDs(q, "parent", o.ParentIn)
	setQueryInt(q, "dp", o.DecimalPoints)
	return q
}

// ListOrders fetches a page of orders.
func (c *Client) ListOrders(ctx context.Context, opts *OrderListOptions, reqOpts ...RequestOption) ([]Order, error) {
	var o OrderListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeOrder, o.resolvedPerPage()), nil
	}
	return do[[]Order](ctx, c, http.MethodGet, ordersPath, o.values(), nil)
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, id int64, reqOpts ...RequestOption) (*Order, error) {
	if c.fakeMode(reqOpts) {
		o := fakeOrder()
		o.ID = ptr(id)
		return &o, nil
	}
	return do[*Order](ctx, c, http.MethodGet, orderPath(id), nil, nil)
}

// CreateOrder creates an order. The returned entity carries the id and
// totals the store assigned, not the caller's placeholders.
func (c *Client) CreateOrder(ctx context.Context, order *Order, reqOpts ...RequestOption) (*Order, error) {
	if c.fakeMode(reqOpts) {
		o := fakeOrder()
		return &o, nil
	}
	return do[*Order](ctx, c, http.MethodPost, ordersPath, nil, order)
}

// UpdateOrder updates the order identified by order.ID.
func (c *Client) UpdateOrder(ctx context.Context, order *Order, reqOpts ...RequestOption) (*Order, error) {
	if c.fakeMode(reqOpts) {
		o := fakeOrder()
		return &o, nil
	}
	if order == nil || order.ID == nil {
		return nil, ErrMissingID
	}
	return do[*Order](ctx, c, http.MethodPut, orderPath(*order.ID), nil, order)
}

// DeleteOrder deletes an order. With force the order is removed
// permanently instead of trashed.
func (c *Client) DeleteOrder(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (*Order, error) {
	if c.fakeMode(reqOpts) {
		o := fakeOrder()
		o.ID = ptr(id)
		return &o, nil
	}
	return do[*Order](ctx, c, http.MethodDelete, orderPath(id), forceQuery(force), nil)
}

// BatchUpdateOrders creates, updates and deletes orders in one call.
func (c *Client) BatchUpdateOrders(ctx context.Context, batch *Batch[Order], reqOpts ...RequestOption) (*BatchResult[Order], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeOrder), nil
	}
	return do[*BatchResult[Order]](ctx, c, http.MethodPost, ordersBatchPath, nil, batch)
}

func fakeOrder() Order {
	return Order{
		ID:                 ptr(faker.ID()),
		ParentID:           ptr(faker.ID()),
		Number:             ptr(faker.Word()),
		OrderKey:           ptr(faker.Word()),
		CreatedVia:         ptr("rest-api"),
		Version:            ptr("8.0.0"),
		Status:             faker.Item(OrderStatusPending, OrderStatusProcessing, OrderStatusOnHold, OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded, OrderStatusFailed),
		Currency:           ptr(faker.CurrencyCode()),
		DateCreated:        fakeTime(),
		DateModified:       fakeTime(),
		DiscountTotal:      ptr(faker.Price()),
		DiscountTax:        ptr(faker.Price()),
		ShippingTotal:      ptr(faker.Price()),
		ShippingTax:        ptr(faker.Price()),
		CartTax:            ptr(faker.Price()),
		Total:              ptr(faker.Price()),
		TotalTax:           ptr(faker.Price()),
		PricesIncludeTax:   ptr(faker.Bool()),
		CustomerID:         ptr(faker.ID()),
		CustomerIPAddress:  ptr(faker.IPv4()),
		CustomerUserAgent:  ptr(faker.UserAgent()),
		CustomerNote:       ptr(faker.Sentence()),
		Billing:            ptr(fakeAddress()),
		Shipping:           ptr(fakeAddress()),
		PaymentMethod:      ptr(faker.Word()),
		PaymentMethodTitle: ptr(faker.Word()),
		TransactionID:      ptr(faker.Word()),
		DatePaid:           fakeTime(),
		DateCompleted:      fakeTime(),
		CartHash:           ptr(faker.Word()),
		MetaData:           faker.List(fakeMetaData),
		LineItems:          faker.List(fakeLineItem),
		TaxLines:           faker.List(fakeTaxLine),
		ShippingLines:      faker.List(fakeShippingLine),
		FeeLines:           faker.List(fakeFeeLine),
		CouponLines:        faker.List(fakeCouponLine),
		Refunds:            faker.List(fakeRefundSummary),
	}
}

func fakeItemTax() ItemTax {
	return ItemTax{
		ID:       ptr(faker.ID()),
		Total:    ptr(faker.Price()),
		Subtotal: ptr(faker.Price()),
	}
}

func fakeLineItem() LineItem {
	return LineItem{
		ID:          ptr(faker.ID()),
		Name:        ptr(faker.Word()),
		ProductID:   ptr(faker.ID()),
		VariationID: ptr(faker.ID()),
		Quantity:    ptr(faker.Int(1, 10)),
		TaxClass:    ptr(faker.Word()),
		Subtotal:    ptr(faker.Price()),
		SubtotalTax: ptr(faker.Price()),
		Total:       ptr(faker.Price()),
		TotalTax:    ptr(faker.Price()),
		Taxes:       faker.List(fakeItemTax),
		MetaData:    faker.List(fakeMetaData),
		SKU:         ptr(faker.Word()),
		Price:       ptr(float64(faker.Int(1, 500))),
	}
}

func fakeTaxLine() TaxLine {
	return TaxLine{
		ID:               ptr(faker.ID()),
		RateCode:         ptr(faker.Word()),
		RateID:           ptr(faker.ID()),
		Label:            ptr(faker.Word()),
		Compound:         ptr(faker.Bool()),
		TaxTotal:         ptr(faker.Price()),
		ShippingTaxTotal: ptr(faker.Price()),
		MetaData:         faker.List(fakeMetaData),
	}
}

func fakeShippingLine() ShippingLine {
	return ShippingLine{
		ID:          ptr(faker.ID()),
		MethodTitle: ptr(faker.Word()),
		MethodID:    ptr(faker.Word()),
		Total:       ptr(faker.Price()),
		TotalTax:    ptr(faker.Price()),
		Taxes:       faker.List(fakeItemTax),
		MetaData:    faker.List(fakeMetaData),
	}
}

func fakeFeeLine() FeeLine {
	return FeeLine{
		ID:        ptr(faker.ID()),
		Name:      ptr(faker.Word()),
		TaxClass:  ptr(faker.Word()),
		TaxStatus: faker.Item(TaxStatusTaxable, TaxStatusNone),
		Total:     ptr(faker.Price()),
		TotalTax:  ptr(faker.Price()),
		Taxes:     faker.List(fakeItemTax),
		MetaData:  faker.List(fakeMetaData),
	}
}

func fakeCouponLine() CouponLine {
	return CouponLine{
		ID:          ptr(faker.ID()),
		Code:        ptr(faker.Word()),
		Discount:    ptr(faker.Price()),
		DiscountTax: ptr(faker.Price()),
		MetaData:    faker.List(fakeMetaData),
	}
}

func fakeRefundSummary() RefundSummary {
	return RefundSummary{
		ID:     ptr(faker.ID()),
		Reason: ptr(faker.Sentence()),
		Total:  ptr(faker.Price()),
	}
}
