package woocommerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// OrderRefund is a refund issued against one order, addressed under the
// order's path.
type OrderRefund struct {
	ID              *int64     `json:"id,omitempty"`
	DateCreated     *DateTime  `json:"date_created,omitempty"`
	Amount          *string    `json:"amount,omitempty"`
	Reason          *string    `json:"reason,omitempty"`
	RefundedBy      *int64     `json:"refunded_by,omitempty"`
	RefundedPayment *bool      `json:"refunded_payment,omitempty"`
	MetaData        []MetaData `json:"meta_data,omitempty"`
	LineItems       []LineItem `json:"line_items,omitempty"`
	// APIRefund is write-only: when false the refund is recorded without
	// hitting the payment gateway.
	APIRefund *bool `json:"api_refund,omitempty"`
}

// Refund is a store-wide refund record as returned by the top-level
// /refunds endpoint. It is an OrderRefund plus the id of the order it
// belongs to; composition, not a subtype.
type Refund struct {
	OrderRefund
	ParentID *int64 `json:"parent_id,omitempty"`
}

// ListOrderRefunds fetches the refunds of an order.
func (c *Client) ListOrderRefunds(ctx context.Context, orderID int64, opts *ListOptions, reqOpts ...RequestOption) ([]OrderRefund, error) {
	var o ListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeOrderRefund, o.resolvedPerPage()), nil
	}
	return do[[]OrderRefund](ctx, c, http.MethodGet, orderRefundsPath(orderID), o.values(), nil)
}

// GetOrderRefund fetches a single refund of an order.
func (c *Client) GetOrderRefund(ctx context.Context, orderID, refundID int64, reqOpts ...RequestOption) (*OrderRefund, error) {
	if c.fakeMode(reqOpts) {
		r := fakeOrderRefund()
		r.ID = ptr(refundID)
		return &r, nil
	}
	return do[*OrderRefund](ctx, c, http.MethodGet, orderRefundPath(orderID, refundID), nil, nil)
}

// CreateOrderRefund issues a refund against an order.
func (c *Client) CreateOrderRefund(ctx context.Context, orderID int64, refund *OrderRefund, reqOpts ...RequestOption) (*OrderRefund, error) {
	if c.fakeMode(reqOpts) {
		r := fakeOrderRefund()
		return &r, nil
	}
	return do[*OrderRefund](ctx, c, http.MethodPost, orderRefundsPath(orderID), nil, refund)
}

// DeleteOrderRefund deletes a refund record. Refunds cannot be trashed,
// so the API requires force.
func (c *Client) DeleteOrderRefund(ctx context.Context, orderID, refundID int64, force bool, reqOpts ...RequestOption) (*OrderRefund, error) {
	if c.fakeMode(reqOpts) {
		r := fakeOrderRefund()
		r.ID = ptr(refundID)
		return &r, nil
	}
	return do[*OrderRefund](ctx, c, http.MethodDelete, orderRefundPath(orderID, refundID), forceQuery(force), nil)
}

// RefundListOptions filters the store-wide refund list.
type RefundListOptions struct {
	ListOptions
	ParentIn      []int64
	ParentExclude []int64
	DecimalPoints *int
}

func (o RefundListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryIDs(q, "parent", o.ParentIn)
	setQueryIDs(q, "parent_exclude", o.ParentExclude)
	setQueryInt(q, "dp", o.DecimalPoints)
	return q
}

// ListRefunds fetches refunds across all orders.
func (c *Client) ListRefunds(ctx context.Context, opts *RefundListOptions, reqOpts ...RequestOption) ([]Refund, error) {
	var o RefundListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeRefund, o.resolvedPerPage()), nil
	}
	return do[[]Refund](ctx, c, http.MethodGet, refundsPath, o.values(), nil)
}

func fakeOrderRefund() OrderRefund {
	return OrderRefund{
		ID:              ptr(faker.ID()),
		DateCreated:     fakeTime(),
		Amount:          ptr(faker.Price()),
		Reason:          ptr(faker.Sentence()),
		RefundedBy:      ptr(faker.ID()),
		RefundedPayment: ptr(faker.Bool()),
		MetaData:        faker.List(fakeMetaData),
		LineItems:       faker.List(fakeLineItem),
	}
}

func fakeRefund() Refund {
	return Refund{
		OrderRefund: fakeOrderRefund(),
		ParentID:    ptr(faker.ID()),
	}
}
