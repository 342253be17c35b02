package woocommerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// OrderNote is a note attached to an order, either internal or shown to
// the customer.
type OrderNote struct {
	ID           *int64    `json:"id,omitempty"`
	Author       *string   `json:"author,omitempty"`
	DateCreated  *DateTime `json:"date_created,omitempty"`
	Note         *string   `json:"note,omitempty"`
	CustomerNote *bool     `json:"customer_note,omitempty"`
	AddedByUser  *bool     `json:"added_by_user,omitempty"`
}

// OrderNoteListOptions filters note list reads. Notes are not paginated.
type OrderNoteListOptions struct {
	Context ListContext
	// Type limits the list to "customer" or "internal" notes; "any" or
	// empty returns both.
	Type string
}

func (o OrderNoteListOptions) values() url.Values {
	q := url.Values{}
	setQueryString(q, "context", string(o.Context))
	setQueryString(q, "type", o.Type)
	return q
}

// ListOrderNotes fetches all notes of an order.
func (c *Client) ListOrderNotes(ctx context.Context, orderID int64, opts *OrderNoteListOptions, reqOpts ...RequestOption) ([]OrderNote, error) {
	var o OrderNoteListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeOrderNote, defaultPerPage), nil
	}
	return do[[]OrderNote](ctx, c, http.MethodGet, orderNotesPath(orderID), o.values(), nil)
}

// GetOrderNote fetches a single note of an order.
func (c *Client) GetOrderNote(ctx context.Context, orderID, noteID int64, reqOpts ...RequestOption) (*OrderNote, error) {
	if c.fakeMode(reqOpts) {
		n := fakeOrderNote()
		n.ID = ptr(noteID)
		return &n, nil
	}
	return do[*OrderNote](ctx, c, http.MethodGet, orderNotePath(orderID, noteID), nil, nil)
}

// CreateOrderNote adds a note to an order.
func (c *Client) CreateOrderNote(ctx context.Context, orderID int64, note *OrderNote, reqOpts ...RequestOption) (*OrderNote, error) {
	if c.fakeMode(reqOpts) {
		n := fakeOrderNote()
		return &n, nil
	}
	return do[*OrderNote](ctx, c, http.MethodPost, orderNotesPath(orderID), nil, note)
}

// DeleteOrderNote deletes a note. Notes cannot be trashed, so the API
// requires force.
func (c *Client) DeleteOrderNote(ctx context.Context, orderID, noteID int64, force bool, reqOpts ...RequestOption) (*OrderNote, error) {
	if c.fakeMode(reqOpts) {
		n := fakeOrderNote()
		n.ID = ptr(noteID)
		return &n, nil
	}
	return do[*OrderNote](ctx, c, http.MethodDelete, orderNotePath(orderID, noteID), forceQuery(force), nil)
}

func fakeOrderNote() OrderNote {
	return OrderNote{
		ID:           ptr(faker.ID()),
		Author:       ptr(faker.Username()),
		DateCreated:  fakeTime(),
		Note:         ptr(faker.Sentence()),
		CustomerNote: ptr(faker.Bool()),
		AddedByUser:  ptr(faker.Bool()),
	}
}
