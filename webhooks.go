package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// WebhookStatus is the delivery state of a webhook.
type WebhookStatus string

const (
	WebhookStatusActive   WebhookStatus = "active"
	WebhookStatusPaused   WebhookStatus = "paused"
	WebhookStatusDisabled WebhookStatus = "disabled"
)

func webhookStatusFromString(s string) WebhookStatus {
	switch WebhookStatus(s) {
	case WebhookStatusActive, WebhookStatusPaused, WebhookStatusDisabled:
		return WebhookStatus(s)
	}
	return WebhookStatusActive
}

func (s *WebhookStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = webhookStatusFromString(raw)
	return nil
}

// Webhook is a store webhook subscription.
type Webhook struct {
	ID     *int64        `json:"id,omitempty"`
	Name   *string       `json:"name,omitempty"`
	Status WebhookStatus `json:"status,omitempty"`
	// Topic is resource.event, e.g. "order.created".
	Topic       *string  `json:"topic,omitempty"`
	Resource    *string  `json:"resource,omitempty"`
	Event       *string  `json:"event,omitempty"`
	Hooks       []string `json:"hooks,omitempty"`
	DeliveryURL *string  `json:"delivery_url,omitempty"`
	// Secret is write-only; it signs delivery payloads.
	Secret       *string   `json:"secret,omitempty"`
	DateCreated  *DateTime `json:"date_created,omitempty"`
	DateModified *DateTime `json:"date_modified,omitempty"`
}

// WebhookListOptions filters webhook list reads.
type WebhookListOptions struct {
	ListOptions
	Status WebhookStatus
}

func (o WebhookListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "status", string(o.Status))
	return q
}

// ListWebhooks fetches a page of webhooks.
func (c *Client) ListWebhooks(ctx context.Context, opts *WebhookListOptions, reqOpts ...RequestOption) ([]Webhook, error) {
	var o WebhookListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeWebhook, o.resolvedPerPage()), nil
	}
	return do[[]Webhook](ctx, c, http.MethodGet, webhooksPath, o.values(), nil)
}

// GetWebhook fetches a single webhook by id.
func (c *Client) GetWebhook(ctx context.Context, id int64, reqOpts ...RequestOption) (*Webhook, error) {
	if c.fakeMode(reqOpts) {
		w := fakeWebhook()
		w.ID = ptr(id)
		return &w, nil
	}
	return do[*Webhook](ctx, c, http.MethodGet, webhookPath(id), nil, nil)
}

// CreateWebhook registers a webhook.
func (c *Client) CreateWebhook(ctx context.Context, webhook *Webhook, reqOpts ...RequestOption) (*Webhook, error) {
	if c.fakeMode(reqOpts) {
		w := fakeWebhook()
		return &w, nil
	}
	return do[*Webhook](ctx, c, http.MethodPost, webhooksPath, nil, webhook)
}

// UpdateWebhook updates the webhook identified by webhook.ID.
func (c *Client) UpdateWebhook(ctx context.Context, webhook *Webhook, reqOpts ...RequestOption) (*Webhook, error) {
	if c.fakeMode(reqOpts) {
		w := fakeWebhook()
		return &w, nil
	}
	if webhook == nil || webhook.ID == nil {
		return nil, ErrMissingID
	}
	return do[*Webhook](ctx, c, http.MethodPut, webhookPath(*webhook.ID), nil, webhook)
}

// DeleteWebhook deletes a webhook and reports success. Any 2xx response
// counts as deleted.
func (c *Client) DeleteWebhook(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (bool, error) {
	if c.fakeMode(reqOpts) {
		return true, nil
	}
	if _, err := do[json.RawMessage](ctx, c, http.MethodDelete, webhookPath(id), forceQuery(force), nil); err != nil {
		return false, err
	}
	return true, nil
}

// BatchUpdateWebhooks creates, updates and deletes webhooks in one call.
func (c *Client) BatchUpdateWebhooks(ctx context.Context, batch *Batch[Webhook], reqOpts ...RequestOption) (*BatchResult[Webhook], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeWebhook), nil
	}
	return do[*BatchResult[Webhook]](ctx, c, http.MethodPost, webhooksBatchPath, nil, batch)
}

func fakeWebhook() Webhook {
	resource := faker.Item("order", "product", "customer", "coupon")
	event := faker.Item("created", "updated", "deleted")
	return Webhook{
		ID:           ptr(faker.ID()),
		Name:         ptr(faker.Word()),
		Status:       faker.Item(WebhookStatusActive, WebhookStatusPaused, WebhookStatusDisabled),
		Topic:        ptr(resource + "." + event),
		Resource:     ptr(resource),
		Event:        ptr(event),
		Hooks:        faker.List(faker.Word),
		DeliveryURL:  ptr(faker.URL()),
		DateCreated:  fakeTime(),
		DateModified: fakeTime(),
	}
}
