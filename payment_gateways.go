package woocommerce

import (
	"context"
	"net/http"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// PaymentGateway is a payment gateway and its store configuration.
type PaymentGateway struct {
	ID                *string                  `json:"id,omitempty"`
	Title             *string                  `json:"title,omitempty"`
	Description       *string                  `json:"description,omitempty"`
	Order             *int                     `json:"order,omitempty"`
	Enabled           *bool                    `json:"enabled,omitempty"`
	MethodTitle       *string                  `json:"method_title,omitempty"`
	MethodDescription *string                  `json:"method_description,omitempty"`
	MethodSupports    []string                 `json:"method_supports,omitempty"`
	Settings          map[string]SettingOption `json:"settings,omitempty"`
}

// ListPaymentGateways fetches all payment gateways.
func (c *Client) ListPaymentGateways(ctx context.Context, reqOpts ...RequestOption) ([]PaymentGateway, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakePaymentGateway, 3), nil
	}
	return do[[]PaymentGateway](ctx, c, http.MethodGet, paymentGatewaysPath, nil, nil)
}

// GetPaymentGateway fetches a single gateway by id.
func (c *Client) GetPaymentGateway(ctx context.Context, id string, reqOpts ...RequestOption) (*PaymentGateway, error) {
	if c.fakeMode(reqOpts) {
		g := fakePaymentGateway()
		g.ID = ptr(id)
		return &g, nil
	}
	return do[*PaymentGateway](ctx, c, http.MethodGet, paymentGatewayPath(id), nil, nil)
}

// UpdatePaymentGateway updates the gateway identified by gateway.ID.
func (c *Client) UpdatePaymentGateway(ctx context.Context, gateway *PaymentGateway, reqOpts ...RequestOption) (*PaymentGateway, error) {
	if c.fakeMode(reqOpts) {
		g := fakePaymentGateway()
		return &g, nil
	}
	if gateway == nil || gateway.ID == nil {
		return nil, ErrMissingID
	}
	return do[*PaymentGateway](ctx, c, http.MethodPut, paymentGatewayPath(*gateway.ID), nil, gateway)
}

func fakePaymentGateway() PaymentGateway {
	return PaymentGateway{
		ID:                ptr(faker.Item("bacs", "cheque", "cod", "paypal")),
		Title:             ptr(faker.Word()),
		Description:       ptr(faker.Sentence()),
		Order:             ptr(faker.Int(0, 10)),
		Enabled:           ptr(faker.Bool()),
		MethodTitle:       ptr(faker.Word()),
		MethodDescription: ptr(faker.Sentence()),
		MethodSupports:    []string{"products"},
	}
}
