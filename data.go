package woocommerce

import (
	"context"
	"net/http"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// CountryState is one state or province of a country.
type CountryState struct {
	Code *string `json:"code,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Country is a country with its states.
type Country struct {
	Code   *string        `json:"code,omitempty"`
	Name   *string        `json:"name,omitempty"`
	States []CountryState `json:"states,omitempty"`
}

// Currency is a currency the store can trade in.
type Currency struct {
	Code   *string `json:"code,omitempty"`
	Name   *string `json:"name,omitempty"`
	Symbol *string `json:"symbol,omitempty"`
}

// ListCountries fetches all countries and their states.
func (c *Client) ListCountries(ctx context.Context, reqOpts ...RequestOption) ([]Country, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeCountry, defaultPerPage), nil
	}
	return do[[]Country](ctx, c, http.MethodGet, countriesPath, nil, nil)
}

// ListCurrencies fetches all known currencies.
func (c *Client) ListCurrencies(ctx context.Context, reqOpts ...RequestOption) ([]Currency, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeCurrency, defaultPerPage), nil
	}
	return do[[]Currency](ctx, c, http.MethodGet, currenciesPath, nil, nil)
}

// GetCurrency fetches one currency by ISO 4217 code.
func (c *Client) GetCurrency(ctx context.Context, code string, reqOpts ...RequestOption) (*Currency, error) {
	if c.fakeMode(reqOpts) {
		cur := fakeCurrency()
		cur.Code = ptr(code)
		return &cur, nil
	}
	return do[*Currency](ctx, c, http.MethodGet, currencyPath(code), nil, nil)
}

// GetCurrentCurrency fetches the currency the store is configured with.
func (c *Client) GetCurrentCurrency(ctx context.Context, reqOpts ...RequestOption) (*Currency, error) {
	if c.fakeMode(reqOpts) {
		cur := fakeCurrency()
		return &cur, nil
	}
	return do[*Currency](ctx, c, http.MethodGet, currentCurrencyPath, nil, nil)
}

func fakeCountry() Country {
	return Country{
		Code: ptr(faker.CountryCode()),
		Name: ptr(faker.Word()),
		States: []CountryState{
			{Code: ptr(faker.StateCode()), Name: ptr(faker.Word())},
			{Code: ptr(faker.StateCode()), Name: ptr(faker.Word())},
		},
	}
}

func fakeCurrency() Currency {
	return Currency{
		Code:   ptr(faker.CurrencyCode()),
		Name:   ptr(faker.Word()),
		Symbol: ptr("$"),
	}
}
