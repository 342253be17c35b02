package woocommerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// TaxRate is one tax rate row.
type TaxRate struct {
	ID        *int64   `json:"id,omitempty"`
	Country   *string  `json:"country,omitempty"`
	State     *string  `json:"state,omitempty"`
	Postcode  *string  `json:"postcode,omitempty"`
	City      *string  `json:"city,omitempty"`
	Postcodes []string `json:"postcodes,omitempty"`
	Cities    []string `json:"cities,omitempty"`
	Rate      *string  `json:"rate,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Priority  *int     `json:"priority,omitempty"`
	Compound  *bool    `json:"compound,omitempty"`
	Shipping  *bool    `json:"shipping,omitempty"`
	Order     *int     `json:"order,omitempty"`
	Class     *string  `json:"class,omitempty"`
}

// TaxClass is a named tax class; identified by slug, not by id.
type TaxClass struct {
	Slug *string `json:"slug,omitempty"`
	Name *string `json:"name,omitempty"`
}

// TaxRateListOptions filters tax rate list reads.
type TaxRateListOptions struct {
	ListOptions
	// Class filters by tax class slug, e.g. "standard".
	Class string
}

func (o TaxRateListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "class", o.Class)
	return q
}

// ListTaxRates fetches a page of tax rates.
func (c *Client) ListTaxRates(ctx context.Context, opts *TaxRateListOptions, reqOpts ...RequestOption) ([]TaxRate, error) {
	var o TaxRateListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeTaxRate, o.resolvedPerPage()), nil
	}
	return do[[]TaxRate](ctx, c, http.MethodGet, taxRatesPath, o.values(), nil)
}

// GetTaxRate fetches a single tax rate by id.
func (c *Client) GetTaxRate(ctx context.Context, id int64, reqOpts ...RequestOption) (*TaxRate, error) {
	if c.fakeMode(reqOpts) {
		r := fakeTaxRate()
		r.ID = ptr(id)
		return &r, nil
	}
	return do[*TaxRate](ctx, c, http.MethodGet, taxRatePath(id), nil, nil)
}

// CreateTaxRate creates a tax rate.
func (c *Client) CreateTaxRate(ctx context.Context, rate *TaxRate, reqOpts ...RequestOption) (*TaxRate, error) {
	if c.fakeMode(reqOpts) {
		r := fakeTaxRate()
		return &r, nil
	}
	return do[*TaxRate](ctx, c, http.MethodPost, taxRatesPath, nil, rate)
}

// UpdateTaxRate updates the rate identified by rate.ID.
func (c *Client) UpdateTaxRate(ctx context.Context, rate *TaxRate, reqOpts ...RequestOption) (*TaxRate, error) {
	if c.fakeMode(reqOpts) {
		r := fakeTaxRate()
		return &r, nil
	}
	if rate == nil || rate.ID == nil {
		return nil, ErrMissingID
	}
	return do[*TaxRate](ctx, c, http.MethodPut, taxRatePath(*rate.ID), nil, rate)
}

// DeleteTaxRate deletes a tax rate. Rates cannot be trashed, so the API
// requires force.
func (c *Client) DeleteTaxRate(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (*TaxRate, error) {
	if c.fakeMode(reqOpts) {
		r := fakeTaxRate()
		r.ID = ptr(id)
		return &r, nil
	}
	return do[*TaxRate](ctx, c, http.MethodDelete, taxRatePath(id), forceQuery(force), nil)
}

// BatchUpdateTaxRates creates, updates and deletes tax rates in one call.
func (c *Client) BatchUpdateTaxRates(ctx context.Context, batch *Batch[TaxRate], reqOpts ...RequestOption) (*BatchResult[TaxRate], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeTaxRate), nil
	}
	return do[*BatchResult[TaxRate]](ctx, c, http.MethodPost, taxRatesBatchPath, nil, batch)
}

// ListTaxClasses fetches all tax classes.
func (c *Client) ListTaxClasses(ctx context.Context, reqOpts ...RequestOption) ([]TaxClass, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeTaxClass, 3), nil
	}
	return do[[]TaxClass](ctx, c, http.MethodGet, taxClassesPath, nil, nil)
}

// CreateTaxClass creates a tax class.
func (c *Client) CreateTaxClass(ctx context.Context, class *TaxClass, reqOpts ...RequestOption) (*TaxClass, error) {
	if c.fakeMode(reqOpts) {
		tc := fakeTaxClass()
		return &tc, nil
	}
	return do[*TaxClass](ctx, c, http.MethodPost, taxClassesPath, nil, class)
}

// DeleteTaxClass deletes a tax class by slug. Classes cannot be trashed,
// so the API requires force.
func (c *Client) DeleteTaxClass(ctx context.Context, slug string, force bool, reqOpts ...RequestOption) (*TaxClass, error) {
	if c.fakeMode(reqOpts) {
		tc := fakeTaxClass()
		tc.Slug = ptr(slug)
		return &tc, nil
	}
	return do[*TaxClass](ctx, c, http.MethodDelete, taxClassPath(slug), forceQuery(force), nil)
}

func fakeTaxRate() TaxRate {
	return TaxRate{
		ID:        ptr(faker.ID()),
		Country:   ptr(faker.CountryCode()),
		State:     ptr(faker.StateCode()),
		Postcode:  ptr(faker.Zip()),
		City:      ptr(faker.City()),
		Postcodes: faker.List(faker.Zip),
		Cities:    faker.List(faker.City),
		Rate:      ptr(faker.Percent()),
		Name:      ptr(faker.Word()),
		Priority:  ptr(faker.Int(1, 5)),
		Compound:  ptr(faker.Bool()),
		Shipping:  ptr(faker.Bool()),
		Order:     ptr(faker.Int(0, 10)),
		Class:     ptr("standard"),
	}
}

func fakeTaxClass() TaxClass {
	return TaxClass{
		Slug: ptr(faker.Slug()),
		Name: ptr(faker.Word()),
	}
}
