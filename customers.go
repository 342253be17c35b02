package woocommerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// Address is a billing or shipping address. The email and phone fields
// are only populated on billing addresses.
type Address struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Company   *string `json:"company,omitempty"`
	Address1  *string `json:"address_1,omitempty"`
	Address2  *string `json:"address_2,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Postcode  *string `json:"postcode,omitempty"`
	Country   *string `json:"country,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Customer is a registered store customer.
type Customer struct {
	ID           *int64    `json:"id,omitempty"`
	DateCreated  *DateTime `json:"date_created,omitempty"`
	DateModified *DateTime `json:"date_modified,omitempty"`
	Email        *string   `json:"email,omitempty"`
	FirstName    *string   `json:"first_name,omitempty"`
	LastName     *string   `json:"last_name,omitempty"`
	Role         *string   `json:"role,omitempty"`
	Username     *string   `json:"username,omitempty"`
	// Password is write-only; the API never returns it.
	Password         *string    `json:"password,omitempty"`
	Billing          *Address   `json:"billing,omitempty"`
	Shipping         *Address   `json:"shipping,omitempty"`
	IsPayingCustomer *bool      `json:"is_paying_customer,omitempty"`
	AvatarURL        *string    `json:"avatar_url,omitempty"`
	MetaData         []MetaData `json:"meta_data,omitempty"`
}

// CustomerDownloadFile is the file behind a granted download.
type CustomerDownloadFile struct {
	Name *string `json:"name,omitempty"`
	File *string `json:"file,omitempty"`
}

// CustomerDownload is a downloadable product a customer has access to.
type CustomerDownload struct {
	DownloadID         *string               `json:"download_id,omitempty"`
	DownloadURL        *string               `json:"download_url,omitempty"`
	ProductID          *int64                `json:"product_id,omitempty"`
	ProductName        *string               `json:"product_name,omitempty"`
	DownloadName       *string               `json:"download_name,omitempty"`
	OrderID            *int64                `json:"order_id,omitempty"`
	OrderKey           *string               `json:"order_key,omitempty"`
	DownloadsRemaining *string               `json:"downloads_remaining,omitempty"`
	AccessExpires      *DateTime             `json:"access_expires,omitempty"`
	File               *CustomerDownloadFile `json:"file,omitempty"`
}

// CustomerListOptions filters customer list reads.
type CustomerListOptions struct {
	ListOptions
	Email string
	Role  string
}

func (o CustomerListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "email", o.Email)
	setQueryString(q, "role", o.Role)
	return q
}

// ListCustomers fetches a page of customers.
func (c *Client) ListCustomers(ctx context.Context, opts *CustomerListOptions, reqOpts ...RequestOption) ([]Customer, error) {
	var o CustomerListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeCustomer, o.resolvedPerPage()), nil
	}
	return do[[]Customer](ctx, c, http.MethodGet, customersPath, o.values(), nil)
}

// GetCustomer fetches a single customer by id.
func (c *Client) GetCustomer(ctx context.Context, id int64, reqOpts ...RequestOption) (*Customer, error) {
	if c.fakeMode(reqOpts) {
		cu := fakeCustomer()
		cu.ID = ptr(id)
		return &cu, nil
	}
	return do[*Customer](ctx, c, http.MethodGet, customerPath(id), nil, nil)
}

// CreateCustomer creates a customer.
func (c *Client) CreateCustomer(ctx context.Context, customer *Customer, reqOpts ...RequestOption) (*Customer, error) {
	if c.fakeMode(reqOpts) {
		cu := fakeCustomer()
		return &cu, nil
	}
	return do[*Customer](ctx, c, http.MethodPost, customersPath, nil, customer)
}

// UpdateCustomer updates the customer identified by customer.ID.
func (c *Client) UpdateCustomer(ctx context.Context, customer *Customer, reqOpts ...RequestOption) (*Customer, error) {
	if c.fakeMode(reqOpts) {
		cu := fakeCustomer()
		return &cu, nil
	}
	if customer == nil || customer.ID == nil {
		return nil, ErrMissingID
	}
	return do[*Customer](ctx, c, http.MethodPut, customerPath(*customer.ID), nil, customer)
}

// DeleteCustomer deletes a customer. Customers cannot be trashed, so the
// API requires force. Their posts can be reassigned with reassign.
func (c *Client) DeleteCustomer(ctx context.Context, id int64, force bool, reassign *int64, reqOpts ...RequestOption) (*Customer, error) {
	if c.fakeMode(reqOpts) {
		cu := fakeCustomer()
		cu.ID = ptr(id)
		return &cu, nil
	}
	q := forceQuery(force)
	setQueryInt64(q, "reassign", reassign)
	return do[*Customer](ctx, c, http.MethodDelete, customerPath(id), q, nil)
}

// BatchUpdateCustomers creates, updates and deletes customers in one
// call.
func (c *Client) BatchUpdateCustomers(ctx context.Context, batch *Batch[Customer], reqOpts ...RequestOption) (*BatchResult[Customer], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeCustomer), nil
	}
	return do[*BatchResult[Customer]](ctx, c, http.MethodPost, customersBatchPath, nil, batch)
}

// ListCustomerDownloads fetches the downloads a customer has access to.
func (c *Client) ListCustomerDownloads(ctx context.Context, customerID int64, reqOpts ...RequestOption) ([]CustomerDownload, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeCustomerDownload, defaultPerPage), nil
	}
	return do[[]CustomerDownload](ctx, c, http.MethodGet, customerDownloadsPath(customerID), nil, nil)
}

func fakeAddress() Address {
	return Address{
		FirstName: ptr(faker.FirstName()),
		LastName:  ptr(faker.LastName()),
		Company:   ptr(faker.Company()),
		Address1:  ptr(faker.Street()),
		Address2:  ptr(faker.Word()),
		City:      ptr(faker.City()),
		State:     ptr(faker.StateCode()),
		Postcode:  ptr(faker.Zip()),
		Country:   ptr(faker.CountryCode()),
		Email:     ptr(faker.Email()),
		Phone:     ptr(faker.Phone()),
	}
}

func fakeCustomer() Customer {
	return Customer{
		ID:               ptr(faker.ID()),
		DateCreated:      fakeTime(),
		DateModified:     fakeTime(),
		Email:            ptr(faker.Email()),
		FirstName:        ptr(faker.FirstName()),
		LastName:         ptr(faker.LastName()),
		Role:             ptr("customer"),
		Username:         ptr(faker.Username()),
		Billing:          ptr(fakeAddress()),
		Shipping:         ptr(fakeAddress()),
		IsPayingCustomer: ptr(faker.Bool()),
		AvatarURL:        ptr(faker.URL()),
		MetaData:         faker.List(fakeMetaData),
	}
}

func fakeCustomerDownload() CustomerDownload {
	return CustomerDownload{
		DownloadID:         ptr(faker.Word()),
		DownloadURL:        ptr(faker.URL()),
		ProductID:          ptr(faker.ID()),
		ProductName:        ptr(faker.Word()),
		DownloadName:       ptr(faker.Word()),
		OrderID:            ptr(faker.ID()),
		OrderKey:           ptr(faker.Word()),
		DownloadsRemaining: ptr(faker.Word()),
		AccessExpires:      fakeTime(),
		File: &CustomerDownloadFile{
			Name: ptr(faker.Word()),
			File: ptr(faker.URL()),
		},
	}
}
