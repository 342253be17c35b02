package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// DiscountType is how a coupon's amount is applied.
type DiscountType string

const (
	DiscountTypeFixedCart    DiscountType = "fixed_cart"
	DiscountTypePercent      DiscountType = "percent"
	DiscountTypeFixedProduct DiscountType = "fixed_product"
)

func discountTypeFromString(s string) DiscountType {
	switch DiscountType(s) {
	case DiscountTypeFixedCart, DiscountTypePercent, DiscountTypeFixedProduct:
		return DiscountType(s)
	}
	return DiscountTypeFixedCart
}

func (t *DiscountType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = discountTypeFromString(raw)
	return nil
}

// Coupon is a discount coupon.
type Coupon struct {
	ID                        *int64       `json:"id,omitempty"`
	Code                      *string      `json:"code,omitempty"`
	Amount                    *string      `json:"amount,omitempty"`
	DateCreated               *DateTime    `json:"date_created,omitempty"`
	DateModified              *DateTime    `json:"date_modified,omitempty"`
	DiscountType              DiscountType `json:"discount_type,omitempty"`
	Description               *string      `json:"description,omitempty"`
	DateExpires               *DateTime    `json:"date_expires,omitempty"`
	UsageCount                *int         `json:"usage_count,omitempty"`
	IndividualUse             *bool        `json:"individual_use,omitempty"`
	ProductIDs                []int64      `json:"product_ids,omitempty"`
	ExcludedProductIDs        []int64      `json:"excluded_product_ids,omitempty"`
	UsageLimit                *int         `json:"usage_limit,omitempty"`
	UsageLimitPerUser         *int         `json:"usage_limit_per_user,omitempty"`
	LimitUsageToXItems        *int         `json:"limit_usage_to_x_items,omitempty"`
	FreeShipping              *bool        `json:"free_shipping,omitempty"`
	ProductCategories         []int64      `json:"product_categories,omitempty"`
	ExcludedProductCategories []int64      `json:"excluded_product_categories,omitempty"`
	ExcludeSaleItems          *bool        `json:"exclude_sale_items,omitempty"`
	MinimumAmount             *string      `json:"minimum_amount,omitempty"`
	MaximumAmount             *string      `json:"maximum_amount,omitempty"`
	EmailRestrictions         []string     `json:"email_restrictions,omitempty"`
	UsedBy                    []string     `json:"used_by,omitempty"`
	MetaData                  []MetaData   `json:"meta_data,omitempty"`
}

// CouponListOptions filters coupon list reads.
type CouponListOptions struct {
	ListOptions
	Code string
}

func (o CouponListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "code", o.Code)
	return q
}

// ListCoupons fetches a page of coupons.
func (c *Client) ListCoupons(ctx context.Context, opts *CouponListOptions, reqOpts ...RequestOption) ([]Coupon, error) {
	var o CouponListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeCoupon, o.resolvedPerPage()), nil
	}
	return do[[]Coupon](ctx, c, http.MethodGet, couponsPath, o.values(), nil)
}

// GetCoupon fetches a single coupon by id.
func (c *Client) GetCoupon(ctx context.Context, id int64, reqOpts ...RequestOption) (*Coupon, error) {
	if c.fakeMode(reqOpts) {
		cp := fakeCoupon()
		cp.ID = ptr(id)
		return &cp, nil
	}
	return do[*Coupon](ctx, c, http.MethodGet, couponPath(id), nil, nil)
}

// CreateCoupon creates a coupon.
func (c *Client) CreateCoupon(ctx context.Context, coupon *Coupon, reqOpts ...RequestOption) (*Coupon, error) {
	if c.fakeMode(reqOpts) {
		cp := fakeCoupon()
		return &cp, nil
	}
	return do[*Coupon](ctx, c, http.MethodPost, couponsPath, nil, coupon)
}

// UpdateCoupon updates the coupon identified by coupon.ID.
func (c *Client) UpdateCoupon(ctx context.Context, coupon *Coupon, reqOpts ...RequestOption) (*Coupon, error) {
	if c.fakeMode(reqOpts) {
		cp := fakeCoupon()
		return &cp, nil
	}
	if coupon == nil || coupon.ID == nil {
		return nil, ErrMissingID
	}
	return do[*Coupon](ctx, c, http.MethodPut, couponPath(*coupon.ID), nil, coupon)
}

// DeleteCoupon deletes a coupon. With force the coupon is removed
// permanently instead of trashed.
func (c *Client) DeleteCoupon(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (*Coupon, error) {
	if c.fakeMode(reqOpts) {
		cp := fakeCoupon()
		cp.ID = ptr(id)
		return &cp, nil
	}
	return do[*Coupon](ctx, c, http.MethodDelete, couponPath(id), forceQuery(force), nil)
}

// BatchUpdateCoupons creates, updates and deletes coupons in one call.
func (c *Client) BatchUpdateCoupons(ctx context.Context, batch *Batch[Coupon], reqOpts ...RequestOption) (*BatchResult[Coupon], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeCoupon), nil
	}
	return do[*BatchResult[Coupon]](ctx, c, http.MethodPost, couponsBatchPath, nil, batch)
}

func fakeCoupon() Coupon {
	return Coupon{
		ID:                        ptr(faker.ID()),
		Code:                      ptr(faker.Word()),
		Amount:                    ptr(faker.Price()),
		DateCreated:               fakeTime(),
		DateModified:              fakeTime(),
		DiscountType:              faker.Item(DiscountTypeFixedCart, DiscountTypePercent, DiscountTypeFixedProduct),
		Description:               ptr(faker.Sentence()),
		DateExpires:               fakeTime(),
		UsageCount:                ptr(faker.Int(0, 100)),
		IndividualUse:             ptr(faker.Bool()),
		ProductIDs:                faker.List(faker.ID),
		ExcludedProductIDs:        faker.List(faker.ID),
		UsageLimit:                ptr(faker.Int(1, 100)),
		UsageLimitPerUser:         ptr(faker.Int(1, 10)),
		LimitUsageToXItems:        ptr(faker.Int(1, 10)),
		FreeShipping:              ptr(faker.Bool()),
		ProductCategories:         faker.List(faker.ID),
		ExcludedProductCategories: faker.List(faker.ID),
		ExcludeSaleItems:          ptr(faker.Bool()),
		MinimumAmount:             ptr(faker.Price()),
		MaximumAmount:             ptr(faker.Price()),
		EmailRestrictions:         faker.List(faker.Email),
		UsedBy:                    faker.List(faker.Username),
		MetaData:                  faker.List(fakeMetaData),
	}
}
