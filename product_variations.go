package woocommerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// ProductVariation is one variation of a variable product. It lives under
// its parent product's path.
type ProductVariation struct {
	ID              *int64                    `json:"id,omitempty"`
	DateCreated     *DateTime                 `json:"date_created,omitempty"`
	DateModified    *DateTime                 `json:"date_modified,omitempty"`
	Description     *string                   `json:"description,omitempty"`
	Permalink       *string                   `json:"permalink,omitempty"`
	SKU             *string                   `json:"sku,omitempty"`
	Price           *string                   `json:"price,omitempty"`
	RegularPrice    *string                   `json:"regular_price,omitempty"`
	SalePrice       *string                   `json:"sale_price,omitempty"`
	DateOnSaleFrom  *DateTime                 `json:"date_on_sale_from,omitempty"`
	DateOnSaleTo    *DateTime                 `json:"date_on_sale_to,omitempty"`
	OnSale          *bool                     `json:"on_sale,omitempty"`
	Status          ProductStatus             `json:"status,omitempty"`
	Purchasable     *bool                     `json:"purchasable,omitempty"`
	Virtual         *bool                     `json:"virtual,omitempty"`
	Downloadable    *bool                     `json:"downloadable,omitempty"`
	Downloads       []ProductDownload         `json:"downloads,omitempty"`
	DownloadLimit   *int                      `json:"download_limit,omitempty"`
	DownloadExpiry  *int                      `json:"download_expiry,omitempty"`
	TaxStatus       TaxStatus                 `json:"tax_status,omitempty"`
	TaxClass        *string                   `json:"tax_class,omitempty"`
	ManageStock     *bool                     `json:"manage_stock,omitempty"`
	StockQuantity   *int                      `json:"stock_quantity,omitempty"`
	StockStatus     StockStatus               `json:"stock_status,omitempty"`
	Backorders      BackorderStatus           `json:"backorders,omitempty"`
	Weight          *string                   `json:"weight,omitempty"`
	Dimensions      *ProductDimensions        `json:"dimensions,omitempty"`
	ShippingClass   *string                   `json:"shipping_class,omitempty"`
	ShippingClassID *int64                    `json:"shipping_class_id,omitempty"`
	Image           *ProductImage             `json:"image,omitempty"`
	Attributes      []ProductDefaultAttribute `json:"attributes,omitempty"`
	MenuOrder       *int                      `json:"menu_order,omitempty"`
	MetaData        []MetaData                `json:"meta_data,omitempty"`
}

// ProductVariationListOptions filters variation list reads.
type ProductVariationListOptions struct {
	ListOptions
	Slug        string
	Status      ProductStatus
	SKU         string
	OnSale      *bool
	MinPrice    string
	MaxPrice    string
	StockStatus StockStatus
}

func (o ProductVariationListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "slug", o.Slug)
	setQueryString(q, "status", string(o.Status))
	setQueryString(q, "sku", o.SKU)
	setQueryBool(q, "on_sale", o.OnSale)
	setQueryString(q, "min_price", o.MinPrice)
	setQueryString(q, "max_price", o.MaxPrice)
	setQueryString(q, "stock_status", string(o.StockStatus))
	return q
}

// ListProductVariations fetches a page of variations of a product.
func (c *Client) ListProductVariations(ctx context.Context, productID int64, opts *ProductVariationListOptions, reqOpts ...RequestOption) ([]ProductVariation, error) {
	var o ProductVariationListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeProductVariation, o.resolvedPerPage()), nil
	}
	return do[[]ProductVariation](ctx, c, http.MethodGet, productVariationsPath(productID), o.values(), nil)
}

// GetProductVariation fetches one variation of a product.
func (c *Client) GetProductVariation(ctx context.Context, productID, variationID int64, reqOpts ...RequestOption) (*ProductVariation, error) {
	if c.fakeMode(reqOpts) {
		v := fakeProductVariation()
		v.ID = ptr(variationID)
		return &v, nil
	}
	return do[*ProductVariation](ctx, c, http.MethodGet, productVariationPath(productID, variationID), nil, nil)
}

// CreateProductVariation adds a variation to a product.
func (c *Client) CreateProductVariation(ctx context.Context, productID int64, variation *ProductVariation, reqOpts ...RequestOption) (*ProductVariation, error) {
	if c.fakeMode(reqOpts) {
		v := fakeProductVariation()
		return &v, nil
	}
	return do[*ProductVariation](ctx, c, http.MethodPost, productVariationsPath(productID), nil, variation)
}

// UpdateProductVariation updates the variation identified by variation.ID.
func (c *Client) UpdateProductVariation(ctx context.Context, productID int64, variation *ProductVariation, reqOpts ...RequestOption) (*ProductVariation, error) {
	if c.fakeMode(reqOpts) {
		v := fakeProductVariation()
		return &v, nil
	}
	if variation == nil || variation.ID == nil {
		return nil, ErrMissingID
	}
	return do[*ProductVariation](ctx, c, http.MethodPut, productVariationPath(productID, *variation.ID), nil, variation)
}

// DeleteProductVariation deletes a variation. Variations cannot be
// trashed, so the API requires force; it is exposed anyway for symmetry.
func (c *Client) DeleteProductVariation(ctx context.Context, productID, variationID int64, force bool, reqOpts ...RequestOption) (*ProductVariation, error) {
	if c.fakeMode(reqOpts) {
		v := fakeProductVariation()
		v.ID = ptr(variationID)
		return &v, nil
	}
	return do[*ProductVariation](ctx, c, http.MethodDelete, productVariationPath(productID, variationID), forceQuery(force), nil)
}

// BatchUpdateProductVariations creates, updates and deletes variations of
// one product in a single call.
func (c *Client) BatchUpdateProductVariations(ctx context.Context, productID int64, batch *Batch[ProductVariation], reqOpts ...RequestOption) (*BatchResult[ProductVariation], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeProductVariation), nil
	}
	return do[*BatchResult[ProductVariation]](ctx, c, http.MethodPost, productVariationsBatchPath(productID), nil, batch)
}

func fakeProductVariation() ProductVariation {
	price := faker.Price()
	return ProductVariation{
		ID:              ptr(faker.ID()),
		DateCreated:     fakeTime(),
		DateModified:    fakeTime(),
		Description:     ptr(faker.Sentence()),
		Permalink:       ptr(faker.URL()),
		SKU:             ptr(faker.Word()),
		Price:           ptr(price),
		RegularPrice:    ptr(price),
		SalePrice:       ptr(faker.Price()),
		DateOnSaleFrom:  fakeTime(),
		DateOnSaleTo:    fakeTime(),
		OnSale:          ptr(faker.Bool()),
		Status:          faker.Item(ProductStatusDraft, ProductStatusPending, ProductStatusPrivate, ProductStatusPublish),
		Purchasable:     ptr(true),
		Virtual:         ptr(faker.Bool()),
		Downloadable:    ptr(faker.Bool()),
		Downloads:       faker.List(fakeProductDownload),
		DownloadLimit:   ptr(faker.Int(1, 10)),
		DownloadExpiry:  ptr(faker.Int(1, 30)),
		TaxStatus:       faker.Item(TaxStatusTaxable, TaxStatusShipping, TaxStatusNone),
		TaxClass:        ptr(faker.Word()),
		ManageStock:     ptr(faker.Bool()),
		StockQuantity:   ptr(faker.Int(0, 500)),
		StockStatus:     faker.Item(StockStatusInStock, StockStatusOutOfStock, StockStatusOnBackorder),
		Backorders:      faker.Item(BackorderNo, BackorderNotify, BackorderYes),
		Weight:          ptr(faker.Price()),
		Dimensions:      ptr(fakeProductDimensions()),
		ShippingClass:   ptr(faker.Word()),
		ShippingClassID: ptr(faker.ID()),
		Image:           ptr(fakeProductImage()),
		Attributes:      faker.List(fakeProductDefaultAttribute),
		MenuOrder:       ptr(faker.Int(0, 10)),
		MetaData:        faker.List(fakeMetaData),
	}
}
