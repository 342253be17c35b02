package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// ProductType is the product kind token.
type ProductType string

const (
	ProductTypeSimple   ProductType = "simple"
	ProductTypeGrouped  ProductType = "grouped"
	ProductTypeExternal ProductType = "external"
	ProductTypeVariable ProductType = "variable"
)

func productTypeFromString(s string) ProductType {
	switch ProductType(s) {
	case ProductTypeSimple, ProductTypeGrouped, ProductTypeExternal, ProductTypeVariable:
		return ProductType(s)
	}
	return ProductTypeSimple
}

func (t *ProductType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = productTypeFromString(raw)
	return nil
}

// ProductStatus is the publication state of a product.
type ProductStatus string

const (
	ProductStatusDraft   ProductStatus = "draft"
	ProductStatusPending ProductStatus = "pending"
	ProductStatusPrivate ProductStatus = "private"
	ProductStatusPublish ProductStatus = "publish"
)

func productStatusFromString(s string) ProductStatus {
	switch ProductStatus(s) {
	case ProductStatusDraft, ProductStatusPending, ProductStatusPrivate, ProductStatusPublish:
		return ProductStatus(s)
	}
	return ProductStatusPublish
}

func (t *ProductStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = productStatusFromString(raw)
	return nil
}

// StockStatus is the stock availability token.
type StockStatus string

const (
	StockStatusInStock     StockStatus = "instock"
	StockStatusOutOfStock  StockStatus = "outofstock"
	StockStatusOnBackorder StockStatus = "onbackorder"
)

func stockStatusFromString(s string) StockStatus {
	switch StockStatus(s) {
	case StockStatusInStock, StockStatusOutOfStock, StockStatusOnBackorder:
		return StockStatus(s)
	}
	return StockStatusInStock
}

func (t *StockStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = stockStatusFromString(raw)
	return nil
}

// CatalogVisibility controls where a product shows up in the catalog.
type CatalogVisibility string

const (
	CatalogVisibilityVisible CatalogVisibility = "visible"
	CatalogVisibilityCatalog CatalogVisibility = "catalog"
	CatalogVisibilitySearch  CatalogVisibility = "search"
	CatalogVisibilityHidden  CatalogVisibility = "hidden"
)

func catalogVisibilityFromString(s string) CatalogVisibility {
	switch CatalogVisibility(s) {
	case CatalogVisibilityVisible, CatalogVisibilityCatalog, CatalogVisibilitySearch, CatalogVisibilityHidden:
		return CatalogVisibility(s)
	}
	return CatalogVisibilityVisible
}

func (t *CatalogVisibility) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = catalogVisibilityFromString(raw)
	return nil
}

// TaxStatus says whether a product or fee is taxed.
type TaxStatus string

const (
	TaxStatusTaxable  TaxStatus = "taxable"
	TaxStatusShipping TaxStatus = "shipping"
	TaxStatusNone     TaxStatus = "none"
)

func taxStatusFromString(s string) TaxStatus {
	switch TaxStatus(s) {
	case TaxStatusTaxable, TaxStatusShipping, TaxStatusNone:
		return TaxStatus(s)
	}
	return TaxStatusTaxable
}

func (t *TaxStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = taxStatusFromString(raw)
	return nil
}

// BackorderStatus says whether backorders are allowed.
type BackorderStatus string

const (
	BackorderNo     BackorderStatus = "no"
	BackorderNotify BackorderStatus = "notify"
	BackorderYes    BackorderStatus = "yes"
)

func backorderStatusFromString(s string) BackorderStatus {
	switch BackorderStatus(s) {
	case BackorderNo, BackorderNotify, BackorderYes:
		return BackorderStatus(s)
	}
	return BackorderNo
}

func (t *BackorderStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = backorderStatusFromString(raw)
	return nil
}

// ProductDimensions is the parcel size of a product, strings on the wire.
type ProductDimensions struct {
	Length *string `json:"length,omitempty"`
	Width  *string `json:"width,omitempty"`
	Height *string `json:"height,omitempty"`
}

// ProductImage is an image attached to a product.
type ProductImage struct {
	ID           *int64    `json:"id,omitempty"`
	DateCreated  *DateTime `json:"date_created,omitempty"`
	DateModified *DateTime `json:"date_modified,omitempty"`
	Src          *string   `json:"src,omitempty"`
	Name         *string   `json:"name,omitempty"`
	Alt          *string   `json:"alt,omitempty"`
}

// ProductAttribute is an attribute with its options as used on a product.
type ProductAttribute struct {
	ID        *int64   `json:"id,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Position  *int     `json:"position,omitempty"`
	Visible   *bool    `json:"visible,omitempty"`
	Variation *bool    `json:"variation,omitempty"`
	Options   []string `json:"options,omitempty"`
}

// ProductDefaultAttribute preselects a variation attribute value.
type ProductDefaultAttribute struct {
	ID     *int64  `json:"id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Option *string `json:"option,omitempty"`
}

// ProductDownload is a downloadable file sold with a product.
type ProductDownload struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	File *string `json:"file,omitempty"`
}

// ProductCategoryRef is the category reference embedded in a product.
type ProductCategoryRef struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// ProductTagRef is the tag reference embedded in a product.
type ProductTagRef struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// Product is a WooCommerce product. Monetary amounts are strings on the
// wire and stay strings here.
type Product struct {
	ID                *int64                    `json:"id,omitempty"`
	Name              *string                   `json:"name,omitempty"`
	Slug              *string                   `json:"slug,omitempty"`
	Permalink         *string                   `json:"permalink,omitempty"`
	DateCreated       *DateTime                 `json:"date_created,omitempty"`
	DateModified      *DateTime                 `json:"date_modified,omitempty"`
	Type              ProductType               `json:"type,omitempty"`
	Status            ProductStatus             `json:"status,omitempty"`
	Featured          *bool                     `json:"featured,omitempty"`
	CatalogVisibility CatalogVisibility         `json:"catalog_visibility,omitempty"`
	Description       *string                   `json:"description,omitempty"`
	ShortDescription  *string                   `json:"short_description,omitempty"`
	SKU               *string                   `json:"sku,omitempty"`
	Price             *string                   `json:"price,omitempty"`
	RegularPrice      *string                   `json:"regular_price,omitempty"`
	SalePrice         *string                   `json:"sale_price,omitempty"`
	DateOnSaleFrom    *DateTime                 `json:"date_on_sale_from,omitempty"`
	DateOnSaleTo      *DateTime                 `json:"date_on_sale_to,omitempty"`
	OnSale            *bool                     `json:"on_sale,omitempty"`
	Purchasable       *bool                     `json:"purchasable,omitempty"`
	TotalSales        *int                      `json:"total_sales,omitempty"`
	Virtual           *bool                     `json:"virtual,omitempty"`
	Downloadable      *bool                     `json:"downloadable,omitempty"`
	Downloads         []ProductDownload         `json:"downloads,omitempty"`
	DownloadLimit     *int                      `json:"download_limit,omitempty"`
	DownloadExpiry    *int                      `json:"download_expiry,omitempty"`
	ExternalURL       *string                   `json:"external_url,omitempty"`
	ButtonText        *string                   `json:"button_text,omitempty"`
	TaxStatus         TaxStatus                 `json:"tax_status,omitempty"`
	TaxClass          *string                   `json:"tax_class,omitempty"`
	ManageStock       *bool                     `json:"manage_stock,omitempty"`
	StockQuantity     *int                      `json:"stock_quantity,omitempty"`
	StockStatus       StockStatus               `json:"stock_status,omitempty"`
	Backorders        BackorderStatus           `json:"backorders,omitempty"`
	BackordersAllowed *bool                     `json:"backorders_allowed,omitempty"`
	Backordered       *bool                     `json:"backordered,omitempty"`
	SoldIndividually  *bool                     `json:"sold_individually,omitempty"`
	Weight            *string                   `json:"weight,omitempty"`
	Dimensions        *ProductDimensions        `json:"dimensions,omitempty"`
	ShippingRequired  *bool                     `json:"shipping_required,omitempty"`
	ShippingTaxable   *bool                     `json:"shipping_taxable,omitempty"`
	ShippingClass     *string                   `json:"shipping_class,omitempty"`
	ShippingClassID   *int64                    `json:"shipping_class_id,omitempty"`
	ReviewsAllowed    *bool                     `json:"reviews_allowed,omitempty"`
	AverageRating     *string                   `json:"average_rating,omitempty"`
	RatingCount       *int                      `json:"rating_count,omitempty"`
	RelatedIDs        []int64                   `json:"related_ids,omitempty"`
	UpsellIDs         []int64                   `json:"upsell_ids,omitempty"`
	CrossSellIDs      []int64                   `json:"cross_sell_ids,omitempty"`
	ParentID          *int64                    `json:"parent_id,omitempty"`
	PurchaseNote      *string                   `json:"purchase_note,omitempty"`
	Categories        []ProductCategoryRef      `json:"categories,omitempty"`
	Tags              []ProductTagRef           `json:"tags,omitempty"`
	Images            []ProductImage            `json:"images,omitempty"`
	Attributes        []ProductAttribute        `json:"attributes,omitempty"`
	DefaultAttributes []ProductDefaultAttribute `json:"default_attributes,omitempty"`
	Variations        []int64                   `json:"variations,omitempty"`
	GroupedProducts   []int64                   `json:"grouped_products,omitempty"`
	MenuOrder         *int                      `json:"menu_order,omitempty"`
	MetaData          []MetaData                `json:"meta_data,omitempty"`
}

// ProductListOptions filters product list reads.
type ProductListOptions struct {
	ListOptions
	Slug        string
	Status      ProductStatus
	Type        ProductType
	SKU         string
	Category    string
	Tag         string
	Featured    *bool
	OnSale      *bool
	MinPrice    string
	MaxPrice    string
	StockStatus StockStatus
	ParentIn    []int64
}

func (o ProductListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "slug", o.Slug)
	setQueryString(q, "status", string(o.Status))
	setQueryString(q, "type", string(o.Type))
	setQueryString(q, "sku", o.SKU)
	setQueryString(q, "category", o.Category)
	setQueryString(q, "tag", o.Tag)
	setQueryBool(q, "featured", o.Featured)
	setQueryBool(q, "on_sale", o.OnSale)
	setQueryString(q, "min_price", o.MinPrice)
	setQueryString(q, "max_price", o.MaxPrice)
	setQueryString(q, "stock_status", string(o.StockStatus))
	setQueryIDs(q, "parent", o.ParentIn)
	return q
}

// ListProducts fetches a page of products.
func (c *Client) ListProducts(ctx context.Context, opts *ProductListOptions, reqOpts ...RequestOption) ([]Product, error) {
	var o ProductListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeProduct, o.resolvedPerPage()), nil
	}
	return do[[]Product](ctx, c, http.MethodGet, productsPath, o.values(), nil)
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64, reqOpts ...RequestOption) (*Product, error) {
	if c.fakeMode(reqOpts) {
		p := fakeProduct()
		p.ID = ptr(id)
		return &p, nil
	}
	return do[*Product](ctx, c, http.MethodGet, productPath(id), nil, nil)
}

// CreateProduct creates a product and returns it as the store stored it.
func (c *Client) CreateProduct(ctx context.Context, product *Product, reqOpts ...RequestOption) (*Product, error) {
	if c.fakeMode(reqOpts) {
		p := fakeProduct()
		return &p, nil
	}
	return do[*Product](ctx, c, http.MethodPost, productsPath, nil, product)
}

// UpdateProduct updates the product identified by product.ID.
func (c *Client) UpdateProduct(ctx context.Context, product *Product, reqOpts ...RequestOption) (*Product, error) {
	if c.fakeMode(reqOpts) {
		p := fakeProduct()
		return &p, nil
	}
	if product == nil || product.ID == nil {
		return nil, ErrMissingID
	}
	return do[*Product](ctx, c, http.MethodPut, productPath(*product.ID), nil, product)
}

// DeleteProduct deletes a product. With force the product is removed
// permanently instead of trashed. The deleted entity is echoed back.
func (c *Client) DeleteProduct(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (*Product, error) {
	if c.fakeMode(reqOpts) {
		p := fakeProduct()
		p.ID = ptr(id)
		return &p, nil
	}
	return do[*Product](ctx, c, http.MethodDelete, productPath(id), forceQuery(force), nil)
}

// BatchUpdateProducts creates, updates and deletes products in one call.
func (c *Client) BatchUpdateProducts(ctx context.Context, batch *Batch[Product], reqOpts ...RequestOption) (*BatchResult[Product], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeProduct), nil
	}
	return do[*BatchResult[Product]](ctx, c, http.MethodPost, productsBatchPath, nil, batch)
}

func fakeProduct() Product {
	regular := faker.Price()
	return Product{
		ID:                ptr(faker.ID()),
		Name:              ptr(faker.Word()),
		Slug:              ptr(faker.Slug()),
		Permalink:         ptr(faker.URL()),
		DateCreated:       fakeTime(),
		DateModified:      fakeTime(),
		Type:              faker.Item(ProductTypeSimple, ProductTypeGrouped, ProductTypeExternal, ProductTypeVariable),
		Status:            faker.Item(ProductStatusDraft, ProductStatusPending, ProductStatusPrivate, ProductStatusPublish),
		Featured:          ptr(faker.Bool()),
		CatalogVisibility: faker.Item(CatalogVisibilityVisible, CatalogVisibilityCatalog, CatalogVisibilitySearch, CatalogVisibilityHidden),
		Description:       ptr(faker.Paragraph()),
		ShortDescription:  ptr(faker.Sentence()),
		SKU:               ptr(faker.Word()),
		Price:             ptr(regular),
		RegularPrice:      ptr(regular),
		SalePrice:         ptr(faker.Price()),
		DateOnSaleFrom:    fakeTime(),
		DateOnSaleTo:      fakeTime(),
		OnSale:            ptr(faker.Bool()),
		Purchasable:       ptr(true),
		TotalSales:        ptr(faker.Int(0, 1000)),
		Virtual:           ptr(faker.Bool()),
		Downloadable:      ptr(faker.Bool()),
		Downloads:         faker.List(fakeProductDownload),
		DownloadLimit:     ptr(faker.Int(1, 10)),
		DownloadExpiry:    ptr(faker.Int(1, 30)),
		ExternalURL:       ptr(faker.URL()),
		ButtonText:        ptr(faker.Word()),
		TaxStatus:         faker.Item(TaxStatusTaxable, TaxStatusShipping, TaxStatusNone),
		TaxClass:          ptr(faker.Word()),
		ManageStock:       ptr(faker.Bool()),
		StockQuantity:     ptr(faker.Int(0, 500)),
		StockStatus:       faker.Item(StockStatusInStock, StockStatusOutOfStock, StockStatusOnBackorder),
		Backorders:        faker.Item(BackorderNo, BackorderNotify, BackorderYes),
		BackordersAllowed: ptr(faker.Bool()),
		Backordered:       ptr(faker.Bool()),
		SoldIndividually:  ptr(faker.Bool()),
		Weight:            ptr(faker.Price()),
		Dimensions:        ptr(fakeProductDimensions()),
		ShippingRequired:  ptr(faker.Bool()),
		ShippingTaxable:   ptr(faker.Bool()),
		ShippingClass:     ptr(faker.Word()),
		ShippingClassID:   ptr(faker.ID()),
		ReviewsAllowed:    ptr(faker.Bool()),
		AverageRating:     ptr(faker.Price()),
		RatingCount:       ptr(faker.Int(0, 200)),
		RelatedIDs:        faker.List(faker.ID),
		UpsellIDs:         faker.List(faker.ID),
		CrossSellIDs:      faker.List(faker.ID),
		ParentID:          ptr(faker.ID()),
		PurchaseNote:      ptr(faker.Sentence()),
		Categories:        faker.List(fakeProductCategoryRef),
		Tags:              faker.List(fakeProductTagRef),
		Images:            faker.List(fakeProductImage),
		Attributes:        faker.List(fakeProductAttribute),
		DefaultAttributes: faker.List(fakeProductDefaultAttribute),
		Variations:        faker.List(faker.ID),
		GroupedProducts:   faker.List(faker.ID),
		MenuOrder:         ptr(faker.Int(0, 10)),
		MetaData:          faker.List(fakeMetaData),
	}
}

func fakeProductDimensions() ProductDimensions {
	return ProductDimensions{
		Length: ptr(faker.Price()),
		Width:  ptr(faker.Price()),
		Height: ptr(faker.Price()),
	}
}

func fakeProductDownload() ProductDownload {
	return ProductDownload{
		ID:   ptr(faker.Word()),
		Name: ptr(faker.Word()),
		File: ptr(faker.URL()),
	}
}

func fakeProductImage() ProductImage {
	return ProductImage{
		ID:           ptr(faker.ID()),
		DateCreated:  fakeTime(),
		DateModified: fakeTime(),
		Src:          ptr(faker.URL()),
		Name:         ptr(faker.Word()),
		Alt:          ptr(faker.Word()),
	}
}

func fakeProductAttribute() ProductAttribute {
	return ProductAttribute{
		ID:        ptr(faker.ID()),
		Name:      ptr(faker.Word()),
		Position:  ptr(faker.Int(0, 5)),
		Visible:   ptr(faker.Bool()),
		Variation: ptr(faker.Bool()),
		Options:   faker.List(faker.Word),
	}
}

func fakeProductDefaultAttribute() ProductDefaultAttribute {
	return ProductDefaultAttribute{
		ID:     ptr(faker.ID()),
		Name:   ptr(faker.Word()),
		Option: ptr(faker.Word()),
	}
}

func fakeProductCategoryRef() ProductCategoryRef {
	return ProductCategoryRef{
		ID:   ptr(faker.ID()),
		Name: ptr(faker.Word()),
		Slug: ptr(faker.Slug()),
	}
}

func fakeProductTagRef() ProductTagRef {
	return ProductTagRef{
		ID:   ptr(faker.ID()),
		Name: ptr(faker.Word()),
		Slug: ptr(faker.Slug()),
	}
}
