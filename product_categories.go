package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// CategoryDisplay controls what a category archive page shows.
type CategoryDisplay string

const (
	CategoryDisplayDefault       CategoryDisplay = "default"
	CategoryDisplayProducts      CategoryDisplay = "products"
	CategoryDisplaySubcategories CategoryDisplay = "subcategories"
	CategoryDisplayBoth          CategoryDisplay = "both"
)

func categoryDisplayFromString(s string) CategoryDisplay {
	switch CategoryDisplay(s) {
	case CategoryDisplayDefault, CategoryDisplayProducts, CategoryDisplaySubcategories, CategoryDisplayBoth:
		return CategoryDisplay(s)
	}
	return CategoryDisplayDefault
}

func (d *CategoryDisplay) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*d = categoryDisplayFromString(raw)
	return nil
}

// ProductCategory is a product category term.
type ProductCategory struct {
	ID          *int64          `json:"id,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Slug        *string         `json:"slug,omitempty"`
	Parent      *int64          `json:"parent,omitempty"`
	Description *string         `json:"description,omitempty"`
	Display     CategoryDisplay `json:"display,omitempty"`
	Image       *ProductImage   `json:"image,omitempty"`
	MenuOrder   *int            `json:"menu_order,omitempty"`
	Count       *int            `json:"count,omitempty"`
}

// ProductCategoryListOptions filters category list reads.
type ProductCategoryListOptions struct {
	ListOptions
	Slug      string
	Parent    *int64
	Product   *int64
	HideEmpty *bool
}

func (o ProductCategoryListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "slug", o.Slug)
	setQueryInt64(q, "parent", o.Parent)
	setQueryInt64(q, "product", o.Product)
	setQueryBool(q, "hide_empty", o.HideEmpty)
	return q
}

// ListProductCategories fetches a page of product categories.
func (c *Client) ListProductCategories(ctx context.Context, opts *ProductCategoryListOptions, reqOpts ...RequestOption) ([]ProductCategory, error) {
	var o ProductCategoryListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeProductCategory, o.resolvedPerPage()), nil
	}
	return do[[]ProductCategory](ctx, c, http.MethodGet, productCategoriesPath, o.values(), nil)
}

// GetProductCategory fetches a single category by id.
func (c *Client) GetProductCategory(ctx context.Context, id int64, reqOpts ...RequestOption) (*ProductCategory, error) {
	if c.fakeMode(reqOpts) {
		cat := fakeProductCategory()
		cat.ID = ptr(id)
		return &cat, nil
	}
	return do[*ProductCategory](ctx, c, http.MethodGet, productCategoryPath(id), nil, nil)
}

// CreateProductCategory creates a category.
func (c *Client) CreateProductCategory(ctx context.Context, category *ProductCategory, reqOpts ...RequestOption) (*ProductCategory, error) {
	if c.fakeMode(reqOpts) {
		cat := fakeProductCategory()
		return &cat, nil
	}
	return do[*ProductCategory](ctx, c, http.MethodPost, productCategoriesPath, nil, category)
}

// UpdateProductCategory updates the category identified by category.ID.
func (c *Client) UpdateProductCategory(ctx context.Context, category *ProductCategory, reqOpts ...RequestOption) (*ProductCategory, error) {
	if c.fakeMode(reqOpts) {
		cat := fakeProductCategory()
		return &cat, nil
	}
	if category == nil || category.ID == nil {
		return nil, ErrMissingID
	}
	return do[*ProductCategory](ctx, c, http.MethodPut, productCategoryPath(*category.ID), nil, category)
}

// DeleteProductCategory deletes a category. Terms cannot be trashed, so
// the API requires force.
func (c *Client) DeleteProductCategory(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (*ProductCategory, error) {
	if c.fakeMode(reqOpts) {
		cat := fakeProductCategory()
		cat.ID = ptr(id)
		return &cat, nil
	}
	return do[*ProductCategory](ctx, c, http.MethodDelete, productCategoryPath(id), forceQuery(force), nil)
}

// BatchUpdateProductCategories creates, updates and deletes categories in
// one call.
func (c *Client) BatchUpdateProductCategories(ctx context.Context, batch *Batch[ProductCategory], reqOpts ...RequestOption) (*BatchResult[ProductCategory], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeProductCategory), nil
	}
	return do[*BatchResult[ProductCategory]](ctx, c, http.MethodPost, productCategoriesPath+"/batch", nil, batch)
}

func fakeProductCategory() ProductCategory {
	return ProductCategory{
		ID:          ptr(faker.ID()),
		Name:        ptr(faker.Word()),
		Slug:        ptr(faker.Slug()),
		Parent:      ptr(faker.ID()),
		Description: ptr(faker.Sentence()),
		Display:     faker.Item(CategoryDisplayDefault, CategoryDisplayProducts, CategoryDisplaySubcategories, CategoryDisplayBoth),
		Image:       ptr(fakeProductImage()),
		MenuOrder:   ptr(faker.Int(0, 10)),
		Count:       ptr(faker.Int(0, 100)),
	}
}
