package woocommerce

import (
	"context"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// ProductTag is a product tag term.
type ProductTag struct {
	ID          *int64  `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Count       *int    `json:"count,omitempty"`
}

// ProductTagListOptions filters tag list reads.
type ProductTagListOptions struct {
	ListOptions
	Slug      string
	Product   *int64
	HideEmpty *bool
}

func (o ProductTagListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryString(q, "slug", o.Slug)
	setQueryInt64(q, "product", o.Product)
	setQueryBool(q, "hide_empty", o.HideEmpty)
	return q
}

// ListProductTags fetches a page of product tags.
func (c *Client) ListProductTags(ctx context.Context, opts *ProductTagListOptions, reqOpts ...RequestOption) ([]ProductTag, error) {
	var o ProductTagListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeProductTag, o.resolvedPerPage()), nil
	}
	return do[[]ProductTag](ctx, c, http.MethodGet, productTagsPath, o.values(), nil)
}

// GetProductTag fetches a single tag by id.
func (c *Client) GetProductTag(ctx context.Context, id int64, reqOpts ...RequestOption) (*ProductTag, error) {
	if c.fakeMode(reqOpts) {
		t := fakeProductTag()
		t.ID = ptr(id)
		return &t, nil
	}
	return do[*ProductTag](ctx, c, http.MethodGet, productTagPath(id), nil, nil)
}

// CreateProductTag creates a tag.
func (c *Client) CreateProductTag(ctx context.Context, tag *ProductTag, reqOpts ...RequestOption) (*ProductTag, error) {
	if c.fakeMode(reqOpts) {
		t := fakeProductTag()
		return &t, nil
	}
	return do[*ProductTag](ctx, c, http.MethodPost, productTagsPath, nil, tag)
}

// UpdateProductTag updates the tag identified by tag.ID.
func (c *Client) UpdateProductTag(ctx context.Context, tag *ProductTag, reqOpts ...RequestOption) (*ProductTag, error) {
	if c.fakeMode(reqOpts) {
		t := fakeProductTag()
		return &t, nil
	}
	if tag == nil || tag.ID == nil {
		return nil, ErrMissingID
	}
	return do[*ProductTag](ctx, c, http.MethodPut, productTagPath(*tag.ID), nil, tag)
}

// DeleteProductTag deletes a tag. Terms cannot be trashed, so the API
// requires force.
func (c *Client) DeleteProductTag(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (*ProductTag, error) {
	if c.fakeMode(reqOpts) {
		t := fakeProductTag()
		t.ID = ptr(id)
		return &t, nil
	}
	return do[*ProductTag](ctx, c, http.MethodDelete, productTagPath(id), forceQuery(force), nil)
}

// BatchUpdateProductTags creates, updates and deletes tags in one call.
func (c *Client) BatchUpdateProductTags(ctx context.Context, batch *Batch[ProductTag], reqOpts ...RequestOption) (*BatchResult[ProductTag], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeProductTag), nil
	}
	return do[*BatchResult[ProductTag]](ctx, c, http.MethodPost, productTagsPath+"/batch", nil, batch)
}

func fakeProductTag() ProductTag {
	return ProductTag{
		ID:          ptr(faker.ID()),
		Name:        ptr(faker.Word()),
		Slug:        ptr(faker.Slug()),
		Description: ptr(faker.Sentence()),
		Count:       ptr(faker.Int(0, 100)),
	}
}
