package woocommerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// ReviewStatus is the moderation state of a product review.
type ReviewStatus string

const (
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusHold     ReviewStatus = "hold"
	ReviewStatusSpam     ReviewStatus = "spam"
	ReviewStatusUnspam   ReviewStatus = "unspam"
	ReviewStatusTrash    ReviewStatus = "trash"
	ReviewStatusUntrash  ReviewStatus = "untrash"
)

func reviewStatusFromString(s string) ReviewStatus {
	switch ReviewStatus(s) {
	case ReviewStatusApproved, ReviewStatusHold, ReviewStatusSpam, ReviewStatusUnspam, ReviewStatusTrash, ReviewStatusUntrash:
		return ReviewStatus(s)
	}
	return ReviewStatusApproved
}

func (s *ReviewStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = reviewStatusFromString(raw)
	return nil
}

// ProductReview is a customer review of a product.
type ProductReview struct {
	ID            *int64       `json:"id,omitempty"`
	DateCreated   *DateTime    `json:"date_created,omitempty"`
	ProductID     *int64       `json:"product_id,omitempty"`
	Status        ReviewStatus `json:"status,omitempty"`
	Reviewer      *string      `json:"reviewer,omitempty"`
	ReviewerEmail *string      `json:"reviewer_email,omitempty"`
	Review        *string      `json:"review,omitempty"`
	Rating        *int         `json:"rating,omitempty"`
	Verified      *bool        `json:"verified,omitempty"`
}

// ProductReviewListOptions filters review list reads.
type ProductReviewListOptions struct {
	ListOptions
	Reviewer      []int64
	ReviewerEmail string
	Product       []int64
	Status        ReviewStatus
}

func (o ProductReviewListOptions) values() url.Values {
	q := o.ListOptions.values()
	setQueryIDs(q, "reviewer", o.Reviewer)
	setQueryString(q, "reviewer_email", o.ReviewerEmail)
	setQueryIDs(q, "product", o.Product)
	setQueryString(q, "status", string(o.Status))
	return q
}

// ListProductReviews fetches a page of product reviews.
func (c *Client) ListProductReviews(ctx context.Context, opts *ProductReviewListOptions, reqOpts ...RequestOption) ([]ProductReview, error) {
	var o ProductReviewListOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeProductReview, o.resolvedPerPage()), nil
	}
	return do[[]ProductReview](ctx, c, http.MethodGet, productReviewsPath, o.values(), nil)
}

// GetProductReview fetches a single review by id.
func (c *Client) GetProductReview(ctx context.Context, id int64, reqOpts ...RequestOption) (*ProductReview, error) {
	if c.fakeMode(reqOpts) {
		r := fakeProductReview()
		r.ID = ptr(id)
		return &r, nil
	}
	return do[*ProductReview](ctx, c, http.MethodGet, productReviewPath(id), nil, nil)
}

// CreateProductReview creates a review.
func (c *Client) CreateProductReview(ctx context.Context, review *ProductReview, reqOpts ...RequestOption) (*ProductReview, error) {
	if c.fakeMode(reqOpts) {
		r := fakeProductReview()
		return &r, nil
	}
	return do[*ProductReview](ctx, c, http.MethodPost, productReviewsPath, nil, review)
}

// UpdateProductReview updates the review identified by review.ID.
func (c *Client) UpdateProductReview(ctx context.Context, review *ProductReview, reqOpts ...RequestOption) (*ProductReview, error) {
	if c.fakeMode(reqOpts) {
		r := fakeProductReview()
		return &r, nil
	}
	if review == nil || review.ID == nil {
		return nil, ErrMissingID
	}
	return do[*ProductReview](ctx, c, http.MethodPut, productReviewPath(*review.ID), nil, review)
}

// DeleteProductReview deletes a review. With force the review skips the
// trash.
func (c *Client) DeleteProductReview(ctx context.Context, id int64, force bool, reqOpts ...RequestOption) (*ProductReview, error) {
	if c.fakeMode(reqOpts) {
		r := fakeProductReview()
		r.ID = ptr(id)
		return &r, nil
	}
	return do[*ProductReview](ctx, c, http.MethodDelete, productReviewPath(id), forceQuery(force), nil)
}

// BatchUpdateProductReviews creates, updates and deletes reviews in one
// call.
func (c *Client) BatchUpdateProductReviews(ctx context.Context, batch *Batch[ProductReview], reqOpts ...RequestOption) (*BatchResult[ProductReview], error) {
	if c.fakeMode(reqOpts) {
		return fakeBatchResult(batch, fakeProductReview), nil
	}
	return do[*BatchResult[ProductReview]](ctx, c, http.MethodPost, productReviewsPath+"/batch", nil, batch)
}

func fakeProductReview() ProductReview {
	return ProductReview{
		ID:            ptr(faker.ID()),
		DateCreated:   fakeTime(),
		ProductID:     ptr(faker.ID()),
		Status:        faker.Item(ReviewStatusApproved, ReviewStatusHold, ReviewStatusSpam, ReviewStatusTrash),
		Reviewer:      ptr(faker.Username()),
		ReviewerEmail: ptr(faker.Email()),
		Review:        ptr(faker.Sentence()),
		Rating:        ptr(faker.Int(1, 5)),
		Verified:      ptr(faker.Bool()),
	}
}
