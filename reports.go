package woocommerce

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// Report describes one available report endpoint.
type Report struct {
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SalesReport is the aggregate sales report for a period.
type SalesReport struct {
	TotalSales      *string                     `json:"total_sales,omitempty"`
	NetSales        *string                     `json:"net_sales,omitempty"`
	AverageSales    *string                     `json:"average_sales,omitempty"`
	TotalOrders     *int                        `json:"total_orders,omitempty"`
	TotalItems      *int                        `json:"total_items,omitempty"`
	TotalTax        *string                     `json:"total_tax,omitempty"`
	TotalShipping   *string                     `json:"total_shipping,omitempty"`
	TotalRefunds    *int                        `json:"total_refunds,omitempty"`
	TotalDiscount   *string                     `json:"total_discount,omitempty"`
	TotalsGroupedBy *string                     `json:"totals_grouped_by,omitempty"`
	Totals          map[string]SalesReportTotal `json:"totals,omitempty"`
}

// SalesReportTotal is one bucket of a grouped sales report.
type SalesReportTotal struct {
	Sales     *string `json:"sales,omitempty"`
	Orders    *int    `json:"orders,omitempty"`
	Items     *int    `json:"items,omitempty"`
	Tax       *string `json:"tax,omitempty"`
	Shipping  *string `json:"shipping,omitempty"`
	Discount  *string `json:"discount,omitempty"`
	Customers *int    `json:"customers,omitempty"`
}

// TopSellerReport is one row of the top sellers report.
type TopSellerReport struct {
	Title     *string `json:"title,omitempty"`
	ProductID *int64  `json:"product_id,omitempty"`
	Quantity  *int    `json:"quantity,omitempty"`
}

// ReportTotal is one row of a totals report (orders, products,
// customers, coupons, reviews).
type ReportTotal struct {
	Slug  *string `json:"slug,omitempty"`
	Name  *string `json:"name,omitempty"`
	Total *int    `json:"total,omitempty"`
}

// ReportPeriod selects the period of a sales report.
type ReportPeriod string

const (
	ReportPeriodWeek      ReportPeriod = "week"
	ReportPeriodMonth     ReportPeriod = "month"
	ReportPeriodLastMonth ReportPeriod = "last_month"
	ReportPeriodYear      ReportPeriod = "year"
)

// SalesReportOptions scopes a sales or top sellers report. Period is
// ignored when DateMin/DateMax are set.
type SalesReportOptions struct {
	Period  ReportPeriod
	DateMin time.Time
	DateMax time.Time
}

func (o SalesReportOptions) values() url.Values {
	q := url.Values{}
	setQueryString(q, "period", string(o.Period))
	if !o.DateMin.IsZero() {
		q.Set("date_min", o.DateMin.UTC().Format("2006-01-02"))
	}
	if !o.DateMax.IsZero() {
		q.Set("date_max", o.DateMax.UTC().Format("2006-01-02"))
	}
	return q
}

// ListReports fetches the available report endpoints.
func (c *Client) ListReports(ctx context.Context, reqOpts ...RequestOption) ([]Report, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeReport, 3), nil
	}
	return do[[]Report](ctx, c, http.MethodGet, reportsPath, nil, nil)
}

// GetSalesReport fetches the sales report. The API returns the report as
// a one-element list.
func (c *Client) GetSalesReport(ctx context.Context, opts *SalesReportOptions, reqOpts ...RequestOption) ([]SalesReport, error) {
	var o SalesReportOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeSalesReport, 1), nil
	}
	return do[[]SalesReport](ctx, c, http.MethodGet, reportSalesPath, o.values(), nil)
}

// GetTopSellersReport fetches the top sellers report.
func (c *Client) GetTopSellersReport(ctx context.Context, opts *SalesReportOptions, reqOpts ...RequestOption) ([]TopSellerReport, error) {
	var o SalesReportOptions
	if opts != nil {
		o = *opts
	}
	if c.fakeMode(reqOpts) {
		return fakeList(fakeTopSellerReport, defaultPerPage), nil
	}
	return do[[]TopSellerReport](ctx, c, http.MethodGet, reportTopSellersPath, o.values(), nil)
}

// GetCouponTotals fetches coupon counts grouped by discount type.
func (c *Client) GetCouponTotals(ctx context.Context, reqOpts ...RequestOption) ([]ReportTotal, error) {
	return c.reportTotals(ctx, "coupons", reqOpts)
}

// GetCustomerTotals fetches customer counts grouped by role.
func (c *Client) GetCustomerTotals(ctx context.Context, reqOpts ...RequestOption) ([]ReportTotal, error) {
	return c.reportTotals(ctx, "customers", reqOpts)
}

// GetOrderTotals fetches order counts grouped by status.
func (c *Client) GetOrderTotals(ctx context.Context, reqOpts ...RequestOption) ([]ReportTotal, error) {
	return c.reportTotals(ctx, "orders", reqOpts)
}

// GetProductTotals fetches product counts grouped by type.
func (c *Client) GetProductTotals(ctx context.Context, reqOpts ...RequestOption) ([]ReportTotal, error) {
	return c.reportTotals(ctx, "products", reqOpts)
}

// GetReviewTotals fetches review counts grouped by rating.
func (c *Client) GetReviewTotals(ctx context.Context, reqOpts ...RequestOption) ([]ReportTotal, error) {
	return c.reportTotals(ctx, "reviews", reqOpts)
}

func (c *Client) reportTotals(ctx context.Context, kind string, reqOpts []RequestOption) ([]ReportTotal, error) {
	if c.fakeMode(reqOpts) {
		return fakeList(fakeReportTotal, 3), nil
	}
	return do[[]ReportTotal](ctx, c, http.MethodGet, reportTotalsPath(kind), nil, nil)
}

func fakeReport() Report {
	return Report{
		Slug:        ptr(faker.Slug()),
		Description: ptr(faker.Sentence()),
	}
}

func fakeSalesReport() SalesReport {
	return SalesReport{
		TotalSales:      ptr(faker.Price()),
		NetSales:        ptr(faker.Price()),
		AverageSales:    ptr(faker.Price()),
		TotalOrders:     ptr(faker.Int(0, 500)),
		TotalItems:      ptr(faker.Int(0, 1000)),
		TotalTax:        ptr(faker.Price()),
		TotalShipping:   ptr(faker.Price()),
		TotalRefunds:    ptr(faker.Int(0, 20)),
		TotalDiscount:   ptr(faker.Price()),
		TotalsGroupedBy: ptr("day"),
	}
}

func fakeTopSellerReport() TopSellerReport {
	return TopSellerReport{
		Title:     ptr(faker.Word()),
		ProductID: ptr(faker.ID()),
		Quantity:  ptr(faker.Int(1, 200)),
	}
}

func fakeReportTotal() ReportTotal {
	return ReportTotal{
		Slug:  ptr(faker.Slug()),
		Name:  ptr(faker.Word()),
		Total: ptr(faker.Int(0, 500)),
	}
}
