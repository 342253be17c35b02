package woocommerce

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ListContext selects the fields the API returns for list reads.
type ListContext string

const (
	ListContextView ListContext = "view"
	ListContextEdit ListContext = "edit"
)

func listContextFromString(s string) ListContext {
	switch ListContext(s) {
	case ListContextView, ListContextEdit:
		return ListContext(s)
	}
	return ListContextView
}

func (c *ListContext) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = listContextFromString(raw)
	return nil
}

// SortOrder is the list sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func sortOrderFromString(s string) SortOrder {
	switch SortOrder(s) {
	case SortAsc, SortDesc:
		return SortOrder(s)
	}
	return SortDesc
}

func (o *SortOrder) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*o = sortOrderFromString(raw)
	return nil
}

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// ListOptions carries the filter, sort and paging parameters shared by
// every list endpoint. The zero value is valid: it resolves to the first
// page of ten results. Unset optional fields are omitted from the query
// string entirely, which is load-bearing — an omitted filter and an empty
// one change the API's filtering semantics.
type ListOptions struct {
	Context ListContext
	Page    int
	PerPage int
	Search  string
	After   *time.Time
	Before  *time.Time
	Include []int64
	Exclude []int64
	Offset  *int
	Order   SortOrder
	OrderBy string
}

func (o ListOptions) resolvedPerPage() int {
	if o.PerPage > 0 {
		return o.PerPage
	}
	return defaultPerPage
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	page := o.Page
	if page <= 0 {
		page = defaultPage
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(o.resolvedPerPage()))
	setQueryString(q, "context", string(o.Context))
	setQueryString(q, "search", o.Search)
	setQueryTime(q, "after", o.After)
	setQueryTime(q, "before", o.Before)
	setQueryIDs(q, "include", o.Include)
	setQueryIDs(q, "exclude", o.Exclude)
	if o.Offset != nil {
		q.Set("offset", strconv.Itoa(*o.Offset))
	}
	setQueryString(q, "order", string(o.Order))
	setQueryString(q, "orderby", o.OrderBy)
	return q
}

func setQueryString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setQueryInt64(q url.Values, key string, value *int64) {
	if value != nil {
		q.Set(key, strconv.FormatInt(*value, 10))
	}
}

func setQueryInt(q url.Values, key string, value *int) {
	if value != nil {
		q.Set(key, strconv.Itoa(*value))
	}
}

func setQueryBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

func setQueryTime(q url.Values, key string, value *time.Time) {
	if value != nil {
		q.Set(key, value.UTC().Format(dateTimeLayout))
	}
}

func setQueryIDs(q url.Values, key string, ids []int64) {
	if len(ids) == 0 {
		return
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	q.Set(key, strings.Join(parts, ","))
}

func forceQuery(force bool) url.Values {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	return q
}
