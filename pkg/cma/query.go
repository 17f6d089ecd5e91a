package cma

import (
	"net/url"
	"strconv"
)

// QueryParams represents query parameters for list requests.
type QueryParams struct {
	// Limit is the page size (the API defaults to 100, caps at 1000).
	Limit int

	// Skip is the number of items to skip.
	Skip int

	// Order is a comma-separated ordering expression, e.g.
	// "-sys.updatedAt".
	Order string

	// ContentType filters entries by content type id.
	ContentType string

	// Query is a full-text search term.
	Query string

	// Filters holds arbitrary field filters, e.g.
	// "fields.title[match]" -> "cat".
	Filters map[string]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{Filters: make(map[string]string)}
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithSkip sets the page offset.
func (q *QueryParams) WithSkip(skip int) *QueryParams {
	q.Skip = skip

	return q
}

// WithOrder sets the ordering expression.
func (q *QueryParams) WithOrder(order string) *QueryParams {
	q.Order = order

	return q
}

// WithContentType filters entries by content type id.
func (q *QueryParams) WithContentType(id string) *QueryParams {
	q.ContentType = id

	return q
}

// WithFilter adds an arbitrary field filter.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[key] = value

	return q
}

// ToValues converts the params to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Skip > 0 {
		values.Set("skip", strconv.Itoa(q.Skip))
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if q.ContentType != "" {
		values.Set("content_type", q.ContentType)
	}

	if q.Query != "" {
		values.Set("query", q.Query)
	}

	for key, value := range q.Filters {
		values.Set(key, value)
	}

	return values
}

// ToMap converts the params to the flat string map carried by an
// ActionDescriptor.
func (q *QueryParams) ToMap() map[string]string {
	values := q.ToValues()
	result := make(map[string]string, len(values))

	for key := range values {
		result[key] = values.Get(key)
	}

	return result
}
