package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	filterKeyPrefix = "filter."
	orderByKey      = "orderBy"
	pageKey         = "page"
	limitKey        = "limit"
)

// ColumnTokens holds the raw, unvalidated filter tokens supplied for one
// column.
type ColumnTokens struct {
	Column string
	Tokens []string
}

// Request is the typed, partially validated form of an incoming query map.
// It is built once per request and never mutated afterwards.
type Request struct {
	Page  int
	Limit int
	Skip  int
	Take  int

	// Filters holds raw filter tokens per column in lexicographic column
	// order, since an HTTP query map carries no reliable key order. Sorting
	// keeps extraction deterministic across runs.
	Filters []ColumnTokens

	// Orders holds raw orderBy tokens in wire order.
	Orders []string
}

// Parse extracts pagination numbers, raw filter tokens and raw order tokens
// from an untrusted query map. Unparseable pagination values fall back to
// defaults; nothing here fails the request. Skip is deliberately unclamped:
// a caller-supplied page below 1 yields a negative skip, which the execution
// adapter treats as no offset.
func Parse(values url.Values, defaultPageSize int) Request {
	take := defaultPageSize
	if raw := values.Get(limitKey); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			take = n
		}
	}

	page := 1
	if raw := values.Get(pageKey); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	req := Request{
		Page:   page,
		Limit:  take,
		Take:   take,
		Skip:   (page - 1) * take,
		Orders: values[orderByKey],
	}

	columns := make([]string, 0, len(values))
	for key := range values {
		if strings.HasPrefix(key, filterKeyPrefix) && key != filterKeyPrefix {
			columns = append(columns, strings.TrimPrefix(key, filterKeyPrefix))
		}
	}
	sort.Strings(columns)

	for _, column := range columns {
		req.Filters = append(req.Filters, ColumnTokens{
			Column: column,
			Tokens: values[filterKeyPrefix+column],
		})
	}

	return req
}
