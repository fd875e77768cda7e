package query

import "math"

// PageMeta describes a returned page: pagination numbers plus the audit trail
// of filter and order tokens that were actually honored.
type PageMeta struct {
	TotalCount int64               `json:"totalCount"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	LastPage   int                 `json:"lastPage"`
	OrderBy    []string            `json:"orderBy"`
	Filter     map[string][]string `json:"filter"`
}

// PageResult is the assembled response for one list request.
type PageResult struct {
	Records any      `json:"records"`
	Meta    PageMeta `json:"meta"`
}

// LastPage computes the page count from the caller's requested take, not a
// store-side bound. A non-positive take yields zero, matching the empty
// result edge.
func LastPage(totalCount int64, take int) int {
	if take <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(take)))
}

// NewPageResult combines fetched records, the total count and the accepted
// metadata into the final page. The metadata is echoed exactly as the
// builders produced it, whether or not the filters matched any rows.
func NewPageResult(records any, totalCount int64, req Request, accepted Accepted) PageResult {
	return PageResult{
		Records: records,
		Meta: PageMeta{
			TotalCount: totalCount,
			Page:       req.Page,
			Limit:      req.Limit,
			LastPage:   LastPage(totalCount, req.Take),
			OrderBy:    accepted.Orders,
			Filter:     accepted.Filters,
		},
	}
}
