package constants

// Pagination Query Parameters
const (
	QueryParamPage    = "page"
	QueryParamLimit   = "limit"
	QueryParamOrderBy = "orderBy"

	// Filter parameters arrive as filter.<column>=<operator>:<value>
	QueryParamFilterPrefix = "filter."
)

// Default Pagination Values
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)
