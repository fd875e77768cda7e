package query

import "strings"

// Operator is a recognized filter comparison operator.
type Operator string

const (
	OpEquals     Operator = "equals"
	OpNot        Operator = "not"
	OpIn         Operator = "in"
	OpNotIn      Operator = "notIn"
	OpLt         Operator = "lt"
	OpLte        Operator = "lte"
	OpGt         Operator = "gt"
	OpGte        Operator = "gte"
	OpContains   Operator = "contains"
	OpSearch     Operator = "search"
	OpStartsWith Operator = "startsWith"
	OpEndsWith   Operator = "endsWith"
)

// Direction is a recognized sort direction.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// operators is the closed set of legal filter operators, keyed by lowercase
// form for case-insensitive lookup.
var operators = map[string]Operator{
	"equals":     OpEquals,
	"not":        OpNot,
	"in":         OpIn,
	"notin":      OpNotIn,
	"lt":         OpLt,
	"lte":        OpLte,
	"gt":         OpGt,
	"gte":        OpGte,
	"contains":   OpContains,
	"search":     OpSearch,
	"startswith": OpStartsWith,
	"endswith":   OpEndsWith,
}

// ParseOperator resolves a raw operator token case-insensitively against the
// registered set.
func ParseOperator(raw string) (Operator, bool) {
	op, ok := operators[strings.ToLower(raw)]
	return op, ok
}

// ParseDirection resolves a raw direction token case-insensitively to asc or
// desc.
func ParseDirection(raw string) (Direction, bool) {
	switch strings.ToLower(raw) {
	case "asc":
		return DirectionAsc, true
	case "desc":
		return DirectionDesc, true
	default:
		return "", false
	}
}
