package query

// Condition is a single validated {operator, value} constraint on one column.
// Every Condition in a descriptor passed operator-registry validation.
type Condition struct {
	Operator Operator
	Value    any
}

// ColumnClause is the logical AND of all accepted conditions for one column.
// An empty Conditions slice is legal and means the clause constrains nothing.
type ColumnClause struct {
	Column     string
	Conditions []Condition
}

// Where is the top-level logical AND of per-column clauses.
type Where struct {
	Clauses []ColumnClause
}

// SortField is one validated {column, direction} sort directive.
type SortField struct {
	Column    string
	Direction Direction
}

// Order is the validated sort sequence. Position is significant: it matches
// the order the caller supplied valid tokens in.
type Order []SortField

// Accepted is the audit trail of raw tokens that passed validation. It is
// reported back to the caller and never consulted during execution.
type Accepted struct {
	Filters map[string][]string
	Orders  []string
}
