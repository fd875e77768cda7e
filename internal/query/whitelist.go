package query

// Whitelist is the fixed set of columns a collection permits in filter and
// order clauses. It is explicit configuration supplied by the caller, never
// derived from the entity schema, so the validation surface stays auditable.
type Whitelist struct {
	filterable map[string]struct{}
	sortable   map[string]struct{}
}

// NewWhitelist builds a whitelist from the permitted filterable and sortable
// column names.
func NewWhitelist(filterable, sortable []string) Whitelist {
	w := Whitelist{
		filterable: make(map[string]struct{}, len(filterable)),
		sortable:   make(map[string]struct{}, len(sortable)),
	}
	for _, column := range filterable {
		w.filterable[column] = struct{}{}
	}
	for _, column := range sortable {
		w.sortable[column] = struct{}{}
	}
	return w
}

// CanFilter reports whether the column may appear in a filter clause.
func (w Whitelist) CanFilter(column string) bool {
	_, ok := w.filterable[column]
	return ok
}

// CanSort reports whether the column may appear in an order clause.
func (w Whitelist) CanSort(column string) bool {
	_, ok := w.sortable[column]
	return ok
}
