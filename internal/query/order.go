package query

// BuildOrder validates raw orderBy tokens against the sortable whitelist and
// direction set. Accepted directives keep the caller's relative order;
// invalid tokens are dropped with no error and no partial effect.
func BuildOrder(tokens []string, wl Whitelist) (Order, []string) {
	var order Order
	var accepted []string

	for _, token := range tokens {
		column, rawDirection := splitToken(token)
		if !wl.CanSort(column) {
			continue
		}
		direction, ok := ParseDirection(rawDirection)
		if !ok {
			continue
		}
		order = append(order, SortField{Column: column, Direction: direction})
		accepted = append(accepted, token)
	}

	return order, accepted
}
