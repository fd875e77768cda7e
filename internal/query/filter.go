package query

import "strings"

// BuildFilter validates raw filter tokens against the filterable whitelist
// and the operator registry, producing the where descriptor and the audit map
// of accepted raw tokens.
//
// Columns outside the whitelist are skipped entirely: no clause and no audit
// entry, so a request can never reveal which columns exist. For whitelisted
// columns, tokens with an unregistered operator are dropped silently. A
// column whose tokens were all dropped still contributes an empty clause,
// which the execution adapter treats as a no-op conjunct.
func BuildFilter(filters []ColumnTokens, wl Whitelist) (Where, map[string][]string) {
	where := Where{}
	accepted := make(map[string][]string)

	for _, ct := range filters {
		if !wl.CanFilter(ct.Column) {
			continue
		}

		clause := ColumnClause{Column: ct.Column}
		for _, token := range ct.Tokens {
			rawOp, rawValue := splitToken(token)
			op, ok := ParseOperator(rawOp)
			if !ok {
				continue
			}
			clause.Conditions = append(clause.Conditions, Condition{
				Operator: op,
				Value:    parseLiteral(rawValue),
			})
			accepted[ct.Column] = append(accepted[ct.Column], token)
		}

		where.Clauses = append(where.Clauses, clause)
	}

	return where, accepted
}

// splitToken splits a raw token at the first colon. A token without a colon
// yields the whole token as its first part and an empty second part.
func splitToken(token string) (string, string) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
