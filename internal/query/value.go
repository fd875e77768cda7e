package query

import "encoding/json"

// parseLiteral attempts to read a raw filter value as a structured literal.
// Numbers, booleans, nulls, arrays and objects all parse as JSON; anything
// that fails falls back to the plain string. No error ever escapes.
func parseLiteral(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
