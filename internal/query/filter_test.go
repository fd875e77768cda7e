package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productWhitelist() Whitelist {
	return NewWhitelist(
		[]string{"name", "sku", "category", "price", "stock", "active"},
		[]string{"name", "price", "stock", "created_at"},
	)
}

func TestBuildFilterNumericCondition(t *testing.T) {
	filters := []ColumnTokens{
		{Column: "stock", Tokens: []string{"gte:18"}},
	}

	where, accepted := BuildFilter(filters, productWhitelist())

	require.Len(t, where.Clauses, 1)
	clause := where.Clauses[0]
	assert.Equal(t, "stock", clause.Column)
	require.Len(t, clause.Conditions, 1)
	assert.Equal(t, OpGte, clause.Conditions[0].Operator)
	// Numeric literals parse as numbers, not strings.
	assert.Equal(t, float64(18), clause.Conditions[0].Value)

	assert.Equal(t, map[string][]string{"stock": {"gte:18"}}, accepted)
}

func TestBuildFilterValueParsing(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantOp    Operator
		wantValue any
	}{
		{"plain string", "equals:voucher", OpEquals, "voucher"},
		{"boolean", "equals:true", OpEquals, true},
		{"null", "not:null", OpNot, nil},
		{"json array", `in:["a","b"]`, OpIn, []any{"a", "b"}},
		{"value with colon", "contains:a:b", OpContains, "a:b"},
		{"empty value", "equals:", OpEquals, ""},
		{"case insensitive operator", "STARTSWITH:Pre", OpStartsWith, "Pre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, _ := BuildFilter([]ColumnTokens{
				{Column: "name", Tokens: []string{tt.token}},
			}, productWhitelist())

			require.Len(t, where.Clauses, 1)
			require.Len(t, where.Clauses[0].Conditions, 1)
			cond := where.Clauses[0].Conditions[0]
			assert.Equal(t, tt.wantOp, cond.Operator)
			assert.Equal(t, tt.wantValue, cond.Value)
		})
	}
}

func TestBuildFilterDropsUnknownColumn(t *testing.T) {
	filters := []ColumnTokens{
		{Column: "password", Tokens: []string{"equals:secret"}},
		{Column: "name", Tokens: []string{"equals:voucher"}},
	}

	where, accepted := BuildFilter(filters, productWhitelist())

	// The unknown column leaves no clause and no audit entry.
	require.Len(t, where.Clauses, 1)
	assert.Equal(t, "name", where.Clauses[0].Column)
	assert.NotContains(t, accepted, "password")
}

func TestBuildFilterDropsUnknownOperator(t *testing.T) {
	filters := []ColumnTokens{
		{Column: "name", Tokens: []string{"regex:^a", "equals:voucher"}},
	}

	where, accepted := BuildFilter(filters, productWhitelist())

	require.Len(t, where.Clauses, 1)
	require.Len(t, where.Clauses[0].Conditions, 1)
	assert.Equal(t, OpEquals, where.Clauses[0].Conditions[0].Operator)
	assert.Equal(t, []string{"equals:voucher"}, accepted["name"])
}

func TestBuildFilterKeepsEmptyClause(t *testing.T) {
	// A whitelisted column whose every token is invalid still contributes a
	// clause, just an empty one.
	filters := []ColumnTokens{
		{Column: "name", Tokens: []string{"between:1,2"}},
	}

	where, accepted := BuildFilter(filters, productWhitelist())

	require.Len(t, where.Clauses, 1)
	assert.Equal(t, "name", where.Clauses[0].Column)
	assert.Empty(t, where.Clauses[0].Conditions)
	assert.Empty(t, accepted)
}

func TestBuildFilterMultipleConditionsAnd(t *testing.T) {
	filters := []ColumnTokens{
		{Column: "price", Tokens: []string{"gte:10000", "lte:100000"}},
	}

	where, accepted := BuildFilter(filters, productWhitelist())

	require.Len(t, where.Clauses, 1)
	require.Len(t, where.Clauses[0].Conditions, 2)
	assert.Equal(t, OpGte, where.Clauses[0].Conditions[0].Operator)
	assert.Equal(t, OpLte, where.Clauses[0].Conditions[1].Operator)
	assert.Equal(t, []string{"gte:10000", "lte:100000"}, accepted["price"])
}

func TestSplitToken(t *testing.T) {
	op, value := splitToken("gte:18")
	assert.Equal(t, "gte", op)
	assert.Equal(t, "18", value)

	op, value = splitToken("equals")
	assert.Equal(t, "equals", op)
	assert.Equal(t, "", value)

	op, value = splitToken("contains:a:b:c")
	assert.Equal(t, "contains", op)
	assert.Equal(t, "a:b:c", value)
}
