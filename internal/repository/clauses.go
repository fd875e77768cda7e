package repository

import (
	"fmt"

	"github.com/Payphone-Digital/catalog/internal/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applyWhere translates a where descriptor into GORM clause expressions.
// Conditions of one column and across columns all AND together; an empty
// column clause adds nothing. Column names were whitelisted upstream, but
// they still pass through clause.Column so the dialect quotes them.
func applyWhere(tx *gorm.DB, where query.Where) *gorm.DB {
	for _, columnClause := range where.Clauses {
		for _, cond := range columnClause.Conditions {
			tx = tx.Where(conditionExpr(columnClause.Column, cond))
		}
	}
	return tx
}

// applyOrder appends sort directives preserving the descriptor's sequence.
func applyOrder(tx *gorm.DB, order query.Order) *gorm.DB {
	for _, field := range order {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: field.Column},
			Desc:   field.Direction == query.DirectionDesc,
		})
	}
	return tx
}

func conditionExpr(column string, cond query.Condition) clause.Expression {
	col := clause.Column{Name: column}

	switch cond.Operator {
	case query.OpEquals:
		return clause.Eq{Column: col, Value: cond.Value}
	case query.OpNot:
		return clause.Neq{Column: col, Value: cond.Value}
	case query.OpIn:
		return clause.IN{Column: col, Values: valueList(cond.Value)}
	case query.OpNotIn:
		return clause.Not(clause.IN{Column: col, Values: valueList(cond.Value)})
	case query.OpLt:
		return clause.Lt{Column: col, Value: cond.Value}
	case query.OpLte:
		return clause.Lte{Column: col, Value: cond.Value}
	case query.OpGt:
		return clause.Gt{Column: col, Value: cond.Value}
	case query.OpGte:
		return clause.Gte{Column: col, Value: cond.Value}
	case query.OpContains:
		return clause.Like{Column: col, Value: "%" + valueText(cond.Value) + "%"}
	case query.OpSearch:
		return clause.Expr{SQL: "? ILIKE ?", Vars: []any{col, "%" + valueText(cond.Value) + "%"}}
	case query.OpStartsWith:
		return clause.Like{Column: col, Value: valueText(cond.Value) + "%"}
	case query.OpEndsWith:
		return clause.Like{Column: col, Value: "%" + valueText(cond.Value)}
	}

	// The operator set is closed at validation time; an unknown operator can
	// only mean a registry/translation mismatch, so constrain nothing.
	return clause.Expr{SQL: "1=1"}
}

// valueList normalizes an IN operand: a parsed JSON array is used as-is, any
// scalar becomes a one-element list.
func valueList(value any) []any {
	if list, ok := value.([]any); ok {
		return list
	}
	return []any{value}
}

// valueText renders a pattern-operator operand as text.
func valueText(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
