package query

import (
	"gorm.io/gorm"
)

// condition is one WHERE predicate with its arguments.
type condition struct {
	expr string
	args []interface{}
}

// Spec is an ordered set of optional predicates plus a sort key and
// pagination, applied to a base collection by the store layer.
type Spec struct {
	conds  []condition
	sort   string
	params Params
}

// NewSpec creates a spec with the entity's default stable ordering and
// normalized pagination.
func NewSpec(defaultSort string, params Params) *Spec {
	return &Spec{sort: defaultSort, params: params}
}

// Where appends an equality/range predicate.
func (s *Spec) Where(expr string, args ...interface{}) *Spec {
	s.conds = append(s.conds, condition{expr: expr, args: args})
	return s
}

// WhereContains appends a case-insensitive substring predicate on a column.
func (s *Spec) WhereContains(column, term string) *Spec {
	return s.Where(column+" ILIKE ?", "%"+term+"%")
}

// WhereContainsAny appends a single predicate matching the term against any
// of the given columns.
func (s *Spec) WhereContainsAny(columns []string, term string) *Spec {
	expr := ""
	args := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		if i > 0 {
			expr += " OR "
		}
		expr += col + " ILIKE ?"
		args = append(args, "%"+term+"%")
	}
	return s.Where("("+expr+")", args...)
}

// Params returns the spec's normalized pagination.
func (s *Spec) Params() Params {
	return s.params
}

// Apply adds the spec's predicates to a query without sorting or paging,
// for COUNT queries.
func (s *Spec) Apply(tx *gorm.DB) *gorm.DB {
	for _, c := range s.conds {
		tx = tx.Where(c.expr, c.args...)
	}
	return tx
}

// ApplyPaged adds predicates, ordering and the page window.
func (s *Spec) ApplyPaged(tx *gorm.DB) *gorm.DB {
	tx = s.Apply(tx)
	if s.sort != "" {
		tx = tx.Order(s.sort)
	}
	return tx.Limit(s.params.PageSize).Offset(s.params.Offset())
}
