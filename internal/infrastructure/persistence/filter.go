package persistence

import (
	"fmt"

	"github.com/billfold/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// sortableColumns limits ORDER BY to known columns to keep user input
// out of raw SQL.
var sortableColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"number":     true,
	"issue_date": true,
	"due_date":   true,
}

// applySearch adds a search clause on the given column when the filter
// carries a term
func applySearch(query *gorm.DB, filter shared.Filter, searchColumn string) *gorm.DB {
	if filter.Search != "" {
		query = query.Where(searchColumn+" LIKE ?", "%"+filter.Search+"%")
	}
	return query
}

// applyFilter adds search, ordering and pagination to a query
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumn string) *gorm.DB {
	query = applySearch(query, filter, searchColumn)

	orderBy := filter.OrderBy
	if !sortableColumns[orderBy] {
		orderBy = "created_at"
	}
	dir := "asc"
	if filter.OrderDir == "" || filter.OrderDir == "desc" {
		dir = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, dir))

	return query.Offset(filter.Offset()).Limit(filter.Limit())
}
