package services

import (
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// ClampPage keeps the page number positive.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPerPage keeps the page size within [1, MaxPerPage].
func ClampPerPage(perPage int) int {
	if perPage < 1 {
		return 1
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

func paginate(query *gorm.DB, page, perPage int) *gorm.DB {
	page = ClampPage(page)
	perPage = ClampPerPage(perPage)
	return query.Offset((page - 1) * perPage).Limit(perPage)
}

// applySearch adds a case-insensitive substring filter over the given
// column expressions, ORed together.
func applySearch(query *gorm.DB, q string, columns ...string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return query
	}
	pattern := "%" + strings.ToLower(q) + "%"

	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		clauses = append(clauses, "LOWER("+col+") LIKE ?")
		args = append(args, pattern)
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}
