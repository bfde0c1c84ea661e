package postgres

import (
	"fmt"
	"strings"

	"github.com/openblog/api/internal/store"
)

// Request-level sort field names mapped to the columns of each table. Sort
// fields arrive from the query string, so the ORDER BY column is always
// taken from these maps, never from the request itself.
var (
	authorSortColumns = map[string]string{
		"id":        "id",
		"firstname": "first_name",
		"lastname":  "last_name",
		"email":     "email",
	}

	categorySortColumns = map[string]string{
		"id":          "id",
		"name":        "name",
		"description": "description",
	}

	postSortColumns = map[string]string{
		"id":          "id",
		"title":       "title",
		"description": "description",
	}

	commentSortColumns = map[string]string{
		"id":    "id",
		"name":  "name",
		"email": "email",
	}
)

// orderByClause resolves the page request's sort field against the allowed
// columns and renders an ORDER BY clause. An unknown field is a
// store.ErrInvalidSortField, not a query-time failure.
func orderByClause(req store.PageRequest, columns map[string]string) (string, error) {
	column, ok := columns[strings.ToLower(req.SortBy)]
	if !ok {
		return "", fmt.Errorf("%w: %q", store.ErrInvalidSortField, req.SortBy)
	}

	direction := "ASC"
	if req.SortDir == store.SortDesc {
		direction = "DESC"
	}

	return fmt.Sprintf("ORDER BY %s %s", column, direction), nil
}
