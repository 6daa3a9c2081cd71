package models

import (
	"strconv"
	"strings"
)

// ListQuery carries the filter, sort and pagination parameters shared by the
// admin listing endpoints (?role= / ?status=, ?sortBy=field:asc|desc,
// ?page=, ?limit=).
type ListQuery struct {
	Role   string
	Status string
	SortBy string
	Page   int
	Limit  int
}

// ParseListQuery normalizes raw query values, applying the original
// defaults of page 1 and limit 10.
func ParseListQuery(role, status, sortBy, page, limit string) ListQuery {
	q := ListQuery{Role: role, Status: status, SortBy: sortBy, Page: 1, Limit: 10}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		q.Limit = n
	}
	return q
}

// Skip returns the number of documents to skip for the requested page.
func (q ListQuery) Skip() int {
	return (q.Page - 1) * q.Limit
}

// SortField splits "field:asc|desc" into the field name and a Mongo sort
// direction. An empty SortBy yields no sorting, matching the original.
func (q ListQuery) SortField() (string, int) {
	if q.SortBy == "" {
		return "", 0
	}
	field, order, _ := strings.Cut(q.SortBy, ":")
	dir := 1
	if order == "desc" {
		dir = -1
	}
	return field, dir
}

// TotalPages computes ceil(total/limit) for pagination metadata.
func (q ListQuery) TotalPages(total int64) int {
	if q.Limit <= 0 {
		return 0
	}
	pages := total / int64(q.Limit)
	if total%int64(q.Limit) != 0 {
		pages++
	}
	return int(pages)
}
