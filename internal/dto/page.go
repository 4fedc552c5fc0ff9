package dto

import "strconv"

// PageQuery is a normalized page/limit pair from the query string.
type PageQuery struct {
	Page  int
	Limit int
}

// ParsePage reads page and limit. Missing or out-of-range values fall back
// to page 1 and defLimit.
func ParsePage(page, limit string, defLimit, maxLimit int) PageQuery {
	p, _ := strconv.Atoi(page)
	if p <= 0 {
		p = 1
	}

	l, _ := strconv.Atoi(limit)
	if l <= 0 || l > maxLimit {
		l = defLimit
	}

	return PageQuery{Page: p, Limit: l}
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
