package blog

import (
	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Paging is the page/limit pair of list queries. Zero values mean defaults.
type Paging struct {
	Page  int
	Limit int
}

// Normalize applies defaults and validates ranges: page >= 1, 1 <= limit <= MaxLimit.
func (p Paging) Normalize() (Paging, error) {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}

	if p.Page < 1 {
		return p, validationError("page must not be less than 1")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return p, validationError("limit must be between 1 and %d", MaxLimit)
	}

	return p, nil
}

func (p Paging) pager() db.Pager {
	return db.Pager{Page: p.Page, PageSize: p.Limit}
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}

	return (total + limit - 1) / limit
}

func newPage[T any](items []T, p Paging, total int) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: TotalPages(total, p.Limit),
	}
}
