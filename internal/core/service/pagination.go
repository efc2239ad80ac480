package service

import "github.com/vcplatform/marketplace/internal/core/ports"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// normalizePage applies listing defaults and caps limit at maxLimit.
func normalizePage(p ports.PageRequest) ports.PageRequest {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// totalPages is ceil(total/limit).
func totalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func newPage[T any](items []T, total int64, req ports.PageRequest) *ports.Page[T] {
	if items == nil {
		items = []T{}
	}
	return &ports.Page[T]{
		Items: items,
		Page:  req.Page,
		Pages: totalPages(total, req.Limit),
		Total: total,
	}
}
