package service

import (
	"math"
	"strconv"

	"Association_Portal/internal/repository/database"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit inside int.
	MaxPage = math.MaxInt / MaxLimit
)

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest parses raw query values. Missing, unparsable or
// non-positive values fall back to the defaults and limit is capped.
func NewPageRequest(page, limit string) PageRequest {
	p := PageRequest{Page: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Page = min(n, MaxPage)
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = min(n, MaxLimit)
	}
	return p
}

func (p PageRequest) normalized() PageRequest {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	p.Limit = min(p.Limit, MaxLimit)
	p.Page = min(p.Page, MaxPage)
	return p
}

func (p PageRequest) query(order string, scopes ...database.Scope) database.ListQuery {
	p = p.normalized()
	return database.ListQuery{
		Scopes: scopes,
		Order:  order,
		Offset: (p.Page - 1) * p.Limit,
		Limit:  p.Limit,
	}
}

// Page is one page of a listing.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Total       int64 `json:"total"`
}

func newPage[T any](items []T, total int64, p PageRequest) *Page[T] {
	p = p.normalized()
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:       items,
		TotalPages:  int((total + int64(p.Limit) - 1) / int64(p.Limit)),
		CurrentPage: p.Page,
		Total:       total,
	}
}
