// Package paginator provides fixed-size page navigation over an ordered list.
package paginator

import "errors"

// ErrNoPage is returned when navigation would move past the first or
// last page. The cursor is left unchanged so callers can show a notice.
var ErrNoPage = errors.New("no such page")

// Paginator slices an ordered list into fixed-size pages with a
// 1-indexed cursor. It holds no state beyond what it is built with.
type Paginator[T any] struct {
	items   []T
	perPage int
	page    int
}

// New creates a paginator positioned at the given page. The cursor is
// clamped into [1, Pages()].
func New[T any](items []T, page, perPage int) *Paginator[T] {
	if perPage < 1 {
		perPage = 1
	}
	p := &Paginator[T]{items: items, perPage: perPage, page: page}
	if p.page < 1 {
		p.page = 1
	}
	if max := p.Pages(); p.page > max {
		p.page = max
	}
	return p
}

// Page returns the current page number, 1-indexed
func (p *Paginator[T]) Page() int {
	return p.page
}

// Pages returns the total number of pages, at least 1
func (p *Paginator[T]) Pages() int {
	n := (len(p.items) + p.perPage - 1) / p.perPage
	if n == 0 {
		n = 1
	}
	return n
}

// PageItems returns the items of the current page
func (p *Paginator[T]) PageItems() []T {
	start := (p.page - 1) * p.perPage
	if start >= len(p.items) {
		return nil
	}
	end := start + p.perPage
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// HasNext reports whether a page exists after the current one
func (p *Paginator[T]) HasNext() bool {
	return p.page < p.Pages()
}

// HasPrevious reports whether a page exists before the current one
func (p *Paginator[T]) HasPrevious() bool {
	return p.page > 1
}

// Next advances the cursor by one page and returns the new page's items
func (p *Paginator[T]) Next() ([]T, error) {
	if !p.HasNext() {
		return nil, ErrNoPage
	}
	p.page++
	return p.PageItems(), nil
}

// Previous moves the cursor back by one page and returns the new page's items
func (p *Paginator[T]) Previous() ([]T, error) {
	if !p.HasPrevious() {
		return nil, ErrNoPage
	}
	p.page--
	return p.PageItems(), nil
}
