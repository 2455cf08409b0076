// Package paginate walks remote collections with source-specific continuation protocols.
package paginate

import (
	"context"
)

// Paginator fetches successive batches of a remote collection.
type Paginator[T any] interface {
	// Next returns the next batch. done reports that no further batch exists;
	// a batch returned together with done=true is still valid.
	Next(ctx context.Context) (items []T, done bool, err error)
}

// Result is everything a walk collected.
type Result[T any] struct {
	Items     []T
	Pages     int
	Truncated bool
}

// Walk drains p into memory. When maxPages > 0 the walk stops after that many
// pages and marks the result truncated if the collection was not exhausted.
func Walk[T any](ctx context.Context, p Paginator[T], maxPages int) (Result[T], error) {
	var res Result[T]
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if maxPages > 0 && res.Pages >= maxPages {
			res.Truncated = true
			return res, nil
		}
		items, done, err := p.Next(ctx)
		if err != nil {
			return res, err
		}
		res.Pages++
		res.Items = append(res.Items, items...)
		if done {
			return res, nil
		}
	}
}

// CursorPaginator follows an opaque continuation cursor until none is returned
// or a batch comes back empty. The first call receives an empty cursor.
type CursorPaginator[T any] struct {
	Fetch  func(ctx context.Context, cursor string) (items []T, next string, err error)
	cursor string
}

func (p *CursorPaginator[T]) Next(ctx context.Context) ([]T, bool, error) {
	items, next, err := p.Fetch(ctx, p.cursor)
	if err != nil {
		return nil, true, err
	}
	if len(items) == 0 {
		return nil, true, nil
	}
	p.cursor = next
	return items, next == "", nil
}

// PageCountPaginator requests numbered pages (starting at 1) until
// page*pageSize reaches the server-reported total or a page is empty.
type PageCountPaginator[T any] struct {
	Fetch    func(ctx context.Context, pageNum, pageSize int) (items []T, total int, err error)
	PageSize int
	page     int
}

func (p *PageCountPaginator[T]) Next(ctx context.Context) ([]T, bool, error) {
	p.page++
	items, total, err := p.Fetch(ctx, p.page, p.PageSize)
	if err != nil {
		return nil, true, err
	}
	if len(items) == 0 {
		return nil, true, nil
	}
	return items, p.page*p.PageSize >= total, nil
}

// SinglePage is a collection the server returns pre-aggregated in one response.
type SinglePage[T any] struct {
	Fetch func(ctx context.Context) ([]T, error)
}

func (p *SinglePage[T]) Next(ctx context.Context) ([]T, bool, error) {
	items, err := p.Fetch(ctx)
	return items, true, err
}
