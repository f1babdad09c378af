// internal/domain/product/query.go
package product

import (
	"context"
	"sync"
)

// Result is the async-resource view of a catalog fetch: at most one of Data
// and Err is set once IsLoading is false.
type Result struct {
	Data      []Product
	Err       error
	IsLoading bool
}

// Query is a cached fetch wrapper around Service.List. The first Result call
// performs the fetch (suspending the caller); subsequent calls return the
// cached outcome, success or failure, until Refetch. Observers that must not
// trigger a fetch read State instead.
type Query struct {
	svc     *Service
	retries int

	mu      sync.Mutex
	fetched bool
	loading bool
	data    []Product
	err     error
}

// QueryOption customizes a Query.
type QueryOption func(*Query)

// WithRetries sets how many times a failed fetch is retried within one
// Result/Refetch call. Zero disables retries.
func WithRetries(n int) QueryOption {
	return func(q *Query) {
		q.retries = n
	}
}

// NewQuery creates a query over svc with a single retry by default.
func NewQuery(svc *Service, opts ...QueryOption) *Query {
	q := &Query{svc: svc, retries: 1}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Result returns the cached outcome, fetching on first use.
func (q *Query) Result(ctx context.Context) Result {
	q.mu.Lock()
	if q.fetched {
		defer q.mu.Unlock()
		return Result{Data: q.data, Err: q.err}
	}
	q.loading = true
	q.mu.Unlock()

	data, err := q.fetch(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()
	q.fetched = true
	q.loading = false
	q.data = data
	q.err = err

	return Result{Data: data, Err: err}
}

// Refetch discards the cached outcome and fetches again.
func (q *Query) Refetch(ctx context.Context) Result {
	q.mu.Lock()
	q.fetched = false
	q.data = nil
	q.err = nil
	q.mu.Unlock()

	return q.Result(ctx)
}

// State reports the current resource state without triggering a fetch.
func (q *Query) State() Result {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.loading || !q.fetched {
		return Result{IsLoading: true}
	}
	return Result{Data: q.data, Err: q.err}
}

func (q *Query) fetch(ctx context.Context) ([]Product, error) {
	data, err := q.svc.List(ctx)
	for attempt := 0; err != nil && attempt < q.retries; attempt++ {
		if ctx.Err() != nil {
			break
		}
		data, err = q.svc.List(ctx)
	}
	return data, err
}
