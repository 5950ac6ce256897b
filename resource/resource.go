// Package resource provides the generic list/mutate layer the portal pages
// sit on: list queries with a free-text search served from a bounded-time
// cache, and writes that invalidate the cache so the next read is fresh.
package resource

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// DefaultTTL trades staleness for request reduction on repeated list reads.
const DefaultTTL = 60 * time.Second

// ListResult is the {data, count} envelope a list query resolves to.
type ListResult[T any] struct {
	Data  []T
	Count int
}

// FetchFunc loads one page of results from the source of truth.
type FetchFunc[T any] func(ctx context.Context, token, query string) (ListResult[T], error)

type cacheKey struct {
	owner string
	query string
}

type cacheEntry[T any] struct {
	result    ListResult[T]
	expiresAt time.Time
}

// Querier serves list queries for one resource type. Cached results are
// keyed per owner so one session's lists never serve another's page, and
// concurrent identical queries share a single in-flight fetch.
type Querier[T any] struct {
	name  string
	ttl   time.Duration
	fetch FetchFunc[T]

	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry[T]
	group   singleflight.Group
}

func NewQuerier[T any](name string, ttl time.Duration, fetch FetchFunc[T]) *Querier[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Querier[T]{
		name:    name,
		ttl:     ttl,
		fetch:   fetch,
		entries: make(map[cacheKey]cacheEntry[T]),
	}
}

// List returns the owner's cached result for the query while it is fresh,
// fetching from the source of truth otherwise. Fetch errors are never cached.
func (q *Querier[T]) List(ctx context.Context, token, owner, query string) (ListResult[T], error) {
	key := cacheKey{owner: owner, query: query}

	q.mu.RLock()
	entry, found := q.entries[key]
	q.mu.RUnlock()
	if found && NowTimeFunc().Before(entry.expiresAt) {
		return entry.result, nil
	}

	v, err, _ := q.group.Do(q.name+"\x00"+owner+"\x00"+query, func() (interface{}, error) {
		result, err := q.fetch(ctx, token, query)
		if err != nil {
			return nil, err
		}
		q.mu.Lock()
		q.entries[key] = cacheEntry[T]{result: result, expiresAt: NowTimeFunc().Add(q.ttl)}
		q.mu.Unlock()
		return result, nil
	})
	if err != nil {
		return ListResult[T]{}, err
	}
	return v.(ListResult[T]), nil
}

// Invalidate marks the owner's cached lists stale so the next read
// re-fetches from the source of truth.
func (q *Querier[T]) Invalidate(owner string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for key := range q.entries {
		if key.owner == owner {
			delete(q.entries, key)
		}
	}
}

// Write runs a mutation to completion and then invalidates the owner's
// cached lists. The mutation itself is never retried.
func (q *Querier[T]) Write(ctx context.Context, owner string, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	q.Invalidate(owner)
	return nil
}
