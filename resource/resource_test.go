package resource_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jrsteele09/go-admin-portal/resource"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID    string
	Title string
}

func countingFetch(calls *atomic.Int64, items []testItem) resource.FetchFunc[testItem] {
	return func(ctx context.Context, token, query string) (resource.ListResult[testItem], error) {
		calls.Add(1)
		return resource.ListResult[testItem]{Data: items, Count: len(items)}, nil
	}
}

func TestListCachesWithinTTL(t *testing.T) {
	var calls atomic.Int64
	q := resource.NewQuerier("items", time.Minute, countingFetch(&calls, []testItem{{ID: "1"}}))

	for i := 0; i < 5; i++ {
		result, err := q.List(context.Background(), "abc", "user-1", "foo")
		require.NoError(t, err)
		require.Equal(t, 1, result.Count)
	}
	require.EqualValues(t, 1, calls.Load())
}

func TestListRefetchesAfterTTL(t *testing.T) {
	var calls atomic.Int64
	q := resource.NewQuerier("items", time.Minute, countingFetch(&calls, nil))

	_, err := q.List(context.Background(), "abc", "user-1", "")
	require.NoError(t, err)

	resource.NowTimeFunc = func() time.Time { return time.Now().Add(2 * time.Minute) }
	defer func() { resource.NowTimeFunc = time.Now }()

	_, err = q.List(context.Background(), "abc", "user-1", "")
	require.NoError(t, err)
	require.EqualValues(t, 2, calls.Load())
}

func TestCacheKeyedPerOwnerAndQuery(t *testing.T) {
	var calls atomic.Int64
	q := resource.NewQuerier("items", time.Minute, countingFetch(&calls, nil))

	_, _ = q.List(context.Background(), "abc", "user-1", "foo")
	_, _ = q.List(context.Background(), "abc", "user-1", "bar")
	_, _ = q.List(context.Background(), "def", "user-2", "foo")
	_, _ = q.List(context.Background(), "abc", "user-1", "foo")

	require.EqualValues(t, 3, calls.Load())
}

func TestWriteInvalidatesOwnersLists(t *testing.T) {
	var calls atomic.Int64
	q := resource.NewQuerier("items", time.Minute, countingFetch(&calls, nil))

	_, err := q.List(context.Background(), "abc", "user-1", "")
	require.NoError(t, err)
	_, err = q.List(context.Background(), "def", "user-2", "")
	require.NoError(t, err)

	deleted := false
	err = q.Write(context.Background(), "user-1", func(ctx context.Context) error {
		deleted = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, deleted)

	// The owner's next read is fresh, not merely not-updated.
	_, err = q.List(context.Background(), "abc", "user-1", "")
	require.NoError(t, err)
	require.EqualValues(t, 3, calls.Load())

	// Another owner's cache is untouched.
	_, err = q.List(context.Background(), "def", "user-2", "")
	require.NoError(t, err)
	require.EqualValues(t, 3, calls.Load())
}

func TestFailedWriteLeavesCacheAlone(t *testing.T) {
	var calls atomic.Int64
	q := resource.NewQuerier("items", time.Minute, countingFetch(&calls, nil))

	_, err := q.List(context.Background(), "abc", "user-1", "")
	require.NoError(t, err)

	err = q.Write(context.Background(), "user-1", func(ctx context.Context) error {
		return errors.New("backend rejected the mutation")
	})
	require.Error(t, err)

	_, err = q.List(context.Background(), "abc", "user-1", "")
	require.NoError(t, err)
	require.EqualValues(t, 1, calls.Load())
}

func TestConcurrentIdenticalQueriesShareOneFetch(t *testing.T) {
	const workers = 8

	var calls atomic.Int64
	release := make(chan struct{})
	q := resource.NewQuerier("items", time.Minute, func(ctx context.Context, token, query string) (resource.ListResult[testItem], error) {
		calls.Add(1)
		<-release
		return resource.ListResult[testItem]{}, nil
	})

	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer done.Done()
			started.Done()
			_, err := q.List(context.Background(), "abc", "user-1", "foo")
			require.NoError(t, err)
		}()
	}

	started.Wait()
	time.Sleep(50 * time.Millisecond) // let every worker reach the fetch path
	close(release)
	done.Wait()

	require.EqualValues(t, 1, calls.Load())
}
