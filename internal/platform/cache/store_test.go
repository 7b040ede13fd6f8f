package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[[]string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) ([]string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []string{"Eredivisie", "Premier League"}, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "leagues", loader)
			if err != nil {
				errCh <- err
				return
			}
			if len(v) != 2 {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	store := NewStoreWithClock[int](time.Minute, clock)
	store.Set(context.Background(), "team:7", 7)

	clock.Advance(30 * time.Second)
	if _, ok := store.Get(context.Background(), "team:7"); !ok {
		t.Fatalf("expected entry before ttl")
	}

	clock.Advance(31 * time.Second)
	if _, ok := store.Get(context.Background(), "team:7"); ok {
		t.Fatalf("expected entry to expire after ttl")
	}
	if got := store.Len(); got != 0 {
		t.Fatalf("expected expired entry to be evicted, got=%d", got)
	}
}

func TestStore_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	failing := errors.New("backend down")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		return "", failing
	}); !errors.Is(err, failing) {
		t.Fatalf("expected loader error, got %v", err)
	}

	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Fatalf("expected reload after error, got v=%q err=%v", v, err)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	ctx := context.Background()
	store.Set(ctx, "teams:1", 1)
	store.Set(ctx, "teams:2", 2)
	store.Set(ctx, "leagues", 3)

	store.DeletePrefix(ctx, "teams:")
	if got := store.Len(); got != 1 {
		t.Fatalf("expected one entry left, got=%d", got)
	}
	if _, ok := store.Get(ctx, "leagues"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	store := NewStoreWithClock[string](time.Minute, clock)
	ctx := context.Background()

	store.Set(ctx, "viewer-a", "standings")
	clock.Advance(45 * time.Second)
	store.Set(ctx, "viewer-b", "fixtures")
	clock.Advance(30 * time.Second)

	if removed := store.DeleteExpired(ctx); removed != 1 {
		t.Fatalf("removed %d entries, want 1", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one live entry, got %d", store.Len())
	}
	if _, ok := store.Get(ctx, "viewer-b"); !ok {
		t.Fatalf("viewer-b should still be cached")
	}
}
