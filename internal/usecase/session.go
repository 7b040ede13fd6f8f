package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/platform/cache"
)

// SessionTTL is how long an idle viewer session keeps its filters and views.
const SessionTTL = 30 * time.Minute

type sessionKey struct{}

type session struct {
	id string
}

// WithSession scopes view state to one viewer. Loads under the same id share
// filters and the last-request-wins ordering; an empty id gets a throwaway
// scope that no other request can overtake. A context without a session uses
// the service-wide scope, which suits a single viewer such as a CLI.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, session{id: id})
}

func sessionFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(sessionKey{}).(session)
	return s.id, ok
}

// sessionSlots resolves the per-session instance of some view state.
type sessionSlots[T any] struct {
	once     sync.Once
	shared   T
	sessions *cache.Store[T]
}

func (s *sessionSlots[T]) get(ctx context.Context, newSlot func() T) T {
	s.once.Do(func() {
		s.shared = newSlot()
		s.sessions = cache.NewStore[T](SessionTTL)
	})

	id, scoped := sessionFrom(ctx)
	if !scoped {
		return s.shared
	}
	if id == "" {
		return newSlot()
	}

	slot, _ := s.sessions.GetOrLoad(ctx, id, func(context.Context) (T, error) {
		s.sessions.DeleteExpired(ctx)
		return newSlot(), nil
	})
	// Sliding expiry: an active session keeps its state.
	s.sessions.Set(ctx, id, slot)
	return slot
}

// sessionFilter keeps one filterstate.State per viewer session.
type sessionFilter[F filterstate.Filter] struct {
	initial F
	slots   sessionSlots[*filterstate.State[F]]
}

func newSessionFilter[F filterstate.Filter](initial F) *sessionFilter[F] {
	return &sessionFilter[F]{initial: initial}
}

// apply stores next as the session's filter and reports whether the
// normalized query changed.
func (f *sessionFilter[F]) apply(ctx context.Context, next F) bool {
	state := f.slots.get(ctx, func() *filterstate.State[F] {
		return filterstate.NewState(f.initial)
	})
	return state.Apply(next)
}
