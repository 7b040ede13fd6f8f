package filterstate

import (
	"net/url"
	"reflect"
	"sync"
)

// State holds the current filter of one view. Apply reports whether the
// normalized query changed, which is the signal to fetch again.
type State[F Filter] struct {
	mu      sync.RWMutex
	current F
}

func NewState[F Filter](initial F) *State[F] {
	return &State[F]{current: initial}
}

func (s *State[F]) Current() F {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Query returns the normalized query for the current filter.
func (s *State[F]) Query() url.Values {
	return Normalize(s.Current().Values())
}

func (s *State[F]) Apply(next F) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := !reflect.DeepEqual(Normalize(s.current.Values()), Normalize(next.Values()))
	s.current = next
	return changed
}
