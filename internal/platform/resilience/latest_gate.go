package resilience

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrStaleResponse reports that a newer request was issued before this
// response could be applied.
var ErrStaleResponse = errors.New("stale response discarded")

// LatestGate applies responses in request order: a response is committed only
// while its ticket is the newest one issued.
type LatestGate struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Begin issues a ticket for a new request.
func (g *LatestGate) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.issued++
	return g.issued
}

// Commit runs apply when ticket is still the latest issued ticket.
// fn runs under the gate lock so concurrent commits never interleave.
func (g *LatestGate) Commit(ticket uint64, apply func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if ticket != g.issued || ticket <= g.applied {
		return ErrStaleResponse
	}
	if apply != nil {
		apply()
	}
	g.applied = ticket
	return nil
}

// Latest returns the newest ticket issued so far.
func (g *LatestGate) Latest() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issued
}
