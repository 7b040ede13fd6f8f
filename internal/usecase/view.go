package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/riskibarqy/football-analytics/internal/platform/resilience"
)

// ViewState separates "no data" from "could not load".
type ViewState string

const (
	ViewReady       ViewState = "ready"
	ViewEmpty       ViewState = "empty"
	ViewUnavailable ViewState = "unavailable"
)

const unavailableFallback = "The football API is temporarily unavailable."

func stateFor(n int) ViewState {
	if n == 0 {
		return ViewEmpty
	}
	return ViewReady
}

// unavailableMessage is the text shown in place of a view that failed to load.
func unavailableMessage(err error) string {
	if err == nil || errors.Is(err, ErrDependencyUnavailable) {
		return unavailableFallback
	}
	return err.Error()
}

// isNotFound matches backend errors that know they are a 404.
func isNotFound(err error) bool {
	var nf interface{ NotFound() bool }
	return errors.As(err, &nf) && nf.NotFound()
}

// latestView keeps the newest committed model of one view per session. A
// response that was overtaken by a newer request of the same session is
// dropped with ErrStaleResponse.
type latestView[V any] struct {
	slots sessionSlots[*viewSlot[V]]
}

type viewSlot[V any] struct {
	gate    resilience.LatestGate
	mu      sync.RWMutex
	current V
	set     bool
}

type viewTicket[V any] struct {
	slot *viewSlot[V]
	n    uint64
}

func newViewSlot[V any]() *viewSlot[V] {
	return &viewSlot[V]{}
}

func (l *latestView[V]) begin(ctx context.Context) viewTicket[V] {
	slot := l.slots.get(ctx, newViewSlot[V])
	return viewTicket[V]{slot: slot, n: slot.gate.Begin()}
}

func (l *latestView[V]) commit(t viewTicket[V], v V) error {
	slot := t.slot
	err := slot.gate.Commit(t.n, func() {
		slot.mu.Lock()
		slot.current = v
		slot.set = true
		slot.mu.Unlock()
	})
	if err != nil {
		return fmt.Errorf("ticket %d superseded by %d: %w", t.n, slot.gate.Latest(), err)
	}
	return nil
}

func (l *latestView[V]) load(ctx context.Context) (V, bool) {
	slot := l.slots.get(ctx, newViewSlot[V])
	slot.mu.RLock()
	defer slot.mu.RUnlock()
	return slot.current, slot.set
}
