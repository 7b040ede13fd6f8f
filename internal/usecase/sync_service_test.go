package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-analytics/internal/domain/datasync"
	"github.com/riskibarqy/football-analytics/internal/domain/health"
	datasyncmock "github.com/riskibarqy/football-analytics/internal/mocks/domain/datasync"
	healthmock "github.com/riskibarqy/football-analytics/internal/mocks/domain/health"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestSyncService_CheckHealthLogsNewestFirst(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	checker := healthmock.NewChecker(t)
	service := NewSyncService(checker, datasyncmock.NewTrigger(t), clock, logging.NewNop())

	checker.On("Health", mock.Anything).Return(health.Status{Status: health.StatusHealthy}, nil).Once()
	checker.On("Health", mock.Anything).Return(health.Status{}, errBackendDown).Once()

	if status := service.CheckHealth(context.Background()); !status.Healthy() {
		t.Fatalf("expected healthy, got=%+v", status)
	}
	clock.Advance(time.Minute)
	if status := service.CheckHealth(context.Background()); status.Status != health.StatusUnhealthy {
		t.Fatalf("expected unhealthy, got=%+v", status)
	}

	entries := service.Log()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got=%d", len(entries))
	}
	if entries[0].Level != LogError || entries[0].Message != "API Health: unhealthy" {
		t.Fatalf("unexpected newest entry: %+v", entries[0])
	}
	if !entries[0].Time.After(entries[1].Time) {
		t.Fatalf("expected newest entry first")
	}
}

func TestSyncService_TriggerAll(t *testing.T) {
	t.Parallel()

	trigger := datasyncmock.NewTrigger(t)
	service := NewSyncService(healthmock.NewChecker(t), trigger, clockwork.NewFakeClock(), logging.NewNop())

	req := datasync.Request{"league": "Eredivisie"}
	trigger.On("SyncAll", mock.Anything, req).Return(datasync.Result{"matches": float64(306)}, nil).Once()

	result, err := service.TriggerAll(context.Background(), req)
	if err != nil {
		t.Fatalf("trigger all: %v", err)
	}
	if n, ok := result.Count("matches"); !ok || n != 306 {
		t.Fatalf("unexpected matches count: %d", n)
	}

	trigger.On("SyncAll", mock.Anything, datasync.Request(nil)).Return(nil, errBackendDown).Once()
	if _, err := service.TriggerAll(context.Background(), nil); err == nil {
		t.Fatalf("expected sync error")
	}
	if got := service.Log()[0].Level; got != LogError {
		t.Fatalf("expected error entry, got=%s", got)
	}
}

func TestSyncService_RunsHookAfterSuccessfulSync(t *testing.T) {
	t.Parallel()

	trigger := datasyncmock.NewTrigger(t)
	service := NewSyncService(healthmock.NewChecker(t), trigger, clockwork.NewFakeClock(), logging.NewNop())

	calls := 0
	service.OnSynced(func(context.Context) { calls++ })

	trigger.On("SyncAll", mock.Anything, mock.Anything).Return(datasync.Result{}, nil).Once()
	if _, err := service.TriggerAll(context.Background(), datasync.Request{}); err != nil {
		t.Fatalf("trigger all: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected hook to run once, got=%d", calls)
	}
}
