package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-analytics/internal/domain/datasync"
	"github.com/riskibarqy/football-analytics/internal/domain/health"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const syncLogCapacity = 50

type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogSuccess LogLevel = "success"
	LogError   LogLevel = "error"
)

type LogEntry struct {
	Time    time.Time
	Level   LogLevel
	Message string
}

type SyncService struct {
	checker health.Checker
	trigger datasync.Trigger
	clock   clockwork.Clock
	logger  *logging.Logger

	afterSync func(context.Context)

	mu      sync.Mutex
	entries []LogEntry
}

func NewSyncService(checker health.Checker, trigger datasync.Trigger, clock clockwork.Clock, logger *logging.Logger) *SyncService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		checker: checker,
		trigger: trigger,
		clock:   clock,
		logger:  logger,
	}
}

// OnSynced registers a hook run after every successful sync, e.g. to drop
// cached reference data.
func (s *SyncService) OnSynced(fn func(context.Context)) {
	s.afterSync = fn
}

// CheckHealth never fails: an unreachable API reads as unhealthy.
func (s *SyncService) CheckHealth(ctx context.Context) health.Status {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.CheckHealth")
	defer span.End()

	status, err := s.checker.Health(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "health check failed", "error", err)
		status = health.Unhealthy(unavailableMessage(err))
	}

	level := LogError
	if status.Healthy() {
		level = LogSuccess
	}
	s.record(level, "API Health: "+status.Status)
	return status
}

// TriggerAll asks the backend to run a full sync with the given payload.
func (s *SyncService) TriggerAll(ctx context.Context, req datasync.Request) (datasync.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.TriggerAll")
	defer span.End()

	s.record(LogInfo, "Sync started")
	result, err := s.trigger.SyncAll(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "sync failed", "error", err)
		s.record(LogError, "Sync failed: "+unavailableMessage(err))
		return nil, fmt.Errorf("sync all: %w", err)
	}

	s.logger.InfoContext(ctx, "sync completed", "result", map[string]any(result))
	s.record(LogSuccess, "Sync completed")
	if s.afterSync != nil {
		s.afterSync(ctx)
	}
	return result, nil
}

// Log returns recorded entries, newest first.
func (s *SyncService) Log() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *SyncService) record(level LogLevel, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]LogEntry{{Time: s.clock.Now(), Level: level, Message: msg}}, s.entries...)
	if len(s.entries) > syncLogCapacity {
		s.entries = s.entries[:syncLogCapacity]
	}
}
