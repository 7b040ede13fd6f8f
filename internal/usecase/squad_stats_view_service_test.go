package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/riskibarqy/football-analytics/internal/domain/squadstat"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	squadstatmock "github.com/riskibarqy/football-analytics/internal/mocks/domain/squadstat"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestSquadStatsViewService_Load(t *testing.T) {
	t.Parallel()

	repo := squadstatmock.NewRepository(t)
	service := NewSquadStatsViewService(repo, logging.NewNop())

	stats := []squadstat.Stat{{ID: 1, Split: squadstat.SplitFor}, {ID: 2, Split: squadstat.SplitAgainst}}
	repo.On("ListSquadStats", mock.Anything, url.Values{"team_id": {"4"}, "split": {"for"}}).Return(stats, nil).Once()
	repo.On("ListSquadStats", mock.Anything, url.Values{"team_id": {"4"}, "split": {"for"}}).Return(nil, nil).Once()

	f := filterstate.SquadStatsFilter{TeamID: int64Ptr(4), Split: "for"}
	view, err := service.Load(context.Background(), f)
	if err != nil {
		t.Fatalf("load squad stats: %v", err)
	}
	if view.State != ViewReady || len(view.Stats) != 2 || !view.FilterChanged {
		t.Fatalf("unexpected view: %+v", view)
	}

	view, err = service.Load(context.Background(), f)
	if err != nil {
		t.Fatalf("reload squad stats: %v", err)
	}
	if view.State != ViewEmpty || view.FilterChanged {
		t.Fatalf("expected empty view with unchanged filter, got %+v", view)
	}
}

func TestSquadStatsViewService_RejectsUnknownSplit(t *testing.T) {
	t.Parallel()

	service := NewSquadStatsViewService(squadstatmock.NewRepository(t), logging.NewNop())
	_, err := service.Load(context.Background(), filterstate.SquadStatsFilter{Split: "home"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
