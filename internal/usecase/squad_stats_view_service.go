package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/squadstat"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

type SquadStatsView struct {
	State         ViewState
	Query         url.Values
	FilterChanged bool
	Stats         []squadstat.Stat
	Message       string
}

type SquadStatsViewService struct {
	repo   squadstat.Repository
	logger *logging.Logger
	filter *sessionFilter[filterstate.SquadStatsFilter]
	view   latestView[SquadStatsView]
}

func NewSquadStatsViewService(repo squadstat.Repository, logger *logging.Logger) *SquadStatsViewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SquadStatsViewService{
		repo:   repo,
		logger: logger,
		filter: newSessionFilter(filterstate.SquadStatsFilter{}),
	}
}

func (s *SquadStatsViewService) Load(ctx context.Context, f filterstate.SquadStatsFilter) (SquadStatsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadStatsViewService.Load")
	defer span.End()

	if err := f.Validate(); err != nil {
		return SquadStatsView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	changed := s.filter.apply(ctx, f)
	query := filterstate.Normalize(f.Values())
	ticket := s.view.begin(ctx)

	view := SquadStatsView{Query: query, FilterChanged: changed}
	stats, err := s.repo.ListSquadStats(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "load squad stats failed", "query", query.Encode(), "error", err)
		view.State = ViewUnavailable
		view.Message = unavailableMessage(err)
	} else {
		view.Stats = stats
		view.State = stateFor(len(stats))
	}

	if err := s.view.commit(ticket, view); err != nil {
		return SquadStatsView{}, fmt.Errorf("load squad stats: %w", err)
	}
	return view, nil
}
