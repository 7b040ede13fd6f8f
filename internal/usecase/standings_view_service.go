package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

type StandingsView struct {
	State         ViewState
	Query         url.Values
	FilterChanged bool
	Partition     standing.Partition
	Message       string
}

type SeasonsView struct {
	State   ViewState
	Seasons []league.Season
	Current *league.Season
	Warning string
	Message string
}

type StandingsViewService struct {
	repo    standing.Repository
	logger  *logging.Logger
	filter  *sessionFilter[filterstate.StandingsFilter]
	view    latestView[StandingsView]
	seasons latestView[SeasonsView]
}

func NewStandingsViewService(repo standing.Repository, logger *logging.Logger) *StandingsViewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsViewService{
		repo:   repo,
		logger: logger,
		filter: newSessionFilter(filterstate.StandingsFilter{}),
	}
}

// Load fetches standings for f and splits them into the current table and
// historical league/season groups.
func (s *StandingsViewService) Load(ctx context.Context, f filterstate.StandingsFilter) (StandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsViewService.Load")
	defer span.End()

	if err := f.Validate(); err != nil {
		return StandingsView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	changed := s.filter.apply(ctx, f)
	query := filterstate.Normalize(f.Values())
	ticket := s.view.begin(ctx)

	view := StandingsView{Query: query, FilterChanged: changed}
	rows, err := s.repo.ListStandings(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "load standings failed", "query", query.Encode(), "error", err)
		view.State = ViewUnavailable
		view.Message = unavailableMessage(err)
	} else {
		view.Partition = standing.PartitionRows(rows)
		view.State = stateFor(view.Partition.Len())
	}

	if err := s.view.commit(ticket, view); err != nil {
		return StandingsView{}, fmt.Errorf("load standings: %w", err)
	}
	return view, nil
}

// Current returns the last committed standings view.
func (s *StandingsViewService) Current(ctx context.Context) (StandingsView, bool) {
	return s.view.load(ctx)
}

// Seasons lists the seasons with standings, optionally for one league, and
// resolves that league's current season.
func (s *StandingsViewService) Seasons(ctx context.Context, leagueID *int64) (SeasonsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsViewService.Seasons")
	defer span.End()

	f := filterstate.SeasonsFilter{LeagueID: leagueID}
	if err := f.Validate(); err != nil {
		return SeasonsView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ticket := s.seasons.begin(ctx)

	var view SeasonsView
	seasons, err := s.repo.ListSeasons(ctx, filterstate.Normalize(f.Values()))
	if err != nil {
		s.logger.WarnContext(ctx, "load seasons failed", "error", err)
		view.State = ViewUnavailable
		view.Message = unavailableMessage(err)
	} else {
		view.Seasons = seasons
		view.State = stateFor(len(seasons))
		if err := league.ValidateSeasons(seasons); err != nil {
			s.logger.WarnContext(ctx, "backend reported conflicting current seasons", "error", err)
			view.Warning = err.Error()
		}
		if leagueID != nil {
			if current, ok := league.CurrentSeason(seasons, *leagueID); ok {
				view.Current = &current
			}
		}
	}

	if err := s.seasons.commit(ticket, view); err != nil {
		return SeasonsView{}, fmt.Errorf("load seasons: %w", err)
	}
	return view, nil
}
