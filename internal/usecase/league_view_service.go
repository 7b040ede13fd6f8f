package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/team"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

type LeaguesView struct {
	State   ViewState
	Groups  []league.CountryGroup
	Total   int
	Message string
}

type TeamsView struct {
	State   ViewState
	Query   url.Values
	Teams   []team.Team
	Message string
}

type LeagueViewService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	logger     *logging.Logger
	leagues    latestView[LeaguesView]
	teams      latestView[TeamsView]
}

func NewLeagueViewService(leagueRepo league.Repository, teamRepo team.Repository, logger *logging.Logger) *LeagueViewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueViewService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

// ByCountry lists leagues grouped by country in first-seen order.
func (s *LeagueViewService) ByCountry(ctx context.Context) (LeaguesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueViewService.ByCountry")
	defer span.End()

	ticket := s.leagues.begin(ctx)

	var view LeaguesView
	leagues, err := s.leagueRepo.ListLeagues(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load leagues failed", "error", err)
		view.State = ViewUnavailable
		view.Message = unavailableMessage(err)
	} else {
		view.Groups = league.GroupByCountry(leagues)
		view.Total = len(leagues)
		view.State = stateFor(len(leagues))
	}

	if err := s.leagues.commit(ticket, view); err != nil {
		return LeaguesView{}, fmt.Errorf("load leagues: %w", err)
	}
	return view, nil
}

// Teams lists teams, optionally of one league.
func (s *LeagueViewService) Teams(ctx context.Context, f filterstate.TeamsFilter) (TeamsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueViewService.Teams")
	defer span.End()

	if err := f.Validate(); err != nil {
		return TeamsView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	query := filterstate.Normalize(f.Values())
	ticket := s.teams.begin(ctx)

	view := TeamsView{Query: query}
	teams, err := s.teamRepo.ListTeams(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "load teams failed", "query", query.Encode(), "error", err)
		view.State = ViewUnavailable
		view.Message = unavailableMessage(err)
	} else {
		view.Teams = teams
		view.State = stateFor(len(teams))
	}

	if err := s.teams.commit(ticket, view); err != nil {
		return TeamsView{}, fmt.Errorf("load teams: %w", err)
	}
	return view, nil
}
