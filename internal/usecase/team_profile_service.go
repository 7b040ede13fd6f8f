package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/domain/squadstat"
	"github.com/riskibarqy/football-analytics/internal/domain/team"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const recentMatchesLimit = 10

// TeamProfile is a team header with for/against squad lines and its latest
// matches. Each section degrades on its own.
type TeamProfile struct {
	State         ViewState
	Team          team.Team
	For           *squadstat.Stat
	Against       *squadstat.Stat
	StatsState    ViewState
	RecentMatches []match.Match
	MatchesState  ViewState
	Message       string
}

type TeamProfileService struct {
	teamRepo  team.Repository
	statRepo  squadstat.Repository
	matchRepo match.Repository
	logger    *logging.Logger
	view      latestView[TeamProfile]
}

func NewTeamProfileService(
	teamRepo team.Repository,
	statRepo squadstat.Repository,
	matchRepo match.Repository,
	logger *logging.Logger,
) *TeamProfileService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamProfileService{
		teamRepo:  teamRepo,
		statRepo:  statRepo,
		matchRepo: matchRepo,
		logger:    logger,
	}
}

func (s *TeamProfileService) Get(ctx context.Context, teamID int64) (TeamProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamProfileService.Get")
	defer span.End()

	if teamID <= 0 {
		return TeamProfile{}, fmt.Errorf("%w: team id must be > 0", ErrInvalidInput)
	}
	ticket := s.view.begin(ctx)

	profile, err := s.load(ctx, teamID)
	if err != nil {
		return TeamProfile{}, err
	}

	if err := s.view.commit(ticket, profile); err != nil {
		return TeamProfile{}, fmt.Errorf("get team profile: %w", err)
	}
	return profile, nil
}

func (s *TeamProfileService) load(ctx context.Context, teamID int64) (TeamProfile, error) {
	t, exists, err := s.teamRepo.GetTeam(ctx, teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "load team failed", "team_id", teamID, "error", err)
		return TeamProfile{State: ViewUnavailable, Message: unavailableMessage(err)}, nil
	}
	if !exists {
		return TeamProfile{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	profile := TeamProfile{State: ViewReady, Team: t}

	var wg conc.WaitGroup
	wg.Go(func() {
		query := filterstate.Normalize(filterstate.SquadStatsFilter{TeamID: &teamID}.Values())
		stats, err := s.statRepo.ListSquadStats(ctx, query)
		if err != nil {
			s.logger.WarnContext(ctx, "load team squad stats failed", "team_id", teamID, "error", err)
			profile.StatsState = ViewUnavailable
			return
		}
		profile.For, profile.Against = squadstat.SplitPair(stats)
		if profile.For == nil && profile.Against == nil {
			profile.StatsState = ViewEmpty
			return
		}
		profile.StatsState = ViewReady
	})
	wg.Go(func() {
		matches, err := s.matchRepo.ListMatches(ctx, matchesQuery(t.Name))
		if err != nil {
			s.logger.WarnContext(ctx, "load team matches failed", "team", t.Name, "error", err)
			profile.MatchesState = ViewUnavailable
			return
		}
		profile.RecentMatches = match.InvolvingTeam(matches, t.Name, recentMatchesLimit)
		profile.MatchesState = stateFor(len(profile.RecentMatches))
	})
	wg.Wait()

	return profile, nil
}

// matchesQuery asks the backend for the default fixtures page of one team.
func matchesQuery(teamName string) url.Values {
	f := filterstate.NewFixturesFilter()
	f.Team = teamName
	return filterstate.Normalize(f.Values())
}
