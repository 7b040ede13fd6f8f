package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/domain/team"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type HeadToHeadView struct {
	State   ViewState
	TeamA   team.Team
	TeamB   team.Team
	Matches []match.Match
	Tally   match.Tally
	Warning string
	Message string
}

type HeadToHeadViewService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	logger    *logging.Logger
	view      latestView[HeadToHeadView]
}

func NewHeadToHeadViewService(teamRepo team.Repository, matchRepo match.Repository, logger *logging.Logger) *HeadToHeadViewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &HeadToHeadViewService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		logger:    logger,
	}
}

// Compare loads both teams and their meetings and tallies results from
// team A's point of view.
func (s *HeadToHeadViewService) Compare(ctx context.Context, teamAID, teamBID int64) (HeadToHeadView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadToHeadViewService.Compare")
	defer span.End()

	if teamAID <= 0 || teamBID <= 0 {
		return HeadToHeadView{}, fmt.Errorf("%w: both team ids must be > 0", ErrInvalidInput)
	}
	if teamAID == teamBID {
		return HeadToHeadView{}, fmt.Errorf("%w: select two different teams", ErrInvalidInput)
	}
	ticket := s.view.begin(ctx)

	var (
		teamA, teamB   team.Team
		foundA, foundB bool
		matches        []match.Match
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		teamA, foundA, err = s.teamRepo.GetTeam(ctx, teamAID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		teamB, foundB, err = s.teamRepo.GetTeam(ctx, teamBID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		matches, err = s.matchRepo.HeadToHead(ctx, teamAID, teamBID)
		return err
	})

	var view HeadToHeadView
	if err := p.Wait(); err != nil {
		s.logger.WarnContext(ctx, "load head to head failed", "team_a", teamAID, "team_b", teamBID, "error", err)
		view = HeadToHeadView{State: ViewUnavailable, Message: unavailableMessage(err)}
	} else {
		if !foundA || !foundB {
			return HeadToHeadView{}, fmt.Errorf("%w: team_a=%d found=%t team_b=%d found=%t", ErrNotFound, teamAID, foundA, teamBID, foundB)
		}
		view = s.tally(ctx, teamA, teamB, matches)
	}

	if err := s.view.commit(ticket, view); err != nil {
		return HeadToHeadView{}, fmt.Errorf("compare teams: %w", err)
	}
	return view, nil
}

func (s *HeadToHeadViewService) tally(ctx context.Context, teamA, teamB team.Team, matches []match.Match) HeadToHeadView {
	view := HeadToHeadView{
		State:   stateFor(len(matches)),
		TeamA:   teamA,
		TeamB:   teamB,
		Matches: matches,
	}

	tally, err := match.TallyHeadToHead(matches, teamA.Name, teamB.Name)
	view.Tally = tally

	var attrErr *match.AttributionError
	switch {
	case err == nil:
	case errors.As(err, &attrErr):
		s.logger.WarnContext(ctx, "head to head contains matches of other teams",
			"team_a", teamA.Name,
			"team_b", teamB.Name,
			"count", attrErr.Count(),
		)
		view.Warning = attrErr.Error()
	default:
		s.logger.WarnContext(ctx, "tally head to head failed", "error", err)
		view.State = ViewUnavailable
		view.Message = err.Error()
	}
	return view
}

func (s *HeadToHeadViewService) Current(ctx context.Context) (HeadToHeadView, bool) {
	return s.view.load(ctx)
}
