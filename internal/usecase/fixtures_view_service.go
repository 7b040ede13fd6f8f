package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

type FixturesView struct {
	State         ViewState
	Query         url.Values
	FilterChanged bool
	Matches       []match.Match
	Message       string
}

type FixturesViewService struct {
	repo   match.Repository
	logger *logging.Logger
	filter *sessionFilter[filterstate.FixturesFilter]
	view   latestView[FixturesView]
}

func NewFixturesViewService(repo match.Repository, logger *logging.Logger) *FixturesViewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixturesViewService{
		repo:   repo,
		logger: logger,
		filter: newSessionFilter(filterstate.NewFixturesFilter()),
	}
}

func (s *FixturesViewService) Load(ctx context.Context, f filterstate.FixturesFilter) (FixturesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixturesViewService.Load")
	defer span.End()

	if err := f.Validate(); err != nil {
		return FixturesView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	changed := s.filter.apply(ctx, f)
	query := filterstate.Normalize(f.Values())
	ticket := s.view.begin(ctx)

	view := FixturesView{Query: query, FilterChanged: changed}
	matches, err := s.repo.ListMatches(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "load fixtures failed", "query", query.Encode(), "error", err)
		view.State = ViewUnavailable
		view.Message = unavailableMessage(err)
	} else {
		view.Matches = matches
		view.State = stateFor(len(matches))
	}

	if err := s.view.commit(ticket, view); err != nil {
		return FixturesView{}, fmt.Errorf("load fixtures: %w", err)
	}
	return view, nil
}

func (s *FixturesViewService) Current(ctx context.Context) (FixturesView, bool) {
	return s.view.load(ctx)
}

// Delete removes a match. Nothing is sent to the backend until the caller
// has confirmed the action.
func (s *FixturesViewService) Delete(ctx context.Context, matchID int64, confirmed bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixturesViewService.Delete")
	defer span.End()

	if matchID <= 0 {
		return fmt.Errorf("%w: match id must be > 0", ErrInvalidInput)
	}
	if !confirmed {
		return fmt.Errorf("%w: delete match id=%d", ErrConfirmationRequired, matchID)
	}

	if err := s.repo.DeleteMatch(ctx, matchID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
		}
		return fmt.Errorf("delete match: %w", err)
	}

	s.logger.InfoContext(ctx, "match deleted", "match_id", matchID)
	return nil
}

// UpdateResult corrects the score of a match.
func (s *FixturesViewService) UpdateResult(ctx context.Context, matchID int64, update match.ResultUpdate) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixturesViewService.UpdateResult")
	defer span.End()

	if matchID <= 0 {
		return fmt.Errorf("%w: match id must be > 0", ErrInvalidInput)
	}
	if err := update.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.UpdateMatch(ctx, matchID, update); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
		}
		return fmt.Errorf("update match result: %w", err)
	}

	s.logger.InfoContext(ctx, "match result updated",
		"match_id", matchID,
		"home_score", update.HomeScore,
		"away_score", update.AwayScore,
	)
	return nil
}
