package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/player"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

type PlayersView struct {
	State         ViewState
	Query         url.Values
	FilterChanged bool
	Players       []player.Row
	Message       string
}

type PlayersViewService struct {
	repo       player.Repository
	logger     *logging.Logger
	filter     *sessionFilter[filterstate.PlayersFilter]
	view       latestView[PlayersView]
	topScorers latestView[PlayersView]
}

func NewPlayersViewService(repo player.Repository, logger *logging.Logger) *PlayersViewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayersViewService{
		repo:   repo,
		logger: logger,
		filter: newSessionFilter(filterstate.NewPlayersFilter()),
	}
}

func (s *PlayersViewService) Load(ctx context.Context, f filterstate.PlayersFilter) (PlayersView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayersViewService.Load")
	defer span.End()

	if err := f.Validate(); err != nil {
		return PlayersView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	changed := s.filter.apply(ctx, f)
	query := filterstate.Normalize(f.Values())
	ticket := s.view.begin(ctx)

	view := s.fetch(ctx, "load players", query, s.repo.ListPlayers)
	view.FilterChanged = changed

	if err := s.view.commit(ticket, view); err != nil {
		return PlayersView{}, fmt.Errorf("load players: %w", err)
	}
	return view, nil
}

func (s *PlayersViewService) TopScorers(ctx context.Context, f filterstate.TopScorersFilter) (PlayersView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayersViewService.TopScorers")
	defer span.End()

	if err := f.Validate(); err != nil {
		return PlayersView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	query := filterstate.Normalize(f.Values())
	ticket := s.topScorers.begin(ctx)
	view := s.fetch(ctx, "load top scorers", query, s.repo.TopScorers)

	if err := s.topScorers.commit(ticket, view); err != nil {
		return PlayersView{}, fmt.Errorf("load top scorers: %w", err)
	}
	return view, nil
}

func (s *PlayersViewService) fetch(
	ctx context.Context,
	op string,
	query url.Values,
	list func(context.Context, url.Values) ([]player.Row, error),
) PlayersView {
	view := PlayersView{Query: query}
	rows, err := list(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, op+" failed", "query", query.Encode(), "error", err)
		view.State = ViewUnavailable
		view.Message = unavailableMessage(err)
		return view
	}
	view.Players = rows
	view.State = stateFor(len(rows))
	return view
}
