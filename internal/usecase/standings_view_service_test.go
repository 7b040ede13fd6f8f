package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	standingmock "github.com/riskibarqy/football-analytics/internal/mocks/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
)

func TestStandingsViewService_LoadPartitionsRows(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsViewService(repo, logging.NewNop())

	rows := []standing.Row{
		{League: "X", Season: "2023", IsCurrent: true, Rank: intPtr(1), Team: "A", GoalsFor: 10, GoalsAgainst: 4, GoalDiff: 6},
		{League: "X", Season: "2022", IsCurrent: false, Team: "B", GoalsFor: 5, GoalsAgainst: 5, GoalDiff: 0},
	}
	repo.On("ListStandings", mock.Anything, url.Values{"season_id": {"5"}}).Return(rows, nil).Once()

	view, err := service.Load(context.Background(), filterstate.StandingsFilter{SeasonID: int64Ptr(5)})
	if err != nil {
		t.Fatalf("load standings: %v", err)
	}
	if view.State != ViewReady {
		t.Fatalf("expected ready view, got=%s", view.State)
	}
	if len(view.Partition.Current) != 1 || view.Partition.Current[0].Team != "A" {
		t.Fatalf("unexpected current table: %+v", view.Partition.Current)
	}
	group, ok := view.Partition.Group("X — 2022")
	if !ok || len(group.Rows) != 1 || group.Rows[0].Team != "B" {
		t.Fatalf("unexpected historical group: %+v", view.Partition.Previous)
	}
	if !view.FilterChanged {
		t.Fatalf("expected filter change to be reported")
	}
}

func TestStandingsViewService_EmptyAndUnavailable(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsViewService(repo, logging.NewNop())

	repo.On("ListStandings", mock.Anything, url.Values{}).Return([]standing.Row{}, nil).Once()
	view, err := service.Load(context.Background(), filterstate.StandingsFilter{})
	if err != nil {
		t.Fatalf("load standings: %v", err)
	}
	if view.State != ViewEmpty {
		t.Fatalf("expected empty view, got=%s", view.State)
	}

	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"9"}}).Return(nil, errBackendDown).Once()
	view, err = service.Load(context.Background(), filterstate.StandingsFilter{LeagueID: int64Ptr(9)})
	if err != nil {
		t.Fatalf("backend failure should degrade, got error %v", err)
	}
	if view.State != ViewUnavailable || view.Message == "" {
		t.Fatalf("expected unavailable view with message, got=%+v", view)
	}
}

func TestStandingsViewService_RejectsInvalidFilter(t *testing.T) {
	t.Parallel()

	service := NewStandingsViewService(standingmock.NewRepository(t), logging.NewNop())
	_, err := service.Load(context.Background(), filterstate.StandingsFilter{LeagueID: int64Ptr(-1)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStandingsViewService_LastRequestWins(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsViewService(repo, logging.NewNop())

	started := make(chan struct{})
	release := make(chan struct{})
	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"1"}}).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]standing.Row{{League: "Old", Season: "2023", IsCurrent: true, Team: "Slow"}}, nil).
		Once()
	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"2"}}).
		Return([]standing.Row{{League: "New", Season: "2023", IsCurrent: true, Team: "Fast"}}, nil).
		Once()

	slowErr := make(chan error, 1)
	go func() {
		_, err := service.Load(context.Background(), filterstate.StandingsFilter{LeagueID: int64Ptr(1)})
		slowErr <- err
	}()
	<-started

	if _, err := service.Load(context.Background(), filterstate.StandingsFilter{LeagueID: int64Ptr(2)}); err != nil {
		t.Fatalf("newer load: %v", err)
	}
	close(release)

	if err := <-slowErr; !errors.Is(err, resilience.ErrStaleResponse) {
		t.Fatalf("expected ErrStaleResponse for overtaken load, got %v", err)
	}

	current, ok := service.Current(context.Background())
	if !ok || current.Partition.Current[0].Team != "Fast" {
		t.Fatalf("expected newest view to stay committed, got=%+v", current)
	}
}

func TestStandingsViewService_SessionsDoNotOvertakeEachOther(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsViewService(repo, logging.NewNop())

	started := make(chan struct{})
	release := make(chan struct{})
	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"1"}}).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]standing.Row{{League: "Eredivisie", Season: "2023", IsCurrent: true, Team: "Ajax"}}, nil).
		Once()
	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"2"}}).
		Return([]standing.Row{{League: "Premier League", Season: "2023", IsCurrent: true, Team: "Arsenal"}}, nil).
		Once()

	viewerA := WithSession(context.Background(), "viewer-a")
	viewerB := WithSession(context.Background(), "viewer-b")

	type result struct {
		view StandingsView
		err  error
	}
	slow := make(chan result, 1)
	go func() {
		view, err := service.Load(viewerA, filterstate.StandingsFilter{LeagueID: int64Ptr(1)})
		slow <- result{view: view, err: err}
	}()
	<-started

	viewB, err := service.Load(viewerB, filterstate.StandingsFilter{LeagueID: int64Ptr(2)})
	if err != nil {
		t.Fatalf("viewer b load: %v", err)
	}
	if !viewB.FilterChanged {
		t.Fatalf("viewer b should compare against its own default filter")
	}
	close(release)

	got := <-slow
	if got.err != nil {
		t.Fatalf("viewer a must not be overtaken by viewer b, got %v", got.err)
	}
	if got.view.Partition.Current[0].Team != "Ajax" {
		t.Fatalf("viewer a got=%+v", got.view)
	}

	currentA, ok := service.Current(viewerA)
	if !ok || currentA.Partition.Current[0].Team != "Ajax" {
		t.Fatalf("viewer a committed view=%+v", currentA)
	}
	currentB, ok := service.Current(viewerB)
	if !ok || currentB.Partition.Current[0].Team != "Arsenal" {
		t.Fatalf("viewer b committed view=%+v", currentB)
	}
	if _, ok := service.Current(context.Background()); ok {
		t.Fatalf("session loads must not touch the shared view")
	}
}

func TestStandingsViewService_EmptySessionIsNeverStale(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsViewService(repo, logging.NewNop())

	started := make(chan struct{})
	release := make(chan struct{})
	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"1"}}).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]standing.Row{{League: "Eredivisie", Season: "2023", IsCurrent: true, Team: "Ajax"}}, nil).
		Once()
	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"2"}}).
		Return([]standing.Row{{League: "Premier League", Season: "2023", IsCurrent: true, Team: "Arsenal"}}, nil).
		Once()

	anonymous := WithSession(context.Background(), "")
	slowErr := make(chan error, 1)
	go func() {
		_, err := service.Load(anonymous, filterstate.StandingsFilter{LeagueID: int64Ptr(1)})
		slowErr <- err
	}()
	<-started

	if _, err := service.Load(anonymous, filterstate.StandingsFilter{LeagueID: int64Ptr(2)}); err != nil {
		t.Fatalf("second load: %v", err)
	}
	close(release)

	if err := <-slowErr; err != nil {
		t.Fatalf("anonymous loads are independent, got %v", err)
	}
}

func TestStandingsViewService_SameSessionStillDropsStale(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsViewService(repo, logging.NewNop())

	started := make(chan struct{})
	release := make(chan struct{})
	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"1"}}).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]standing.Row{{League: "Eredivisie", Season: "2023", IsCurrent: true, Team: "Ajax"}}, nil).
		Once()
	repo.On("ListStandings", mock.Anything, url.Values{"league_id": {"2"}}).
		Return([]standing.Row{{League: "Premier League", Season: "2023", IsCurrent: true, Team: "Arsenal"}}, nil).
		Once()

	viewer := WithSession(context.Background(), "viewer-a")
	slowErr := make(chan error, 1)
	go func() {
		_, err := service.Load(viewer, filterstate.StandingsFilter{LeagueID: int64Ptr(1)})
		slowErr <- err
	}()
	<-started

	if _, err := service.Load(viewer, filterstate.StandingsFilter{LeagueID: int64Ptr(2)}); err != nil {
		t.Fatalf("newer load: %v", err)
	}
	close(release)

	if err := <-slowErr; !errors.Is(err, resilience.ErrStaleResponse) {
		t.Fatalf("expected ErrStaleResponse within one session, got %v", err)
	}
}

func TestStandingsViewService_Seasons(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsViewService(repo, logging.NewNop())

	seasons := []league.Season{
		{LeagueID: 1, League: "Eredivisie", SeasonID: 4, Season: "2022-2023"},
		{LeagueID: 1, League: "Eredivisie", SeasonID: 5, Season: "2023-2024", IsCurrent: true},
	}
	repo.On("ListSeasons", mock.Anything, url.Values{"league_id": {"1"}}).Return(seasons, nil).Once()

	view, err := service.Seasons(context.Background(), int64Ptr(1))
	if err != nil {
		t.Fatalf("seasons: %v", err)
	}
	if view.Current == nil || view.Current.SeasonID != 5 {
		t.Fatalf("expected current season 5, got=%+v", view.Current)
	}
	if view.Warning != "" {
		t.Fatalf("unexpected warning: %s", view.Warning)
	}
}

func TestStandingsViewService_SeasonsWarnsOnSecondCurrentSeason(t *testing.T) {
	t.Parallel()

	repo := standingmock.NewRepository(t)
	service := NewStandingsViewService(repo, logging.NewNop())

	seasons := []league.Season{
		{LeagueID: 1, SeasonID: 4, IsCurrent: true},
		{LeagueID: 1, SeasonID: 5, IsCurrent: true},
	}
	repo.On("ListSeasons", mock.Anything, url.Values{}).Return(seasons, nil).Once()

	view, err := service.Seasons(context.Background(), nil)
	if err != nil {
		t.Fatalf("seasons: %v", err)
	}
	if view.Warning == "" {
		t.Fatalf("expected warning for two current seasons")
	}
}
