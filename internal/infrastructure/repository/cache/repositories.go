package cache

import (
	"context"
	"net/url"
	"strconv"

	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/domain/team"
	basecache "github.com/riskibarqy/football-analytics/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store[any]
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store[any]) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) ListLeagues(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListLeagues(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetLeague(ctx context.Context, leagueID int64) (league.League, bool, error) {
	key := "league:id:" + strconv.FormatInt(leagueID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store[any]
}

func NewTeamRepository(next team.Repository, cache *basecache.Store[any]) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListTeams(ctx context.Context, params url.Values) ([]team.Team, error) {
	key := "team:list:" + params.Encode()
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListTeams(ctx, params)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetTeam(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := "team:id:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

// StandingRepository caches the season catalogue. Tables change with every
// sync and always go to the backend.
type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store[any]
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store[any]) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) ListStandings(ctx context.Context, params url.Values) ([]standing.Row, error) {
	return r.next.ListStandings(ctx, params)
}

func (r *StandingRepository) ListSeasons(ctx context.Context, params url.Values) ([]league.Season, error) {
	key := "season:list:" + params.Encode()
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListSeasons(ctx, params)
		if err != nil {
			return nil, err
		}
		return append([]league.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.Season)
	return append([]league.Season(nil), items...), nil
}

// Purge drops every cached entry; used after a backend sync.
func Purge(ctx context.Context, cache *basecache.Store[any]) {
	for _, prefix := range []string{"league:", "team:", "season:"} {
		cache.DeletePrefix(ctx, prefix)
	}
}
