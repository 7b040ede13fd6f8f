package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

// queryReader collects the first parse failure so handlers can read every
// parameter and check once.
type queryReader struct {
	values url.Values
	err    error
}

func newQueryReader(values url.Values) *queryReader {
	return &queryReader{values: values}
}

func (q *queryReader) raw(key string) string {
	return strings.TrimSpace(q.values.Get(key))
}

func (q *queryReader) optionalInt64(key string) *int64 {
	raw := q.raw(key)
	if raw == "" || q.err != nil {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.err = fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
		return nil
	}
	return &v
}

func (q *queryReader) optionalInt(key string) *int {
	v := q.optionalInt64(key)
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func (q *queryReader) optionalString(key string) *string {
	raw := q.raw(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func (q *queryReader) intOr(key string, fallback int) int {
	if v := q.optionalInt(key); v != nil {
		return *v
	}
	return fallback
}

func (q *queryReader) stringOr(key, fallback string) string {
	if raw := q.raw(key); raw != "" {
		return raw
	}
	return fallback
}

func (q *queryReader) bool(key string) bool {
	raw := q.raw(key)
	if raw == "" || q.err != nil {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.err = fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, key)
		return false
	}
	return v
}

func (q *queryReader) Err() error {
	return q.err
}

func parsePathID(raw, name string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func standingsFilterFrom(q *queryReader) filterstate.StandingsFilter {
	return filterstate.StandingsFilter{
		LeagueID: q.optionalInt64("league_id"),
		SeasonID: q.optionalInt64("season_id"),
	}
}

func fixturesFilterFrom(q *queryReader) filterstate.FixturesFilter {
	f := filterstate.NewFixturesFilter()
	f.LeagueID = q.optionalInt64("league_id")
	f.SeasonID = q.optionalInt64("season_id")
	f.Team = q.raw("team")
	f.DateFrom = q.optionalString("date_from")
	f.DateTo = q.optionalString("date_to")
	f.Limit = q.intOr("limit", f.Limit)
	return f
}

func playersFilterFrom(q *queryReader) filterstate.PlayersFilter {
	f := filterstate.NewPlayersFilter()
	f.LeagueID = q.optionalInt64("league_id")
	f.SeasonID = q.optionalInt64("season_id")
	f.TeamID = q.optionalInt64("team_id")
	f.Position = strings.ToUpper(q.raw("position"))
	f.MinGoals = q.optionalInt("min_goals")
	f.Search = q.raw("search")
	f.SortBy = q.stringOr("sort_by", f.SortBy)
	f.Limit = q.intOr("limit", f.Limit)
	return f
}

func topScorersFilterFrom(q *queryReader) filterstate.TopScorersFilter {
	f := filterstate.NewTopScorersFilter()
	f.LeagueID = q.optionalInt64("league_id")
	f.SeasonID = q.optionalInt64("season_id")
	f.Limit = q.intOr("limit", f.Limit)
	return f
}

func squadStatsFilterFrom(q *queryReader) filterstate.SquadStatsFilter {
	return filterstate.SquadStatsFilter{
		TeamID:   q.optionalInt64("team_id"),
		LeagueID: q.optionalInt64("league_id"),
		SeasonID: q.optionalInt64("season_id"),
		Split:    strings.ToLower(q.raw("split")),
	}
}
