package filterstate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

const (
	DefaultLimit       = 50
	DefaultTopScorers  = 20
	DefaultPlayersSort = "goals"
	dateLayout         = "2006-01-02"
)

var validate = validator.New()

// Filter is the per-view filter contract.
type Filter interface {
	Values() map[string]any
	Validate() error
}

type StandingsFilter struct {
	LeagueID *int64 `query:"league_id" validate:"omitempty,gt=0"`
	SeasonID *int64 `query:"season_id" validate:"omitempty,gt=0"`
}

type SeasonsFilter struct {
	LeagueID *int64 `query:"league_id" validate:"omitempty,gt=0"`
}

type FixturesFilter struct {
	LeagueID *int64  `query:"league_id" validate:"omitempty,gt=0"`
	SeasonID *int64  `query:"season_id" validate:"omitempty,gt=0"`
	Team     string  `query:"team" validate:"max=120"`
	DateFrom *string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   *string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Limit    int     `query:"limit" validate:"gte=1,lte=250"`
}

// NewFixturesFilter returns the filter the fixtures view opens with.
func NewFixturesFilter() FixturesFilter {
	return FixturesFilter{Limit: DefaultLimit}
}

type PlayersFilter struct {
	LeagueID *int64 `query:"league_id" validate:"omitempty,gt=0"`
	SeasonID *int64 `query:"season_id" validate:"omitempty,gt=0"`
	TeamID   *int64 `query:"team_id" validate:"omitempty,gt=0"`
	Position string `query:"position" validate:"omitempty,oneof=GK DF MF FW"`
	MinGoals *int   `query:"min_goals" validate:"omitempty,gte=0"`
	Search   string `query:"search" validate:"max=120"`
	SortBy   string `query:"sort_by" validate:"oneof=goals assists games minutes player_name"`
	Limit    int    `query:"limit" validate:"gte=1,lte=250"`
}

func NewPlayersFilter() PlayersFilter {
	return PlayersFilter{SortBy: DefaultPlayersSort, Limit: DefaultLimit}
}

type TopScorersFilter struct {
	LeagueID *int64 `query:"league_id" validate:"omitempty,gt=0"`
	SeasonID *int64 `query:"season_id" validate:"omitempty,gt=0"`
	Limit    int    `query:"limit" validate:"gte=1,lte=250"`
}

func NewTopScorersFilter() TopScorersFilter {
	return TopScorersFilter{Limit: DefaultTopScorers}
}

type SquadStatsFilter struct {
	TeamID   *int64 `query:"team_id" validate:"omitempty,gt=0"`
	LeagueID *int64 `query:"league_id" validate:"omitempty,gt=0"`
	SeasonID *int64 `query:"season_id" validate:"omitempty,gt=0"`
	Split    string `query:"split" validate:"omitempty,oneof=for against"`
}

type TeamsFilter struct {
	LeagueID *int64 `query:"league_id" validate:"omitempty,gt=0"`
}

func (f StandingsFilter) Values() map[string]any  { return mustValues(f) }
func (f SeasonsFilter) Values() map[string]any    { return mustValues(f) }
func (f FixturesFilter) Values() map[string]any   { return mustValues(f) }
func (f PlayersFilter) Values() map[string]any    { return mustValues(f) }
func (f TopScorersFilter) Values() map[string]any { return mustValues(f) }
func (f SquadStatsFilter) Values() map[string]any { return mustValues(f) }
func (f TeamsFilter) Values() map[string]any      { return mustValues(f) }

func (f StandingsFilter) Validate() error  { return check(f) }
func (f SeasonsFilter) Validate() error    { return check(f) }
func (f PlayersFilter) Validate() error    { return check(f) }
func (f TopScorersFilter) Validate() error { return check(f) }
func (f SquadStatsFilter) Validate() error { return check(f) }
func (f TeamsFilter) Validate() error      { return check(f) }

func (f FixturesFilter) Validate() error {
	if err := check(f); err != nil {
		return err
	}
	// Layout is fixed-width, so lexical order is date order.
	if f.DateFrom != nil && f.DateTo != nil && strings.TrimSpace(*f.DateFrom) > strings.TrimSpace(*f.DateTo) {
		return fmt.Errorf("date_from %s is after date_to %s", *f.DateFrom, *f.DateTo)
	}
	return nil
}

func check(f any) error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	return nil
}

// mustValues panics only when a filter type is declared without query tags.
func mustValues(f any) map[string]any {
	values, err := qb.ModelValues(f)
	if err != nil {
		panic(fmt.Sprintf("filterstate: %T: %v", f, err))
	}
	return values
}
