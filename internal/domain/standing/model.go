package standing

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInconsistentGoalDifference = errors.New("goal difference does not match goals for and against")

// Row is one team's line in a league table for one season.
type Row struct {
	LeagueID     int64
	League       string
	SeasonID     int64
	Season       string
	IsCurrent    bool
	Rank         *int
	Team         string
	Games        int
	Wins         int
	Ties         int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Points       int
	PointsAvg    *float64
}

// Consistent reports whether GoalDiff equals GoalsFor minus GoalsAgainst.
func (r Row) Consistent() error {
	if want := r.GoalsFor - r.GoalsAgainst; r.GoalDiff != want {
		return fmt.Errorf("%w: team=%s goal_diff=%d want=%d", ErrInconsistentGoalDifference, r.Team, r.GoalDiff, want)
	}
	return nil
}

type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendNeutral  Trend = "neutral"
)

func ClassifyGoalDifference(gd int) Trend {
	switch {
	case gd > 0:
		return TrendPositive
	case gd < 0:
		return TrendNegative
	default:
		return TrendNeutral
	}
}

// FormatGoalDifference prefixes positive values with "+".
func FormatGoalDifference(gd int) string {
	if gd > 0 {
		return "+" + strconv.Itoa(gd)
	}
	return strconv.Itoa(gd)
}
