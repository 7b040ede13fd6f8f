package match

import (
	"fmt"
	"strconv"
)

const (
	// ScoreTBD is shown for a match without a complete score.
	ScoreTBD = "TBD"
	// ScoreUnknown is shown for one missing side of a score.
	ScoreUnknown = "?"
	// ScoreSeparator joins home and away goals.
	ScoreSeparator = "–"
)

// Match is a fixture or result. Both scores nil means the match is unplayed.
type Match struct {
	ID         int64
	Date       *string
	StartTime  *string
	Gameweek   *int
	League     string
	Season     string
	HomeTeam   string
	AwayTeam   string
	HomeScore  *int
	AwayScore  *int
	ScoreRaw   *string
	Venue      *string
	Attendance *int
	Referee    *string
	Round      *string
}

// Played reports whether both scores are known.
func (m Match) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

func (m Match) ScoreDisplay() string {
	if !m.Played() {
		return ScoreTBD
	}
	return strconv.Itoa(*m.HomeScore) + ScoreSeparator + strconv.Itoa(*m.AwayScore)
}

// ScoreBoxes returns each side of the score, "?" when a side is missing.
func (m Match) ScoreBoxes() (string, string) {
	return scoreBox(m.HomeScore), scoreBox(m.AwayScore)
}

func scoreBox(v *int) string {
	if v == nil {
		return ScoreUnknown
	}
	return strconv.Itoa(*v)
}

// Involves reports whether team played in the match, by exact name.
func (m Match) Involves(team string) bool {
	return team != "" && (m.HomeTeam == team || m.AwayTeam == team)
}

func (m Match) Validate() error {
	if m.HomeTeam == "" || m.AwayTeam == "" {
		return fmt.Errorf("match %d: home and away teams are required", m.ID)
	}
	if m.Attendance != nil && *m.Attendance < 0 {
		return fmt.Errorf("match %d: attendance must be >= 0", m.ID)
	}
	return nil
}

// ResultUpdate is a manual correction of a match score.
type ResultUpdate struct {
	HomeScore int
	AwayScore int
	ScoreRaw  *string
}

func (u ResultUpdate) Validate() error {
	if u.HomeScore < 0 || u.AwayScore < 0 {
		return fmt.Errorf("scores must be >= 0, got %d-%d", u.HomeScore, u.AwayScore)
	}
	return nil
}

// InvolvingTeam returns up to limit matches in which team played, keeping
// input order. A limit <= 0 returns all of them.
func InvolvingTeam(matches []Match, team string, limit int) []Match {
	out := make([]Match, 0)
	for _, m := range matches {
		if !m.Involves(team) {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
