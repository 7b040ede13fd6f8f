package match

import (
	"errors"
	"fmt"
)

var (
	ErrAttribution = errors.New("match does not involve both compared teams")
	ErrInvalidPair = errors.New("head-to-head needs two distinct team names")
)

// Tally counts results from team A's point of view.
type Tally struct {
	AWins   int
	BWins   int
	Draws   int
	Skipped int
}

func (t Tally) Played() int {
	return t.AWins + t.BWins + t.Draws
}

// AttributionError lists scored matches that could not be attributed to the
// compared pair. They are left out of the tally. Indexes are positions in the
// input; MatchIDs is zero for rows the backend sent without an id.
type AttributionError struct {
	TeamA    string
	TeamB    string
	Indexes  []int
	MatchIDs []int64
}

func (e *AttributionError) Error() string {
	return fmt.Sprintf("%s: %d match(es) for %q vs %q at positions %v",
		ErrAttribution.Error(), len(e.Indexes), e.TeamA, e.TeamB, e.Indexes)
}

func (e *AttributionError) Unwrap() error {
	return ErrAttribution
}

func (e *AttributionError) Count() int {
	return len(e.Indexes)
}

// TallyHeadToHead counts wins and draws between teamA and teamB. Matches
// missing a score are skipped. Scored matches whose home and away teams are
// not exactly {teamA, teamB} are excluded and reported in an
// *AttributionError returned together with the tally of valid matches.
func TallyHeadToHead(matches []Match, teamA, teamB string) (Tally, error) {
	if teamA == "" || teamB == "" || teamA == teamB {
		return Tally{}, fmt.Errorf("%w: a=%q b=%q", ErrInvalidPair, teamA, teamB)
	}

	var (
		tally   Tally
		indexes []int
		ids     []int64
	)
	for i, m := range matches {
		if !m.Played() {
			tally.Skipped++
			continue
		}

		aIsHome := m.HomeTeam == teamA && m.AwayTeam == teamB
		aIsAway := m.AwayTeam == teamA && m.HomeTeam == teamB
		if !aIsHome && !aIsAway {
			indexes = append(indexes, i)
			ids = append(ids, m.ID)
			continue
		}

		aGoals, bGoals := *m.HomeScore, *m.AwayScore
		if aIsAway {
			aGoals, bGoals = bGoals, aGoals
		}

		switch {
		case aGoals > bGoals:
			tally.AWins++
		case bGoals > aGoals:
			tally.BWins++
		default:
			tally.Draws++
		}
	}

	if len(indexes) > 0 {
		return tally, &AttributionError{TeamA: teamA, TeamB: teamB, Indexes: indexes, MatchIDs: ids}
	}
	return tally, nil
}
