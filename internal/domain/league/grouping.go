package league

import (
	"errors"
	"fmt"
)

// UnknownCountry groups leagues without a country.
const UnknownCountry = "Other"

var ErrMultipleCurrentSeasons = errors.New("league has more than one current season")

type CountryGroup struct {
	Country string
	Leagues []League
}

// GroupByCountry groups leagues by country, keeping first-seen country order
// and input order within a country.
func GroupByCountry(leagues []League) []CountryGroup {
	if len(leagues) == 0 {
		return nil
	}

	index := make(map[string]int)
	out := make([]CountryGroup, 0)
	for _, l := range leagues {
		country := UnknownCountry
		if l.Country != nil && *l.Country != "" {
			country = *l.Country
		}

		pos, ok := index[country]
		if !ok {
			pos = len(out)
			index[country] = pos
			out = append(out, CountryGroup{Country: country})
		}
		out[pos].Leagues = append(out[pos].Leagues, l)
	}

	return out
}

// ValidateSeasons checks that no league has more than one current season.
func ValidateSeasons(seasons []Season) error {
	current := make(map[int64]int64, len(seasons))
	for _, s := range seasons {
		if !s.IsCurrent {
			continue
		}
		if prev, ok := current[s.LeagueID]; ok && prev != s.SeasonID {
			return fmt.Errorf("%w: league=%d seasons=%d,%d", ErrMultipleCurrentSeasons, s.LeagueID, prev, s.SeasonID)
		}
		current[s.LeagueID] = s.SeasonID
	}

	return nil
}

// CurrentSeason returns the current season of leagueID, if any.
func CurrentSeason(seasons []Season, leagueID int64) (Season, bool) {
	for _, s := range seasons {
		if s.LeagueID == leagueID && s.IsCurrent {
			return s, true
		}
	}
	return Season{}, false
}
