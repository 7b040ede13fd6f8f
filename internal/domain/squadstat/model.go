package squadstat

// Split tells whether a stat line describes the team itself or its opponents.
type Split string

const (
	SplitFor     Split = "for"
	SplitAgainst Split = "against"
)

func (s Split) Valid() bool {
	return s == SplitFor || s == SplitAgainst
}

// Label is the short table label for a split.
func (s Split) Label() string {
	if s == SplitFor {
		return "For"
	}
	return "vs"
}

// Title is the card heading used on a team profile.
func (s Split) Title() string {
	if s == SplitFor {
		return "Attacking"
	}
	return "Defensive (vs)"
}

// Stat is one team's aggregated squad line for a season and split.
type Stat struct {
	ID          int64
	TeamID      *int64
	Team        *string
	League      *string
	Season      *string
	Split       Split
	Games       *int
	Possession  *float64
	Goals       *int
	Assists     *int
	PlayersUsed *int
	AvgAge      *float64
	Minutes     *int
}

// SplitPair returns the first "for" and first "against" lines, if present.
func SplitPair(stats []Stat) (forStat, againstStat *Stat) {
	for i := range stats {
		switch stats[i].Split {
		case SplitFor:
			if forStat == nil {
				forStat = &stats[i]
			}
		case SplitAgainst:
			if againstStat == nil {
				againstStat = &stats[i]
			}
		}
	}
	return forStat, againstStat
}
