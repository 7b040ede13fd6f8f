package player

// Position is the positional group reported by the backend.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Row is one player's season line.
type Row struct {
	ID          int64
	Name        string
	Nationality *string
	Team        *string
	League      *string
	Season      *string
	Position    *string
	Age         *int
	Games       *int
	GamesStarts *int
	Minutes     *int
	Minutes90s  *float64
	Goals       *int
	Assists     *int
}

// GoalContribution is goals plus assists, treating missing values as zero.
func (r Row) GoalContribution() int {
	return deref(r.Goals) + deref(r.Assists)
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
