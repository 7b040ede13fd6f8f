package prediction

import (
	"fmt"
	"strings"
)

// Request asks the external prediction service for a match outcome.
type Request struct {
	HomeTeam string
	AwayTeam string
	League   string
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.HomeTeam) == "" || strings.TrimSpace(r.AwayTeam) == "" {
		return fmt.Errorf("home and away teams are required")
	}
	if strings.EqualFold(strings.TrimSpace(r.HomeTeam), strings.TrimSpace(r.AwayTeam)) {
		return fmt.Errorf("home and away teams must differ")
	}
	return nil
}

type Score struct {
	Home int
	Away int
}

type ActualResult struct {
	HomeScore         *int
	AwayScore         *int
	ScoreRaw          *string
	MatchDate         *string
	PredictionCorrect *bool
}

// Result is the service's answer. It is displayed as received; nothing here
// is computed locally. TeamStats payloads are kept as raw JSON objects.
type Result struct {
	Success        bool
	HomeTeam       string
	AwayTeam       string
	HomeWinProb    *float64
	DrawProb       *float64
	AwayWinProb    *float64
	PredictedScore *Score
	Confidence     *float64
	HomeStats      map[string]any
	AwayStats      map[string]any
	ActualResult   *ActualResult
	Error          string
}

// Failed reports whether the service answered with an error message.
func (r Result) Failed() bool {
	return !r.Success || r.Error != ""
}
