package footballapi

import (
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-analytics/internal/domain/datasync"
	"github.com/riskibarqy/football-analytics/internal/domain/health"
	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/domain/player"
	"github.com/riskibarqy/football-analytics/internal/domain/prediction"
	"github.com/riskibarqy/football-analytics/internal/domain/squadstat"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/domain/team"
)

// flexString accepts a JSON string or number. Reference ids such as
// fbref_id are stored either way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(raw)
	return nil
}

func (f *flexString) ptr() *string {
	if f == nil || *f == "" {
		return nil
	}
	s := string(*f)
	return &s
}

type leagueDTO struct {
	ID      int64       `json:"id" validate:"gt=0"`
	Name    string      `json:"name" validate:"required"`
	Country *string     `json:"country"`
	FBRefID *flexString `json:"fbref_id"`
}

func (d leagueDTO) toDomain() league.League {
	return league.League{ID: d.ID, Name: d.Name, Country: d.Country, FBRefID: d.FBRefID.ptr()}
}

type seasonDTO struct {
	LeagueID  int64      `json:"league_id" validate:"gt=0"`
	League    string     `json:"league" validate:"required"`
	SeasonID  int64      `json:"season_id" validate:"gt=0"`
	Season    flexString `json:"season" validate:"required"`
	IsCurrent bool       `json:"is_current"`
}

func (d seasonDTO) toDomain() league.Season {
	return league.Season{
		LeagueID:  d.LeagueID,
		League:    d.League,
		SeasonID:  d.SeasonID,
		Season:    string(d.Season),
		IsCurrent: d.IsCurrent,
	}
}

type teamDTO struct {
	ID       int64       `json:"id" validate:"gt=0"`
	Name     string      `json:"name" validate:"required"`
	LeagueID *int64      `json:"league_id"`
	League   *string     `json:"league"`
	FBRefID  *flexString `json:"fbref_id"`
}

func (d teamDTO) toDomain() team.Team {
	return team.Team{ID: d.ID, Name: d.Name, LeagueID: d.LeagueID, League: d.League, FBRefID: d.FBRefID.ptr()}
}

type standingDTO struct {
	Rank         *int       `json:"rank" validate:"omitempty,gt=0"`
	Team         string     `json:"team" validate:"required"`
	League       string     `json:"league" validate:"required"`
	LeagueID     int64      `json:"league_id"`
	Season       flexString `json:"season" validate:"required"`
	SeasonID     int64      `json:"season_id"`
	Games        int        `json:"games" validate:"gte=0"`
	Wins         int        `json:"wins" validate:"gte=0"`
	Ties         int        `json:"ties" validate:"gte=0"`
	Losses       int        `json:"losses" validate:"gte=0"`
	GoalsFor     int        `json:"goals_for" validate:"gte=0"`
	GoalsAgainst int        `json:"goals_against" validate:"gte=0"`
	GoalDiff     *int       `json:"goal_diff"`
	Points       int        `json:"points"`
	PointsAvg    *float64   `json:"points_avg"`
	IsCurrent    bool       `json:"is_current"`
}

// toDomain fills a missing goal_diff from goals; a present one must agree.
func (d standingDTO) toDomain() (standing.Row, error) {
	row := standing.Row{
		LeagueID:     d.LeagueID,
		League:       d.League,
		SeasonID:     d.SeasonID,
		Season:       string(d.Season),
		IsCurrent:    d.IsCurrent,
		Rank:         d.Rank,
		Team:         d.Team,
		Games:        d.Games,
		Wins:         d.Wins,
		Ties:         d.Ties,
		Losses:       d.Losses,
		GoalsFor:     d.GoalsFor,
		GoalsAgainst: d.GoalsAgainst,
		GoalDiff:     d.GoalsFor - d.GoalsAgainst,
		Points:       d.Points,
		PointsAvg:    d.PointsAvg,
	}
	if d.GoalDiff != nil {
		row.GoalDiff = *d.GoalDiff
	}
	return row, row.Consistent()
}

type matchDTO struct {
	ID         int64       `json:"id" validate:"gte=0"`
	MatchDate  *string     `json:"match_date"`
	StartTime  *string     `json:"start_time"`
	Gameweek   *int        `json:"gameweek"`
	League     string      `json:"league"`
	Season     flexString  `json:"season"`
	HomeTeam   string      `json:"home_team" validate:"required"`
	AwayTeam   string      `json:"away_team" validate:"required"`
	HomeScore  *int        `json:"home_score" validate:"omitempty,gte=0"`
	AwayScore  *int        `json:"away_score" validate:"omitempty,gte=0"`
	ScoreRaw   *string     `json:"score_raw"`
	Venue      *string     `json:"venue"`
	Attendance *int        `json:"attendance" validate:"omitempty,gte=0"`
	Referee    *string     `json:"referee"`
	Round      *flexString `json:"round"`
}

func (d matchDTO) toDomain() match.Match {
	return match.Match{
		ID:         d.ID,
		Date:       d.MatchDate,
		StartTime:  d.StartTime,
		Gameweek:   d.Gameweek,
		League:     d.League,
		Season:     string(d.Season),
		HomeTeam:   d.HomeTeam,
		AwayTeam:   d.AwayTeam,
		HomeScore:  d.HomeScore,
		AwayScore:  d.AwayScore,
		ScoreRaw:   d.ScoreRaw,
		Venue:      d.Venue,
		Attendance: d.Attendance,
		Referee:    d.Referee,
		Round:      d.Round.ptr(),
	}
}

type playerDTO struct {
	ID          int64       `json:"id" validate:"gte=0"`
	Name        string      `json:"player_name" validate:"required"`
	Nationality *string     `json:"nationality"`
	Position    *string     `json:"position"`
	Age         *int        `json:"age" validate:"omitempty,gte=0"`
	Games       *int        `json:"games" validate:"omitempty,gte=0"`
	GamesStarts *int        `json:"games_starts" validate:"omitempty,gte=0"`
	Minutes     *int        `json:"minutes" validate:"omitempty,gte=0"`
	Minutes90s  *float64    `json:"minutes_90s"`
	Goals       *int        `json:"goals" validate:"omitempty,gte=0"`
	Assists     *int        `json:"assists" validate:"omitempty,gte=0"`
	Team        *string     `json:"team"`
	League      *string     `json:"league"`
	Season      *flexString `json:"season"`
}

func (d playerDTO) toDomain() player.Row {
	return player.Row{
		ID:          d.ID,
		Name:        d.Name,
		Nationality: d.Nationality,
		Team:        d.Team,
		League:      d.League,
		Season:      d.Season.ptr(),
		Position:    d.Position,
		Age:         d.Age,
		Games:       d.Games,
		GamesStarts: d.GamesStarts,
		Minutes:     d.Minutes,
		Minutes90s:  d.Minutes90s,
		Goals:       d.Goals,
		Assists:     d.Assists,
	}
}

type squadStatDTO struct {
	ID          int64       `json:"id" validate:"gte=0"`
	TeamID      *int64      `json:"team_id"`
	Team        *string     `json:"team"`
	League      *string     `json:"league"`
	Season      *flexString `json:"season"`
	Split       string      `json:"split" validate:"oneof=for against"`
	Games       *int        `json:"games" validate:"omitempty,gte=0"`
	Possession  *float64    `json:"possession" validate:"omitempty,gte=0,lte=100"`
	Goals       *int        `json:"goals" validate:"omitempty,gte=0"`
	Assists     *int        `json:"assists" validate:"omitempty,gte=0"`
	PlayersUsed *int        `json:"players_used" validate:"omitempty,gte=0"`
	AvgAge      *float64    `json:"avg_age" validate:"omitempty,gte=0"`
	Minutes     *int        `json:"minutes" validate:"omitempty,gte=0"`
}

func (d squadStatDTO) toDomain() squadstat.Stat {
	return squadstat.Stat{
		ID:          d.ID,
		TeamID:      d.TeamID,
		Team:        d.Team,
		League:      d.League,
		Season:      d.Season.ptr(),
		Split:       squadstat.Split(d.Split),
		Games:       d.Games,
		Possession:  d.Possession,
		Goals:       d.Goals,
		Assists:     d.Assists,
		PlayersUsed: d.PlayersUsed,
		AvgAge:      d.AvgAge,
		Minutes:     d.Minutes,
	}
}

type healthDTO struct {
	Status   string `json:"status" validate:"required"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Error    string `json:"error"`
}

func (d healthDTO) toDomain() health.Status {
	return health.Status{Status: d.Status, Version: d.Version, Database: d.Database, Error: d.Error}
}

type deletedDTO struct {
	Deleted int64 `json:"deleted" validate:"gt=0"`
}

type predictionRequestDTO struct {
	HomeTeam string  `json:"home_team"`
	AwayTeam string  `json:"away_team"`
	League   *string `json:"league,omitempty"`
}

func newPredictionRequestDTO(req prediction.Request) predictionRequestDTO {
	out := predictionRequestDTO{HomeTeam: req.HomeTeam, AwayTeam: req.AwayTeam}
	if l := strings.TrimSpace(req.League); l != "" {
		out.League = &l
	}
	return out
}

type predictedScoreDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type actualResultDTO struct {
	HomeScore         *int    `json:"home_score"`
	AwayScore         *int    `json:"away_score"`
	ScoreRaw          *string `json:"score_raw"`
	MatchDate         *string `json:"match_date"`
	PredictionCorrect *bool   `json:"prediction_correct"`
}

type predictionDTO struct {
	Success        bool               `json:"success"`
	HomeTeam       string             `json:"home_team"`
	AwayTeam       string             `json:"away_team"`
	HomeWinProb    *float64           `json:"home_win_prob" validate:"omitempty,gte=0,lte=1"`
	DrawProb       *float64           `json:"draw_prob" validate:"omitempty,gte=0,lte=1"`
	AwayWinProb    *float64           `json:"away_win_prob" validate:"omitempty,gte=0,lte=1"`
	PredictedScore *predictedScoreDTO `json:"predicted_score"`
	Confidence     *float64           `json:"confidence"`
	HomeStats      map[string]any     `json:"home_stats"`
	AwayStats      map[string]any     `json:"away_stats"`
	ActualResult   *actualResultDTO   `json:"actual_result"`
	Error          string             `json:"error"`
}

func (d predictionDTO) toDomain() prediction.Result {
	out := prediction.Result{
		Success:     d.Success,
		HomeTeam:    d.HomeTeam,
		AwayTeam:    d.AwayTeam,
		HomeWinProb: d.HomeWinProb,
		DrawProb:    d.DrawProb,
		AwayWinProb: d.AwayWinProb,
		Confidence:  d.Confidence,
		HomeStats:   d.HomeStats,
		AwayStats:   d.AwayStats,
		Error:       d.Error,
	}
	if d.PredictedScore != nil {
		out.PredictedScore = &prediction.Score{Home: d.PredictedScore.Home, Away: d.PredictedScore.Away}
	}
	if d.ActualResult != nil {
		out.ActualResult = &prediction.ActualResult{
			HomeScore:         d.ActualResult.HomeScore,
			AwayScore:         d.ActualResult.AwayScore,
			ScoreRaw:          d.ActualResult.ScoreRaw,
			MatchDate:         d.ActualResult.MatchDate,
			PredictionCorrect: d.ActualResult.PredictionCorrect,
		}
	}
	return out
}

func toSyncResult(raw map[string]any) datasync.Result {
	if raw == nil {
		return datasync.Result{}
	}
	return datasync.Result(raw)
}
