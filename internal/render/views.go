package render

import (
	"strconv"

	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/domain/player"
	"github.com/riskibarqy/football-analytics/internal/domain/squadstat"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

const (
	noStandings = "No standings data. Sync data from the extension first."
	noMatches   = "No matches found"
	noMeetings  = "No meetings found between these teams"
	noPlayers   = "No players found"
	noSquad     = "No data. Sync first."
	noData      = "No data"
)

var standingsColumns = []string{"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"}

func Standings(v usecase.StandingsView) Page {
	page := Page{
		Title:    "League Standings",
		Subtitle: "Current and historical standings",
		State:    string(v.State),
		Message:  v.Message,
	}
	if v.State != usecase.ViewReady {
		if v.State == usecase.ViewEmpty {
			page.Message = noStandings
		}
		return page
	}

	if len(v.Partition.Current) > 0 {
		page.Tables = append(page.Tables, standingsTable("Current season", v.Partition.Current))
	}
	for _, g := range v.Partition.Previous {
		page.Tables = append(page.Tables, standingsTable(g.Key, g.Rows))
	}
	return page
}

func standingsTable(title string, rows []standing.RankedRow) Table {
	t := Table{Title: title, Columns: standingsColumns, Empty: noStandings}
	for _, r := range rows {
		t.Rows = append(t.Rows, []Cell{
			toned(strconv.Itoa(r.DisplayRank), ToneMuted),
			cell(r.Team),
			cell(strconv.Itoa(r.Games)),
			toned(strconv.Itoa(r.Wins), TonePositive),
			toned(strconv.Itoa(r.Ties), ToneWarning),
			toned(strconv.Itoa(r.Losses), ToneNegative),
			cell(strconv.Itoa(r.GoalsFor)),
			cell(strconv.Itoa(r.GoalsAgainst)),
			GoalDifference(r.GoalDiff),
			cell(strconv.Itoa(r.Points)),
		})
	}
	return t
}

// GoalDifference renders a signed goal difference toned by its sign.
func GoalDifference(gd int) Cell {
	tone := ToneNeutral
	switch standing.ClassifyGoalDifference(gd) {
	case standing.TrendPositive:
		tone = TonePositive
	case standing.TrendNegative:
		tone = ToneNegative
	}
	return toned(standing.FormatGoalDifference(gd), tone)
}

func Seasons(v usecase.SeasonsView) Page {
	page := Page{Title: "Seasons", State: string(v.State), Message: v.Message, Warning: v.Warning}
	if v.Current != nil {
		page.Cards = append(page.Cards, Card{
			Title: "Current season",
			Fields: []Field{
				{Label: "League", Value: v.Current.League},
				{Label: "Season", Value: v.Current.Season},
			},
		})
	}

	t := Table{Columns: []string{"League", "Season", "Current"}, Empty: noData}
	for _, s := range v.Seasons {
		current := ""
		if s.IsCurrent {
			current = "yes"
		}
		t.Rows = append(t.Rows, []Cell{cell(s.League), cell(s.Season), toned(current, TonePositive)})
	}
	page.Tables = []Table{t}
	return page
}

func Fixtures(v usecase.FixturesView) Page {
	page := Page{Title: "Fixtures & Results", State: string(v.State), Message: v.Message}
	if v.State == usecase.ViewUnavailable {
		return page
	}

	t := Table{
		Columns: []string{"Date", "GW", "League", "Season", "Home", "Score", "Away", "Venue", "Attendance", "ID"},
		Empty:   noMatches,
	}
	for _, m := range v.Matches {
		score := toned(m.ScoreDisplay(), ToneDefault)
		if !m.Played() {
			score.Tone = ToneMuted
		}
		t.Rows = append(t.Rows, []Cell{
			cell(Str(m.Date)),
			cell(Int(m.Gameweek)),
			cell(m.League),
			cell(m.Season),
			cell(m.HomeTeam),
			score,
			cell(m.AwayTeam),
			toned(Str(m.Venue), ToneMuted),
			toned(Thousands(m.Attendance), ToneMuted),
			toned(strconv.FormatInt(m.ID, 10), ToneMuted),
		})
	}
	page.Tables = []Table{t}
	return page
}

func HeadToHead(v usecase.HeadToHeadView) Page {
	page := Page{Title: "Head to Head", State: string(v.State), Message: v.Message, Warning: v.Warning}
	if v.State == usecase.ViewUnavailable {
		return page
	}

	if len(v.Matches) > 0 {
		page.Cards = []Card{
			{Title: teamLabel(v.TeamA.Name, "Team A") + " Wins", Tone: TonePositive, Fields: []Field{{Label: "Wins", Value: strconv.Itoa(v.Tally.AWins)}}},
			{Title: "Draws", Tone: ToneWarning, Fields: []Field{{Label: "Draws", Value: strconv.Itoa(v.Tally.Draws)}}},
			{Title: teamLabel(v.TeamB.Name, "Team B") + " Wins", Tone: ToneNegative, Fields: []Field{{Label: "Wins", Value: strconv.Itoa(v.Tally.BWins)}}},
		}
	}

	t := Table{Columns: []string{"Date", "Season", "League", "Home", "Score", "Away", "Venue"}, Empty: noMeetings}
	for _, m := range v.Matches {
		t.Rows = append(t.Rows, []Cell{
			cell(Str(m.Date)),
			cell(m.Season),
			cell(m.League),
			cell(m.HomeTeam),
			cell(scoreBoxes(m)),
			cell(m.AwayTeam),
			toned(Str(m.Venue), ToneMuted),
		})
	}
	page.Tables = []Table{t}
	return page
}

func scoreBoxes(m match.Match) string {
	home, away := m.ScoreBoxes()
	return home + match.ScoreSeparator + away
}

func teamLabel(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

var playerColumns = []string{"Player", "Team", "League", "Pos", "Age", "Games", "Min", "Goals", "Assists", "G+A"}

func Players(v usecase.PlayersView) Page {
	return playersPage("Player Stats", v)
}

func TopScorers(v usecase.PlayersView) Page {
	return playersPage("Top Scorers", v)
}

func playersPage(title string, v usecase.PlayersView) Page {
	page := Page{Title: title, State: string(v.State), Message: v.Message}
	if v.State == usecase.ViewUnavailable {
		return page
	}

	t := Table{Columns: playerColumns, Empty: noPlayers}
	for _, p := range v.Players {
		t.Rows = append(t.Rows, playerRow(p))
	}
	page.Tables = []Table{t}
	return page
}

func playerRow(p player.Row) []Cell {
	age := Placeholder
	if p.Age != nil && *p.Age != 0 {
		age = strconv.Itoa(*p.Age)
	}
	return []Cell{
		cell(p.Name),
		toned(Str(p.Team), ToneMuted),
		cell(Str(p.League)),
		cell(Str(p.Position)),
		toned(age, ToneMuted),
		cell(IntOr(p.Games, "0")),
		toned(Thousands(p.Minutes), ToneMuted),
		toned(IntOr(p.Goals, "0"), TonePositive),
		toned(IntOr(p.Assists, "0"), ToneDefault),
		cell(strconv.Itoa(p.GoalContribution())),
	}
}

func SquadStats(v usecase.SquadStatsView) Page {
	page := Page{Title: "Squad Stats", State: string(v.State), Message: v.Message}
	if v.State == usecase.ViewUnavailable {
		return page
	}

	t := Table{
		Columns: []string{"Team", "Type", "League", "Season", "Games", "Poss%", "Goals", "Assists", "Players", "Avg Age", "Minutes"},
		Empty:   noSquad,
	}
	for _, s := range v.Stats {
		t.Rows = append(t.Rows, []Cell{
			cell(Str(s.Team)),
			toned(s.Split.Label(), splitTone(s.Split)),
			cell(Str(s.League)),
			toned(Str(s.Season), ToneMuted),
			cell(Int(s.Games)),
			cell(Float(s.Possession, -1)),
			toned(Int(s.Goals), splitTone(s.Split)),
			cell(Int(s.Assists)),
			toned(Int(s.PlayersUsed), ToneMuted),
			toned(Float(s.AvgAge, -1), ToneMuted),
			toned(Thousands(s.Minutes), ToneMuted),
		})
	}
	page.Tables = []Table{t}
	return page
}

func splitTone(s squadstat.Split) Tone {
	if s == squadstat.SplitFor {
		return TonePositive
	}
	return ToneNegative
}

func TeamProfile(v usecase.TeamProfile) Page {
	page := Page{Title: v.Team.Name, State: string(v.State), Message: v.Message}
	if v.State == usecase.ViewUnavailable {
		return page
	}
	page.Subtitle = Str(v.Team.League) + " · ID: " + strconv.FormatInt(v.Team.ID, 10)

	page.Cards = []Card{
		squadCard(squadstat.SplitFor, v.For, v.StatsState),
		squadCard(squadstat.SplitAgainst, v.Against, v.StatsState),
	}

	if v.MatchesState == usecase.ViewUnavailable {
		page.Tables = []Table{{Title: "Recent matches", Columns: []string{"Date", "Home", "Score", "Away"}, Empty: unavailable}}
		return page
	}
	t := Table{Title: "Recent matches", Columns: []string{"Date", "Home", "Score", "Away"}, Empty: noMatches}
	for _, m := range v.RecentMatches {
		t.Rows = append(t.Rows, []Cell{cell(Str(m.Date)), cell(m.HomeTeam), cell(m.ScoreDisplay()), cell(m.AwayTeam)})
	}
	page.Tables = []Table{t}
	return page
}

const unavailable = "Unavailable"

func squadCard(split squadstat.Split, s *squadstat.Stat, state usecase.ViewState) Card {
	card := Card{Title: split.Title() + " Stats", Tone: splitTone(split)}
	switch {
	case state == usecase.ViewUnavailable:
		card.Message = unavailable
		return card
	case s == nil:
		card.Message = noData
		return card
	}

	possession := Placeholder
	if s.Possession != nil && *s.Possession != 0 {
		possession = Float(s.Possession, -1) + "%"
	}
	card.Fields = []Field{
		{Label: "Games", Value: Int(s.Games)},
		{Label: "Goals", Value: Int(s.Goals)},
		{Label: "Assists", Value: Int(s.Assists)},
		{Label: "Possession", Value: possession},
		{Label: "Minutes", Value: Thousands(s.Minutes)},
		{Label: "Players Used", Value: Int(s.PlayersUsed)},
		{Label: "Avg Age", Value: Float(s.AvgAge, -1)},
	}
	return card
}

func Overview(v usecase.Overview) Page {
	page := Page{Title: "FootballIQ Dashboard", Subtitle: "Football analytics platform", State: string(v.State)}
	page.Cards = []Card{
		healthCard(v.Health.Status, v.Health.Database, v.Health.Healthy()),
		countCard("Leagues", v.Leagues, v.LeaguesState),
		countCard("Seasons", v.Seasons, v.SeasonsState),
		countCard("Current seasons", v.CurrentSeasons, v.SeasonsState),
	}
	return page
}

func healthCard(status, database string, healthy bool) Card {
	tone := ToneNegative
	if healthy {
		tone = TonePositive
	}
	if database == "" {
		database = Placeholder
	}
	return Card{
		Title: "API Status",
		Tone:  tone,
		Fields: []Field{
			{Label: "Status", Value: status, Tone: tone},
			{Label: "Database", Value: database},
		},
	}
}

func countCard(label string, n int, state usecase.ViewState) Card {
	value := strconv.Itoa(n)
	if state == usecase.ViewUnavailable {
		value = Placeholder
	}
	return Card{Title: label, Fields: []Field{{Label: label, Value: value}}}
}

func Leagues(v usecase.LeaguesView) Page {
	page := Page{Title: "Leagues", State: string(v.State), Message: v.Message}
	if v.State == usecase.ViewEmpty {
		page.Message = noData
	}
	for _, g := range v.Groups {
		t := Table{Title: g.Country, Columns: []string{"League", "FBref ID", "ID"}, Empty: noData}
		for _, l := range g.Leagues {
			t.Rows = append(t.Rows, []Cell{cell(l.Name), toned(Str(l.FBRefID), ToneMuted), toned(strconv.FormatInt(l.ID, 10), ToneMuted)})
		}
		page.Tables = append(page.Tables, t)
	}
	return page
}

func Teams(v usecase.TeamsView) Page {
	page := Page{Title: "Teams", State: string(v.State), Message: v.Message}
	if v.State == usecase.ViewUnavailable {
		return page
	}
	t := Table{Columns: []string{"Team", "League", "ID"}, Empty: noData}
	for _, tm := range v.Teams {
		t.Rows = append(t.Rows, []Cell{cell(tm.Name), cell(Str(tm.League)), toned(strconv.FormatInt(tm.ID, 10), ToneMuted)})
	}
	page.Tables = []Table{t}
	return page
}

func Prediction(v usecase.PredictionView) Page {
	page := Page{Title: "Match Predictions", State: string(v.State), Message: v.Message}
	r := v.Result
	if v.State != usecase.ViewReady {
		page.Cards = []Card{{Title: "Prediction failed", Tone: ToneNegative, Message: v.Message}}
		return page
	}

	predicted := Placeholder
	if r.PredictedScore != nil {
		predicted = strconv.Itoa(r.PredictedScore.Home) + match.ScoreSeparator + strconv.Itoa(r.PredictedScore.Away)
	}
	page.Cards = []Card{{
		Title: r.HomeTeam + " vs " + r.AwayTeam,
		Fields: []Field{
			{Label: r.HomeTeam + " win", Value: Percent(r.HomeWinProb), Tone: TonePositive},
			{Label: "Draw", Value: Percent(r.DrawProb), Tone: ToneWarning},
			{Label: r.AwayTeam + " win", Value: Percent(r.AwayWinProb), Tone: ToneNegative},
			{Label: "Predicted score", Value: predicted},
			{Label: "Confidence", Value: Percent(r.Confidence)},
		},
	}}

	if a := r.ActualResult; a != nil {
		actual := Card{Title: "Actual result", Fields: []Field{
			{Label: "Score", Value: Int(a.HomeScore) + match.ScoreSeparator + Int(a.AwayScore)},
			{Label: "Date", Value: Str(a.MatchDate)},
		}}
		if a.PredictionCorrect != nil {
			verdict := Field{Label: "Prediction", Value: "incorrect", Tone: ToneNegative}
			if *a.PredictionCorrect {
				verdict = Field{Label: "Prediction", Value: "correct", Tone: TonePositive}
			}
			actual.Fields = append(actual.Fields, verdict)
		}
		page.Cards = append(page.Cards, actual)
	}
	return page
}

// Sync renders the health badge and the newest-first activity log.
func Sync(status string, database string, healthy bool, entries []usecase.LogEntry) Page {
	page := Page{Title: "Sync & Data Manager", State: string(usecase.ViewReady)}
	page.Cards = []Card{healthCard(status, database, healthy)}

	t := Table{Title: "Activity", Columns: []string{"Time", "Level", "Message"}, Empty: "No activity yet"}
	for _, e := range entries {
		tone := ToneDefault
		switch e.Level {
		case usecase.LogSuccess:
			tone = TonePositive
		case usecase.LogError:
			tone = ToneNegative
		}
		t.Rows = append(t.Rows, []Cell{toned(e.Time.Format("15:04:05"), ToneMuted), toned(string(e.Level), tone), cell(e.Message)})
	}
	page.Tables = []Table{t}
	return page
}
