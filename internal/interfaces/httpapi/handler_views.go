package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/render"
)

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	view, err := h.overviewService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.Overview(view))
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	view, err := h.leagueService.ByCountry(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.Leagues(view))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	filter := filterstate.TeamsFilter{LeagueID: q.optionalInt64("league_id")}
	if err := q.Err(); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.leagueService.Teams(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.Teams(view))
}

func (h *Handler) GetTeamProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamProfile")
	defer span.End()

	teamID, err := parsePathID(r.PathValue("teamID"), "team id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamProfile.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team profile failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.TeamProfile(view))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	filter := standingsFilterFrom(q)
	if err := q.Err(); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.standingsService.Load(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "load standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.Standings(view))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	leagueID := q.optionalInt64("league_id")
	if err := q.Err(); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.standingsService.Seasons(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.Seasons(view))
}

func (h *Handler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtures")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	filter := fixturesFilterFrom(q)
	if err := q.Err(); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.fixturesService.Load(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "load fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.Fixtures(view))
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	teamA, err := parsePathID(q.raw("team_a"), "team_a")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamB, err := parsePathID(q.raw("team_b"), "team_b")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.headToHeadService.Compare(ctx, teamA, teamB)
	if err != nil {
		h.logger.WarnContext(ctx, "compare teams failed", "team_a", teamA, "team_b", teamB, "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.HeadToHead(view))
}

func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayers")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	filter := playersFilterFrom(q)
	if err := q.Err(); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.playersService.Load(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "load players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.Players(view))
}

func (h *Handler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopScorers")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	filter := topScorersFilterFrom(q)
	if err := q.Err(); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.playersService.TopScorers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "load top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.TopScorers(view))
}

func (h *Handler) GetSquadStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquadStats")
	defer span.End()

	q := newQueryReader(r.URL.Query())
	filter := squadStatsFilterFrom(q)
	if err := q.Err(); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.squadStatsService.Load(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "load squad stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.SquadStats(view))
}
