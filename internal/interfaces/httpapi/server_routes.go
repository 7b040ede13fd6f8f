package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerViewRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/views/overview", handler.GetOverview)
	mux.HandleFunc("GET /v1/views/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/views/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/views/teams/{teamID}/profile", handler.GetTeamProfile)
	mux.HandleFunc("GET /v1/views/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/views/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/views/fixtures", handler.GetFixtures)
	mux.HandleFunc("GET /v1/views/head-to-head", handler.GetHeadToHead)
	mux.HandleFunc("GET /v1/views/players", handler.GetPlayers)
	mux.HandleFunc("GET /v1/views/top-scorers", handler.GetTopScorers)
	mux.HandleFunc("GET /v1/views/squad-stats", handler.GetSquadStats)
	mux.HandleFunc("GET /v1/views/sync", handler.GetSyncStatus)
}

func registerCommandRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}/result", handler.UpdateMatchResult)
	mux.HandleFunc("POST /v1/predictions", handler.CreatePrediction)
	mux.HandleFunc("POST /v1/sync", handler.TriggerSync)
}
