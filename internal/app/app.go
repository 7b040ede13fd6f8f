package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-analytics/external/footballapi"
	"github.com/riskibarqy/football-analytics/internal/config"
	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/domain/team"
	repocache "github.com/riskibarqy/football-analytics/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-analytics/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-analytics/internal/platform/cache"
	idgen "github.com/riskibarqy/football-analytics/internal/platform/id"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/resilience"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

// Services holds every view service built on one football API client.
type Services struct {
	Overview    *usecase.OverviewService
	Leagues     *usecase.LeagueViewService
	Standings   *usecase.StandingsViewService
	Fixtures    *usecase.FixturesViewService
	HeadToHead  *usecase.HeadToHeadViewService
	Players     *usecase.PlayersViewService
	SquadStats  *usecase.SquadStatsViewService
	TeamProfile *usecase.TeamProfileService
	Prediction  *usecase.PredictionService
	Sync        *usecase.SyncService
}

func NewServices(cfg config.Config, logger *logging.Logger) *Services {
	if logger == nil {
		logger = logging.Default()
	}

	client := footballapi.NewClient(footballapi.ClientConfig{
		BaseURL: cfg.BackendBaseURL,
		Timeout: cfg.BackendTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.BackendCircuitEnabled,
			FailureThreshold: cfg.BackendCircuitFailureCount,
			OpenTimeout:      cfg.BackendCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.BackendCircuitHalfOpenMaxReq,
		},
		IDGenerator: idgen.NewRandomGenerator(),
	})

	var (
		leagueRepo   league.Repository   = client
		teamRepo     team.Repository     = client
		standingRepo standing.Repository = client
		store        *basecache.Store[any]
	)
	if cfg.CacheEnabled {
		store = basecache.NewStore[any](cfg.CacheTTL)
		leagueRepo = repocache.NewLeagueRepository(client, store)
		teamRepo = repocache.NewTeamRepository(client, store)
		standingRepo = repocache.NewStandingRepository(client, store)
	}

	syncService := usecase.NewSyncService(client, client, clockwork.NewRealClock(), logger)
	if store != nil {
		syncService.OnSynced(func(ctx context.Context) {
			repocache.Purge(ctx, store)
			logger.InfoContext(ctx, "reference cache purged after sync")
		})
	}

	return &Services{
		Overview:    usecase.NewOverviewService(leagueRepo, standingRepo, client, cfg.ViewFanoutWorkers, logger),
		Leagues:     usecase.NewLeagueViewService(leagueRepo, teamRepo, logger),
		Standings:   usecase.NewStandingsViewService(standingRepo, logger),
		Fixtures:    usecase.NewFixturesViewService(client, logger),
		HeadToHead:  usecase.NewHeadToHeadViewService(teamRepo, client, logger),
		Players:     usecase.NewPlayersViewService(client, logger),
		SquadStats:  usecase.NewSquadStatsViewService(client, logger),
		TeamProfile: usecase.NewTeamProfileService(teamRepo, client, client, logger),
		Prediction:  usecase.NewPredictionService(client, logger),
		Sync:        syncService,
	}
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	svc := NewServices(cfg, logger)
	handler := httpapi.NewHandler(
		svc.Overview,
		svc.Leagues,
		svc.Standings,
		svc.Fixtures,
		svc.HeadToHead,
		svc.Players,
		svc.SquadStats,
		svc.TeamProfile,
		svc.Prediction,
		svc.Sync,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, idgen.NewRandomGenerator(), cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
