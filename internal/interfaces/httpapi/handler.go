package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

type Handler struct {
	overviewService   *usecase.OverviewService
	leagueService     *usecase.LeagueViewService
	standingsService  *usecase.StandingsViewService
	fixturesService   *usecase.FixturesViewService
	headToHeadService *usecase.HeadToHeadViewService
	playersService    *usecase.PlayersViewService
	squadStatsService *usecase.SquadStatsViewService
	teamProfile       *usecase.TeamProfileService
	predictionService *usecase.PredictionService
	syncService       *usecase.SyncService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	overviewService *usecase.OverviewService,
	leagueService *usecase.LeagueViewService,
	standingsService *usecase.StandingsViewService,
	fixturesService *usecase.FixturesViewService,
	headToHeadService *usecase.HeadToHeadViewService,
	playersService *usecase.PlayersViewService,
	squadStatsService *usecase.SquadStatsViewService,
	teamProfile *usecase.TeamProfileService,
	predictionService *usecase.PredictionService,
	syncService *usecase.SyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		overviewService:   overviewService,
		leagueService:     leagueService,
		standingsService:  standingsService,
		fixturesService:   fixturesService,
		headToHeadService: headToHeadService,
		playersService:    playersService,
		squadStatsService: squadStatsService,
		teamProfile:       teamProfile,
		predictionService: predictionService,
		syncService:       syncService,
		logger:            logger.Named("httpapi"),
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
