package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-analytics/internal/domain/prediction"
	"github.com/riskibarqy/football-analytics/internal/render"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

type predictionRequest struct {
	HomeTeam string `json:"home_team" validate:"required,max=120"`
	AwayTeam string `json:"away_team" validate:"required,max=120"`
	League   string `json:"league" validate:"omitempty,max=120"`
}

func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePrediction")
	defer span.End()

	var req predictionRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.predictionService.Generate(ctx, prediction.Request{
		HomeTeam: req.HomeTeam,
		AwayTeam: req.AwayTeam,
		League:   req.League,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "generate prediction failed", "home_team", req.HomeTeam, "away_team", req.AwayTeam, "error", err)
		writeError(ctx, w, err)
		return
	}

	writePage(ctx, w, r, render.Prediction(view))
}
