package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

type matchResultRequest struct {
	HomeScore *int    `json:"home_score" validate:"required,gte=0"`
	AwayScore *int    `json:"away_score" validate:"required,gte=0"`
	ScoreRaw  *string `json:"score_raw" validate:"omitempty,max=20"`
}

// DeleteMatch removes a match. The caller must pass confirm=true.
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID, err := parsePathID(r.PathValue("matchID"), "match id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q := newQueryReader(r.URL.Query())
	confirmed := q.bool("confirm")
	if err := q.Err(); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.fixturesService.Delete(ctx, matchID, confirmed); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted": matchID})
}

func (h *Handler) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchResult")
	defer span.End()

	matchID, err := parsePathID(r.PathValue("matchID"), "match id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchResultRequest
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

	update := match.ResultUpdate{HomeScore: *req.HomeScore, AwayScore: *req.AwayScore, ScoreRaw: req.ScoreRaw}
	if err := h.fixturesService.UpdateResult(ctx, matchID, update); err != nil {
		h.logger.WarnContext(ctx, "update match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"id":         matchID,
		"home_score": update.HomeScore,
		"away_score": update.AwayScore,
	})
}
