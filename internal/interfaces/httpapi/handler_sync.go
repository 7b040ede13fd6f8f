package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-analytics/internal/domain/datasync"
	"github.com/riskibarqy/football-analytics/internal/render"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

// GetSyncStatus checks backend health and returns the activity log.
func (h *Handler) GetSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSyncStatus")
	defer span.End()

	status := h.syncService.CheckHealth(ctx)
	writePage(ctx, w, r, render.Sync(status.Status, status.Database, status.Healthy(), h.syncService.Log()))
}

// TriggerSync forwards an optional JSON object to the backend sync endpoint.
func (h *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerSync")
	defer span.End()

	req := datasync.Request{}
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.syncService.TriggerAll(ctx, req)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any(result))
}
