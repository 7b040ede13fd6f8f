package footballapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-analytics/internal/domain/datasync"
	"github.com/riskibarqy/football-analytics/internal/domain/health"
	"github.com/riskibarqy/football-analytics/internal/domain/prediction"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

func (c *Client) Health(ctx context.Context) (health.Status, error) {
	target, err := qb.Path("api", "health").ToURL()
	if err != nil {
		return health.Status{}, err
	}

	var item healthDTO
	if err := c.getJSON(ctx, target, &item); err != nil {
		return health.Status{}, fmt.Errorf("health: %w", err)
	}
	if err := validateAll(c.validate, target, []healthDTO{item}); err != nil {
		return health.Status{}, fmt.Errorf("health: %w", err)
	}
	return item.toDomain(), nil
}

func (c *Client) SyncAll(ctx context.Context, req datasync.Request) (datasync.Result, error) {
	target, err := qb.Path("api", "sync", "all").ToURL()
	if err != nil {
		return nil, err
	}

	payload := map[string]any(req)
	if payload == nil {
		payload = map[string]any{}
	}

	var out map[string]any
	if err := c.doJSON(ctx, http.MethodPost, target, payload, &out); err != nil {
		return nil, fmt.Errorf("sync all: %w", err)
	}
	return toSyncResult(out), nil
}

// GeneratePrediction forwards the request to the prediction service. A
// {success:false,error} answer is returned as a Result, not as an error.
func (c *Client) GeneratePrediction(ctx context.Context, req prediction.Request) (prediction.Result, error) {
	target, err := qb.Path("api", "predictions", "generate").ToURL()
	if err != nil {
		return prediction.Result{}, err
	}

	var item predictionDTO
	if err := c.doJSON(ctx, http.MethodPost, target, newPredictionRequestDTO(req), &item); err != nil {
		return prediction.Result{}, fmt.Errorf("generate prediction: %w", err)
	}
	if err := validateAll(c.validate, target, []predictionDTO{item}); err != nil {
		return prediction.Result{}, fmt.Errorf("generate prediction: %w", err)
	}
	return item.toDomain(), nil
}
