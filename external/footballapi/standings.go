package footballapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

// ListStandings returns rows in server order. A row whose goal difference
// disagrees with its goals is rejected as a decode error.
func (c *Client) ListStandings(ctx context.Context, params url.Values) ([]standing.Row, error) {
	target, err := qb.Path("api", "standings").Merge(params).ToURL()
	if err != nil {
		return nil, err
	}

	var items []standingDTO
	if err := c.getJSON(ctx, target, &items); err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	if err := validateAll(c.validate, target, items); err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	out := make([]standing.Row, 0, len(items))
	for i, item := range items {
		row, err := item.toDomain()
		if err != nil {
			return nil, fmt.Errorf("list standings: %w", &DecodeError{Path: target, Err: fmt.Errorf("item %d: %w", i, err)})
		}
		out = append(out, row)
	}
	return out, nil
}

func (c *Client) ListSeasons(ctx context.Context, params url.Values) ([]league.Season, error) {
	target, err := qb.Path("api", "standings", "seasons").Merge(params).ToURL()
	if err != nil {
		return nil, err
	}

	var items []seasonDTO
	if err := c.getJSON(ctx, target, &items); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	if err := validateAll(c.validate, target, items); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]league.Season, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}
