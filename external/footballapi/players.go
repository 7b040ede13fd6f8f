package footballapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/player"
	"github.com/riskibarqy/football-analytics/internal/domain/squadstat"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

func (c *Client) ListPlayers(ctx context.Context, params url.Values) ([]player.Row, error) {
	return c.listPlayers(ctx, "list players", qb.Path("api", "players"), params)
}

func (c *Client) TopScorers(ctx context.Context, params url.Values) ([]player.Row, error) {
	return c.listPlayers(ctx, "top scorers", qb.Path("api", "players", "top-scorers"), params)
}

func (c *Client) listPlayers(ctx context.Context, op string, path *qb.RequestBuilder, params url.Values) ([]player.Row, error) {
	target, err := path.Merge(params).ToURL()
	if err != nil {
		return nil, err
	}

	var items []playerDTO
	if err := c.getJSON(ctx, target, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := validateAll(c.validate, target, items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Row, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) ListSquadStats(ctx context.Context, params url.Values) ([]squadstat.Stat, error) {
	target, err := qb.Path("api", "squad-stats").Merge(params).ToURL()
	if err != nil {
		return nil, err
	}

	var items []squadStatDTO
	if err := c.getJSON(ctx, target, &items); err != nil {
		return nil, fmt.Errorf("list squad stats: %w", err)
	}
	if err := validateAll(c.validate, target, items); err != nil {
		return nil, fmt.Errorf("list squad stats: %w", err)
	}

	out := make([]squadstat.Stat, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}
