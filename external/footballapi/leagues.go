package footballapi

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-analytics/internal/domain/league"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

func (c *Client) ListLeagues(ctx context.Context) ([]league.League, error) {
	target, err := qb.Path("api", "leagues").ToURL()
	if err != nil {
		return nil, err
	}

	var items []leagueDTO
	if err := c.getJSON(ctx, target, &items); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	if err := validateAll(c.validate, target, items); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) GetLeague(ctx context.Context, leagueID int64) (league.League, bool, error) {
	target, err := qb.Path("api", "leagues").ID(leagueID).ToURL()
	if err != nil {
		return league.League{}, false, err
	}

	var item leagueDTO
	if err := c.getJSON(ctx, target, &item); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league id=%d: %w", leagueID, err)
	}
	if err := validateAll(c.validate, target, []leagueDTO{item}); err != nil {
		return league.League{}, false, fmt.Errorf("get league id=%d: %w", leagueID, err)
	}
	return item.toDomain(), true, nil
}
