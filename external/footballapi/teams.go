package footballapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/domain/team"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

func (c *Client) ListTeams(ctx context.Context, params url.Values) ([]team.Team, error) {
	target, err := qb.Path("api", "teams").Merge(params).ToURL()
	if err != nil {
		return nil, err
	}

	var items []teamDTO
	if err := c.getJSON(ctx, target, &items); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if err := validateAll(c.validate, target, items); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) GetTeam(ctx context.Context, teamID int64) (team.Team, bool, error) {
	target, err := qb.Path("api", "teams").ID(teamID).ToURL()
	if err != nil {
		return team.Team{}, false, err
	}

	var item teamDTO
	if err := c.getJSON(ctx, target, &item); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team id=%d: %w", teamID, err)
	}
	if err := validateAll(c.validate, target, []teamDTO{item}); err != nil {
		return team.Team{}, false, fmt.Errorf("get team id=%d: %w", teamID, err)
	}
	return item.toDomain(), true, nil
}

// HeadToHead lists meetings between two teams, newest first.
func (c *Client) HeadToHead(ctx context.Context, teamID, opponentID int64) ([]match.Match, error) {
	target, err := qb.Path("api", "teams").ID(teamID).Segment("head-to-head").ID(opponentID).ToURL()
	if err != nil {
		return nil, err
	}

	var items []matchDTO
	if err := c.getJSON(ctx, target, &items); err != nil {
		return nil, fmt.Errorf("head to head team_id=%d opponent_id=%d: %w", teamID, opponentID, err)
	}
	return decodeMatches(c, target, items)
}
