package footballapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/match"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

func (c *Client) ListMatches(ctx context.Context, params url.Values) ([]match.Match, error) {
	target, err := qb.Path("api", "matches").Merge(params).ToURL()
	if err != nil {
		return nil, err
	}

	var items []matchDTO
	if err := c.getJSON(ctx, target, &items); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return decodeMatches(c, target, items)
}

func (c *Client) GetMatch(ctx context.Context, matchID int64) (match.Match, bool, error) {
	target, err := qb.Path("api", "matches").ID(matchID).ToURL()
	if err != nil {
		return match.Match{}, false, err
	}

	var item matchDTO
	if err := c.getJSON(ctx, target, &item); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match id=%d: %w", matchID, err)
	}
	items, err := decodeMatches(c, target, []matchDTO{item})
	if err != nil {
		return match.Match{}, false, err
	}
	return items[0], true, nil
}

// UpdateMatch corrects a score. The backend takes the values as query parameters.
func (c *Client) UpdateMatch(ctx context.Context, matchID int64, update match.ResultUpdate) error {
	if err := update.Validate(); err != nil {
		return fmt.Errorf("update match id=%d: %w", matchID, err)
	}

	builder := qb.Path("api", "matches").ID(matchID).
		SetInt("home_score", update.HomeScore).
		SetInt("away_score", update.AwayScore)
	if update.ScoreRaw != nil {
		builder.Set("score_raw", *update.ScoreRaw)
	}
	target, err := builder.ToURL()
	if err != nil {
		return err
	}

	if err := c.doJSON(ctx, http.MethodPut, target, nil, nil); err != nil {
		return fmt.Errorf("update match id=%d: %w", matchID, err)
	}
	return nil
}

func (c *Client) DeleteMatch(ctx context.Context, matchID int64) error {
	target, err := qb.Path("api", "matches").ID(matchID).ToURL()
	if err != nil {
		return err
	}

	var resp deletedDTO
	if err := c.doJSON(ctx, http.MethodDelete, target, nil, &resp); err != nil {
		return fmt.Errorf("delete match id=%d: %w", matchID, err)
	}
	if resp.Deleted != matchID {
		return fmt.Errorf("delete match id=%d: %w", matchID,
			&DecodeError{Path: target, Err: fmt.Errorf("deleted id %d does not match request", resp.Deleted)})
	}
	return nil
}

func decodeMatches(c *Client, target string, items []matchDTO) ([]match.Match, error) {
	if err := validateAll(c.validate, target, items); err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}
