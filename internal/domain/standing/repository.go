package standing

import (
	"context"
	"net/url"

	"github.com/riskibarqy/football-analytics/internal/domain/league"
)

// Repository describes standings reads needed by use cases.
type Repository interface {
	ListStandings(ctx context.Context, params url.Values) ([]Row, error)
	ListSeasons(ctx context.Context, params url.Values) ([]league.Season, error)
}
