package player

import (
	"context"
	"net/url"
)

// Repository describes player stat reads needed by use cases.
type Repository interface {
	ListPlayers(ctx context.Context, params url.Values) ([]Row, error)
	TopScorers(ctx context.Context, params url.Values) ([]Row, error)
}
