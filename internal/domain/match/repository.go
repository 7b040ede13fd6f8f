package match

import (
	"context"
	"net/url"
)

// Repository describes match reads and corrections needed by use cases.
type Repository interface {
	ListMatches(ctx context.Context, params url.Values) ([]Match, error)
	GetMatch(ctx context.Context, matchID int64) (Match, bool, error)
	UpdateMatch(ctx context.Context, matchID int64, update ResultUpdate) error
	DeleteMatch(ctx context.Context, matchID int64) error
	HeadToHead(ctx context.Context, teamID, opponentID int64) ([]Match, error)
}
