package league

import "context"

// Repository describes league reads needed by use cases.
type Repository interface {
	ListLeagues(ctx context.Context) ([]League, error)
	GetLeague(ctx context.Context, leagueID int64) (League, bool, error)
}
