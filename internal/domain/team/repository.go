package team

import (
	"context"
	"net/url"
)

// Repository describes team reads needed by use cases.
type Repository interface {
	ListTeams(ctx context.Context, params url.Values) ([]Team, error)
	GetTeam(ctx context.Context, teamID int64) (Team, bool, error)
}
