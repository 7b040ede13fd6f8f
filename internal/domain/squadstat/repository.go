package squadstat

import (
	"context"
	"net/url"
)

// Repository describes squad stat reads needed by use cases.
type Repository interface {
	ListSquadStats(ctx context.Context, params url.Values) ([]Stat, error)
}
