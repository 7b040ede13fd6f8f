package footballapi

import (
	"github.com/riskibarqy/football-analytics/internal/domain/datasync"
	"github.com/riskibarqy/football-analytics/internal/domain/health"
	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/domain/player"
	"github.com/riskibarqy/football-analytics/internal/domain/prediction"
	"github.com/riskibarqy/football-analytics/internal/domain/squadstat"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/domain/team"
)

var (
	_ league.Repository     = (*Client)(nil)
	_ team.Repository       = (*Client)(nil)
	_ match.Repository      = (*Client)(nil)
	_ standing.Repository   = (*Client)(nil)
	_ player.Repository     = (*Client)(nil)
	_ squadstat.Repository  = (*Client)(nil)
	_ prediction.Repository = (*Client)(nil)
	_ health.Checker        = (*Client)(nil)
	_ datasync.Trigger      = (*Client)(nil)
)
