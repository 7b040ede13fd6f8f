package app

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-analytics/internal/config"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:           ":0",
		BackendBaseURL:     "http://localhost:8000",
		BackendTimeout:     time.Second,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		ViewFanoutWorkers:  2,
	}
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, srv.Handler)
	require.Equal(t, ":0", srv.Addr)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""
	_, err := NewHTTPServer(cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewServices_WithoutCache(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CacheEnabled = false
	svc := NewServices(cfg, logging.NewNop())
	if svc.Standings == nil || svc.Sync == nil || svc.TeamProfile == nil {
		t.Fatalf("expected all services to be built: %+v", svc)
	}
}
