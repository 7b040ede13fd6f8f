package footballapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-analytics/internal/domain/match"
	"github.com/riskibarqy/football-analytics/internal/domain/prediction"
	"github.com/riskibarqy/football-analytics/internal/platform/id"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/resilience"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient:  server.Client(),
		BaseURL:     server.URL + "/",
		Timeout:     time.Second,
		Logger:      logging.NewNop(),
		IDGenerator: id.Static("req-1"),
	})
}

func TestClient_ListStandingsSendsNormalizedQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/standings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.RawQuery; got != "season_id=5" {
			t.Errorf("unexpected query %q", got)
		}
		if got := r.Header.Get("X-Request-ID"); got != "req-1" {
			t.Errorf("unexpected request id %q", got)
		}
		_, _ = io.WriteString(w, `[
			{"rank":1,"team":"PSV","league":"Eredivisie","league_id":1,"season":"2023-2024","season_id":5,
			 "games":34,"wins":29,"ties":4,"losses":1,"goals_for":111,"goals_against":21,"goal_diff":90,
			 "points":91,"is_current":true},
			{"rank":null,"team":"Ajax","league":"Eredivisie","league_id":1,"season":"2023-2024","season_id":5,
			 "games":34,"wins":15,"ties":11,"losses":8,"goals_for":74,"goals_against":61,
			 "points":56,"is_current":true}
		]`)
	})

	rows, err := client.ListStandings(context.Background(), url.Values{"season_id": {"5"}})
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got=%d", len(rows))
	}
	if rows[0].GoalDiff != 90 || rows[0].Rank == nil || *rows[0].Rank != 1 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].GoalDiff != 13 {
		t.Fatalf("expected missing goal_diff derived from goals, got=%d", rows[1].GoalDiff)
	}
	if rows[1].Rank != nil {
		t.Fatalf("expected nil rank for null value")
	}
}

func TestClient_ListStandingsRejectsInconsistentGoalDifference(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"team":"A","league":"X","season":"2022","goals_for":3,"goals_against":3,"goal_diff":2}]`)
	})

	_, err := client.ListStandings(context.Background(), nil)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Path != "/api/standings" {
		t.Fatalf("expected *DecodeError for /api/standings, got %#v", err)
	}
}

func TestClient_StatusErrorCarriesBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"detail":"database is down"}`)
	})

	_, err := client.ListLeagues(context.Background())
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status code %d", statusErr.StatusCode)
	}
	if statusErr.Error() != `{"detail":"database is down"}` {
		t.Fatalf("expected raw body as message, got %q", statusErr.Error())
	}
}

func TestClient_GetTeamNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Team not found"}`, http.StatusNotFound)
	})

	_, exists, err := client.GetTeam(context.Background(), 42)
	if err != nil {
		t.Fatalf("expected nil error for 404, got %v", err)
	}
	if exists {
		t.Fatalf("expected team not to exist")
	}
}

func TestClient_MalformedJSONIsDecodeError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"name":`)
	})

	if _, err := client.ListLeagues(context.Background()); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestClient_SchemaViolationIsDecodeError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":3,"home_team":"Ajax","away_team":"PSV","attendance":-5}]`)
	})

	if _, err := client.ListMatches(context.Background(), nil); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode for negative attendance, got %v", err)
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(ClientConfig{BaseURL: baseURL, Timeout: time.Second, Logger: logging.NewNop()})
	if _, err := client.Health(context.Background()); !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClient_SharedGetSurvivesLeaderCancellation(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case arrived <- struct{}{}:
		default:
		}
		<-release
		_, _ = io.WriteString(w, `[{"rank":1,"team":"PSV","league":"Eredivisie","league_id":1,"season":"2023-2024","season_id":5,
			"games":1,"wins":1,"ties":0,"losses":0,"goals_for":2,"goals_against":0,"goal_diff":2,"points":3,"is_current":true}]`)
	})

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := client.ListStandings(leaderCtx, url.Values{"season_id": {"5"}})
		leaderErr <- err
	}()
	<-arrived

	followerErr := make(chan error, 1)
	go func() {
		rows, err := client.ListStandings(context.Background(), url.Values{"season_id": {"5"}})
		if err == nil && len(rows) != 1 {
			err = errors.New("expected one standings row")
		}
		followerErr <- err
	}()
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	if err := <-leaderErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected leader to stop on its own cancellation, got %v", err)
	}

	close(release)
	if err := <-followerErr; err != nil {
		t.Fatalf("follower must not inherit the leader's cancellation: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected one shared backend request, got %d", got)
	}
}

func TestClient_CircuitBreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := client.ListLeagues(context.Background()); !errors.Is(err, ErrStatus) {
			t.Fatalf("call %d: expected ErrStatus, got %v", i, err)
		}
	}
	if _, err := client.ListLeagues(context.Background()); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once open, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 backend calls, got=%d", got)
	}
}

func TestClient_UpdateMatchSendsScoresAsQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/matches/9" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("home_score") != "2" || q.Get("away_score") != "1" || q.Get("score_raw") != "2–1" {
			t.Errorf("unexpected query %v", q)
		}
		_, _ = io.WriteString(w, `{"id":9}`)
	})

	raw := "2–1"
	if err := client.UpdateMatch(context.Background(), 9, match.ResultUpdate{HomeScore: 2, AwayScore: 1, ScoreRaw: &raw}); err != nil {
		t.Fatalf("update match: %v", err)
	}
}

func TestClient_DeleteMatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		_, _ = io.WriteString(w, `{"deleted":7}`)
	})

	if err := client.DeleteMatch(context.Background(), 7); err != nil {
		t.Fatalf("delete match: %v", err)
	}
}

func TestClient_HeadToHeadPath(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/teams/3/head-to-head/4" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `[
			{"match_date":"2024-03-01","season":"2023-2024","league":"Eredivisie","home_team":"Ajax","home_score":2,"away_score":1,"away_team":"PSV","venue":null,"score_raw":"2–1"},
			{"match_date":null,"season":"2023-2024","league":"Eredivisie","home_team":"PSV","home_score":null,"away_score":null,"away_team":"Ajax"}
		]`)
	})

	items, err := client.HeadToHead(context.Background(), 3, 4)
	if err != nil {
		t.Fatalf("head to head: %v", err)
	}
	if len(items) != 2 || items[0].ScoreDisplay() != "2–1" || items[1].Played() {
		t.Fatalf("unexpected matches: %+v", items)
	}
}

func TestClient_GeneratePredictionFailureIsResult(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"home_team":"Arsenal","away_team":"Chelsea"}` {
			t.Errorf("unexpected body %s", body)
		}
		_, _ = io.WriteString(w, `{"success":false,"error":"no stats for Arsenal"}`)
	})

	res, err := client.GeneratePrediction(context.Background(), prediction.Request{HomeTeam: "Arsenal", AwayTeam: "Chelsea"})
	if err != nil {
		t.Fatalf("generate prediction: %v", err)
	}
	if !res.Failed() || res.Error != "no stats for Arsenal" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestClient_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{})
	if client.BaseURL() != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", client.BaseURL())
	}
}
