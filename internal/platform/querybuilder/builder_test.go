package querybuilder

import (
	"net/url"
	"testing"
)

func TestRequestBuilder_PathAndQuery(t *testing.T) {
	target, err := Path("api", "teams").
		ID(12).
		Segment("head-to-head").
		ID(34).
		ToURL()
	if err != nil {
		t.Fatalf("build url: %v", err)
	}

	want := "/api/teams/12/head-to-head/34"
	if target != want {
		t.Fatalf("unexpected url:\nwant: %s\ngot:  %s", want, target)
	}
}

func TestRequestBuilder_MergeEncodesSortedQuery(t *testing.T) {
	target, err := Path("api", "matches").
		Merge(url.Values{"season_id": {"5"}, "limit": {"50"}}).
		Set("team", "PSV Eindhoven").
		ToURL()
	if err != nil {
		t.Fatalf("build url: %v", err)
	}

	want := "/api/matches?limit=50&season_id=5&team=PSV+Eindhoven"
	if target != want {
		t.Fatalf("unexpected url:\nwant: %s\ngot:  %s", want, target)
	}
}

func TestRequestBuilder_RejectsInvalidID(t *testing.T) {
	if _, err := Path("api", "leagues").ID(0).ToURL(); err == nil {
		t.Fatalf("expected error for zero id")
	}
	if _, err := Path("api", " ").ToURL(); err == nil {
		t.Fatalf("expected error for empty segment")
	}
}

func TestModelValues(t *testing.T) {
	limit := 50
	type filter struct {
		LeagueID string `query:"league_id"`
		Limit    *int   `query:"limit"`
		internal string
		Ignored  string `query:"-"`
	}

	got, err := ModelValues(filter{LeagueID: "3", Limit: &limit, internal: "x"})
	if err != nil {
		t.Fatalf("model values: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %+v", got)
	}
	if got["league_id"] != "3" {
		t.Fatalf("unexpected league_id %v", got["league_id"])
	}
	if p, ok := got["limit"].(*int); !ok || *p != 50 {
		t.Fatalf("expected limit pointer passthrough, got %#v", got["limit"])
	}
}
