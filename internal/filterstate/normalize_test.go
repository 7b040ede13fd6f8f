package filterstate

import (
	"net/url"
	"reflect"
	"testing"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func TestNormalize_DropsUnsetValues(t *testing.T) {
	t.Parallel()

	got := Normalize(map[string]any{"league_id": "", "season_id": "5", "team": nil})
	want := url.Values{"season_id": {"5"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected query: got=%v want=%v", got, want)
	}
}

func TestNormalize_ValueKinds(t *testing.T) {
	t.Parallel()

	var nilID *int64
	zero := 0
	got := Normalize(map[string]any{
		"blank":      "   ",
		"nil_ptr":    nilID,
		"plain_zero": 0,
		"ptr_zero":   &zero,
		"limit":      50,
		"league_id":  int64Ptr(3),
		"team":       " Ajax ",
		"flag":       false,
		"ratio":      1.5,
	})

	want := url.Values{
		"ptr_zero":  {"0"},
		"limit":     {"50"},
		"league_id": {"3"},
		"team":      {"Ajax"},
		"ratio":     {"1.5"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected query: got=%v want=%v", got, want)
	}
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	if got := Normalize(nil); len(got) != 0 {
		t.Fatalf("expected empty query, got=%v", got)
	}
}
