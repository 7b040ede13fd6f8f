package filterstate

import "testing"

func TestState_ApplyReportsChanges(t *testing.T) {
	t.Parallel()

	state := NewState(StandingsFilter{})
	if state.Apply(StandingsFilter{}) {
		t.Fatalf("expected no change for identical filter")
	}

	if !state.Apply(StandingsFilter{LeagueID: int64Ptr(1)}) {
		t.Fatalf("expected change when league is selected")
	}
	if state.Apply(StandingsFilter{LeagueID: int64Ptr(1)}) {
		t.Fatalf("expected no change for equal values behind new pointers")
	}

	if got := state.Query().Get("league_id"); got != "1" {
		t.Fatalf("unexpected league_id: %q", got)
	}
}

func TestState_BlankStringIsNotAChange(t *testing.T) {
	t.Parallel()

	state := NewState(NewFixturesFilter())
	next := NewFixturesFilter()
	next.Team = "  "
	if state.Apply(next) {
		t.Fatalf("blank team should normalize to the same query")
	}
}
