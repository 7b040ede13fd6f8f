package squadstat

import "testing"

func TestSplitPair(t *testing.T) {
	t.Parallel()

	goalsFor, goalsAgainst := 71, 30
	stats := []Stat{
		{ID: 1, Split: SplitAgainst, Goals: &goalsAgainst},
		{ID: 2, Split: SplitFor, Goals: &goalsFor},
		{ID: 3, Split: SplitFor},
	}

	f, a := SplitPair(stats)
	if f == nil || f.ID != 2 {
		t.Fatalf("expected first for-split line, got %+v", f)
	}
	if a == nil || a.ID != 1 {
		t.Fatalf("expected against-split line, got %+v", a)
	}

	f, a = SplitPair(stats[:1])
	if f != nil || a == nil {
		t.Fatalf("expected only against line, got for=%+v against=%+v", f, a)
	}
}

func TestSplitLabels(t *testing.T) {
	t.Parallel()

	if SplitFor.Label() != "For" || SplitAgainst.Label() != "vs" {
		t.Fatalf("unexpected labels: %q %q", SplitFor.Label(), SplitAgainst.Label())
	}
	if Split("both").Valid() {
		t.Fatalf("expected unknown split to be invalid")
	}
}
