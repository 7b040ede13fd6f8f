package standing

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestPartitionRows_CurrentAndHistoricalScenario(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{Team: "A", IsCurrent: true, League: "X", Season: "2024", GoalsFor: 10, GoalsAgainst: 4, GoalDiff: 6},
		{Team: "B", IsCurrent: false, League: "X", Season: "2022", GoalsFor: 3, GoalsAgainst: 3, GoalDiff: 0},
	}

	p := PartitionRows(rows)
	if len(p.Current) != 1 || p.Current[0].Team != "A" {
		t.Fatalf("expected current=[A], got %+v", p.Current)
	}
	if p.Current[0].GoalDiff != 6 {
		t.Fatalf("expected A goal_diff=6, got=%d", p.Current[0].GoalDiff)
	}

	g, ok := p.Group("X — 2022")
	if !ok {
		t.Fatalf("expected group %q", "X — 2022")
	}
	if len(g.Rows) != 1 || g.Rows[0].Team != "B" || g.Rows[0].GoalDiff != 0 {
		t.Fatalf("unexpected historical group rows: %+v", g.Rows)
	}
}

func TestPartitionRows_Empty(t *testing.T) {
	t.Parallel()

	p := PartitionRows(nil)
	if !p.Empty() {
		t.Fatalf("expected empty partition")
	}
	if len(p.Current) != 0 || len(p.Previous) != 0 {
		t.Fatalf("expected both outputs empty, got %+v", p)
	}
}

func TestPartitionRows_OnlyHistorical(t *testing.T) {
	t.Parallel()

	p := PartitionRows([]Row{
		{Team: "Ajax", League: "Eredivisie", Season: "2021-2022", Rank: intPtr(1)},
		{Team: "PSV", League: "Eredivisie", Season: "2021-2022", Rank: intPtr(2)},
	})
	if len(p.Current) != 0 {
		t.Fatalf("expected no current rows, got=%d", len(p.Current))
	}
	if len(p.Previous) != 1 || len(p.Previous[0].Rows) != 2 {
		t.Fatalf("unexpected previous groups: %+v", p.Previous)
	}
}

func TestPartitionRows_GroupOrderAndDisplayRank(t *testing.T) {
	t.Parallel()

	p := PartitionRows([]Row{
		{Team: "Feyenoord", League: "Eredivisie", Season: "2022-2023", Rank: intPtr(1)},
		{Team: "Arsenal", League: "Premier League", Season: "2022-2023"},
		{Team: "PSV", League: "Eredivisie", Season: "2022-2023", Rank: intPtr(2)},
		{Team: "Man City", League: "Premier League", Season: "2022-2023"},
		{Team: "Ajax", League: "Eredivisie", Season: "2023-2024", IsCurrent: true},
	})

	if len(p.Previous) != 2 {
		t.Fatalf("expected 2 groups, got=%d", len(p.Previous))
	}
	if p.Previous[0].Key != "Eredivisie — 2022-2023" || p.Previous[1].Key != "Premier League — 2022-2023" {
		t.Fatalf("unexpected group order: %s, %s", p.Previous[0].Key, p.Previous[1].Key)
	}

	epl := p.Previous[1].Rows
	if epl[0].Team != "Arsenal" || epl[0].DisplayRank != 2 || epl[1].DisplayRank != 4 {
		t.Fatalf("expected input positions for unranked rows, got %+v", epl)
	}
	if got := p.Previous[0].Rows[1].DisplayRank; got != 2 {
		t.Fatalf("expected explicit rank to be used, got=%d", got)
	}
	if got := p.Current[0].DisplayRank; got != 5 {
		t.Fatalf("expected current row ranked by input position 5, got=%d", got)
	}
}

func TestPartitionRows_UnrankedCurrentAfterHistory(t *testing.T) {
	t.Parallel()

	p := PartitionRows([]Row{
		{Team: "Old1", League: "X", Season: "2022"},
		{Team: "Old2", League: "X", Season: "2022"},
		{Team: "Cur", League: "X", Season: "2023", IsCurrent: true},
	})

	if got := p.Current[0].DisplayRank; got != 3 {
		t.Fatalf("expected display rank 3 from input position, got=%d", got)
	}
	if got := p.Previous[0].Rows[1].DisplayRank; got != 2 {
		t.Fatalf("expected display rank 2 from input position, got=%d", got)
	}
}

func TestPartitionRows_ConservesRowCount(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		rows := make([]Row, 0, n)
		for i := 0; i < n; i++ {
			rows = append(rows, Row{
				Team:      fmt.Sprintf("team-%d", i),
				League:    fmt.Sprintf("league-%d", rng.Intn(3)),
				Season:    fmt.Sprintf("%d", 2018+rng.Intn(4)),
				IsCurrent: rng.Intn(2) == 0,
			})
		}

		p := PartitionRows(rows)
		total := len(p.Current)
		seen := make(map[string]struct{})
		for _, g := range p.Previous {
			if _, dup := seen[g.Key]; dup {
				t.Fatalf("group %q appears twice", g.Key)
			}
			seen[g.Key] = struct{}{}
			total += len(g.Rows)
		}
		if total != len(rows) || p.Len() != len(rows) {
			t.Fatalf("iteration %d: expected %d rows, got total=%d len=%d", iter, len(rows), total, p.Len())
		}
	}
}

func TestRow_Consistent(t *testing.T) {
	t.Parallel()

	ok := Row{Team: "A", GoalsFor: 10, GoalsAgainst: 4, GoalDiff: 6}
	if err := ok.Consistent(); err != nil {
		t.Fatalf("expected consistent row, got %v", err)
	}

	bad := Row{Team: "B", GoalsFor: 3, GoalsAgainst: 3, GoalDiff: 1}
	if err := bad.Consistent(); !errors.Is(err, ErrInconsistentGoalDifference) {
		t.Fatalf("expected ErrInconsistentGoalDifference, got %v", err)
	}
}

func TestGoalDifferenceFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gd    int
		trend Trend
		text  string
	}{
		{gd: 6, trend: TrendPositive, text: "+6"},
		{gd: -2, trend: TrendNegative, text: "-2"},
		{gd: 0, trend: TrendNeutral, text: "0"},
	}

	for _, tc := range tests {
		if got := ClassifyGoalDifference(tc.gd); got != tc.trend {
			t.Fatalf("gd=%d: expected trend %s, got %s", tc.gd, tc.trend, got)
		}
		if got := FormatGoalDifference(tc.gd); got != tc.text {
			t.Fatalf("gd=%d: expected %q, got %q", tc.gd, tc.text, got)
		}
	}
}
