package render

import "testing"

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFormatters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{name: "nil int", got: Int(nil), want: Placeholder},
		{name: "zero int", got: Int(intPtr(0)), want: "0"},
		{name: "int fallback", got: IntOr(nil, "0"), want: "0"},
		{name: "blank string", got: Str(strPtr("  ")), want: Placeholder},
		{name: "string", got: Str(strPtr("Philips Stadion")), want: "Philips Stadion"},
		{name: "float", got: Float(floatPtr(54.25), -1), want: "54.25"},
		{name: "percent", got: Percent(floatPtr(0.52)), want: "52.0%"},
		{name: "thousands", got: Thousands(intPtr(35000)), want: "35,000"},
		{name: "thousands million", got: Thousands(intPtr(1234567)), want: "1,234,567"},
		{name: "thousands small", got: Thousands(intPtr(999)), want: "999"},
		{name: "thousands zero", got: Thousands(intPtr(0)), want: Placeholder},
		{name: "negative grouping", got: groupThousands(-12345), want: "-12,345"},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got=%q want=%q", tc.name, tc.got, tc.want)
		}
	}
}

func TestGoalDifference(t *testing.T) {
	t.Parallel()

	if c := GoalDifference(6); c.Text != "+6" || c.Tone != TonePositive {
		t.Fatalf("unexpected cell: %+v", c)
	}
	if c := GoalDifference(-2); c.Text != "-2" || c.Tone != ToneNegative {
		t.Fatalf("unexpected cell: %+v", c)
	}
	if c := GoalDifference(0); c.Text != "0" || c.Tone != ToneNeutral {
		t.Fatalf("unexpected cell: %+v", c)
	}
}
