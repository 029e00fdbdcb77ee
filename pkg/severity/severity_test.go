package severity

import "testing"

func TestFromInteraction(t *testing.T) {
	cases := []struct {
		in   string
		want Bucket
	}{
		{"contraindicated", Contraindicated},
		{"major", Major},
		{"moderate", Moderate},
		{"minor", Minor},
		{"life_threatening", None},
		{"", None},
		{"MAJOR", None},
	}
	for _, tc := range cases {
		if got := FromInteraction(tc.in); got != tc.want {
			t.Errorf("FromInteraction(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromAllergy(t *testing.T) {
	cases := []struct {
		in   string
		want Bucket
	}{
		{"life_threatening", Contraindicated},
		{"severe", Major},
		{"moderate", Moderate},
		{"mild", Minor},
		{"major", None},
		{"", None},
	}
	for _, tc := range cases {
		if got := FromAllergy(tc.in); got != tc.want {
			t.Errorf("FromAllergy(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBucketOrdering(t *testing.T) {
	if !(Contraindicated < Major && Major < Moderate && Moderate < Minor && Minor < None) {
		t.Error("bucket constants must order from most to least severe")
	}
}

func TestAlertRank(t *testing.T) {
	if AlertRank("contraindicated") >= AlertRank("critical") {
		t.Error("contraindicated must rank before critical")
	}
	if AlertRank("critical") >= AlertRank("warning") {
		t.Error("critical must rank before warning")
	}
	if AlertRank("warning") >= AlertRank("info") {
		t.Error("warning must rank before info")
	}
	if AlertRank("bogus") <= AlertRank("info") {
		t.Error("unknown severities must rank last")
	}
}

func TestBucketString(t *testing.T) {
	cases := map[Bucket]string{
		Contraindicated: "contraindicated",
		Major:           "major",
		Moderate:        "moderate",
		Minor:           "minor",
		None:            "none",
	}
	for b, want := range cases {
		if b.String() != want {
			t.Errorf("Bucket(%d).String() = %q, want %q", b, b.String(), want)
		}
	}
}
