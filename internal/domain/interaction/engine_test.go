package interaction

import (
	"testing"

	"github.com/medrec/medrec/internal/domain/terminology"
	"github.com/medrec/medrec/pkg/severity"
)

func newTestCheckEngine() *Engine {
	return NewEngine(DefaultKnowledgeBase(), terminology.NewIndex())
}

func f(v float64) *float64 { return &v }

func TestCheck_EmptyInputs(t *testing.T) {
	e := newTestCheckEngine()
	result := e.Check(nil, nil, nil, nil, false)
	if result.Summary != (Summary{}) {
		t.Errorf("expected an all-zero summary, got %+v", result.Summary)
	}
	if len(result.DrugDrug)+len(result.DrugDisease)+len(result.Allergy)+len(result.RenalAdjustments) != 0 {
		t.Error("expected no findings for empty inputs")
	}
}

func TestCheck_WarfarinNSAID(t *testing.T) {
	e := newTestCheckEngine()
	result := e.Check([]string{"warfarin 5mg", "ibuprofen"}, nil, nil, nil, false)
	if len(result.DrugDrug) == 0 {
		t.Fatal("expected a warfarin/NSAID interaction")
	}
	found := false
	for _, finding := range result.DrugDrug {
		if severity.FromInteraction(finding.Severity) == severity.Major {
			found = true
		}
	}
	if !found {
		t.Error("expected a major-severity finding")
	}
	if result.Summary.Major == 0 {
		t.Error("expected the summary to count the major interaction")
	}
}

func TestCheck_PermutationInvariance(t *testing.T) {
	e := newTestCheckEngine()
	meds := []string{"warfarin", "ibuprofen", "sildenafil", "isosorbide mononitrate"}
	reversed := []string{"isosorbide mononitrate", "sildenafil", "ibuprofen", "warfarin"}

	a := e.Check(meds, nil, nil, nil, false)
	b := e.Check(reversed, nil, nil, nil, false)

	if a.Summary != b.Summary {
		t.Errorf("summary changed under permutation: %+v vs %+v", a.Summary, b.Summary)
	}
	if len(a.DrugDrug) != len(b.DrugDrug) {
		t.Fatalf("finding counts differ: %d vs %d", len(a.DrugDrug), len(b.DrugDrug))
	}

	key := func(fd DrugDrugFinding) string { return fd.DrugA + "|" + fd.DrugB }
	seen := make(map[string]int)
	for _, fd := range a.DrugDrug {
		seen[key(fd)]++
	}
	for _, fd := range b.DrugDrug {
		seen[key(fd)]--
	}
	for k, n := range seen {
		if n != 0 {
			t.Errorf("finding %s not invariant under permutation", k)
		}
	}
}

func TestCheck_NitratePDE5Contraindicated(t *testing.T) {
	e := newTestCheckEngine()
	result := e.Check([]string{"sildenafil", "isosorbide mononitrate"}, nil, nil, nil, false)
	if result.Summary.Contraindicated == 0 {
		t.Fatal("expected a contraindicated nitrate/PDE5 interaction")
	}
}

func TestCheck_MetforminAdvancedCKD(t *testing.T) {
	e := newTestCheckEngine()

	for _, condition := range []string{"esrd", "CKD stage 5", "end stage renal disease"} {
		result := e.Check([]string{"metformin"}, []string{condition}, nil, nil, false)
		if len(result.DrugDisease) == 0 {
			t.Errorf("expected a drug-disease finding for condition %q", condition)
			continue
		}
		if severity.FromInteraction(result.DrugDisease[0].Severity) != severity.Contraindicated {
			t.Errorf("expected contraindicated for metformin with %q, got %s",
				condition, result.DrugDisease[0].Severity)
		}
	}
}

func TestCheck_PenicillinAllergy(t *testing.T) {
	e := newTestCheckEngine()
	result := e.Check([]string{"amoxicillin 500mg"}, nil, []string{"penicillin"}, nil, false)
	if len(result.Allergy) == 0 {
		t.Fatal("expected an allergy finding for amoxicillin with penicillin allergy")
	}
	if result.Allergy[0].Severity != "life_threatening" {
		t.Errorf("expected life_threatening, got %s", result.Allergy[0].Severity)
	}
	if result.Summary.Contraindicated == 0 {
		t.Error("life_threatening must count as contraindicated in the summary")
	}
}

func TestCheck_NonCrossReactiveSkipped(t *testing.T) {
	kb := &KnowledgeBase{
		Allergy: []AllergyRecord{
			{Drug: "aztreonam", Allergen: "penicillin", CrossReactive: false, Severity: "mild"},
		},
	}
	e := NewEngine(kb, terminology.NewIndex())
	result := e.Check([]string{"aztreonam"}, nil, []string{"penicillin"}, nil, false)
	if len(result.Allergy) != 0 {
		t.Error("non-cross-reactive records must not produce findings")
	}
}

func TestCheck_RenalGuidanceBands(t *testing.T) {
	e := newTestCheckEngine()

	// eGFR 20 falls in the 15-29 band, where metformin is contraindicated.
	result := e.Check([]string{"metformin"}, nil, nil, f(20), false)
	if len(result.RenalAdjustments) == 0 {
		t.Fatal("expected renal guidance for metformin at eGFR 20")
	}
	if result.RenalAdjustments[0].Guidance == "" {
		t.Error("expected band-specific guidance text")
	}
	// Advisory only: not severity-counted.
	if result.Summary != (Summary{}) {
		t.Errorf("renal guidance must not reach the summary, got %+v", result.Summary)
	}
}

func TestCheck_RenalSkippedWithoutRenalContext(t *testing.T) {
	e := newTestCheckEngine()
	result := e.Check([]string{"metformin"}, nil, nil, nil, false)
	if result.RenalAdjustments != nil {
		t.Error("renal check must be skipped without eGFR or dialysis")
	}
}

func TestCheck_DialysisPrecedence(t *testing.T) {
	e := newTestCheckEngine()
	// Dialysis guidance wins even when an eGFR value is present.
	result := e.Check([]string{"metformin"}, nil, nil, f(45), true)
	if len(result.RenalAdjustments) == 0 {
		t.Fatal("expected renal guidance on dialysis")
	}
	var rec RenalRecord
	for _, kbRec := range e.kb.Renal {
		if kbRec.Drug == "metformin" {
			rec = kbRec
		}
	}
	if result.RenalAdjustments[0].Guidance != rec.Dialysis {
		t.Errorf("expected dialysis guidance %q, got %q", rec.Dialysis, result.RenalAdjustments[0].Guidance)
	}
}

func TestCheck_FindingsSortedBySeverity(t *testing.T) {
	e := newTestCheckEngine()
	result := e.Check(
		[]string{"warfarin", "ibuprofen", "sildenafil", "isosorbide mononitrate", "omeprazole", "clopidogrel"},
		nil, nil, nil, false,
	)
	if len(result.DrugDrug) < 2 {
		t.Fatalf("expected multiple findings, got %d", len(result.DrugDrug))
	}
	for idx := 1; idx < len(result.DrugDrug); idx++ {
		prev := severity.FromInteraction(result.DrugDrug[idx-1].Severity)
		cur := severity.FromInteraction(result.DrugDrug[idx].Severity)
		if prev > cur {
			t.Errorf("findings out of severity order at %d", idx)
		}
	}
}

func TestCheck_CaseAndWhitespaceInsensitive(t *testing.T) {
	e := newTestCheckEngine()
	a := e.Check([]string{"Warfarin", "  IBUPROFEN "}, nil, nil, nil, false)
	b := e.Check([]string{"warfarin", "ibuprofen"}, nil, nil, nil, false)
	if a.Summary != b.Summary {
		t.Errorf("case/whitespace changed the outcome: %+v vs %+v", a.Summary, b.Summary)
	}
}

func TestCheck_UnknownDrugsIgnored(t *testing.T) {
	e := newTestCheckEngine()
	result := e.Check([]string{"zzz-unknown-compound", ""}, []string{"zzz-condition"}, []string{"zzz-allergen"}, nil, false)
	if result.Summary != (Summary{}) {
		t.Errorf("unknown inputs must produce no findings, got %+v", result.Summary)
	}
}

func TestGuidanceFor_Bands(t *testing.T) {
	rec := RenalRecord{
		NormalDose: "full dose",
		GFR30to59:  "half dose",
		GFR15to29:  "quarter dose",
		GFRBelow15: "avoid",
		Dialysis:   "avoid; not dialyzable",
	}
	cases := []struct {
		name       string
		eGFR       *float64
		onDialysis bool
		want       string
	}{
		{"no renal context", nil, false, ""},
		{"normal", f(75), false, "full dose"},
		{"band boundary 60", f(60), false, "full dose"},
		{"moderate", f(45), false, "half dose"},
		{"band boundary 30", f(30), false, "half dose"},
		{"severe", f(20), false, "quarter dose"},
		{"band boundary 15", f(15), false, "quarter dose"},
		{"failure", f(10), false, "avoid"},
		{"dialysis wins", f(45), true, "avoid; not dialyzable"},
	}
	for _, tc := range cases {
		if got := rec.GuidanceFor(tc.eGFR, tc.onDialysis); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
