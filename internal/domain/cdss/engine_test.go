package cdss

import (
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medrec/medrec/internal/domain/terminology"
	"github.com/medrec/medrec/pkg/severity"
)

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.Disabled)
}

func newTestEngine() *Engine {
	return NewEngine(NewRegistry(terminology.NewIndex()), testLogger())
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestEvaluate_EmptySnapshot(t *testing.T) {
	e := newTestEngine()
	result := e.Evaluate(ClinicalSnapshot{PatientID: "p1"}, "")
	if result.AlertsGenerated != 0 {
		t.Errorf("expected no alerts for an empty snapshot, got %d", result.AlertsGenerated)
	}
	if result.RulesEvaluated == 0 {
		t.Error("expected rules to be evaluated")
	}
	if result.PatientID != "p1" {
		t.Errorf("expected patient id p1, got %s", result.PatientID)
	}
}

func TestEvaluate_InadequateKtV(t *testing.T) {
	e := newTestEngine()
	snapshot := ClinicalSnapshot{
		PatientID: "p1",
		Dialysis:  &DialysisProfile{OnDialysis: true, KtV: f(0.9)},
	}
	result := e.Evaluate(snapshot, ModuleDialysis)

	var found *Alert
	for idx := range result.Alerts {
		if result.Alerts[idx].RuleID == "dial-ktv-low" {
			found = &result.Alerts[idx]
		}
	}
	if found == nil {
		t.Fatal("expected an inadequate Kt/V alert")
	}
	if found.Severity != SeverityCritical {
		t.Errorf("expected critical severity, got %s", found.Severity)
	}
	if found.Title != "Inadequate Kt/V" {
		t.Errorf("expected Kt/V title, got %q", found.Title)
	}
	if result.Summary.Critical == 0 {
		t.Error("expected summary to count the critical alert")
	}
}

func TestEvaluate_SortedBySeverity(t *testing.T) {
	e := newTestEngine()
	snapshot := ClinicalSnapshot{
		PatientID: "p1",
		Age:       i(72),
		Labs:      Labs{EGFR: f(25), Hemoglobin: f(9.0), Potassium: f(6.5)},
		Medications: []Medication{
			{Name: "ibuprofen 400mg"},
		},
	}
	result := e.Evaluate(snapshot, "")
	if result.AlertsGenerated < 3 {
		t.Fatalf("expected several alerts, got %d", result.AlertsGenerated)
	}
	for idx := 1; idx < len(result.Alerts); idx++ {
		prev := severity.AlertRank(string(result.Alerts[idx-1].Severity))
		cur := severity.AlertRank(string(result.Alerts[idx].Severity))
		if prev > cur {
			t.Errorf("alerts out of severity order at %d: %s before %s",
				idx, result.Alerts[idx-1].Severity, result.Alerts[idx].Severity)
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := newTestEngine()
	snapshot := ClinicalSnapshot{
		PatientID: "p1",
		Labs:      Labs{EGFR: f(20), Potassium: f(6.2)},
	}
	first := e.Evaluate(snapshot, "")
	second := e.Evaluate(snapshot, "")
	if first.AlertsGenerated != second.AlertsGenerated {
		t.Fatalf("alert counts differ: %d vs %d", first.AlertsGenerated, second.AlertsGenerated)
	}
	for idx := range first.Alerts {
		if first.Alerts[idx].RuleID != second.Alerts[idx].RuleID {
			t.Errorf("alert order differs at %d: %s vs %s",
				idx, first.Alerts[idx].RuleID, second.Alerts[idx].RuleID)
		}
	}
}

func TestEvaluate_PanicIsolation(t *testing.T) {
	rules := []Rule{
		{
			ID: "broken", Name: "Broken rule", Module: ModuleGeneral, Active: true,
			Condition: func(s ClinicalSnapshot) bool { panic("broken predicate") },
			Generate:  func(s ClinicalSnapshot) Alert { return Alert{} },
		},
		{
			ID: "healthy", Name: "Healthy rule", Module: ModuleGeneral, Active: true,
			Condition: func(s ClinicalSnapshot) bool { return true },
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{Severity: SeverityWarning, Title: "fires regardless"}
			},
		},
		{
			ID: "broken-generator", Name: "Broken generator", Module: ModuleGeneral, Active: true,
			Condition: func(s ClinicalSnapshot) bool { return true },
			Generate:  func(s ClinicalSnapshot) Alert { panic("broken generator") },
		},
	}
	e := NewEngine(NewRegistryWith(rules), testLogger())

	result := e.Evaluate(ClinicalSnapshot{PatientID: "p1"}, "")
	if result.AlertsGenerated != 1 {
		t.Fatalf("expected exactly the healthy rule's alert, got %d", result.AlertsGenerated)
	}
	if result.Alerts[0].RuleID != "healthy" {
		t.Errorf("expected healthy alert, got %s", result.Alerts[0].RuleID)
	}
	// Broken rules still count as attempted.
	if result.RulesEvaluated != 3 {
		t.Errorf("expected 3 rules evaluated, got %d", result.RulesEvaluated)
	}
}

func TestEvaluate_StableOrderOnTies(t *testing.T) {
	mkRule := func(id string) Rule {
		return Rule{
			ID: id, Module: ModuleGeneral, Active: true,
			Condition: func(s ClinicalSnapshot) bool { return true },
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{Severity: SeverityWarning, Title: id}
			},
		}
	}
	e := NewEngine(NewRegistryWith([]Rule{mkRule("a"), mkRule("b"), mkRule("c")}), testLogger())

	result := e.Evaluate(ClinicalSnapshot{PatientID: "p1"}, "")
	want := []string{"a", "b", "c"}
	for idx, id := range want {
		if result.Alerts[idx].RuleID != id {
			t.Errorf("expected catalog order on severity ties, got %s at %d", result.Alerts[idx].RuleID, idx)
		}
	}
}

func TestEvaluate_AlertIDsAttributable(t *testing.T) {
	e := newTestEngine()
	snapshot := ClinicalSnapshot{PatientID: "p1", Labs: Labs{Potassium: f(6.5)}}
	result := e.Evaluate(snapshot, "")
	if result.AlertsGenerated == 0 {
		t.Fatal("expected a hyperkalemia alert")
	}
	a := result.Alerts[0]
	if a.ID == "" || a.RuleID == "" {
		t.Error("expected alert id and rule id to be set")
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if a.PatientID != "p1" {
		t.Errorf("expected patient id p1, got %s", a.PatientID)
	}
}

func TestEvaluate_MissingFieldsNeverMatch(t *testing.T) {
	e := newTestEngine()
	// Sub-profiles present but with nil measurements must not fire
	// threshold rules.
	snapshot := ClinicalSnapshot{
		PatientID:     "p1",
		Dialysis:      &DialysisProfile{OnDialysis: true},
		Cardiology:    &CardiologyProfile{},
		Ophthalmology: &OphthalmologyProfile{},
	}
	result := e.Evaluate(snapshot, "")
	for _, a := range result.Alerts {
		switch a.RuleID {
		case "dial-ktv-low", "card-lvef-low", "opht-iop-high", "gen-egfr-low":
			t.Errorf("rule %s fired on missing data", a.RuleID)
		}
	}
}

func TestEvaluate_AFWithoutAnticoagulation(t *testing.T) {
	e := newTestEngine()
	snapshot := ClinicalSnapshot{
		PatientID:   "p1",
		Cardiology:  &CardiologyProfile{AtrialFibrillation: true},
		Medications: []Medication{{Name: "metoprolol"}},
	}
	result := e.Evaluate(snapshot, ModuleCardiology)
	fired := false
	for _, a := range result.Alerts {
		if a.RuleID == "card-af-no-anticoag" {
			fired = true
		}
	}
	if !fired {
		t.Error("expected AF-without-anticoagulation alert")
	}

	// Adding an anticoagulant resolves it.
	snapshot.Medications = append(snapshot.Medications, Medication{Name: "apixaban 5mg"})
	result = e.Evaluate(snapshot, ModuleCardiology)
	for _, a := range result.Alerts {
		if a.RuleID == "card-af-no-anticoag" {
			t.Error("alert should not fire with an anticoagulant prescribed")
		}
	}
}

func TestEvaluate_SummaryAggregatesContraindicated(t *testing.T) {
	e := newTestEngine()
	snapshot := ClinicalSnapshot{
		PatientID:   "p1",
		Dialysis:    &DialysisProfile{OnDialysis: true},
		Medications: []Medication{{Name: "metformin 1000mg"}},
	}
	result := e.Evaluate(snapshot, ModuleDialysis)
	var contraindicated int
	for _, a := range result.Alerts {
		if a.Severity == SeverityContraindicated {
			contraindicated++
		}
	}
	if contraindicated == 0 {
		t.Fatal("expected a contraindicated metformin alert")
	}
	if result.Summary.Critical < contraindicated {
		t.Error("summary.critical must include contraindicated alerts")
	}
}
