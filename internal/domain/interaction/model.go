package interaction

// InteractionRecord is one drug-drug entry in the knowledge base. DrugA and
// DrugB are matcher patterns: specific names or drug-class keys.
type InteractionRecord struct {
	DrugA      string `json:"drug_a"`
	DrugB      string `json:"drug_b"`
	Severity   string `json:"severity"` // minor | moderate | major | contraindicated
	Mechanism  string `json:"mechanism,omitempty"`
	Effect     string `json:"effect,omitempty"`
	Management string `json:"management,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// DrugDiseaseRecord is one drug-disease entry; Condition is a condition
// pattern or synonym-class key.
type DrugDiseaseRecord struct {
	Drug       string `json:"drug"`
	Condition  string `json:"condition"`
	Severity   string `json:"severity"` // minor | moderate | major | contraindicated
	Mechanism  string `json:"mechanism,omitempty"`
	Effect     string `json:"effect,omitempty"`
	Management string `json:"management,omitempty"`
}

// AllergyRecord is one allergy cross-reactivity entry. Its severity
// vocabulary differs from the interaction tables and maps into the shared
// summary through pkg/severity.
type AllergyRecord struct {
	Drug           string `json:"drug"`
	Allergen       string `json:"allergen"`
	CrossReactive  bool   `json:"cross_reactive"`
	Severity       string `json:"severity"` // mild | moderate | severe | life_threatening
	Recommendation string `json:"recommendation,omitempty"`
}

// RenalRecord holds dose guidance bucketed by eGFR band. Guidance is
// advisory only and never severity-scored.
type RenalRecord struct {
	Drug       string `json:"drug"`
	NormalDose string `json:"normal_dose,omitempty"` // eGFR >= 60
	GFR30to59  string `json:"gfr_30_59,omitempty"`
	GFR15to29  string `json:"gfr_15_29,omitempty"`
	GFRBelow15 string `json:"gfr_below_15,omitempty"`
	Dialysis   string `json:"dialysis,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// GuidanceFor selects the dose guidance for the patient's renal band.
// Dialysis takes precedence over the eGFR value.
func (r RenalRecord) GuidanceFor(eGFR *float64, onDialysis bool) string {
	switch {
	case onDialysis:
		return r.Dialysis
	case eGFR == nil:
		return ""
	case *eGFR >= 60:
		return r.NormalDose
	case *eGFR >= 30:
		return r.GFR30to59
	case *eGFR >= 15:
		return r.GFR15to29
	default:
		return r.GFRBelow15
	}
}

// DrugDrugFinding pairs a matched record with the medication entries that
// triggered it.
type DrugDrugFinding struct {
	MedicationA string `json:"medication_a"`
	MedicationB string `json:"medication_b"`
	InteractionRecord
}

// DrugDiseaseFinding pairs a matched record with the triggering inputs.
type DrugDiseaseFinding struct {
	Medication string `json:"medication"`
	Condition  string `json:"condition"`
	DrugDiseaseRecord
}

// AllergyFinding pairs a matched record with the triggering inputs.
type AllergyFinding struct {
	Medication string `json:"medication"`
	Allergen   string `json:"allergen"`
	AllergyRecord
}

// RenalFinding carries the band-selected guidance for one medication.
type RenalFinding struct {
	Medication string `json:"medication"`
	Guidance   string `json:"guidance,omitempty"`
	RenalRecord
}

// Summary counts findings in the canonical four buckets. Renal adjustments
// are advisory and excluded.
type Summary struct {
	Contraindicated int `json:"contraindicated"`
	Major           int `json:"major"`
	Moderate        int `json:"moderate"`
	Minor           int `json:"minor"`
}

// CheckResult is the outcome of one interaction check.
type CheckResult struct {
	DrugDrug         []DrugDrugFinding    `json:"drug_drug"`
	DrugDisease      []DrugDiseaseFinding `json:"drug_disease"`
	Allergy          []AllergyFinding     `json:"allergy"`
	RenalAdjustments []RenalFinding       `json:"renal_adjustments"`
	Summary          Summary              `json:"summary"`
}
