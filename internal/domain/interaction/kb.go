package interaction

// KnowledgeBase bundles the four interaction tables. Tables are immutable
// after process start and shared by all concurrent checks; replacing the
// content at runtime means building a new KnowledgeBase and swapping the
// engine's reference atomically.
type KnowledgeBase struct {
	DrugDrug    []InteractionRecord
	DrugDisease []DrugDiseaseRecord
	Allergy     []AllergyRecord
	Renal       []RenalRecord
}

// DefaultKnowledgeBase returns the built-in tables. Knowledge-base content is
// a versioned deployment artifact; updating it is an offline concern.
func DefaultKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		DrugDrug:    drugDrugTable,
		DrugDisease: drugDiseaseTable,
		Allergy:     allergyTable,
		Renal:       renalTable,
	}
}

// Counts reports per-table record counts for the read surface and the CLI.
type Counts struct {
	DrugDrug    int `json:"drug_drug"`
	DrugDisease int `json:"drug_disease"`
	Allergy     int `json:"allergy"`
	Renal       int `json:"renal"`
}

func (kb *KnowledgeBase) Counts() Counts {
	return Counts{
		DrugDrug:    len(kb.DrugDrug),
		DrugDisease: len(kb.DrugDisease),
		Allergy:     len(kb.Allergy),
		Renal:       len(kb.Renal),
	}
}
