package interaction

import (
	"sort"

	"github.com/medrec/medrec/internal/domain/terminology"
	"github.com/medrec/medrec/pkg/severity"
)

// Engine checks a medication list against the knowledge base. It performs no
// I/O, holds no mutable state, and is safe for unbounded concurrent use. The
// set of findings is invariant under permutation of the input lists.
type Engine struct {
	kb    *KnowledgeBase
	terms *terminology.Index
}

func NewEngine(kb *KnowledgeBase, terms *terminology.Index) *Engine {
	return &Engine{kb: kb, terms: terms}
}

// Check runs the four safety checks. Renal dose guidance is only attempted
// when eGFR is provided or the patient is on dialysis, and is advisory: it is
// never counted in the severity summary.
func (e *Engine) Check(medications, conditions, allergies []string, eGFR *float64, onDialysis bool) CheckResult {
	meds := normalizeAll(medications)
	conds := normalizeAll(conditions)
	allergs := normalizeAll(allergies)

	result := CheckResult{
		DrugDrug:         e.checkDrugDrug(meds),
		DrugDisease:      e.checkDrugDisease(meds, conds),
		Allergy:          e.checkAllergy(meds, allergs),
		RenalAdjustments: e.checkRenal(meds, eGFR, onDialysis),
	}

	for _, f := range result.DrugDrug {
		count(&result.Summary, severity.FromInteraction(f.Severity))
	}
	for _, f := range result.DrugDisease {
		count(&result.Summary, severity.FromInteraction(f.Severity))
	}
	for _, f := range result.Allergy {
		count(&result.Summary, severity.FromAllergy(f.Severity))
	}
	return result
}

// checkDrugDrug tests every unordered pair of distinct medication entries
// against each record, in both orientations. Both lists are table-sized, so
// the quadratic pass is bounded.
func (e *Engine) checkDrugDrug(meds []string) []DrugDrugFinding {
	var findings []DrugDrugFinding
	for i := 0; i < len(meds); i++ {
		for j := i + 1; j < len(meds); j++ {
			for _, rec := range e.kb.DrugDrug {
				forward := e.terms.MatchesDrug(meds[i], rec.DrugA) && e.terms.MatchesDrug(meds[j], rec.DrugB)
				reverse := e.terms.MatchesDrug(meds[i], rec.DrugB) && e.terms.MatchesDrug(meds[j], rec.DrugA)
				if forward || reverse {
					findings = append(findings, DrugDrugFinding{
						MedicationA:       meds[i],
						MedicationB:       meds[j],
						InteractionRecord: rec,
					})
				}
			}
		}
	}
	sort.SliceStable(findings, func(a, b int) bool {
		return severity.FromInteraction(findings[a].Severity) < severity.FromInteraction(findings[b].Severity)
	})
	return findings
}

func (e *Engine) checkDrugDisease(meds, conds []string) []DrugDiseaseFinding {
	var findings []DrugDiseaseFinding
	for _, med := range meds {
		for _, cond := range conds {
			for _, rec := range e.kb.DrugDisease {
				if e.terms.MatchesDrug(med, rec.Drug) && e.terms.MatchesCondition(cond, rec.Condition) {
					findings = append(findings, DrugDiseaseFinding{
						Medication:        med,
						Condition:         cond,
						DrugDiseaseRecord: rec,
					})
				}
			}
		}
	}
	sort.SliceStable(findings, func(a, b int) bool {
		return severity.FromInteraction(findings[a].Severity) < severity.FromInteraction(findings[b].Severity)
	})
	return findings
}

func (e *Engine) checkAllergy(meds, allergs []string) []AllergyFinding {
	var findings []AllergyFinding
	for _, med := range meds {
		for _, allergen := range allergs {
			for _, rec := range e.kb.Allergy {
				if !rec.CrossReactive {
					continue
				}
				if e.terms.MatchesDrug(med, rec.Drug) && e.terms.MatchesAllergen(allergen, rec.Allergen) {
					findings = append(findings, AllergyFinding{
						Medication:    med,
						Allergen:      allergen,
						AllergyRecord: rec,
					})
				}
			}
		}
	}
	sort.SliceStable(findings, func(a, b int) bool {
		return severity.FromAllergy(findings[a].Severity) < severity.FromAllergy(findings[b].Severity)
	})
	return findings
}

func (e *Engine) checkRenal(meds []string, eGFR *float64, onDialysis bool) []RenalFinding {
	if eGFR == nil && !onDialysis {
		return nil
	}
	var findings []RenalFinding
	for _, med := range meds {
		for _, rec := range e.kb.Renal {
			if e.terms.MatchesDrug(med, rec.Drug) {
				findings = append(findings, RenalFinding{
					Medication:  med,
					Guidance:    rec.GuidanceFor(eGFR, onDialysis),
					RenalRecord: rec,
				})
			}
		}
	}
	return findings
}

func count(s *Summary, b severity.Bucket) {
	switch b {
	case severity.Contraindicated:
		s.Contraindicated++
	case severity.Major:
		s.Major++
	case severity.Moderate:
		s.Moderate++
	case severity.Minor:
		s.Minor++
	}
}

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := terminology.Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
