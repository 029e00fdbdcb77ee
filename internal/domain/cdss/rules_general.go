package cdss

import (
	"fmt"

	"github.com/medrec/medrec/internal/domain/terminology"
)

func generalRules(ix *terminology.Index) []Rule {
	return []Rule{
		{
			ID:          "gen-egfr-low",
			Name:        "Severely reduced kidney function",
			Description: "Flags eGFR below 30 in patients not yet on dialysis",
			Category:    CategoryLab,
			Module:      ModuleGeneral,
			Source:      "KDIGO 2024",
			Priority:    20,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				if s.Labs.EGFR == nil {
					return false
				}
				if s.Dialysis != nil && s.Dialysis.OnDialysis {
					return false
				}
				return *s.Labs.EGFR < 30
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryLab,
					Severity: SeverityCritical,
					Title:    "eGFR below 30 mL/min",
					Message:  fmt.Sprintf("eGFR %.0f mL/min/1.73m² indicates CKD stage 4 or worse.", *s.Labs.EGFR),
					Source:   "KDIGO 2024",
					Recommendations: []string{
						"Refer to nephrology if not already followed",
						"Review all medications for renal dose adjustment",
						"Avoid nephrotoxic agents including NSAIDs and contrast media",
					},
				}
			},
		},
		{
			ID:          "gen-hyperkalemia",
			Name:        "Hyperkalemia",
			Description: "Flags serum potassium above 6.0 mmol/L",
			Category:    CategoryLab,
			Module:      ModuleGeneral,
			Source:      "KDIGO 2024",
			Priority:    10,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Labs.Potassium != nil && *s.Labs.Potassium > 6.0
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryLab,
					Severity: SeverityCritical,
					Title:    "Severe hyperkalemia",
					Message:  fmt.Sprintf("Serum potassium %.1f mmol/L exceeds 6.0 mmol/L.", *s.Labs.Potassium),
					Source:   "KDIGO 2024",
					Recommendations: []string{
						"Obtain ECG and repeat potassium urgently",
						"Review potassium-sparing diuretics, ACE inhibitors and ARBs",
						"Consider potassium binder or urgent dialysis per local protocol",
					},
				}
			},
		},
		{
			ID:          "gen-nsaid-elderly",
			Name:        "NSAID use above age 65",
			Description: "Flags routine NSAID therapy in patients older than 65",
			Category:    CategoryMedication,
			Module:      ModuleGeneral,
			Source:      "AGS Beers Criteria 2023",
			Priority:    40,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Age != nil && *s.Age > 65 && takesDrug(ix, s, "nsaids")
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryMedication,
					Severity: SeverityWarning,
					Title:    "NSAID in patient over 65",
					Message:  fmt.Sprintf("Patient aged %d is on an NSAID; risk of GI bleeding and kidney injury is increased.", *s.Age),
					Source:   "AGS Beers Criteria 2023",
					Recommendations: []string{
						"Prefer paracetamol or topical agents where possible",
						"If NSAID is unavoidable, add gastroprotection and limit duration",
					},
				}
			},
		},
		{
			ID:          "gen-nsaid-ckd",
			Name:        "NSAID with reduced kidney function",
			Description: "Flags NSAID therapy when eGFR is below 60",
			Category:    CategoryMedication,
			Module:      ModuleGeneral,
			Source:      "KDIGO 2024",
			Priority:    30,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Labs.EGFR != nil && *s.Labs.EGFR < 60 && takesDrug(ix, s, "nsaids")
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryMedication,
					Severity: SeverityWarning,
					Title:    "NSAID with eGFR below 60",
					Message:  fmt.Sprintf("NSAID therapy with eGFR %.0f mL/min risks further loss of kidney function.", *s.Labs.EGFR),
					Source:   "KDIGO 2024",
					Recommendations: []string{
						"Discontinue or substitute the NSAID",
						"Recheck creatinine within two weeks if continued",
					},
				}
			},
		},
		{
			ID:          "gen-spo2-low",
			Name:        "Hypoxemia",
			Description: "Flags oxygen saturation below 90%",
			Category:    CategoryVitals,
			Module:      ModuleGeneral,
			Source:      "WHO emergency care",
			Priority:    10,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Vitals.SpO2 != nil && *s.Vitals.SpO2 < 90
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryVitals,
					Severity: SeverityCritical,
					Title:    "Oxygen saturation below 90%",
					Message:  fmt.Sprintf("SpO2 %.0f%% requires immediate assessment.", *s.Vitals.SpO2),
					Source:   "WHO emergency care",
					Recommendations: []string{
						"Assess airway and breathing immediately",
						"Start supplemental oxygen and escalate per local protocol",
					},
				}
			},
		},
		{
			ID:          "gen-fever-high",
			Name:        "High fever",
			Description: "Flags body temperature above 39.5°C",
			Category:    CategoryVitals,
			Module:      ModuleGeneral,
			Source:      "WHO emergency care",
			Priority:    30,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Vitals.Temperature != nil && *s.Vitals.Temperature > 39.5
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryVitals,
					Severity: SeverityWarning,
					Title:    "Temperature above 39.5°C",
					Message:  fmt.Sprintf("Temperature %.1f°C; consider infectious workup.", *s.Vitals.Temperature),
					Source:   "WHO emergency care",
					Recommendations: []string{
						"Evaluate for source of infection",
						"Consider blood cultures before antibiotics",
					},
				}
			},
		},
		{
			ID:          "gen-anemia",
			Name:        "Anemia",
			Description: "Flags hemoglobin below 10 g/dL",
			Category:    CategoryLab,
			Module:      ModuleGeneral,
			Source:      "KDIGO anemia guideline",
			Priority:    50,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Labs.Hemoglobin != nil && *s.Labs.Hemoglobin < 10
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryLab,
					Severity: SeverityInfo,
					Title:    "Hemoglobin below 10 g/dL",
					Message:  fmt.Sprintf("Hemoglobin %.1f g/dL; evaluate iron status and cause.", *s.Labs.Hemoglobin),
					Source:   "KDIGO anemia guideline",
					Recommendations: []string{
						"Check ferritin and transferrin saturation",
						"Consider ESA therapy only after iron repletion",
					},
				}
			},
		},
		{
			ID:          "gen-diabetes-hba1c",
			Name:        "Poor glycemic control",
			Description: "Flags HbA1c above 9% in patients with diabetes",
			Category:    CategoryGuideline,
			Module:      ModuleGeneral,
			Source:      "ADA Standards of Care 2025",
			Priority:    40,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Labs.HbA1c != nil && *s.Labs.HbA1c > 9.0 && hasCondition(ix, s, "diabetes")
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryGuideline,
					Severity: SeverityWarning,
					Title:    "HbA1c above 9%",
					Message:  fmt.Sprintf("HbA1c %.1f%% indicates poor glycemic control.", *s.Labs.HbA1c),
					Source:   "ADA Standards of Care 2025",
					Recommendations: []string{
						"Intensify glucose-lowering therapy",
						"Reinforce adherence and self-monitoring",
						"Screen for microvascular complications",
					},
				}
			},
		},
	}
}
