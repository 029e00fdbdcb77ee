package cdss

import (
	"fmt"

	"github.com/medrec/medrec/internal/domain/terminology"
)

func dialysisRules(ix *terminology.Index) []Rule {
	return []Rule{
		{
			ID:          "dial-ktv-low",
			Name:        "Inadequate dialysis dose",
			Description: "Flags single-pool Kt/V below the 1.2 adequacy target",
			Category:    CategoryLab,
			Module:      ModuleDialysis,
			Source:      "KDOQI 2015",
			Priority:    10,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Dialysis != nil && s.Dialysis.OnDialysis &&
					s.Dialysis.KtV != nil && *s.Dialysis.KtV < 1.2
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryLab,
					Severity: SeverityCritical,
					Title:    "Inadequate Kt/V",
					Message:  fmt.Sprintf("Single-pool Kt/V %.2f is below the adequacy target of 1.2.", *s.Dialysis.KtV),
					Source:   "KDOQI 2015",
					Recommendations: []string{
						"Review treatment time and blood/dialysate flow rates",
						"Check vascular access for recirculation",
						"Repeat adequacy measurement next session",
					},
				}
			},
		},
		{
			ID:          "dial-catheter-access",
			Name:        "Catheter as long-term access",
			Description: "Flags central venous catheter as the current dialysis access",
			Category:    CategoryProtocol,
			Module:      ModuleDialysis,
			Source:      "KDOQI vascular access 2019",
			Priority:    30,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Dialysis != nil && s.Dialysis.OnDialysis &&
					s.Dialysis.AccessType != nil && *s.Dialysis.AccessType == "catheter"
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryProtocol,
					Severity: SeverityWarning,
					Title:    "Dialysis via central venous catheter",
					Message:  "Catheter access carries a higher infection and mortality risk than fistula or graft.",
					Source:   "KDOQI vascular access 2019",
					Recommendations: []string{
						"Evaluate for arteriovenous fistula or graft creation",
						"Review exit site at every session",
					},
				}
			},
		},
		{
			ID:          "dial-potassium-predialysis",
			Name:        "Pre-dialysis hyperkalemia",
			Description: "Flags potassium above 5.5 mmol/L in dialysis patients",
			Category:    CategoryLab,
			Module:      ModuleDialysis,
			Source:      "KDOQI 2015",
			Priority:    20,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Dialysis != nil && s.Dialysis.OnDialysis &&
					s.Labs.Potassium != nil && *s.Labs.Potassium > 5.5
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryLab,
					Severity: SeverityWarning,
					Title:    "Pre-dialysis potassium above 5.5 mmol/L",
					Message:  fmt.Sprintf("Potassium %.1f mmol/L before dialysis; review dietary intake and dialysate prescription.", *s.Labs.Potassium),
					Source:   "KDOQI 2015",
					Recommendations: []string{
						"Reinforce dietary potassium counselling",
						"Consider lower-potassium dialysate bath",
					},
				}
			},
		},
		{
			ID:          "dial-pth-high",
			Name:        "Secondary hyperparathyroidism",
			Description: "Flags PTH above 600 pg/mL in dialysis patients",
			Category:    CategoryLab,
			Module:      ModuleDialysis,
			Source:      "KDIGO CKD-MBD 2017",
			Priority:    40,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Dialysis != nil && s.Dialysis.OnDialysis &&
					s.Labs.PTH != nil && *s.Labs.PTH > 600
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryLab,
					Severity: SeverityWarning,
					Title:    "PTH above 600 pg/mL",
					Message:  fmt.Sprintf("Intact PTH %.0f pg/mL suggests inadequately controlled secondary hyperparathyroidism.", *s.Labs.PTH),
					Source:   "KDIGO CKD-MBD 2017",
					Recommendations: []string{
						"Review phosphate binder adherence",
						"Consider active vitamin D analog or calcimimetic",
					},
				}
			},
		},
		{
			ID:          "dial-phosphate-high",
			Name:        "Hyperphosphatemia",
			Description: "Flags phosphate above 1.78 mmol/L in dialysis patients",
			Category:    CategoryLab,
			Module:      ModuleDialysis,
			Source:      "KDIGO CKD-MBD 2017",
			Priority:    50,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Dialysis != nil && s.Dialysis.OnDialysis &&
					s.Labs.Phosphate != nil && *s.Labs.Phosphate > 1.78
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryLab,
					Severity: SeverityInfo,
					Title:    "Phosphate above target",
					Message:  fmt.Sprintf("Serum phosphate %.2f mmol/L is above the 1.78 mmol/L target.", *s.Labs.Phosphate),
					Source:   "KDIGO CKD-MBD 2017",
					Recommendations: []string{
						"Reinforce dietary phosphate restriction",
						"Review binder dose and timing with meals",
					},
				}
			},
		},
		{
			ID:          "dial-metformin",
			Name:        "Metformin on dialysis",
			Description: "Flags metformin therapy in a patient on dialysis",
			Category:    CategoryMedication,
			Module:      ModuleDialysis,
			Source:      "KDIGO diabetes in CKD 2022",
			Priority:    10,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Dialysis != nil && s.Dialysis.OnDialysis && takesDrug(ix, s, "metformin")
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryMedication,
					Severity: SeverityContraindicated,
					Title:    "Metformin contraindicated on dialysis",
					Message:  "Metformin accumulates in kidney failure and carries a lactic acidosis risk; it is contraindicated in dialysis patients.",
					Source:   "KDIGO diabetes in CKD 2022",
					Recommendations: []string{
						"Stop metformin",
						"Switch to insulin or a DPP-4 inhibitor dosed for kidney failure",
					},
				}
			},
		},
	}
}
