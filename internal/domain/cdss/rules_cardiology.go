package cdss

import (
	"fmt"

	"github.com/medrec/medrec/internal/domain/terminology"
)

func cardiologyRules(ix *terminology.Index) []Rule {
	return []Rule{
		{
			ID:          "card-af-no-anticoag",
			Name:        "Atrial fibrillation without anticoagulation",
			Description: "Flags AF patients with no anticoagulant on the medication list",
			Category:    CategoryMedication,
			Module:      ModuleCardiology,
			Source:      "ESC AF 2024",
			Priority:    10,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				af := (s.Cardiology != nil && s.Cardiology.AtrialFibrillation) ||
					hasCondition(ix, s, "atrial_fibrillation")
				return af && !takesDrug(ix, s, "anticoagulants")
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryMedication,
					Severity: SeverityCritical,
					Title:    "AF without anticoagulation",
					Message:  "Atrial fibrillation is documented but no oral anticoagulant is on the medication list.",
					Source:   "ESC AF 2024",
					Recommendations: []string{
						"Assess stroke risk with CHA2DS2-VA",
						"Start a DOAC unless contraindicated",
						"Document the reason if anticoagulation is deliberately withheld",
					},
				}
			},
		},
		{
			ID:          "card-lvef-low",
			Name:        "Severely reduced ejection fraction",
			Description: "Flags LVEF of 35% or less",
			Category:    CategoryGuideline,
			Module:      ModuleCardiology,
			Source:      "ESC heart failure 2023",
			Priority:    20,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Cardiology != nil && s.Cardiology.LVEF != nil && *s.Cardiology.LVEF <= 35
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryGuideline,
					Severity: SeverityCritical,
					Title:    "LVEF 35% or below",
					Message:  fmt.Sprintf("LVEF %.0f%%; patient qualifies for guideline-directed HFrEF therapy and ICD evaluation.", *s.Cardiology.LVEF),
					Source:   "ESC heart failure 2023",
					Recommendations: []string{
						"Verify all four pillars of HFrEF therapy are prescribed",
						"Evaluate for ICD after three months of optimized therapy",
					},
				}
			},
		},
		{
			ID:          "card-hypertensive-crisis",
			Name:        "Hypertensive crisis",
			Description: "Flags blood pressure at or above 180/120 mmHg",
			Category:    CategoryVitals,
			Module:      ModuleCardiology,
			Source:      "ESC/ESH hypertension 2023",
			Priority:    10,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				sys, dia := s.Vitals.SystolicBP, s.Vitals.DiastolicBP
				return (sys != nil && *sys >= 180) || (dia != nil && *dia >= 120)
			},
			Generate: func(s ClinicalSnapshot) Alert {
				msg := "Blood pressure in the hypertensive-crisis range."
				if s.Vitals.SystolicBP != nil && s.Vitals.DiastolicBP != nil {
					msg = fmt.Sprintf("Blood pressure %.0f/%.0f mmHg is in the hypertensive-crisis range.", *s.Vitals.SystolicBP, *s.Vitals.DiastolicBP)
				}
				return Alert{
					Category: CategoryVitals,
					Severity: SeverityCritical,
					Title:    "Blood pressure at or above 180/120",
					Message:  msg,
					Source:   "ESC/ESH hypertension 2023",
					Recommendations: []string{
						"Assess for end-organ damage",
						"Repeat measurement after rest; treat per urgency/emergency pathway",
					},
				}
			},
		},
		{
			ID:          "card-cad-no-statin",
			Name:        "CAD without statin",
			Description: "Flags coronary artery disease with no statin on the medication list",
			Category:    CategoryMedication,
			Module:      ModuleCardiology,
			Source:      "ESC dyslipidemia 2019",
			Priority:    30,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				cad := s.Cardiology != nil && s.Cardiology.CoronaryArteryDisease
				return cad && !takesDrug(ix, s, "statins")
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryMedication,
					Severity: SeverityWarning,
					Title:    "No statin despite CAD",
					Message:  "Coronary artery disease is documented but no statin is prescribed.",
					Source:   "ESC dyslipidemia 2019",
					Recommendations: []string{
						"Start high-intensity statin unless contraindicated",
						"Target LDL below 1.4 mmol/L",
					},
				}
			},
		},
		{
			ID:          "card-ldl-above-target",
			Name:        "LDL above secondary-prevention target",
			Description: "Flags LDL above 1.8 mmol/L in patients with CAD",
			Category:    CategoryLab,
			Module:      ModuleCardiology,
			Source:      "ESC dyslipidemia 2019",
			Priority:    40,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				cad := s.Cardiology != nil && s.Cardiology.CoronaryArteryDisease
				return cad && s.Labs.LDL != nil && *s.Labs.LDL > 1.8
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryLab,
					Severity: SeverityInfo,
					Title:    "LDL above target in CAD",
					Message:  fmt.Sprintf("LDL %.1f mmol/L is above the secondary-prevention target of 1.8 mmol/L.", *s.Labs.LDL),
					Source:   "ESC dyslipidemia 2019",
					Recommendations: []string{
						"Intensify lipid-lowering therapy",
						"Consider ezetimibe or PCSK9 inhibitor if already on maximal statin",
					},
				}
			},
		},
		{
			ID:          "card-bradycardia-betablocker",
			Name:        "Bradycardia on beta blocker",
			Description: "Flags heart rate below 50 bpm with a beta blocker prescribed",
			Category:    CategoryVitals,
			Module:      ModuleCardiology,
			Source:      "ESC bradycardia 2021",
			Priority:    20,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				pacemaker := s.Cardiology != nil && s.Cardiology.Pacemaker
				return !pacemaker && s.Vitals.HeartRate != nil && *s.Vitals.HeartRate < 50 &&
					takesDrug(ix, s, "beta_blockers")
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryVitals,
					Severity: SeverityWarning,
					Title:    "Heart rate below 50 on beta blocker",
					Message:  fmt.Sprintf("Heart rate %.0f bpm with beta-blocker therapy and no pacemaker.", *s.Vitals.HeartRate),
					Source:   "ESC bradycardia 2021",
					Recommendations: []string{
						"Obtain ECG to characterize the rhythm",
						"Consider beta-blocker dose reduction",
					},
				}
			},
		},
	}
}
