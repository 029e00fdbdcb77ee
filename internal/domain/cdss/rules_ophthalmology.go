package cdss

import (
	"fmt"

	"github.com/medrec/medrec/internal/domain/terminology"
)

func ophthalmologyRules(ix *terminology.Index) []Rule {
	return []Rule{
		{
			ID:          "opht-iop-high",
			Name:        "Elevated intraocular pressure",
			Description: "Flags IOP above 25 mmHg",
			Category:    CategoryLab,
			Module:      ModuleOphthalmology,
			Source:      "EGS glaucoma 2020",
			Priority:    10,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Ophthalmology != nil && s.Ophthalmology.IOP != nil && *s.Ophthalmology.IOP > 25
			},
			Generate: func(s ClinicalSnapshot) Alert {
				sev := SeverityWarning
				if *s.Ophthalmology.IOP > 30 {
					sev = SeverityCritical
				}
				return Alert{
					Category: CategoryLab,
					Severity: sev,
					Title:    "IOP above 25 mmHg",
					Message:  fmt.Sprintf("Intraocular pressure %.0f mmHg in the worse eye.", *s.Ophthalmology.IOP),
					Source:   "EGS glaucoma 2020",
					Recommendations: []string{
						"Confirm with repeat applanation tonometry",
						"Review topical pressure-lowering therapy and adherence",
					},
				}
			},
		},
		{
			ID:          "opht-dme-glycemic",
			Name:        "Macular edema with poor glycemic control",
			Description: "Flags diabetic macular edema with HbA1c above 8%",
			Category:    CategoryGuideline,
			Module:      ModuleOphthalmology,
			Source:      "EURETINA DME 2017",
			Priority:    20,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Ophthalmology != nil && s.Ophthalmology.DiabeticMacularEdema &&
					s.Labs.HbA1c != nil && *s.Labs.HbA1c > 8.0
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryGuideline,
					Severity: SeverityWarning,
					Title:    "DME with HbA1c above 8%",
					Message:  fmt.Sprintf("Diabetic macular edema with HbA1c %.1f%%; systemic control affects anti-VEGF response.", *s.Labs.HbA1c),
					Source:   "EURETINA DME 2017",
					Recommendations: []string{
						"Coordinate glycemic optimization with the diabetes team",
						"Continue anti-VEGF schedule without interruption",
					},
				}
			},
		},
		{
			ID:          "opht-glaucoma-betablocker",
			Name:        "Systemic beta blocker with glaucoma drops",
			Description: "Flags oral beta blockade in glaucoma patients, which can mask topical beta-blocker effect",
			Category:    CategoryMedication,
			Module:      ModuleOphthalmology,
			Source:      "EGS glaucoma 2020",
			Priority:    40,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Ophthalmology != nil && s.Ophthalmology.Glaucoma &&
					takesDrug(ix, s, "beta_blockers")
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryMedication,
					Severity: SeverityInfo,
					Title:    "Systemic beta blocker in glaucoma",
					Message:  "Oral beta blockade may blunt the additional pressure-lowering effect of topical beta blockers.",
					Source:   "EGS glaucoma 2020",
					Recommendations: []string{
						"Prefer a prostaglandin analog as first-line topical therapy",
					},
				}
			},
		},
		{
			ID:          "opht-amd-monitoring",
			Name:        "AMD monitoring reminder",
			Description: "Reminds about regular OCT follow-up in AMD patients",
			Category:    CategoryReminder,
			Module:      ModuleOphthalmology,
			Source:      "AAO AMD preferred practice",
			Priority:    50,
			Active:      true,
			Condition: func(s ClinicalSnapshot) bool {
				return s.Ophthalmology != nil && s.Ophthalmology.AMD
			},
			Generate: func(s ClinicalSnapshot) Alert {
				return Alert{
					Category: CategoryReminder,
					Severity: SeverityInfo,
					Title:    "AMD follow-up due",
					Message:  "Age-related macular degeneration is documented; confirm OCT monitoring interval is current.",
					Source:   "AAO AMD preferred practice",
					Recommendations: []string{
						"Schedule OCT per treat-and-extend interval",
						"Counsel on Amsler grid self-monitoring",
					},
				}
			},
		},
	}
}
