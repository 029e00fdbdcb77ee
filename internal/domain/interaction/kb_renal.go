package interaction

var renalTable = []RenalRecord{
	{
		Drug:       "metformin",
		NormalDose: "Up to 2000 mg/day",
		GFR30to59:  "Maximum 1000 mg/day; do not initiate below eGFR 45",
		GFR15to29:  "Contraindicated",
		GFRBelow15: "Contraindicated",
		Dialysis:   "Contraindicated",
		Notes:      "Withhold around iodinated contrast administration",
	},
	{
		Drug:       "gabapentin",
		NormalDose: "300-1200 mg three times daily",
		GFR30to59:  "200-700 mg twice daily",
		GFR15to29:  "200-700 mg once daily",
		GFRBelow15: "100-300 mg once daily",
		Dialysis:   "125-350 mg after each session",
		Notes:      "Neurotoxicity accumulates silently in kidney failure",
	},
	{
		Drug:       "enoxaparin",
		NormalDose: "1 mg/kg twice daily (treatment dose)",
		GFR30to59:  "No adjustment",
		GFR15to29:  "1 mg/kg once daily",
		GFRBelow15: "1 mg/kg once daily; consider unfractionated heparin",
		Dialysis:   "Prefer unfractionated heparin",
		Notes:      "Anti-Xa monitoring advised at low GFR",
	},
	{
		Drug:       "allopurinol",
		NormalDose: "Up to 900 mg/day titrated",
		GFR30to59:  "Start 100 mg/day, titrate by urate",
		GFR15to29:  "Start 100 mg every other day",
		GFRBelow15: "50-100 mg every other day",
		Dialysis:   "300 mg post-dialysis on dialysis days",
		Notes:      "Hypersensitivity risk rises with dose at low GFR",
	},
	{
		Drug:       "ciprofloxacin",
		NormalDose: "500-750 mg twice daily",
		GFR30to59:  "250-500 mg twice daily",
		GFR15to29:  "250-500 mg once daily",
		GFRBelow15: "250-500 mg once daily",
		Dialysis:   "250-500 mg once daily after dialysis on dialysis days",
	},
	{
		Drug:       "digoxin",
		NormalDose: "125-250 mcg/day",
		GFR30to59:  "125 mcg/day; level-guided",
		GFR15to29:  "62.5-125 mcg/day; level-guided",
		GFRBelow15: "62.5 mcg/day or alternate days",
		Dialysis:   "62.5 mcg alternate days; not dialyzable",
		Notes:      "Check level and potassium together",
	},
	{
		Drug:       "atenolol",
		NormalDose: "50-100 mg/day",
		GFR30to59:  "No adjustment",
		GFR15to29:  "Maximum 50 mg/day",
		GFRBelow15: "Maximum 25 mg/day",
		Dialysis:   "25-50 mg after each session",
	},
	{
		Drug:       "apixaban",
		NormalDose: "5 mg twice daily",
		GFR30to59:  "No adjustment unless dose-reduction criteria met",
		GFR15to29:  "2.5 mg twice daily",
		GFRBelow15: "Use not recommended",
		Dialysis:   "Use not recommended",
	},
	{
		Drug:       "vancomycin",
		NormalDose: "15-20 mg/kg every 8-12 h",
		GFR30to59:  "15-20 mg/kg every 24 h; level-guided",
		GFR15to29:  "15-20 mg/kg every 48 h; level-guided",
		GFRBelow15: "Load then redose by level",
		Dialysis:   "Load 20-25 mg/kg, redose after dialysis by level",
		Notes:      "Trough or AUC monitoring required",
	},
	{
		Drug:       "sitagliptin",
		NormalDose: "100 mg/day",
		GFR30to59:  "50 mg/day",
		GFR15to29:  "25 mg/day",
		GFRBelow15: "25 mg/day",
		Dialysis:   "25 mg/day, timing independent of dialysis",
	},
	{
		Drug:       "morphine",
		NormalDose: "Titrate to effect",
		GFR30to59:  "75% of usual dose",
		GFR15to29:  "50% of usual dose",
		GFRBelow15: "Avoid; active metabolites accumulate",
		Dialysis:   "Avoid; prefer fentanyl or hydromorphone",
	},
	{
		Drug:       "levetiracetam",
		NormalDose: "500-1500 mg twice daily",
		GFR30to59:  "250-750 mg twice daily",
		GFR15to29:  "250-500 mg twice daily",
		GFRBelow15: "500-1000 mg once daily",
		Dialysis:   "500-1000 mg/day plus 250-500 mg after dialysis",
	},
}
