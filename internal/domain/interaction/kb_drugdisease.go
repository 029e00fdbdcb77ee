package interaction

var drugDiseaseTable = []DrugDiseaseRecord{
	{
		Drug:       "metformin",
		Condition:  "ckd_stage_4_5",
		Severity:   "contraindicated",
		Mechanism:  "Accumulation of metformin with failing renal clearance",
		Effect:     "Lactic acidosis",
		Management: "Stop metformin; switch to an agent dosed for kidney failure",
	},
	{
		Drug:       "nsaids",
		Condition:  "ckd_stage_4_5",
		Severity:   "contraindicated",
		Mechanism:  "Prostaglandin inhibition removes compensatory renal vasodilation",
		Effect:     "Acute-on-chronic kidney injury",
		Management: "Avoid entirely; use paracetamol or short-course low-dose opioid",
	},
	{
		Drug:       "nsaids",
		Condition:  "chronic_kidney_disease",
		Severity:   "major",
		Mechanism:  "Reduced renal perfusion",
		Effect:     "Progression of CKD, sodium retention",
		Management: "Avoid regular use; recheck creatinine after any course",
	},
	{
		Drug:       "nsaids",
		Condition:  "heart_failure",
		Severity:   "major",
		Mechanism:  "Sodium and water retention",
		Effect:     "Decompensation of heart failure",
		Management: "Avoid; prefer paracetamol",
	},
	{
		Drug:       "nsaids",
		Condition:  "peptic_ulcer",
		Severity:   "major",
		Mechanism:  "Mucosal prostaglandin inhibition",
		Effect:     "Ulcer recurrence and GI bleeding",
		Management: "Avoid; if unavoidable, add a PPI and use the lowest dose",
	},
	{
		Drug:       "beta_blockers",
		Condition:  "asthma",
		Severity:   "major",
		Mechanism:  "Beta-2 blockade causes bronchoconstriction",
		Effect:     "Acute bronchospasm",
		Management: "Avoid non-selective agents; if essential use a cardioselective agent at low dose",
	},
	{
		Drug:       "beta_blockers",
		Condition:  "bradycardia",
		Severity:   "major",
		Mechanism:  "Negative chronotropy on a diseased conduction system",
		Effect:     "Symptomatic bradycardia, syncope",
		Management: "Avoid unless a pacemaker is in place",
	},
	{
		Drug:       "ace_inhibitors",
		Condition:  "pregnancy",
		Severity:   "contraindicated",
		Mechanism:  "Fetal renin-angiotensin system disruption",
		Effect:     "Fetal renal dysplasia, oligohydramnios",
		Management: "Stop immediately; switch to labetalol or methyldopa",
	},
	{
		Drug:       "arbs",
		Condition:  "pregnancy",
		Severity:   "contraindicated",
		Mechanism:  "Fetal renin-angiotensin system disruption",
		Effect:     "Fetotoxicity in second and third trimester",
		Management: "Stop immediately; switch to a pregnancy-safe antihypertensive",
	},
	{
		Drug:       "thiazide",
		Condition:  "gout",
		Severity:   "moderate",
		Mechanism:  "Reduced renal urate clearance",
		Effect:     "Precipitation of gout flares",
		Management: "Prefer losartan or a calcium channel blocker",
	},
	{
		Drug:       "tramadol",
		Condition:  "epilepsy",
		Severity:   "major",
		Mechanism:  "Lowered seizure threshold",
		Effect:     "Breakthrough seizures",
		Management: "Prefer an alternative analgesic",
	},
	{
		Drug:       "statins",
		Condition:  "liver_disease",
		Severity:   "moderate",
		Mechanism:  "Hepatic metabolism of statins in a failing liver",
		Effect:     "Transaminase elevation, rare hepatotoxicity",
		Management: "Use the lowest effective dose and monitor liver enzymes",
	},
	{
		Drug:       "sglt2_inhibitors",
		Condition:  "ckd_stage_4_5",
		Severity:   "moderate",
		Mechanism:  "Glucosuric effect lost at very low GFR",
		Effect:     "Reduced glycemic efficacy, volume depletion",
		Management: "Do not initiate below eGFR 20; continue established therapy per label",
	},
	{
		Drug:       "glibenclamide",
		Condition:  "chronic_kidney_disease",
		Severity:   "major",
		Mechanism:  "Active metabolites accumulate with reduced clearance",
		Effect:     "Prolonged hypoglycemia",
		Management: "Switch to a short-acting sulfonylurea or non-sulfonylurea agent",
	},
}
