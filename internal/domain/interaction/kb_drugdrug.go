package interaction

var drugDrugTable = []InteractionRecord{
	{
		DrugA:      "warfarin",
		DrugB:      "nsaids",
		Severity:   "major",
		Mechanism:  "Additive anticoagulant and antiplatelet effect plus gastric mucosal injury",
		Effect:     "Markedly increased risk of GI and other bleeding",
		Management: "Avoid combination; use paracetamol for analgesia, monitor INR closely if unavoidable",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "warfarin",
		DrugB:      "amiodarone",
		Severity:   "major",
		Mechanism:  "CYP2C9 inhibition reduces warfarin clearance",
		Effect:     "INR rises over 1-2 weeks, bleeding risk",
		Management: "Reduce warfarin dose 30-50% and recheck INR within one week",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "warfarin",
		DrugB:      "trimethoprim-sulfamethoxazole",
		Severity:   "major",
		Mechanism:  "CYP2C9 inhibition and displacement from protein binding",
		Effect:     "Sharp INR elevation",
		Management: "Prefer alternative antibiotic; if used, monitor INR within 3-5 days",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "ace_inhibitors",
		DrugB:      "potassium_sparing_diuretics",
		Severity:   "major",
		Mechanism:  "Dual reduction of renal potassium excretion",
		Effect:     "Hyperkalemia, risk of arrhythmia",
		Management: "Monitor potassium within one week of starting or dose change",
		Reference:  "KDIGO 2024",
	},
	{
		DrugA:      "ace_inhibitors",
		DrugB:      "arbs",
		Severity:   "major",
		Mechanism:  "Dual renin-angiotensin system blockade",
		Effect:     "Hypotension, hyperkalemia, acute kidney injury",
		Management: "Avoid dual blockade; choose one agent",
		Reference:  "ONTARGET trial",
	},
	{
		DrugA:      "ace_inhibitors",
		DrugB:      "nsaids",
		Severity:   "moderate",
		Mechanism:  "NSAID prostaglandin inhibition blunts renal perfusion",
		Effect:     "Reduced antihypertensive effect, kidney injury in volume depletion",
		Management: "Limit NSAID duration; check creatinine if combined beyond a few days",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "nitrates",
		DrugB:      "pde5_inhibitors",
		Severity:   "contraindicated",
		Mechanism:  "Synergistic cGMP-mediated vasodilation",
		Effect:     "Profound refractory hypotension",
		Management: "Never combine; separate sildenafil and nitrate dosing by at least 24 hours",
		Reference:  "ESC chronic coronary syndromes 2019",
	},
	{
		DrugA:      "simvastatin",
		DrugB:      "macrolides",
		Severity:   "contraindicated",
		Mechanism:  "CYP3A4 inhibition raises statin exposure",
		Effect:     "Myopathy and rhabdomyolysis",
		Management: "Suspend simvastatin during clarithromycin/erythromycin course or use azithromycin",
		Reference:  "FDA simvastatin label",
	},
	{
		DrugA:      "methotrexate",
		DrugB:      "trimethoprim-sulfamethoxazole",
		Severity:   "contraindicated",
		Mechanism:  "Additive folate antagonism and reduced renal clearance",
		Effect:     "Pancytopenia, mucositis",
		Management: "Avoid combination; choose a non-folate-antagonist antibiotic",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "ssris",
		DrugB:      "maois",
		Severity:   "contraindicated",
		Mechanism:  "Additive serotonergic activity",
		Effect:     "Serotonin syndrome",
		Management: "Never combine; allow a two-week washout between agents",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "digoxin",
		DrugB:      "amiodarone",
		Severity:   "major",
		Mechanism:  "P-glycoprotein inhibition raises digoxin levels",
		Effect:     "Digoxin toxicity: nausea, arrhythmia, visual disturbance",
		Management: "Halve digoxin dose when starting amiodarone and recheck level",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "lithium",
		DrugB:      "nsaids",
		Severity:   "major",
		Mechanism:  "Reduced renal lithium clearance",
		Effect:     "Lithium toxicity: tremor, confusion, arrhythmia",
		Management: "Avoid NSAIDs; if needed, monitor lithium level within one week",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "lithium",
		DrugB:      "loop_diuretics",
		Severity:   "moderate",
		Mechanism:  "Sodium depletion increases proximal lithium reabsorption",
		Effect:     "Raised lithium level",
		Management: "Monitor lithium after any diuretic change",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "beta_blockers",
		DrugB:      "verapamil",
		Severity:   "major",
		Mechanism:  "Additive AV-node suppression and negative inotropy",
		Effect:     "Bradycardia, heart block, hypotension",
		Management: "Avoid combination; prefer a dihydropyridine if a CCB is needed",
		Reference:  "ESC bradycardia 2021",
	},
	{
		DrugA:      "clopidogrel",
		DrugB:      "omeprazole",
		Severity:   "moderate",
		Mechanism:  "CYP2C19 inhibition reduces clopidogrel activation",
		Effect:     "Attenuated antiplatelet effect",
		Management: "Prefer pantoprazole if a PPI is required",
		Reference:  "FDA clopidogrel label",
	},
	{
		DrugA:      "allopurinol",
		DrugB:      "azathioprine",
		Severity:   "major",
		Mechanism:  "Xanthine oxidase inhibition blocks azathioprine metabolite breakdown",
		Effect:     "Severe myelosuppression",
		Management: "Reduce azathioprine to 25% of dose and monitor blood counts",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "theophylline",
		DrugB:      "fluoroquinolones",
		Severity:   "moderate",
		Mechanism:  "CYP1A2 inhibition by ciprofloxacin",
		Effect:     "Theophylline toxicity: nausea, tachycardia, seizures",
		Management: "Prefer levofloxacin or monitor theophylline level",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "anticoagulants",
		DrugB:      "antiplatelets",
		Severity:   "major",
		Mechanism:  "Additive inhibition of hemostasis",
		Effect:     "Increased bleeding risk",
		Management: "Combine only with a documented indication and gastroprotection",
		Reference:  "ESC AF 2024",
	},
	{
		DrugA:      "tramadol",
		DrugB:      "ssris",
		Severity:   "moderate",
		Mechanism:  "Additive serotonergic activity and lowered seizure threshold",
		Effect:     "Serotonin syndrome, seizures",
		Management: "Prefer a non-serotonergic analgesic; counsel on early symptoms",
		Reference:  "Stockley's Drug Interactions",
	},
	{
		DrugA:      "spironolactone",
		DrugB:      "trimethoprim-sulfamethoxazole",
		Severity:   "major",
		Mechanism:  "Trimethoprim acts as a potassium-sparing diuretic",
		Effect:     "Hyperkalemia, particularly in the elderly",
		Management: "Avoid in CKD; check potassium during the course",
		Reference:  "BMJ 2011;343:d5228",
	},
	{
		DrugA:      "statins",
		DrugB:      "gemfibrozil",
		Severity:   "major",
		Mechanism:  "OATP1B1 and glucuronidation inhibition raises statin exposure",
		Effect:     "Myopathy and rhabdomyolysis",
		Management: "Use fenofibrate instead if a fibrate is required",
		Reference:  "FDA statin labels",
	},
}
