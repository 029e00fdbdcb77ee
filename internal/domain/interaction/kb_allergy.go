package interaction

var allergyTable = []AllergyRecord{
	{
		Drug:           "penicillins",
		Allergen:       "penicillin",
		CrossReactive:  true,
		Severity:       "life_threatening",
		Recommendation: "Do not administer any penicillin-class antibiotic; document reaction type and use a non-beta-lactam alternative",
	},
	{
		Drug:           "cephalosporins",
		Allergen:       "penicillin",
		CrossReactive:  true,
		Severity:       "moderate",
		Recommendation: "Cross-reactivity is low with later-generation cephalosporins; avoid if the penicillin reaction was anaphylactic",
	},
	{
		Drug:           "carbapenem",
		Allergen:       "penicillin",
		CrossReactive:  true,
		Severity:       "mild",
		Recommendation: "Cross-reactivity below 1%; administer with observation if penicillin reaction was non-severe",
	},
	{
		Drug:           "sulfonamides",
		Allergen:       "sulfa",
		CrossReactive:  true,
		Severity:       "severe",
		Recommendation: "Avoid antibacterial sulfonamides; non-antibacterial sulfonamide cross-reactivity is unlikely but document the reaction",
	},
	{
		Drug:           "nsaids",
		Allergen:       "nsaid",
		CrossReactive:  true,
		Severity:       "severe",
		Recommendation: "Cross-reactivity across COX-1 inhibitors is common; consider a selective COX-2 inhibitor under observation",
	},
	{
		Drug:           "nsaids",
		Allergen:       "aspirin",
		CrossReactive:  true,
		Severity:       "severe",
		Recommendation: "Aspirin-exacerbated respiratory disease reacts to all strong COX-1 inhibitors",
	},
	{
		Drug:           "opioids",
		Allergen:       "opioid",
		CrossReactive:  true,
		Severity:       "moderate",
		Recommendation: "Distinguish true allergy from histamine-mediated pseudo-allergy; a different structural class may be tolerated",
	},
	{
		Drug:           "contrast_media",
		Allergen:       "contrast_media",
		CrossReactive:  true,
		Severity:       "life_threatening",
		Recommendation: "Premedicate or choose alternative imaging; ensure resuscitation readiness",
	},
}
