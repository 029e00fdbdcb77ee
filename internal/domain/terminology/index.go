// Package terminology resolves free-text drug, condition and allergen tokens
// against canonical patterns and synonym classes. The index is built once at
// process start and is read-only afterwards, so it can be shared by any number
// of concurrent evaluations.
package terminology

// Index holds the class and synonym tables consulted by the matchers.
type Index struct {
	drugClasses      map[string][]string
	conditionClasses map[string][]string
	allergenClasses  map[string][]string
}

// NewIndex builds the default terminology index.
func NewIndex() *Index {
	return &Index{
		drugClasses:      drugClasses,
		conditionClasses: conditionClasses,
		allergenClasses:  allergenClasses,
	}
}

// NewIndexWith builds an index from caller-supplied tables. Tests use this to
// substitute small fixture vocabularies.
func NewIndexWith(drugs, conditions, allergens map[string][]string) *Index {
	return &Index{
		drugClasses:      drugs,
		conditionClasses: conditions,
		allergenClasses:  allergens,
	}
}

// Class keys are lowercase identifiers as they appear in knowledge-base
// patterns. Members are matched by substring containment against normalized
// input, so "ibuprofen 400mg" resolves through "nsaids".
var drugClasses = map[string][]string{
	"nsaids":                      {"ibuprofen", "naproxen", "diclofenac", "indomethacin", "ketorolac", "celecoxib", "meloxicam", "piroxicam", "aspirin"},
	"beta_blockers":               {"metoprolol", "atenolol", "bisoprolol", "carvedilol", "propranolol", "nebivolol", "labetalol"},
	"ace_inhibitors":              {"lisinopril", "enalapril", "ramipril", "captopril", "perindopril", "quinapril"},
	"arbs":                        {"losartan", "valsartan", "candesartan", "irbesartan", "telmisartan", "olmesartan"},
	"statins":                     {"atorvastatin", "simvastatin", "rosuvastatin", "pravastatin", "lovastatin", "fluvastatin"},
	"penicillins":                 {"penicillin", "amoxicillin", "ampicillin", "piperacillin", "flucloxacillin", "dicloxacillin"},
	"cephalosporins":              {"cephalexin", "cefazolin", "ceftriaxone", "cefuroxime", "cefepime", "cefdinir"},
	"sulfonamides":                {"sulfamethoxazole", "trimethoprim-sulfamethoxazole", "co-trimoxazole", "sulfasalazine", "sulfadiazine"},
	"macrolides":                  {"erythromycin", "clarithromycin", "azithromycin"},
	"fluoroquinolones":            {"ciprofloxacin", "levofloxacin", "moxifloxacin", "ofloxacin"},
	"loop_diuretics":              {"furosemide", "bumetanide", "torsemide"},
	"potassium_sparing_diuretics": {"spironolactone", "eplerenone", "amiloride", "triamterene"},
	"anticoagulants":              {"warfarin", "apixaban", "rivaroxaban", "dabigatran", "edoxaban", "heparin", "enoxaparin"},
	"antiplatelets":               {"aspirin", "clopidogrel", "ticagrelor", "prasugrel"},
	"ssris":                       {"sertraline", "fluoxetine", "paroxetine", "citalopram", "escitalopram"},
	"maois":                       {"phenelzine", "tranylcypromine", "selegiline", "isocarboxazid"},
	"nitrates":                    {"nitroglycerin", "isosorbide mononitrate", "isosorbide dinitrate", "isosorbide"},
	"pde5_inhibitors":             {"sildenafil", "tadalafil", "vardenafil", "avanafil"},
	"opioids":                     {"morphine", "oxycodone", "hydrocodone", "tramadol", "codeine", "fentanyl"},
	"aminoglycosides":             {"gentamicin", "tobramycin", "amikacin"},
	"calcium_channel_blockers":    {"amlodipine", "diltiazem", "verapamil", "nifedipine", "felodipine"},
	"sglt2_inhibitors":            {"empagliflozin", "dapagliflozin", "canagliflozin"},
}

var conditionClasses = map[string][]string{
	"ckd_stage_4_5":       {"esrd", "end-stage renal", "end stage renal", "ckd stage 4", "ckd stage 5", "ckd 4", "ckd 5", "chronic kidney disease stage 4", "chronic kidney disease stage 5", "kidney failure", "renal failure", "dialysis"},
	"chronic_kidney_disease": {"ckd", "chronic kidney disease", "renal insufficiency", "nephropathy"},
	"heart_failure":       {"heart failure", "chf", "congestive heart failure", "hfref", "hfpef", "cardiomyopathy"},
	"asthma":              {"asthma", "reactive airway"},
	"copd":                {"copd", "chronic obstructive", "emphysema", "chronic bronchitis"},
	"diabetes":            {"diabetes", "diabetes mellitus", "t1dm", "t2dm", "type 1 diabetes", "type 2 diabetes"},
	"hypertension":        {"hypertension", "htn", "high blood pressure"},
	"atrial_fibrillation": {"atrial fibrillation", "afib", "a-fib", "paroxysmal af"},
	"peptic_ulcer":        {"peptic ulcer", "gastric ulcer", "duodenal ulcer", "gi bleed", "gastrointestinal bleed"},
	"gout":                {"gout", "hyperuricemia"},
	"glaucoma":            {"glaucoma", "ocular hypertension"},
	"pregnancy":           {"pregnancy", "pregnant"},
	"liver_disease":       {"cirrhosis", "hepatic impairment", "liver disease", "hepatitis", "liver failure"},
	"bradycardia":         {"bradycardia", "heart block", "av block", "sick sinus"},
	"epilepsy":            {"epilepsy", "seizure disorder", "seizures"},
}

var allergenClasses = map[string][]string{
	"penicillin":     {"penicillin", "amoxicillin", "ampicillin", "piperacillin", "flucloxacillin"},
	"sulfa":          {"sulfa", "sulfonamide", "sulfamethoxazole", "co-trimoxazole", "bactrim"},
	"nsaid":          {"nsaid", "aspirin", "ibuprofen", "naproxen", "diclofenac"},
	"opioid":         {"opioid", "morphine", "codeine", "oxycodone"},
	"contrast_media": {"contrast", "iodine", "iodinated contrast", "contrast dye"},
	"latex":          {"latex", "rubber"},
	"egg":            {"egg", "ovalbumin"},
}
