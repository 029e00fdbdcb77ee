package cdss

import "time"

// Module identifies which clinical module a rule belongs to. Rules in the
// general module apply to every patient.
type Module string

const (
	ModuleGeneral       Module = "general"
	ModuleDialysis      Module = "dialyse"
	ModuleCardiology    Module = "cardiology"
	ModuleOphthalmology Module = "ophthalmology"
)

// Category classifies what a rule inspects.
type Category string

const (
	CategoryMedication Category = "medication"
	CategoryLab        Category = "lab"
	CategoryVitals     Category = "vitals"
	CategoryGuideline  Category = "guideline"
	CategoryProtocol   Category = "protocol"
	CategoryReminder   Category = "reminder"
)

// Severity is the CDSS alert severity vocabulary. It is one of three severity
// vocabularies in the system; cross-vocabulary comparison goes through
// pkg/severity.
type Severity string

const (
	SeverityInfo            Severity = "info"
	SeverityWarning         Severity = "warning"
	SeverityCritical        Severity = "critical"
	SeverityContraindicated Severity = "contraindicated"
)

// Vitals holds the most recent vital signs. Every field is optional; a rule
// that depends on an absent field does not apply.
type Vitals struct {
	SystolicBP  *float64 `json:"systolic_bp,omitempty"`
	DiastolicBP *float64 `json:"diastolic_bp,omitempty"`
	HeartRate   *float64 `json:"heart_rate,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	SpO2        *float64 `json:"spo2,omitempty"`
}

// Labs holds the most recent laboratory values, all optional.
type Labs struct {
	Creatinine *float64 `json:"creatinine,omitempty"`
	EGFR       *float64 `json:"egfr,omitempty"`
	Potassium  *float64 `json:"potassium,omitempty"`
	Phosphate  *float64 `json:"phosphate,omitempty"`
	Hemoglobin *float64 `json:"hemoglobin,omitempty"`
	HbA1c      *float64 `json:"hba1c,omitempty"`
	PTH        *float64 `json:"pth,omitempty"`
	LDL        *float64 `json:"ldl,omitempty"`
}

// Medication is one entry on the current medication list.
type Medication struct {
	Name      string `json:"name"`
	Dose      string `json:"dose,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

// DialysisProfile is the dialysis sub-profile of a snapshot.
type DialysisProfile struct {
	OnDialysis bool     `json:"on_dialysis"`
	KtV        *float64 `json:"ktv,omitempty"`
	AccessType *string  `json:"access_type,omitempty"` // fistula, graft, catheter
}

// CardiologyProfile is the cardiology sub-profile of a snapshot.
type CardiologyProfile struct {
	LVEF                  *float64 `json:"lvef,omitempty"`
	AtrialFibrillation    bool     `json:"atrial_fibrillation"`
	CoronaryArteryDisease bool     `json:"coronary_artery_disease"`
	Pacemaker             bool     `json:"pacemaker"`
}

// OphthalmologyProfile is the ophthalmology sub-profile of a snapshot.
type OphthalmologyProfile struct {
	IOP                  *float64 `json:"iop,omitempty"` // mmHg, worse eye
	DiabeticMacularEdema bool     `json:"diabetic_macular_edema"`
	AMD                  bool     `json:"amd"`
	Glaucoma             bool     `json:"glaucoma"`
}

// ClinicalSnapshot is an ephemeral, by-value view of a patient's clinical
// data assembled by the caller. Any field may be absent; absence means the
// dependent rules do not apply, never that they match.
type ClinicalSnapshot struct {
	PatientID     string                `json:"patient_id"`
	Age           *int                  `json:"age,omitempty"`
	Sex           string                `json:"sex,omitempty"`
	WeightKg      *float64              `json:"weight_kg,omitempty"`
	HeightCm      *float64              `json:"height_cm,omitempty"`
	Vitals        Vitals                `json:"vitals"`
	Labs          Labs                  `json:"labs"`
	Conditions    []string              `json:"conditions,omitempty"`
	Medications   []Medication          `json:"medications,omitempty"`
	Allergies     []string              `json:"allergies,omitempty"`
	Dialysis      *DialysisProfile      `json:"dialysis,omitempty"`
	Cardiology    *CardiologyProfile    `json:"cardiology,omitempty"`
	Ophthalmology *OphthalmologyProfile `json:"ophthalmology,omitempty"`
}

// Alert is one clinician-facing finding. The engine fills ID, RuleID,
// PatientID and CreatedAt; the acknowledgment and resolution fields are
// mutated only by the alert store, never by the engine.
type Alert struct {
	ID              string                 `json:"id" db:"id"`
	RuleID          string                 `json:"rule_id" db:"rule_id"`
	PatientID       string                 `json:"patient_id" db:"patient_id"`
	Category        Category               `json:"category" db:"category"`
	Severity        Severity               `json:"severity" db:"severity"`
	Title           string                 `json:"title" db:"title"`
	Message         string                 `json:"message" db:"message"`
	Source          string                 `json:"source,omitempty" db:"source"`
	Reference       string                 `json:"reference,omitempty" db:"reference"`
	Recommendations []string               `json:"recommendations,omitempty" db:"recommendations"`
	Data            map[string]interface{} `json:"data,omitempty" db:"data"`
	CreatedAt       time.Time              `json:"created_at" db:"created_at"`
	ExpiresAt       *time.Time             `json:"expires_at,omitempty" db:"expires_at"`
	AcknowledgedAt  *time.Time             `json:"acknowledged_at,omitempty" db:"acknowledged_at"`
	AcknowledgedBy  *string                `json:"acknowledged_by,omitempty" db:"acknowledged_by"`
	ResolvedAt      *time.Time             `json:"resolved_at,omitempty" db:"resolved_at"`
}

// Rule pairs a pure condition predicate with a pure alert generator. Both
// must be total over any well-typed snapshot; the engine still guards the
// call with a recover boundary so one broken rule can never suppress the
// rest.
type Rule struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Module      Module
	Source      string
	// Priority is reserved for future tie-breaking; ordering is driven by
	// severity alone.
	Priority  int
	Active    bool
	Condition func(s ClinicalSnapshot) bool
	Generate  func(s ClinicalSnapshot) Alert
}

// EvaluationSummary counts produced alerts per severity band. Critical
// aggregates both critical and contraindicated.
type EvaluationSummary struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// EvaluationResult is the outcome of one engine run.
type EvaluationResult struct {
	PatientID       string            `json:"patient_id"`
	EvaluatedAt     time.Time         `json:"evaluated_at"`
	RulesEvaluated  int               `json:"rules_evaluated"`
	AlertsGenerated int               `json:"alerts_generated"`
	Alerts          []Alert           `json:"alerts"`
	Summary         EvaluationSummary `json:"summary"`
}
