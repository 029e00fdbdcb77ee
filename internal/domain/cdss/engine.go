package cdss

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/medrec/medrec/pkg/severity"
)

// Engine evaluates a clinical snapshot against the rule registry. It performs
// no I/O, holds no mutable state, and is safe for unbounded concurrent use.
type Engine struct {
	registry *Registry
	logger   zerolog.Logger
}

func NewEngine(registry *Registry, logger zerolog.Logger) *Engine {
	return &Engine{registry: registry, logger: logger}
}

// Evaluate runs the active rules scoped to module (empty selects all modules)
// against the snapshot and returns the produced alerts sorted by severity.
// The sort is stable, so rules tying on severity keep catalog order and
// repeated calls with the same inputs yield the same sequence.
//
// RulesEvaluated counts every rule attempted, including rules whose condition
// or generator panicked.
func (e *Engine) Evaluate(snapshot ClinicalSnapshot, module Module) EvaluationResult {
	now := time.Now().UTC()
	rules := e.registry.Rules(module)

	alerts := make([]Alert, 0, 8)
	for _, rule := range rules {
		if alert, fired := e.evalRule(rule, snapshot, now); fired {
			alerts = append(alerts, alert)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return severity.AlertRank(string(alerts[i].Severity)) < severity.AlertRank(string(alerts[j].Severity))
	})

	var summary EvaluationSummary
	for _, a := range alerts {
		switch a.Severity {
		case SeverityCritical, SeverityContraindicated:
			summary.Critical++
		case SeverityWarning:
			summary.Warning++
		case SeverityInfo:
			summary.Info++
		}
	}

	return EvaluationResult{
		PatientID:       snapshot.PatientID,
		EvaluatedAt:     now,
		RulesEvaluated:  len(rules),
		AlertsGenerated: len(alerts),
		Alerts:          alerts,
		Summary:         summary,
	}
}

// evalRule runs one rule behind a recover boundary. A broken rule degrades to
// "no alert from this rule" and is logged; it can never suppress alerts
// produced by the other rules in the same evaluation.
func (e *Engine) evalRule(rule Rule, s ClinicalSnapshot, at time.Time) (alert Alert, fired bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("rule_id", rule.ID).
				Str("rule_name", rule.Name).
				Interface("panic", r).
				Msg("rule evaluation failed")
			alert, fired = Alert{}, false
		}
	}()

	if rule.Condition == nil || rule.Generate == nil {
		return Alert{}, false
	}
	if !rule.Condition(s) {
		return Alert{}, false
	}

	alert = rule.Generate(s)
	// The id pairs the rule with the evaluation instant so results stay
	// reproducible and attributable.
	alert.ID = fmt.Sprintf("%s-%d", rule.ID, at.UnixNano())
	alert.RuleID = rule.ID
	alert.PatientID = s.PatientID
	alert.CreatedAt = at
	if alert.Source == "" {
		alert.Source = rule.Source
	}
	return alert, true
}
