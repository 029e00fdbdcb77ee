package cdss

import (
	"github.com/medrec/medrec/internal/domain/terminology"
)

// Registry is the guideline-rule catalog. It is populated once at startup and
// read-only afterwards; concurrent evaluations share it without coordination.
// Hot-swapping the catalog at runtime means building a new Registry and
// switching the engine's reference atomically, never editing in place.
type Registry struct {
	rules []Rule
}

// NewRegistry builds the default catalog. The terminology index is injected
// so rule predicates resolve medication and condition tokens the same way the
// interaction engine does.
func NewRegistry(ix *terminology.Index) *Registry {
	var rules []Rule
	rules = append(rules, generalRules(ix)...)
	rules = append(rules, dialysisRules(ix)...)
	rules = append(rules, cardiologyRules(ix)...)
	rules = append(rules, ophthalmologyRules(ix)...)
	return &Registry{rules: rules}
}

// NewRegistryWith builds a registry from caller-supplied rules, in catalog
// order. Tests use this to inject fixture rules.
func NewRegistryWith(rules []Rule) *Registry {
	return &Registry{rules: rules}
}

// Rules returns the active rules scoped to the given module plus the general
// rules, in catalog order. An empty module selects every active rule.
func (r *Registry) Rules(module Module) []Rule {
	out := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if !rule.Active {
			continue
		}
		if module != "" && rule.Module != module && rule.Module != ModuleGeneral {
			continue
		}
		out = append(out, rule)
	}
	return out
}

// RuleCounts reports active rule counts, total and per module.
type RuleCounts struct {
	Total    int            `json:"total"`
	ByModule map[Module]int `json:"by_module"`
}

// ActiveCounts counts the active rules in the catalog.
func (r *Registry) ActiveCounts() RuleCounts {
	counts := RuleCounts{ByModule: make(map[Module]int)}
	for _, rule := range r.rules {
		if !rule.Active {
			continue
		}
		counts.Total++
		counts.ByModule[rule.Module]++
	}
	return counts
}

// Rule predicates share these helpers so missing data always reads as
// "does not apply".

func takesDrug(ix *terminology.Index, s ClinicalSnapshot, pattern string) bool {
	for _, m := range s.Medications {
		if ix.MatchesDrug(m.Name, pattern) {
			return true
		}
	}
	return false
}

func hasCondition(ix *terminology.Index, s ClinicalSnapshot, pattern string) bool {
	for _, c := range s.Conditions {
		if ix.MatchesCondition(c, pattern) {
			return true
		}
	}
	return false
}
