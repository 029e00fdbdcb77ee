package terminology

import "strings"

// The three matchers share one algorithm, applied case-insensitively:
//
//  1. exact equality after normalization,
//  2. bidirectional substring containment,
//  3. class lookup: the pattern names a known class and any member of the
//     class is contained in the input.
//
// Recall is favored over precision: in a safety-alerting context a missed
// interaction is worse than a spurious one, so any strategy succeeding is
// sufficient. Unknown tokens simply produce no match; the matchers never
// panic and never treat missing input as a match.

// MatchesDrug reports whether a free-text medication entry matches a
// knowledge-base drug pattern.
func (ix *Index) MatchesDrug(input, pattern string) bool {
	return matches(input, pattern, ix.drugClasses)
}

// MatchesCondition reports whether a free-text condition tag matches a
// knowledge-base condition pattern.
func (ix *Index) MatchesCondition(input, pattern string) bool {
	return matches(input, pattern, ix.conditionClasses)
}

// MatchesAllergen reports whether a free-text allergy tag matches a
// knowledge-base allergen pattern.
func (ix *Index) MatchesAllergen(input, pattern string) bool {
	return matches(input, pattern, ix.allergenClasses)
}

func matches(input, pattern string, classes map[string][]string) bool {
	input = Normalize(input)
	pattern = Normalize(pattern)
	if input == "" || pattern == "" {
		return false
	}
	if input == pattern {
		return true
	}
	if strings.Contains(input, pattern) || strings.Contains(pattern, input) {
		return true
	}
	for _, member := range classes[pattern] {
		if strings.Contains(input, member) {
			return true
		}
	}
	return false
}

// Normalize lowercases and trims a free-text token. All engine inputs pass
// through here before matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
