// Package severity defines the canonical four-bucket severity scale shared by
// the interaction checks, and the ordinal ranking used to sort clinical
// alerts. Three severity vocabularies exist in the knowledge bases; each has
// an explicit mapping into the canonical scale so raw severity strings are
// never compared across vocabularies.
package severity

// Bucket is the canonical severity bucket. Lower values are more severe, so
// buckets sort naturally with ascending integer order.
type Bucket int

const (
	Contraindicated Bucket = iota
	Major
	Moderate
	Minor
	// None is returned for strings outside the known vocabularies. It ranks
	// last and is excluded from summary counting.
	None
)

func (b Bucket) String() string {
	switch b {
	case Contraindicated:
		return "contraindicated"
	case Major:
		return "major"
	case Moderate:
		return "moderate"
	case Minor:
		return "minor"
	default:
		return "none"
	}
}

// Drug-drug and drug-disease tables use minor/moderate/major/contraindicated.
var interactionBuckets = map[string]Bucket{
	"contraindicated": Contraindicated,
	"major":           Major,
	"moderate":        Moderate,
	"minor":           Minor,
}

// The allergy cross-reactivity table uses mild/moderate/severe/life_threatening.
var allergyBuckets = map[string]Bucket{
	"life_threatening": Contraindicated,
	"severe":           Major,
	"moderate":         Moderate,
	"mild":             Minor,
}

// FromInteraction maps a drug-drug or drug-disease severity string into the
// canonical scale.
func FromInteraction(s string) Bucket {
	if b, ok := interactionBuckets[s]; ok {
		return b
	}
	return None
}

// FromAllergy maps an allergy cross-reactivity severity string into the
// canonical scale.
func FromAllergy(s string) Bucket {
	if b, ok := allergyBuckets[s]; ok {
		return b
	}
	return None
}

// CDSS alerts use info/warning/critical/contraindicated. Contraindicated and
// critical rank highest, then warning, then info.
var alertRanks = map[string]int{
	"contraindicated": 0,
	"critical":        1,
	"warning":         2,
	"info":            3,
}

// AlertRank returns the sort rank of a CDSS alert severity. Unknown strings
// rank after every known severity.
func AlertRank(s string) int {
	if r, ok := alertRanks[s]; ok {
		return r
	}
	return len(alertRanks)
}
