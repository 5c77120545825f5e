package document

import "strings"

// elaborationRule pairs a trigger keyword with the formal prefix that
// introduces the elaborated point.
type elaborationRule struct {
	keyword string
	prefix  string
}

// elaborationRules is scanned in order and the first keyword contained in
// the point wins. The order is significant: a point mentioning both
// "review" and "schedule" elaborates with the review template because
// "review" is listed first. Keep this a slice, not a map.
var elaborationRules = []elaborationRule{
	{"review", "The committee conducted a comprehensive review of "},
	{"discuss", "Extensive deliberations were held regarding "},
	{"approve", "Following detailed consideration, the committee approved "},
	{"implement", "It was unanimously decided to implement "},
	{"schedule", "The committee finalized the schedule for "},
	{"coordinate", "Coordination measures were discussed and established for "},
	{"evaluate", "A thorough evaluation was undertaken concerning "},
	{"workload", "The distribution and allocation of faculty workload was examined, with emphasis on "},
	{"syllabus", "Curricular aspects were reviewed, particularly focusing on "},
	{"examination", "Assessment and examination protocols were deliberated upon, specifically addressing "},
}

// formalOpeners mark points that already read like minutes prose; such
// points are left untouched even when they contain a trigger keyword.
var formalOpeners = []string{"the committee", "it was", "following"}

const (
	keywordClosing = "The matter was thoroughly discussed and appropriate decisions were taken in accordance with institutional guidelines."
	genericClosing = "This matter was deliberated upon at length, and the committee reached a consensus on the way forward, ensuring alignment with departmental objectives and academic standards."

	// Points longer than this are treated as already detailed.
	elaborationLengthCap = 100
)

// Elaborate expands a terse discussion point into formal minutes prose
// using the fixed keyword table. It is deterministic and idempotent on
// input that is already long or already formal, and output is never
// shorter than input.
func Elaborate(point string) string {
	if point == "" {
		return ""
	}
	if len(point) > elaborationLengthCap {
		return point
	}

	lower := strings.ToLower(point)
	for _, rule := range elaborationRules {
		if !strings.Contains(lower, rule.keyword) {
			continue
		}
		for _, opener := range formalOpeners {
			if strings.HasPrefix(lower, opener) {
				return point
			}
		}
		return rule.prefix + lower + ". " + keywordClosing
	}

	return point + ". " + genericClosing
}
