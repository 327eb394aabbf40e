package harpoon

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/kevinflint-cs2/watchtower/internal/scoring"
)

// ErrInvalidThreshold rejects similarity cutoffs outside [0, 1].
var ErrInvalidThreshold = errors.New("similarity threshold must be between 0 and 1")

// homoglyphMarkers are the substitution characters the variant generator
// emits; any of them appearing in a candidate signals a homoglyph attack.
const homoglyphMarkers = "01@35"

// Match scores every candidate against one flat target pool, approved
// domains first and generated variants after, and emits a record for each
// candidate whose best match clears the threshold or sits within edit
// distance 2. Cross-pool duplicates stay in the pool; score ties keep the
// first-encountered target. Inputs are expected in canonical form. Records
// come back sorted by similarity descending, stable across equal scores.
func Match(candidates, approved, variants []string, threshold float64) ([]Candidate, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}

	pool := make([]string, 0, len(approved)+len(variants))
	pool = append(pool, approved...)
	pool = append(pool, variants...)

	approvedSet := make(map[string]struct{}, len(approved))
	for _, a := range approved {
		approvedSet[a] = struct{}{}
	}

	records := make([]Candidate, 0)
	for _, candidate := range candidates {
		var best string
		bestScore := 0.0
		found := false
		for _, target := range pool {
			if s := scoring.Score(candidate, target); s > bestScore {
				best = target
				bestScore = s
				found = true
			}
		}
		if !found {
			continue
		}

		distance := scoring.Distance(candidate, best)
		if bestScore < threshold && distance > 2 {
			continue
		}

		matchedFrom := SourceVariant
		if _, ok := approvedSet[best]; ok {
			matchedFrom = SourceApproved
		}
		records = append(records, Candidate{
			Domain:      candidate,
			LooksLike:   best,
			Similarity:  round3(bestScore),
			Reason:      reasonFor(candidate, best, distance),
			MatchedFrom: matchedFrom,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Similarity > records[j].Similarity
	})
	return records, nil
}

// reasonFor applies the fixed precedence: low edit distance first, then
// homoglyph markers, then a differing final label, then plain similarity.
func reasonFor(candidate, best string, distance int) Reason {
	switch {
	case distance <= 2:
		return ReasonCharSwap
	case strings.ContainsAny(candidate, homoglyphMarkers):
		return ReasonHomoglyph
	case finalLabel(candidate) != finalLabel(best):
		return ReasonTLDSwap
	default:
		return ReasonSimilarity
	}
}

func finalLabel(domain string) string {
	return domain[strings.LastIndex(domain, ".")+1:]
}

func validateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return ErrInvalidThreshold
	}
	return nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
