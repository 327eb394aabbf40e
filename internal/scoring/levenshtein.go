package scoring

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Distance returns the Levenshtein edit distance between a and b with unit
// costs, counted in runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// LevenshteinSimilarity maps edit distance into [0, 1] by dividing by the
// longer rune length. Two empty strings are identical and score 1.
func LevenshteinSimilarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(longest)
}
