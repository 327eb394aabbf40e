package scoring

// Trigram returns the Jaccard similarity of the rune-trigram sets of a and
// b. A string shorter than three runes contributes itself as a single gram.
func Trigram(a, b string) float64 {
	t1 := trigrams(a)
	t2 := trigrams(b)
	if len(t1) == 0 || len(t2) == 0 {
		return 0
	}

	intersection := 0
	for g := range t1 {
		if _, ok := t2[g]; ok {
			intersection++
		}
	}
	union := len(t1) + len(t2) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func trigrams(s string) map[string]struct{} {
	grams := make(map[string]struct{})
	runes := []rune(s)
	if len(runes) < 3 {
		grams[s] = struct{}{}
		return grams
	}
	for i := 0; i+3 <= len(runes); i++ {
		grams[string(runes[i:i+3])] = struct{}{}
	}
	return grams
}
