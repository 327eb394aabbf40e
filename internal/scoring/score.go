package scoring

// Weights applied by Score.
const (
	LevenshteinWeight = 0.4
	JaroWinklerWeight = 0.4
	TrigramWeight     = 0.2
)

// Score blends Levenshtein, Jaro-Winkler and trigram similarity into a
// single composite in [0, 1]. Score(a, a) is exactly 1 for non-empty a.
func Score(a, b string) float64 {
	return LevenshteinWeight*LevenshteinSimilarity(a, b) +
		JaroWinklerWeight*JaroWinkler(a, b) +
		TrigramWeight*Trigram(a, b)
}
