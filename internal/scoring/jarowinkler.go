package scoring

// JaroWinkler returns the Jaro-Winkler similarity of a and b over runes.
// Identical strings score 1 and either-empty scores 0. The Winkler prefix
// boost uses the usual 4-rune cap and is applied regardless of the Jaro
// value.
func JaroWinkler(a, b string) float64 {
	if a == b {
		return 1
	}
	r1, r2 := []rune(a), []rune(b)
	len1, len2 := len(r1), len(r2)
	if len1 == 0 || len2 == 0 {
		return 0
	}

	longest := len1
	if len2 > longest {
		longest = len2
	}
	window := longest/2 - 1
	if window < 1 {
		window = 1
	}

	matched1 := make([]bool, len1)
	matched2 := make([]bool, len2)
	matches := 0
	for i := 0; i < len1; i++ {
		start := i - window
		if start < 0 {
			start = 0
		}
		end := i + window + 1
		if end > len2 {
			end = len2
		}
		for j := start; j < end; j++ {
			if matched2[j] || r1[i] != r2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Transpositions are counted raw over the matched sequences and halved
	// inside the Jaro term.
	transpositions := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	jaro := (m/float64(len1) + m/float64(len2) + (m-float64(transpositions)/2)/m) / 3

	prefix := 0
	for i := 0; i < len1 && i < len2 && prefix < 4; i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*0.1*(1-jaro)
}
