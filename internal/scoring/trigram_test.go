package scoring

import "testing"

func TestTrigram(t *testing.T) {
	testCases := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "example.com", "example.com", 1},
		{"no shared trigrams", "abc", "abd", 0},
		{"partial overlap", "abcd", "bcda", 1.0 / 3},
		{"short identical", "ab", "ab", 1},
		{"short against longer", "ab", "abc", 0},
		{"tld swap", "contoso.net", "contoso.com", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Trigram(tc.a, tc.b)
			if !almostEqual(got, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
			if rev := Trigram(tc.b, tc.a); rev != got {
				t.Fatalf("expected symmetric score, got %v and %v", got, rev)
			}
		})
	}
}
