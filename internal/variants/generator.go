package variants

import (
	"strings"

	"github.com/kevinflint-cs2/watchtower/internal/match"
)

// Substitution tables, applied in order. Homoglyph swaps replace only the
// first occurrence in the base, so each pair yields at most one variant per
// domain.
var (
	homoglyphs = []struct{ from, to string }{
		{"o", "0"},
		{"l", "1"},
		{"i", "l"},
		{"a", "@"},
		{"e", "3"},
		{"s", "5"},
	}
	prefixes = []string{"the", "my", "go", "work", "job"}
	suffixes = []string{"career", "hr", "login", "secure"}
	altTLDs  = []string{"co", "cm", "net", "org"}
)

// Generate expands every approved domain into its squatting variants:
// homoglyph substitutions, brand prefixes, brand suffixes in joined and
// hyphenated form, and TLD swaps. The result accumulates across all approved
// domains into one set ordered by first generation. Pure and deterministic;
// identical input always yields the identical ordered output.
func Generate(approved *match.Set) *match.Set {
	out := match.NewSet()
	for _, domain := range approved.Items() {
		base, tld := splitTLD(domain)

		for _, h := range homoglyphs {
			if strings.Contains(base, h.from) {
				out.Add(strings.Replace(base, h.from, h.to, 1) + "." + tld)
			}
		}
		for _, prefix := range prefixes {
			out.Add(prefix + base + "." + tld)
		}
		for _, suffix := range suffixes {
			out.Add(base + suffix + "." + tld)
			out.Add(base + "-" + suffix + "." + tld)
		}
		for _, alt := range altTLDs {
			if alt != tld {
				out.Add(base + "." + alt)
			}
		}
	}
	return out
}

// splitTLD separates a domain at its last dot. A string without a dot keeps
// everything as base and defaults the tld to com.
func splitTLD(domain string) (base, tld string) {
	idx := strings.LastIndex(domain, ".")
	if idx < 0 {
		return domain, "com"
	}
	return domain[:idx], domain[idx+1:]
}
