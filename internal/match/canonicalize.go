package match

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	maxDomainRunes = 253
	maxLabelRunes  = 63
)

// hostPrefixes are stripped from the front of a domain. The pass repeats
// until nothing matches, so stacked prefixes ("www.m.ftp.x.com") all come
// off and the result is stable under re-canonicalization.
var hostPrefixes = []string{"www.", "m.", "ftp."}

// Canonicalization failure reasons.
var (
	ErrEmptyDomain   = errors.New("domain is empty after canonicalization")
	ErrDomainTooLong = errors.New("domain is longer than 253 characters")
	ErrMissingDot    = errors.New("domain contains no dot")
	ErrInvalidLabel  = errors.New("invalid label")
)

// Rejected records an input dropped during canonicalization.
type Rejected struct {
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// CanonicalizeDomain reduces a raw domain string to canonical form:
// lowercased, NFC-normalized, trimmed of surrounding whitespace, trailing
// dots and common host prefixes. It returns the reason the value cannot be
// used when validation fails.
func CanonicalizeDomain(raw string) (string, error) {
	d := norm.NFC.String(strings.ToLower(strings.TrimSpace(raw)))
	d = strings.TrimRight(d, ".")

	for stripped := true; stripped; {
		stripped = false
		for _, prefix := range hostPrefixes {
			if strings.HasPrefix(d, prefix) {
				d = d[len(prefix):]
				stripped = true
			}
		}
	}

	if d == "" {
		return "", ErrEmptyDomain
	}
	if utf8.RuneCountInString(d) > maxDomainRunes {
		return "", ErrDomainTooLong
	}
	if !strings.Contains(d, ".") {
		return "", ErrMissingDot
	}
	for _, label := range strings.Split(d, ".") {
		if err := checkLabel(label); err != nil {
			return "", err
		}
	}
	return d, nil
}

// Canonicalize runs CanonicalizeDomain over a batch. Survivors keep their
// first-seen order with exact duplicates collapsed; dropped entries are
// returned alongside with the reason they were rejected. A malformed entry
// never fails the batch.
func Canonicalize(raw []string) (*Set, []Rejected) {
	set := NewSet()
	var rejected []Rejected
	for _, entry := range raw {
		canonical, err := CanonicalizeDomain(entry)
		if err != nil {
			rejected = append(rejected, Rejected{Value: entry, Reason: err.Error()})
			continue
		}
		set.Add(canonical)
	}
	return set, rejected
}

func checkLabel(label string) error {
	if label == "" {
		return fmt.Errorf("empty label: %w", ErrInvalidLabel)
	}
	if utf8.RuneCountInString(label) > maxLabelRunes {
		return fmt.Errorf("label %q is longer than %d characters: %w", label, maxLabelRunes, ErrInvalidLabel)
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return fmt.Errorf("label %q starts or ends with a hyphen: %w", label, ErrInvalidLabel)
	}
	for _, r := range label {
		if r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("label %q contains %q: %w", label, r, ErrInvalidLabel)
		}
	}
	return nil
}
