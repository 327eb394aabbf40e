package harpoon

import (
	"errors"

	"github.com/kevinflint-cs2/watchtower/internal/match"
	"github.com/kevinflint-cs2/watchtower/internal/util"
	"github.com/kevinflint-cs2/watchtower/internal/variants"
)

// DefaultThreshold is the similarity cutoff used when none is configured.
const DefaultThreshold = 0.85

// Batch precondition failures.
var (
	ErrNoApprovedDomains  = errors.New("no approved domains survive canonicalization")
	ErrNoCandidateDomains = errors.New("no candidate domains survive canonicalization")
)

// Report is the complete outcome of one scan.
type Report struct {
	CleanApproved []string         `json:"clean_approved"`
	CleanNew      []string         `json:"clean_new"`
	Rejected      []match.Rejected `json:"rejected_domains,omitempty"`
	VariantCount  int              `json:"variant_count"`
	ProcessingMs  int64            `json:"processing_time_ms"`
	Candidates    []Candidate      `json:"candidates"`
}

// Scanner runs the canonicalize, expand, score and rank pipeline over raw
// domain lists. A Scanner holds no state between calls.
type Scanner struct {
	threshold float64
}

// NewScanner validates the similarity threshold and returns a ready Scanner.
func NewScanner(threshold float64) (*Scanner, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	return &Scanner{threshold: threshold}, nil
}

// Threshold returns the configured similarity cutoff.
func (s *Scanner) Threshold() float64 {
	return s.threshold
}

// Scan canonicalizes both lists, expands the approved set into squat
// variants and matches every observed domain against the combined pool.
// Malformed entries are dropped into Report.Rejected rather than failing
// the batch; an entirely empty canonical list is an error.
func (s *Scanner) Scan(approved, observed []string) (*Report, error) {
	timer := util.StartTimer()

	approvedSet, rejectedApproved := match.Canonicalize(approved)
	if approvedSet.Len() == 0 {
		return nil, ErrNoApprovedDomains
	}
	observedSet, rejectedObserved := match.Canonicalize(observed)
	if observedSet.Len() == 0 {
		return nil, ErrNoCandidateDomains
	}

	pool := variants.Generate(approvedSet)
	records, err := Match(observedSet.Items(), approvedSet.Items(), pool.Items(), s.threshold)
	if err != nil {
		return nil, err
	}

	return &Report{
		CleanApproved: approvedSet.Items(),
		CleanNew:      observedSet.Items(),
		Rejected:      append(rejectedApproved, rejectedObserved...),
		VariantCount:  pool.Len(),
		ProcessingMs:  timer.ElapsedMs(),
		Candidates:    records,
	}, nil
}
