package harpoon

// Reason classifies why a candidate was flagged, evaluated against its best
// matching target.
type Reason string

const (
	ReasonCharSwap   Reason = "char_swap"
	ReasonHomoglyph  Reason = "homoglyph"
	ReasonTLDSwap    Reason = "tld_swap"
	ReasonSimilarity Reason = "similarity"
)

// MatchSource reports which pool the best-matching target belongs to.
type MatchSource string

const (
	SourceApproved MatchSource = "approved"
	SourceVariant  MatchSource = "variant"
)

// Candidate is one flagged domain together with the target it resembles.
// Records are immutable once built.
type Candidate struct {
	Domain      string      `json:"domain"`
	LooksLike   string      `json:"looks_like"`
	Similarity  float64     `json:"similarity"`
	Reason      Reason      `json:"reason"`
	MatchedFrom MatchSource `json:"matched_from"`
}
