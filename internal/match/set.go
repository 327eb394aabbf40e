package match

// Set is an ordered collection of domain strings that preserves first-seen
// insertion order and drops exact duplicates.
type Set struct {
	items []string
	seen  map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add appends v unless it is already present and reports whether it was added.
func (s *Set) Add(v string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v is a member.
func (s *Set) Contains(v string) bool {
	_, ok := s.seen[v]
	return ok
}

// Items returns the members in insertion order.
func (s *Set) Items() []string {
	return s.items
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.items)
}
