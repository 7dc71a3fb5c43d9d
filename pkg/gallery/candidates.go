package gallery

// CandidateSet accumulates object IDs for one resolution request.
// IDs are kept in first-seen order and never duplicated. Not safe for
// concurrent use; the resolver fills it sequentially.
type CandidateSet struct {
	ids  []int
	seen map[int]struct{}
}

// NewCandidateSet returns an empty set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{seen: make(map[int]struct{})}
}

// Add inserts ids not already present and returns how many were new.
func (s *CandidateSet) Add(ids ...int) int {
	added := 0
	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.ids = append(s.ids, id)
		added++
	}
	return added
}

// Contains reports whether id is in the set.
func (s *CandidateSet) Contains(id int) bool {
	_, ok := s.seen[id]
	return ok
}

// Len returns the number of distinct IDs.
func (s *CandidateSet) Len() int { return len(s.ids) }

// IDs returns the IDs in insertion order. The slice is a copy.
func (s *CandidateSet) IDs() []int {
	return append([]int(nil), s.ids...)
}
