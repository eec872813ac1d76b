package link

import "github.com/minio/highwayhash"

// hashKey is a fixed, zero-valued highwayhash key: link dedup is a pure
// data-structure concern, not a security boundary, so a stable key keeps
// Set deterministic run to run.
var hashKey = make([]byte, 32)

// Set deduplicates DataLinks by full-tuple equality, hashing each link's
// Key with highwayhash rather than comparing struct values directly.
type Set struct {
	seen  map[uint64]struct{}
	links []DataLink
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: map[uint64]struct{}{}}
}

// Add inserts l if not already present, reporting whether it was new.
func (s *Set) Add(l DataLink) bool {
	h := highwayhash.Sum64([]byte(l.Key()), hashKey)
	if _, ok := s.seen[h]; ok {
		return false
	}
	s.seen[h] = struct{}{}
	s.links = append(s.links, l)
	return true
}

// Links returns every distinct link added, in insertion order.
func (s *Set) Links() []DataLink {
	return s.links
}
