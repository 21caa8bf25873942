// internal/keyset/keyset.go
package keyset

import "sort"

// Set holds deduplicated fiscal document keys. Keys are fixed-width digit
// strings, so ascending lexical order equals ascending numeric order.
// A Set is owned by a single goroutine; merging happens via Union.
type Set map[string]struct{}

func New() Set { return make(Set) }

func (s Set) Add(key string) { s[key] = struct{}{} }

func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Set) Len() int { return len(s) }

// Union folds other into s.
func (s Set) Union(other Set) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// Sorted returns the keys in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
