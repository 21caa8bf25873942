// internal/keymatch/keymatch.go
package keymatch

import "regexp"

// KeyLen is the fixed length of a fiscal document key.
const KeyLen = 44

// A run of exactly 44 digits, bounded on each side by a word boundary or a
// non-digit. A 45-digit run matches neither alignment, so longer numeric
// strings never produce false positives.
const pattern = `(?:\b|\D)(\d{44})(?:\b|\D)`

// Matcher finds 44-digit fiscal keys in text. Immutable once built and safe
// for concurrent use; construct one at startup and share it across workers.
type Matcher struct {
	re *regexp.Regexp
}

func New() *Matcher {
	return &Matcher{re: regexp.MustCompile(pattern)}
}

// Find returns every non-overlapping key in s, left to right.
func (m *Matcher) Find(s string) []string {
	if len(s) < KeyLen {
		return nil
	}
	var keys []string
	for _, sub := range m.re.FindAllStringSubmatch(s, -1) {
		keys = append(keys, sub[1])
	}
	return keys
}
