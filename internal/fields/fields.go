// internal/fields/fields.go
package fields

import "strings"

// Delimiter separates fields in an EFD line. Lines carry a leading and a
// trailing delimiter, e.g. |C100|0|1|...|.
const Delimiter = "|"

// Split breaks a decoded line into trimmed fields, discarding the artifacts
// before the leading delimiter and after the trailing one. A line with no
// delimiter at all yields an empty sequence, never an error.
func Split(line string) []string {
	parts := strings.Split(line, Delimiter)
	parts = parts[1:] // artifact before the leading delimiter
	if len(parts) > 0 {
		parts = parts[:len(parts)-1] // artifact after the trailing delimiter
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
