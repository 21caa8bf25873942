// internal/extract/outcome.go
package extract

// Sentinel is the first-field value marking logical end-of-data in an EFD
// file. Everything after it (checksums, trailing metadata) is never scanned.
const Sentinel = "9999"

// Kind classifies what processing one line produced.
type Kind uint8

const (
	// KindKeys: the line was scanned; Outcome.Keys holds the matches
	// (possibly none).
	KindKeys Kind = iota
	// KindSkipped: too few fields to carry data.
	KindSkipped
	// KindStop: the end-of-data sentinel was reached. A successful terminal
	// condition, never an error.
	KindStop
	// KindFailed: a fatal decode failure; Outcome.Err is set.
	KindFailed
)

// Outcome is the tagged per-line result. Produced by a Processor, consumed
// immediately by the file scan loop.
type Outcome struct {
	Kind Kind
	Keys []string
	Err  error
}
