// internal/decode/decode.go
package decode

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// EncodingError means a line decoded under neither UTF-8 nor the fallback
// code page. It is fatal for the containing file: once both fixed encodings
// are ruled out there is no code page assumption left to retry under.
type EncodingError struct {
	File        string
	Line        int
	UTF8Err     error
	FallbackErr error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s:%d: line is not valid UTF-8 (%v) and Windows-1252 fallback failed: %v",
		e.File, e.Line, e.UTF8Err, e.FallbackErr)
}

// Decoder converts raw line bytes to text, trying strict UTF-8 first and
// falling back to a single-byte Western-European code page (Windows-1252).
// Legacy export tooling is known to mix encodings line-by-line, so the
// fallback is applied per line rather than per file.
//
// Not safe for concurrent use: the fallback decoder carries transform state.
// Each file scan owns its own Decoder.
type Decoder struct {
	file     string
	fallback *encoding.Decoder
}

// New returns a Decoder for lines of the named source file.
func New(file string) *Decoder {
	return NewWithFallback(file, charmap.Windows1252)
}

// NewWithFallback substitutes the fallback encoding. Used by tests to force
// the both-encodings-failed path.
func NewWithFallback(file string, enc encoding.Encoding) *Decoder {
	return &Decoder{file: file, fallback: enc.NewDecoder()}
}

// Line decodes the raw bytes of one line. lineNo is 1-based and only used
// for diagnostics.
func (d *Decoder) Line(raw []byte, lineNo int) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	utf8Err := fmt.Errorf("invalid byte at offset %d", invalidOffset(raw))
	decoded, err := d.fallback.Bytes(raw)
	if err != nil {
		return "", &EncodingError{File: d.file, Line: lineNo, UTF8Err: utf8Err, FallbackErr: err}
	}
	return string(decoded), nil
}

// invalidOffset finds the first byte offset at which UTF-8 decoding fails.
func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
