// internal/extract/extract.go
package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"efdkeys/internal/decode"
	"efdkeys/internal/keymatch"
	"efdkeys/internal/keyset"
)

// FileReadError reports a file that could not be opened for extraction.
type FileReadError struct {
	File string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("could not open %s for reading: %v", e.File, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// EFD records are short, but a corrupt file may present one enormous line.
const maxLineBytes = 16 * 1024 * 1024

// File scans one EFD file line by line and returns its deduplicated key
// set. The scan ends on end of file or on the sentinel; both are success
// and yield everything accumulated so far. Any decode or read failure
// aborts the file and returns the error annotated with the file identifier.
func File(path string, m *keymatch.Matcher) (keyset.Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &FileReadError{File: path, Err: err}
	}
	defer func() { _ = fh.Close() }()
	return scan(fh, path, m)
}

func scan(r io.Reader, path string, m *keymatch.Matcher) (keyset.Set, error) {
	proc := NewProcessor(decode.New(path), m)
	keys := keyset.New()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	ln := 0
	for sc.Scan() {
		ln++
		switch out := proc.Process(sc.Bytes(), ln); out.Kind {
		case KindKeys:
			for _, k := range out.Keys {
				keys.Add(k)
			}
		case KindSkipped:
			// nothing to scan on this line
		case KindStop:
			return keys, nil
		case KindFailed:
			return nil, out.Err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return keys, nil
}
