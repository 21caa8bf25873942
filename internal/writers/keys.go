// internal/writers/keys.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteKeys writes keys to w, one per line. Callers pass the already-sorted
// list; no ordering happens here.
func WriteKeys(w io.Writer, keys []string) error {
	bw := bufio.NewWriter(w)
	for _, k := range keys {
		if _, err := bw.WriteString(k); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteKeyFile writes the key list to path, replacing any previous content.
func WriteKeyFile(path string, keys []string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	if err := WriteKeys(fh, keys); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
