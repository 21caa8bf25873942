// internal/cli/options.go
package cli

import (
	"fmt"
	"os"
)

// DefaultOutput is the key-list file written into the working directory.
const DefaultOutput = "efd-chaves_eletronicas.txt"

// Options holds all CLI flags.
type Options struct {
	Path     string // root directory searched for EFD exports
	MinDepth int
	MaxDepth int // 0 = unbounded
	Output   string
	Threads  int // 0 = all CPUs
	Verbose  bool
	Time     bool
}

// UsageError marks a validation failure that should render usage and exit
// with the usage code.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Validate checks the flag values before any work starts.
func (o *Options) Validate() error {
	if o.MinDepth < 0 {
		return &UsageError{Err: fmt.Errorf("--min-depth must be >= 0, got %d", o.MinDepth)}
	}
	if o.MaxDepth < 0 {
		return &UsageError{Err: fmt.Errorf("--max-depth must be >= 0, got %d", o.MaxDepth)}
	}
	if o.MaxDepth > 0 && o.MinDepth > o.MaxDepth {
		return &UsageError{Err: fmt.Errorf("--min-depth (%d) exceeds --max-depth (%d)", o.MinDepth, o.MaxDepth)}
	}
	if o.Threads < 0 {
		return &UsageError{Err: fmt.Errorf("--threads must be >= 0, got %d", o.Threads)}
	}
	if o.Output == "" {
		return &UsageError{Err: fmt.Errorf("--output must not be empty")}
	}

	info, err := os.Stat(o.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return &UsageError{Err: fmt.Errorf("path %q was not found", o.Path)}
		}
		return &UsageError{Err: fmt.Errorf("stat %q: %w", o.Path, err)}
	}
	if !info.IsDir() {
		return &UsageError{Err: fmt.Errorf("path %q is not a directory", o.Path)}
	}
	if info.Mode().Perm()&0o200 == 0 {
		return &UsageError{Err: fmt.Errorf("directory %q is read-only", o.Path)}
	}
	return nil
}
