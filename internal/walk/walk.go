// internal/walk/walk.go
package walk

import (
	"io/fs"
	"math"
	"path/filepath"
	"strings"
)

const (
	fileExt    = ".txt"
	namePrefix = "PISCOFINS"
)

// Options bounds the traversal. Depth is relative to the root: the root
// itself is depth 0, entries directly under it are depth 1.
type Options struct {
	MinDepth int
	MaxDepth int // 0 = unbounded
}

// Matches reports whether a file name looks like an EFD Contribuições
// export: .txt extension and PISCOFINS prefix, both case-insensitive.
func Matches(name string) bool {
	return strings.EqualFold(filepath.Ext(name), fileExt) &&
		strings.HasPrefix(strings.ToUpper(name), namePrefix)
}

// Files walks root recursively and returns the matching regular files in
// lexical order. Unreadable subtrees are skipped rather than failing the
// whole traversal.
func Files(root string, opt Options) ([]string, error) {
	maxDepth := opt.MaxDepth
	if maxDepth <= 0 {
		maxDepth = math.MaxInt
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		depth := relDepth(root, path)
		if d.IsDir() {
			if depth >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if depth < opt.MinDepth || depth > maxDepth {
			return nil
		}
		if !d.Type().IsRegular() || !Matches(d.Name()) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func relDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
