package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"PISCOFINS_2024.txt", true},
		{"piscofins_2024.TXT", true},
		{"PisCofins-jan.txt", true},
		{"PISCOFINS_2024.csv", false},
		{"SPED_PISCOFINS.txt", false},
		{"notas.txt", false},
		{"PISCOFINS", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Matches(tc.name), tc.name)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("|0000|x|\n"), 0o644))
}

func TestFilesFiltersAndRecurses(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "PISCOFINS_a.txt"))
	touch(t, filepath.Join(root, "outros.txt"))
	touch(t, filepath.Join(root, "sub", "piscofins_b.txt"))
	touch(t, filepath.Join(root, "sub", "deep", "PISCOFINS_c.TXT"))

	files, err := Files(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "PISCOFINS_a.txt"),
		filepath.Join(root, "sub", "deep", "PISCOFINS_c.TXT"),
		filepath.Join(root, "sub", "piscofins_b.txt"),
	}, files)
}

func TestFilesDepthBounds(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "PISCOFINS_top.txt"))
	touch(t, filepath.Join(root, "sub", "PISCOFINS_mid.txt"))
	touch(t, filepath.Join(root, "sub", "deep", "PISCOFINS_low.txt"))

	files, err := Files(root, Options{MaxDepth: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "PISCOFINS_top.txt")}, files)

	files, err = Files(root, Options{MinDepth: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "sub", "PISCOFINS_mid.txt"),
		filepath.Join(root, "sub", "deep", "PISCOFINS_low.txt"),
	}, files)
}

func TestFilesEmptyDir(t *testing.T) {
	files, err := Files(t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, files)
}
