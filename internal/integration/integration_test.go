// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"efdkeys/internal/app"
)

func write(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	k1 := strings.Repeat("1", 44)
	k2 := strings.Repeat("2", 44)
	k3 := strings.Repeat("3", 44)

	// k2 is shared by both files; k3 sits after the sentinel and must be
	// invisible. A Windows-1252 "ç" (0xE7) exercises the decode fallback.
	write(t, dir, "PISCOFINS_jan.txt", []byte(
		"|0000|ABERTURA|\n"+
			"|C100|"+k2+"|\n"+
			"|9999|2|\n"+
			"|C100|"+k3+"|\n"))
	efd := []byte("|0000|SERVI")
	efd = append(efd, 0xE7, 0x4F)
	efd = append(efd, []byte("|\n|C100|"+k1+"|"+k2+"|\n|9999|2|\n")...)
	write(t, dir, "piscofins_fev.TXT", efd)
	write(t, dir, "outros.txt", []byte("|C100|"+k3+"|\n")) // name does not match

	output := filepath.Join(dir, "chaves.txt")
	code, stdout, stderr := run(t, "--path", dir, "--output", output)
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "2 chaves")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, k1+"\n"+k2+"\n", string(data))
}

func TestEndToEndIdempotent(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "PISCOFINS_a.txt", []byte("|C100|"+strings.Repeat("7", 44)+"|\n"))
	output := filepath.Join(dir, "chaves.txt")

	read := func() string {
		code, _, stderr := run(t, "--path", dir, "--output", output, "--threads", "4")
		require.Equal(t, 0, code, "stderr: %s", stderr)
		data, err := os.ReadFile(output)
		require.NoError(t, err)
		return string(data)
	}
	assert.Equal(t, read(), read())
}

func TestVerboseListsKeys(t *testing.T) {
	dir := t.TempDir()
	k := strings.Repeat("4", 44)
	write(t, dir, "PISCOFINS_a.txt", []byte("|C100|"+k+"|\n"))

	code, stdout, _ := run(t, "--path", dir, "--output", filepath.Join(dir, "o.txt"), "--verbose")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, k)
}

func TestNoMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "chaves.txt")
	code, stdout, _ := run(t, "--path", dir, "--output", output)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "0 chaves")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"--path", filepath.Join(t.TempDir(), "missing")},
		{"--threads", "-1"},
		{"--no-such-flag"},
	}
	for _, argv := range cases {
		code, _, stderr := run(t, argv...)
		assert.Equal(t, 2, code, "argv=%v stderr=%s", argv, stderr)
	}
}

func TestDepthFlagsLimitTraversal(t *testing.T) {
	dir := t.TempDir()
	k1 := strings.Repeat("1", 44)
	k2 := strings.Repeat("2", 44)
	write(t, dir, "PISCOFINS_top.txt", []byte("|C100|"+k1+"|\n"))
	write(t, dir, filepath.Join("sub", "PISCOFINS_low.txt"), []byte("|C100|"+k2+"|\n"))

	output := filepath.Join(dir, "chaves.txt")
	code, _, stderr := run(t, "--path", dir, "--output", output, "--max-depth", "1")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, k1+"\n", string(data))
}
