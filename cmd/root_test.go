package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fasta_buddy_go/tools/session"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_OneRound(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "abc\n-5\n70\nid1\nopis\nJan\nnie\n", "--seed", "7", "--out-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, session.PromptLength+session.MsgInvalidLength+"\n")
	assert.Contains(t, out, session.MsgLengthRange)
	assert.Contains(t, out, "Sekwencja została zapisana do pliku "+filepath.Join(dir, "id1.fasta"))
	assert.Contains(t, out, "Stosunek CG/AT: ")
	assert.True(t, strings.HasSuffix(out, session.MsgFarewell+"\n"))

	raw, err := os.ReadFile(filepath.Join(dir, "id1.fasta"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ">id1 opis", lines[0])
	assert.Len(t, lines[1], 60)
	assert.Len(t, lines[2], 13)
}

func TestRoot_SeedIsReproducible(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	in := "25\ns\nd\nLabel\nnie\n"

	_, _, err := execute(t, in, "--seed", "42", "--out-dir", a)
	require.NoError(t, err)
	_, _, err = execute(t, in, "--seed", "42", "--out-dir", b)
	require.NoError(t, err)

	ra, err := os.ReadFile(filepath.Join(a, "s.fasta"))
	require.NoError(t, err)
	rb, err := os.ReadFile(filepath.Join(b, "s.fasta"))
	require.NoError(t, err)
	assert.Equal(t, string(ra), string(rb))
}

func TestRoot_WidthFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "fasta_buddy.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("width: 10\nout-dir: "+dir+"\n"), 0644))

	_, _, err := execute(t, "25\nw\nd\n\nnie\n", "--config", cfg)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "w.fasta"))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(raw), "\n")) // header + 10 + 10 + 5
}

func TestRoot_InvalidWidth(t *testing.T) {
	_, _, err := execute(t, "", "--width", "0")
	assert.Error(t, err)
}

func TestRoot_WriteFailureIsReported(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, errOut, err := execute(t, "5\nid\nd\nL\n", "--out-dir", dir)
	require.Error(t, err)
	assert.Contains(t, errOut, "session aborted")
}

func TestRoot_Benchmark(t *testing.T) {
	_, errOut, err := execute(t, "5\nb\nd\nL\nnie\n", "--benchmark", "--out-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, errOut, "[Benchmark] Running: fasta_buddy session")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Central Executable:")
}
