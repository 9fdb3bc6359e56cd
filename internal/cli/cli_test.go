package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "points.csv")
	data := "id,x,y\na,2,3\nb,5,4\nc,9,6\nd,4,7\ne,8,1\nf,7,2\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(data), 0o644))
	db := filepath.Join(dir, "db", "points.db")
	out, err := run(t, "load", csvPath, "--db", db, "--dataset", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 6 points into demo (6 total)")
	return db
}

func TestNearestNeighbourCommand(t *testing.T) {
	db := setup(t)
	out, err := run(t, "nn", "9,2", "2,3", "--db", db, "--dataset", "demo", "--workers", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "9,2\te\t1.414"), lines[0])
	assert.Equal(t, "2,3\ta\t0", lines[1])

	_, err = run(t, "nn", "9,2,1", "--db", db, "--dataset", "demo")
	assert.Error(t, err)
	_, err = run(t, "nn", "x,1", "--db", db, "--dataset", "demo")
	assert.Error(t, err)
}

func TestTreeCommand(t *testing.T) {
	db := setup(t)
	out, err := run(t, "tree", "--db", db, "--dataset", "demo")
	require.NoError(t, err)
	want := `* 2,3 /0
  R 5,4 /1
    L 8,1 /0
      L 7,2 /1
    R 9,6 /0
      L 4,7 /1
`
	assert.Equal(t, want, out)
}

func TestLeavesCommand(t *testing.T) {
	db := setup(t)
	out, err := run(t, "leaves", "--db", db, "--dataset", "demo")
	require.NoError(t, err)
	assert.Equal(t, "0\t2,3\n1\t4,7\n2\t8,1\n", out)
}

func TestQuantizeCommand(t *testing.T) {
	db := setup(t)
	out, err := run(t, "quantize", "--depth", "1", "--db", db, "--dataset", "demo")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1\t8.5,3.5", lines[1])
}

func TestEmptyDataset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "points.db")
	_, err := run(t, "tree", "--db", db, "--dataset", "missing")
	assert.ErrorContains(t, err, "dataset missing is empty")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "points.db")
	_, err := run(t, "load", filepath.Join(dir, "nope.csv"), "--db", db)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("a,1,2\nb\n"), 0o644))
	_, err = run(t, "load", bad, "--db", db)
	assert.ErrorContains(t, err, "bad.csv:2")
}
