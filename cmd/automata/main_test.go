package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), "automata %v", args)
	return out.String()
}

func TestRunSaveAndLibrary(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	db := filepath.Join(dir, "library.db")

	out := execute(t, "run", "elementary", "--rule", "90", "-n", "3", "--save", "sierpinski", "--db", db)
	assert.Contains(t, out, "rule 90  gen 3  pop 9")
	assert.Contains(t, out, "   █\n  █ █\n █   █\n█ █ █ █")

	out = execute(t, "library", "list", "elementary", "--db", db)
	assert.Contains(t, out, "sierpinski")

	file := filepath.Join(dir, "sierpinski.yaml")
	execute(t, "library", "export", "1", file, "--db", db)
	execute(t, "library", "delete", "1", "--db", db)

	out = execute(t, "library", "list", "--db", db)
	assert.Contains(t, out, "No saved states yet.")

	execute(t, "library", "import", file, "--db", db)
	out = execute(t, "library", "show", "2", "--db", db)
	assert.Contains(t, out, "#2 sierpinski")
	assert.Contains(t, out, "█ █ █ █")
}

func TestRunUnknownKind(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	rootCmd.SetArgs([]string{"run", "nope"})
	assert.ErrorContains(t, rootCmd.Execute(), "unknown simulation")
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	out := execute(t, "list", "--db", filepath.Join(dir, "library.db"))
	for _, want := range []string{"elementary", "life", "twod", "glider", "The library is empty."} {
		assert.Contains(t, out, want)
	}
}
