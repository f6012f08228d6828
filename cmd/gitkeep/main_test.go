package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"GitKeep/internal/interface/cli"
	"GitKeep/internal/interface/ui"
)

func TestRun_NoArgsPrintsHelp(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, nil)

	require.NoError(t, err, "run() should return nil when only help is shown")
	require.Contains(t, out.String(), "Usage:")
	require.Empty(t, errOut.String())
}

func TestRun_Scenarios(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	for _, d := range []string{"a", filepath.Join(".git", "b"), "c"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
	var out, errOut bytes.Buffer

	// --- Act ---
	err := run(&out, &errOut, []string{root, "-r", "-m", "keep"})

	// --- Assert ---
	require.NoError(t, err)
	for _, d := range []string{"", "a", "c"} {
		data, err := os.ReadFile(filepath.Join(root, d, ".gitkeep"))
		require.NoError(t, err)
		require.Equal(t, "keep", string(data))
	}
	require.NoFileExists(t, filepath.Join(root, ".git", ".gitkeep"))
	require.NoFileExists(t, filepath.Join(root, ".git", "b", ".gitkeep"))
	require.Empty(t, errOut.String())

	// Remove everything again with the combined flags.
	out.Reset()
	require.NoError(t, run(&out, &errOut, []string{root, "-l", "-r"}))
	for _, d := range []string{"", "a", "c"} {
		require.NoFileExists(t, filepath.Join(root, d, ".gitkeep"))
	}
	require.Contains(t, out.String(), "Removed: ")
}

func TestRun_EmptyMarker(t *testing.T) {
	foo := filepath.Join(t.TempDir(), "foo")
	require.NoError(t, os.Mkdir(foo, 0755))
	var out, errOut bytes.Buffer

	require.NoError(t, run(&out, &errOut, []string{foo, "--empty", "-m", "ignored"}))

	info, err := os.Stat(filepath.Join(foo, ".gitkeep"))
	require.NoError(t, err)
	require.Zero(t, info.Size())
	require.Equal(t, "Created: "+filepath.Join(foo, ".gitkeep")+"\n", out.String())
}

func TestRun_InvalidTargetIsNotFatal(t *testing.T) {
	root := t.TempDir()
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, []string{filepath.Join(root, "missing")})

	require.NoError(t, err)
	require.Contains(t, errOut.String(), "Error: Path does not exist:")
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRun_UsageError(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, []string{"foo", "--bogus"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_Browse(t *testing.T) {
	dir := t.TempDir()
	original := browse
	t.Cleanup(func() { browse = original })

	browse = func(string) (string, error) { return dir, nil }
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"--browse"}))
	require.FileExists(t, filepath.Join(dir, ".gitkeep"))

	browse = func(string) (string, error) { return "", ui.ErrCancelled }
	errOut.Reset()
	err := run(&out, &errOut, []string{"-b"})
	require.ErrorIs(t, err, ui.ErrCancelled)
	// main が一度だけ出力するため、run 自体は何も書かない
	require.Empty(t, errOut.String())
}

func TestRun_EmptyPathArgumentReportsMissing(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, run(&out, &errOut, []string{""}))

	require.Equal(t, "Error: Path does not exist: \n", errOut.String())
	require.NotContains(t, out.String(), "Usage:")
}
