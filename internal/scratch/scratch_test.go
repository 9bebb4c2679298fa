package scratch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravenscale/workbench/internal/scratch"
)

func TestAcquireCreatesUniqueDir(t *testing.T) {
	dir := t.TempDir()
	a, err := scratch.Acquire(scratch.Config{Root: dir, Name: "file_enum"})
	require.NoError(t, err)
	require.DirExists(t, a.Path())
	require.Contains(t, filepath.Base(a.Path()), "file_enum")

	b, err := scratch.Acquire(scratch.Config{Root: dir, Name: "file_enum"})
	require.NoError(t, err)
	require.NotEqual(t, a.Path(), b.Path())
}

func TestReleaseRemovesTree(t *testing.T) {
	dir := t.TempDir()
	a, err := scratch.Acquire(scratch.Config{Root: dir, Name: "metadata_ops"})
	require.NoError(t, err)
	require.NoError(t, a.CreateFile("a/b/c.bin", 4096, scratch.Zero, 1))
	require.NoError(t, a.Release())
	_, statErr := os.Stat(a.Path())
	require.True(t, os.IsNotExist(statErr))
}

func TestCreateFileSizeAndPattern(t *testing.T) {
	dir := t.TempDir()
	a, err := scratch.Acquire(scratch.Config{Root: dir})
	require.NoError(t, err)
	defer a.Release()

	require.NoError(t, a.CreateFile("zero.bin", 10, scratch.Zero, 1))
	data, err := os.ReadFile(filepath.Join(a.Path(), "zero.bin"))
	require.NoError(t, err)
	require.Len(t, data, 10)
	for _, b := range data {
		require.Equal(t, byte(0), b)
	}

	require.NoError(t, a.CreateFile("rand.bin", 4096, scratch.Random, 42))
	data2, err := os.ReadFile(filepath.Join(a.Path(), "rand.bin"))
	require.NoError(t, err)
	require.Len(t, data2, 4096)
}

func TestCreateFileDeterministicForSameSeed(t *testing.T) {
	dir := t.TempDir()
	a, err := scratch.Acquire(scratch.Config{Root: dir})
	require.NoError(t, err)
	defer a.Release()

	require.NoError(t, a.CreateFile("a.bin", 2048, scratch.Random, 7))
	require.NoError(t, a.CreateFile("b.bin", 2048, scratch.Random, 7))
	a1, _ := os.ReadFile(filepath.Join(a.Path(), "a.bin"))
	b1, _ := os.ReadFile(filepath.Join(a.Path(), "b.bin"))
	require.Equal(t, a1, b1)
}

func TestCreateTreeLayout(t *testing.T) {
	dir := t.TempDir()
	a, err := scratch.Acquire(scratch.Config{Root: dir})
	require.NoError(t, err)
	defer a.Release()

	require.NoError(t, a.CreateTree(3, 4, 128, scratch.Text, 1))

	entries, err := os.ReadDir(a.Path())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	files, err := os.ReadDir(filepath.Join(a.Path(), "dir-00000"))
	require.NoError(t, err)
	require.Len(t, files, 4)
}
