package fswalk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, root, suffix string) []string {
	t.Helper()

	visited := []string{}
	err := Files(root, suffix, func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return visited
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFiles_DepthFirstBySuffix(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.jar"))
	writeFile(t, filepath.Join(root, "nested", "deeper", "b.jar"))
	writeFile(t, filepath.Join(root, "notes.txt"))
	writeFile(t, filepath.Join(root, "upper.JAR"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.jar"), 0o755))

	assert.Equal(t, []string{"a.jar", "nested/deeper/b.jar"}, collect(t, root, ".jar"))
}

func TestFiles_SymlinkedDirectoryIsWalked(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "inner.jar"))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "libs.jar")))

	assert.Equal(t, []string{"libs.jar/inner.jar"}, collect(t, root, ".jar"))
}

func TestFiles_SymlinkedFileIsVisited(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "real.jar")
	writeFile(t, target)
	require.NoError(t, os.Symlink(target, filepath.Join(root, "alias.jar")))

	assert.Equal(t, []string{"alias.jar"}, collect(t, root, ".jar"))
}

func TestFiles_DanglingSymlinkIsSkipped(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.jar"), filepath.Join(root, "stale.jar")))
	writeFile(t, filepath.Join(root, "ok.jar"))

	assert.Equal(t, []string{"ok.jar"}, collect(t, root, ".jar"))
}

func TestFiles_SymlinkCycleTerminates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.jar"))
	require.NoError(t, os.Symlink(root, filepath.Join(root, "sub", "loop")))

	assert.Equal(t, []string{"sub/a.jar"}, collect(t, root, ".jar"))
}

func TestFiles_SameDirectoryLinkedTwiceIsWalkedTwice(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "shared.jar"))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "one")))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "two")))

	assert.Equal(t, []string{"one/shared.jar", "two/shared.jar"}, collect(t, root, ".jar"))
}

func TestFiles_VisitErrorStopsWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.jar"))
	writeFile(t, filepath.Join(root, "b.jar"))
	stop := errors.New("stop")

	calls := 0
	err := Files(root, ".jar", func(string) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestFiles_MissingRoot(t *testing.T) {
	err := Files(filepath.Join(t.TempDir(), "missing"), ".jar", func(string) error { return nil })

	require.Error(t, err)
}
