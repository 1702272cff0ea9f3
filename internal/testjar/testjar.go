// Package testjar builds small archives and source trees for tests.
package testjar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

// Write creates an archive at path holding one empty entry per name and
// returns the absolute archive path. Parent directories are created.
func Write(t *testing.T, path string, entryNames ...string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	file, err := os.Create(path)
	require.NoError(t, err, "failed to create archive %s", path)
	defer file.Close()

	writer := zip.NewWriter(file)
	for _, name := range entryNames {
		_, err := writer.Create(name)
		require.NoError(t, err, "failed to add entry %s", name)
	}
	require.NoError(t, writer.Close())

	absPath, err := filepath.Abs(path)
	require.NoError(t, err)
	return absPath
}

// WriteSource creates a text file at path with content and returns its
// absolute path. Parent directories are created.
func WriteSource(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to create file %s", path)

	absPath, err := filepath.Abs(path)
	require.NoError(t, err)
	return absPath
}
