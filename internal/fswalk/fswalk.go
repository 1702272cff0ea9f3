// Package fswalk walks a directory tree depth-first, following symbolic links
// the way a plain "is this a file or a directory" check would.
package fswalk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// VisitFunc is called with the path of every matching regular file.
// Returning an error stops the walk.
type VisitFunc func(path string) error

// Files walks root and calls visit for every regular file whose path ends
// with suffix. Symbolic links are resolved: links to directories are walked
// under the link's own path, links to regular files are visited, and dangling
// links are skipped. Anything that is neither a regular file nor a directory
// (FIFOs, sockets, devices) is skipped. A directory that links back to one of
// its ancestors is not walked again.
func Files(root, suffix string, visit VisitFunc) error {
	return walk(root, suffix, visit, make(map[string]bool))
}

func walk(dir, suffix string, visit VisitFunc, ancestors map[string]bool) error {
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	if ancestors[realDir] {
		return nil
	}
	ancestors[realDir] = true
	defer delete(ancestors, realDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		mode, ok := entryType(path, entry)
		if !ok {
			continue
		}

		switch {
		case mode.IsDir():
			if err := walk(path, suffix, visit, ancestors); err != nil {
				return err
			}
		case mode.IsRegular():
			if !strings.HasSuffix(path, suffix) {
				continue
			}
			if err := visit(path); err != nil {
				return err
			}
		}
	}

	return nil
}

// entryType reports the type of the file an entry refers to, following a
// symbolic link. Dangling links report false.
func entryType(path string, entry fs.DirEntry) (fs.FileMode, bool) {
	mode := entry.Type()
	if mode&fs.ModeSymlink == 0 {
		return mode, true
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.Mode().Type(), true
}
