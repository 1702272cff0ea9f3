package resolution

import (
	"path/filepath"
	"sort"
)

// Report accumulates the outcome of resolving a source tree against a
// class index. An import either contributes archives or is listed as
// unresolved for its file, never both.
type Report struct {
	// Archives holds every archive that satisfied at least one import.
	Archives map[string]struct{}
	// Unresolved maps a source file's base name to the imports that matched
	// no indexed class, in source order. Files sharing a base name overwrite
	// each other; the last file scanned wins.
	Unresolved map[string][]string
	// Usages maps a source file's root-relative slash path to the archives
	// its imports resolved to, in first-use order.
	Usages map[string][]string
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{
		Archives:   make(map[string]struct{}),
		Unresolved: make(map[string][]string),
		Usages:     make(map[string][]string),
	}
}

// ArchiveList returns the resolved archives in ascending path order. When
// byFileName is set, the list is ordered by the final path component instead,
// keeping path order between archives that share a file name.
func (r *Report) ArchiveList(byFileName bool) []string {
	archives := make([]string, 0, len(r.Archives))
	for archive := range r.Archives {
		archives = append(archives, archive)
	}
	sort.Strings(archives)

	if byFileName {
		sort.SliceStable(archives, func(i, j int) bool {
			return filepath.Base(archives[i]) < filepath.Base(archives[j])
		})
	}

	return archives
}

// UnresolvedFiles returns the file names with unresolved imports in
// ascending order.
func (r *Report) UnresolvedFiles() []string {
	files := make([]string, 0, len(r.Unresolved))
	for file := range r.Unresolved {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// UsageFiles returns the source files that resolved at least one import in
// ascending order.
func (r *Report) UsageFiles() []string {
	files := make([]string, 0, len(r.Usages))
	for file := range r.Usages {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}
