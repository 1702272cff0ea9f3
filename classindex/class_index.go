package classindex

// ClassIndex maps a fully-qualified class name to the archives that contain it.
// Archives are listed in discovery order and are not deduplicated.
type ClassIndex map[string][]string

// New returns an empty ClassIndex.
func New() ClassIndex {
	return make(ClassIndex)
}

// Add records that archivePath provides className.
func (idx ClassIndex) Add(className, archivePath string) {
	idx[className] = append(idx[className], archivePath)
}

// Lookup returns the archives recorded for className using an exact match.
func (idx ClassIndex) Lookup(className string) ([]string, bool) {
	archives, ok := idx[className]
	return archives, ok
}
