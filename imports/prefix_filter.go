package imports

import "github.com/armon/go-radix"

// DefaultExcludedPrefixes returns the import prefixes skipped when no others
// are configured.
func DefaultExcludedPrefixes() []string {
	return []string{"java.", "javax.swing"}
}

// PrefixFilter discards imports that start with any configured prefix.
type PrefixFilter struct {
	prefixes *radix.Tree
}

// NewPrefixFilter returns a filter for the given prefixes.
func NewPrefixFilter(prefixes []string) *PrefixFilter {
	tree := radix.New()
	for _, prefix := range prefixes {
		tree.Insert(prefix, struct{}{})
	}
	return &PrefixFilter{prefixes: tree}
}

// Excludes reports whether identifier starts with a configured prefix.
func (f *PrefixFilter) Excludes(identifier string) bool {
	_, _, found := f.prefixes.LongestPrefix(identifier)
	return found
}

// Len returns the number of configured prefixes.
func (f *PrefixFilter) Len() int {
	return f.prefixes.Len()
}
