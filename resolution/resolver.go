package resolution

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/LegacyCodeHQ/jardeps/classindex"
	"github.com/LegacyCodeHQ/jardeps/imports"
	"github.com/LegacyCodeHQ/jardeps/internal/fswalk"
	"github.com/rs/zerolog"
)

// Resolver looks up the imports of a source tree in a class index.
type Resolver struct {
	index  classindex.ClassIndex
	filter *imports.PrefixFilter
	logger zerolog.Logger
}

// NewResolver returns a Resolver that skips imports excluded by filter.
func NewResolver(index classindex.ClassIndex, filter *imports.PrefixFilter, logger zerolog.Logger) *Resolver {
	return &Resolver{
		index:  index,
		filter: filter,
		logger: logger,
	}
}

// ResolveTree walks root depth-first and resolves the imports of every
// source file beneath it. A source file that cannot be read aborts the walk.
func (r *Resolver) ResolveTree(root string) (*Report, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
	}

	report := NewReport()
	err = fswalk.Files(absRoot, imports.SourceSuffix, func(path string) error {
		r.logger.Info().Msgf("Scanning imports for: %s", path)
		return r.resolveFile(absRoot, path, report)
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *Resolver) resolveFile(root, path string, report *Report) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open source %s: %w", path, err)
	}
	defer file.Close()

	declarations, err := imports.ParseImports(file)
	if err != nil {
		return fmt.Errorf("failed to read source %s: %w", path, err)
	}

	unresolved := []string{}
	used := []string{}
	seen := make(map[string]bool)
	for _, declaration := range declarations {
		identifier := declaration.Identifier
		r.logger.Debug().Int("line", declaration.Line).Msgf("Found import for: %s", identifier)

		if r.filter.Excludes(identifier) {
			continue
		}

		archives, ok := r.index.Lookup(identifier)
		if !ok {
			unresolved = append(unresolved, identifier)
			continue
		}

		for _, archive := range archives {
			report.Archives[archive] = struct{}{}
			if !seen[archive] {
				seen[archive] = true
				used = append(used, archive)
			}
		}
	}

	if len(unresolved) > 0 {
		report.Unresolved[filepath.Base(path)] = unresolved
	}
	if len(used) > 0 {
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}
		report.Usages[filepath.ToSlash(relPath)] = used
	}

	return nil
}
