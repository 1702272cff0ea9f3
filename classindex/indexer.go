package classindex

import (
	"fmt"
	"path/filepath"

	"github.com/LegacyCodeHQ/jardeps/internal/fswalk"
	"github.com/rs/zerolog"
)

// Indexer builds a ClassIndex from a directory tree of archives.
type Indexer struct {
	logger zerolog.Logger
}

// NewIndexer returns an Indexer that reports progress to logger.
func NewIndexer(logger zerolog.Logger) *Indexer {
	return &Indexer{logger: logger}
}

// IndexTree walks root depth-first and indexes every archive found beneath
// it, following symbolic links. Any archive that cannot be read aborts the
// walk.
func (i *Indexer) IndexTree(root string) (ClassIndex, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
	}

	idx := New()
	archiveCount := 0

	err = fswalk.Files(absRoot, ArchiveSuffix, func(path string) error {
		i.logger.Info().Msgf("Scanning entries for: %s", path)
		if err := indexArchive(idx, path); err != nil {
			return err
		}
		archiveCount++
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.logger.Info().
		Int("archives", archiveCount).
		Int("classes", len(idx)).
		Msg("Indexing complete")

	return idx, nil
}

func indexArchive(idx ClassIndex, archivePath string) error {
	classNames, err := ArchiveClassNames(archivePath)
	if err != nil {
		return err
	}

	for _, className := range classNames {
		idx.Add(className, archivePath)
	}
	return nil
}
