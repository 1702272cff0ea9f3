package classindex

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// artifactVersion is bumped whenever the persisted layout changes.
const artifactVersion = 1

// ErrInvalidArtifact is returned when a persisted index cannot be decoded
// into the expected shape.
var ErrInvalidArtifact = errors.New("invalid class index artifact")

type artifact struct {
	Version int        `json:"version"`
	Classes ClassIndex `json:"classes"`
}

// Save writes idx to path, replacing any existing file.
func Save(path string, idx ClassIndex) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	if err := Write(writer, idx); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Write encodes idx to w.
func Write(w io.Writer, idx ClassIndex) error {
	if idx == nil {
		idx = New()
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(artifact{Version: artifactVersion, Classes: idx}); err != nil {
		return fmt.Errorf("failed to encode class index: %w", err)
	}
	return nil
}

// Load reads a ClassIndex previously written by Save.
func Load(path string) (ClassIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	idx, err := Read(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return idx, nil
}

// Read decodes a ClassIndex from r.
func Read(r io.Reader) (ClassIndex, error) {
	var a artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if a.Version != artifactVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidArtifact, a.Version)
	}
	if a.Classes == nil {
		return nil, fmt.Errorf("%w: missing classes", ErrInvalidArtifact)
	}
	return a.Classes, nil
}
