package classindex

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/zip"
)

const (
	// ArchiveSuffix identifies files that are scanned as archives.
	ArchiveSuffix = ".jar"
	// ClassSuffix identifies archive entries that are compiled classes.
	ClassSuffix = ".class"
)

// ClassNameFromEntry converts an archive entry name such as "com/x/Foo.class"
// into the class name "com.x.Foo". Entries that are not compiled classes
// report false.
func ClassNameFromEntry(entryName string) (string, bool) {
	if !strings.HasSuffix(entryName, ClassSuffix) {
		return "", false
	}

	name := entryName[:len(entryName)-len(ClassSuffix)]
	return strings.ReplaceAll(name, "/", "."), true
}

// ArchiveClassNames opens the archive at archivePath and returns the class
// names of its compiled class entries in archive order.
func ArchiveClassNames(archivePath string) ([]string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer reader.Close()

	names := []string{}
	for _, entry := range reader.File {
		if className, ok := ClassNameFromEntry(entry.Name); ok {
			names = append(names, className)
		}
	}

	return names, nil
}
