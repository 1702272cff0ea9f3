// Package imports extracts import declarations from source files by line
// pattern matching. It is not a parser: block comments, string literals and
// multi-line declarations are not tracked.
package imports

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// SourceSuffix identifies files that are scanned for imports.
const SourceSuffix = ".java"

var importPattern = regexp.MustCompile(`^\s*import\s+([a-zA-Z0-9.$_*]+).*$`)

// Declaration is one import matched in a source file.
type Declaration struct {
	// Identifier is the imported name as written, wildcard included.
	Identifier string
	// Line is the 1-based line number of the match.
	Line int
}

// ParseLine matches a single source line against the import pattern and
// returns the imported identifier.
func ParseLine(line string) (string, bool) {
	match := importPattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ParseImports reads r line by line and returns every matched import in
// source order. Lines end at "\n", "\r\n" or a lone "\r" and have no
// length limit.
func ParseImports(r io.Reader) ([]Declaration, error) {
	reader := bufio.NewReader(r)

	declarations := []Declaration{}
	lineNumber := 0
	for {
		line, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		lineNumber++
		if identifier, ok := ParseLine(line); ok {
			declarations = append(declarations, Declaration{Identifier: identifier, Line: lineNumber})
		}
	}

	return declarations, nil
}

// readLine returns the next line without its terminator. io.EOF is only
// returned once no bytes remain.
func readLine(reader *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := reader.ReadByte()
		if err == io.EOF && sb.Len() > 0 {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			if next, err := reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = reader.ReadByte()
			}
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}
