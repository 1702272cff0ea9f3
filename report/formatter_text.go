package report

import (
	"strings"

	"github.com/LegacyCodeHQ/jardeps/resolution"
)

const (
	archivesHeader   = "List of JARs containing imports:"
	unresolvedHeader = "List of Java sources with imports not found in JARs:"
)

// TextFormatter renders the two-part plain text report.
type TextFormatter struct{}

// Format lists the resolved archives, then every file with unresolved
// imports. Each unresolved import is followed by ", ", the last one included.
func (f *TextFormatter) Format(r *resolution.Report, opts FormatOptions) (string, error) {
	var sb strings.Builder

	writeHeader(&sb, archivesHeader)
	for _, archive := range r.ArchiveList(opts.SortByFileName) {
		sb.WriteString(archive)
		sb.WriteString("\n")
	}

	if len(r.Unresolved) == 0 {
		return sb.String(), nil
	}

	writeHeader(&sb, unresolvedHeader)
	for _, file := range r.UnresolvedFiles() {
		sb.WriteString(file)
		sb.WriteString(": ")
		for _, identifier := range r.Unresolved[file] {
			sb.WriteString(identifier)
			sb.WriteString(", ")
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func writeHeader(sb *strings.Builder, title string) {
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", len(title)))
	sb.WriteString("\n")
}
