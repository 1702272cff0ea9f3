package report

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/jardeps/resolution"
)

// FormatOptions contains optional parameters for formatting a resolution report.
type FormatOptions struct {
	// SortByFileName orders archives by file name instead of full path
	SortByFileName bool
}

// Formatter is the interface that all report formatters must implement.
type Formatter interface {
	// Format converts a resolution report to a formatted string representation.
	Format(r *resolution.Report, opts FormatOptions) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
func NewFormatter(format string) (Formatter, error) {
	switch OutputFormat(format) {
	case OutputFormatText:
		return &TextFormatter{}, nil
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	case OutputFormatDOT:
		return &DOTFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, SupportedFormatList())
	}
}

// SupportedFormatList returns the supported format names joined by ", ".
func SupportedFormatList() string {
	formats := SupportedFormats()
	names := make([]string, 0, len(formats))
	for _, format := range formats {
		names = append(names, format.String())
	}
	return strings.Join(names, ", ")
}
