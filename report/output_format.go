package report

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatDOT  OutputFormat = "dot"
)

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// SupportedFormats lists every format accepted by NewFormatter.
func SupportedFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON, OutputFormatDOT}
}
