package report

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/jardeps/resolution"
)

// JSONFormatter formats resolution reports as JSON.
type JSONFormatter struct{}

type jsonReport struct {
	Archives   []string            `json:"archives"`
	Unresolved map[string][]string `json:"unresolved"`
	Usages     map[string][]string `json:"usages"`
}

// Format converts the resolution report to JSON format.
func (f *JSONFormatter) Format(r *resolution.Report, opts FormatOptions) (string, error) {
	data, err := json.MarshalIndent(jsonReport{
		Archives:   r.ArchiveList(opts.SortByFileName),
		Unresolved: r.Unresolved,
		Usages:     r.Usages,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
