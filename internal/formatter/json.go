package formatter

import (
	"encoding/json"

	"github.com/yildizm/cloctop/internal/view"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput is the top-level JSON report structure
type JSONOutput struct {
	Path     string       `json:"path"`
	Cloc     *ClocInfo    `json:"cloc,omitempty"`
	GroupBy  string       `json:"group_by"`
	Rows     []RowOutput  `json:"rows"`
	Total    RowOutput    `json:"total"`
	Warnings []string     `json:"warnings,omitempty"`
}

// ClocInfo carries the external tool's run metadata
type ClocInfo struct {
	Version        string  `json:"version"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// RowOutput is one table row in JSON form
type RowOutput struct {
	Label   string `json:"label"`
	Files   int    `json:"files,omitempty"`
	Code    int    `json:"code"`
	Comment int    `json:"comment"`
	Blank   int    `json:"blank"`
	Total   int    `json:"total"`
}

func (f *jsonFormatter) Format(report *Report) ([]byte, error) {
	output := &JSONOutput{
		Path:    report.Path,
		GroupBy: report.View.Key.String(),
		Rows:    make([]RowOutput, 0, len(report.View.Rows)),
		Total:   toRowOutput(view.TotalRow(report.Totals)),
	}

	if report.Header.ClocVersion != "" {
		output.Cloc = &ClocInfo{
			Version:        report.Header.ClocVersion,
			ElapsedSeconds: report.Header.ElapsedSeconds,
		}
	}

	for _, row := range report.View.Rows {
		output.Rows = append(output.Rows, toRowOutput(row))
	}

	for _, w := range report.Warnings {
		output.Warnings = append(output.Warnings, w.String())
	}

	return json.MarshalIndent(output, "", "  ")
}

func toRowOutput(row view.ViewRow) RowOutput {
	return RowOutput{
		Label:   row.Label,
		Files:   row.Files,
		Code:    row.Code,
		Comment: row.Comment,
		Blank:   row.Blank,
		Total:   row.Total,
	}
}
