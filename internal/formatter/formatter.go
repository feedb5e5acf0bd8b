// Package formatter renders scan results for the non-interactive report
// command.
package formatter

import (
	"fmt"

	"github.com/yildizm/cloctop/internal/cloc"
	"github.com/yildizm/cloctop/internal/stats"
	"github.com/yildizm/cloctop/internal/view"
)

// Report bundles everything a formatter needs to render one scan.
type Report struct {
	Path     string
	Header   cloc.Header
	View     view.View
	Totals   stats.Totals
	Warnings []stats.Warning
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// New returns the formatter for a format name (text, json, csv).
func New(format string) (Formatter, error) {
	switch format {
	case "text":
		return NewText(), nil
	case "json":
		return NewJSON(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (must be one of: text, json, csv)", format)
	}
}
