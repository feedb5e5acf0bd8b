package formatter

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/yildizm/cloctop/internal/view"
)

// textFormatter renders a report as an aligned plain-text table
type textFormatter struct{}

// NewText creates a new text formatter
func NewText() Formatter {
	return &textFormatter{}
}

func (f *textFormatter) Format(report *Report) ([]byte, error) {
	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	if report.Header.ClocVersion != "" {
		fmt.Fprintf(tw, "cloc v%s\t%.2fs elapsed\n\n", report.Header.ClocVersion, report.Header.ElapsedSeconds)
	}

	if report.View.Empty() {
		fmt.Fprintf(tw, "no files found under %s\n", report.Path)
		return flush(tw, &b)
	}

	for i, col := range report.View.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col.Title)
	}
	fmt.Fprintln(tw)

	for _, row := range report.View.Rows {
		writeRow(tw, report.View.Columns, row)
	}

	fmt.Fprintln(tw)
	writeRow(tw, report.View.Columns, view.TotalRow(report.Totals))

	if len(report.Warnings) > 0 {
		fmt.Fprintf(tw, "\n%d record(s) dropped:\n", len(report.Warnings))
		for _, w := range report.Warnings {
			fmt.Fprintf(tw, "  %s\n", w)
		}
	}

	return flush(tw, &b)
}

func writeRow(tw *tabwriter.Writer, cols []view.Column, row view.ViewRow) {
	for i, col := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		writeCell(tw, col, row)
	}
	fmt.Fprintln(tw)
}

func writeCell(tw *tabwriter.Writer, col view.Column, row view.ViewRow) {
	switch col.ID {
	case view.ColumnPath, view.ColumnGroup:
		fmt.Fprint(tw, row.Label)
	case view.ColumnFiles:
		fmt.Fprintf(tw, "%d", row.Files)
	case view.ColumnCode:
		fmt.Fprintf(tw, "%d", row.Code)
	case view.ColumnComment:
		fmt.Fprintf(tw, "%d", row.Comment)
	case view.ColumnBlank:
		fmt.Fprintf(tw, "%d", row.Blank)
	case view.ColumnTotal:
		fmt.Fprintf(tw, "%d", row.Total)
	}
}

func flush(tw *tabwriter.Writer, b *bytes.Buffer) ([]byte, error) {
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("flush table: %w", err)
	}
	return b.Bytes(), nil
}
