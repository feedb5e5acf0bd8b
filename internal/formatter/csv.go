package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/cloctop/internal/view"
)

// csvFormatter formats table rows as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := make([]string, 0, len(report.View.Columns))
	for _, col := range report.View.Columns {
		headers = append(headers, col.Title)
	}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range report.View.Rows {
		if err := writer.Write(toCSVRecord(report.View.Columns, row)); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	if err := writer.Write(toCSVRecord(report.View.Columns, view.TotalRow(report.Totals))); err != nil {
		return nil, fmt.Errorf("failed to write CSV total: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

func toCSVRecord(cols []view.Column, row view.ViewRow) []string {
	record := make([]string, 0, len(cols))
	for _, col := range cols {
		switch col.ID {
		case view.ColumnPath, view.ColumnGroup:
			record = append(record, row.Label)
		case view.ColumnFiles:
			record = append(record, strconv.Itoa(row.Files))
		case view.ColumnCode:
			record = append(record, strconv.Itoa(row.Code))
		case view.ColumnComment:
			record = append(record, strconv.Itoa(row.Comment))
		case view.ColumnBlank:
			record = append(record, strconv.Itoa(row.Blank))
		case view.ColumnTotal:
			record = append(record, strconv.Itoa(row.Total))
		}
	}
	return record
}
