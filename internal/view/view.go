// Package view re-projects cloc records into sortable, re-groupable table
// views and computes their terminal layout.
package view

import "github.com/yildizm/cloctop/internal/stats"

// GroupKey is the active grouping dimension of the table.
type GroupKey int

const (
	GroupByFile GroupKey = iota
	GroupByLanguage
	GroupByDirectory
)

// String returns the human-readable mode name shown in the controls bar.
func (k GroupKey) String() string {
	switch k {
	case GroupByFile:
		return "files"
	case GroupByLanguage:
		return "languages"
	case GroupByDirectory:
		return "directories"
	default:
		return "unknown"
	}
}

func validKey(k GroupKey) bool {
	return k == GroupByFile || k == GroupByLanguage || k == GroupByDirectory
}

// ColumnID identifies a table column across views.
type ColumnID string

const (
	ColumnPath    ColumnID = "path"
	ColumnGroup   ColumnID = "group"
	ColumnFiles   ColumnID = "files"
	ColumnCode    ColumnID = "code"
	ColumnComment ColumnID = "comment"
	ColumnBlank   ColumnID = "blank"
	ColumnTotal   ColumnID = "total"
)

// Column describes one column of a view's schema.
type Column struct {
	ID       ColumnID
	Title    string
	MinWidth int
	Numeric  bool
	Flex     bool // the one variable-width column absorbing leftover space
}

// Column minimums match the fixed sizes the table was originally tuned with.
func fileColumns() []Column {
	return []Column{
		{ID: ColumnPath, Title: "path", MinWidth: 15, Flex: true},
		{ID: ColumnCode, Title: "code", MinWidth: 7, Numeric: true},
		{ID: ColumnComment, Title: "comment", MinWidth: 9, Numeric: true},
		{ID: ColumnBlank, Title: "blank", MinWidth: 7, Numeric: true},
		{ID: ColumnTotal, Title: "total", MinWidth: 7, Numeric: true},
	}
}

func groupColumns(title string) []Column {
	return []Column{
		{ID: ColumnGroup, Title: title, MinWidth: 14, Flex: true},
		{ID: ColumnFiles, Title: "files", MinWidth: 7, Numeric: true},
		{ID: ColumnCode, Title: "code", MinWidth: 7, Numeric: true},
		{ID: ColumnComment, Title: "comment", MinWidth: 9, Numeric: true},
		{ID: ColumnBlank, Title: "blank", MinWidth: 7, Numeric: true},
		{ID: ColumnTotal, Title: "total", MinWidth: 7, Numeric: true},
	}
}

// ViewRow is one displayable, possibly aggregated, line of the table.
// Files is meaningful only in aggregate views (zero in file view).
type ViewRow struct {
	Label   string
	Files   int
	Code    int
	Comment int
	Blank   int
	Total   int

	// ord is the ingestion index of the row's first constituent record.
	// It is the ultimate sort tie-break, keeping row order reproducible
	// across runs on identical input.
	ord int
}

// value returns the numeric cell for a column, or 0 for label columns.
func (r ViewRow) value(col ColumnID) int {
	switch col {
	case ColumnFiles:
		return r.Files
	case ColumnCode:
		return r.Code
	case ColumnComment:
		return r.Comment
	case ColumnBlank:
		return r.Blank
	case ColumnTotal:
		return r.Total
	default:
		return 0
	}
}

// View is the (mode, rows, schema) snapshot currently displayed. Views are
// replaced wholesale on every mode switch or re-sort, never mutated in place.
type View struct {
	Key     GroupKey
	Rows    []ViewRow
	Columns []Column

	// Sort is the ordering currently applied to Rows. The zero value means
	// the rows are still in projection (ingestion) order.
	Sort SortSpec
}

// Empty reports whether the view has no rows to display.
func (v View) Empty() bool {
	return len(v.Rows) == 0
}

// HasColumn reports whether the view's schema contains the column.
func (v View) HasColumn(col ColumnID) bool {
	for _, c := range v.Columns {
		if c.ID == col {
			return true
		}
	}
	return false
}

// TotalRow converts the store's grand totals into a summary row.
func TotalRow(t stats.Totals) ViewRow {
	return ViewRow{
		Label:   "SUM",
		Files:   t.Files,
		Code:    t.Code,
		Comment: t.Comment,
		Blank:   t.Blank,
		Total:   t.Total(),
	}
}
