package view

import (
	"path/filepath"

	"github.com/yildizm/cloctop/internal/stats"
)

// noneBucket collects records whose group key is empty or unknown, so they
// are shown rather than dropped.
const noneBucket = "(none)"

// Grouper projects raw records into one of the grouping views.
type Grouper struct {
	// DirKey derives the directory-mode partition key from a file path.
	// cloc itself reports this dimension as the containing directory, so the
	// default follows suit; a different key function (e.g. file extension)
	// slots in without touching the aggregation.
	DirKey func(path string) string
}

// NewGrouper returns a Grouper with the default directory key function.
func NewGrouper() *Grouper {
	return &Grouper{DirKey: dirOf}
}

func dirOf(path string) string {
	return filepath.ToSlash(filepath.Dir(path))
}

// Project builds the view for the given grouping mode. Rows come out in
// ingestion order (file mode) or first-seen partition order (aggregate
// modes); sorting is a separate step.
func (g *Grouper) Project(records []stats.Record, key GroupKey) View {
	switch key {
	case GroupByLanguage:
		return g.aggregate(records, key, "language", func(r stats.Record) string { return r.Language })
	case GroupByDirectory:
		return g.aggregate(records, key, "directory", func(r stats.Record) string { return g.DirKey(r.Path) })
	default:
		return g.perFile(records)
	}
}

func (g *Grouper) perFile(records []stats.Record) View {
	rows := make([]ViewRow, len(records))
	for i, r := range records {
		rows[i] = ViewRow{
			Label:   r.Path,
			Code:    r.Code,
			Comment: r.Comment,
			Blank:   r.Blank,
			Total:   r.Total(),
			ord:     i,
		}
	}
	return View{Key: GroupByFile, Rows: rows, Columns: fileColumns()}
}

// aggregate partitions records by the key function. Partition keys are
// case-sensitive exact matches; every record lands in exactly one row.
func (g *Grouper) aggregate(records []stats.Record, key GroupKey, title string, keyFn func(stats.Record) string) View {
	index := make(map[string]int)
	rows := make([]ViewRow, 0)

	for i, r := range records {
		label := keyFn(r)
		if label == "" {
			label = noneBucket
		}
		at, ok := index[label]
		if !ok {
			at = len(rows)
			index[label] = at
			rows = append(rows, ViewRow{Label: label, ord: i})
		}
		rows[at].Files++
		rows[at].Code += r.Code
		rows[at].Comment += r.Comment
		rows[at].Blank += r.Blank
		rows[at].Total += r.Total()
	}

	return View{Key: key, Rows: rows, Columns: groupColumns(title)}
}
