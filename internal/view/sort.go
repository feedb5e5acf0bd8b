package view

import (
	"sort"
	"strings"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the marker used in column headers.
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func validDirection(d Direction) bool {
	return d == Ascending || d == Descending
}

// SortSpec is a (column, direction) pair governing row order.
type SortSpec struct {
	Column    ColumnID
	Direction Direction
}

// DefaultSort is the ordering applied the first time any mode is shown.
func DefaultSort() SortSpec {
	return SortSpec{Column: ColumnTotal, Direction: Descending}
}

// Sorter orders view rows and remembers the last explicitly requested
// SortSpec per grouping mode, so a sort choice for one mode survives a
// temporary switch to another and back.
type Sorter struct {
	memory map[GroupKey]SortSpec
}

// NewSorter returns a Sorter with empty per-mode memory.
func NewSorter() *Sorter {
	return &Sorter{memory: make(map[GroupKey]SortSpec)}
}

// SpecFor returns the remembered SortSpec for a mode, or the default when
// none has been recorded yet. It never writes the memory.
func (s *Sorter) SpecFor(key GroupKey) SortSpec {
	if spec, ok := s.memory[key]; ok {
		return spec
	}
	return DefaultSort()
}

// Remember records an explicitly requested SortSpec for a mode.
func (s *Sorter) Remember(key GroupKey, spec SortSpec) {
	s.memory[key] = spec
}

// Sort returns a new view whose rows are ordered by spec. It is a pure
// function of (v, spec): same input, same order.
//
// Requesting the spec already applied keeps the sequence as is. A reversed
// sequence is ordered by its spec even where the comparator would place
// tied rows differently, so re-sorting it must not touch it.
//
// Requesting the opposite direction on the column already active reverses
// the existing sequence outright instead of re-sorting, so toggling is
// exact: sort(sort(V,(c,asc)),(c,desc)) is the precise reverse of the first
// result. Everything else goes through a stable comparator sort with the
// row's ingestion order as the ultimate tie-break.
func (s *Sorter) Sort(v View, spec SortSpec) View {
	rows := make([]ViewRow, len(v.Rows))
	copy(rows, v.Rows)

	switch {
	case v.Sort == spec && spec.Column != "":
		// already ordered by spec
	case v.Sort.Column == spec.Column && v.Sort.Column != "":
		reverseRows(rows)
	default:
		sortRows(rows, spec)
	}

	return View{Key: v.Key, Rows: rows, Columns: v.Columns, Sort: spec}
}

func sortRows(rows []ViewRow, spec SortSpec) {
	label := spec.Column == ColumnPath || spec.Column == ColumnGroup
	sort.SliceStable(rows, func(i, j int) bool {
		var c int
		if label {
			c = strings.Compare(rows[i].Label, rows[j].Label)
		} else {
			c = rows[i].value(spec.Column) - rows[j].value(spec.Column)
		}
		if c == 0 {
			return rows[i].ord < rows[j].ord
		}
		if spec.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
}

func reverseRows(rows []ViewRow) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
