package view

import (
	"strconv"

	"github.com/yildizm/cloctop/internal/stats"
)

// DisplayMode selects between inline and full-terminal rendering.
type DisplayMode int

const (
	Inline DisplayMode = iota
	Fullscreen
)

const (
	headerRows  = 1
	cellPadding = 2 // spaces between adjacent columns

	// minTableHeight leaves room for the column header plus one data row.
	minTableHeight = headerRows + 1

	// chromeRows is the fixed vertical overhead around the table:
	// header bar (2), summary row (1), controls bar (2).
	chromeRows = 5

	// inlineHeightCap bounds the table when rendering inline so the app
	// does not swallow the whole scrollback.
	inlineHeightCap = 12
)

// LayoutPlan holds the computed table bounds and per-column widths for one
// (view, terminal size) pair. It is recomputed wholesale whenever the row
// count, the column schema, or the terminal size changes.
type LayoutPlan struct {
	TableMinHeight int
	TableMaxHeight int
	TableHeight    int
	ColumnWidths   map[ColumnID]int
}

// Width returns the total width of the planned table including padding.
func (p LayoutPlan) Width() int {
	w := 0
	for _, cw := range p.ColumnWidths {
		w += cw
	}
	return w + cellPadding*(len(p.ColumnWidths)-1)
}

// Planner computes table dimensions from terminal size and data shape.
// It is stateless: identical arguments always produce an identical plan.
type Planner struct{}

// Plan sizes the table for the given view. Fixed-content numeric columns get
// the width of their widest rendered value (header and summary row included)
// and the flexible label column absorbs whatever terminal width remains,
// floored at its minimum. Overlong labels are elided at render time rather
// than wrapped, keeping every row one line tall.
func (Planner) Plan(v View, totals stats.Totals, width, height int, mode DisplayMode) LayoutPlan {
	widths := make(map[ColumnID]int, len(v.Columns))
	totalRow := TotalRow(totals)

	fixed := 0
	var flex Column
	for _, col := range v.Columns {
		if col.Flex {
			flex = col
			continue
		}
		w := col.MinWidth
		if n := len(col.Title); n > w {
			w = n
		}
		// The summary row shares column widths and, being the column-wise
		// sum of non-negative values, bounds every per-row value. Measuring
		// it spares a full row scan.
		if n := len(strconv.Itoa(totalRow.value(col.ID))); col.Numeric && n > w {
			w = n
		}
		widths[col.ID] = w
		fixed += w
	}

	flexWidth := width - fixed - cellPadding*(len(v.Columns)-1)
	if flexWidth < flex.MinWidth {
		flexWidth = flex.MinWidth
	}
	widths[flex.ID] = flexWidth

	maxHeight := height - chromeRows
	if mode == Inline && maxHeight > inlineHeightCap {
		maxHeight = inlineHeightCap
	}
	if maxHeight < minTableHeight {
		maxHeight = minTableHeight
	}

	tableHeight := len(v.Rows) + headerRows
	if tableHeight < minTableHeight {
		tableHeight = minTableHeight
	}
	if tableHeight > maxHeight {
		tableHeight = maxHeight
	}

	return LayoutPlan{
		TableMinHeight: minTableHeight,
		TableMaxHeight: maxHeight,
		TableHeight:    tableHeight,
		ColumnWidths:   widths,
	}
}
