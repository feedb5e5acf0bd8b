package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/yildizm/cloctop/internal/cloc"
	"github.com/yildizm/cloctop/internal/view"
)

// View renders the current screen.
func (m *Model) View() string {
	switch {
	case m.quitClear:
		return ""
	case m.scanErr != nil:
		return m.renderErrorScreen()
	case m.scanning || !m.ready || m.controller == nil:
		return m.renderScanningScreen()
	default:
		return m.renderTableScreen()
	}
}

func (m *Model) renderScanningScreen() string {
	spinner := m.styles.title.Render(spinnerChars[m.spinnerFrame])
	dots := strings.Repeat(".", (m.tick/5)%4)
	status := m.styles.dim.Render("Counting lines of code" + dots)
	line := fmt.Sprintf("%s %s  %s", spinner, status, m.styles.dim.Render(m.opts.Path))

	if m.opts.DisplayMode == view.Fullscreen && m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
	}
	return line + "\n"
}

func (m *Model) renderErrorScreen() string {
	if errors.Is(m.scanErr, cloc.ErrNotInstalled) {
		return m.styles.errText.Render(cloc.InstallHelp) + "\n"
	}
	return m.styles.errText.Render("scan failed: "+m.scanErr.Error()) + "\n"
}

func (m *Model) renderTableScreen() string {
	v, plan := m.controller.Current()

	sections := []string{
		m.renderHeaderBar(),
		renderHeaderLine(v, plan, m.styles),
	}

	if v.Empty() {
		sections = append(sections, m.styles.dim.Render("no files found under "+m.opts.Path))
	} else {
		sections = append(sections, m.body.View())
	}

	sections = append(sections,
		m.renderSummaryRow(v, plan),
		m.renderControlsBar(),
	)

	return strings.Join(sections, "\n")
}

// renderHeaderBar shows the external tool's run metadata plus any dropped
// record warnings.
func (m *Model) renderHeaderBar() string {
	title := m.styles.title.Render("cloctop")
	info := fmt.Sprintf("cloc v%s | %.2fs | %d files | %d lines",
		m.header.ClocVersion, m.header.ElapsedSeconds, m.header.NFiles, m.header.NLines)

	line := title + "  " + m.styles.dim.Render(info)
	if n := len(m.store.Warnings()); n > 0 {
		line += "  " + m.styles.errText.Render(fmt.Sprintf("(%d record(s) dropped)", n))
	}
	return line + "\n"
}

// renderHeaderLine renders column titles with the active sort marker.
func renderHeaderLine(v view.View, plan view.LayoutPlan, st styles) string {
	cells := make([]string, 0, len(v.Columns))
	for _, col := range v.Columns {
		w := plan.ColumnWidths[col.ID]
		title := col.Title
		style := st.header

		if v.Sort.Column == col.ID {
			style = st.active
			if v.Sort.Direction == view.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}

		if col.Numeric {
			cells = append(cells, style.Render(padLeft(title, w)))
		} else {
			cells = append(cells, style.Render(padRight(title, w)))
		}
	}
	return strings.Join(cells, "  ")
}

// renderRows renders all data rows; the viewport handles scrolling.
func renderRows(v view.View, plan view.LayoutPlan, st styles) string {
	lines := make([]string, 0, len(v.Rows))
	for _, row := range v.Rows {
		lines = append(lines, renderRow(v.Columns, plan, row))
	}
	return strings.Join(lines, "\n")
}

func renderRow(cols []view.Column, plan view.LayoutPlan, row view.ViewRow) string {
	cells := make([]string, 0, len(cols))
	for _, col := range cols {
		w := plan.ColumnWidths[col.ID]
		switch col.ID {
		case view.ColumnPath, view.ColumnGroup:
			cells = append(cells, padRight(row.Label, w))
		case view.ColumnFiles:
			cells = append(cells, padLeft(strconv.Itoa(row.Files), w))
		case view.ColumnCode:
			cells = append(cells, padLeft(strconv.Itoa(row.Code), w))
		case view.ColumnComment:
			cells = append(cells, padLeft(strconv.Itoa(row.Comment), w))
		case view.ColumnBlank:
			cells = append(cells, padLeft(strconv.Itoa(row.Blank), w))
		case view.ColumnTotal:
			cells = append(cells, padLeft(strconv.Itoa(row.Total), w))
		}
	}
	return strings.Join(cells, "  ")
}

func (m *Model) renderSummaryRow(v view.View, plan view.LayoutPlan) string {
	return m.styles.summary.Render(renderRow(v.Columns, plan, m.controller.Totals()))
}

func (m *Model) renderControlsBar() string {
	current := m.controller.Key()
	parts := []string{
		modeLabel("f", "files", current == view.GroupByFile),
		modeLabel("l", "languages", current == view.GroupByLanguage),
		modeLabel("d", "directories", current == view.GroupByDirectory),
		"1-6 sort",
		"j/k scroll",
		"q quit",
		"Q quit+clear",
	}
	return "\n" + m.styles.controls.Render(strings.Join(parts, " • "))
}

func modeLabel(key, name string, active bool) string {
	if active {
		return "[" + key + "] " + name
	}
	return key + " " + name
}

// padRight left-aligns s in a cell of display width w, eliding with a
// continuation marker when it does not fit. Rows stay one line tall.
func padRight(s string, w int) string {
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-runewidth.StringWidth(s))
}

// padLeft right-aligns s in a cell of display width w.
func padLeft(s string, w int) string {
	sw := runewidth.StringWidth(s)
	if sw > w {
		return runewidth.Truncate(s, w, "…")
	}
	return strings.Repeat(" ", w-sw) + s
}
