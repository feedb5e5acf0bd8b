package view

import (
	"reflect"
	"testing"

	"github.com/yildizm/cloctop/internal/stats"
)

func layoutTestView(rows int) View {
	v := View{Key: GroupByLanguage, Columns: groupColumns("language")}
	for i := 0; i < rows; i++ {
		v.Rows = append(v.Rows, ViewRow{Label: "Go", Files: 1, Code: 100, Total: 100, ord: i})
	}
	return v
}

func layoutTestTotals() stats.Totals {
	return stats.Totals{Files: 40, Code: 4000}
}

func TestPlanHeightBounds(t *testing.T) {
	tests := []struct {
		name   string
		rows   int
		width  int
		height int
		mode   DisplayMode
	}{
		{"no rows fullscreen", 0, 120, 40, Fullscreen},
		{"few rows fullscreen", 3, 120, 40, Fullscreen},
		{"many rows fullscreen", 500, 120, 40, Fullscreen},
		{"many rows inline", 500, 120, 40, Inline},
		{"tiny terminal", 10, 80, 6, Fullscreen},
	}

	var planner Planner
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planner.Plan(layoutTestView(tt.rows), layoutTestTotals(), tt.width, tt.height, tt.mode)

			if plan.TableHeight < plan.TableMinHeight || plan.TableHeight > plan.TableMaxHeight {
				t.Errorf("height %d outside [%d, %d]", plan.TableHeight, plan.TableMinHeight, plan.TableMaxHeight)
			}
			if plan.TableMinHeight < headerRows+1 {
				t.Errorf("min height %d cannot fit header plus one row", plan.TableMinHeight)
			}
		})
	}
}

func TestPlanInlineCap(t *testing.T) {
	var planner Planner
	inline := planner.Plan(layoutTestView(500), layoutTestTotals(), 120, 60, Inline)
	full := planner.Plan(layoutTestView(500), layoutTestTotals(), 120, 60, Fullscreen)

	if inline.TableMaxHeight >= full.TableMaxHeight {
		t.Errorf("inline cap %d should be below fullscreen cap %d", inline.TableMaxHeight, full.TableMaxHeight)
	}
}

func TestPlanWidthBudget(t *testing.T) {
	// Supported minimum: every column at its floor plus padding
	v := layoutTestView(5)
	minWidth := cellPadding * (len(v.Columns) - 1)
	for _, col := range v.Columns {
		minWidth += col.MinWidth
	}

	var planner Planner
	for _, width := range []int{minWidth, minWidth + 1, 80, 120, 200} {
		plan := planner.Plan(v, layoutTestTotals(), width, 40, Fullscreen)
		if plan.Width() > width {
			t.Errorf("terminal width %d: planned width %d exceeds it", width, plan.Width())
		}
	}
}

func TestPlanFlexColumnFloor(t *testing.T) {
	// Below the supported minimum the label column stops shrinking
	var planner Planner
	plan := planner.Plan(layoutTestView(5), layoutTestTotals(), 20, 40, Fullscreen)

	if got := plan.ColumnWidths[ColumnGroup]; got < 14 {
		t.Errorf("label column collapsed to %d, floor is 14", got)
	}
}

func TestPlanNumericWidths(t *testing.T) {
	var planner Planner
	plan := planner.Plan(layoutTestView(3), stats.Totals{Files: 3, Code: 123456789}, 120, 40, Fullscreen)

	// The code column must hold its widest rendered value (the summary sum)
	if got := plan.ColumnWidths[ColumnCode]; got < len("123456789") {
		t.Errorf("code column width %d cannot hold the summary value", got)
	}
	// The comment header is wider than its values here
	if got := plan.ColumnWidths[ColumnComment]; got < len("comment") {
		t.Errorf("comment column width %d cannot hold its header", got)
	}
}

func TestPlanIdempotent(t *testing.T) {
	var planner Planner
	v := layoutTestView(25)

	a := planner.Plan(v, layoutTestTotals(), 100, 30, Inline)
	b := planner.Plan(v, layoutTestTotals(), 100, 30, Inline)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical arguments produced different plans:\n%+v\n%+v", a, b)
	}
}

func TestPlanSchemaChange(t *testing.T) {
	// Mode switches change the column set, so plans must differ in shape
	var planner Planner
	fileView := View{Key: GroupByFile, Columns: fileColumns()}
	langView := View{Key: GroupByLanguage, Columns: groupColumns("language")}

	filePlan := planner.Plan(fileView, layoutTestTotals(), 120, 40, Fullscreen)
	langPlan := planner.Plan(langView, layoutTestTotals(), 120, 40, Fullscreen)

	if len(filePlan.ColumnWidths) != 5 {
		t.Errorf("file plan should have 5 columns, got %d", len(filePlan.ColumnWidths))
	}
	if len(langPlan.ColumnWidths) != 6 {
		t.Errorf("language plan should have 6 columns, got %d", len(langPlan.ColumnWidths))
	}
	if _, ok := filePlan.ColumnWidths[ColumnFiles]; ok {
		t.Error("file plan must not size a files column")
	}
}
