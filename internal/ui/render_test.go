package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads short value", "a.py", 8, "a.py    "},
		{"exact fit", "main.go", 7, "main.go"},
		{"elides long value", "internal/view/controller.go", 10, "internal/…"},
		{"empty", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if w := runewidth.StringWidth(got); w != tt.width {
				t.Errorf("display width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"right-aligns number", "42", 7, "     42"},
		{"exact fit", "1234567", 7, "1234567"},
		{"elides overflow", "123456789", 5, "1234…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padLeft(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("padLeft(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
