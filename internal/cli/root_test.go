package cli

import (
	"testing"

	"github.com/yildizm/cloctop/internal/view"
)

func TestParseGroupKey(t *testing.T) {
	tests := []struct {
		in      string
		want    view.GroupKey
		wantErr bool
	}{
		{"file", view.GroupByFile, false},
		{"files", view.GroupByFile, false},
		{"", view.GroupByFile, false},
		{"language", view.GroupByLanguage, false},
		{"lang", view.GroupByLanguage, false},
		{"directory", view.GroupByDirectory, false},
		{"dir", view.GroupByDirectory, false},
		{"extension", 0, true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.in, func(t *testing.T) {
			got, err := parseGroupKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseGroupKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseGroupKey(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()

	if got, err := resolvePath([]string{dir}); err != nil || got != dir {
		t.Errorf("resolvePath(%q) = %q, %v", dir, got, err)
	}
	if _, err := resolvePath([]string{dir + "/missing"}); err == nil {
		t.Error("expected an error for a missing path")
	}
	if got, err := resolvePath(nil); err != nil || got != "." {
		t.Errorf("resolvePath(nil) = %q, %v; want \".\"", got, err)
	}
}

func TestIgnoredPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"project/.git", true},
		{"project/.git/objects", false}, // only the directory itself is skipped
		{"main.go~", true},
		{".main.go.swp", true},
		{"src/main.go", false},
	}

	for _, tt := range tests {
		if got := ignoredPath(tt.path); got != tt.want {
			t.Errorf("ignoredPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
