package cloc

import "testing"

const sampleOutput = `{
  "header": {
    "cloc_url": "github.com/AlDanial/cloc",
    "cloc_version": "2.04",
    "elapsed_seconds": 0.92,
    "n_files": 3,
    "n_lines": 61
  },
  "src/a.py": {"blank": 1, "comment": 2, "code": 10, "language": "Python"},
  "src/b.py": {"blank": 0, "comment": 0, "code": 5, "language": "Python"},
  "web/c.js": {"blank": 5, "comment": 0, "code": 20, "language": "JavaScript"},
  "SUM": {"blank": 6, "comment": 2, "code": 35, "nFiles": 3}
}`

func TestDecode(t *testing.T) {
	out, err := Decode([]byte(sampleOutput))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if out.Header.ClocVersion != "2.04" {
		t.Errorf("expected version 2.04, got %q", out.Header.ClocVersion)
	}
	if out.Header.NFiles != 3 || out.Header.NLines != 61 {
		t.Errorf("unexpected header counts: %+v", out.Header)
	}
	if out.Summary.Code != 35 || out.Summary.NFiles != 3 {
		t.Errorf("unexpected summary: %+v", out.Summary)
	}

	if len(out.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out.Records))
	}

	// Record order must be cloc's emission order
	wantPaths := []string{"src/a.py", "src/b.py", "web/c.js"}
	for i, rec := range out.Records {
		if rec.Path != wantPaths[i] {
			t.Errorf("record %d: expected %q, got %q", i, wantPaths[i], rec.Path)
		}
	}

	first := out.Records[0]
	if first.Language != "Python" || first.Code != 10 || first.Comment != 2 || first.Blank != 1 {
		t.Errorf("unexpected first record: %+v", first)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"not an object", `[1, 2, 3]`},
		{"truncated", `{"header": {"cloc_version": "2.04"}`},
		{"entry not an object", `{"a.py": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDecodeNoFiles(t *testing.T) {
	input := `{
  "header": {"cloc_version": "2.04", "elapsed_seconds": 0.1, "n_files": 0, "n_lines": 0},
  "SUM": {"blank": 0, "comment": 0, "code": 0, "nFiles": 0}
}`
	out, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(out.Records) != 0 {
		t.Errorf("expected no records, got %d", len(out.Records))
	}
}

func TestMessageForCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{25, "failed to create tarfile of files from git, or not a git repository"},
		{126, "permission denied on the working directory"},
		{127, "cloc command not found"},
		{137, "terminated by signal 137"},
		{-9, "terminated by signal -9"},
		{1, "unknown cloc error"},
	}

	for _, tt := range tests {
		if got := messageForCode(tt.code); got != tt.want {
			t.Errorf("code %d: expected %q, got %q", tt.code, got, tt.want)
		}
	}
}

func TestRunnerNotInstalled(t *testing.T) {
	runner := NewRunner("definitely-not-a-real-binary-name", 0)
	if runner.Installed() {
		t.Skip("improbable binary actually exists on PATH")
	}
	if _, err := runner.Run(t.Context()); err != ErrNotInstalled {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}
