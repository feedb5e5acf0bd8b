package stats

import "testing"

func TestStoreIngest(t *testing.T) {
	store := NewStore()
	raw := []RawRecord{
		{Path: "a.py", Language: "Python", Code: 10, Comment: 2, Blank: 1},
		{Path: "b.py", Language: "Python", Code: 5},
		{Path: "c.js", Language: "JavaScript", Code: 20, Blank: 5},
	}

	if err := store.Ingest(raw); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if store.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", store.Len())
	}

	// Ingestion order must be preserved
	paths := []string{"a.py", "b.py", "c.js"}
	for i, rec := range store.All() {
		if rec.Path != paths[i] {
			t.Errorf("record %d: expected path %q, got %q", i, paths[i], rec.Path)
		}
	}

	totals := store.Totals()
	if totals.Files != 3 || totals.Code != 35 || totals.Comment != 2 || totals.Blank != 6 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if totals.Total() != 43 {
		t.Errorf("expected total 43, got %d", totals.Total())
	}
}

func TestStoreIngestValidation(t *testing.T) {
	tests := []struct {
		name   string
		record RawRecord
		reason string
	}{
		{"empty path", RawRecord{Language: "Go", Code: 1}, "empty path"},
		{"negative code", RawRecord{Path: "x.go", Code: -1}, "negative code count"},
		{"negative comment", RawRecord{Path: "x.go", Comment: -2}, "negative comment count"},
		{"negative blank", RawRecord{Path: "x.go", Blank: -3}, "negative blank count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			raw := []RawRecord{
				{Path: "ok.go", Language: "Go", Code: 1},
				tt.record,
			}
			if err := store.Ingest(raw); err != nil {
				t.Fatalf("Ingest failed: %v", err)
			}

			// The malformed record is dropped, the run continues
			if store.Len() != 1 {
				t.Fatalf("expected 1 valid record, got %d", store.Len())
			}
			warnings := store.Warnings()
			if len(warnings) != 1 {
				t.Fatalf("expected 1 warning, got %d", len(warnings))
			}
			if warnings[0].Reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, warnings[0].Reason)
			}
			if warnings[0].Index != 1 {
				t.Errorf("expected warning index 1, got %d", warnings[0].Index)
			}
		})
	}
}

func TestStoreIngestOnce(t *testing.T) {
	store := NewStore()
	if err := store.Ingest(nil); err != nil {
		t.Fatalf("first Ingest failed: %v", err)
	}
	if err := store.Ingest(nil); err != ErrAlreadyIngested {
		t.Errorf("expected ErrAlreadyIngested, got %v", err)
	}
}

func TestStoreEmpty(t *testing.T) {
	store := NewStore()
	if err := store.Ingest([]RawRecord{}); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if !store.Empty() {
		t.Error("expected Empty to be true")
	}

	totals := store.Totals()
	if totals.Files != 0 || totals.Code != 0 || totals.Comment != 0 || totals.Blank != 0 || totals.Total() != 0 {
		t.Errorf("expected all-zero totals, got %+v", totals)
	}
}

func TestRecordTotal(t *testing.T) {
	rec := Record{Code: 10, Comment: 2, Blank: 1}
	if rec.Total() != 13 {
		t.Errorf("expected 13, got %d", rec.Total())
	}
}
