package cloc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yildizm/cloctop/internal/stats"
)

// Header is cloc's run metadata block.
type Header struct {
	ClocURL        string  `json:"cloc_url"`
	ClocVersion    string  `json:"cloc_version"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	NFiles         int     `json:"n_files"`
	NLines         int     `json:"n_lines"`
}

// Summary is cloc's own SUM block, kept for cross-checking against the
// store's computed totals.
type Summary struct {
	Blank   int `json:"blank"`
	Comment int `json:"comment"`
	Code    int `json:"code"`
	NFiles  int `json:"nFiles"`
}

// Output is a fully decoded cloc --by-file --json result.
type Output struct {
	Header  Header
	Summary Summary
	Records []stats.RawRecord
}

// fileEntry is one per-file object in cloc's JSON output.
type fileEntry struct {
	Language string `json:"language"`
	Blank    int    `json:"blank"`
	Comment  int    `json:"comment"`
	Code     int    `json:"code"`
}

// Decode parses cloc JSON. The top-level object maps "header" and "SUM" to
// metadata and every other key to a file path. encoding/json maps lose key
// order, so the token stream is walked directly: record order ends up being
// exactly cloc's emission order, which in turn defines ingestion order.
func Decode(data []byte) (*Output, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected top-level object, got %v", tok)
	}

	out := &Output{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}

		switch key {
		case "header":
			if err := dec.Decode(&out.Header); err != nil {
				return nil, fmt.Errorf("decode header: %w", err)
			}
		case "SUM":
			if err := dec.Decode(&out.Summary); err != nil {
				return nil, fmt.Errorf("decode SUM: %w", err)
			}
		default:
			var entry fileEntry
			if err := dec.Decode(&entry); err != nil {
				return nil, fmt.Errorf("decode entry %q: %w", key, err)
			}
			out.Records = append(out.Records, stats.RawRecord{
				Path:     key,
				Language: entry.Language,
				Code:     entry.Code,
				Comment:  entry.Comment,
				Blank:    entry.Blank,
			})
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read closing token: %w", err)
	}
	return out, nil
}
