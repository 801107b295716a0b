// Package corpus reads labeled training texts from JSONL files.
package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/bowtext/internal/htmltext"
	"github.com/cognicore/bowtext/pkg/bowtext/dataset"
)

// Record is one line of a corpus file. Text may hold HTML markup when HTML
// is set.
type Record struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	HTML  bool   `json:"html,omitempty"`
}

// LoadJSONL loads examples from a JSONL file, one Record per line.
// Malformed and empty lines are skipped with a warning.
func LoadJSONL(path string) ([]dataset.LabeledText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []dataset.LabeledText
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", n, path, err)
			continue
		}
		if rec.HTML {
			rec.Text = htmltext.String(rec.Text)
		}
		if strings.TrimSpace(rec.Text) == "" {
			log.Printf("Warning: skipping empty text at line %d in %s", n, path)
			continue
		}
		items = append(items, dataset.LabeledText{Label: rec.Label, Text: rec.Text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", path)
	}

	return items, nil
}
