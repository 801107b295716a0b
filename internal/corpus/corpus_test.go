package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cognicore/bowtext/pkg/bowtext/dataset"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSONL(t *testing.T) {
	path := writeFile(t, `{"label": "lamp_on", "text": "turn on the light"}

not json
{"label": "lamp_off", "text": "<p>turn <b>off</b></p>", "html": true}
{"label": "lamp_off", "text": "   "}
`)

	got, err := LoadJSONL(path)
	if err != nil {
		t.Fatalf("LoadJSONL: %v", err)
	}
	want := []dataset.LabeledText{
		{Label: "lamp_on", Text: "turn on the light"},
		{Label: "lamp_off", Text: "turn off"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadJSONL = %+v, want %+v", got, want)
	}
}

func TestLoadJSONLErrors(t *testing.T) {
	if _, err := LoadJSONL(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("Should error on missing file")
	}
	if _, err := LoadJSONL(writeFile(t, "garbage\n\n")); err == nil {
		t.Error("Should error when no line is valid")
	}
}
