package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/bowtext/pkg/bowtext/config"
	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
	"github.com/cognicore/bowtext/pkg/bowtext/model"
)

const lampData = `{
	"lamp_on": ["turn on the light", "switch the lamp on", "light on please"],
	"lamp_off": ["turn off the light", "switch the lamp off", "lights off now"]
}`

func testComponents(t *testing.T) *config.Components {
	t.Helper()
	cfg := config.Default()
	cfg.Model.Log = false
	cfg.Store.Driver = config.DriverSQLite
	cfg.Store.Path = filepath.Join(t.TempDir(), "snapshots.db")

	comp, err := config.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { comp.Store.Close() })
	return comp
}

func TestTrainSaveAndReload(t *testing.T) {
	ctx := context.Background()
	comp := testComponents(t)

	dataPath := filepath.Join(t.TempDir(), "lamps.json")
	if err := os.WriteFile(dataPath, []byte(lampData), 0644); err != nil {
		t.Fatal(err)
	}

	m := model.New(comp.Tokenizer, nil, comp.ModelConfig)
	snap, err := trainAndSave(ctx, m, comp, dataPath)
	if err != nil {
		t.Fatalf("trainAndSave: %v", err)
	}

	loaded, err := loadSnapshot(ctx, comp.Store, "")
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if loaded.ID != snap.ID {
		t.Errorf("latest snapshot = %s, want %s", loaded.ID, snap.ID)
	}

	restored := model.New(comp.Tokenizer, nil, comp.ModelConfig)
	if err := restored.Restore(loaded); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	var buf bytes.Buffer
	if err := classify(&buf, restored, "lights off now"); err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "lamp_off") {
		t.Errorf("classify output = %q, want lamp_off first", buf.String())
	}

	buf.Reset()
	if err := listSnapshots(ctx, &buf, comp.Store); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), snap.ID) {
		t.Errorf("list output = %q, want %s", buf.String(), snap.ID)
	}

	exportPath := filepath.Join(t.TempDir(), "model.json")
	if err := exportSnapshot(loaded, exportPath); err != nil {
		t.Fatalf("exportSnapshot: %v", err)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	for _, key := range []string{"net", "dict", "classes", "traindata"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("export missing %q", key)
		}
	}
	var id string
	if err := json.Unmarshal(doc["id"], &id); err != nil {
		t.Fatalf("export id: %v", err)
	}
	if id != snap.ID {
		t.Errorf("exported id = %q, want stored snapshot %q", id, snap.ID)
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	ctx := context.Background()
	comp := testComponents(t)

	if _, err := loadSnapshot(ctx, comp.Store, ""); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("loadSnapshot(latest) on empty store = %v, want ErrNotFound", err)
	}
	if _, err := loadSnapshot(ctx, comp.Store, "01HX0000000000000000000001"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("loadSnapshot(id) = %v, want ErrNotFound", err)
	}

	var buf bytes.Buffer
	if err := listSnapshots(ctx, &buf, comp.Store); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No snapshots") {
		t.Errorf("list output = %q", buf.String())
	}
}

func TestClassifyUntrained(t *testing.T) {
	comp := testComponents(t)
	m := model.New(comp.Tokenizer, nil, comp.ModelConfig)
	if err := m.LoadLabeledJSON([]byte(lampData), nil); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := classify(&buf, m, "turn on"); !errors.Is(err, internalerr.ErrUntrained) {
		t.Errorf("classify on untrained model = %v, want ErrUntrained", err)
	}
}

func TestLoadTrainingDataJSONL(t *testing.T) {
	comp := testComponents(t)
	path := filepath.Join(t.TempDir(), "lamps.jsonl")
	content := `{"label": "lamp_on", "text": "turn on the light"}
{"label": "lamp_off", "text": "<b>turn off</b> the light", "html": true}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m := model.New(comp.Tokenizer, nil, comp.ModelConfig)
	if err := loadTrainingData(m, path, comp.Config); err != nil {
		t.Fatalf("loadTrainingData: %v", err)
	}
	data := m.TrainingData()
	if len(data) != 2 || data[1].Text != "turn off the light" {
		t.Errorf("training data = %+v", data)
	}
	if m.State() != model.Untrained {
		t.Errorf("state = %s, want UNTRAINED", m.State())
	}
}
