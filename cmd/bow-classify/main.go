package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/bowtext/internal/corpus"
	"github.com/cognicore/bowtext/pkg/bowtext/config"
	"github.com/cognicore/bowtext/pkg/bowtext/dataset"
	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
	"github.com/cognicore/bowtext/pkg/bowtext/model"
	"github.com/cognicore/bowtext/pkg/bowtext/store"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file (optional)")
		trainPath  = flag.String("train", "", "Labeled JSON ({\"label\": [\"text\", ...]}) or JSONL to train on")
		snapshotID = flag.String("snapshot", "", "Snapshot to load (default: latest)")
		query      = flag.String("query", "", "One-shot query (non-interactive mode)")
		list       = flag.Bool("list", false, "List stored snapshots and exit")
		exportPath = flag.String("export", "", "Write the loaded snapshot as JSON to this file")
	)
	flag.Parse()

	ctx := context.Background()

	loader := config.Loader{ConfigPath: *configPath}
	comp, err := loader.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer comp.Store.Close()

	if *list {
		if err := listSnapshots(ctx, os.Stdout, comp.Store); err != nil {
			log.Fatal(err)
		}
		return
	}

	m := model.New(comp.Tokenizer, nil, comp.ModelConfig)

	var snap store.Snapshot
	if *trainPath != "" {
		snap, err = trainAndSave(ctx, m, comp, *trainPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("saved snapshot %s (%d words, %d classes)", snap.ID, snap.Vocabulary.Len(), snap.Classes.Len())
	} else {
		snap, err = loadSnapshot(ctx, comp.Store, *snapshotID)
		if err != nil {
			log.Fatal(err)
		}
		if err := m.Restore(snap); err != nil {
			log.Fatal(err)
		}
		log.Printf("loaded snapshot %s", snap.ID)
	}

	if *exportPath != "" {
		if err := exportSnapshot(snap, *exportPath); err != nil {
			log.Fatal(err)
		}
	}

	// One-shot query mode
	if *query != "" {
		if err := classify(os.Stdout, m, *query); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *trainPath != "" || *exportPath != "" {
		return
	}

	// Interactive mode
	fmt.Println("Type a text to classify (Ctrl+D to exit):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if err := classify(os.Stdout, m, text); err != nil {
			fmt.Println("Error:", err)
		}
	}
}

func trainAndSave(ctx context.Context, m *model.Model, comp *config.Components, path string) (store.Snapshot, error) {
	if err := loadTrainingData(m, path, comp.Config); err != nil {
		return store.Snapshot{}, fmt.Errorf("load training data: %w", err)
	}

	res, err := m.Train(ctx)
	if err != nil {
		return store.Snapshot{}, err
	}
	log.Printf("trained in %d iterations, error %g", res.Iterations, res.Error)

	snap, err := m.Snapshot()
	if err != nil {
		return store.Snapshot{}, err
	}
	if err := comp.Store.SaveSnapshot(ctx, snap); err != nil {
		return store.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	return snap, nil
}

func loadTrainingData(m *model.Model, path string, cfg *config.Config) error {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		items, err := corpus.LoadJSONL(path)
		if err != nil {
			return err
		}
		m.AddData(dataset.Shuffle(items, cfg.Rand()))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return m.LoadLabeledJSON(data, cfg.Rand())
}

func loadSnapshot(ctx context.Context, st store.Store, id string) (store.Snapshot, error) {
	var (
		snap  store.Snapshot
		found bool
		err   error
	)
	if id == "" {
		snap, found, err = st.LatestSnapshot(ctx)
	} else {
		snap, found, err = st.GetSnapshot(ctx, id)
	}
	if err != nil {
		return store.Snapshot{}, err
	}
	if !found {
		if id == "" {
			return store.Snapshot{}, fmt.Errorf("no snapshots stored, train with -train first: %w", internalerr.ErrNotFound)
		}
		return store.Snapshot{}, fmt.Errorf("snapshot %s: %w", id, internalerr.ErrNotFound)
	}
	return snap, nil
}

func listSnapshots(ctx context.Context, w io.Writer, st store.Store) error {
	infos, err := st.ListSnapshots(ctx, 0)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(w, "No snapshots stored.")
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(w, "%s  %s  words=%d classes=%d examples=%d\n",
			info.ID, info.CreatedAt.Format("2006-01-02 15:04:05"), info.Words, info.Classes, info.Examples)
	}
	return nil
}

// exportSnapshot writes snap as it was saved or loaded, keeping its ID.
func exportSnapshot(snap store.Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func classify(w io.Writer, m *model.Model, text string) error {
	res, err := m.Run(text)
	if errors.Is(err, internalerr.ErrUntrained) {
		return fmt.Errorf("model is not trained yet: %w", err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%.3f)\n", res.Label, res.Confidence)
	for _, label := range m.Classes().Labels() {
		fmt.Fprintf(w, "  %-20s %.3f\n", label, res.Prediction[label])
	}
	return nil
}
