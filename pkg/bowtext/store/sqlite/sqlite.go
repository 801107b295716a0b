package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/bowtext/pkg/bowtext/classify"
	"github.com/cognicore/bowtext/pkg/bowtext/dataset"
	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
	"github.com/cognicore/bowtext/pkg/bowtext/store"
	"github.com/cognicore/bowtext/pkg/bowtext/vocab"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist. Child rows carry an
// explicit position so vocabulary and class order survive a round trip.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	config_json TEXT NOT NULL,
	classifier BLOB
);

CREATE TABLE IF NOT EXISTS snapshot_words (
	snapshot_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	word TEXT NOT NULL,
	frequency INTEGER NOT NULL,
	PRIMARY KEY(snapshot_id, position),
	FOREIGN KEY(snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS snapshot_classes (
	snapshot_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	label TEXT NOT NULL,
	PRIMARY KEY(snapshot_id, position),
	FOREIGN KEY(snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS snapshot_examples (
	snapshot_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	label TEXT NOT NULL,
	text TEXT NOT NULL,
	PRIMARY KEY(snapshot_id, position),
	FOREIGN KEY(snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveSnapshot inserts or replaces a snapshot
func (s *sqliteStore) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	cfgJSON, err := json.Marshal(snap.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := deleteSnapshot(ctx, tx, snap.ID); err != nil {
		return err
	}

	const stmt = `
INSERT INTO snapshots (id, created_at, config_json, classifier)
VALUES (?, ?, ?, ?);
`
	if _, err := tx.ExecContext(ctx, stmt,
		snap.ID,
		snap.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(cfgJSON),
		[]byte(snap.Classifier),
	); err != nil {
		return err
	}

	if err := insertWords(ctx, tx, snap.ID, snap.Vocabulary); err != nil {
		return err
	}
	if err := insertClasses(ctx, tx, snap.ID, snap.Classes.Labels()); err != nil {
		return err
	}
	if err := insertExamples(ctx, tx, snap.ID, snap.TrainingData); err != nil {
		return err
	}

	return tx.Commit()
}

func deleteSnapshot(ctx context.Context, tx *sql.Tx, id string) error {
	for _, q := range []string{
		`DELETE FROM snapshot_words WHERE snapshot_id=?`,
		`DELETE FROM snapshot_classes WHERE snapshot_id=?`,
		`DELETE FROM snapshot_examples WHERE snapshot_id=?`,
		`DELETE FROM snapshots WHERE id=?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}

func insertWords(ctx context.Context, tx *sql.Tx, id string, v *vocab.Vocabulary) error {
	words := v.Words()
	if len(words) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshot_words (snapshot_id, position, word, frequency) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, w := range words {
		if _, err := stmt.ExecContext(ctx, id, i, w, v.Frequency(w)); err != nil {
			return err
		}
	}
	return nil
}

func insertClasses(ctx context.Context, tx *sql.Tx, id string, labels []string) error {
	if len(labels) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshot_classes (snapshot_id, position, label) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, label := range labels {
		if _, err := stmt.ExecContext(ctx, id, i, label); err != nil {
			return err
		}
	}
	return nil
}

func insertExamples(ctx context.Context, tx *sql.Tx, id string, items []dataset.LabeledText) error {
	if len(items) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshot_examples (snapshot_id, position, label, text) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, item := range items {
		if _, err := stmt.ExecContext(ctx, id, i, item.Label, item.Text); err != nil {
			return err
		}
	}
	return nil
}

// GetSnapshot retrieves a snapshot by ID
func (s *sqliteStore) GetSnapshot(ctx context.Context, id string) (store.Snapshot, bool, error) {
	return s.loadSnapshot(ctx, `SELECT id, created_at, config_json, classifier FROM snapshots WHERE id = ?`, id)
}

// LatestSnapshot retrieves the most recent snapshot. IDs are ULIDs and sort
// by creation time.
func (s *sqliteStore) LatestSnapshot(ctx context.Context) (store.Snapshot, bool, error) {
	return s.loadSnapshot(ctx, `SELECT id, created_at, config_json, classifier FROM snapshots ORDER BY id DESC LIMIT 1`)
}

func (s *sqliteStore) loadSnapshot(ctx context.Context, query string, args ...interface{}) (store.Snapshot, bool, error) {
	var (
		snap     store.Snapshot
		created  string
		cfgJSON  string
		clfState []byte
	)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&snap.ID, &created, &cfgJSON, &clfState)
	if err == sql.ErrNoRows {
		return store.Snapshot{}, false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, err
	}

	if snap.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("snapshot %s: created_at: %w", snap.ID, err)
	}
	var cfg classify.Config
	if err := json.Unmarshal([]byte(cfgJSON), &cfg); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("snapshot %s: config: %w", snap.ID, err)
	}
	snap.Config = cfg
	if len(clfState) > 0 {
		snap.Classifier = json.RawMessage(clfState)
	}

	if snap.Vocabulary, err = s.loadWords(ctx, snap.ID); err != nil {
		return store.Snapshot{}, false, err
	}
	if snap.Classes, err = s.loadClasses(ctx, snap.ID); err != nil {
		return store.Snapshot{}, false, err
	}
	if snap.TrainingData, err = s.loadExamples(ctx, snap.ID); err != nil {
		return store.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *sqliteStore) loadWords(ctx context.Context, id string) (*vocab.Vocabulary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, frequency FROM snapshot_words WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	freq := make(map[string]int)
	for rows.Next() {
		var (
			w string
			n int
		)
		if err := rows.Scan(&w, &n); err != nil {
			return nil, err
		}
		words = append(words, w)
		freq[w] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vocab.FromWords(words, freq)
}

func (s *sqliteStore) loadClasses(ctx context.Context, id string) (*vocab.ClassIndex, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label FROM snapshot_classes WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vocab.BuildClassIndex(labels), nil
}

func (s *sqliteStore) loadExamples(ctx context.Context, id string) ([]dataset.LabeledText, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label, text FROM snapshot_examples WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []dataset.LabeledText
	for rows.Next() {
		var item dataset.LabeledText
		if err := rows.Scan(&item.Label, &item.Text); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListSnapshots returns up to limit summaries, newest first
func (s *sqliteStore) ListSnapshots(ctx context.Context, limit int) ([]store.SnapshotInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
SELECT s.id, s.created_at,
	(SELECT COUNT(*) FROM snapshot_words w WHERE w.snapshot_id = s.id),
	(SELECT COUNT(*) FROM snapshot_classes c WHERE c.snapshot_id = s.id),
	(SELECT COUNT(*) FROM snapshot_examples e WHERE e.snapshot_id = s.id)
FROM snapshots s
ORDER BY s.id DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []store.SnapshotInfo
	for rows.Next() {
		var (
			info    store.SnapshotInfo
			created string
		)
		if err := rows.Scan(&info.ID, &created, &info.Words, &info.Classes, &info.Examples); err != nil {
			return nil, err
		}
		if info.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("snapshot %s: created_at: %w", info.ID, err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteSnapshot removes a snapshot and its rows
func (s *sqliteStore) DeleteSnapshot(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := deleteSnapshot(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}
