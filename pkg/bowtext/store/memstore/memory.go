package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/bowtext/pkg/bowtext/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]store.Snapshot
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{snapshots: make(map[string]store.Snapshot)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveSnapshot inserts or replaces a snapshot, keyed by ID.
func (s *Store) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots[snap.ID] = snap.Clone()
	return nil
}

// GetSnapshot returns a snapshot by ID.
func (s *Store) GetSnapshot(ctx context.Context, id string) (store.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[id]
	if !ok {
		return store.Snapshot{}, false, nil
	}
	return snap.Clone(), true, nil
}

// LatestSnapshot returns the snapshot with the greatest ID. IDs are ULIDs,
// so that is the most recently created one.
func (s *Store) LatestSnapshot(ctx context.Context) (store.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest string
	for id := range s.snapshots {
		if id > latest {
			latest = id
		}
	}
	if latest == "" {
		return store.Snapshot{}, false, nil
	}
	return s.snapshots[latest].Clone(), true, nil
}

// ListSnapshots returns up to limit summaries, newest first.
func (s *Store) ListSnapshots(ctx context.Context, limit int) ([]store.SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	infos := make([]store.SnapshotInfo, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		infos = append(infos, snap.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID > infos[j].ID
	})
	if len(infos) > limit {
		infos = infos[:limit]
	}
	return infos, nil
}

// DeleteSnapshot removes a snapshot. Unknown IDs are ignored.
func (s *Store) DeleteSnapshot(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snapshots, id)
	return nil
}
