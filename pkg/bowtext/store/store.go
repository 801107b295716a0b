package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cognicore/bowtext/pkg/bowtext/classify"
	"github.com/cognicore/bowtext/pkg/bowtext/dataset"
	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
	"github.com/cognicore/bowtext/pkg/bowtext/vocab"
)

// Store persists model snapshots
type Store interface {
	Close() error

	SaveSnapshot(ctx context.Context, s Snapshot) error
	GetSnapshot(ctx context.Context, id string) (Snapshot, bool, error)
	LatestSnapshot(ctx context.Context) (Snapshot, bool, error)
	ListSnapshots(ctx context.Context, limit int) ([]SnapshotInfo, error)
	DeleteSnapshot(ctx context.Context, id string) error
}

// Snapshot bundles everything needed to rebuild a trained pipeline without
// retraining. Vocabulary and Classes are immutable and may be shared.
type Snapshot struct {
	ID           string                `json:"id"`
	CreatedAt    time.Time             `json:"createdAt"`
	Vocabulary   *vocab.Vocabulary     `json:"dict"`
	Classes      *vocab.ClassIndex     `json:"classes"`
	TrainingData []dataset.LabeledText `json:"traindata"`
	Config       classify.Config       `json:"config"`
	// Classifier is the opaque classifier state.
	Classifier json.RawMessage `json:"net"`
}

// SnapshotInfo summarizes a stored snapshot
type SnapshotInfo struct {
	ID        string
	CreatedAt time.Time
	Words     int
	Classes   int
	Examples  int
}

// Texts returns the training texts in order.
func (s Snapshot) Texts() []string {
	return dataset.Texts(s.TrainingData)
}

// Info summarizes s.
func (s Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Words:     s.Vocabulary.Len(),
		Classes:   s.Classes.Len(),
		Examples:  len(s.TrainingData),
	}
}

// Validate checks the fields every store requires.
func (s Snapshot) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("snapshot ID is required: %w", internalerr.ErrInvalidInput)
	}
	if s.Vocabulary == nil || s.Classes == nil {
		return fmt.Errorf("snapshot %s: vocabulary and classes are required: %w", s.ID, internalerr.ErrInvalidInput)
	}
	return nil
}

// Clone returns a copy that shares no mutable state with s.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.TrainingData = append([]dataset.LabeledText(nil), s.TrainingData...)
	out.Classifier = append(json.RawMessage(nil), s.Classifier...)
	return out
}
