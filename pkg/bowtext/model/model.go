package model

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/bowtext/pkg/bowtext/classify"
	"github.com/cognicore/bowtext/pkg/bowtext/dataset"
	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
	"github.com/cognicore/bowtext/pkg/bowtext/store"
	"github.com/cognicore/bowtext/pkg/bowtext/vector"
	"github.com/cognicore/bowtext/pkg/bowtext/vocab"
)

// State is the training state of a Model.
type State int

const (
	Empty State = iota
	Untrained
	Training
	Trained
)

func (s State) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case Untrained:
		return "UNTRAINED"
	case Training:
		return "TRAINING"
	case Trained:
		return "TRAINED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Tokenizer is what the model needs from ingest.Tokenizer: distinct stems
// to build the vocabulary and stems with repeats to vectorize.
type Tokenizer interface {
	Tokenize(text string) []string
	Stems(text string) []string
}

// RunResult is the outcome of classifying one text.
type RunResult struct {
	Text       string             `json:"text"`
	Label      string             `json:"label"`
	Confidence float64            `json:"confidence"`
	Prediction map[string]float64 `json:"prediction"`
	Status     string             `json:"status"`
}

// Model ties the text pipeline to a classifier. It owns the labeled
// training data and rebuilds the vocabulary and class index whenever the
// data changes.
type Model struct {
	mu sync.RWMutex

	tok    Tokenizer
	clf    classify.Classifier
	cfg    classify.Config
	logger *log.Logger

	entropy *ulid.MonotonicEntropy

	data       []dataset.LabeledText
	vocabulary *vocab.Vocabulary
	classes    *vocab.ClassIndex
	state      State
	// generation increments on every data change so a training run that
	// finishes after a change does not mark stale weights as trained.
	generation uint64
	result     classify.Result
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes the model's messages to logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates an empty model. A nil classifier defaults to classify.Softmax.
func New(tok Tokenizer, clf classify.Classifier, cfg classify.Config, opts ...Option) *Model {
	m := &Model{
		tok:        tok,
		cfg:        cfg,
		logger:     log.Default(),
		entropy:    ulid.Monotonic(crand.Reader, 0),
		vocabulary: vocab.Build(nil, tok),
		classes:    vocab.BuildClassIndex(nil),
	}
	for _, opt := range opts {
		opt(m)
	}
	if clf == nil {
		clf = classify.NewSoftmax(m.logger)
	}
	m.clf = clf
	return m
}

// LoadLabeledJSON replaces the training data with the contents of a
// {"label": ["text", ...]} document. Examples are shuffled with rng when it
// is non-nil.
func (m *Model) LoadLabeledJSON(data []byte, rng *rand.Rand) error {
	items, err := dataset.ParseLabeledJSON(data)
	if err != nil {
		return err
	}
	items = dataset.Shuffle(items, rng)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.appendLocked(items)
	return nil
}

// AddData appends training examples. The model must be trained again.
func (m *Model) AddData(items []dataset.LabeledText) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendLocked(items)
}

// AddDataPoint appends one training example.
func (m *Model) AddDataPoint(item dataset.LabeledText) {
	m.AddData([]dataset.LabeledText{item})
}

// RemoveDataPoint removes the first example equal to item.
func (m *Model) RemoveDataPoint(item dataset.LabeledText) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.data {
		if d == item {
			m.data = append(m.data[:i:i], m.data[i+1:]...)
			m.rebuildLocked()
			return nil
		}
	}
	return fmt.Errorf("remove %q/%q: %w", item.Label, item.Text, internalerr.ErrNotFound)
}

func (m *Model) appendLocked(items []dataset.LabeledText) {
	seen := make(map[string]struct{}, len(m.data))
	for _, d := range m.data {
		seen[d.Text] = struct{}{}
	}
	for _, item := range items {
		if _, dup := seen[item.Text]; dup {
			m.logger.Printf("model: repeated training text %q", item.Text)
		}
		seen[item.Text] = struct{}{}
	}
	m.data = append(m.data, items...)
	m.rebuildLocked()
}

func (m *Model) rebuildLocked() {
	m.vocabulary = vocab.Build(dataset.Texts(m.data), m.tok)
	m.classes = dataset.ClassIndexOf(m.data)
	m.generation++
	m.result = classify.Result{}
	if len(m.data) == 0 {
		m.state = Empty
	} else {
		m.state = Untrained
	}
}

// Train fits a fresh classifier to the current training data.
func (m *Model) Train(ctx context.Context) (classify.Result, error) {
	m.mu.Lock()
	switch m.state {
	case Empty:
		m.mu.Unlock()
		return classify.Result{}, internalerr.ErrNoData
	case Training:
		m.mu.Unlock()
		return classify.Result{}, fmt.Errorf("training already in progress: %w", internalerr.ErrInvalidInput)
	}
	prev := m.state
	m.state = Training
	gen := m.generation
	examples := m.examplesLocked()
	cfg := m.cfg
	m.mu.Unlock()

	res, err := m.clf.Train(ctx, examples, cfg)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil && m.generation == gen {
		if prev == Trained {
			prev = Untrained
		}
		m.state = prev
	}
	if err != nil {
		return res, fmt.Errorf("train: %w", err)
	}
	// Data that changed mid-run leaves the state rebuildLocked chose.
	if m.generation != gen {
		return res, nil
	}
	m.state = Trained
	m.result = res
	return res, nil
}

func (m *Model) examplesLocked() []classify.Example {
	examples := make([]classify.Example, 0, len(m.data))
	n := m.classes.Len()
	for _, d := range m.data {
		idx, _ := m.classes.Index(d.Label)
		examples = append(examples, classify.Example{
			Input:  vector.Vectorize(d.Text, m.vocabulary, m.tok),
			Output: vocab.OneHot(idx, n),
		})
	}
	return examples
}

// Run classifies text with the trained classifier.
func (m *Model) Run(text string) (RunResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch m.state {
	case Empty:
		return RunResult{}, internalerr.ErrNoData
	case Untrained, Training:
		return RunResult{}, fmt.Errorf("model is %s: %w", m.state, internalerr.ErrUntrained)
	}

	probs, err := m.clf.Predict(vector.Vectorize(text, m.vocabulary, m.tok))
	if err != nil {
		return RunResult{}, fmt.Errorf("predict: %w", err)
	}

	res := RunResult{
		Text:       text,
		Prediction: make(map[string]float64, len(probs)),
		Status:     m.state.String(),
	}
	for i, p := range probs {
		if label, ok := m.classes.Label(i); ok {
			res.Prediction[label] = p
		}
	}
	if i := vector.ArgMax(probs); i >= 0 {
		res.Label, _ = m.classes.Label(i)
		res.Confidence = probs[i]
	}
	return res, nil
}

// Snapshot captures the trained model.
func (m *Model) Snapshot() (store.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Trained {
		return store.Snapshot{}, fmt.Errorf("snapshot of %s model: %w", m.state, internalerr.ErrUntrained)
	}
	state, err := m.clf.MarshalState()
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("snapshot classifier: %w", err)
	}

	now := time.Now().UTC()
	return store.Snapshot{
		ID:           ulid.MustNew(ulid.Timestamp(now), m.entropy).String(),
		CreatedAt:    now,
		Vocabulary:   m.vocabulary,
		Classes:      m.classes,
		TrainingData: append([]dataset.LabeledText(nil), m.data...),
		Config:       m.cfg,
		Classifier:   state,
	}, nil
}

// Restore loads a snapshot. The model becomes trained without retraining.
func (m *Model) Restore(snap store.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Training {
		return fmt.Errorf("restore during training: %w", internalerr.ErrInvalidInput)
	}
	if err := m.clf.UnmarshalState(snap.Classifier); err != nil {
		return fmt.Errorf("restore classifier: %w", err)
	}
	m.data = append([]dataset.LabeledText(nil), snap.TrainingData...)
	m.vocabulary = snap.Vocabulary
	m.classes = snap.Classes
	m.cfg = snap.Config
	m.generation++
	m.result = classify.Result{}
	m.state = Trained
	return nil
}

// State returns the current training state.
func (m *Model) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Vocabulary returns the current vocabulary.
func (m *Model) Vocabulary() *vocab.Vocabulary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vocabulary
}

// Classes returns the current class index.
func (m *Model) Classes() *vocab.ClassIndex {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.classes
}

// TrainingData returns a copy of the labeled examples.
func (m *Model) TrainingData() []dataset.LabeledText {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]dataset.LabeledText(nil), m.data...)
}

// Config returns the training configuration.
func (m *Model) Config() classify.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// SetConfig replaces the training configuration used by the next Train.
func (m *Model) SetConfig(cfg classify.Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
}

// LastResult returns the outcome of the last successful training run.
func (m *Model) LastResult() classify.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.result
}
