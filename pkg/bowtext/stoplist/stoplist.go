package stoplist

import (
	"math"
	"sort"

	"github.com/cognicore/bowtext/pkg/bowtext/dataset"
)

// Manager tracks stopword stems and suggests new ones from corpus
// statistics.
type Manager struct {
	stops map[string]Reason
}

// Reason explains why a stem is a stopword
type Reason struct {
	HighDF      bool    // appears in most texts
	HighEntropy bool    // spread evenly across labels
	DFPercent   float64 // share of texts containing the stem
	CatEntropy  float64 // normalized label entropy
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]Reason, len(initialStops))
	for _, s := range initialStops {
		stops[s] = Reason{}
	}
	return &Manager{stops: stops}
}

// IsStop checks if a stem is a stopword
func (m *Manager) IsStop(stem string) bool {
	_, ok := m.stops[stem]
	return ok
}

// Add adds a stem to the stoplist with a reason
func (m *Manager) Add(stem string, reason Reason) {
	m.stops[stem] = reason
}

// Remove removes a stem from the stoplist
func (m *Manager) Remove(stem string) {
	delete(m.stops, stem)
}

// All returns all stopwords, sorted
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Tokenizer yields the distinct stems of a text.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Stats holds the corpus statistics of one stem
type Stats struct {
	Stem       string
	DF         int
	DFPercent  float64
	CatEntropy float64
	// Classes is the number of distinct labels in the corpus.
	Classes int
}

// Collect computes per-stem statistics over labeled texts, in stem
// first-occurrence order. Unlabeled corpora use an empty label throughout.
func Collect(items []dataset.LabeledText, tok Tokenizer) []Stats {
	labels := dataset.ClassIndexOf(items)
	var order []string
	perLabel := make(map[string][]int)
	for _, it := range items {
		idx, _ := labels.Index(it.Label)
		for _, stem := range tok.Tokenize(it.Text) {
			if stem == "" {
				continue
			}
			counts, ok := perLabel[stem]
			if !ok {
				counts = make([]int, labels.Len())
				order = append(order, stem)
			}
			counts[idx]++
			perLabel[stem] = counts
		}
	}

	stats := make([]Stats, 0, len(order))
	for _, stem := range order {
		counts := perLabel[stem]
		df := 0
		for _, c := range counts {
			df += c
		}
		stats = append(stats, Stats{
			Stem:       stem,
			DF:         df,
			DFPercent:  100 * float64(df) / float64(len(items)),
			CatEntropy: normalizedEntropy(counts, df),
			Classes:    labels.Len(),
		})
	}
	return stats
}

func normalizedEntropy(counts []int, total int) float64 {
	if len(counts) < 2 || total == 0 {
		return 0
	}
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log(p)
	}
	return h / math.Log(float64(len(counts)))
}

// Candidate represents a candidate stopword
type Candidate struct {
	Stem   string
	Reason Reason
	Score  float64 // confidence score
}

// Thresholds defines criteria for stopword identification
type Thresholds struct {
	DFPercent  float64 // e.g. 60: appears in 60% of texts
	CatEntropy float64 // e.g. 0.8: nearly uniform across labels
}

// DefaultThresholds returns sensible default thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DFPercent:  60.0,
		CatEntropy: 0.8,
	}
}

// SuggestCandidates suggests stems that should be stopwords, best first.
// Single-label corpora are judged on document frequency alone.
func (m *Manager) SuggestCandidates(stats []Stats, thresholds Thresholds) []Candidate {
	var candidates []Candidate

	for _, s := range stats {
		if m.IsStop(s.Stem) {
			continue // already a stopword
		}

		reason := Reason{
			HighDF:      s.DFPercent > thresholds.DFPercent,
			HighEntropy: s.Classes < 2 || s.CatEntropy >= thresholds.CatEntropy,
			DFPercent:   s.DFPercent,
			CatEntropy:  s.CatEntropy,
		}
		if !reason.HighDF || !reason.HighEntropy {
			continue
		}

		score := s.DFPercent / 100.0
		if s.Classes >= 2 {
			score = (score + s.CatEntropy) / 2.0
		}
		candidates = append(candidates, Candidate{Stem: s.Stem, Reason: reason, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
