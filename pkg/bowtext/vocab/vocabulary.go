package vocab

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
)

// Tokenizer yields the distinct stems of a text.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Vocabulary is an immutable snapshot of corpus stems: how many texts each
// stem appeared in, and the stems in first-occurrence order.
type Vocabulary struct {
	frequencies map[string]int
	words       []string
}

// Build folds texts into a new Vocabulary. Stems are lowercased and empty
// stems are ignored.
func Build(texts []string, tok Tokenizer) *Vocabulary {
	v := &Vocabulary{frequencies: make(map[string]int)}
	for _, text := range texts {
		for _, stem := range tok.Tokenize(text) {
			v.add(strings.ToLower(stem), 1)
		}
	}
	return v
}

// FromWords rebuilds a Vocabulary from stored parts. Every word must have a
// frequency entry and appear once.
func FromWords(words []string, frequencies map[string]int) (*Vocabulary, error) {
	if len(words) != len(frequencies) {
		return nil, fmt.Errorf("vocabulary has %d words and %d frequencies: %w",
			len(words), len(frequencies), internalerr.ErrInvalidInput)
	}
	v := &Vocabulary{frequencies: make(map[string]int, len(words))}
	for _, w := range words {
		if w == "" {
			return nil, fmt.Errorf("empty word: %w", internalerr.ErrInvalidInput)
		}
		freq, ok := frequencies[w]
		if !ok {
			return nil, fmt.Errorf("word %q has no frequency: %w", w, internalerr.ErrInvalidInput)
		}
		if _, dup := v.frequencies[w]; dup {
			return nil, fmt.Errorf("word %q repeated: %w", w, internalerr.ErrDuplicate)
		}
		v.add(w, freq)
	}
	return v, nil
}

func (v *Vocabulary) add(word string, n int) {
	if word == "" {
		return
	}
	if _, ok := v.frequencies[word]; !ok {
		v.words = append(v.words, word)
	}
	v.frequencies[word] += n
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.words)
}

// Words returns a copy of the ordered word list.
func (v *Vocabulary) Words() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Frequency returns the corpus count for word, 0 when unknown.
func (v *Vocabulary) Frequency(word string) int {
	if v == nil {
		return 0
	}
	return v.frequencies[word]
}

// Frequencies returns a copy of the word → count map.
func (v *Vocabulary) Frequencies() map[string]int {
	out := make(map[string]int, v.Len())
	if v == nil {
		return out
	}
	for k, n := range v.frequencies {
		out[k] = n
	}
	return out
}

type vocabularyJSON struct {
	Dict  map[string]int `json:"dict"`
	Words []string       `json:"words"`
}

// MarshalJSON encodes the vocabulary as {"dict": {...}, "words": [...]}.
func (v *Vocabulary) MarshalJSON() ([]byte, error) {
	return json.Marshal(vocabularyJSON{
		Dict:  v.Frequencies(),
		Words: v.Words(),
	})
}

// UnmarshalJSON restores a vocabulary written by MarshalJSON.
func (v *Vocabulary) UnmarshalJSON(data []byte) error {
	var raw vocabularyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	restored, err := FromWords(raw.Words, raw.Dict)
	if err != nil {
		return err
	}
	*v = *restored
	return nil
}
