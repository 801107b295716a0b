package vector

import (
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/cognicore/bowtext/pkg/bowtext/vocab"
)

// StemSource yields every stem of a text, repeats included.
type StemSource interface {
	Stems(text string) []string
}

// FrequencyVector holds raw stem counts aligned to a vocabulary's word order.
type FrequencyVector []float64

// Vectorize counts the stems of text and lays the counts out in the order of
// v.Words(). Stems outside the vocabulary are ignored; the result always has
// v.Len() entries and is not normalized.
func Vectorize(text string, v *vocab.Vocabulary, src StemSource) FrequencyVector {
	counts := make(map[string]int)
	for _, stem := range src.Stems(text) {
		if stem == "" {
			continue
		}
		counts[strings.ToLower(stem)]++
	}

	words := v.Words()
	vec := make(FrequencyVector, len(words))
	for i, w := range words {
		vec[i] = float64(counts[w])
	}
	return vec
}

// ArgMax returns the position of the largest value, the first one on ties,
// or -1 for an empty slice.
func ArgMax(values []float64) int {
	if len(values) == 0 {
		return -1
	}
	return floats.MaxIdx(values)
}

// ArgMaxKeyed visits m in the order given by keys and returns the position
// of the largest value. Keys missing from m count as 0.
func ArgMaxKeyed(keys []string, m map[string]float64) int {
	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return ArgMax(values)
}
