package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
	"github.com/cognicore/bowtext/pkg/bowtext/vocab"
)

// LabeledText is one training example.
type LabeledText struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Group is a key with its values, as produced by ToTrainingSet and FlipKeys.
type Group struct {
	Key    string
	Values []string
}

// ParseLabeledJSON decodes {"label": ["text", ...], ...} into examples,
// keeping the label order of the document.
func ParseLabeledJSON(data []byte) ([]LabeledText, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode labeled data: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("labeled data must be an object: %w", internalerr.ErrInvalidInput)
	}

	var out []LabeledText
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode labeled data: %w", err)
		}
		label, _ := tok.(string)

		var texts []string
		if err := dec.Decode(&texts); err != nil {
			return nil, fmt.Errorf("decode texts for %q: %w", label, err)
		}
		for _, text := range texts {
			out = append(out, LabeledText{Label: label, Text: text})
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode labeled data: %w", err)
	}
	return out, nil
}

// Shuffle permutes items in place (Fisher-Yates) and returns them.
// A nil rng leaves the order untouched.
func Shuffle(items []LabeledText, rng *rand.Rand) []LabeledText {
	if rng == nil {
		return items
	}
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// Texts returns the text of every example, in order.
func Texts(items []LabeledText) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

// Labels returns the label of every example, in order.
func Labels(items []LabeledText) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

// ClassIndexOf enumerates the labels of items in first-occurrence order.
func ClassIndexOf(items []LabeledText) *vocab.ClassIndex {
	return vocab.BuildClassIndex(Labels(items))
}

// ToTrainingSet groups rows by key, splitting each value on delimiter and
// trimming the parts. Repeated keys accumulate values.
func ToTrainingSet[T any](rows []T, key, value func(T) string, delimiter string) []Group {
	var groups []Group
	pos := make(map[string]int)
	for _, row := range rows {
		k := key(row)
		parts := strings.Split(value(row), delimiter)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if i, ok := pos[k]; ok {
			groups[i].Values = append(groups[i].Values, parts...)
			continue
		}
		pos[k] = len(groups)
		groups = append(groups, Group{Key: k, Values: parts})
	}
	return groups
}

// FlipKeys inverts groups so every value becomes a key listing the
// distinct keys it appeared under.
func FlipKeys(groups []Group) []Group {
	var out []Group
	pos := make(map[string]int)
	for _, g := range groups {
		for _, v := range g.Values {
			i, ok := pos[v]
			if !ok {
				pos[v] = len(out)
				out = append(out, Group{Key: v, Values: []string{g.Key}})
				continue
			}
			if !slices.Contains(out[i].Values, g.Key) {
				out[i].Values = append(out[i].Values, g.Key)
			}
		}
	}
	return out
}

// Flatten turns groups into examples labeled by the group key.
func Flatten(groups []Group) []LabeledText {
	var out []LabeledText
	for _, g := range groups {
		for _, v := range g.Values {
			out = append(out, LabeledText{Label: g.Key, Text: v})
		}
	}
	return out
}
