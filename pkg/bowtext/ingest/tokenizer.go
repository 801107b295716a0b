package ingest

import (
	"strings"
)

// Stemmer reduces a single word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Tokenizer turns text into stems: sanitize, stem, (optionally) drop
// stopwords.
type Tokenizer struct {
	stemmer   Stemmer
	stopwords map[string]struct{}
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithStopwords drops any stem equal to one of the given words (case-insensitive).
func WithStopwords(words []string) Option {
	return func(t *Tokenizer) {
		for _, w := range words {
			t.stopwords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// NewTokenizer creates a tokenizer backed by the given stemmer.
func NewTokenizer(s Stemmer, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		stemmer:   s,
		stopwords: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize returns the distinct stems of text in first-occurrence order.
// Empty words produced by the sanitizer stem to "" and are kept once.
func (t *Tokenizer) Tokenize(text string) []string {
	return Deduplicate(t.Stems(text))
}

// Stems returns the stem of every word in text, keeping repeats.
func (t *Tokenizer) Stems(text string) []string {
	words := SanitizeAndSplit(text)
	stems := make([]string, 0, len(words))
	for _, w := range words {
		stem := t.stemmer.Stem(w)
		if t.isStopword(stem) {
			continue
		}
		stems = append(stems, stem)
	}
	return stems
}

func (t *Tokenizer) isStopword(word string) bool {
	if len(t.stopwords) == 0 || word == "" {
		return false
	}
	_, ok := t.stopwords[strings.ToLower(word)]
	return ok
}

// Deduplicate returns a new slice holding the first occurrence of each
// string, in order.
func Deduplicate(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
