package ingest

import (
	"reflect"
	"testing"

	"github.com/cognicore/bowtext/pkg/bowtext/stemmer"
)

func newTestTokenizer(opts ...Option) *Tokenizer {
	return NewTokenizer(stemmer.New(stemmer.Default()), opts...)
}

func TestSanitizeAndSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{""}},
		{name: "plain words", input: "run fast", want: []string{"run", "fast"}},
		{name: "punctuation run collapses", input: "fix: the bug!!", want: []string{"fix", "the", "bug", ""}},
		{name: "leading separator", input: "  hello", want: []string{"", "hello"}},
		{name: "latin-1 kept", input: "apaga la lámpara", want: []string{"apaga", "la", "lámpara"}},
		{name: "apostrophe splits", input: "cat's", want: []string{"cat", "s"}},
		{name: "outside latin-1 split", input: "naïve—ĉapelo", want: []string{"naïve", "apelo"}},
		{name: "digits kept", input: "v2 api 2024", want: []string{"v2", "api", "2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeAndSplit(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SanitizeAndSplit(%q)\n  got  %q\n  want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tok := newTestTokenizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{""}},
		{name: "stems and dedupes", input: "cats cat running run", want: []string{"cat", "run"}},
		{name: "trailing separator keeps empty token", input: "Running faster, run!", want: []string{"run", "faster", ""}},
		{name: "short words untouched", input: "is it ok", want: []string{"is", "it", "ok"}},
		{name: "uppercase short word kept verbatim", input: "AI ML", want: []string{"AI", "ML"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q)\n  got  %q\n  want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	tok := newTestTokenizer()
	text := "The generously funded communication studies were motoring along nicely."

	first := tok.Tokenize(text)
	for i := 0; i < 5; i++ {
		if got := tok.Tokenize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize not deterministic: %q vs %q", got, first)
		}
	}
}

func TestStemsKeepsRepeats(t *testing.T) {
	tok := newTestTokenizer()

	got := tok.Stems("run run fast")
	want := []string{"run", "run", "fast"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Stems = %q, want %q", got, want)
	}
}

func TestWithStopwords(t *testing.T) {
	tok := newTestTokenizer(WithStopwords([]string{"The", "and"}))

	got := tok.Tokenize("the cats and dogs")
	want := []string{"cat", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestDeduplicate(t *testing.T) {
	got := Deduplicate([]string{"b", "a", "b", "", "a", ""})
	want := []string{"b", "a", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Deduplicate = %q, want %q", got, want)
	}

	if got := Deduplicate(nil); len(got) != 0 {
		t.Errorf("Deduplicate(nil) = %q, want empty", got)
	}
}
