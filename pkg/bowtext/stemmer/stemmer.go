package stemmer

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Snowball English stemmer (http://snowball.tartarus.org/algorithms/english/stemmer.html)
// with the exceptional forms and the step 2 replacements supplied by Inputs.

// unbounded marks a region that starts past the end of any word.
const unbounded = math.MaxInt

const vowels = "aeiouy"

// Prefixes whose end is taken as R1 directly.
var r1Prefixes = []string{"gener", "commun", "arsen"}

// suffixRule matches key at the end of a word. When after is set, the
// byte in front of key must be one of its characters; that byte counts
// toward the match length but is never replaced or region tested.
type suffixRule struct {
	key   string
	after string
}

// Step 2 suffixes. The longest match wins, ties go to the earlier entry.
var step2Rules = []suffixRule{
	{key: "ization"}, {key: "fulness"}, {key: "iveness"}, {key: "ational"},
	{key: "ousness"}, {key: "tional"}, {key: "biliti"}, {key: "lessli"},
	{key: "entli"}, {key: "ation"}, {key: "alism"}, {key: "aliti"},
	{key: "ousli"}, {key: "iviti"}, {key: "fulli"}, {key: "enci"},
	{key: "anci"}, {key: "abli"}, {key: "izer"}, {key: "ator"},
	{key: "alli"}, {key: "bli"},
	{key: "ogi", after: "l"},
	{key: "li", after: "cdeghkmnrt"},
}

var step3Rules = []suffixRule{
	{key: "ational"}, {key: "tional"}, {key: "alize"}, {key: "icate"},
	{key: "iciti"}, {key: "ative"}, {key: "ical"}, {key: "ness"}, {key: "ful"},
}

var step3Replacements = map[string]string{
	"ational": "ate",
	"tional":  "tion",
	"alize":   "al",
	"icate":   "ic",
	"iciti":   "ic",
	"ical":    "ic",
	"ness":    "",
	"ful":     "",
}

var step4Rules = []suffixRule{
	{key: "ement"}, {key: "ance"}, {key: "ence"}, {key: "able"},
	{key: "ible"}, {key: "ment"}, {key: "ant"}, {key: "ent"},
	{key: "ism"}, {key: "ate"}, {key: "iti"}, {key: "ous"},
	{key: "ive"}, {key: "ize"},
	{key: "ion", after: "st"},
	{key: "al"}, {key: "er"}, {key: "ic"},
}

var undoubled = []string{"bb", "dd", "ff", "gg", "mm", "nn", "pp", "rr", "tt"}

// Stemmer binds a set of Inputs. It is safe for concurrent use.
type Stemmer struct {
	inputs *Inputs
}

// New returns a Stemmer over the given tables.
func New(in *Inputs) *Stemmer {
	return &Stemmer{inputs: in}
}

// Stem reduces word to its stem.
func (s *Stemmer) Stem(word string) string {
	return Stem(word, s.inputs)
}

// Stem reduces word to its stem using the tables in in.
// Words shorter than three characters are returned as given.
func Stem(word string, in *Inputs) string {
	if utf8.RuneCountInString(word) < 3 {
		return word
	}
	if repl, ok := in.exception(StepOne, word); ok {
		return repl
	}

	w := normalize(word)
	r1, r2 := regions(w)

	w = stripPossessive(w)
	w = step1a(w)
	if repl, ok := in.exception(StepOneA, w); ok {
		return repl
	}
	w = step1b(w, r1)
	w = step1c(w)
	w = step2(w, r1, in)
	w = step3(w, r1, r2)
	w = step4(w, r2)
	w = step5(w, r1, r2)

	return strings.ToLower(w)
}

func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}

func hasVowel(s string) bool {
	return strings.IndexAny(s, vowels) >= 0
}

// normalize lowercases, drops one leading apostrophe, keeps only [a-z'] and
// marks consonantal y as Y.
func normalize(word string) string {
	w := strings.TrimPrefix(strings.ToLower(word), "'")

	kept := make([]byte, 0, len(w))
	for i := 0; i < len(w); i++ {
		c := w[i]
		if (c >= 'a' && c <= 'z') || c == '\'' {
			kept = append(kept, c)
		}
	}

	out := make([]byte, len(kept))
	copy(out, kept)
	i := 0
	if len(kept) > 0 && kept[0] == 'y' {
		out[0] = 'Y'
		i = 1
	}
	for ; i+1 < len(kept); i++ {
		if isVowel(kept[i]) && kept[i+1] == 'y' {
			out[i+1] = 'Y'
			i++
		}
	}
	return string(out)
}

func regions(w string) (r1, r2 int) {
	r1 = unbounded
	for _, p := range r1Prefixes {
		if strings.HasPrefix(w, p) {
			r1 = len(p)
			break
		}
	}
	if r1 == unbounded {
		r1 = regionStart(w, 0)
	}
	return r1, regionStart(w, r1)
}

// regionStart returns the offset just past the first non-vowel that follows
// a vowel in w[from:], or unbounded when there is none.
func regionStart(w string, from int) int {
	if from >= len(w) {
		return unbounded
	}
	for i := from + 1; i < len(w); i++ {
		if isVowel(w[i-1]) && !isVowel(w[i]) {
			return i + 1
		}
	}
	return unbounded
}

// inRegion reports whether the trailing suffix of length n starts in region r.
func inRegion(w string, n, r int) bool {
	return len(w)-n >= r
}

// longestMatch returns the key of the longest rule matching the end of w.
func longestMatch(w string, rules []suffixRule) (string, bool) {
	best, bestLen := "", 0
	for _, rule := range rules {
		if !strings.HasSuffix(w, rule.key) {
			continue
		}
		n := len(rule.key)
		if rule.after != "" {
			at := len(w) - n - 1
			if at < 0 || strings.IndexByte(rule.after, w[at]) < 0 {
				continue
			}
			n++
		}
		if n > bestLen {
			best, bestLen = rule.key, n
		}
	}
	return best, bestLen > 0
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

// shortSyllable reports whether w ends in a non-vowel, vowel, non-vowel
// (other than w, x or Y), or is a vowel followed by a non-vowel.
func shortSyllable(w string) bool {
	n := len(w)
	if n >= 3 && !isVowel(w[n-3]) && isVowel(w[n-2]) && !isVowel(w[n-1]) &&
		strings.IndexByte("wxY", w[n-1]) < 0 {
		return true
	}
	return n == 2 && isVowel(w[0]) && !isVowel(w[1])
}

// Step 0
func stripPossessive(w string) string {
	for _, s := range []string{"'s'", "'s", "'"} {
		if strings.HasSuffix(w, s) {
			return w[:len(w)-len(s)]
		}
	}
	return w
}

func step1a(w string) string {
	n := len(w)
	switch {
	case n >= 5 && w[n-3] == 'i' && hasAnySuffix(w, "ed", "es"):
		return w[:n-2]
	case strings.HasSuffix(w, "sses"):
		return w[:n-2]
	case n >= 4 && w[n-3:n-1] == "ie" && (w[n-1] == 'd' || w[n-1] == 's'):
		return w[:n-1]
	case hasAnySuffix(w, "us", "ss"):
		return w
	case n >= 3 && w[n-1] == 's' && hasVowel(w[:n-2]):
		return w[:n-1]
	}
	return w
}

func step1b(w string, r1 int) string {
	var s1, s2 string
	if strings.HasSuffix(w, "eedly") {
		s1 = "eedly"
	} else if strings.HasSuffix(w, "eed") {
		s1 = "eed"
	}
	for _, s := range []string{"ingly", "edly", "ing", "ed"} {
		if strings.HasSuffix(w, s) && hasVowel(w[:len(w)-len(s)]) {
			s2 = s
			break
		}
	}

	switch {
	case len(s1) > len(s2):
		if inRegion(w, len(s1), r1) {
			return w[:len(w)-len(s1)] + "ee"
		}
	case len(s2) > len(s1):
		w = w[:len(w)-len(s2)]
		switch {
		case hasAnySuffix(w, "at", "bl", "iz"):
			return w + "e"
		case hasAnySuffix(w, undoubled...):
			return w[:len(w)-1]
		case len(w) <= r1 && (shortSyllable(w) || (len(w) == 1 && isVowel(w[0]))):
			return w + "e"
		}
	}
	return w
}

func step1c(w string) string {
	n := len(w)
	if n >= 3 && (w[n-1] == 'y' || w[n-1] == 'Y') && !isVowel(w[n-2]) {
		return w[:n-1] + "i"
	}
	return w
}

func step2(w string, r1 int, in *Inputs) string {
	key, ok := longestMatch(w, step2Rules)
	if !ok || !inRegion(w, len(key), r1) {
		return w
	}
	repl, ok := in.extension(key)
	if !ok {
		return w
	}
	return w[:len(w)-len(key)] + repl
}

// step3 tests "ative" against r2 as computed for the unmodified word.
func step3(w string, r1, r2 int) string {
	key, ok := longestMatch(w, step3Rules)
	if !ok || !inRegion(w, len(key), r1) {
		return w
	}
	if key == "ative" {
		if inRegion(w, len(key), r2) {
			return w[:len(w)-len(key)]
		}
		return w
	}
	return w[:len(w)-len(key)] + step3Replacements[key]
}

func step4(w string, r2 int) string {
	key, ok := longestMatch(w, step4Rules)
	if !ok || !inRegion(w, len(key), r2) {
		return w
	}
	return w[:len(w)-len(key)]
}

func step5(w string, r1, r2 int) string {
	n := len(w)
	if strings.HasSuffix(w, "e") {
		if n > r2 || (n > r1 && !shortSyllable(w[:n-1])) {
			return w[:n-1]
		}
		return w
	}
	if strings.HasSuffix(w, "ll") && n-1 >= r2 {
		return w[:n-1]
	}
	return w
}
