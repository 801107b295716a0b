package ingest

import "strings"

// SanitizeAndSplit collapses every run of characters other than ASCII
// letters, digits and U+00C0..U+00FF into a single space and splits on
// spaces. Leading or trailing runs yield empty strings; "" yields [""].
func SanitizeAndSplit(text string) []string {
	var b strings.Builder
	b.Grow(len(text))

	inRun := false
	for _, r := range text {
		if isWordRune(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte(' ')
			inRun = true
		}
	}

	return strings.Split(b.String(), " ")
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= 0x00C0 && r <= 0x00FF:
		return true
	}
	return false
}
