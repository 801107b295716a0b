package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
)

// ClassIndex assigns each distinct label a dense index in first-occurrence
// order. The classifier's output unit i belongs to Label(i).
type ClassIndex struct {
	labels []string
	index  map[string]int
}

// BuildClassIndex enumerates the distinct labels in order.
func BuildClassIndex(labels []string) *ClassIndex {
	c := &ClassIndex{index: make(map[string]int)}
	for _, l := range labels {
		if _, ok := c.index[l]; ok {
			continue
		}
		c.index[l] = len(c.labels)
		c.labels = append(c.labels, l)
	}
	return c
}

// Len returns the number of classes.
func (c *ClassIndex) Len() int {
	if c == nil {
		return 0
	}
	return len(c.labels)
}

// Index returns the dense index of label.
func (c *ClassIndex) Index(label string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.index[label]
	return i, ok
}

// Label returns the label at index i.
func (c *ClassIndex) Label(i int) (string, bool) {
	if c == nil || i < 0 || i >= len(c.labels) {
		return "", false
	}
	return c.labels[i], true
}

// Labels returns a copy of the labels in index order.
func (c *ClassIndex) Labels() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// MarshalJSON writes {label: index, ...} with keys in index order.
func (c *ClassIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range c.Labels() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(i))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the order from the stored indices, which must be
// exactly 0..n-1.
func (c *ClassIndex) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	labels := make([]string, len(raw))
	filled := make([]bool, len(raw))
	for l, i := range raw {
		if i < 0 || i >= len(raw) || filled[i] {
			return fmt.Errorf("class %q has index %d: %w", l, i, internalerr.ErrInvalidInput)
		}
		labels[i] = l
		filled[i] = true
	}
	*c = *BuildClassIndex(labels)
	return nil
}

// OneHot returns a length-n vector with 1 at index and 0 elsewhere.
// An index outside [0, n) yields all zeros.
func OneHot(index, n int) []float64 {
	if n < 0 {
		n = 0
	}
	vec := make([]float64, n)
	if index >= 0 && index < n {
		vec[index] = 1
	}
	return vec
}
