package stemmer

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
)

// Exception table identifiers consulted by Stem.
const (
	StepOne  = "step-1"
	StepOneA = "step-1a"
)

var (
	//go:embed data/exceptions.json
	defaultExceptions []byte

	//go:embed data/extensions.json
	defaultExtensions []byte
)

// Inputs holds the lookup tables the stemmer consults.
// It is read-only once built and safe to share between goroutines.
type Inputs struct {
	// Exceptions maps a step ID to exact word replacements for that step.
	Exceptions map[string]map[string]string
	// Extensions maps a derivational suffix to its step 2 replacement.
	Extensions map[string]string
}

// Validate reports whether both tables carry data.
func (in *Inputs) Validate() error {
	if in == nil {
		return fmt.Errorf("stemmer inputs: %w", internalerr.ErrEmptyTable)
	}
	if len(in.Exceptions) == 0 {
		return fmt.Errorf("exceptions: %w", internalerr.ErrEmptyTable)
	}
	if len(in.Extensions) == 0 {
		return fmt.Errorf("extensions: %w", internalerr.ErrEmptyTable)
	}
	return nil
}

func (in *Inputs) exception(step, word string) (string, bool) {
	if in == nil {
		return "", false
	}
	repl, ok := in.Exceptions[step][word]
	return repl, ok
}

func (in *Inputs) extension(suffix string) (string, bool) {
	if in == nil {
		return "", false
	}
	repl, ok := in.Extensions[suffix]
	return repl, ok
}

// ParseInputs decodes the exceptions and extensions JSON documents.
// Both must decode to non-empty objects.
func ParseInputs(exceptionsJSON, extensionsJSON []byte) (*Inputs, error) {
	in := &Inputs{}
	if err := json.Unmarshal(exceptionsJSON, &in.Exceptions); err != nil {
		return nil, fmt.Errorf("decode exceptions: %w", err)
	}
	if err := json.Unmarshal(extensionsJSON, &in.Extensions); err != nil {
		return nil, fmt.Errorf("decode extensions: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

// LoadInputs reads the two table files from disk.
func LoadInputs(exceptionsPath, extensionsPath string) (*Inputs, error) {
	exc, err := os.ReadFile(exceptionsPath)
	if err != nil {
		return nil, fmt.Errorf("read exceptions: %w", err)
	}
	ext, err := os.ReadFile(extensionsPath)
	if err != nil {
		return nil, fmt.Errorf("read extensions: %w", err)
	}
	return ParseInputs(exc, ext)
}

// Default returns the embedded English tables.
func Default() *Inputs {
	in, err := ParseInputs(defaultExceptions, defaultExtensions)
	if err != nil {
		panic(fmt.Sprintf("stemmer: embedded tables: %v", err))
	}
	return in
}
