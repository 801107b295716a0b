package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/bowtext/pkg/bowtext/classify"
	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
)

// Store drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the top-level pipeline configuration
type Config struct {
	Stemmer  StemmerConfig   `yaml:"stemmer"`
	Stoplist string          `yaml:"stoplist"`
	Model    classify.Config `yaml:"model"`
	Store    StoreConfig     `yaml:"store"`
	// ShuffleSeed seeds the shuffle of loaded training data. Zero keeps the
	// document order.
	ShuffleSeed uint64 `yaml:"shuffle_seed"`
}

// StemmerConfig points at replacement stemmer tables. Both empty selects
// the embedded tables.
type StemmerConfig struct {
	Exceptions string `yaml:"exceptions"`
	Extensions string `yaml:"extensions"`
}

// StoreConfig selects the snapshot store
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Model: classify.DefaultConfig(),
		Store: StoreConfig{Driver: DriverMemory},
	}
}

// Load reads a YAML config file over the defaults. Relative paths inside
// the file are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolve(base string) {
	for _, p := range []*string{&c.Stemmer.Exceptions, &c.Stemmer.Extensions, &c.Stoplist, &c.Store.Path} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if (c.Stemmer.Exceptions == "") != (c.Stemmer.Extensions == "") {
		return fmt.Errorf("stemmer: exceptions and extensions must be set together: %w", internalerr.ErrInvalidConfig)
	}

	m := c.Model
	switch {
	case m.Iterations <= 0:
		return fmt.Errorf("model.iterations must be positive: %w", internalerr.ErrInvalidConfig)
	case m.ErrorThresh < 0:
		return fmt.Errorf("model.error_thresh must not be negative: %w", internalerr.ErrInvalidConfig)
	case m.LogPeriod < 0:
		return fmt.Errorf("model.log_period must not be negative: %w", internalerr.ErrInvalidConfig)
	case m.LearningRate <= 0:
		return fmt.Errorf("model.learning_rate must be positive: %w", internalerr.ErrInvalidConfig)
	case m.Momentum < 0 || m.Momentum >= 1:
		return fmt.Errorf("model.momentum must be in [0, 1): %w", internalerr.ErrInvalidConfig)
	}

	switch c.Store.Driver {
	case "", DriverMemory:
	case DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for sqlite: %w", internalerr.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("store.driver %q: %w", c.Store.Driver, internalerr.ErrInvalidConfig)
	}
	return nil
}

// Rand returns the seeded shuffle source, or nil when ShuffleSeed is zero
func (c *Config) Rand() *rand.Rand {
	if c.ShuffleSeed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(c.ShuffleSeed, c.ShuffleSeed))
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
