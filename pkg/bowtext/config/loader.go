package config

import (
	"context"
	"fmt"

	"github.com/cognicore/bowtext/pkg/bowtext/classify"
	"github.com/cognicore/bowtext/pkg/bowtext/ingest"
	"github.com/cognicore/bowtext/pkg/bowtext/stemmer"
	"github.com/cognicore/bowtext/pkg/bowtext/store"
	"github.com/cognicore/bowtext/pkg/bowtext/store/memstore"
	"github.com/cognicore/bowtext/pkg/bowtext/store/sqlite"
)

// Loader loads a config file and constructs components
type Loader struct {
	// ConfigPath is the YAML file to read. Empty uses Default().
	ConfigPath string
}

// Components holds all loaded configuration components
type Components struct {
	Config      *Config
	Inputs      *stemmer.Inputs
	Stemmer     *stemmer.Stemmer
	Tokenizer   *ingest.Tokenizer
	ModelConfig classify.Config
	Store       store.Store
}

// Load reads the configuration and returns initialized components. The
// caller owns Components.Store and must close it.
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		var err error
		if cfg, err = Load(l.ConfigPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	return Build(ctx, cfg)
}

// LoadPipeline is Load without the snapshot store. Components.Store is nil.
func (l *Loader) LoadPipeline() (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		var err error
		if cfg, err = Load(l.ConfigPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	return BuildPipeline(cfg)
}

// Build constructs components from an already loaded configuration
func Build(ctx context.Context, cfg *Config) (*Components, error) {
	comp, err := BuildPipeline(cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.Store.Driver {
	case DriverSQLite:
		st, err := sqlite.OpenSQLite(ctx, cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		comp.Store = st
	default:
		comp.Store = memstore.New()
	}

	return comp, nil
}

// BuildPipeline constructs the stemmer and tokenizer only.
func BuildPipeline(cfg *Config) (*Components, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	comp := &Components{Config: cfg, ModelConfig: cfg.Model}

	// Stemmer tables
	if cfg.Stemmer.Exceptions != "" {
		in, err := stemmer.LoadInputs(cfg.Stemmer.Exceptions, cfg.Stemmer.Extensions)
		if err != nil {
			return nil, fmt.Errorf("load stemmer tables: %w", err)
		}
		comp.Inputs = in
	} else {
		comp.Inputs = stemmer.Default()
	}
	comp.Stemmer = stemmer.New(comp.Inputs)

	// Stoplist
	var opts []ingest.Option
	if cfg.Stoplist != "" {
		sl, err := LoadStoplist(cfg.Stoplist)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		opts = append(opts, ingest.WithStopwords(sl.Terms))
	}
	comp.Tokenizer = ingest.NewTokenizer(comp.Stemmer, opts...)

	return comp, nil
}
