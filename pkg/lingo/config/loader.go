package config

import (
	"fmt"

	"github.com/cognicore/lingo/pkg/lingo"
	"github.com/cognicore/lingo/pkg/lingo/dictionary"
	"github.com/cognicore/lingo/pkg/lingo/dictionary/sqlite"
	"github.com/cognicore/lingo/pkg/lingo/enrich"
	"github.com/cognicore/lingo/pkg/lingo/stem"
)

// Components holds a pipeline assembled from configuration.
type Components struct {
	Service    *lingo.Service
	StopWords  *enrich.StopWord
	Dictionary dictionary.Dictionary

	store *sqlite.Store
}

// Close releases the backing dictionary store, if any.
func (c *Components) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// Build assembles a ready-to-use Service from cfg: snowball stemmer, number
// stage, then stop-word stage over a seeded dictionary. With DictionaryDB
// set, the dictionary is a cache over SQLite and the stoplist terms are
// written through to it.
func Build(cfg *Config) (*Components, error) {
	fn, err := stem.Snowball(cfg.Language)
	if err != nil {
		return nil, err
	}

	comp := &Components{}

	if cfg.DictionaryDB != "" {
		store, err := sqlite.Open(cfg.DictionaryDB)
		if err != nil {
			return nil, fmt.Errorf("open dictionary db: %w", err)
		}
		cached := dictionary.NewCachedWith(store)
		if err := cached.Sync(); err != nil {
			store.Close()
			return nil, fmt.Errorf("sync dictionary: %w", err)
		}
		for _, term := range cfg.Stoplist.Terms {
			if _, err := cached.Add(term); err != nil {
				store.Close()
				return nil, fmt.Errorf("seed stoplist: %w", err)
			}
		}
		comp.store = store
		comp.Dictionary = cached
	} else {
		comp.Dictionary = dictionary.NewCached(cfg.Stoplist.Terms)
	}

	number := enrich.NewNumber()
	if len(cfg.SignMarkers) > 0 {
		number = enrich.NewNumberWithMarkers(cfg.SignMarkers...)
	}

	comp.StopWords = enrich.NewStopWord(comp.Dictionary, cfg.BreakOnStopWord)
	comp.Service = lingo.New(fn, number, comp.StopWords)
	return comp, nil
}

// Loader loads a configuration file and builds its components in one step.
type Loader struct {
	ConfigPath string
}

// Load reads the configuration and assembles the pipeline.
func (l *Loader) Load() (*Components, error) {
	cfg, err := Load(l.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return Build(cfg)
}
