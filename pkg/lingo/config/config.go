package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lingo/pkg/lingo/internalerr"
)

// Config describes a complete annotation pipeline.
type Config struct {
	// Language selects the snowball stemmer ("english", "russian", ...).
	Language string `yaml:"language"`

	// BreakOnStopWord makes the stop-word stage fail the whole run on the
	// first match instead of flagging tokens.
	BreakOnStopWord bool `yaml:"break_on_stop_word"`

	// SignMarkers override the negative-number marker tokens.
	SignMarkers []string `yaml:"sign_markers"`

	// Stoplist seeds the stop-word dictionary.
	Stoplist Stoplist `yaml:"stoplist"`

	// DictionaryDB, when set, backs the dictionary with a SQLite database
	// at this path; the stoplist terms are seeded into it.
	DictionaryDB string `yaml:"dictionary_db"`
}

// Stoplist is a list of stop-word terms.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// Load reads a pipeline configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if cfg.Language == "" {
		cfg.Language = "english"
	}

	return &cfg, nil
}

// LoadStoplist reads a stand-alone stoplist from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	return &sl, nil
}
