// Package lingo turns raw text into annotated sentences. A Service pairs a
// tokenizer with an ordered chain of enrichers; Produce runs the chain over
// a fresh sentence all-or-nothing, Learn feeds an accepted sentence's
// annotations back into stages that keep state.
package lingo

import (
	"github.com/cognicore/lingo/pkg/lingo/ingest"
	"github.com/cognicore/lingo/pkg/lingo/sentence"
	"github.com/cognicore/lingo/pkg/lingo/stem"
)

// Enricher is one pipeline stage. Enrich may annotate the sentence in place
// or veto the whole run by returning an error; Update sees a finished,
// externally accepted sentence and may persist what it learned from it.
type Enricher interface {
	Enrich(s *sentence.Sentence) error
	Update(s *sentence.Sentence) error
}

// Service is a reusable annotation pipeline. The enricher chain is fixed at
// construction, so a Service may be shared across goroutines; independent
// Produce calls run in parallel.
type Service struct {
	tokenizer *ingest.Tokenizer
	pipeline  []Enricher
}

// New creates a Service around a stemming function and an ordered enricher
// chain. Registration order is execution order.
func New(fn stem.Func, enrichers ...Enricher) *Service {
	pipeline := make([]Enricher, len(enrichers))
	copy(pipeline, enrichers)
	return &Service{
		tokenizer: ingest.NewTokenizer(fn),
		pipeline:  pipeline,
	}
}

// Produce tokenizes raw text and runs every enricher over the resulting
// sentence in order. The first enricher error aborts the run and discards
// the sentence: callers see either a fully annotated sentence or an error,
// never partial annotations.
func (s *Service) Produce(raw string) (*sentence.Sentence, error) {
	snt := sentence.New(raw, s.tokenizer.Tokenize(raw))

	for _, e := range s.pipeline {
		if err := e.Enrich(snt); err != nil {
			return nil, err
		}
	}

	return snt, nil
}

// Learn passes an accepted sentence to every enricher's Update in order.
// There is no rollback across stages: each enricher's persistence stands on
// its own, and the first error is returned as-is.
func (s *Service) Learn(snt *sentence.Sentence) error {
	for _, e := range s.pipeline {
		if err := e.Update(snt); err != nil {
			return err
		}
	}
	return nil
}
