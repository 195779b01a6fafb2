package enrich

import (
	"fmt"
	"sync"

	"github.com/cognicore/lingo/pkg/lingo/dictionary"
	"github.com/cognicore/lingo/pkg/lingo/meta"
	"github.com/cognicore/lingo/pkg/lingo/sentence"
)

// MetaStopWord flags a token found in the stop-word dictionary.
const MetaStopWord = "stop_word"

// StopWordError reports the first stop word hit when the stage is
// configured to break the pipeline.
type StopWordError struct {
	Word string
}

func (e *StopWordError) Error() string {
	return fmt.Sprintf("stop word: [%s]", e.Word)
}

// StopWord flags tokens present in a shared dictionary and, on Update,
// writes accepted flags back to it. The dictionary is guarded by a
// reader/writer lock: whole-sentence membership scans share it, learning
// takes it exclusively. A single StopWord may serve many concurrent
// pipeline runs.
type StopWord struct {
	mu           sync.RWMutex
	dict         dictionary.Dictionary
	breakOnMatch bool
}

// NewStopWord creates a stop-word stage over dict. With breakOnMatch set,
// the first match fails the whole pipeline run instead of flagging tokens.
func NewStopWord(dict dictionary.Dictionary, breakOnMatch bool) *StopWord {
	return &StopWord{dict: dict, breakOnMatch: breakOnMatch}
}

// Enrich flags every token whose value is in the dictionary, or returns a
// *StopWordError carrying the raw source substring of the first match when
// breaking is enabled.
func (e *StopWord) Enrich(s *sentence.Sentence) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	tokens := s.TokensMut()
	for i := range tokens {
		if !e.dict.Contains(tokens[i].Val) {
			continue
		}
		if e.breakOnMatch {
			return &StopWordError{Word: s.ByLoc(tokens[i].Loc)}
		}
		tokens[i].AddMeta(MetaStopWord, meta.Bool(true))
	}
	return nil
}

// Update inserts every flagged token's value into the dictionary. Insertion
// is idempotent; only genuinely new words reach any backing store.
func (e *StopWord) Update(s *sentence.Sentence) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, tok := range s.Tokens() {
		if _, ok := tok.Meta(MetaStopWord); !ok {
			continue
		}
		if _, err := e.dict.Add(tok.Val); err != nil {
			return fmt.Errorf("learn stop word %q: %w", tok.Val, err)
		}
	}
	return nil
}

// Sync refreshes the dictionary from its backing store under the exclusive
// lock.
func (e *StopWord) Sync() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dict.Sync()
}

// StopWordAt pairs a flagged token's raw source substring with its location.
// Like NumberAt, the Loc counts token positions.
type StopWordAt struct {
	Loc  sentence.Loc
	Word string
}

// StopWords extracts every flagged token from s in token order.
func StopWords(s *sentence.Sentence) []StopWordAt {
	var words []StopWordAt

	for i, tok := range s.Tokens() {
		if _, ok := tok.Meta(MetaStopWord); !ok {
			continue
		}
		words = append(words, StopWordAt{
			Loc:  sentence.NewLoc(i, 1),
			Word: s.ByLoc(tok.Loc),
		})
	}

	return words
}
