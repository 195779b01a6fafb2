// Package sentence holds the annotated-sentence data model: a sentence is
// the raw input text plus the ordered tokens derived from it, and each token
// carries its normalized value, its location in the raw text and an open set
// of named metadata annotations.
package sentence

import (
	"sort"

	"github.com/cognicore/lingo/pkg/lingo/meta"
)

// Loc locates a substring of the raw text as a (start, length) pair counted
// in runes, not bytes.
type Loc struct {
	Start int
	Len   int
}

// NewLoc creates a location.
func NewLoc(start, length int) Loc {
	return Loc{Start: start, Len: length}
}

// Token is a normalized piece of text with its source location and
// annotations. Val and Loc are fixed at creation; only annotations change
// afterwards, and only during an enrichment pass.
type Token struct {
	Val  string
	Loc  Loc
	meta map[string]meta.Value
}

// NewToken creates a token with no annotations.
func NewToken(val string, loc Loc) Token {
	return Token{Val: val, Loc: loc}
}

// AddMeta sets the annotation under key, overwriting any previous value.
func (t *Token) AddMeta(key string, val meta.Value) {
	if t.meta == nil {
		t.meta = make(map[string]meta.Value)
	}
	t.meta[key] = val
}

// Meta returns the annotation under key.
func (t *Token) Meta(key string) (meta.Value, bool) {
	v, ok := t.meta[key]
	return v, ok
}

// MetaKeys returns the token's annotation keys in sorted order.
func (t *Token) MetaKeys() []string {
	if len(t.meta) == 0 {
		return nil
	}
	keys := make([]string, 0, len(t.meta))
	for k := range t.meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sentence is raw input text paired with the token sequence derived from it.
// Tokens ascend by Loc.Start and never overlap; whitespace leaves gaps.
type Sentence struct {
	raw    string
	tokens []Token
}

// New creates a sentence from raw text and its tokens.
func New(raw string, tokens []Token) *Sentence {
	return &Sentence{raw: raw, tokens: tokens}
}

// Raw returns the original input text.
func (s *Sentence) Raw() string {
	return s.raw
}

// Tokens returns the token sequence for reading.
func (s *Sentence) Tokens() []Token {
	return s.tokens
}

// TokensMut returns the token sequence for annotation by enrichers.
func (s *Sentence) TokensMut() []Token {
	return s.tokens
}

// ByLoc returns the raw-text substring at loc. Offsets count runes; ranges
// reaching past the end of the text are clamped.
func (s *Sentence) ByLoc(loc Loc) string {
	runes := []rune(s.raw)
	start := loc.Start
	if start < 0 || start >= len(runes) {
		return ""
	}
	end := start + loc.Len
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}
